package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrInvalidAmount         = errors.Register(ModuleName, 1, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 2, "insufficient liquidity")
	ErrPoolNotFound          = errors.Register(ModuleName, 3, "pool not found")
	ErrPaused                = errors.Register(ModuleName, 4, "module is paused")
	ErrFeeTooHigh            = errors.Register(ModuleName, 5, "fee exceeds maximum")
	ErrUnauthorized          = errors.Register(ModuleName, 6, "unauthorized")
	ErrAlreadyInitialized    = errors.Register(ModuleName, 7, "already initialized")
	ErrNotInitialized        = errors.Register(ModuleName, 8, "not initialized")
	ErrOverflow              = errors.Register(ModuleName, 9, "arithmetic overflow")
	ErrInvalidState          = errors.Register(ModuleName, 10, "invalid state")
	ErrInsufficientBalance   = errors.Register(ModuleName, 11, "insufficient balance")
)
