// Package auth provides AuthGate implementations. The engine treats a
// denied principal as a hard failure before any mutation; these gates
// decide who passes.
package auth

import (
	"context"

	"github.com/pi-chain/piswap/x/dex/types"
)

// OpenGate authorizes every principal. Suitable for single-operator
// local deployments where the transport layer is trusted.
type OpenGate struct{}

// Authorize implements types.AuthGate.
func (OpenGate) Authorize(_ context.Context, principal string) error {
	if principal == "" {
		return types.ErrUnauthorized.Wrap("principal cannot be empty")
	}
	return nil
}

// AllowlistGate authorizes only a fixed set of principals.
type AllowlistGate struct {
	principals map[string]struct{}
}

// NewAllowlist builds a gate from the given principals.
func NewAllowlist(principals ...string) *AllowlistGate {
	set := make(map[string]struct{}, len(principals))
	for _, p := range principals {
		set[p] = struct{}{}
	}
	return &AllowlistGate{principals: set}
}

// Authorize implements types.AuthGate.
func (g *AllowlistGate) Authorize(_ context.Context, principal string) error {
	if _, ok := g.principals[principal]; !ok {
		return types.ErrUnauthorized.Wrapf("principal %s is not authorized", principal)
	}
	return nil
}
