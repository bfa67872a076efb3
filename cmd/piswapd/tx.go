package main

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/pi-chain/piswap/internal/config"
)

func parseAmount(raw string) (math.Int, error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}

func newAddLiquidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-liquidity [provider] [asset-a] [asset-b] [amount-a] [amount-b]",
		Short: "Deposit both assets into a pool and receive liquidity units",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				amountA, err := parseAmount(args[3])
				if err != nil {
					return err
				}
				amountB, err := parseAmount(args[4])
				if err != nil {
					return err
				}
				units, err := e.keeper.AddLiquidity(cmd.Context(), args[0], args[1], args[2], amountA, amountB)
				if err != nil {
					return err
				}
				cmd.Printf("liquidity added: units=%s\n", units)
				return nil
			})
		},
	}
}

func newRemoveLiquidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-liquidity [provider] [asset-a] [asset-b] [amount-a] [amount-b]",
		Short: "Withdraw both assets from a pool by burning liquidity units",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				amountA, err := parseAmount(args[3])
				if err != nil {
					return err
				}
				amountB, err := parseAmount(args[4])
				if err != nil {
					return err
				}
				if err := e.keeper.RemoveLiquidity(cmd.Context(), args[0], args[1], args[2], amountA, amountB); err != nil {
					return err
				}
				cmd.Println("liquidity removed")
				return nil
			})
		},
	}
}

func newSwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap [trader] [asset-in] [asset-out] [amount-in]",
		Short: "Swap an exact input amount against a pool",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				amountIn, err := parseAmount(args[3])
				if err != nil {
					return err
				}
				amountOut, err := e.keeper.Swap(cmd.Context(), args[0], args[1], args[2], amountIn)
				if err != nil {
					return err
				}
				cmd.Printf("swapped: amount_out=%s\n", amountOut)
				return nil
			})
		},
	}
}

func newUpdateFeeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-fee [caller] [fee-bps]",
		Short: "Set the protocol fee in basis points (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				feeBps, err := strconv.ParseUint(args[1], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid fee %q", args[1])
				}
				if err := e.keeper.UpdateFee(cmd.Context(), args[0], uint32(feeBps)); err != nil {
					return err
				}
				cmd.Printf("fee updated: fee_bps=%d\n", feeBps)
				return nil
			})
		},
	}
}

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause [caller]",
		Short: "Pause liquidity and swap operations (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				if err := e.keeper.Pause(cmd.Context(), args[0]); err != nil {
					return err
				}
				cmd.Println("paused")
				return nil
			})
		},
	}
}

func newUnpauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause [caller]",
		Short: "Resume liquidity and swap operations (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				if err := e.keeper.Unpause(cmd.Context(), args[0]); err != nil {
					return err
				}
				cmd.Println("unpaused")
				return nil
			})
		},
	}
}

func newWithdrawFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-fees [caller] [asset]",
		Short: "Sweep the custody balance of an asset to the admin (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				amount, err := e.keeper.WithdrawFees(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				cmd.Printf("fees withdrawn: amount=%s\n", amount)
				return nil
			})
		},
	}
}

// newMintCmd funds accounts on the local asset ledger. It exists for
// development and testing setups only.
func newMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint [holder] [asset] [amount]",
		Short: "Mint balance on the local ledger (development only)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				amount, err := parseAmount(args[2])
				if err != nil {
					return err
				}
				if err := e.ledger.Mint(cmd.Context(), args[0], args[1], amount); err != nil {
					return err
				}
				cmd.Printf("minted: holder=%s asset=%s amount=%s\n", args[0], args[1], amount)
				return nil
			})
		},
	}
}
