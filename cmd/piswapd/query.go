package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pi-chain/piswap/internal/config"
	"github.com/pi-chain/piswap/x/dex/keeper"
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newQuoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote [amount-in] [reserve-in] [reserve-out]",
		Short: "Compute the constant-product output for an exact input",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amountIn, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			reserveIn, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			reserveOut, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			out, err := keeper.Quote(amountIn, reserveIn, reserveOut)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List all pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				pools, err := e.keeper.GetAllPools(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, pools)
			})
		},
	}
}

func newPoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool [asset-a] [asset-b]",
		Short: "Show a single pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				pool, err := e.keeper.GetPool(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return printJSON(cmd, pool)
			})
		},
	}
}

func newPositionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "position [asset-a] [asset-b] [provider]",
		Short: "Show a provider's liquidity units in a pool",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				units, err := e.keeper.GetPosition(cmd.Context(), args[0], args[1], args[2])
				if err != nil {
					return err
				}
				cmd.Println(units)
				return nil
			})
		},
	}
}

func newGovernanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "governance",
		Short: "Show the governance configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				gov, err := e.keeper.GetGovernance(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, gov)
			})
		},
	}
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance [holder] [asset]",
		Short: "Show a holder's ledger balance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				cmd.Println(e.ledger.BalanceOf(cmd.Context(), args[0], args[1]))
				return nil
			})
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the engine state as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				genState, err := e.keeper.ExportGenesis(cmd.Context())
				if err != nil {
					return err
				}
				outFile, _ := cmd.Flags().GetString("output")
				if outFile == "" {
					return printJSON(cmd, genState)
				}
				raw, err := json.MarshalIndent(genState, "", "  ")
				if err != nil {
					return err
				}
				return os.WriteFile(outFile, append(raw, '\n'), 0o600)
			})
		},
	}
	cmd.Flags().String("output", "", "write genesis JSON to a file instead of stdout")
	return cmd
}
