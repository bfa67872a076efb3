package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pi-chain/piswap/internal/config"
	"github.com/pi-chain/piswap/x/dex/types"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [admin]",
		Short: "Initialize the exchange with an admin and protocol fee",
		Long: `Initialize creates the governance record. The engine starts
unpaused with the given protocol fee in basis points. Initialization can
only happen once; a second run fails.

With --genesis, the state is imported from a genesis JSON file instead
and the admin argument is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg config.Config, e *engine) error {
				genesisFile, _ := cmd.Flags().GetString("genesis")
				if genesisFile != "" {
					raw, err := os.ReadFile(genesisFile)
					if err != nil {
						return err
					}
					var genState types.GenesisState
					if err := json.Unmarshal(raw, &genState); err != nil {
						return fmt.Errorf("parse genesis file: %w", err)
					}
					if err := e.keeper.InitGenesis(cmd.Context(), &genState); err != nil {
						return err
					}
					cmd.Printf("imported genesis state from %s\n", genesisFile)
					return nil
				}

				admin := cfg.Admin
				if len(args) == 1 {
					admin = args[0]
				}
				if admin == "" {
					return fmt.Errorf("admin is required: pass it as an argument or set it in the config")
				}
				feeBps, _ := cmd.Flags().GetUint32("fee-bps")
				if !cmd.Flags().Changed("fee-bps") {
					feeBps = cfg.FeeBps
				}
				if err := e.keeper.Initialize(cmd.Context(), admin, feeBps); err != nil {
					return err
				}
				cmd.Printf("initialized: admin=%s fee_bps=%d\n", admin, feeBps)
				return nil
			})
		},
	}
	cmd.Flags().Uint32("fee-bps", config.Default().FeeBps, "protocol fee in basis points")
	cmd.Flags().String("genesis", "", "import state from a genesis JSON file")
	return cmd
}
