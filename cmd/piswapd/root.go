package main

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pi-chain/piswap/internal/auth"
	"github.com/pi-chain/piswap/internal/config"
	"github.com/pi-chain/piswap/internal/events"
	"github.com/pi-chain/piswap/internal/ledger"
	"github.com/pi-chain/piswap/internal/statestore"
	"github.com/pi-chain/piswap/x/dex/keeper"
	"github.com/pi-chain/piswap/x/dex/types"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "piswapd",
		Short:         "piswapd runs the piswap AMM exchange engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to config file")
	rootCmd.PersistentFlags().String("home", config.Default().Home, "home directory for config and data")
	rootCmd.PersistentFlags().String("log-level", config.Default().LogLevel, "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("canonical-pairs", false, "sort asset pairs before keying the pool registry")

	rootCmd.AddCommand(
		newInitCmd(),
		newServeCmd(),
		newQuoteCmd(),
		newPoolsCmd(),
		newPoolCmd(),
		newPositionCmd(),
		newGovernanceCmd(),
		newBalanceCmd(),
		newExportCmd(),
		newAddLiquidityCmd(),
		newRemoveLiquidityCmd(),
		newSwapCmd(),
		newUpdateFeeCmd(),
		newPauseCmd(),
		newUnpauseCmd(),
		newWithdrawFeesCmd(),
		newMintCmd(),
	)

	return rootCmd
}

func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfgFile, _ := flags.GetString("config")
	return config.Load(cfgFile, flags)
}

func newLogger(level string) (log.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewLogger(os.Stderr, log.LevelOption(lvl)), nil
}

// engine bundles everything a command needs to run an operation.
type engine struct {
	keeper *keeper.Keeper
	ledger *ledger.Ledger
	store  *statestore.Store
	recent *events.MemorySink
	logger log.Logger
}

func (e *engine) Close() error {
	return e.store.Close()
}

// openEngine builds the keeper against the on-disk store under the
// configured home directory.
func openEngine(cfg config.Config, logger log.Logger) (*engine, error) {
	if err := os.MkdirAll(cfg.DBDir(), 0o750); err != nil {
		return nil, err
	}
	store, err := statestore.Open(cfg.DBDir(), logger)
	if err != nil {
		return nil, err
	}

	led, err := ledger.New(store.DB(), logger)
	if err != nil {
		store.Close()
		return nil, err
	}

	var gate types.AuthGate = auth.OpenGate{}
	if len(cfg.Principals) > 0 {
		gate = auth.NewAllowlist(cfg.Principals...)
	}

	recent := events.NewMemorySink(cfg.EventBuffer)
	sink := events.MultiSink{events.NewLogSink(logger), recent}

	opts := []keeper.Option{
		keeper.WithCanonicalPairs(cfg.CanonicalPairs),
		keeper.WithMetrics(keeper.NewMetrics()),
	}
	if cfg.CustodyAccount != "" {
		opts = append(opts, keeper.WithCustodyAccount(cfg.CustodyAccount))
	}

	return &engine{
		keeper: keeper.NewKeeper(store, led, gate, sink, logger, opts...),
		ledger: led,
		store:  store,
		recent: recent,
		logger: logger,
	}, nil
}

// withEngine runs fn against a freshly opened engine and closes it.
func withEngine(cmd *cobra.Command, fn func(cfg config.Config, e *engine) error) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	e, err := openEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(cfg, e)
}
