package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rustyeddy/derivpricer/config"
	"github.com/rustyeddy/derivpricer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "derivpricer",
	Short: "Closed-form pricer for barrier options, futures and CFDs",
	Long: `Derivpricer prices single-barrier European options and their Greeks,
commodity futures under cost of carry, and CFDs with daily financing.

It provides tools for:
  - Barrier option prices (up/down, in/out, call/put)
  - Finite-difference Greeks
  - Futures and CFD pricing
  - Payoff curves as CSV
  - Quote journals in CSV or SQLite

Inputs come from a YAML/JSON config file and per-command flags.
Global flags may also be set through DERIVPRICER_* environment variables.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	v   = viper.New()
	cfg *config.Config
	log *logrus.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (YAML or JSON; defaults when empty)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")

	v.SetEnvPrefix("DERIVPRICER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(pf); err != nil {
		panic(err)
	}
}

// setup reads the config and builds the logger before any subcommand runs.
// Each command validates the config sections it uses.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if path := v.GetString("config"); path != "" {
		if cfg, err = config.ReadFile(path); err != nil {
			return err
		}
	} else {
		cfg = config.Default()
	}

	if lvl := v.GetString("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	if f := v.GetString("log-format"); f != "" {
		cfg.Logging.Format = f
	}
	if err := cfg.ValidateFor(config.SectionLogging); err != nil {
		return err
	}

	if log, err = logger.New(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.WithField("config", v.GetString("config")).Debug("configured")
	return nil
}
