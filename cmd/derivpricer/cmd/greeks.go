package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/report"
)

var greeksCmd = &cobra.Command{
	Use:   "greeks",
	Short: "Print finite-difference Greeks of the barrier option",
	Args:  cobra.NoArgs,
	RunE:  runGreeks,
}

func init() {
	rootCmd.AddCommand(greeksCmd)
	optionSet.register(greeksCmd)
}

func runGreeks(cmd *cobra.Command, args []string) error {
	if err := optionSet.prepare(cmd); err != nil {
		return err
	}
	spec, err := cfg.OptionSpec()
	if err != nil {
		return err
	}
	eng := pricing.NewEngine(cfg.MarketParams(), pricing.WithFormula(spec.Formula))
	log.WithField("formula", eng.Formula()).Debug("computing greeks")

	g, err := eng.ComputeGreeks(spec.Type, spec.Barrier)
	if err != nil {
		return err
	}
	return report.Greeks(cmd.OutOrStdout(), g)
}
