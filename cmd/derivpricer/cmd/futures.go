package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/report"
)

var futuresCmd = &cobra.Command{
	Use:   "futures",
	Short: "Price a futures contract under cost of carry",
	Long: `F = S * exp((r + storage - convenience) * T)

Example:
  derivpricer futures --spot 100 --rate 0.05 --storage-cost 0.02 --convenience-yield 0.01`,
	Args: cobra.NoArgs,
	RunE: runFutures,
}

func init() {
	rootCmd.AddCommand(futuresCmd)
	futuresSet.register(futuresCmd)
}

func runFutures(cmd *cobra.Command, args []string) error {
	if err := futuresSet.prepare(cmd); err != nil {
		return err
	}
	f, err := pricing.NewEngine(cfg.MarketParams()).PriceFutures(cfg.FuturesParams())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Futures Price: %s\n", report.Fixed(f, 4))
	return err
}
