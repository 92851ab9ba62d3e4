package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/quote"
	"github.com/rustyeddy/derivpricer/report"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price the barrier option, Greeks, futures and CFD",
	Long: `Run a full quote: barrier option price, Greeks, futures price and CFD
price. Inputs come from the config file and any flags given here. When the
config enables a journal the quote is recorded there.

Examples:
  derivpricer price
  derivpricer price --barrier-type down-and-out --option-type put --barrier 40
  derivpricer price --config quote.yaml --curve`,
	Args: cobra.NoArgs,
	RunE: runPrice,
}

var priceCurve bool

func init() {
	rootCmd.AddCommand(priceCmd)
	allInputs.register(priceCmd)
	priceCmd.Flags().BoolVar(&priceCurve, "curve", false, "also compute (and journal) the payoff curve")
}

func runPrice(cmd *cobra.Command, args []string) error {
	if priceCurve {
		cfg.Curve.Enabled = true
	}
	if err := allInputs.prepare(cmd); err != nil {
		return err
	}
	req, err := cfg.ToRequest()
	if err != nil {
		return err
	}

	j, err := cfg.Journal.Open()
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j != nil {
		defer j.Close()
	}

	res, err := quote.NewService(log, j).Quote(cmd.Context(), req)
	if err != nil {
		return err
	}
	return report.Text(cmd.OutOrStdout(), res)
}
