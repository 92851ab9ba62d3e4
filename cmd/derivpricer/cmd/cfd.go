package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/report"
)

var cfdCmd = &cobra.Command{
	Use:   "cfd",
	Short: "Price a CFD holding net of financing",
	Long: `Price a long or short CFD: the spot move over the holding period less
the accrued daily financing.

Example:
  derivpricer cfd --position short --financing-rate 0.0002 --holding-days 30`,
	Args: cobra.NoArgs,
	RunE: runCFD,
}

func init() {
	rootCmd.AddCommand(cfdCmd)
	cfdSet.register(cfdCmd)
}

func runCFD(cmd *cobra.Command, args []string) error {
	if err := cfdSet.prepare(cmd); err != nil {
		return err
	}
	cp, err := cfg.CFDParams()
	if err != nil {
		return err
	}
	m := cfg.MarketParams()
	price, err := pricing.NewEngine(m).PriceCFD(cp)
	if err != nil {
		return err
	}
	cost, err := pricing.FinancingCost(m, cp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Position: %s\n", cp.Position)
	fmt.Fprintf(out, "Financing Cost: %s\n", report.Fixed(cost, 6))
	_, err = fmt.Fprintf(out, "CFD Price: %s\n", report.Fixed(price, 4))
	return err
}
