package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatQuoteOrg renders a QuoteRecord as an Org-mode block. Structured
// facts go into the PROPERTIES drawer, with a Notes heading for commentary.
func FormatQuoteOrg(q QuoteRecord) string {
	heading := fmt.Sprintf("** Quote: %s %s @ %g (%s)", q.OptionType, q.BarrierType, q.Barrier, shortID(q.RunID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", q.RunID)
	fmt.Fprintf(&b, ":ID: %s\n", q.RunID)
	fmt.Fprintf(&b, ":TIME: %s\n", q.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":FORMULA: %s\n", q.Formula)
	fmt.Fprintf(&b, ":SPOT: %.4f\n", q.Spot)
	fmt.Fprintf(&b, ":STRIKE: %.4f\n", q.Strike)
	fmt.Fprintf(&b, ":MATURITY: %.4f\n", q.Maturity)
	fmt.Fprintf(&b, ":RATE: %.4f\n", q.Rate)
	fmt.Fprintf(&b, ":VOLATILITY: %.4f\n", q.Volatility)
	fmt.Fprintf(&b, ":PRICE: %.4f\n", q.Price)
	fmt.Fprintf(&b, ":DELTA: %.6f\n", q.Delta)
	fmt.Fprintf(&b, ":GAMMA: %.6f\n", q.Gamma)
	fmt.Fprintf(&b, ":VEGA: %.6f\n", q.Vega)
	fmt.Fprintf(&b, ":THETA: %.6f\n", q.Theta)
	fmt.Fprintf(&b, ":RHO: %.6f\n", q.Rho)
	fmt.Fprintf(&b, ":FUTURES_PRICE: %.4f\n", q.FuturesPrice)
	fmt.Fprintf(&b, ":CFD_POSITION: %s\n", q.Position)
	fmt.Fprintf(&b, ":CFD_PRICE: %.4f\n", q.CFDPrice)
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")

	return b.String()
}

// FormatQuotesOrg renders multiple quotes separated by blank lines.
func FormatQuotesOrg(quotes []QuoteRecord) string {
	var b strings.Builder
	for i, q := range quotes {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatQuoteOrg(q))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
