// Package report renders quote results for people and spreadsheets.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/quote"
)

const (
	pricePlaces = 4
	greekPlaces = 6
)

// Fixed rounds x half away from zero and renders exactly places decimals.
// Non-finite values are printed as-is.
func Fixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

// Text writes the result panel: price, Greeks in fixed order, futures and
// CFD.
func Text(w io.Writer, res *quote.Result) error {
	lines := []string{
		fmt.Sprintf("Run: %s", res.RunID),
		fmt.Sprintf("Barrier Option Price: %s", Fixed(res.Price, pricePlaces)),
	}
	for _, s := range res.Greeks.Ordered() {
		lines = append(lines, fmt.Sprintf("%6s: %s", s.Name, Fixed(s.Value, greekPlaces)))
	}
	lines = append(lines,
		fmt.Sprintf("Futures Price: %s", Fixed(res.Futures, pricePlaces)),
		fmt.Sprintf("CFD Price: %s", Fixed(res.CFD, pricePlaces)),
	)

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Greeks writes only the sensitivities block.
func Greeks(w io.Writer, g pricing.Greeks) error {
	for _, s := range g.Ordered() {
		if _, err := fmt.Fprintf(w, "%6s: %s\n", s.Name, Fixed(s.Value, greekPlaces)); err != nil {
			return err
		}
	}
	return nil
}

// CurveCSV writes a spot,price table with a header row.
func CurveCSV(w io.Writer, pts []pricing.CurvePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"spot", "price"}); err != nil {
		return err
	}
	for _, p := range pts {
		if err := cw.Write([]string{Fixed(p.Spot, pricePlaces), Fixed(p.Price, greekPlaces)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
