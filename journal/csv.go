package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/derivpricer/pricing"
)

var (
	quoteHeader = []string{
		"run_id", "time", "formula", "option_type", "barrier_type", "barrier",
		"spot", "strike", "maturity", "rate", "volatility",
		"price", "delta", "gamma", "vega", "theta", "rho",
		"storage_cost", "convenience_yield", "futures_price",
		"position", "financing_rate", "holding_period_days", "cfd_price",
	}
	curveHeader = []string{"run_id", "seq", "spot", "price"}
)

type CSV struct {
	quotes *csv.Writer
	curves *csv.Writer
	qf, cf *os.File
}

// NewCSV creates (truncating) the quote and curve files and writes headers.
func NewCSV(quotesPath, curvesPath string) (*CSV, error) {
	qf, err := os.Create(quotesPath)
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(curvesPath)
	if err != nil {
		_ = qf.Close()
		return nil, err
	}

	j := &CSV{csv.NewWriter(qf), csv.NewWriter(cf), qf, cf}
	if err := j.write(j.quotes, quoteHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	if err := j.write(j.curves, curveHeader); err != nil {
		_ = j.Close()
		return nil, err
	}
	return j, nil
}

func (j *CSV) write(w *csv.Writer, rec []string) error {
	if err := w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSV) RecordQuote(q QuoteRecord) error {
	return j.write(j.quotes, []string{
		q.RunID,
		q.Time.UTC().Format(time.RFC3339Nano),
		q.Formula,
		q.OptionType,
		q.BarrierType,
		f(q.Barrier),
		f(q.Spot), f(q.Strike), f(q.Maturity), f(q.Rate), f(q.Volatility),
		f(q.Price), f(q.Delta), f(q.Gamma), f(q.Vega), f(q.Theta), f(q.Rho),
		f(q.StorageCost), f(q.ConvenienceYield), f(q.FuturesPrice),
		q.Position,
		f(q.FinancingRate), f(q.HoldingPeriodDays), f(q.CFDPrice),
	})
}

func (j *CSV) RecordCurve(runID string, pts []pricing.CurvePoint) error {
	for i, p := range pts {
		err := j.curves.Write([]string{runID, strconv.Itoa(i), f(p.Spot), f(p.Price)})
		if err != nil {
			return err
		}
	}
	j.curves.Flush()
	return j.curves.Error()
}

func (j *CSV) Close() error {
	j.quotes.Flush()
	if err := j.quotes.Error(); err != nil {
		return err
	}
	j.curves.Flush()
	if err := j.curves.Error(); err != nil {
		return err
	}

	if err := j.qf.Close(); err != nil {
		return err
	}
	return j.cf.Close()
}

// f keeps full precision; Greeks are routinely smaller than 1e-6.
func f(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
