package journal

import (
	"time"

	"github.com/rustyeddy/derivpricer/pricing"
)

// QuoteRecord is one priced request: the inputs and every output.
type QuoteRecord struct {
	RunID   string
	Time    time.Time
	Formula string

	OptionType  string
	BarrierType string
	Barrier     float64

	Spot       float64
	Strike     float64
	Maturity   float64
	Rate       float64
	Volatility float64

	Price float64
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64

	StorageCost      float64
	ConvenienceYield float64
	FuturesPrice     float64

	Position          string
	FinancingRate     float64
	HoldingPeriodDays float64
	CFDPrice          float64
}

// Journal stores quotes and their payoff curves. RecordQuote and RecordCurve
// are independent writes; a journal that can store both atomically also
// implements AtomicRecorder, which callers should prefer.
type Journal interface {
	RecordQuote(QuoteRecord) error
	RecordCurve(runID string, pts []pricing.CurvePoint) error
	Close() error
}

// AtomicRecorder is implemented by journals that can store a quote and its
// curve as one unit.
type AtomicRecorder interface {
	RecordQuoteWithCurve(q QuoteRecord, pts []pricing.CurvePoint) error
}
