package pricing

import (
	"fmt"
	"strings"
)

// MarketParams holds the inputs shared by every instrument. It is a value
// type: perturbations are made on copies via the With* helpers.
type MarketParams struct {
	Spot       float64 `json:"spot" yaml:"spot"`
	Strike     float64 `json:"strike" yaml:"strike"`
	Maturity   float64 `json:"maturity" yaml:"maturity"` // years
	Rate       float64 `json:"rate" yaml:"rate"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
}

func (m MarketParams) WithSpot(s float64) MarketParams {
	m.Spot = s
	return m
}

func (m MarketParams) WithMaturity(t float64) MarketParams {
	m.Maturity = t
	return m
}

func (m MarketParams) WithRate(r float64) MarketParams {
	m.Rate = r
	return m
}

func (m MarketParams) WithVolatility(v float64) MarketParams {
	m.Volatility = v
	return m
}

func (m MarketParams) fields() []field {
	return []field{
		{"spot", m.Spot},
		{"strike", m.Strike},
		{"maturity", m.Maturity},
		{"rate", m.Rate},
		{"volatility", m.Volatility},
	}
}

// OptionType is call or put. The zero value is invalid.
type OptionType int

const (
	Call OptionType = iota + 1
	Put
)

func (o OptionType) String() string {
	switch o {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", int(o))
}

func (o OptionType) valid() bool { return o == Call || o == Put }

// ParseOptionType accepts "call" or "put" (case-insensitive).
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: option type %q", ErrInvalidArgument, s)
}

// BarrierType selects the barrier side and whether crossing activates or
// deactivates the payoff.
type BarrierType int

const (
	UpAndIn BarrierType = iota + 1
	UpAndOut
	DownAndIn
	DownAndOut
)

var barrierNames = map[BarrierType]string{
	UpAndIn:    "up-and-in",
	UpAndOut:   "up-and-out",
	DownAndIn:  "down-and-in",
	DownAndOut: "down-and-out",
}

func (b BarrierType) String() string {
	if s, ok := barrierNames[b]; ok {
		return s
	}
	return fmt.Sprintf("BarrierType(%d)", int(b))
}

// Down reports whether the barrier sits below the spot at inception.
func (b BarrierType) Down() bool { return b == DownAndIn || b == DownAndOut }

// KnockIn reports whether crossing the barrier activates the option.
func (b BarrierType) KnockIn() bool { return b == UpAndIn || b == DownAndIn }

// ParseBarrierType accepts the hyphenated names, e.g. "down-and-out".
func ParseBarrierType(s string) (BarrierType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for bt, name := range barrierNames {
		if name == want {
			return bt, nil
		}
	}
	return 0, fmt.Errorf("%w: barrier type %q", ErrInvalidArgument, s)
}

// Barrier is the barrier specification of a single-barrier option.
type Barrier struct {
	Type  BarrierType
	Level float64
}

// Position is the side of a CFD.
type Position int

const (
	Long Position = iota + 1
	Short
)

func (p Position) String() string {
	switch p {
	case Long:
		return "long"
	case Short:
		return "short"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return 0, fmt.Errorf("%w: position %q", ErrInvalidArgument, s)
}

// FuturesParams are the carry adjustments of the cost-of-carry model, both
// annualized fractions of spot. The zero value means no storage cost and no
// convenience yield.
type FuturesParams struct {
	StorageCost      float64
	ConvenienceYield float64
}

// CFDParams describe a CFD holding. FinancingRate is a daily fraction of spot.
type CFDParams struct {
	Position          Position
	FinancingRate     float64
	HoldingPeriodDays float64
}
