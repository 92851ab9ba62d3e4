package pricing

import "fmt"

const (
	DefaultCurveSamples = 100
	DefaultCurveFrom    = 0.5
	DefaultCurveTo      = 1.5
)

// CurvePoint is one sample of a payoff curve.
type CurvePoint struct {
	Spot  float64 `json:"spot"`
	Price float64 `json:"price"`
}

// CurveSpec is an inclusive, evenly spaced range of spot prices.
type CurveSpec struct {
	From    float64
	To      float64
	Samples int
}

// DefaultCurve spans [0.5·K, 1.5·K] with 100 samples.
func DefaultCurve(strike float64) CurveSpec {
	return CurveSpec{
		From:    DefaultCurveFrom * strike,
		To:      DefaultCurveTo * strike,
		Samples: DefaultCurveSamples,
	}
}

// Spots returns the sample spots, first and last included.
func (c CurveSpec) Spots() ([]float64, error) {
	if c.Samples < 2 {
		return nil, fmt.Errorf("%w: curve needs at least 2 samples, got %d", ErrInvalidArgument, c.Samples)
	}
	if !(c.From < c.To) {
		return nil, fmt.Errorf("%w: curve range [%g, %g] is empty", ErrInvalidArgument, c.From, c.To)
	}
	step := (c.To - c.From) / float64(c.Samples-1)
	out := make([]float64, c.Samples)
	for i := range out {
		out[i] = c.From + float64(i)*step
	}
	out[len(out)-1] = c.To
	return out, nil
}

func payoffCurve(f Formula, m MarketParams, opt OptionType, b Barrier, spec CurveSpec) ([]CurvePoint, error) {
	spots, err := spec.Spots()
	if err != nil {
		return nil, err
	}
	out := make([]CurvePoint, len(spots))
	for i, s := range spots {
		p, err := priceBarrier(f, m.WithSpot(s), opt, b)
		if err != nil {
			return nil, fmt.Errorf("curve sample %d (spot %g): %w", i, s, err)
		}
		out[i] = CurvePoint{Spot: s, Price: p}
	}
	return out, nil
}

// PayoffCurve prices the option at every spot of spec, holding every other
// input fixed.
func PayoffCurve(m MarketParams, opt OptionType, b Barrier, spec CurveSpec) ([]CurvePoint, error) {
	return payoffCurve(ReinerRubinstein, m, opt, b, spec)
}
