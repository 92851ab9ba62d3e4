package pricing

import "math"

const (
	// FDStep is the finite-difference bump applied to spot, volatility and rate.
	FDStep = 1e-5

	// DaysPerYear converts day counts into year fractions.
	DaysPerYear = 365.0
)

// Greeks are finite-difference sensitivities of a barrier option price.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
	Rho   float64 `json:"rho"`
}

// Sensitivity is one named Greek.
type Sensitivity struct {
	Name  string
	Value float64
}

// GreekNames is the fixed reporting order.
var GreekNames = []string{"Delta", "Gamma", "Vega", "Theta", "Rho"}

// Ordered returns the Greeks in GreekNames order.
func (g Greeks) Ordered() []Sensitivity {
	return []Sensitivity{
		{"Delta", g.Delta},
		{"Gamma", g.Gamma},
		{"Vega", g.Vega},
		{"Theta", g.Theta},
		{"Rho", g.Rho},
	}
}

// Map returns the Greeks keyed by name.
func (g Greeks) Map() map[string]float64 {
	out := make(map[string]float64, len(GreekNames))
	for _, s := range g.Ordered() {
		out[s.Name] = s.Value
	}
	return out
}

func computeGreeks(f Formula, m MarketParams, opt OptionType, b Barrier) (Greeks, error) {
	price := func(p MarketParams) (float64, error) {
		return priceBarrier(f, p, opt, b)
	}

	p0, err := price(m)
	if err != nil {
		return Greeks{}, err
	}

	const eps = FDStep
	dt := eps / DaysPerYear

	bumps := []MarketParams{
		m.WithSpot(m.Spot + eps),
		m.WithSpot(m.Spot - eps),
		m.WithVolatility(m.Volatility + eps),
		m.WithMaturity(math.Max(m.Maturity-dt, eps)),
		m.WithRate(m.Rate + eps),
	}
	prices := make([]float64, len(bumps))
	for i, p := range bumps {
		if prices[i], err = price(p); err != nil {
			return Greeks{}, err
		}
	}
	spotUp, spotDown, volUp, timeDown, rateUp := prices[0], prices[1], prices[2], prices[3], prices[4]

	return Greeks{
		Delta: (spotUp - p0) / eps,
		Gamma: (spotUp - 2*p0 + spotDown) / (eps * eps),
		Vega:  (volUp - p0) / eps,
		Theta: (timeDown - p0) / dt,
		Rho:   (rateUp - p0) / eps,
	}, nil
}

// ComputeGreeks estimates Delta, Gamma, Vega, Theta and Rho by bumping one
// input at a time by FDStep. Theta moves maturity back one FDStep-day,
// never below FDStep years.
func ComputeGreeks(m MarketParams, opt OptionType, b Barrier) (Greeks, error) {
	return computeGreeks(ReinerRubinstein, m, opt, b)
}
