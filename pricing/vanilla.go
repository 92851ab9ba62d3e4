package pricing

import "math"

// terms are the quantities shared by the vanilla and barrier formulas for a
// single market state. Callers guarantee S, K, H, T and σ are positive.
type terms struct {
	s, k, h, t, r, sigma float64

	sqrtT  float64
	volT   float64 // σ√T
	disc   float64 // e^(-rT)
	d1, d2 float64
	lambda float64 // (r − σ²/2) / σ²
}

func newTerms(m MarketParams, level float64) terms {
	tm := terms{
		s:     m.Spot,
		k:     m.Strike,
		h:     level,
		t:     m.Maturity,
		r:     m.Rate,
		sigma: m.Volatility,
	}
	tm.sqrtT = math.Sqrt(tm.t)
	tm.volT = tm.sigma * tm.sqrtT
	tm.disc = math.Exp(-tm.r * tm.t)
	tm.d1 = (math.Log(tm.s/tm.k) + (tm.r+0.5*tm.sigma*tm.sigma)*tm.t) / tm.volT
	tm.d2 = tm.d1 - tm.volT
	tm.lambda = (tm.r - 0.5*tm.sigma*tm.sigma) / (tm.sigma * tm.sigma)
	return tm
}

func (tm terms) vanillaCall() float64 {
	return tm.s*normCDF(tm.d1) - tm.k*tm.disc*normCDF(tm.d2)
}

func (tm terms) vanillaPut() float64 {
	return tm.k*tm.disc*normCDF(-tm.d2) - tm.s*normCDF(-tm.d1)
}

func (tm terms) vanilla(opt OptionType) float64 {
	if opt == Call {
		return tm.vanillaCall()
	}
	return tm.vanillaPut()
}

// BlackScholes prices a European option without a barrier.
func BlackScholes(m MarketParams, opt OptionType) (float64, error) {
	if err := requireFinite(m.fields()...); err != nil {
		return 0, err
	}
	if !opt.valid() {
		return 0, invalidOption(opt)
	}
	if err := requirePositive(
		field{"spot", m.Spot},
		field{"strike", m.Strike},
		field{"maturity", m.Maturity},
		field{"volatility", m.Volatility},
	); err != nil {
		return 0, err
	}
	return newTerms(m, m.Strike).vanilla(opt), nil
}
