package pricing

// Engine prices every instrument against one fixed set of market
// parameters. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	params  MarketParams
	formula Formula
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFormula selects the barrier formula family. The default is
// ReinerRubinstein.
func WithFormula(f Formula) EngineOption {
	return func(e *Engine) { e.formula = f }
}

func NewEngine(m MarketParams, opts ...EngineOption) *Engine {
	e := &Engine{params: m}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params returns a copy of the engine's market parameters.
func (e *Engine) Params() MarketParams { return e.params }

func (e *Engine) Formula() Formula { return e.formula }

func (e *Engine) PriceBarrierOption(opt OptionType, b Barrier) (float64, error) {
	return priceBarrier(e.formula, e.params, opt, b)
}

func (e *Engine) ComputeGreeks(opt OptionType, b Barrier) (Greeks, error) {
	return computeGreeks(e.formula, e.params, opt, b)
}

func (e *Engine) PriceFutures(fp FuturesParams) (float64, error) {
	return PriceFutures(e.params, fp)
}

func (e *Engine) PriceCFD(cp CFDParams) (float64, error) {
	return PriceCFD(e.params, cp)
}

func (e *Engine) PayoffCurve(opt OptionType, b Barrier, spec CurveSpec) ([]CurvePoint, error) {
	return payoffCurve(e.formula, e.params, opt, b, spec)
}
