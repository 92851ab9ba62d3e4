// Package quote evaluates a complete pricing request: barrier option price,
// Greeks, futures, CFD and optionally the payoff curve.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/rustyeddy/derivpricer/pkg/id"
	"github.com/rustyeddy/derivpricer/pricing"
)

// Request carries typed, already-parsed inputs.
type Request struct {
	Market  pricing.MarketParams
	Formula pricing.Formula
	Option  pricing.OptionType
	Barrier pricing.Barrier
	Futures pricing.FuturesParams
	CFD     pricing.CFDParams

	// Curve is optional; nil skips the payoff sweep.
	Curve *pricing.CurveSpec
}

// Result is everything a renderer needs for one request.
type Result struct {
	RunID   string
	Time    time.Time
	Request Request

	Price   float64
	Greeks  pricing.Greeks
	Futures float64
	CFD     float64
	Curve   []pricing.CurvePoint
}

var ids = id.NewGenerator(nil)

// Evaluate prices req. The first failing operation's error is returned
// unchanged in chain, so errors.Is against the pricing sentinels works.
func Evaluate(ctx context.Context, req Request) (*Result, error) {
	return evaluate(ctx, ids, req)
}

func evaluate(ctx context.Context, gen *id.Generator, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eng := pricing.NewEngine(req.Market, pricing.WithFormula(req.Formula))
	res := &Result{Request: req}

	var err error
	if res.Price, err = eng.PriceBarrierOption(req.Option, req.Barrier); err != nil {
		return nil, fmt.Errorf("barrier option: %w", err)
	}
	if res.Greeks, err = eng.ComputeGreeks(req.Option, req.Barrier); err != nil {
		return nil, fmt.Errorf("greeks: %w", err)
	}
	// Keep the adjustments actually priced so journals store them.
	if res.Request.Futures, err = req.Futures.Resolved(); err != nil {
		return nil, fmt.Errorf("futures: %w", err)
	}
	if res.Futures, err = eng.PriceFutures(res.Request.Futures); err != nil {
		return nil, fmt.Errorf("futures: %w", err)
	}
	if res.CFD, err = eng.PriceCFD(req.CFD); err != nil {
		return nil, fmt.Errorf("cfd: %w", err)
	}

	if req.Curve != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if res.Curve, err = eng.PayoffCurve(req.Option, req.Barrier, *req.Curve); err != nil {
			return nil, fmt.Errorf("payoff curve: %w", err)
		}
	}

	if res.RunID, res.Time, err = gen.New(); err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}
	return res, nil
}
