package quote

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/rustyeddy/derivpricer/journal"
)

// Service evaluates requests, logs them and, when a journal is attached,
// records every successful quote and its curve.
type Service struct {
	log     logrus.FieldLogger
	journal journal.Journal
}

// NewService builds a Service. j may be nil to skip journaling.
func NewService(log logrus.FieldLogger, j journal.Journal) *Service {
	return &Service{log: log, journal: j}
}

func (s *Service) Quote(ctx context.Context, req Request) (*Result, error) {
	s.log.WithFields(logrus.Fields{
		"spot":       req.Market.Spot,
		"strike":     req.Market.Strike,
		"maturity":   req.Market.Maturity,
		"rate":       req.Market.Rate,
		"volatility": req.Market.Volatility,
		"barrier":    req.Barrier.Level,
	}).Debug("pricing request")

	res, err := Evaluate(ctx, req)
	if err != nil {
		s.log.WithError(err).Error("pricing failed")
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{
		"run_id":  res.RunID,
		"option":  req.Option.String(),
		"barrier": req.Barrier.Type.String(),
		"formula": req.Formula.String(),
	})
	log.WithField("price", res.Price).Info("priced")

	if s.journal == nil {
		return res, nil
	}
	if err := s.record(res); err != nil {
		log.WithError(err).Error("journal")
		return res, err
	}
	log.Debug("journaled")
	return res, nil
}

// record writes the quote and its curve, atomically when the journal
// supports it.
func (s *Service) record(res *Result) error {
	rec := Record(res)
	if ar, ok := s.journal.(journal.AtomicRecorder); ok && len(res.Curve) > 0 {
		return ar.RecordQuoteWithCurve(rec, res.Curve)
	}
	if err := s.journal.RecordQuote(rec); err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	if len(res.Curve) > 0 {
		if err := s.journal.RecordCurve(res.RunID, res.Curve); err != nil {
			return fmt.Errorf("curve: %w", err)
		}
	}
	return nil
}

// Record flattens a Result into a journal row.
func Record(res *Result) journal.QuoteRecord {
	req := res.Request
	return journal.QuoteRecord{
		RunID:   res.RunID,
		Time:    res.Time,
		Formula: req.Formula.String(),

		OptionType:  req.Option.String(),
		BarrierType: req.Barrier.Type.String(),
		Barrier:     req.Barrier.Level,

		Spot:       req.Market.Spot,
		Strike:     req.Market.Strike,
		Maturity:   req.Market.Maturity,
		Rate:       req.Market.Rate,
		Volatility: req.Market.Volatility,

		Price: res.Price,
		Delta: res.Greeks.Delta,
		Gamma: res.Greeks.Gamma,
		Vega:  res.Greeks.Vega,
		Theta: res.Greeks.Theta,
		Rho:   res.Greeks.Rho,

		StorageCost:      req.Futures.StorageCost,
		ConvenienceYield: req.Futures.ConvenienceYield,
		FuturesPrice:     res.Futures,

		Position:          req.CFD.Position.String(),
		FinancingRate:     req.CFD.FinancingRate,
		HoldingPeriodDays: req.CFD.HoldingPeriodDays,
		CFDPrice:          res.CFD,
	}
}
