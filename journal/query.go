package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/derivpricer/pricing"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanQuote(s scanner) (QuoteRecord, error) {
	var q QuoteRecord
	err := s.Scan(
		&q.RunID, &q.Time, &q.Formula, &q.OptionType, &q.BarrierType, &q.Barrier,
		&q.Spot, &q.Strike, &q.Maturity, &q.Rate, &q.Volatility,
		&q.Price, &q.Delta, &q.Gamma, &q.Vega, &q.Theta, &q.Rho,
		&q.StorageCost, &q.ConvenienceYield, &q.FuturesPrice,
		&q.Position, &q.FinancingRate, &q.HoldingPeriodDays, &q.CFDPrice,
	)
	return q, err
}

// GetQuote returns a single quote by run ID.
func (j *SQLite) GetQuote(runID string) (QuoteRecord, error) {
	row := j.db.QueryRow(`SELECT `+quoteColumns+` FROM quotes WHERE run_id = ?`, runID)

	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return QuoteRecord{}, fmt.Errorf("quote %q not found", runID)
		}
		return QuoteRecord{}, err
	}
	return q, nil
}

// ListQuotesBetween returns quotes whose time is within [start, end).
func (j *SQLite) ListQuotesBetween(start, end time.Time) ([]QuoteRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+quoteColumns+`
		FROM quotes
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, run_id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuoteRecord
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCurve returns the payoff curve stored for runID in sample order.
func (j *SQLite) ListCurve(runID string) ([]pricing.CurvePoint, error) {
	rows, err := j.db.Query(`
		SELECT spot, price FROM curve_points
		WHERE run_id = ?
		ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pricing.CurvePoint
	for rows.Next() {
		var p pricing.CurvePoint
		if err := rows.Scan(&p.Spot, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
