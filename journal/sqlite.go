package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/derivpricer/pricing"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertQuote(e execer, q QuoteRecord) error {
	_, err := e.Exec(`
		INSERT INTO quotes (`+quoteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.RunID, q.Time.UTC(), q.Formula, q.OptionType, q.BarrierType, q.Barrier,
		q.Spot, q.Strike, q.Maturity, q.Rate, q.Volatility,
		q.Price, q.Delta, q.Gamma, q.Vega, q.Theta, q.Rho,
		q.StorageCost, q.ConvenienceYield, q.FuturesPrice,
		q.Position, q.FinancingRate, q.HoldingPeriodDays, q.CFDPrice,
	)
	return err
}

func insertCurve(tx *sql.Tx, runID string, pts []pricing.CurvePoint) error {
	stmt, err := tx.Prepare(`INSERT INTO curve_points (run_id, seq, spot, price) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range pts {
		if _, err := stmt.Exec(runID, i, p.Spot, p.Price); err != nil {
			return fmt.Errorf("curve point %d: %w", i, err)
		}
	}
	return nil
}

// inTx runs fn in a transaction, rolling back on any error.
func (j *SQLite) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (j *SQLite) RecordQuote(q QuoteRecord) error {
	return insertQuote(j.db, q)
}

// RecordCurve stores the curve in one transaction; a partial curve is never
// left behind.
func (j *SQLite) RecordCurve(runID string, pts []pricing.CurvePoint) error {
	return j.inTx(func(tx *sql.Tx) error {
		return insertCurve(tx, runID, pts)
	})
}

// RecordQuoteWithCurve writes the quote row and its curve together: either
// both are stored or neither is.
func (j *SQLite) RecordQuoteWithCurve(q QuoteRecord, pts []pricing.CurvePoint) error {
	return j.inTx(func(tx *sql.Tx) error {
		if err := insertQuote(tx, q); err != nil {
			return err
		}
		return insertCurve(tx, q.RunID, pts)
	})
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
