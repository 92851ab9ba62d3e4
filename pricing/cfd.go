package pricing

import (
	"fmt"
	"math"
)

func checkCFD(m MarketParams, cp CFDParams) error {
	if err := requireFinite(
		field{"spot", m.Spot},
		field{"rate", m.Rate},
		field{"financing rate", cp.FinancingRate},
		field{"holding period", cp.HoldingPeriodDays},
	); err != nil {
		return err
	}
	if cp.Position != Long && cp.Position != Short {
		return fmt.Errorf("%w: position %v", ErrInvalidArgument, cp.Position)
	}
	return nil
}

// FinancingCost is the financing leg S·rate·days/365 of a CFD holding.
func FinancingCost(m MarketParams, cp CFDParams) (float64, error) {
	if err := checkCFD(m, cp); err != nil {
		return 0, err
	}
	return financing(m, cp), nil
}

func financing(m MarketParams, cp CFDParams) float64 {
	return m.Spot * cp.FinancingRate * cp.HoldingPeriodDays / DaysPerYear
}

// PriceCFD returns the net result of holding a CFD for HoldingPeriodDays:
// the carry-implied price move (signed by position) less financing.
func PriceCFD(m MarketParams, cp CFDParams) (float64, error) {
	if err := checkCFD(m, cp); err != nil {
		return 0, err
	}
	move := m.Spot * (math.Exp(m.Rate*cp.HoldingPeriodDays/DaysPerYear) - 1)
	if cp.Position == Short {
		move = -move
	}
	return move - financing(m, cp), nil
}
