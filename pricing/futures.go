package pricing

import "math"

// Resolved returns fp with unspecified (NaN) adjustments set to 0. An
// infinite adjustment fails with ErrMissingParameter.
func (fp FuturesParams) Resolved() (FuturesParams, error) {
	if math.IsNaN(fp.StorageCost) {
		fp.StorageCost = 0
	}
	if math.IsNaN(fp.ConvenienceYield) {
		fp.ConvenienceYield = 0
	}
	if err := requireFinite(
		field{"storage cost", fp.StorageCost},
		field{"convenience yield", fp.ConvenienceYield},
	); err != nil {
		return FuturesParams{}, err
	}
	return fp, nil
}

// PriceFutures returns the cost-of-carry futures price
// S·exp((r + storage − convenience)·T). Only spot, maturity and rate are
// required; a NaN storage cost or convenience yield is treated as 0.
func PriceFutures(m MarketParams, fp FuturesParams) (float64, error) {
	if err := requireFinite(
		field{"spot", m.Spot},
		field{"maturity", m.Maturity},
		field{"rate", m.Rate},
	); err != nil {
		return 0, err
	}
	fp, err := fp.Resolved()
	if err != nil {
		return 0, err
	}
	carry := m.Rate + fp.StorageCost - fp.ConvenienceYield
	return m.Spot * math.Exp(carry*m.Maturity), nil
}
