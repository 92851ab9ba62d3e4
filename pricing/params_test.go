package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionType(t *testing.T) {
	t.Parallel()

	got, err := ParseOptionType("Call")
	require.NoError(t, err)
	assert.Equal(t, Call, got)

	got, err = ParseOptionType(" put ")
	require.NoError(t, err)
	assert.Equal(t, Put, got)

	_, err = ParseOptionType("straddle")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseBarrierType(t *testing.T) {
	t.Parallel()

	for _, bt := range allBarrierTypes {
		got, err := ParseBarrierType(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	_, err := ParseBarrierType("double-knock-out")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.True(t, DownAndOut.Down())
	assert.False(t, UpAndIn.Down())
	assert.True(t, UpAndIn.KnockIn())
	assert.False(t, DownAndOut.KnockIn())
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	got, err := ParsePosition("short")
	require.NoError(t, err)
	assert.Equal(t, Short, got)
	assert.Equal(t, "long", Long.String())

	_, err = ParsePosition("flat")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseFormula(t *testing.T) {
	t.Parallel()

	got, err := ParseFormula("")
	require.NoError(t, err)
	assert.Equal(t, ReinerRubinstein, got)

	got, err = ParseFormula("simplified")
	require.NoError(t, err)
	assert.Equal(t, Simplified, got)

	_, err = ParseFormula("monte-carlo")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMarketParams_WithCopies(t *testing.T) {
	t.Parallel()

	base := atm
	bumped := base.WithSpot(101).WithRate(0.06).WithVolatility(0.25).WithMaturity(2)

	assert.Equal(t, atm, base)
	assert.Equal(t, MarketParams{Spot: 101, Strike: 100, Maturity: 2, Rate: 0.06, Volatility: 0.25}, bumped)
}
