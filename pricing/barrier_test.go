package pricing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var atm = MarketParams{Spot: 100, Strike: 100, Maturity: 1, Rate: 0.05, Volatility: 0.2}

var allBarrierTypes = []BarrierType{UpAndIn, UpAndOut, DownAndIn, DownAndOut}

func TestBlackScholes_ReferenceCase(t *testing.T) {
	t.Parallel()

	call, err := BlackScholes(atm, Call)
	require.NoError(t, err)
	put, err := BlackScholes(atm, Put)
	require.NoError(t, err)

	assert.InDelta(t, 10.450583572185565, call, 1e-9)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
	assert.InDelta(t, atm.Spot-atm.Strike*math.Exp(-atm.Rate*atm.Maturity), call-put, 1e-9)
}

func TestPriceBarrierOption_ReferenceValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    MarketParams
		opt  OptionType
		b    Barrier
		want float64
	}{
		{"call up-and-out 120", atm, Call, Barrier{UpAndOut, 120}, 1.1760653996503296},
		{"call up-and-in 120", atm, Call, Barrier{UpAndIn, 120}, 9.27451817253522},
		{"put up-and-out 120", atm, Put, Barrier{UpAndOut, 120}, 5.3601278716478085},
		{"put up-and-in 120", atm, Put, Barrier{UpAndIn, 120}, 0.21339815060915557},
		{"call down-and-out 80", atm, Call, Barrier{DownAndOut, 80}, 10.35134520118454},
		{"call down-and-in 80", atm, Call, Barrier{DownAndIn, 80}, 0.09923837100101074},
		{"put down-and-out 80", atm, Put, Barrier{DownAndOut, 80}, 1.6210155090817597},
		{"put down-and-in 80", atm, Put, Barrier{DownAndIn, 80}, 3.952510513175204},
		{"put up-and-out strike below", MarketParams{100, 90, 1, 0.05, 0.2}, Put, Barrier{UpAndOut, 110}, 1.912452409411853},
		{"call up-and-out strike below", MarketParams{100, 90, 1, 0.05, 0.2}, Call, Barrier{UpAndOut, 110}, 0.8931519023737424},
		{"put down-and-in strike above", MarketParams{100, 110, 1, 0.05, 0.2}, Put, Barrier{DownAndIn, 90}, 9.620463617003328},
		{"put down-and-out strike above", MarketParams{100, 110, 1, 0.05, 0.2}, Put, Barrier{DownAndOut, 90}, 1.0548612077994584},
		{"call down-and-in strike above", MarketParams{100, 110, 1, 0.05, 0.2}, Call, Barrier{DownAndIn, 90}, 0.7439073109286198},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PriceBarrierOption(tt.m, tt.opt, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPriceBarrierOption_UpAndOutCallScenario(t *testing.T) {
	t.Parallel()

	vanilla, err := BlackScholes(atm, Call)
	require.NoError(t, err)

	got, err := PriceBarrierOption(atm, Call, Barrier{UpAndOut, 120})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, vanilla)
}

func TestPriceBarrierOption_DownAndOutPutScenario(t *testing.T) {
	t.Parallel()

	m := MarketParams{Spot: 50, Strike: 100, Maturity: 0.5, Rate: 0.03, Volatility: 0.25}
	vanilla, err := BlackScholes(m, Put)
	require.NoError(t, err)

	got, err := PriceBarrierOption(m, Put, Barrier{DownAndOut, 40})
	require.NoError(t, err)

	assert.InDelta(t, 48.51137432715554, vanilla, 1e-9)
	assert.InDelta(t, 36.27995195046731, got, 1e-9)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, vanilla)
}

// grid of spots, strikes and barriers with the spot strictly on the live
// side of the barrier.
func liveCases() []MarketParams {
	var out []MarketParams
	for _, k := range []float64{80, 100, 125} {
		for _, sigma := range []float64{0.1, 0.3} {
			for _, r := range []float64{-0.01, 0.05} {
				for _, s := range []float64{85, 100, 115} {
					out = append(out, MarketParams{Spot: s, Strike: k, Maturity: 0.75, Rate: r, Volatility: sigma})
				}
			}
		}
	}
	return out
}

func liveBarrier(bt BarrierType, spot float64) Barrier {
	if bt.Down() {
		return Barrier{bt, spot * 0.8}
	}
	return Barrier{bt, spot * 1.2}
}

func TestPriceBarrierOption_InOutParity(t *testing.T) {
	t.Parallel()

	pairs := [][2]BarrierType{{UpAndIn, UpAndOut}, {DownAndIn, DownAndOut}}
	for _, opt := range []OptionType{Call, Put} {
		for _, pair := range pairs {
			for _, m := range liveCases() {
				name := fmt.Sprintf("%v/%v/S=%g/K=%g/r=%g/v=%g", opt, pair[1], m.Spot, m.Strike, m.Rate, m.Volatility)
				t.Run(name, func(t *testing.T) {
					level := liveBarrier(pair[0], m.Spot).Level

					in, err := PriceBarrierOption(m, opt, Barrier{pair[0], level})
					require.NoError(t, err)
					out, err := PriceBarrierOption(m, opt, Barrier{pair[1], level})
					require.NoError(t, err)
					vanilla, err := BlackScholes(m, opt)
					require.NoError(t, err)

					assert.InDelta(t, vanilla, in+out, 1e-8*math.Max(1, vanilla))
				})
			}
		}
	}
}

func TestPriceBarrierOption_KnockOutBounds(t *testing.T) {
	t.Parallel()

	for _, opt := range []OptionType{Call, Put} {
		for _, bt := range []BarrierType{UpAndOut, DownAndOut} {
			for _, m := range liveCases() {
				b := liveBarrier(bt, m.Spot)

				got, err := PriceBarrierOption(m, opt, b)
				require.NoError(t, err)
				vanilla, err := BlackScholes(m, opt)
				require.NoError(t, err)

				assert.GreaterOrEqual(t, got, -1e-10, "%v %v %+v", opt, bt, m)
				assert.LessOrEqual(t, got, vanilla+1e-10, "%v %v %+v", opt, bt, m)
			}
		}
	}
}

func TestPriceBarrierOption_Knocked(t *testing.T) {
	t.Parallel()

	vanilla := map[OptionType]float64{}
	for _, opt := range []OptionType{Call, Put} {
		v, err := BlackScholes(atm, opt)
		require.NoError(t, err)
		vanilla[opt] = v
	}

	tests := []struct {
		name  string
		bt    BarrierType
		level float64
	}{
		{"up on barrier", UpAndOut, 100},
		{"up through barrier", UpAndOut, 95},
		{"up-in on barrier", UpAndIn, 100},
		{"up-in through barrier", UpAndIn, 90},
		{"down on barrier", DownAndOut, 100},
		{"down through barrier", DownAndOut, 105},
		{"down-in on barrier", DownAndIn, 100},
		{"down-in through barrier", DownAndIn, 110},
	}

	for _, f := range []Formula{ReinerRubinstein, Simplified} {
		eng := NewEngine(atm, WithFormula(f))
		for _, opt := range []OptionType{Call, Put} {
			for _, tt := range tests {
				got, err := eng.PriceBarrierOption(opt, Barrier{tt.bt, tt.level})
				require.NoError(t, err)

				want := 0.0
				if tt.bt.KnockIn() {
					want = vanilla[opt]
				}
				assert.Equal(t, want, got, "%v %v %s", f, opt, tt.name)
			}
		}
	}
}

func TestSimplifiedFormula_ReferenceValues(t *testing.T) {
	t.Parallel()

	eng := NewEngine(atm, WithFormula(Simplified))

	tests := []struct {
		name string
		opt  OptionType
		b    Barrier
		want float64
	}{
		{"call down-and-out", Call, Barrier{DownAndOut, 80}, 73.31063283501658},
		{"call down-and-in", Call, Barrier{DownAndIn, 80}, 7.356275421831727},
		{"put down-and-out", Put, Barrier{DownAndOut, 80}, 68.43357528508798},
		{"put down-and-in", Put, Barrier{DownAndIn, 80}, 70.21632468466274},
		{"call up-and-out", Call, Barrier{UpAndOut, 120}, -88.48354720225456},
		{"call up-and-in", Call, Barrier{UpAndIn, 120}, 128.26757409603061},
		{"put up-and-out", Put, Barrier{UpAndOut, 120}, -93.36060475218315},
		{"put up-and-in", Put, Barrier{UpAndIn, 120}, 29.3334433215905},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := eng.PriceBarrierOption(tt.opt, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-8)
		})
	}
}

func TestPriceBarrierOption_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    MarketParams
		opt  OptionType
		b    Barrier
		want error
	}{
		{"nan spot", atm.WithSpot(math.NaN()), Call, Barrier{UpAndOut, 120}, ErrMissingParameter},
		{"inf rate", atm.WithRate(math.Inf(1)), Call, Barrier{UpAndOut, 120}, ErrMissingParameter},
		{"nan barrier", atm, Put, Barrier{DownAndIn, math.NaN()}, ErrMissingParameter},
		{"missing beats invalid", atm.WithVolatility(math.NaN()), OptionType(9), Barrier{UpAndOut, 120}, ErrMissingParameter},
		{"unset option type", atm, OptionType(0), Barrier{UpAndOut, 120}, ErrInvalidArgument},
		{"unknown barrier type", atm, Call, Barrier{BarrierType(42), 120}, ErrInvalidArgument},
		{"zero volatility", atm.WithVolatility(0), Call, Barrier{UpAndOut, 120}, ErrNumericalDomain},
		{"zero maturity", atm.WithMaturity(0), Put, Barrier{DownAndOut, 80}, ErrNumericalDomain},
		{"negative spot", atm.WithSpot(-1), Put, Barrier{DownAndOut, 80}, ErrNumericalDomain},
		{"zero barrier", atm, Call, Barrier{DownAndOut, 0}, ErrNumericalDomain},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := PriceBarrierOption(tt.m, tt.opt, tt.b)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEngine_UnknownFormula(t *testing.T) {
	t.Parallel()

	_, err := NewEngine(atm, WithFormula(Formula(7))).PriceBarrierOption(Call, Barrier{UpAndOut, 120})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
