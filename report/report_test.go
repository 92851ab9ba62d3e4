package report

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/quote"
)

func TestFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x      float64
		places int32
		want   string
	}{
		{1.1760653996503296, 4, "1.1761"},
		{106.18365465453596, 4, "106.1837"},
		{-0.0236993, 6, "-0.023699"},
		{0, 4, "0.0000"},
		{2.5, 0, "3"},
		{math.NaN(), 4, "NaN"},
		{math.Inf(1), 4, "+Inf"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed(tt.x, tt.places), "%v", tt.x)
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	res := &quote.Result{
		RunID:   "01J0000000000000000000000",
		Price:   1.1760653996503296,
		Greeks:  pricing.Greeks{Delta: -0.0236993, Gamma: -0.0049027, Vega: -13.2438276, Theta: 1.2863773, Rho: 0.761773},
		Futures: 106.18365465453596,
		CFD:     0.4101606625487,
	}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, res))

	want := strings.Join([]string{
		"Run: 01J0000000000000000000000",
		"Barrier Option Price: 1.1761",
		" Delta: -0.023699",
		" Gamma: -0.004903",
		"  Vega: -13.243828",
		" Theta: 1.286377",
		"   Rho: 0.761773",
		"Futures Price: 106.1837",
		"CFD Price: 0.4102",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestGreeks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Greeks(&buf, pricing.Greeks{Delta: 0.5}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Delta: 0.500000", strings.TrimSpace(lines[0]))
	assert.Equal(t, "Rho: 0.000000", strings.TrimSpace(lines[4]))
}

func TestCurveCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pts := []pricing.CurvePoint{{Spot: 50, Price: 0.0123456789}, {Spot: 150, Price: 0}}
	require.NoError(t, CurveCSV(&buf, pts))

	assert.Equal(t, "spot,price\n50.0000,0.012346\n150.0000,0.000000\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTextWriteError(t *testing.T) {
	t.Parallel()

	assert.Error(t, Text(failWriter{}, &quote.Result{}))
	assert.Error(t, CurveCSV(failWriter{}, []pricing.CurvePoint{{Spot: 1, Price: 1}}))
}
