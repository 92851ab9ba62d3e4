package pricing

import (
	"fmt"
	"math"
)

// Formula selects the closed-form family used for the active (not yet
// knocked) region of a barrier option. Both share the same knock table.
type Formula int

const (
	// ReinerRubinstein is the full Reiner-Rubinstein analytical solution.
	// In and out prices sum to the vanilla price.
	ReinerRubinstein Formula = iota

	// Simplified uses a single reflection term S·(H/S)^(2λ) around the
	// vanilla price. It is kept to reproduce desktop tool output and does
	// not satisfy in/out parity.
	Simplified
)

func (f Formula) String() string {
	switch f {
	case ReinerRubinstein:
		return "reiner-rubinstein"
	case Simplified:
		return "simplified"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula accepts "reiner-rubinstein" (or empty) and "simplified".
func ParseFormula(s string) (Formula, error) {
	switch s {
	case "", "reiner-rubinstein":
		return ReinerRubinstein, nil
	case "simplified":
		return Simplified, nil
	}
	return 0, fmt.Errorf("%w: formula %q", ErrInvalidArgument, s)
}

type branchKey struct {
	opt OptionType
	bt  BarrierType
}

// branch is one row of the barrier table: when knocked the option is worth
// 0 (out) or vanilla (in); otherwise active prices the live option.
type branch struct {
	knocked func(tm terms) bool
	active  func(tm terms) float64
}

func downKnocked(tm terms) bool { return tm.s <= tm.h }
func upKnocked(tm terms) bool   { return tm.s >= tm.h }

// rrBlocks are the A, B, C, D building blocks of the Reiner-Rubinstein
// formulas for a given φ (1 call, -1 put) and η (1 down, -1 up).
type rrBlocks struct {
	a, b, c, d float64
}

func (tm terms) reinerRubinstein(phi, eta float64) rrBlocks {
	mu := tm.lambda
	shift := (1 + mu) * tm.volT
	x1 := math.Log(tm.s/tm.k)/tm.volT + shift
	x2 := math.Log(tm.s/tm.h)/tm.volT + shift
	y1 := math.Log(tm.h*tm.h/(tm.s*tm.k))/tm.volT + shift
	y2 := math.Log(tm.h/tm.s)/tm.volT + shift

	hs := tm.h / tm.s
	spotRefl := tm.s * math.Pow(hs, 2*(mu+1))
	strikeRefl := tm.k * tm.disc * math.Pow(hs, 2*mu)

	return rrBlocks{
		a: phi*tm.s*normCDF(phi*x1) - phi*tm.k*tm.disc*normCDF(phi*x1-phi*tm.volT),
		b: phi*tm.s*normCDF(phi*x2) - phi*tm.k*tm.disc*normCDF(phi*x2-phi*tm.volT),
		c: phi*spotRefl*normCDF(eta*y1) - phi*strikeRefl*normCDF(eta*y1-eta*tm.volT),
		d: phi*spotRefl*normCDF(eta*y2) - phi*strikeRefl*normCDF(eta*y2-eta*tm.volT),
	}
}

// rr builds an active-region closure that picks between the strike-above
// and strike-below-barrier combinations.
func rr(phi, eta float64, above, below func(rrBlocks) float64) func(terms) float64 {
	return func(tm terms) float64 {
		blk := tm.reinerRubinstein(phi, eta)
		if tm.k > tm.h {
			return above(blk)
		}
		return below(blk)
	}
}

var reinerRubinsteinTable = map[branchKey]branch{
	{Call, DownAndIn}: {downKnocked, rr(1, 1,
		func(x rrBlocks) float64 { return x.c },
		func(x rrBlocks) float64 { return x.a - x.b + x.d })},
	{Call, UpAndIn}: {upKnocked, rr(1, -1,
		func(x rrBlocks) float64 { return x.a },
		func(x rrBlocks) float64 { return x.b - x.c + x.d })},
	{Call, DownAndOut}: {downKnocked, rr(1, 1,
		func(x rrBlocks) float64 { return x.a - x.c },
		func(x rrBlocks) float64 { return x.b - x.d })},
	{Call, UpAndOut}: {upKnocked, rr(1, -1,
		func(x rrBlocks) float64 { return 0 },
		func(x rrBlocks) float64 { return x.a - x.b + x.c - x.d })},
	{Put, DownAndIn}: {downKnocked, rr(-1, 1,
		func(x rrBlocks) float64 { return x.b - x.c + x.d },
		func(x rrBlocks) float64 { return x.a })},
	{Put, UpAndIn}: {upKnocked, rr(-1, -1,
		func(x rrBlocks) float64 { return x.a - x.b + x.d },
		func(x rrBlocks) float64 { return x.c })},
	{Put, DownAndOut}: {downKnocked, rr(-1, 1,
		func(x rrBlocks) float64 { return x.a - x.b + x.c - x.d },
		func(x rrBlocks) float64 { return 0 })},
	{Put, UpAndOut}: {upKnocked, rr(-1, -1,
		func(x rrBlocks) float64 { return x.b - x.d },
		func(x rrBlocks) float64 { return x.a - x.c })},
}

// reflection returns S·(H/S)^(2λ) together with y and x1 of the
// single-reflection formulas.
func (tm terms) reflection() (refl, y, x1 float64) {
	drift := tm.lambda * tm.volT
	y = math.Log(tm.h*tm.h/(tm.s*tm.k))/tm.volT + drift
	x1 = math.Log(tm.s/tm.h)/tm.volT + drift
	refl = tm.s * math.Pow(tm.h/tm.s, 2*tm.lambda)
	return refl, y, x1
}

var simplifiedTable = map[branchKey]branch{
	{Call, DownAndOut}: {downKnocked, func(tm terms) float64 {
		refl, y, x1 := tm.reflection()
		return tm.vanillaCall() - refl*(normCDF(-x1)-normCDF(-y))
	}},
	{Call, UpAndOut}: {upKnocked, func(tm terms) float64 {
		refl, y, x1 := tm.reflection()
		return tm.vanillaCall() - refl*(normCDF(y)-normCDF(x1))
	}},
	{Call, DownAndIn}: {downKnocked, func(tm terms) float64 {
		refl, _, x1 := tm.reflection()
		return refl * normCDF(-x1)
	}},
	{Call, UpAndIn}: {upKnocked, func(tm terms) float64 {
		refl, y, _ := tm.reflection()
		return refl * normCDF(y)
	}},
	{Put, DownAndOut}: {downKnocked, func(tm terms) float64 {
		refl, y, x1 := tm.reflection()
		return tm.vanillaPut() + refl*(normCDF(-y)-normCDF(-x1))
	}},
	{Put, UpAndOut}: {upKnocked, func(tm terms) float64 {
		refl, y, x1 := tm.reflection()
		return tm.vanillaPut() + refl*(normCDF(x1)-normCDF(y))
	}},
	{Put, DownAndIn}: {downKnocked, func(tm terms) float64 {
		refl, y, _ := tm.reflection()
		return refl * normCDF(-y)
	}},
	{Put, UpAndIn}: {upKnocked, func(tm terms) float64 {
		refl, _, x1 := tm.reflection()
		return refl * normCDF(x1)
	}},
}

func (f Formula) table() (map[branchKey]branch, error) {
	switch f {
	case ReinerRubinstein:
		return reinerRubinsteinTable, nil
	case Simplified:
		return simplifiedTable, nil
	}
	return nil, fmt.Errorf("%w: formula %v", ErrInvalidArgument, f)
}

func invalidOption(opt OptionType) error {
	return fmt.Errorf("%w: option type %v", ErrInvalidArgument, opt)
}

func checkBarrierInputs(m MarketParams, opt OptionType, b Barrier) error {
	fields := append(m.fields(), field{"barrier", b.Level})
	if err := requireFinite(fields...); err != nil {
		return err
	}
	if !opt.valid() {
		return invalidOption(opt)
	}
	if _, ok := barrierNames[b.Type]; !ok {
		return fmt.Errorf("%w: barrier type %v", ErrInvalidArgument, b.Type)
	}
	return requirePositive(
		field{"spot", m.Spot},
		field{"strike", m.Strike},
		field{"maturity", m.Maturity},
		field{"volatility", m.Volatility},
		field{"barrier", b.Level},
	)
}

func priceBarrier(f Formula, m MarketParams, opt OptionType, b Barrier) (float64, error) {
	if err := checkBarrierInputs(m, opt, b); err != nil {
		return 0, err
	}
	tbl, err := f.table()
	if err != nil {
		return 0, err
	}

	br := tbl[branchKey{opt, b.Type}]
	tm := newTerms(m, b.Level)
	if br.knocked(tm) {
		if b.Type.KnockIn() {
			return tm.vanilla(opt), nil
		}
		return 0, nil
	}
	return br.active(tm), nil
}

// PriceBarrierOption prices a single-barrier European option with the
// Reiner-Rubinstein formulas. A spot exactly on the barrier counts as
// knocked: out-options are worth 0 and in-options the vanilla price.
func PriceBarrierOption(m MarketParams, opt OptionType, b Barrier) (float64, error) {
	return priceBarrier(ReinerRubinstein, m, opt, b)
}
