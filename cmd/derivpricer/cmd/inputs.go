package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/derivpricer/config"
)

// floatInput is a numeric flag that overrides one config field when set.
type floatInput struct {
	name  string
	usage string
	field func(c *config.Config) **float64
}

var marketInputs = []floatInput{
	{"spot", "spot price S", func(c *config.Config) **float64 { return &c.Market.Spot }},
	{"strike", "strike price K", func(c *config.Config) **float64 { return &c.Market.Strike }},
	{"maturity", "time to maturity T in years", func(c *config.Config) **float64 { return &c.Market.Maturity }},
	{"rate", "risk-free rate r (annual, continuous)", func(c *config.Config) **float64 { return &c.Market.Rate }},
	{"volatility", "volatility sigma (annual)", func(c *config.Config) **float64 { return &c.Market.Volatility }},
}

var barrierInputs = []floatInput{
	{"barrier", "barrier level H", func(c *config.Config) **float64 { return &c.Option.Barrier }},
}

var futuresInputs = []floatInput{
	{"storage-cost", "annual storage cost", func(c *config.Config) **float64 { return &c.Futures.StorageCost }},
	{"convenience-yield", "annual convenience yield", func(c *config.Config) **float64 { return &c.Futures.ConvenienceYield }},
}

var cfdInputs = []floatInput{
	{"financing-rate", "daily financing rate", func(c *config.Config) **float64 { return &c.CFD.FinancingRate }},
	{"holding-days", "holding period in days", func(c *config.Config) **float64 { return &c.CFD.HoldingPeriodDays }},
}

// stringInput is the string counterpart of floatInput.
type stringInput struct {
	name  string
	usage string
	field func(c *config.Config) *string
}

var optionInputs = []stringInput{
	{"option-type", "call or put", func(c *config.Config) *string { return &c.Option.Type }},
	{"barrier-type", "up-and-in, up-and-out, down-and-in or down-and-out", func(c *config.Config) *string { return &c.Option.BarrierType }},
	{"formula", "reiner-rubinstein or simplified", func(c *config.Config) *string { return &c.Option.Formula }},
}

var positionInputs = []stringInput{
	{"position", "long or short", func(c *config.Config) *string { return &c.CFD.Position }},
}

// inputSet is the group of flags a command accepts and the config sections
// it needs.
type inputSet struct {
	floats   []floatInput
	strings  []stringInput
	sections []config.Section
}

func (s inputSet) register(cmd *cobra.Command) {
	for _, in := range s.floats {
		cmd.Flags().Float64(in.name, 0, in.usage)
	}
	for _, in := range s.strings {
		cmd.Flags().String(in.name, "", in.usage)
	}
}

// apply copies every flag the user set into c.
func (s inputSet) apply(cmd *cobra.Command, c *config.Config) error {
	fs := cmd.Flags()
	for _, in := range s.floats {
		if !fs.Changed(in.name) {
			continue
		}
		x, err := fs.GetFloat64(in.name)
		if err != nil {
			return err
		}
		*in.field(c) = config.Float(x)
	}
	for _, in := range s.strings {
		if !fs.Changed(in.name) {
			continue
		}
		x, err := fs.GetString(in.name)
		if err != nil {
			return err
		}
		*in.field(c) = x
	}
	return nil
}

// prepare applies the flags to the loaded config and validates the
// sections the command reads.
func (s inputSet) prepare(cmd *cobra.Command) error {
	if err := s.apply(cmd, cfg); err != nil {
		return err
	}
	return cfg.ValidateFor(s.sections...)
}

func join(groups ...[]floatInput) []floatInput {
	var out []floatInput
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var (
	optionSet = inputSet{
		floats:   join(marketInputs, barrierInputs),
		strings:  optionInputs,
		sections: []config.Section{config.SectionMarket, config.SectionOption},
	}
	curveSet = inputSet{
		floats:   optionSet.floats,
		strings:  optionSet.strings,
		sections: []config.Section{config.SectionMarket, config.SectionOption, config.SectionCurve},
	}
	futuresSet = inputSet{
		floats:   join(marketInputs, futuresInputs),
		sections: []config.Section{config.SectionFutures},
	}
	cfdSet = inputSet{
		floats:   join(marketInputs, cfdInputs),
		strings:  positionInputs,
		sections: []config.Section{config.SectionCFD},
	}
	allInputs = inputSet{
		floats:  join(marketInputs, barrierInputs, futuresInputs, cfdInputs),
		strings: append(append([]stringInput{}, optionInputs...), positionInputs...),
		sections: []config.Section{
			config.SectionMarket, config.SectionOption, config.SectionFutures,
			config.SectionCFD, config.SectionCurve, config.SectionJournal,
		},
	}
)
