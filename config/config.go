package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/derivpricer/pricing"
	"github.com/rustyeddy/derivpricer/quote"
)

// Config is the full set of pricing inputs plus journal and logging
// settings. Numeric inputs are pointers so an absent field can be told
// apart from an explicit zero.
type Config struct {
	Market  MarketConfig  `json:"market" yaml:"market"`
	Option  OptionConfig  `json:"option" yaml:"option"`
	Futures FuturesConfig `json:"futures" yaml:"futures"`
	CFD     CFDConfig     `json:"cfd" yaml:"cfd"`
	Curve   CurveConfig   `json:"curve" yaml:"curve"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// MarketConfig holds the inputs shared by every instrument
type MarketConfig struct {
	Spot       *float64 `json:"spot,omitempty" yaml:"spot,omitempty"`
	Strike     *float64 `json:"strike,omitempty" yaml:"strike,omitempty"`
	Maturity   *float64 `json:"maturity,omitempty" yaml:"maturity,omitempty"` // years
	Rate       *float64 `json:"rate,omitempty" yaml:"rate,omitempty"`
	Volatility *float64 `json:"volatility,omitempty" yaml:"volatility,omitempty"`
}

// OptionConfig describes the barrier option
type OptionConfig struct {
	Type        string   `json:"type" yaml:"type"`                 // "call" or "put"
	BarrierType string   `json:"barrier_type" yaml:"barrier_type"` // e.g. "up-and-out"
	Barrier     *float64 `json:"barrier,omitempty" yaml:"barrier,omitempty"`
	Formula     string   `json:"formula,omitempty" yaml:"formula,omitempty"` // "reiner-rubinstein" (default) or "simplified"
}

// FuturesConfig holds the cost-of-carry adjustments; both default to 0
type FuturesConfig struct {
	StorageCost      *float64 `json:"storage_cost,omitempty" yaml:"storage_cost,omitempty"`
	ConvenienceYield *float64 `json:"convenience_yield,omitempty" yaml:"convenience_yield,omitempty"`
}

// CFDConfig describes the CFD holding
type CFDConfig struct {
	Position          string   `json:"position" yaml:"position"`                                         // "long" or "short"
	FinancingRate     *float64 `json:"financing_rate,omitempty" yaml:"financing_rate,omitempty"`           // daily fraction
	HoldingPeriodDays *float64 `json:"holding_period_days,omitempty" yaml:"holding_period_days,omitempty"` // days
}

// CurveConfig controls the payoff sweep, expressed as multiples of strike
type CurveConfig struct {
	Enabled    bool    `json:"enabled" yaml:"enabled"`
	FromFactor float64 `json:"from_factor" yaml:"from_factor"`
	ToFactor   float64 `json:"to_factor" yaml:"to_factor"`
	Samples    int     `json:"samples" yaml:"samples"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	QuotesFile string `json:"quotes_file,omitempty" yaml:"quotes_file,omitempty"`
	CurvesFile string `json:"curves_file,omitempty" yaml:"curves_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoggingConfig selects the logrus level and formatter
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Float returns a pointer to x, for building configs in code.
func Float(x float64) *float64 { return &x }

// ReadFile parses a config file (YAML, falling back to JSON) without
// validating it. Commands validate only the sections they use.
func ReadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file and validates every section
func LoadFromFile(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func required(name string, p *float64) error {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

func positive(name string, p *float64) error {
	if err := required(name, p); err != nil {
		return err
	}
	if *p <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}

func finite(name string, p *float64) error {
	if p != nil && (math.IsNaN(*p) || math.IsInf(*p, 0)) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Section is a part of the configuration that a command depends on.
type Section int

const (
	// SectionMarket is the full market: spot, strike, maturity, rate and
	// volatility.
	SectionMarket Section = iota
	// SectionFutures is spot, maturity, rate and the optional carry
	// adjustments.
	SectionFutures
	// SectionCFD is spot, rate and the CFD holding.
	SectionCFD
	SectionOption
	SectionCurve
	SectionJournal
	SectionLogging
)

var allSections = []Section{
	SectionMarket, SectionFutures, SectionCFD, SectionOption,
	SectionCurve, SectionJournal, SectionLogging,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return c.ValidateFor(allSections...)
}

// ValidateFor checks only the given sections, in order.
func (c *Config) ValidateFor(sections ...Section) error {
	for _, s := range sections {
		if err := c.validate(s); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validate(s Section) error {
	switch s {
	case SectionMarket:
		return firstErr(
			positive("market.spot", c.Market.Spot),
			positive("market.strike", c.Market.Strike),
			positive("market.maturity", c.Market.Maturity),
			required("market.rate", c.Market.Rate),
			positive("market.volatility", c.Market.Volatility),
		)
	case SectionFutures:
		return firstErr(
			positive("market.spot", c.Market.Spot),
			positive("market.maturity", c.Market.Maturity),
			required("market.rate", c.Market.Rate),
			finite("futures.storage_cost", c.Futures.StorageCost),
			finite("futures.convenience_yield", c.Futures.ConvenienceYield),
		)
	case SectionCFD:
		return c.validateCFD()
	case SectionOption:
		return c.validateOption()
	case SectionCurve:
		return c.validateCurve()
	case SectionJournal:
		return c.validateJournal()
	case SectionLogging:
		return c.validateLogging()
	}
	return fmt.Errorf("unknown config section %d", int(s))
}

func (c *Config) validateOption() error {
	if err := positive("option.barrier", c.Option.Barrier); err != nil {
		return err
	}
	if _, err := pricing.ParseOptionType(c.Option.Type); err != nil {
		return fmt.Errorf("option.type must be 'call' or 'put'")
	}
	if _, err := pricing.ParseBarrierType(c.Option.BarrierType); err != nil {
		return fmt.Errorf("option.barrier_type must be one of up-and-in, up-and-out, down-and-in, down-and-out")
	}
	if _, err := pricing.ParseFormula(c.Option.Formula); err != nil {
		return fmt.Errorf("option.formula must be 'reiner-rubinstein' or 'simplified'")
	}
	return nil
}

func (c *Config) validateCFD() error {
	if err := firstErr(
		positive("market.spot", c.Market.Spot),
		required("market.rate", c.Market.Rate),
	); err != nil {
		return err
	}
	if _, err := pricing.ParsePosition(c.CFD.Position); err != nil {
		return fmt.Errorf("cfd.position must be 'long' or 'short'")
	}
	if err := required("cfd.financing_rate", c.CFD.FinancingRate); err != nil {
		return err
	}
	if err := required("cfd.holding_period_days", c.CFD.HoldingPeriodDays); err != nil {
		return err
	}
	if *c.CFD.HoldingPeriodDays < 0 {
		return fmt.Errorf("cfd.holding_period_days must not be negative")
	}
	return nil
}

func (c *Config) validateCurve() error {
	if !c.Curve.Enabled {
		return nil
	}
	if c.Curve.Samples < 2 {
		return fmt.Errorf("curve.samples must be at least 2")
	}
	if c.Curve.FromFactor <= 0 || c.Curve.FromFactor >= c.Curve.ToFactor {
		return fmt.Errorf("curve.from_factor must be positive and less than curve.to_factor")
	}
	return nil
}

func (c *Config) validateJournal() error {
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.QuotesFile == "" || c.Journal.CurvesFile == "" {
			return fmt.Errorf("journal quotes_file and curves_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if c.Logging.Level != "" {
		if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be 'text' or 'json'")
	}
	return nil
}

// value maps an absent field to NaN, which the pricing engine reports as a
// missing parameter.
func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// MarketParams converts the market section.
func (c *Config) MarketParams() pricing.MarketParams {
	return pricing.MarketParams{
		Spot:       value(c.Market.Spot),
		Strike:     value(c.Market.Strike),
		Maturity:   value(c.Market.Maturity),
		Rate:       value(c.Market.Rate),
		Volatility: value(c.Market.Volatility),
	}
}

// FuturesParams converts the futures section; absent adjustments are 0.
func (c *Config) FuturesParams() pricing.FuturesParams {
	return pricing.FuturesParams{
		StorageCost:      valueOr(c.Futures.StorageCost, 0),
		ConvenienceYield: valueOr(c.Futures.ConvenienceYield, 0),
	}
}

// CFDParams converts the cfd section.
func (c *Config) CFDParams() (pricing.CFDParams, error) {
	pos, err := pricing.ParsePosition(c.CFD.Position)
	if err != nil {
		return pricing.CFDParams{}, err
	}
	return pricing.CFDParams{
		Position:          pos,
		FinancingRate:     value(c.CFD.FinancingRate),
		HoldingPeriodDays: value(c.CFD.HoldingPeriodDays),
	}, nil
}

// OptionSpec is the parsed option section.
type OptionSpec struct {
	Type    pricing.OptionType
	Barrier pricing.Barrier
	Formula pricing.Formula
}

// OptionSpec parses the option section.
func (c *Config) OptionSpec() (OptionSpec, error) {
	opt, err := pricing.ParseOptionType(c.Option.Type)
	if err != nil {
		return OptionSpec{}, err
	}
	bt, err := pricing.ParseBarrierType(c.Option.BarrierType)
	if err != nil {
		return OptionSpec{}, err
	}
	formula, err := pricing.ParseFormula(c.Option.Formula)
	if err != nil {
		return OptionSpec{}, err
	}
	return OptionSpec{
		Type:    opt,
		Barrier: pricing.Barrier{Type: bt, Level: value(c.Option.Barrier)},
		Formula: formula,
	}, nil
}

// CurveSpec returns the sweep around the configured strike, or nil when the
// curve is disabled.
func (c *Config) CurveSpec() *pricing.CurveSpec {
	if !c.Curve.Enabled {
		return nil
	}
	strike := value(c.Market.Strike)
	return &pricing.CurveSpec{
		From:    c.Curve.FromFactor * strike,
		To:      c.Curve.ToFactor * strike,
		Samples: c.Curve.Samples,
	}
}

// ToRequest turns the configuration into typed pricing inputs. Unknown
// enum strings fail with pricing.ErrInvalidArgument.
func (c *Config) ToRequest() (quote.Request, error) {
	spec, err := c.OptionSpec()
	if err != nil {
		return quote.Request{}, err
	}
	cfd, err := c.CFDParams()
	if err != nil {
		return quote.Request{}, err
	}
	return quote.Request{
		Market:  c.MarketParams(),
		Formula: spec.Formula,
		Option:  spec.Type,
		Barrier: spec.Barrier,
		Futures: c.FuturesParams(),
		CFD:     cfd,
		Curve:   c.CurveSpec(),
	}, nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Market: MarketConfig{
			Spot:       Float(100),
			Strike:     Float(100),
			Maturity:   Float(1),
			Rate:       Float(0.05),
			Volatility: Float(0.2),
		},
		Option: OptionConfig{
			Type:        "call",
			BarrierType: "up-and-out",
			Barrier:     Float(120),
			Formula:     "reiner-rubinstein",
		},
		Futures: FuturesConfig{
			StorageCost:      Float(0.02),
			ConvenienceYield: Float(0.01),
		},
		CFD: CFDConfig{
			Position:          "long",
			FinancingRate:     Float(0.0002),
			HoldingPeriodDays: Float(30),
		},
		Curve: CurveConfig{
			Enabled:    false,
			FromFactor: pricing.DefaultCurveFrom,
			ToFactor:   pricing.DefaultCurveTo,
			Samples:    pricing.DefaultCurveSamples,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
