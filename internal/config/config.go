package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/transester/internal/kinetics"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Config is the on-disk form of a simulation setup.
type Config struct {
	InitialOilVolume float64       `yaml:"initial_oil_volume"`
	RateConstant     float64       `yaml:"rate_constant"`
	TotalDuration    float64       `yaml:"total_duration"`
	TimeStep         float64       `yaml:"time_step"`
	Chart            ChartConfig   `yaml:"chart"`
	Summary          SummaryConfig `yaml:"summary"`
}

type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SummaryConfig struct {
	TargetConversion float64 `yaml:"target_conversion"`
}

const (
	DefaultChartWidth       = 72
	DefaultChartHeight      = 16
	DefaultTargetConversion = 0.95
)

func DefaultConfig() *Config {
	return &Config{
		InitialOilVolume: kinetics.DefaultInitialOilVolume,
		RateConstant:     kinetics.DefaultRateConstant,
		TotalDuration:    kinetics.DefaultTotalDuration,
		TimeStep:         kinetics.DefaultTimeStep,
		Chart: ChartConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
		Summary: SummaryConfig{
			TargetConversion: DefaultTargetConversion,
		},
	}
}

// Load reads a yaml file on top of the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a yaml file on top of base. Keys absent from the file keep
// base's values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Params extracts the simulation inputs. It does not validate them.
func (c *Config) Params() kinetics.Params {
	return kinetics.Params{
		InitialOilVolume: c.InitialOilVolume,
		RateConstant:     c.RateConstant,
		TotalDuration:    c.TotalDuration,
		TimeStep:         c.TimeStep,
	}
}

// Apply overwrites the simulation inputs with p.
func (c *Config) Apply(p kinetics.Params) {
	c.InitialOilVolume = p.InitialOilVolume
	c.RateConstant = p.RateConstant
	c.TotalDuration = p.TotalDuration
	c.TimeStep = p.TimeStep
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	if x := c.Summary.TargetConversion; x <= 0 || x >= 1 {
		return fmt.Errorf("config: target conversion must be in (0, 1), got %g", x)
	}
	return nil
}
