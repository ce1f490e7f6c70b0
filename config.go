package kmlift

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/apd/v3"
	yaml "gopkg.in/yaml.v2"
)

// DefaultSuffix is appended to the base name of every output file.
const DefaultSuffix = "-lifted"

type Config struct {
	Suffix string        `yaml:"suffix"`
	Axes   []*AxisConfig `yaml:"axes"`
}

type AxisConfig struct {
	Field  string `yaml:"field"`
	Period string `yaml:"period"`
}

// DefaultConfig matches ParseConfig on an empty document: lift longitude
// over 360 degrees, then latitude over 180.
func DefaultConfig() *Config {
	return &Config{
		Suffix: DefaultSuffix,
		Axes: []*AxisConfig{
			{Field: "longitude", Period: "360"},
			{Field: "latitude", Period: "180"},
		},
	}
}

func LoadConfig(configPath string) (*Config, error) {
	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseConfig(f)
}

func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if config.Suffix == "" {
		config.Suffix = DefaultSuffix
	}
	if len(config.Axes) == 0 {
		config.Axes = DefaultConfig().Axes
	}

	// Catch bad axes at load time rather than halfway through a batch.
	_, err = config.ResolveAxes()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// ResolveAxes converts the configured axes into solver axes. An omitted
// period falls back to the default for the field.
func (c *Config) ResolveAxes() ([]Axis, error) {
	axes := make([]Axis, len(c.Axes))
	for i, ac := range c.Axes {
		var field AxisField
		var fallback string
		switch ac.Field {
		case "longitude":
			field = FieldLongitude
			fallback = "360"
		case "latitude":
			field = FieldLatitude
			fallback = "180"
		default:
			return nil, fmt.Errorf("Unknown axis field: %s", ac.Field)
		}

		text := ac.Period
		if text == "" {
			text = fallback
		}
		period, _, err := apd.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("Invalid period for %s axis: %s", ac.Field, err)
		}
		if period.Sign() <= 0 {
			return nil, fmt.Errorf("Period for %s axis must be positive, got %s", ac.Field, text)
		}

		axes[i] = Axis{Field: field, Period: period}
	}
	return axes, nil
}
