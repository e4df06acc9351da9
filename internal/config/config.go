// Package config holds the design configuration: the section search
// grid, cost profile, cover and stock lengths. Defaults model common
// Indian practice; a YAML file overrides them. The loaded value is
// immutable and injected into each entry point, never global.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/optimizer"
)

// Config is the full design configuration.
type Config struct {
	CoverMM float64               `yaml:"cover_mm"`
	Grid    optimizer.SectionGrid `yaml:"section_grid"`
	Cost    optimizer.CostProfile `yaml:"cost"`

	// Baseline is the conservative section used for savings reporting.
	Baseline optimizer.Baseline `yaml:"baseline"`

	// StockLengthsMM are the market stock bar lengths for the cutting
	// plan.
	StockLengthsMM []float64 `yaml:"stock_lengths_mm"`

	// Workers bounds parallel candidate evaluations; 0 evaluates
	// serially.
	Workers int `yaml:"workers"`

	// TopN is the number of alternatives reported by the section search.
	TopN int `yaml:"top_n"`
}

// Default returns the built-in configuration: IS 456 material grades,
// 2019-era Indian market rates, and 12 m stock bars.
func Default() Config {
	return Config{
		CoverMM: 50,
		Grid: optimizer.SectionGrid{
			WidthsMM: []float64{230, 300, 350, 400},
			DepthsMM: []float64{350, 400, 450, 500, 550, 600, 650, 700, 750},
			Grades: []optimizer.GradePair{
				{Fck: 20, Fy: 415},
				{Fck: 25, Fy: 415},
				{Fck: 30, Fy: 415},
				{Fck: 25, Fy: 500},
				{Fck: 30, Fy: 500},
			},
		},
		Cost: optimizer.CostProfile{
			ConcretePerM3: map[int]float64{
				20: 5500,
				25: 6000,
				30: 6500,
			},
			SteelPerKg:            62,
			FormworkPerM2:         450,
			CongestionThresholdPt: 1.8,
			CongestionMultiplier:  1.15,
			LocationFactor:        1.0,
			Currency:              "INR",
		},
		Baseline: optimizer.Baseline{
			BMM: 400,
			DMM: 750,
			Fck: 25,
			Fy:  415,
		},
		StockLengthsMM: []float64{12000},
		Workers:        4,
		TopN:           3,
	}
}

// Load returns the default configuration overlaid with the YAML file at
// path. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
