package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Greater(t, cfg.Grid.Size(), 0)
	assert.Equal(t, "INR", cfg.Cost.Currency)
	assert.Contains(t, cfg.Cost.ConcretePerM3, 25)
	assert.Equal(t, []float64{12000}, cfg.StockLengthsMM)
	// Baseline is the conservative corner of the grid.
	assert.Equal(t, 400.0, cfg.Baseline.BMM)
	assert.Equal(t, 750.0, cfg.Baseline.DMM)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cover_mm: 60
cost:
  concrete_per_m3:
    20: 6100
    25: 6700
  steel_per_kg: 70
  formwork_per_m2: 500
  congestion_threshold_pt: 2.0
  congestion_multiplier: 1.2
  location_factor: 1.1
  currency: INR
stock_lengths_mm: [12000, 9000]
workers: 8
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.CoverMM)
	assert.Equal(t, 70.0, cfg.Cost.SteelPerKg)
	assert.Equal(t, 1.1, cfg.Cost.LocationFactor)
	assert.Equal(t, []float64{12000, 9000}, cfg.StockLengthsMM)
	assert.Equal(t, 8, cfg.Workers)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Grid, cfg.Grid)
	assert.Equal(t, Default().TopN, cfg.TopN)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cover_mm: [not a number"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
