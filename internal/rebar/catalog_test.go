package rebar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardCatalog_Areas(t *testing.T) {
	cat := StandardCatalog()

	area, ok := cat.Area(20)
	require.True(t, ok)
	assert.InDelta(t, math.Pi*400/4, area, 1e-9)
	assert.InDelta(t, 314.159, area, 0.001)

	_, ok = cat.Area(14)
	assert.False(t, ok, "14 mm is not a catalog size")
}

func TestStandardCatalog_MainBars(t *testing.T) {
	main := StandardCatalog().MainBars()
	for _, b := range main {
		assert.GreaterOrEqual(t, b.DiameterMM, 12.0)
	}
	assert.Contains(t, main.Diameters(), 32.0)
	assert.NotContains(t, main.Diameters(), 8.0)
}

func TestUnitWeightKgPerM(t *testing.T) {
	// 16 mm bar weighs about 1.58 kg/m.
	assert.InDelta(t, 1.578, UnitWeightKgPerM(16), 0.005)
	// Weight scales with d²: a 32 mm bar is 4× a 16 mm bar.
	assert.InDelta(t, 4*UnitWeightKgPerM(16), UnitWeightKgPerM(32), 1e-9)
}
