package rebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() Input {
	return Input{
		AstRequiredMM2:     804,
		WidthMM:            300,
		CoverMM:            40,
		StirrupDiaMM:       8,
		AllowedDiametersMM: []float64{16, 20, 25},
		MaxLayers:          2,
	}
}

func TestArrange_TypicalBeam(t *testing.T) {
	// 804 mm² in a 300 mm beam: 3-φ20 (942 mm²) in a single layer.
	result, err := Arrange(StandardCatalog(), baseInput())
	require.NoError(t, err)
	require.True(t, result.Feasible)
	require.NotNil(t, result.Chosen)

	c := result.Chosen
	assert.Equal(t, 20.0, c.DiameterMM)
	assert.Equal(t, 3, c.Count)
	assert.Equal(t, 1, c.Layers)
	assert.GreaterOrEqual(t, c.AreaProvidedMM2, 804.0)
	assert.InDelta(t, 942.48, c.AreaProvidedMM2, 0.01)
}

func TestArrange_NarrowBeamInfeasible(t *testing.T) {
	// 6000 mm² cannot fit a 230 mm beam within 2 layers of 4 bars.
	in := baseInput()
	in.AstRequiredMM2 = 6000
	in.WidthMM = 230
	in.MaxBarsPerLayer = 4

	result, err := Arrange(StandardCatalog(), in)
	require.NoError(t, err)

	assert.False(t, result.Feasible)
	assert.Nil(t, result.Chosen)
	assert.Contains(t, result.Remarks, "layer limit")
}

func TestArrange_AreaInvariantAcrossSweep(t *testing.T) {
	// Every feasible candidate must provide at least the required area
	// and respect the layer limits.
	cat := StandardCatalog()
	for ast := 200.0; ast <= 4000; ast += 200 {
		in := baseInput()
		in.AstRequiredMM2 = ast
		in.WidthMM = 350

		result, err := Arrange(cat, in)
		require.NoError(t, err)

		check := func(c Candidate) {
			assert.GreaterOrEqual(t, c.AreaProvidedMM2, ast, "ast=%.0f dia=%.0f", ast, c.DiameterMM)
			assert.LessOrEqual(t, c.Layers, in.MaxLayers)
			assert.LessOrEqual(t, c.Count, in.MaxLayers*defaultMaxBarsPerLayer)
		}
		if result.Feasible {
			check(*result.Chosen)
			for _, alt := range result.Alternatives {
				check(alt)
			}
		}
	}
}

func TestArrange_Deterministic(t *testing.T) {
	cat := StandardCatalog()
	first, err := Arrange(cat, baseInput())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Arrange(cat, baseInput())
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d diverged", i)
	}
}

func TestArrange_MinAreaObjective(t *testing.T) {
	// min_area picks the smallest provided area: 4-φ16 = 804.25 mm²
	// beats 3-φ20 = 942.48 mm².
	in := baseInput()
	in.Objective = MinArea

	result, err := Arrange(StandardCatalog(), in)
	require.NoError(t, err)
	require.True(t, result.Feasible)

	assert.Equal(t, 16.0, result.Chosen.DiameterMM)
	assert.Equal(t, 4, result.Chosen.Count)
	assert.InDelta(t, 804.25, result.Chosen.AreaProvidedMM2, 0.01)
}

func TestArrange_MinBarCountTieBreaksToSmallerDiameter(t *testing.T) {
	// At the default minimum of 3 bars, φ20 and φ25 tie on count; the
	// smaller diameter wins.
	result, err := Arrange(StandardCatalog(), baseInput())
	require.NoError(t, err)
	require.True(t, result.Feasible)

	assert.Equal(t, 20.0, result.Chosen.DiameterMM)
	require.NotEmpty(t, result.Alternatives)
	assert.Equal(t, 25.0, result.Alternatives[0].DiameterMM)
	assert.Equal(t, 3, result.Alternatives[0].Count)
}

func TestArrange_SpillsIntoSecondLayer(t *testing.T) {
	// A narrow beam forces the bar count into two layers.
	in := baseInput()
	in.AstRequiredMM2 = 1800
	in.WidthMM = 230
	in.AllowedDiametersMM = []float64{20}

	result, err := Arrange(StandardCatalog(), in)
	require.NoError(t, err)
	require.True(t, result.Feasible, result.Remarks)

	// 230 wide fits 3 φ20 per row; ceil(1800/314.16)=6 bars → 2 layers.
	assert.Equal(t, 6, result.Chosen.Count)
	assert.Equal(t, 2, result.Chosen.Layers)
	assert.Equal(t, 3, result.Chosen.BarsPerLayer)
}

func TestArrange_AlternativesBounded(t *testing.T) {
	in := baseInput()
	in.AllowedDiametersMM = []float64{12, 16, 20, 25, 28, 32}
	in.MaxAlternatives = 2

	result, err := Arrange(StandardCatalog(), in)
	require.NoError(t, err)
	require.True(t, result.Feasible)
	assert.LessOrEqual(t, len(result.Alternatives), 2)
}

func TestArrange_InputErrors(t *testing.T) {
	cat := StandardCatalog()

	cases := []struct {
		name   string
		mutate func(*Input)
	}{
		{"non-positive ast", func(in *Input) { in.AstRequiredMM2 = 0 }},
		{"empty diameters", func(in *Input) { in.AllowedDiametersMM = nil }},
		{"zero max layers", func(in *Input) { in.MaxLayers = 0 }},
		{"negative width", func(in *Input) { in.WidthMM = -300 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			tc.mutate(&in)
			_, err := Arrange(cat, in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestArrange_WidthTooSmallForAnyBar(t *testing.T) {
	in := baseInput()
	in.WidthMM = 100 // two 48 mm side zones leave nothing

	result, err := Arrange(StandardCatalog(), in)
	require.NoError(t, err)
	assert.False(t, result.Feasible)
	assert.Contains(t, result.Remarks, "width")
}

func TestParseObjective(t *testing.T) {
	o, err := ParseObjective("min_area")
	require.NoError(t, err)
	assert.Equal(t, MinArea, o)

	_, err = ParseObjective("min_cost")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
