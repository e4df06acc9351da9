package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Breakdown(t *testing.T) {
	p := testProfile()

	// 300×500 over 6 m carrying 900 mm² at pt below the threshold.
	cb := p.price(300, 500, 6000, 900, 0.67, 20)

	// Concrete: 0.3·0.5·6 m³ × 5500
	assert.InDelta(t, 0.3*0.5*6*5500, cb.Concrete, 1e-9)
	// Steel: 900e-6·6 m³ × 7850 kg/m³ × 62
	assert.InDelta(t, 900*6000*1e-9*7850*62, cb.Steel, 1e-9)
	// Formwork: (0.3 + 2·0.5)·6 m² × 450
	assert.InDelta(t, 1.3*6*450, cb.Formwork, 1e-9)
	assert.Zero(t, cb.LaborAdjustment)
	assert.InDelta(t, cb.Concrete+cb.Steel+cb.Formwork, cb.Total, 1e-9)
	assert.Equal(t, "INR", cb.Currency)
}

func TestPrice_CongestionMultiplier(t *testing.T) {
	p := testProfile()

	below := p.price(300, 500, 6000, 900, 1.7, 20)
	above := p.price(300, 500, 6000, 900, 2.0, 20)

	assert.Zero(t, below.LaborAdjustment)
	assert.InDelta(t, below.Steel*(p.CongestionMultiplier-1), above.LaborAdjustment, 1e-9)
	assert.Greater(t, above.Total, below.Total)
}

func TestPrice_LocationFactorScalesEverything(t *testing.T) {
	p := testProfile()
	base := p.price(300, 500, 6000, 900, 0.67, 20)

	p.LocationFactor = 1.2
	scaled := p.price(300, 500, 6000, 900, 0.67, 20)

	assert.InDelta(t, base.Total*1.2, scaled.Total, 1e-9)
	assert.InDelta(t, base.Concrete*1.2, scaled.Concrete, 1e-9)
}

func TestPrice_NonNegative(t *testing.T) {
	cb := testProfile().price(230, 400, 4000, 400, 0.5, 20)
	for name, v := range map[string]float64{
		"concrete": cb.Concrete,
		"steel":    cb.Steel,
		"formwork": cb.Formwork,
		"labor":    cb.LaborAdjustment,
		"total":    cb.Total,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
	}
}

func TestProfileValidate(t *testing.T) {
	p := testProfile()
	require.NoError(t, p.validate())

	p.CongestionMultiplier = 0.5
	assert.ErrorIs(t, p.validate(), ErrInvalidInput)

	p = testProfile()
	p.ConcretePerM3 = nil
	assert.ErrorIs(t, p.validate(), ErrInvalidInput)

	p = testProfile()
	p.LocationFactor = 0
	assert.ErrorIs(t, p.validate(), ErrInvalidInput)
}

func TestSteelWeightKg(t *testing.T) {
	// 1000 mm² over 1 m is 7.85 kg.
	assert.InDelta(t, 7.85, SteelWeightKg(1000, 1000), 1e-9)
}
