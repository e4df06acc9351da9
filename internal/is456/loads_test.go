package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoverningDemand_GravityOnly(t *testing.T) {
	// With no wind, 1.5(DL+IL) governs.
	mu, combo := GoverningDemand(LoadEffects{Dead: 60, Live: 40}, Combinations)

	assert.InDelta(t, 150.0, mu, 1e-9)
	assert.Equal(t, "1", combo.ID)
}

func TestGoverningDemand_WindGoverns(t *testing.T) {
	// Large wind effect: 1.5(DL+WL) beats the gravity combination.
	mu, combo := GoverningDemand(LoadEffects{Dead: 50, Live: 10, Wind: 80}, Combinations)

	assert.InDelta(t, 195.0, mu, 1e-9) // 1.5·(50+80)
	assert.Equal(t, "3", combo.ID)
}

func TestFactored(t *testing.T) {
	lc := Combinations[1] // 1.2(DL+IL+WL)
	got := lc.Factored(LoadEffects{Dead: 10, Live: 20, Wind: 30})
	assert.InDelta(t, 72.0, got, 1e-9)
}
