package is456

// LoadCombination represents an IS 456 load combination for the
// limit state of collapse.
// IS 456:2000 Table 18
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead float64 // DL
	Live float64 // IL (imposed)
	Wind float64 // WL (or EL, whichever governs)
}

// Combinations lists the Table 18 combinations for limit state of
// collapse. Wind factors also apply to earthquake effects.
var Combinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.5(DL + IL)",
		Dead:        1.5,
		Live:        1.5,
	},
	{
		ID:          "2",
		Description: "1.2(DL + IL + WL)",
		Dead:        1.2,
		Live:        1.2,
		Wind:        1.2,
	},
	{
		ID:          "3",
		Description: "1.5(DL + WL)",
		Dead:        1.5,
		Wind:        1.5,
	},
	{
		ID:          "4",
		Description: "0.9DL + 1.5WL",
		Dead:        0.9,
		Wind:        1.5,
	},
}

// LoadEffects holds unfactored internal forces from each load type.
// The same struct serves moments (kN-m) and shears (kN).
type LoadEffects struct {
	Dead float64
	Live float64
	Wind float64
}

// Factored applies the combination's factors to a set of load effects.
func (lc LoadCombination) Factored(e LoadEffects) float64 {
	return lc.Dead*e.Dead + lc.Live*e.Live + lc.Wind*e.Wind
}

// GoverningDemand finds the maximum factored effect across all
// combinations and reports which combination produced it.
func GoverningDemand(e LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var max float64
	var governing LoadCombination

	for _, lc := range combinations {
		if f := lc.Factored(e); f > max {
			max = f
			governing = lc
		}
	}
	return max, governing
}
