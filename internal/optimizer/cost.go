// Package optimizer implements the section/material search: a bounded
// grid search over standard beam widths, depths and material grade
// pairs that prices every candidate passing the IS 456 strength checks
// and returns the minimum-cost design with ranked alternatives.
package optimizer

import (
	"errors"
	"fmt"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/is456"
)

// ErrInvalidInput marks malformed search input; the grid search never
// starts. Individual infeasible candidates are data, not errors.
var ErrInvalidInput = errors.New("invalid optimization input")

// CostProfile prices a candidate section. Rates are location-neutral;
// LocationFactor scales the final total.
type CostProfile struct {
	ConcretePerM3         map[int]float64 `yaml:"concrete_per_m3"` // keyed by fck grade
	SteelPerKg            float64         `yaml:"steel_per_kg"`
	FormworkPerM2         float64         `yaml:"formwork_per_m2"`
	CongestionThresholdPt float64         `yaml:"congestion_threshold_pt"`
	CongestionMultiplier  float64         `yaml:"congestion_multiplier"`
	LocationFactor        float64         `yaml:"location_factor"`
	Currency              string          `yaml:"currency"`
}

func (p CostProfile) validate() error {
	if len(p.ConcretePerM3) == 0 {
		return fmt.Errorf("%w: cost profile has no concrete rates", ErrInvalidInput)
	}
	for grade, rate := range p.ConcretePerM3 {
		if rate < 0 {
			return fmt.Errorf("%w: negative concrete rate for M%d", ErrInvalidInput, grade)
		}
	}
	if p.SteelPerKg < 0 || p.FormworkPerM2 < 0 {
		return fmt.Errorf("%w: negative material rate", ErrInvalidInput)
	}
	if p.CongestionMultiplier < 1 {
		return fmt.Errorf("%w: congestion multiplier must be at least 1", ErrInvalidInput)
	}
	if p.LocationFactor <= 0 {
		return fmt.Errorf("%w: location factor must be positive", ErrInvalidInput)
	}
	return nil
}

// CostBreakdown itemizes one candidate's price. All amounts are in the
// profile currency and non-negative.
type CostBreakdown struct {
	Concrete        float64
	Steel           float64
	Formwork        float64
	LaborAdjustment float64
	Total           float64
	Currency        string
}

// SteelWeightKg converts a steel area carried over a span into weight:
// Ast (mm²) × span (mm) × density.
func SteelWeightKg(astMM2, spanMM float64) float64 {
	return astMM2 * spanMM * 1e-9 * is456.SteelDensity
}

// price computes the cost breakdown for a section of width b, total
// depth D over the span, carrying astMM2 of steel at percentage pt.
func (p CostProfile) price(bMM, dMM, spanMM, astMM2, pt float64, fck int) CostBreakdown {
	spanM := spanMM / 1e3

	volumeM3 := (bMM / 1e3) * (dMM / 1e3) * spanM
	concrete := volumeM3 * p.ConcretePerM3[fck]

	steelKg := SteelWeightKg(astMM2, spanMM)
	steel := steelKg * p.SteelPerKg

	// Soffit plus both sides.
	formworkM2 := ((bMM + 2*dMM) / 1e3) * spanM
	formwork := formworkM2 * p.FormworkPerM2

	var labor float64
	if p.CongestionThresholdPt > 0 && pt > p.CongestionThresholdPt {
		labor = steel * (p.CongestionMultiplier - 1)
	}

	total := (concrete + steel + formwork + labor) * p.LocationFactor
	return CostBreakdown{
		Concrete:        concrete * p.LocationFactor,
		Steel:           steel * p.LocationFactor,
		Formwork:        formwork * p.LocationFactor,
		LaborAdjustment: labor * p.LocationFactor,
		Total:           total,
		Currency:        p.Currency,
	}
}
