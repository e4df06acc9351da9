// Package rebar provides the reinforcing-bar catalog and the bar
// arrangement optimizer: given a required steel area and the beam
// geometry it searches the catalog for a constructible layout of
// diameter × count × layers that satisfies IS 456 spacing rules.
package rebar

import "math"

// Bar is one catalog entry: a market bar diameter and its cross-section
// area. Standard marks the sizes normally stocked by suppliers.
type Bar struct {
	DiameterMM float64
	AreaMM2    float64
	Standard   bool
}

// Catalog is an ordered, immutable set of bar sizes. Order matters: the
// arrangement search walks it in sequence and ties resolve toward
// earlier (smaller) entries.
type Catalog []Bar

// barArea returns the exact cross-section area π·d²/4 in mm².
func barArea(dia float64) float64 {
	return math.Pi * dia * dia / 4
}

// StandardCatalog returns the default Indian-market bar catalog.
// 8 and 10 mm are stirrup sizes; 12–32 mm serve as main bars.
func StandardCatalog() Catalog {
	cat := make(Catalog, 0, 9)
	for _, d := range []float64{8, 10, 12, 16, 20, 25, 32} {
		cat = append(cat, Bar{DiameterMM: d, AreaMM2: barArea(d), Standard: true})
	}
	// Available on order, not commonly stocked.
	for _, d := range []float64{28, 36} {
		cat = append(cat, Bar{DiameterMM: d, AreaMM2: barArea(d)})
	}
	return cat
}

// Area looks up the cross-section area for a diameter. Diameters absent
// from the catalog report ok=false.
func (c Catalog) Area(dia float64) (area float64, ok bool) {
	for _, b := range c {
		if b.DiameterMM == dia {
			return b.AreaMM2, true
		}
	}
	return 0, false
}

// Diameters returns the catalog diameters in catalog order.
func (c Catalog) Diameters() []float64 {
	out := make([]float64, len(c))
	for i, b := range c {
		out[i] = b.DiameterMM
	}
	return out
}

// MainBars returns the subset of the catalog used as longitudinal
// reinforcement (12 mm and above).
func (c Catalog) MainBars() Catalog {
	out := make(Catalog, 0, len(c))
	for _, b := range c {
		if b.DiameterMM >= 12 {
			out = append(out, b)
		}
	}
	return out
}

// UnitWeightKgPerM returns the linear density of a bar in kg/m.
// Weight scales with d²: area (mm²) × 7850 kg/m³ × 10⁻⁶.
func UnitWeightKgPerM(dia float64) float64 {
	return barArea(dia) * 7850e-6
}
