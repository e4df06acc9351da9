package is456

// IS 456:2000 Material Constants (Limit State Method)

const (
	// Partial safety factors for material strength
	// Clause 36.4.2.1
	GammaConcrete = 1.5
	GammaSteel    = 1.15

	// Ultimate compressive strain in concrete
	// Clause 38.1(b)
	EpsilonCU = 0.0035

	// Modulus of elasticity for steel (Clause 5.6.3)
	Es = 200000.0 // MPa

	// Unit weight of reinforcing steel
	SteelDensity = 7850.0 // kg/m³

	// Unit weight of reinforced concrete (Clause 19.2.1)
	ConcreteDensity = 25.0 // kN/m³
)

// XuMaxRatio returns the limiting neutral axis depth ratio xu,max/d
// for a given steel grade.
// IS 456:2000 Clause 38.1, Note
func XuMaxRatio(fy float64) float64 {
	switch {
	case fy <= 250:
		return 0.53
	case fy <= 415:
		return 0.48
	default:
		return 0.46
	}
}

// MuLim calculates the limiting moment of resistance of a singly
// reinforced rectangular section in kN-m.
// IS 456:2000 Annex G, G-1.1(c): Mu,lim = 0.36·(xu,max/d)·(1 − 0.42·xu,max/d)·b·d²·fck
func MuLim(fck, fy, b, d float64) float64 {
	k := XuMaxRatio(fy)
	return 0.36 * k * (1 - 0.42*k) * b * d * d * fck / 1e6
}

// AstMin calculates the minimum tension reinforcement area in mm².
// IS 456:2000 Clause 26.5.1.1(a): As,min = 0.85·b·d/fy
func AstMin(b, d, fy float64) float64 {
	return 0.85 * b * d / fy
}

// AstMax calculates the maximum reinforcement area (tension or
// compression) in mm².
// IS 456:2000 Clause 26.5.1.1(b): As,max = 0.04·b·D
func AstMax(b, D float64) float64 {
	return 0.04 * b * D
}
