package is456

// Maximum shear stress table, IS 456:2000 Table 20.
// τc,max in MPa keyed by concrete grade; intermediate grades use the
// next lower tabulated value.
var tauCMaxTable = []struct {
	fck    float64
	tauMax float64
}{
	{15, 2.5},
	{20, 2.8},
	{25, 3.1},
	{30, 3.5},
	{35, 3.7},
	{40, 4.0},
}

// TauCMax returns the maximum permissible shear stress τc,max (MPa)
// for a concrete grade.
// IS 456:2000 Table 20
func TauCMax(fck float64) float64 {
	tau := tauCMaxTable[0].tauMax
	for _, row := range tauCMaxTable {
		if fck >= row.fck {
			tau = row.tauMax
		}
	}
	return tau
}

// NominalShearStress calculates τv = Vu/(b·d) in MPa for a factored
// shear Vu in kN.
// IS 456:2000 Clause 40.1
func NominalShearStress(vuKN, b, d float64) float64 {
	if b <= 0 || d <= 0 {
		return 0
	}
	return vuKN * 1e3 / (b * d)
}
