package is456

import (
	"fmt"
	"math"
)

// Evaluation holds the strength-check verdict for one trial section.
// AstRequired is meaningful only when FlexureOK is true.
type Evaluation struct {
	AstRequiredMM2 float64
	MuLimKNM       float64
	TauV           float64 // nominal shear stress (MPa)
	TauCMax        float64 // permissible maximum (MPa)
	FlexureOK      bool
	ShearOK        bool
	FailureReason  string
}

// OK reports whether the section passed both strength checks.
func (e Evaluation) OK() bool {
	return e.FlexureOK && e.ShearOK
}

// Engine is the IS 456:2000 flexure/shear calculator.
type Engine struct{}

// Evaluate checks a rectangular section against a factored moment and
// shear and, when adequate, returns the required tension steel area.
//
// Flexure follows Annex G, G-1.1(b): for Mu ≤ Mu,lim,
//
//	Ast = (0.5·fck/fy)·(1 − √(1 − 4.6·Mu/(fck·b·d²)))·b·d
//
// floored at As,min (Clause 26.5.1.1a) and checked against As,max
// (Clause 26.5.1.1b). A section demanding compression steel
// (Mu > Mu,lim) is reported inadequate rather than designed doubly.
//
// Shear checks τv against τc,max (Clause 40.2.3): beyond that limit no
// amount of stirrups rescues the section.
func (Engine) Evaluate(b, D, d, fck, fy, muKNM, vuKN float64) Evaluation {
	ev := Evaluation{}

	if b <= 0 || d <= 0 || D < d {
		ev.FailureReason = fmt.Sprintf("invalid section geometry: b=%.1f D=%.1f d=%.1f", b, D, d)
		return ev
	}
	if fck <= 0 || fy <= 0 {
		ev.FailureReason = fmt.Sprintf("invalid material grades: fck=%.0f fy=%.0f", fck, fy)
		return ev
	}

	ev.MuLimKNM = MuLim(fck, fy, b, d)

	if muKNM > ev.MuLimKNM {
		ev.FailureReason = fmt.Sprintf(
			"Mu=%.2f kN-m exceeds Mu,lim=%.2f kN-m; section needs more depth or compression steel",
			muKNM, ev.MuLimKNM)
		return ev
	}

	muNmm := muKNM * 1e6
	term := 1 - 4.6*muNmm/(fck*b*d*d)
	if term < 0 {
		// Numerically unreachable once Mu ≤ Mu,lim holds, kept as a guard.
		ev.FailureReason = "moment too high for singly reinforced section"
		return ev
	}

	ast := (0.5 * fck / fy) * (1 - math.Sqrt(term)) * b * d
	astMin := AstMin(b, d, fy)
	if ast < astMin {
		ast = astMin
	}
	if astMax := AstMax(b, D); ast > astMax {
		ev.FailureReason = fmt.Sprintf(
			"required Ast=%.0f mm² exceeds As,max=%.0f mm² (0.04·b·D)", ast, astMax)
		return ev
	}

	ev.AstRequiredMM2 = ast
	ev.FlexureOK = true

	ev.TauV = NominalShearStress(vuKN, b, d)
	ev.TauCMax = TauCMax(fck)
	if ev.TauV > ev.TauCMax {
		ev.FailureReason = fmt.Sprintf(
			"τv=%.2f MPa exceeds τc,max=%.2f MPa; section too small for shear", ev.TauV, ev.TauCMax)
		return ev
	}
	ev.ShearOK = true

	return ev
}
