package bbs

import (
	"fmt"
	"math"
)

// Element is one reinforcement entry from the finished design: a group
// of identical bars in a member zone.
type Element struct {
	Zone       string // location label, e.g. "B1 bottom"
	Shape      Shape
	DiameterMM float64
	Count      int

	// Straight and bent-up bars
	LengthMM    float64 // clear member length covered by the bar
	AnchorageMM float64 // total anchorage allowance, both ends

	// Bent-up bars
	CrankDepthMM  float64 // vertical rise of the crank, typically d − d'
	CrankAngleDeg float64 // 0 defaults to 45°

	// Stirrups
	MemberWidthMM float64
	MemberDepthMM float64
	CoverMM       float64

	Remarks string
}

func (e Element) validate() error {
	if e.DiameterMM <= 0 {
		return fmt.Errorf("%w: element %q has non-positive diameter", ErrInvalidInput, e.Zone)
	}
	if e.Count <= 0 {
		return fmt.Errorf("%w: element %q has non-positive count", ErrInvalidInput, e.Zone)
	}
	switch e.Shape {
	case Straight:
		if e.LengthMM <= 0 {
			return fmt.Errorf("%w: straight element %q needs a positive length", ErrInvalidInput, e.Zone)
		}
	case BentUp:
		if e.LengthMM <= 0 || e.CrankDepthMM <= 0 {
			return fmt.Errorf("%w: bent-up element %q needs positive length and crank depth", ErrInvalidInput, e.Zone)
		}
	case Stirrup:
		if e.MemberWidthMM <= 0 || e.MemberDepthMM <= 0 {
			return fmt.Errorf("%w: stirrup element %q needs member width and depth", ErrInvalidInput, e.Zone)
		}
		if 2*e.CoverMM >= e.MemberWidthMM || 2*e.CoverMM >= e.MemberDepthMM {
			return fmt.Errorf("%w: stirrup element %q cover leaves no enclosed core", ErrInvalidInput, e.Zone)
		}
	default:
		return fmt.Errorf("%w: element %q has unknown shape", ErrInvalidInput, e.Zone)
	}
	return nil
}

// CutLength computes the fabrication cut length of one bar of the
// element under the bend policy.
//
// Straight bars: member length plus anchorage.
//
// Bent-up bars: straight length plus the inclined extra of each crank
// (rise/sin θ − rise/tan θ per crank) minus two bend deductions per
// crank.
//
// Stirrups: perimeter of the enclosed rectangle plus two hooks, minus
// one bend deduction per corner — three 90° corners plus the two hook
// bends at the policy angle.
func CutLength(e Element, policy BendPolicy) (float64, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}

	switch e.Shape {
	case Straight:
		return e.LengthMM + e.AnchorageMM, nil

	case BentUp:
		angle := e.CrankAngleDeg
		if angle == 0 {
			angle = 45
		}
		rad := angle * math.Pi / 180
		// Extra length of the inclined leg over its horizontal projection.
		extra := e.CrankDepthMM/math.Sin(rad) - e.CrankDepthMM/math.Tan(rad)
		// Two cranks, two bends each.
		deduction := 4 * BendDeduction(angle, e.DiameterMM)
		return e.LengthMM + e.AnchorageMM + 2*extra - deduction, nil

	default: // Stirrup
		w := e.MemberWidthMM - 2*e.CoverMM
		h := e.MemberDepthMM - 2*e.CoverMM
		perimeter := 2 * (w + h)
		hooks := 2 * policy.HookLengthMM(e.DiameterMM)
		deduction := 3*BendDeduction(90, e.DiameterMM) +
			2*BendDeduction(policy.HookAngleDeg, e.DiameterMM)
		return perimeter + hooks - deduction, nil
	}
}

// roundingStepMM is the tolerance for grouping cut lengths into one
// bar mark; fabrication cannot hold tighter than this anyway.
const roundingStepMM = 5.0

// roundLength snaps a cut length to the marking tolerance.
func roundLength(l float64) float64 {
	return math.Round(l/roundingStepMM) * roundingStepMM
}
