// Package bbs produces the bar bending schedule: fabrication cut
// lengths with bend and hook allowances, grouping into bar marks, and
// a cutting plan that packs required lengths onto standard stock bars
// with a greedy decreasing-fit heuristic.
package bbs

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks malformed schedule input.
var ErrInvalidInput = errors.New("invalid schedule input")

// Shape identifies the fabrication shape of a bar element.
type Shape int

const (
	Straight Shape = iota
	BentUp         // cranked bar, bent up near supports
	Stirrup        // closed rectangular tie
)

// Code returns the shape code used on schedule line items.
func (s Shape) Code() string {
	switch s {
	case BentUp:
		return "CB"
	case Stirrup:
		return "RS"
	default:
		return "ST"
	}
}

func (s Shape) String() string {
	switch s {
	case BentUp:
		return "bent-up"
	case Stirrup:
		return "stirrup"
	default:
		return "straight"
	}
}

// ParseShape maps a job-file tag to a Shape.
func ParseShape(tag string) (Shape, error) {
	switch tag {
	case "straight", "":
		return Straight, nil
	case "bent_up", "bent-up":
		return BentUp, nil
	case "stirrup":
		return Stirrup, nil
	default:
		return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidInput, tag)
	}
}

// BendPolicy fixes the hook geometry and bend deductions used for cut
// lengths. Hook lengths are multiples of the bar diameter with a
// minimum absolute length.
type BendPolicy struct {
	HookAngleDeg     float64 `yaml:"hook_angle_deg"`
	HookLengthFactor float64 `yaml:"hook_length_factor"` // ×diameter
	MinHookLengthMM  float64 `yaml:"min_hook_length_mm"`
}

// SeismicHookPolicy returns the ductile-detailing default: 135° hooks
// of 9d, at least 75 mm (IS 13920 practice).
func SeismicHookPolicy() BendPolicy {
	return BendPolicy{HookAngleDeg: 135, HookLengthFactor: 9, MinHookLengthMM: 75}
}

// StandardHookPolicy returns the non-seismic default: 90° hooks of 8d.
func StandardHookPolicy() BendPolicy {
	return BendPolicy{HookAngleDeg: 90, HookLengthFactor: 8, MinHookLengthMM: 75}
}

// HookLengthMM returns one hook's straight-length allowance for a bar
// diameter.
func (p BendPolicy) HookLengthMM(dia float64) float64 {
	return math.Max(p.HookLengthFactor*dia, p.MinHookLengthMM)
}

// BendDeduction returns the length shortening applied once per bend,
// a diameter-dependent correction for the bend radius (IS 2502
// practice: 1d at 45°, 2d at 90°, 3d at 135°).
func BendDeduction(angleDeg, dia float64) float64 {
	switch {
	case angleDeg <= 45:
		return 1 * dia
	case angleDeg <= 90:
		return 2 * dia
	default:
		return 3 * dia
	}
}
