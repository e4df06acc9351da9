package rebar

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrInvalidInput marks structurally malformed input: the search never
// starts. Constraint violations found during the search are reported as
// data on the result instead.
var ErrInvalidInput = errors.New("invalid arrangement input")

// Objective selects how feasible candidates are ranked.
type Objective int

const (
	// MinBarCount prefers the fewest bars; ties go to the smaller
	// diameter (less steel at equal count).
	MinBarCount Objective = iota
	// MinArea prefers the smallest provided area; ties go to fewer
	// bars, then the smaller diameter for constructability.
	MinArea
)

func (o Objective) String() string {
	switch o {
	case MinArea:
		return "min_area"
	default:
		return "min_bar_count"
	}
}

// ParseObjective maps a CLI/config tag to an Objective.
func ParseObjective(s string) (Objective, error) {
	switch s {
	case "min_bar_count", "":
		return MinBarCount, nil
	case "min_area":
		return MinArea, nil
	default:
		return 0, fmt.Errorf("%w: unknown objective %q", ErrInvalidInput, s)
	}
}

// less orders candidate a before candidate b under the objective.
func (o Objective) less(a, b Candidate) bool {
	if o == MinArea {
		if a.AreaProvidedMM2 != b.AreaProvidedMM2 {
			return a.AreaProvidedMM2 < b.AreaProvidedMM2
		}
		if a.Count != b.Count {
			return a.Count < b.Count
		}
		return a.DiameterMM < b.DiameterMM
	}
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.DiameterMM < b.DiameterMM
}

// Input holds everything the arrangement search needs. Zero-valued
// optional fields pick up detailing defaults (see applyDefaults).
type Input struct {
	AstRequiredMM2 float64
	WidthMM        float64
	CoverMM        float64
	StirrupDiaMM   float64

	// AllowedDiametersMM is walked in the given order; empty is an
	// input error.
	AllowedDiametersMM []float64

	MaxLayers       int
	Objective       Objective
	AggSizeMM       float64 // nominal coarse aggregate size
	MinTotalBars    int
	MaxBarsPerLayer int
	MaxAlternatives int
}

const (
	defaultAggSizeMM       = 20
	defaultMinTotalBars    = 3
	defaultMaxBarsPerLayer = 6
	defaultMaxAlternatives = 4
)

func (in *Input) applyDefaults() {
	if in.AggSizeMM == 0 {
		in.AggSizeMM = defaultAggSizeMM
	}
	if in.MinTotalBars == 0 {
		in.MinTotalBars = defaultMinTotalBars
	}
	if in.MaxBarsPerLayer == 0 {
		in.MaxBarsPerLayer = defaultMaxBarsPerLayer
	}
	if in.MaxAlternatives == 0 {
		in.MaxAlternatives = defaultMaxAlternatives
	}
}

func (in *Input) validate() error {
	if in.AstRequiredMM2 <= 0 {
		return fmt.Errorf("%w: ast_required must be positive, got %.2f", ErrInvalidInput, in.AstRequiredMM2)
	}
	if in.WidthMM <= 0 {
		return fmt.Errorf("%w: width must be positive, got %.2f", ErrInvalidInput, in.WidthMM)
	}
	if len(in.AllowedDiametersMM) == 0 {
		return fmt.Errorf("%w: allowed diameter set is empty", ErrInvalidInput)
	}
	if in.MaxLayers < 1 {
		return fmt.Errorf("%w: max_layers must be at least 1, got %d", ErrInvalidInput, in.MaxLayers)
	}
	if in.CoverMM < 0 || in.StirrupDiaMM < 0 {
		return fmt.Errorf("%w: cover and stirrup diameter must be non-negative", ErrInvalidInput)
	}
	return nil
}

// Candidate is one evaluated diameter: the bar count and layer layout
// it implies, or the constraint that ruled it out.
type Candidate struct {
	DiameterMM      float64
	Count           int
	Layers          int
	BarsPerLayer    int     // bars in the fullest layer
	SpacingMM       float64 // achieved clear spacing in the fullest layer
	AreaProvidedMM2 float64
	Feasible        bool
	ViolationReason string
}

// Result is the arrangement verdict: the chosen candidate, the ranked
// feasible alternatives, or an explanation of why nothing fits.
type Result struct {
	Chosen       *Candidate
	Alternatives []Candidate
	Feasible     bool
	Remarks      string
}

// ClearSpacing returns the minimum clear distance between parallel
// bars of a diameter.
// IS 456:2000 Clause 26.3.2: max of the bar diameter, nominal
// aggregate size + 5 mm, and 25 mm.
func ClearSpacing(dia, aggSizeMM float64) float64 {
	return math.Max(dia, math.Max(aggSizeMM+5, 25))
}

// Arrange searches the allowed diameters for a constructible bar
// layout providing at least the required steel area. It is pure and
// deterministic: identical inputs produce identical results.
func Arrange(cat Catalog, in Input) (*Result, error) {
	in.applyDefaults()
	if err := in.validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(in.AllowedDiametersMM))
	for _, dia := range in.AllowedDiametersMM {
		candidates = append(candidates, evaluateDiameter(cat, in, dia))
	}

	feasible := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Feasible {
			feasible = append(feasible, c)
		}
	}

	if len(feasible) == 0 {
		return &Result{
			Alternatives: nil,
			Feasible:     false,
			Remarks:      infeasibilityRemark(candidates),
		}, nil
	}

	sort.SliceStable(feasible, func(i, j int) bool {
		return in.Objective.less(feasible[i], feasible[j])
	})

	chosen := feasible[0]
	alternatives := feasible[1:]
	if len(alternatives) > in.MaxAlternatives {
		alternatives = alternatives[:in.MaxAlternatives]
	}

	return &Result{
		Chosen:       &chosen,
		Alternatives: alternatives,
		Feasible:     true,
		Remarks: fmt.Sprintf("%d-%.0fmm in %d layer(s) provides %.0f mm² for required %.0f mm²",
			chosen.Count, chosen.DiameterMM, chosen.Layers, chosen.AreaProvidedMM2, in.AstRequiredMM2),
	}, nil
}

// evaluateDiameter sizes one diameter: minimum bar count, then row
// packing under the spacing and layer limits.
func evaluateDiameter(cat Catalog, in Input, dia float64) Candidate {
	c := Candidate{DiameterMM: dia}

	area, ok := cat.Area(dia)
	if !ok {
		c.ViolationReason = fmt.Sprintf("%.0f mm is not a catalog bar size", dia)
		return c
	}

	count := int(math.Ceil(in.AstRequiredMM2 / area))
	if count < in.MinTotalBars {
		count = in.MinTotalBars
	}
	c.Count = count
	c.AreaProvidedMM2 = float64(count) * area

	// Width available for bar centers: clear span inside the stirrup
	// legs, less half a bar diameter each side.
	rowWidth := in.WidthMM - 2*(in.CoverMM+in.StirrupDiaMM) - dia
	spacing := ClearSpacing(dia, in.AggSizeMM)

	perRow := 0
	if rowWidth >= 0 {
		// Bar centers sit at a pitch of clear spacing + diameter.
		perRow = int(rowWidth/(spacing+dia)) + 1
	}
	if perRow > in.MaxBarsPerLayer {
		perRow = in.MaxBarsPerLayer
	}
	if perRow < 1 {
		c.ViolationReason = fmt.Sprintf(
			"available width %.0f mm cannot fit a single %.0f mm bar", rowWidth, dia)
		return c
	}

	layers := (count + perRow - 1) / perRow
	if layers > in.MaxLayers || count > in.MaxLayers*in.MaxBarsPerLayer {
		c.Layers = layers
		c.ViolationReason = fmt.Sprintf(
			"%d bars of %.0f mm need %d layers of %d; layer limit is %d×%d",
			count, dia, layers, perRow, in.MaxLayers, in.MaxBarsPerLayer)
		return c
	}

	c.Layers = layers
	c.BarsPerLayer = perRow
	if count < perRow {
		c.BarsPerLayer = count
	}

	// Achieved clear spacing with bars spread over the full row width.
	if c.BarsPerLayer > 1 {
		c.SpacingMM = rowWidth/float64(c.BarsPerLayer-1) - dia
	} else {
		c.SpacingMM = rowWidth
	}

	c.Feasible = true
	return c
}

// infeasibilityRemark names the binding constraint when every diameter
// failed, so the caller knows what to relax.
func infeasibilityRemark(candidates []Candidate) string {
	reasons := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, c := range candidates {
		if c.ViolationReason != "" && !seen[c.ViolationReason] {
			seen[c.ViolationReason] = true
			reasons = append(reasons, c.ViolationReason)
		}
	}
	return "no feasible arrangement: " + strings.Join(reasons, "; ")
}
