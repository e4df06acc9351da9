package optimizer

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/is456"
)

// Evaluator is the flexure/shear calculator consumed by the search.
// is456.Engine is the production implementation; tests substitute
// fixtures.
type Evaluator interface {
	Evaluate(b, D, d, fck, fy, muKNM, vuKN float64) is456.Evaluation
}

// GradePair couples a concrete grade with a steel grade.
type GradePair struct {
	Fck int `yaml:"fck"`
	Fy  int `yaml:"fy"`
}

// SectionGrid is the candidate space: the cross product of widths,
// depths and grade pairs.
type SectionGrid struct {
	WidthsMM []float64   `yaml:"widths_mm"`
	DepthsMM []float64   `yaml:"depths_mm"`
	Grades   []GradePair `yaml:"grades"`
}

// Size returns the number of grid points.
func (g SectionGrid) Size() int {
	return len(g.WidthsMM) * len(g.DepthsMM) * len(g.Grades)
}

// Demand is the factored design demand on the member.
type Demand struct {
	SpanMM float64
	MuKNM  float64
	VuKN   float64
}

// Candidate is one priced grid point.
type Candidate struct {
	BMM            float64
	DMM            float64 // total depth
	DEffMM         float64 // effective depth
	Fck            int
	Fy             int
	AstRequiredMM2 float64
	SteelWeightKg  float64
	Pt             float64 // steel percentage, congestion proxy
	Cost           CostBreakdown
	Valid          bool
	FailureReason  string
}

// Baseline names the conservative default section used for savings
// reporting. It stays fixed across grid edits so savings figures remain
// comparable between runs.
type Baseline struct {
	BMM float64 `yaml:"b_mm"`
	DMM float64 `yaml:"d_mm"`
	Fck int     `yaml:"fck"`
	Fy  int     `yaml:"fy"`
}

// Result reports the full outcome of one search: the optimum, the
// ranked runners-up, savings against the baseline and the search
// counters.
type Result struct {
	RunID               string
	Optimal             *Candidate
	BaselineCost        float64
	Alternatives        []Candidate
	SavingsAmount       float64
	SavingsPercent      float64
	CandidatesEvaluated int
	CandidatesValid     int
	ComputationTimeSec  float64
	Remark              string
}

// Search holds the immutable configuration for section optimization.
// Concurrent Run calls on one Search are safe: it only reads its
// fields.
type Search struct {
	Grid      SectionGrid
	Profile   CostProfile
	CoverMM   float64 // effective cover to steel centroid
	Evaluator Evaluator
	Baseline  Baseline
	Workers   int // parallel candidate evaluations; 0 means serial
	TopN      int // alternatives to report
}

func (s *Search) validate(dem Demand) error {
	if s.Evaluator == nil {
		return fmt.Errorf("%w: no evaluator configured", ErrInvalidInput)
	}
	if s.Grid.Size() == 0 {
		return fmt.Errorf("%w: empty section grid", ErrInvalidInput)
	}
	if s.CoverMM <= 0 {
		return fmt.Errorf("%w: cover must be positive, got %.1f", ErrInvalidInput, s.CoverMM)
	}
	if dem.SpanMM <= 0 {
		return fmt.Errorf("%w: span must be positive, got %.1f", ErrInvalidInput, dem.SpanMM)
	}
	if dem.MuKNM <= 0 {
		return fmt.Errorf("%w: factored moment must be positive, got %.2f", ErrInvalidInput, dem.MuKNM)
	}
	if dem.VuKN < 0 {
		return fmt.Errorf("%w: factored shear must be non-negative, got %.2f", ErrInvalidInput, dem.VuKN)
	}
	return s.Profile.validate()
}

type gridPoint struct {
	b, d  float64
	grade GradePair
}

// Run executes the grid search. Every grid point is evaluated
// independently (in parallel when Workers > 1); ctx cancellation aborts
// the remaining points and returns the context error. An exhausted grid
// with zero valid candidates is a reportable outcome, not an error.
func (s *Search) Run(ctx context.Context, dem Demand) (*Result, error) {
	if err := s.validate(dem); err != nil {
		return nil, err
	}

	start := time.Now()

	points := make([]gridPoint, 0, s.Grid.Size())
	for _, b := range s.Grid.WidthsMM {
		for _, d := range s.Grid.DepthsMM {
			for _, g := range s.Grid.Grades {
				points = append(points, gridPoint{b: b, d: d, grade: g})
			}
		}
	}

	// Results land at their grid index, so ordering stays deterministic
	// regardless of goroutine scheduling.
	candidates := make([]Candidate, len(points))

	eg, egctx := errgroup.WithContext(ctx)
	if s.Workers > 1 {
		eg.SetLimit(s.Workers)
	} else {
		eg.SetLimit(1)
	}
	for i, pt := range points {
		i, pt := i, pt
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			candidates[i] = s.evaluate(pt, dem)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	valid := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Valid {
			valid = append(valid, c)
		}
	}

	res := &Result{
		RunID:               uuid.NewString(),
		CandidatesEvaluated: len(candidates),
		CandidatesValid:     len(valid),
	}

	if s.Baseline.BMM > 0 {
		base := s.evaluate(gridPoint{
			b:     s.Baseline.BMM,
			d:     s.Baseline.DMM,
			grade: GradePair{Fck: s.Baseline.Fck, Fy: s.Baseline.Fy},
		}, dem)
		if base.Valid {
			res.BaselineCost = base.Cost.Total
		}
	}

	if len(valid) == 0 {
		res.Remark = fmt.Sprintf(
			"no section in the %d-point grid satisfies Mu=%.1f kN-m, Vu=%.1f kN; enlarge the grid or raise grades",
			len(candidates), dem.MuKNM, dem.VuKN)
		res.ComputationTimeSec = time.Since(start).Seconds()
		return res, nil
	}

	sort.SliceStable(valid, func(i, j int) bool {
		a, b := valid[i], valid[j]
		if a.Cost.Total != b.Cost.Total {
			return a.Cost.Total < b.Cost.Total
		}
		if a.SteelWeightKg != b.SteelWeightKg {
			return a.SteelWeightKg < b.SteelWeightKg
		}
		return a.DMM < b.DMM
	})

	optimal := valid[0]
	res.Optimal = &optimal

	alternatives := valid[1:]
	topN := s.TopN
	if topN <= 0 {
		topN = 3
	}
	if len(alternatives) > topN {
		alternatives = alternatives[:topN]
	}
	res.Alternatives = alternatives

	if res.BaselineCost > 0 {
		res.SavingsAmount = res.BaselineCost - optimal.Cost.Total
		res.SavingsPercent = 100 * res.SavingsAmount / res.BaselineCost
	}

	res.ComputationTimeSec = time.Since(start).Seconds()

	slog.Debug("section search complete",
		"run_id", res.RunID,
		"evaluated", res.CandidatesEvaluated,
		"valid", res.CandidatesValid,
		"optimal_cost", optimal.Cost.Total,
		"elapsed_sec", res.ComputationTimeSec)

	return res, nil
}

// evaluate prices a single grid point. Strength-check failures mark the
// candidate invalid with the calculator's reason; they never propagate
// as errors.
func (s *Search) evaluate(pt gridPoint, dem Demand) Candidate {
	c := Candidate{
		BMM:    pt.b,
		DMM:    pt.d,
		DEffMM: pt.d - s.CoverMM,
		Fck:    pt.grade.Fck,
		Fy:     pt.grade.Fy,
	}

	if c.DEffMM <= 0 {
		c.FailureReason = fmt.Sprintf("depth %.0f mm leaves no effective depth after %.0f mm cover", pt.d, s.CoverMM)
		return c
	}
	if _, ok := s.Profile.ConcretePerM3[c.Fck]; !ok {
		c.FailureReason = fmt.Sprintf("no concrete rate for grade M%d", c.Fck)
		return c
	}

	ev := s.Evaluator.Evaluate(c.BMM, c.DMM, c.DEffMM, float64(c.Fck), float64(c.Fy), dem.MuKNM, dem.VuKN)
	if !ev.OK() {
		c.FailureReason = ev.FailureReason
		return c
	}

	c.AstRequiredMM2 = ev.AstRequiredMM2
	c.SteelWeightKg = SteelWeightKg(c.AstRequiredMM2, dem.SpanMM)
	c.Pt = 100 * c.AstRequiredMM2 / (c.BMM * c.DEffMM)
	c.Cost = s.Profile.price(c.BMM, c.DMM, dem.SpanMM, c.AstRequiredMM2, c.Pt, c.Fck)
	c.Valid = true
	return c
}
