package bbs

import (
	"fmt"
	"sort"

	"github.com/Pravin-surawase/structural-engineering-lib-sub000/internal/rebar"
)

// Mark is one bar-bending-schedule line item: a group of identical
// fabricated bars.
type Mark struct {
	ID               string
	Zone             string
	ShapeCode        string
	DiameterMM       float64
	Count            int
	CutLengthMM      float64
	TotalLengthMM    float64
	UnitWeightKgPerM float64
	TotalWeightKg    float64
	Unfabricable     bool
	Remarks          string
}

// buildMarks groups elements into bar marks. Bars with identical zone,
// diameter, shape and cut length (within the rounding tolerance)
// collapse into one mark with a running count. Mark IDs are assigned
// after sorting by zone, then diameter, then shape, so identical input
// reproduces identical IDs.
func buildMarks(elements []Element, policy BendPolicy) ([]Mark, error) {
	type key struct {
		zone  string
		dia   float64
		shape string
		len   float64
	}

	grouped := make(map[key]*Mark)
	order := make([]key, 0, len(elements))

	for i, e := range elements {
		cut, err := CutLength(e, policy)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		cut = roundLength(cut)

		k := key{zone: e.Zone, dia: e.DiameterMM, shape: e.Shape.Code(), len: cut}
		if m, ok := grouped[k]; ok {
			m.Count += e.Count
			if e.Remarks != "" && m.Remarks == "" {
				m.Remarks = e.Remarks
			}
			continue
		}
		grouped[k] = &Mark{
			Zone:             e.Zone,
			ShapeCode:        e.Shape.Code(),
			DiameterMM:       e.DiameterMM,
			Count:            e.Count,
			CutLengthMM:      cut,
			UnitWeightKgPerM: rebar.UnitWeightKgPerM(e.DiameterMM),
			Remarks:          e.Remarks,
		}
		order = append(order, k)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.zone != b.zone {
			return a.zone < b.zone
		}
		if a.dia != b.dia {
			return a.dia < b.dia
		}
		if a.shape != b.shape {
			return a.shape < b.shape
		}
		return a.len < b.len
	})

	marks := make([]Mark, 0, len(order))
	for i, k := range order {
		m := grouped[k]
		m.ID = fmt.Sprintf("M%02d", i+1)
		m.TotalLengthMM = m.CutLengthMM * float64(m.Count)
		m.TotalWeightKg = m.UnitWeightKgPerM * m.TotalLengthMM / 1e3
		marks = append(marks, *m)
	}
	return marks, nil
}
