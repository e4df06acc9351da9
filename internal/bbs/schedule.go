package bbs

import "fmt"

// Summary totals the schedule for the title block.
type Summary struct {
	TotalBars          int
	TotalMarks         int
	TotalWeightKg      float64
	TotalCutLengthMM   float64
	StockBarsUsed      int
	TotalWasteMM       float64
	UtilizationPercent float64
	UnfabricableMarks  int
}

// Schedule is the complete bar bending schedule: line items, cutting
// plan and summary.
type Schedule struct {
	Marks   []Mark
	Plan    *Plan
	Summary Summary
}

// Generate builds the bar bending schedule for a finished design's
// reinforcement elements: cut lengths per the bend policy, bar-mark
// grouping, and a cutting plan over the standard stock lengths.
func Generate(elements []Element, policy BendPolicy, stockLengthsMM []float64) (*Schedule, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no reinforcement elements", ErrInvalidInput)
	}

	marks, err := buildMarks(elements, policy)
	if err != nil {
		return nil, err
	}

	plan, unfabricable, err := Pack(marks, stockLengthsMM)
	if err != nil {
		return nil, err
	}

	flagged := make(map[string]bool, len(unfabricable))
	for _, id := range unfabricable {
		flagged[id] = true
	}

	s := &Schedule{Plan: plan}
	for _, m := range marks {
		if flagged[m.ID] {
			m.Unfabricable = true
			m.Remarks = joinRemarks(m.Remarks, fmt.Sprintf(
				"cut length %.0f mm exceeds longest stock; splice or revise design", m.CutLengthMM))
			s.Summary.UnfabricableMarks++
		} else {
			s.Summary.TotalBars += m.Count
			s.Summary.TotalWeightKg += m.TotalWeightKg
			s.Summary.TotalCutLengthMM += m.TotalLengthMM
		}
		s.Marks = append(s.Marks, m)
	}

	s.Summary.TotalMarks = len(marks)
	s.Summary.StockBarsUsed = len(plan.Assignments)
	s.Summary.TotalWasteMM = plan.TotalWasteMM
	s.Summary.UtilizationPercent = plan.UtilizationPercent

	return s, nil
}

func joinRemarks(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
