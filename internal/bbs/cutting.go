package bbs

import (
	"fmt"
	"sort"
)

// Piece is one required cut length traced back to its bar mark.
type Piece struct {
	MarkID   string
	LengthMM float64
}

// Assignment is one stock bar with the pieces cut from it, in
// placement order.
type Assignment struct {
	StockLengthMM float64
	Pieces        []Piece
	OffcutMM      float64
}

// used returns the length consumed by the placed pieces.
func (a Assignment) used() float64 {
	var sum float64
	for _, p := range a.Pieces {
		sum += p.LengthMM
	}
	return sum
}

// Plan is the full cutting-stock solution.
type Plan struct {
	Assignments        []Assignment
	TotalWasteMM       float64
	UtilizationPercent float64
}

// Pack assigns every fabricable mark's pieces to stock bars with a
// greedy decreasing-fit heuristic: pieces sorted by decreasing length,
// each placed into the first open stock bar with enough remaining
// capacity, a new bar opened only when none fits. The heuristic is
// deliberate: exact bin packing is NP-hard and fabrication tolerates
// the small extra waste.
//
// A piece longer than the longest stock length is unfabricable; it is
// flagged on its mark and excluded from the plan, never truncated.
// Pack does not mutate marks; it returns the IDs it flagged.
func Pack(marks []Mark, stockLengthsMM []float64) (*Plan, []string, error) {
	if len(stockLengthsMM) == 0 {
		return nil, nil, fmt.Errorf("%w: no stock lengths given", ErrInvalidInput)
	}
	stocks := append([]float64(nil), stockLengthsMM...)
	sort.Float64s(stocks)
	for _, s := range stocks {
		if s <= 0 {
			return nil, nil, fmt.Errorf("%w: non-positive stock length %.0f", ErrInvalidInput, s)
		}
	}
	longest := stocks[len(stocks)-1]

	var pieces []Piece
	var unfabricable []string
	for _, m := range marks {
		if m.CutLengthMM > longest {
			unfabricable = append(unfabricable, m.ID)
			continue
		}
		for i := 0; i < m.Count; i++ {
			pieces = append(pieces, Piece{MarkID: m.ID, LengthMM: m.CutLengthMM})
		}
	}

	// Decreasing length; equal lengths ordered by mark ID so the plan
	// is reproducible.
	sort.SliceStable(pieces, func(i, j int) bool {
		if pieces[i].LengthMM != pieces[j].LengthMM {
			return pieces[i].LengthMM > pieces[j].LengthMM
		}
		return pieces[i].MarkID < pieces[j].MarkID
	})

	var bins []Assignment
	remaining := []float64{}

	for _, p := range pieces {
		placed := false
		for i := range bins {
			if remaining[i] >= p.LengthMM {
				bins[i].Pieces = append(bins[i].Pieces, p)
				remaining[i] -= p.LengthMM
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		// Open the shortest stock that takes the piece.
		stock := longest
		for _, s := range stocks {
			if s >= p.LengthMM {
				stock = s
				break
			}
		}
		bins = append(bins, Assignment{StockLengthMM: stock, Pieces: []Piece{p}})
		remaining = append(remaining, stock-p.LengthMM)
	}

	plan := &Plan{Assignments: bins}
	var stockTotal, placedTotal float64
	for i := range bins {
		used := bins[i].used()
		bins[i].OffcutMM = bins[i].StockLengthMM - used
		stockTotal += bins[i].StockLengthMM
		placedTotal += used
	}
	plan.TotalWasteMM = stockTotal - placedTotal
	if stockTotal > 0 {
		plan.UtilizationPercent = 100 * placedTotal / stockTotal
	}

	return plan, unfabricable, nil
}
