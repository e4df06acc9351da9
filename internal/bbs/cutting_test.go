package bbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markOf(id string, length float64, count int) Mark {
	return Mark{ID: id, CutLengthMM: length, Count: count}
}

func TestPack_GreedyDecreasingFit(t *testing.T) {
	// Four 4200 mm pieces and one 3000 mm piece on 12 m stock:
	// two 4200s fill a bar to 8400 (a third would exceed 12000), the
	// 3000 backfills the first bar's remaining 3600.
	plan, unfab, err := Pack([]Mark{
		markOf("M01", 4200, 4),
		markOf("M02", 3000, 1),
	}, []float64{12000})
	require.NoError(t, err)
	assert.Empty(t, unfab)

	require.Len(t, plan.Assignments, 2)

	first := plan.Assignments[0]
	require.Len(t, first.Pieces, 3)
	assert.Equal(t, 4200.0, first.Pieces[0].LengthMM)
	assert.Equal(t, 4200.0, first.Pieces[1].LengthMM)
	assert.Equal(t, 3000.0, first.Pieces[2].LengthMM)
	assert.InDelta(t, 600, first.OffcutMM, 1e-9)

	second := plan.Assignments[1]
	require.Len(t, second.Pieces, 2)
	assert.InDelta(t, 3600, second.OffcutMM, 1e-9)

	// Waste identity: stock used − pieces placed.
	assert.InDelta(t, 2*12000-(4*4200+3000), plan.TotalWasteMM, 1e-9)
}

func TestPack_WasteIdentity(t *testing.T) {
	marks := []Mark{
		markOf("M01", 5100, 3),
		markOf("M02", 2350, 7),
		markOf("M03", 990, 11),
	}
	plan, _, err := Pack(marks, []float64{12000, 9000})
	require.NoError(t, err)

	var stock, placed float64
	for _, a := range plan.Assignments {
		stock += a.StockLengthMM
		var used float64
		for _, p := range a.Pieces {
			used += p.LengthMM
		}
		// No bin overflows its stock length.
		assert.LessOrEqual(t, used, a.StockLengthMM)
		assert.InDelta(t, a.StockLengthMM-used, a.OffcutMM, 1e-9)
		placed += used
	}
	assert.InDelta(t, stock-placed, plan.TotalWasteMM, 1e-9)
	assert.InDelta(t, 100*placed/stock, plan.UtilizationPercent, 1e-9)
}

func TestPack_RoundTripPieceCounts(t *testing.T) {
	// Every bar of every fabricable mark appears exactly once.
	marks := []Mark{
		markOf("M01", 6400, 5),
		markOf("M02", 1335, 38),
		markOf("M03", 2700, 4),
	}
	plan, unfab, err := Pack(marks, []float64{12000})
	require.NoError(t, err)
	require.Empty(t, unfab)

	placed := map[string]int{}
	for _, a := range plan.Assignments {
		for _, p := range a.Pieces {
			placed[p.MarkID]++
		}
	}
	for _, m := range marks {
		assert.Equal(t, m.Count, placed[m.ID], "mark %s", m.ID)
	}
}

func TestPack_UnfabricableFlaggedNotTruncated(t *testing.T) {
	plan, unfab, err := Pack([]Mark{
		markOf("M01", 14000, 2), // longer than any stock
		markOf("M02", 6000, 2),
	}, []float64{12000})
	require.NoError(t, err)

	assert.Equal(t, []string{"M01"}, unfab)
	for _, a := range plan.Assignments {
		for _, p := range a.Pieces {
			assert.NotEqual(t, "M01", p.MarkID, "unfabricable pieces must not be packed")
		}
	}
}

func TestPack_OpensShortestAdequateStock(t *testing.T) {
	// A 3 m piece alone should open the 6 m bar, not the 12 m one.
	plan, _, err := Pack([]Mark{markOf("M01", 3000, 1)}, []float64{12000, 6000})
	require.NoError(t, err)

	require.Len(t, plan.Assignments, 1)
	assert.Equal(t, 6000.0, plan.Assignments[0].StockLengthMM)
}

func TestPack_Deterministic(t *testing.T) {
	marks := []Mark{
		markOf("M01", 4200, 4),
		markOf("M02", 4200, 2), // same length, different mark
		markOf("M03", 3000, 3),
	}
	first, _, err := Pack(marks, []float64{12000})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, _, err := Pack(marks, []float64{12000})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPack_InputErrors(t *testing.T) {
	_, _, err := Pack([]Mark{markOf("M01", 1000, 1)}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = Pack([]Mark{markOf("M01", 1000, 1)}, []float64{0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
