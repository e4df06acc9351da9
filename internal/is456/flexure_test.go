package is456

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXuMaxRatio(t *testing.T) {
	assert.Equal(t, 0.53, XuMaxRatio(250))
	assert.Equal(t, 0.48, XuMaxRatio(415))
	assert.Equal(t, 0.46, XuMaxRatio(500))
}

func TestMuLim_KnownValue(t *testing.T) {
	// 300×450 effective, M20/Fe415:
	// Mu,lim = 0.36·0.48·(1 − 0.42·0.48)·300·450²·20 = 0.1389·b·d²·fck
	got := MuLim(20, 415, 300, 450)
	assert.InDelta(t, 0.36*0.48*(1-0.42*0.48)*300*450*450*20/1e6, got, 1e-9)
	assert.InDelta(t, 167.6, got, 0.5)
}

func TestEvaluate_AdequateSection(t *testing.T) {
	ev := Engine{}.Evaluate(300, 500, 450, 20, 415, 120, 80)

	require.True(t, ev.FlexureOK, "section should pass flexure: %s", ev.FailureReason)
	require.True(t, ev.ShearOK, "section should pass shear: %s", ev.FailureReason)
	assert.True(t, ev.OK())

	// Ast must cover the demand and respect the code minimum.
	assert.Greater(t, ev.AstRequiredMM2, AstMin(300, 450, 415))
	assert.Less(t, ev.AstRequiredMM2, AstMax(300, 500))
}

func TestEvaluate_MinimumSteelGoverns(t *testing.T) {
	// A tiny moment on a generous section lands on As,min.
	ev := Engine{}.Evaluate(300, 500, 450, 20, 415, 5, 10)

	require.True(t, ev.OK(), ev.FailureReason)
	assert.InDelta(t, AstMin(300, 450, 415), ev.AstRequiredMM2, 1e-9)
}

func TestEvaluate_FlexureFailureBeyondMuLim(t *testing.T) {
	muLim := MuLim(20, 415, 230, 350)
	ev := Engine{}.Evaluate(230, 400, 350, 20, 415, muLim*1.2, 50)

	assert.False(t, ev.FlexureOK)
	assert.False(t, ev.OK())
	assert.Contains(t, ev.FailureReason, "Mu,lim")
}

func TestEvaluate_ShearFailure(t *testing.T) {
	// τv = 800e3/(300·450) ≈ 5.9 MPa > τc,max = 2.8 MPa for M20.
	ev := Engine{}.Evaluate(300, 500, 450, 20, 415, 100, 800)

	assert.True(t, ev.FlexureOK)
	assert.False(t, ev.ShearOK)
	assert.Contains(t, ev.FailureReason, "shear")
}

func TestEvaluate_InvalidGeometry(t *testing.T) {
	ev := Engine{}.Evaluate(0, 500, 450, 20, 415, 100, 50)
	assert.False(t, ev.OK())
	assert.Contains(t, ev.FailureReason, "geometry")
}

func TestEvaluate_AstMonotonicInMu(t *testing.T) {
	// Increasing Mu with everything else fixed never decreases Ast.
	prev := 0.0
	for mu := 10.0; mu <= 160; mu += 10 {
		ev := Engine{}.Evaluate(300, 500, 450, 20, 415, mu, 50)
		require.True(t, ev.FlexureOK, "Mu=%.0f should be below Mu,lim", mu)
		assert.GreaterOrEqual(t, ev.AstRequiredMM2, prev, "Ast regressed at Mu=%.0f", mu)
		prev = ev.AstRequiredMM2
	}
}

func TestTauCMax_TableSteps(t *testing.T) {
	assert.Equal(t, 2.5, TauCMax(15))
	assert.Equal(t, 2.8, TauCMax(20))
	assert.Equal(t, 2.8, TauCMax(22)) // intermediate grade rounds down
	assert.Equal(t, 3.5, TauCMax(30))
	assert.Equal(t, 4.0, TauCMax(50))
}
