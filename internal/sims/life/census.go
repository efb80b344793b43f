package life

import (
	"slices"

	"mad-life/internal/core"
)

// Outcome classifies how a census run ended.
type Outcome string

const (
	OutcomeExtinct     Outcome = "extinct"
	OutcomeStable      Outcome = "stable"
	OutcomeOscillating Outcome = "oscillating"
	OutcomeRunning     Outcome = "running"
)

// CensusResult summarises one headless run.
type CensusResult struct {
	Seed         int64
	Rounds       int
	Survival     int
	PeakSurvival int
	Outcome      Outcome
}

// RunCensus seeds a fresh world and steps it until it settles or maxRounds
// steps have run.
func RunCensus(cfg Config, seed int64, maxRounds int) (CensusResult, error) {
	w := New(cfg)
	if err := w.Reset(seed); err != nil {
		return CensusResult{}, err
	}
	res := Census(w, maxRounds)
	res.Seed = seed
	return res, nil
}

// Census steps a populated world until it goes extinct, repeats the previous
// generation (stable), repeats the one before that (period 2) or maxRounds
// steps have run.
func Census(w *World, maxRounds int) CensusResult {
	var prev, prev2 []core.State
	res := CensusResult{Outcome: OutcomeRunning}
	cur := slices.Clone(w.Grid().Cells())
	res.PeakSurvival = w.Grid().CountAlive()

	for i := 0; i < maxRounds; i++ {
		w.Step()
		if w.Phase() == PhaseExtinct {
			res.Outcome = OutcomeExtinct
			break
		}
		prev2, prev = prev, cur
		cur = slices.Clone(w.Grid().Cells())
		if s := w.Dashboard().Survival; s > res.PeakSurvival {
			res.PeakSurvival = s
		}
		if slices.Equal(cur, prev) {
			res.Outcome = OutcomeStable
			break
		}
		if prev2 != nil && slices.Equal(cur, prev2) {
			res.Outcome = OutcomeOscillating
			break
		}
	}

	dash := w.Dashboard()
	res.Rounds = dash.Round
	res.Survival = dash.Survival
	return res
}
