package core

import (
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/snowshoe/tagmatch/geometry"
)

// sweepEpsilon absorbs rounding in (stop-start)/step so an exact multiple
// does not gain an extra factor.
const sweepEpsilon = 1e-9

type SweepResult struct {
	Factor float64 `json:"factor"`
	Score  int     `json:"score"`
}

// Factors lists the scale factors a sweep tests: SweepStart+k*SweepStep for
// k = 1, 2, ... while the previous factor is below SweepStop. The start value
// itself is never tested.
func (m *Matcher) Factors() []float64 {
	start, stop, step := m.opts.SweepStart, m.opts.SweepStop, m.opts.SweepStep
	if !(step > 0) || !(stop > start) {
		return nil
	}

	n := int(math.Ceil((stop-start)/step - sweepEpsilon))
	factors := make([]float64, n)
	for k := 1; k <= n; k++ {
		factors[k-1] = start + float64(k)*step
	}
	return factors
}

// Sweep projects candidate at every factor and keeps the one scoring highest
// against reference. The earliest factor wins on ties.
func (m *Matcher) Sweep(reference geometry.PointSet, candidate geometry.PointSet) (SweepResult, error) {
	if err := checkArity(candidate, m.opts.PatternSize); err != nil {
		return SweepResult{}, err
	}
	if m.opts.SortBeforeSweep {
		candidate = geometry.SortCanonical(candidate)
	}

	best := SweepResult{Factor: -1, Score: -1}
	for _, f := range m.Factors() {
		projected, err := m.Project(candidate, f)
		if err != nil {
			return SweepResult{}, err
		}
		score, err := m.Score(reference, projected)
		if err != nil {
			return SweepResult{}, err
		}
		if score > best.Score {
			best = SweepResult{Factor: f, Score: score}
		}
	}

	if best.Score < 0 {
		return SweepResult{}, &SweepExhaustedError{
			Start: m.opts.SweepStart,
			Stop:  m.opts.SweepStop,
			Step:  m.opts.SweepStep,
		}
	}

	if m.opts.Debug() {
		log.Debugf("sweep best factor %.2f score %d", best.Factor, best.Score)
	}
	return best, nil
}
