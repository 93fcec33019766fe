package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/options"
	"github.com/snowshoe/tagmatch/util"
	"golang.org/x/sync/errgroup"
)

// Orientation identifies which of the two normalization candidates won.
type Orientation int

const (
	Upright Orientation = iota
	Flipped
)

func (o Orientation) String() string {
	switch o {
	case Upright:
		return "0"
	case Flipped:
		return "180"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is the outcome of one match. Reference and Candidate are the final
// normalized, projected sets, suitable for drawing an overlay.
type Result struct {
	Matched     bool              `json:"matched"`
	Score       int               `json:"score"`
	Factor      float64           `json:"factor"`
	Orientation Orientation       `json:"orientation"`
	Sweeps      [2]SweepResult    `json:"sweeps"`
	Reference   geometry.PointSet `json:"reference"`
	Candidate   geometry.PointSet `json:"candidate"`
	Pairs       []Pair            `json:"pairs"`
}

// Matcher compares freehand dot sets against a reference pattern. It holds
// no mutable state and may be shared between goroutines.
type Matcher struct {
	opts *options.MatchOptions
}

// NewMatcher copies opts, or uses the defaults when opts is nil. Options
// that fail Validate are rejected.
func NewMatcher(opts *options.MatchOptions) (*Matcher, error) {
	m := &Matcher{
		opts: options.NewMatchOptions(opts),
	}
	if err := m.opts.Validate(); err != nil {
		return nil, fmt.Errorf("match options: %w", err)
	}
	return m, nil
}

func (m *Matcher) Options() options.MatchOptions {
	return *m.opts
}

// Match parses both coordinate strings and matches input against
// referenceDef.
func (m *Matcher) Match(referenceDef string, inputCoords string) (*Result, error) {
	reference, err := ParsePointSet(referenceDef, m.opts.PatternSize)
	if err != nil {
		return nil, err
	}
	input, err := ParsePointSet(inputCoords, m.opts.PatternSize)
	if err != nil {
		return nil, err
	}
	return m.MatchPoints(reference, input)
}

// CanonicalReference normalizes reference without pre-rotation and projects
// it at scale factor 1.
func (m *Matcher) CanonicalReference(reference geometry.PointSet) (geometry.PointSet, error) {
	normalized, err := m.Normalize(reference, false)
	if err != nil {
		return nil, err
	}
	return m.Project(normalized, 1.0)
}

func (m *Matcher) MatchPoints(reference geometry.PointSet, input geometry.PointSet) (*Result, error) {
	canonical, err := m.CanonicalReference(reference)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}

	var candidates [2]geometry.PointSet
	for _, o := range []Orientation{Upright, Flipped} {
		if candidates[o], err = m.Normalize(input, o == Flipped); err != nil {
			return nil, err
		}
	}

	sweeps, err := m.sweepBoth(canonical, candidates)
	if err != nil {
		return nil, err
	}

	winner := m.chooseOrientation(sweeps[Upright], sweeps[Flipped])
	factor := sweeps[winner].Factor

	final, err := m.Project(candidates[winner], factor)
	if err != nil {
		return nil, err
	}
	pairs, err := m.NearestPairs(canonical, final)
	if err != nil {
		return nil, err
	}

	score := 0
	for _, p := range pairs {
		score += p.Points
	}

	res := &Result{
		Matched:     score > m.opts.MatchThreshold,
		Score:       score,
		Factor:      factor,
		Orientation: winner,
		Sweeps:      sweeps,
		Reference:   canonical,
		Candidate:   final,
		Pairs:       pairs,
	}

	if m.opts.Debug() {
		log.WithFields(log.Fields{
			"orientation": winner,
			"factor":      factor,
			"score":       score,
			"matched":     res.Matched,
		}).Debug("match complete")
	}
	return res, nil
}

func (m *Matcher) sweepBoth(reference geometry.PointSet, candidates [2]geometry.PointSet) ([2]SweepResult, error) {
	var sweeps [2]SweepResult

	if !m.opts.Parallel {
		for i, c := range candidates {
			r, err := m.Sweep(reference, c)
			if err != nil {
				return sweeps, err
			}
			sweeps[i] = r
		}
		return sweeps, nil
	}

	var g errgroup.Group
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			r, err := m.Sweep(reference, c)
			if err != nil {
				return err
			}
			sweeps[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [2]SweepResult{}, err
	}
	return sweeps, nil
}

// chooseOrientation keeps the upright candidate unless the flipped one did
// strictly better. In legacy mode "better" means a larger scale factor.
func (m *Matcher) chooseOrientation(upright SweepResult, flipped SweepResult) Orientation {
	if m.opts.LegacyFactorSelection {
		return util.IfThenElse(upright.Factor > flipped.Factor, Upright, Flipped)
	}
	return util.IfThenElse(flipped.Score > upright.Score, Flipped, Upright)
}
