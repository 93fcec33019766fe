package core

import (
	"math"

	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/options"
)

// Pair links a reference point to its nearest candidate point.
type Pair struct {
	Reference int            `json:"reference"`
	Candidate int            `json:"candidate"`
	Distance  float64        `json:"distance"`
	Midpoint  geometry.Point `json:"midpoint"`
	Points    int            `json:"points"`
}

// Score awards each reference point credit by the distance to its nearest
// candidate point. Several reference points may share a candidate.
func (m *Matcher) Score(reference geometry.PointSet, candidate geometry.PointSet) (int, error) {
	pairs, err := m.NearestPairs(reference, candidate)
	if err != nil {
		return 0, err
	}

	score := 0
	for _, p := range pairs {
		score += p.Points
	}
	return score, nil
}

// NearestPairs returns, for every reference point, the nearest candidate
// point found by exhaustive search.
func (m *Matcher) NearestPairs(reference geometry.PointSet, candidate geometry.PointSet) ([]Pair, error) {
	if err := checkArity(reference, m.opts.PatternSize); err != nil {
		return nil, err
	}
	if err := checkArity(candidate, m.opts.PatternSize); err != nil {
		return nil, err
	}

	pairs := make([]Pair, len(reference))
	for i, r := range reference {
		best := -1
		minDist := math.Inf(1)
		for j, c := range candidate {
			if d := geometry.Distance(r, c); d < minDist {
				minDist = d
				best = j
			}
		}

		pair := Pair{Reference: i, Candidate: best, Distance: minDist}
		if best >= 0 {
			c := candidate[best]
			pair.Midpoint = geometry.NewPoint((r.X+c.X)/2, (r.Y+c.Y)/2)
		}
		pair.Points = m.bandPoints(minDist)
		pairs[i] = pair
	}
	return pairs, nil
}

func (m *Matcher) bandPoints(d float64) int {
	threshold := m.opts.Threshold()
	switch {
	case d < threshold:
		return options.PointsPerBand
	case d < threshold*2:
		return options.PointsPerBand - 1
	case d < threshold*3:
		return options.PointsPerBand - 2
	default:
		return 0
	}
}
