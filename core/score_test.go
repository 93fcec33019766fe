package core

import (
	"errors"
	"testing"

	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = geometry.PointSet{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 0, Y: 1000}, {X: 1000, Y: 1000}, {X: 500, Y: 500}}

func TestScoreBands(t *testing.T) {
	m := newMatcher(t, nil)

	for _, tc := range []struct {
		name     string
		shift    float64
		expected int
	}{
		{name: "identical", shift: 0, expected: 15},
		{name: "inside first band", shift: 23.5, expected: 15},
		{name: "on first boundary", shift: 24, expected: 10},
		{name: "second band", shift: 40, expected: 10},
		{name: "on second boundary", shift: 48, expected: 5},
		{name: "third band", shift: 60, expected: 5},
		{name: "on third boundary", shift: 72, expected: 0},
		{name: "far", shift: 200, expected: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			candidate := testcommon.ScaleTranslate(grid, 1, tc.shift, 0)
			score, err := m.Score(grid, candidate)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, score)
		})
	}
}

func TestScoreAllowsSharedNeighbours(t *testing.T) {
	m := newMatcher(t, nil)
	reference := geometry.PointSet{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 5}, {X: -5, Y: 0}, {X: 0, Y: -5}}
	candidate := geometry.PointSet{{X: 0, Y: 0}, {X: 900, Y: 0}, {X: 0, Y: 900}, {X: -900, Y: 0}, {X: 0, Y: -900}}

	pairs, err := m.NearestPairs(reference, candidate)
	require.NoError(t, err)
	for _, p := range pairs {
		assert.Equal(t, 0, p.Candidate)
	}

	score, err := m.Score(reference, candidate)
	require.NoError(t, err)
	assert.Equal(t, 15, score)
}

func TestScoreIsOrderIndependent(t *testing.T) {
	m := newMatcher(t, nil)
	candidate := testcommon.ScaleTranslate(grid, 1, 30, 10)
	reversed := make(geometry.PointSet, len(candidate))
	for i, p := range candidate {
		reversed[len(candidate)-1-i] = p
	}

	a, err := m.Score(grid, candidate)
	require.NoError(t, err)
	b, err := m.Score(grid, reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNearestPairs(t *testing.T) {
	m := newMatcher(t, nil)
	candidate := testcommon.ScaleTranslate(grid, 1, 10, 0)
	pairs, err := m.NearestPairs(grid, candidate)
	require.NoError(t, err)
	require.Len(t, pairs, 5)

	for i, p := range pairs {
		assert.Equal(t, i, p.Reference)
		assert.Equal(t, i, p.Candidate)
		assert.InDelta(t, 10, p.Distance, tolerance)
		assert.Equal(t, 3, p.Points)
		assert.InDelta(t, grid[i].X+5, p.Midpoint.X, tolerance)
		assert.InDelta(t, grid[i].Y, p.Midpoint.Y, tolerance)
	}
}

func TestScoreArity(t *testing.T) {
	m := newMatcher(t, nil)
	_, err := m.Score(grid, grid[:3])
	var formatErr *InputFormatError
	assert.True(t, errors.As(err, &formatErr), "got %v", err)
}
