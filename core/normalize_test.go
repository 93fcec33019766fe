package core

import (
	"errors"
	"math"
	"testing"

	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func pairwiseDistances(points geometry.PointSet) []float64 {
	var d []float64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d = append(d, geometry.Distance(points[i], points[j]))
		}
	}
	return d
}

func TestNormalizeSquare(t *testing.T) {
	m := newMatcher(t, nil)
	n, err := m.Normalize(testcommon.Square(), false)
	require.NoError(t, err)
	require.Len(t, n, 5)

	// anchor at the origin, far corner on the diagonal
	assert.InDelta(t, 0, n[0].X, tolerance)
	assert.InDelta(t, 0, n[0].Y, tolerance)
	assert.InDelta(t, -100, n[2].X, tolerance)
	assert.InDelta(t, -100, n[2].Y, tolerance)
	assert.InDelta(t, -50, n[4].X, tolerance)
	assert.InDelta(t, -50, n[4].Y, tolerance)
}

func TestNormalizeAlignsFarthestPair(t *testing.T) {
	m := newMatcher(t, nil)
	n, err := m.Normalize(testcommon.Asymmetric(), false)
	require.NoError(t, err)

	d := geometry.Distance(testcommon.Asymmetric()[0], testcommon.Asymmetric()[1])
	assert.InDelta(t, 0, n[0].X, tolerance)
	assert.InDelta(t, 0, n[0].Y, tolerance)
	assert.InDelta(t, -d/math.Sqrt2, n[1].X, tolerance)
	assert.InDelta(t, -d/math.Sqrt2, n[1].Y, tolerance)
}

func TestNormalizePreservesShapeAndOrder(t *testing.T) {
	m := newMatcher(t, nil)
	in := testcommon.Asymmetric()
	expected := pairwiseDistances(in)

	for _, preRotate := range []bool{false, true} {
		n, err := m.Normalize(in, preRotate)
		require.NoError(t, err)
		assert.InDeltaSlice(t, expected, pairwiseDistances(n), tolerance)
	}
	assert.Equal(t, testcommon.Asymmetric(), in)
}

func TestNormalizeHalfTurnSwapsAnchor(t *testing.T) {
	m := newMatcher(t, nil)
	d := geometry.Distance(testcommon.Asymmetric()[0], testcommon.Asymmetric()[1])

	upright, err := m.Normalize(testcommon.Asymmetric(), false)
	require.NoError(t, err)
	flipped, err := m.Normalize(testcommon.Asymmetric(), true)
	require.NoError(t, err)

	assert.InDelta(t, 0, flipped[1].X, tolerance)
	assert.InDelta(t, 0, flipped[1].Y, tolerance)
	assert.InDelta(t, -d/math.Sqrt2, flipped[0].X, tolerance)
	assert.InDelta(t, -d/math.Sqrt2, flipped[0].Y, tolerance)

	// flipped is upright turned about the pair midpoint
	mid := geometry.NewPoint(-d/math.Sqrt2/2, -d/math.Sqrt2/2)
	for i := range upright {
		turned := geometry.Rotate(mid, upright[i], math.Pi)
		assert.InDelta(t, turned.X, flipped[i].X, tolerance)
		assert.InDelta(t, turned.Y, flipped[i].Y, tolerance)
	}
}

func TestNormalizeIsRotationInvariant(t *testing.T) {
	m := newMatcher(t, nil)
	swapped := testcommon.Asymmetric()
	swapped[0], swapped[1] = swapped[1], swapped[0]

	for _, in := range []geometry.PointSet{testcommon.Asymmetric(), swapped} {
		base, err := m.Normalize(in, false)
		require.NoError(t, err)
		for _, angle := range []float64{0.7, math.Pi / 2, math.Pi, 4.4} {
			n, err := m.Normalize(testcommon.RotateAboutCentroid(in, angle), false)
			require.NoError(t, err)
			for i := range base {
				assert.InDelta(t, base[i].X, n[i].X, tolerance)
				assert.InDelta(t, base[i].Y, n[i].Y, tolerance)
			}
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	m := newMatcher(t, nil)

	_, err := m.Normalize(testcommon.Coincident(geometry.NewPoint(3, 3), 5), false)
	var degenerate *DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerate), "got %v", err)

	_, err = m.Normalize(testcommon.Square()[:4], false)
	var formatErr *InputFormatError
	assert.True(t, errors.As(err, &formatErr), "got %v", err)
}

func TestProject(t *testing.T) {
	m := newMatcher(t, nil)
	n, err := m.Normalize(testcommon.Asymmetric(), false)
	require.NoError(t, err)

	for _, tc := range []struct {
		name   string
		factor float64
	}{
		{name: "unit", factor: 1},
		{name: "half", factor: 0.5},
		{name: "double", factor: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p, err := m.Project(n, tc.factor)
			require.NoError(t, err)
			_, _, d := geometry.MaxPair(p)
			assert.InDelta(t, 400*math.Sqrt2*tc.factor, d, tolerance)
		})
	}
}

func TestProjectDegenerate(t *testing.T) {
	m := newMatcher(t, nil)
	_, err := m.Project(testcommon.Coincident(geometry.Point{}, 5), 1)
	var degenerate *DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerate), "got %v", err)
}
