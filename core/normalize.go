package core

import (
	"math"

	"github.com/snowshoe/tagmatch/geometry"
	"github.com/snowshoe/tagmatch/util"
)

var (
	origin   = geometry.Point{}
	diagonal = geometry.Vector{DX: 1, DY: 1}
)

// Normalize moves one end of the farthest pair to the origin and rotates the
// set so the other end lies on the canonical diagonal, at (-k,-k). The lower
// index end is the anchor; with preRotate180 the higher index end is, which
// is the upright result turned half way round and re-anchored. Output order
// follows input order.
func (m *Matcher) Normalize(points geometry.PointSet, preRotate180 bool) (geometry.PointSet, error) {
	if err := checkArity(points, m.opts.PatternSize); err != nil {
		return nil, err
	}

	minPoint, maxPoint, dist := geometry.MaxPair(points)
	if !(dist > 0) || math.IsInf(dist, 0) {
		return nil, &DegenerateGeometryError{Op: "normalize"}
	}
	if preRotate180 {
		minPoint, maxPoint = maxPoint, minPoint
	}

	anchor := points[minPoint]
	translated := points.Map(func(p geometry.Point) geometry.Point {
		return p.Translate(-anchor.X, -anchor.Y)
	})

	v := geometry.Between(translated[minPoint], translated[maxPoint])
	angle := alignmentAngle(v)

	return translated.Map(func(p geometry.Point) geometry.Point {
		return geometry.Rotate(origin, p, math.Pi+angle)
	}), nil
}

// alignmentAngle is the signed rotation taking v onto the diagonal. The
// magnitude comes from acos of the normalized dot product, the sign from the
// cross product.
func alignmentAngle(v geometry.Vector) float64 {
	cosA := geometry.DotProduct(v, diagonal) / geometry.VectorLength(v) / geometry.VectorLength(diagonal)
	angle := math.Acos(util.Clamp(cosA, -1, 1))
	if geometry.CrossProduct(v, diagonal) < 0 {
		return -angle
	}
	return angle
}

// Project scales the set uniformly so its farthest pair spans
// (Resolution/2)*sqrt(2)*scaleFactor.
func (m *Matcher) Project(points geometry.PointSet, scaleFactor float64) (geometry.PointSet, error) {
	if err := checkArity(points, m.opts.PatternSize); err != nil {
		return nil, err
	}

	_, _, dist := geometry.MaxPair(points)
	if !(dist > 0) || math.IsInf(dist, 0) {
		return nil, &DegenerateGeometryError{Op: "project"}
	}

	target := (m.opts.Resolution / 2) * math.Sqrt2 * scaleFactor
	scaling := target / dist
	return points.Map(func(p geometry.Point) geometry.Point {
		return p.Scale(scaling)
	}), nil
}
