package testcommon

import (
	"math"

	"github.com/snowshoe/tagmatch/geometry"
)

const (
	SquareDef     = "0,0,100,0,100,100,0,100,50,50"
	AsymmetricDef = "0,0,130,10,90,80,20,60,50,35"
)

// Square is a square with its centre. Both diagonals tie for the farthest pair.
func Square() geometry.PointSet {
	return geometry.PointSet{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 50, Y: 50}}
}

// Asymmetric has a unique farthest pair (points 0 and 1).
func Asymmetric() geometry.PointSet {
	return geometry.PointSet{{X: 0, Y: 0}, {X: 130, Y: 10}, {X: 90, Y: 80}, {X: 20, Y: 60}, {X: 50, Y: 35}}
}

func Coincident(p geometry.Point, n int) geometry.PointSet {
	points := make(geometry.PointSet, n)
	for i := range points {
		points[i] = p
	}
	return points
}

// ScaleTranslate scales every point about the origin, then shifts it.
func ScaleTranslate(points geometry.PointSet, scale float64, dx float64, dy float64) geometry.PointSet {
	return points.Map(func(p geometry.Point) geometry.Point {
		return p.Scale(scale).Translate(dx, dy)
	})
}

// RotateAboutCentroid turns the whole set by angle about its centroid.
func RotateAboutCentroid(points geometry.PointSet, angle float64) geometry.PointSet {
	var c geometry.Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(points))
	c.Y /= float64(len(points))
	return points.Map(func(p geometry.Point) geometry.Point {
		return geometry.Rotate(c, p, angle)
	})
}

// RotateHalfTurn turns the set 180 degrees about the origin.
func RotateHalfTurn(points geometry.PointSet) geometry.PointSet {
	return points.Map(func(p geometry.Point) geometry.Point {
		return geometry.Rotate(geometry.Point{}, p, math.Pi)
	})
}
