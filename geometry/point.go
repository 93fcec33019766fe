// Package geometry holds the 2D primitives used by the tag matcher.
package geometry

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point. All operations return new values.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vector is the displacement between two points.
type Vector struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// PointSet is an ordered set of points.
type PointSet []Point

func NewPoint(x float64, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx float64, dy float64) Point {
	return fromVec(r2.Add(p.vec(), r2.Vec{X: dx, Y: dy}))
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return fromVec(r2.Scale(f, p.vec()))
}

func (v Vector) vec() r2.Vec {
	return r2.Vec{X: v.DX, Y: v.DY}
}

// Between returns the vector from a to b.
func Between(a Point, b Point) Vector {
	d := r2.Sub(b.vec(), a.vec())
	return Vector{DX: d.X, DY: d.Y}
}

func Distance(a Point, b Point) float64 {
	return r2.Norm(r2.Sub(a.vec(), b.vec()))
}

func VectorLength(v Vector) float64 {
	return r2.Norm(v.vec())
}

func DotProduct(v1 Vector, v2 Vector) float64 {
	return r2.Dot(v1.vec(), v2.vec())
}

// CrossProduct is the z component of v1 x v2. It is positive when v2 lies
// counter-clockwise of v1.
func CrossProduct(v1 Vector, v2 Vector) float64 {
	return r2.Cross(v1.vec(), v2.vec())
}

// Rotate returns p rotated about origin by angle radians (counter-clockwise
// in a y-up frame).
func Rotate(origin Point, p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	d := r2.Sub(p.vec(), origin.vec())
	r := r2.Vec{
		X: cos*d.X - sin*d.Y,
		Y: sin*d.X + cos*d.Y,
	}
	return fromVec(r2.Add(r, origin.vec()))
}

// Clone returns a copy of the set that shares no storage with ps.
func (ps PointSet) Clone() PointSet {
	out := make(PointSet, len(ps))
	copy(out, ps)
	return out
}

// Map applies fn to every point, preserving order.
func (ps PointSet) Map(fn func(Point) Point) PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = fn(p)
	}
	return out
}

// MaxPair returns the indices i < j of the farthest-separated pair and their
// distance. The first pair found wins on ties. Sets with fewer than two
// points return (-1, -1, -1).
func MaxPair(points PointSet) (int, int, float64) {
	minPoint, maxPoint := -1, -1
	maxDist := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := Distance(points[i], points[j])
			if d > maxDist {
				maxDist = d
				minPoint = i
				maxPoint = j
			}
		}
	}
	return minPoint, maxPoint, maxDist
}

// Less orders points by ascending y, then ascending x.
func Less(a Point, b Point) bool {
	if a.Y == b.Y {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// SortCanonical returns a copy of points sorted with Less.
func SortCanonical(points PointSet) PointSet {
	out := points.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}
