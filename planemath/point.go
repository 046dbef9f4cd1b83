// Package planemath defines value types and functions for working with
// geometry in 2D cartesian space.
package planemath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/pelikhan/planar/utils"
)

// Point represents a location in 2D cartesian space. Points are plain
// values with no identity beyond their coordinates; two points with equal
// coordinates are interchangeable.
type Point struct {
	X, Y float64
}

// NewPoint returns the point at the given coordinates. Coordinates are not
// validated.
func NewPoint(x, y float64) Point {
	return Point{x, y}
}

// NewOriginPoint returns the point at the origin (0, 0).
func NewOriginPoint() Point {
	return Point{}
}

// NewFinitePoint is like NewPoint but rejects coordinates that are NaN or
// infinite.
func NewFinitePoint(x, y float64) (Point, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Point{}, errors.Errorf("x coordinate %v is not finite", x)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, errors.Errorf("y coordinate %v is not finite", y)
	}
	return Point{x, y}, nil
}

// NewPointFromR2 converts an r2.Point into a Point.
func NewPointFromR2(v r2.Point) Point {
	return Point{v.X, v.Y}
}

// CalculateDistance returns the euclidean distance between two points. It
// is symmetric in its arguments and zero when they are equal.
func CalculateDistance(p1, p2 Point) float64 {
	return math.Sqrt(utils.Square(p1.X-p2.X) + utils.Square(p1.Y-p2.Y))
}

// DistanceFromOrigin returns the euclidean distance between the point and
// the origin. The result is NaN if either coordinate is NaN.
func (p Point) DistanceFromOrigin() float64 {
	return math.Sqrt(utils.Square(p.X) + utils.Square(p.Y))
}

// Add returns a new point translated by the coordinates of other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns a new point with the coordinates of other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Scale returns a new point with both coordinates multiplied by factor.
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor}
}

// Translate returns a new point offset by dx and dy.
func (p Point) Translate(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// Midpoint returns the point halfway between p and other.
func (p Point) Midpoint(other Point) Point {
	return Point{(p.X + other.X) / 2, (p.Y + other.Y) / 2}
}

// AlmostEqual reports whether both coordinates of the two points are
// within epsilon of each other.
func (p Point) AlmostEqual(other Point, epsilon float64) bool {
	return utils.Float64AlmostEqual(p.X, other.X, epsilon) &&
		utils.Float64AlmostEqual(p.Y, other.Y, epsilon)
}

// R2Vector returns the point as an r2.Point.
func (p Point) R2Vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// String renders the point as "(x, y)" using default float formatting.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
