package planemath

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Path is an ordered sequence of points.
type Path []Point

// Length returns the total distance traveled visiting each point of the
// path in order.
func (path Path) Length() float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += CalculateDistance(path[i-1], path[i])
	}
	return total
}

// Validate checks that every point of the path has finite coordinates,
// returning the combined failures.
func (path Path) Validate() error {
	var err error
	for i, p := range path {
		if _, pErr := NewFinitePoint(p.X, p.Y); pErr != nil {
			err = multierr.Combine(err, errors.Wrapf(pErr, "point %d", i))
		}
	}
	return err
}

// Bounds is an axis-aligned bounding rectangle.
type Bounds struct {
	Min, Max Point
}

// BoundsForPoints returns the smallest bounds containing every given
// point. The bounds of no points is inverted and contains nothing.
func BoundsForPoints(points ...Point) Bounds {
	bounds := Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		bounds.Min.X = math.Min(bounds.Min.X, p.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, p.Y)
		bounds.Max.X = math.Max(bounds.Max.X, p.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, p.Y)
	}
	return bounds
}

// Contains reports whether the point lies within the bounds, borders
// included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
