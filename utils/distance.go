// Package utils contains numeric helpers shared across the library.
package utils

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceType defines the type of distance used in a function.
type DistanceType int

const (
	// Euclidean is DistanceType 0.
	Euclidean DistanceType = iota
	// Hamming is DistanceType 1.
	Hamming
)

// ComputeDistance computes the distance between two vectors stored in a
// slice of floats.
func ComputeDistance(p1, p2 []float64, distType DistanceType) (float64, error) {
	switch distType {
	case Hamming:
		return HammingDistance(p1, p2)
	default:
		return EuclideanDistance(p1, p2)
	}
}

// EuclideanDistance computes the euclidean distance between two vectors.
func EuclideanDistance(p1, p2 []float64) (float64, error) {
	if len(p1) != len(p2) {
		return -1, errors.Errorf("vector lengths do not match: %d != %d", len(p1), len(p2))
	}
	return floats.Distance(p1, p2, 2), nil
}

// HammingDistance computes the number of positions at which two vectors
// differ.
func HammingDistance(p1, p2 []float64) (float64, error) {
	if len(p1) != len(p2) {
		return -1, errors.Errorf("vector lengths do not match: %d != %d", len(p1), len(p2))
	}
	distance := 0
	for i := range p1 {
		if p1[i] != p2[i] {
			distance++
		}
	}
	return float64(distance), nil
}

// PairwiseDistance computes the distances between 2 sets of points as a
// len(pts1) by len(pts2) matrix.
func PairwiseDistance(pts1, pts2 [][]float64, distType DistanceType) (*mat.Dense, error) {
	distances := mat.NewDense(len(pts1), len(pts2), nil)
	for i := range pts1 {
		for j := range pts2 {
			d, err := ComputeDistance(pts1[i], pts2[j], distType)
			if err != nil {
				return nil, err
			}
			distances.Set(i, j, d)
		}
	}
	return distances, nil
}
