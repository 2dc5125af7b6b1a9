package projection

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooFewVectors is returned when fewer than 2 vectors are given; a
// single point has no meaningful 2-D spread.
var ErrTooFewVectors = errors.New("need at least 2 vectors to project")

const (
	maxIterations  = 100
	convergenceEps = 1e-10
	varianceEps    = 1e-12
)

// PCA2D reduces N equal-length vectors to 2 dimensions via the top two
// principal components, computed with power iteration and deflation.
// The sign of each component is fixed so that the score with the largest
// magnitude is positive, making the output deterministic. Directions with
// no remaining variance yield zero coordinates.
func PCA2D(vectors [][]float32) ([][2]float64, error) {
	n := len(vectors)
	if n < 2 {
		return nil, ErrTooFewVectors
	}
	d := len(vectors[0])
	if d == 0 {
		return nil, errors.New("vectors are empty")
	}

	// Mean-center into float64 working space.
	x := make([][]float64, n)
	mean := make([]float64, d)
	for i, v := range vectors {
		if len(v) != d {
			return nil, fmt.Errorf("vector %d has dimension %d, want %d", i, len(v), d)
		}
		x[i] = make([]float64, d)
		for j, f := range v {
			x[i][j] = float64(f)
			mean[j] += float64(f)
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}
	for i := range x {
		for j := range x[i] {
			x[i][j] -= mean[j]
		}
	}

	coords := make([][2]float64, n)
	for comp := 0; comp < 2; comp++ {
		v := principalDirection(x, d)
		if v == nil {
			break // no variance left, remaining coordinates stay 0
		}

		for i := range x {
			coords[i][comp] = dot(x[i], v)
		}
		fixSign(coords, comp)

		// Deflate so the next component is orthogonal to this one.
		for i := range x {
			t := dot(x[i], v)
			for j := range x[i] {
				x[i][j] -= t * v[j]
			}
		}
	}

	return coords, nil
}

// principalDirection finds the dominant eigenvector of X'X by power
// iteration, working row-wise so the covariance matrix is never formed.
func principalDirection(x [][]float64, d int) []float64 {
	v := make([]float64, d)
	copy(v, x[0])
	if normalize(v) == 0 {
		for j := range v {
			v[j] = 1
		}
		normalize(v)
	}

	for it := 0; it < maxIterations; it++ {
		w := make([]float64, d)
		for i := range x {
			t := dot(x[i], v)
			for j := range x[i] {
				w[j] += t * x[i][j]
			}
		}
		if normalize(w) < varianceEps {
			return nil
		}

		var delta float64
		for j := range w {
			delta += math.Abs(w[j] - v[j])
		}
		v = w
		if delta < convergenceEps {
			break
		}
	}

	return v
}

// fixSign flips one score column so its largest-magnitude entry is
// positive. PCA components are otherwise sign-ambiguous.
func fixSign(coords [][2]float64, comp int) {
	maxAbs := 0.0
	maxVal := 0.0
	for i := range coords {
		if a := math.Abs(coords[i][comp]); a > maxAbs {
			maxAbs = a
			maxVal = coords[i][comp]
		}
	}
	if maxVal < 0 {
		for i := range coords {
			coords[i][comp] = -coords[i][comp]
		}
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func normalize(v []float64) float64 {
	var s float64
	for _, f := range v {
		s += f * f
	}
	n := math.Sqrt(s)
	if n == 0 {
		return 0
	}
	for i := range v {
		v[i] /= n
	}
	return n
}
