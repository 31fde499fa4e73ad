package distmatrix

import "math"

// Options controls how New validates and post-processes a raw matrix.
type Options struct {
	// RequireSymmetric, when true, rejects dist[i][j] != dist[j][i].
	RequireSymmetric bool

	// AllowMetricClosure, when true, treats +Inf entries as "unknown" and
	// fills them via Floyd–Warshall all-pairs shortest paths instead of
	// rejecting them outright.
	AllowMetricClosure bool
}

// New validates rows as a square distance matrix and returns a *Matrix.
//
// rows must be non-empty and every row must have the same length as the
// number of rows (square). Diagonal entries must be (approximately) zero,
// no entry may be negative or NaN. +Inf entries are rejected unless
// opts.AllowMetricClosure is set, in which case they are filled in by
// all-pairs shortest paths before being returned.
func New(rows [][]float64, opts Options) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rows[i][j]
			if math.IsNaN(v) {
				return nil, ErrNaN
			}
			if i == j {
				if math.Abs(v) > symTol {
					return nil, ErrNonZeroDiagonal
				}
				data[i*n+j] = 0
				continue
			}
			if v < 0 {
				return nil, ErrNegativeWeight
			}
			if math.IsInf(v, 1) && !opts.AllowMetricClosure {
				return nil, ErrIncompleteAndNoClosure
			}
			data[i*n+j] = v
		}
	}

	m := &Matrix{n: n, data: data}

	if opts.AllowMetricClosure {
		floydWarshallInPlace(m)
	}

	if opts.RequireSymmetric {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a := m.data[i*n+j]
				b := m.data[j*n+i]
				if math.Abs(a-b) > symTol {
					return nil, ErrAsymmetry
				}
			}
		}
	}

	return m, nil
}

// NewEuclidean builds a symmetric distance matrix from 2D points, as used
// by VRPLIB EUC_2D / Solomon-style instances. points[0] is conventionally
// the depot.
func NewEuclidean(points [][2]float64) (*Matrix, error) {
	n := len(points)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := points[i][0] - points[j][0]
			dy := points[i][1] - points[j][1]
			rows[i][j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	return New(rows, Options{RequireSymmetric: true})
}

// floydWarshallInPlace runs APSP closure on m in-place.
//
// Policy: +Inf denotes "no direct edge"; the diagonal is already 0.
// Loop order is fixed (k -> i -> j) for deterministic accumulation.
// Time: O(n^3); extra space: O(1).
func floydWarshallInPlace(m *Matrix) {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj       float64
		cand         float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
