package distmatrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/RamiMohamed12/projectVRP/distmatrix"
)

func TestNew_Square(t *testing.T) {
	rows := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	m, err := distmatrix.New(rows, distmatrix.Options{RequireSymmetric: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m.N() != 3 {
		t.Fatalf("N() = %d, want 3", m.N())
	}
	v, err := m.At(0, 2)
	if err != nil || v != 2 {
		t.Fatalf("At(0,2) = %v, %v", v, err)
	}
}

func TestNew_RejectsNonSquare(t *testing.T) {
	rows := [][]float64{
		{0, 1},
		{1, 0, 5},
	}
	_, err := distmatrix.New(rows, distmatrix.Options{})
	if !errors.Is(err, distmatrix.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}
}

func TestNew_RejectsNegative(t *testing.T) {
	rows := [][]float64{
		{0, -1},
		{-1, 0},
	}
	_, err := distmatrix.New(rows, distmatrix.Options{})
	if !errors.Is(err, distmatrix.ErrNegativeWeight) {
		t.Fatalf("want ErrNegativeWeight, got %v", err)
	}
}

func TestNew_RejectsNonZeroDiagonal(t *testing.T) {
	rows := [][]float64{
		{1, 1},
		{1, 0},
	}
	_, err := distmatrix.New(rows, distmatrix.Options{})
	if !errors.Is(err, distmatrix.ErrNonZeroDiagonal) {
		t.Fatalf("want ErrNonZeroDiagonal, got %v", err)
	}
}

func TestNew_RejectsAsymmetry(t *testing.T) {
	rows := [][]float64{
		{0, 1},
		{2, 0},
	}
	_, err := distmatrix.New(rows, distmatrix.Options{RequireSymmetric: true})
	if !errors.Is(err, distmatrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}

func TestNew_RejectsMissingEdgeWithoutClosure(t *testing.T) {
	rows := [][]float64{
		{0, math.Inf(1)},
		{math.Inf(1), 0},
	}
	_, err := distmatrix.New(rows, distmatrix.Options{})
	if !errors.Is(err, distmatrix.ErrIncompleteAndNoClosure) {
		t.Fatalf("want ErrIncompleteAndNoClosure, got %v", err)
	}
}

func TestNew_MetricClosureFillsMissingEdges(t *testing.T) {
	inf := math.Inf(1)
	rows := [][]float64{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	}
	m, err := distmatrix.New(rows, distmatrix.Options{AllowMetricClosure: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	v, err := m.At(0, 2)
	if err != nil {
		t.Fatalf("At(0,2) error = %v", err)
	}
	if v != 2 {
		t.Fatalf("At(0,2) = %v, want 2 (via closure through vertex 1)", v)
	}
}

func TestNewEuclidean(t *testing.T) {
	pts := [][2]float64{{0, 0}, {3, 4}}
	m, err := distmatrix.NewEuclidean(pts)
	if err != nil {
		t.Fatalf("NewEuclidean() error = %v", err)
	}
	v, _ := m.At(0, 1)
	if v != 5 {
		t.Fatalf("At(0,1) = %v, want 5", v)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0}}
	m, err := distmatrix.New(rows, distmatrix.Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cp := m.Clone()
	if cp.N() != m.N() {
		t.Fatalf("clone N mismatch")
	}
	va, _ := m.At(0, 1)
	vb, _ := cp.At(0, 1)
	if va != vb {
		t.Fatalf("clone diverges before mutation")
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0}}
	m, _ := distmatrix.New(rows, distmatrix.Options{})
	if _, err := m.At(5, 0); !errors.Is(err, distmatrix.ErrIndexOutOfBounds) {
		t.Fatalf("want ErrIndexOutOfBounds, got %v", err)
	}
}
