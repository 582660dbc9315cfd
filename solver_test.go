package layers

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}

	sorted := append([]float64(nil), roots...)
	sort.Float64s(sorted)
	for i := range sorted {
		if !scalar.EqualWithinAbs(sorted[i], expected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v", name, i, sorted[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"two roots", 1, 0, -5, []float64{-math.Sqrt(5), math.Sqrt(5)}},
		{"no real roots", 1, 0, 5, nil},
		{"double root", 1, -2, 1, []float64{1}},
		{"factored", 2, -10, 12, []float64{2, 3}},
		{"linear", 0, 2, -4, []float64{2}},
		{"constant", 0, 0, 3, nil},
		{"all zero", 0, 0, 0, []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifySolverRoots(t, tt.name, solveQuadratic(tt.a, tt.b, tt.c), tt.expected, 1e-10)
		})
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
	}{
		{"both inside", 1, -1, 0.1875, []float64{0.25, 0.75}},
		{"one inside", 1, -0.5, -0.5, []float64{1}},
		{"none inside", 1, -5, 6, nil},
		{"endpoint", 1, 0, 0, []float64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifySolverRoots(t, tt.name, solveQuadraticInUnitInterval(tt.a, tt.b, tt.c), tt.expected, 1e-10)
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect bool
	}{
		{"positive", 1.0, true},
		{"zero", 0.0, true},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFinite(tt.x); got != tt.expect {
				t.Errorf("isFinite(%v) = %v, want %v", tt.x, got, tt.expect)
			}
		})
	}
}
