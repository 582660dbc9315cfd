package layers

import "math"

// solveQuadratic finds real roots of a*t^2 + b*t + c = 0 in ascending
// order. A vanishing a degrades to the linear case; an all-zero equation
// returns the single root 0.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		switch {
		case isFinite(root):
			return []float64{root}
		case b == 0 && c == 0:
			return []float64{0}
		default:
			return nil
		}
	}

	disc := sc1*sc1 - 4*sc0
	switch {
	case !isFinite(disc):
		return sortedPair(-sc1, sc0/-sc1)
	case disc < 0:
		return nil
	case disc == 0:
		return []float64{-0.5 * sc1}
	}

	// Stable form avoiding cancellation between -b and sqrt(disc).
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	return sortedPair(root1, sc0/root1)
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return []float64{r1, r2}
}

// solveQuadraticInUnitInterval returns roots of a*t^2 + b*t + c = 0 that
// lie in [0, 1], the parameter range of a Bezier segment. Roots within
// 1e-12 outside the interval are clamped onto it.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r >= -eps && r <= 1+eps {
			result = append(result, Clamp(r, 0, 1))
		}
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
