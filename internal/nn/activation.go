package nn

import "math"

// relu is the rectified linear unit: max(0, z).
func relu(z float64) float64 {
	if z > 0 {
		return z
	}
	return 0
}

// reluPrime is the derivative of relu, a Heaviside step with the
// convention step(0) = 0.
func reluPrime(z float64) float64 {
	if z > 0 {
		return 1
	}
	return 0
}

// sigmoid computes the logistic function 1/(1+exp(-x)).
//
// The two-branch form keeps the argument of Exp non-positive, so the
// function cannot overflow for large-magnitude inputs; it saturates to
// 0 or 1 instead.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
