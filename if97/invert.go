// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// Newton-Raphson constants. The inversion helper is deliberately narrow: a
// bounded number of steps with a finite-difference slope, bound to one physical
// property at a time by the region models. It is not a general solver.
const (
	nitNewton = 10    // iteration cap
	hNewton   = 0.01  // finite-difference step [K]
	tolNewton = 1e-09 // residual early-exit tolerance
)

// invert recovers x such that f(x) = target, starting from x0. It stops at the
// iteration cap or as soon as the residual falls below tolNewton, and returns
// the residual f(x)-target left after the last step so callers can detect a
// non-converged result.
func invert(f func(x float64) float64, target, x0 float64) (x, res float64) {
	x = x0
	for it := 0; it < nitNewton; it++ {
		fx := f(x)
		res = fx - target
		if math.Abs(res) < tolNewton {
			return
		}
		dfdx := (f(x+hNewton) - fx) / hNewton
		x -= res / dfdx
	}
	res = f(x) - target
	return
}
