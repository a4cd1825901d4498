// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import "math"

// SatBand is the half-width [Pa] of the tolerance band around the saturation
// curve. A state point within this band of the coexistence pressure is
// classified as region 4. A band, not a point test, absorbs floating-point and
// backward-equation error.
const SatBand = 100.0

// Classify decides which region governs the state point (T [°C], p [Pa]).
// The order of the checks matters: region 5 first, then the saturation band,
// then the region 1/2 partition by saturation pressure, then the region 3 box.
// Points outside all regions give Undefined.
func Classify(T, p float64) Region {
	TK := T + Tzero
	pMPa := p / 1e6

	// high-temperature vapour
	if TK > 1073.15 && TK <= 2273.15 && pMPa <= 50.0 {
		return Region5
	}

	// saturation band. The raw backward equation is used here on purpose:
	// far outside the coexistence range it gives NaN and both checks below
	// fall through.
	psat := psatMPa(TK) * 1e6
	if math.Abs(p-psat) < SatBand {
		return Region4
	}

	// liquid / vapour partition
	if TK <= 623.15 && pMPa <= 100.0 {
		if p > psat {
			return Region1
		}
		return Region2
	}

	// dense fluid box
	if TK > 623.15 && TK <= 863.15 && pMPa > 16.5292 && pMPa <= 100.0 {
		return Region3
	}
	return Undefined
}
