// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds the verification data published with the IF97 release.
// The release prints, for every region, computed properties at a small set of
// state points so that implementations can be checked digit by digit.
package ana

// Point holds one verification state point of a region formulation
type Point struct {
	P  float64 // pressure [MPa]
	T  float64 // temperature [K]
	V  float64 // specific volume [m³/kg]
	H  float64 // specific enthalpy [kJ/kg]
	S  float64 // specific entropy [kJ/(kg·K)]
	Cp float64 // isobaric heat capacity [kJ/(kg·K)]
}

// SatPoint holds one verification point of the saturation-pressure equation
type SatPoint struct {
	T float64 // temperature [K]
	P float64 // saturation pressure [MPa]
}

// Region1Points returns the region 1 verification points (IF97 table 5)
func Region1Points() []Point {
	return []Point{
		{P: 3, T: 300, V: 0.100215168e-2, H: 115.331273, S: 0.392294792, Cp: 4.17301218},
		{P: 80, T: 300, V: 0.971180894e-3, H: 184.142828, S: 0.368563852, Cp: 4.01008987},
		{P: 3, T: 500, V: 0.120241800e-2, H: 975.542239, S: 2.58041912, Cp: 4.65580682},
	}
}

// Region2Points returns the region 2 verification points (IF97 table 15)
func Region2Points() []Point {
	return []Point{
		{P: 0.0035, T: 300, V: 39.4913866, H: 2549.91145, S: 8.52238967, Cp: 1.91300162},
		{P: 0.0035, T: 700, V: 92.3015898, H: 3335.68375, S: 10.1749996, Cp: 2.08141274},
		{P: 30, T: 700, V: 0.542946619e-2, H: 2631.49474, S: 5.17540298, Cp: 10.3505092},
	}
}

// SatPoints returns the saturation-pressure verification points (IF97 table 35)
func SatPoints() []SatPoint {
	return []SatPoint{
		{T: 300, P: 0.353658941e-2},
		{T: 500, P: 0.263889776e1},
		{T: 600, P: 0.123443146e2},
	}
}
