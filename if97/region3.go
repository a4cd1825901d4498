// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// DenseFluid implements a placeholder for the region 3 formulation (dense
// fluid near the critical point, 623.15 < T ≤ 863.15 [K]).
//
// NOTE: this is NOT the IAPWS region 3 backward-equation formulation and has
// not been validated against the release tables. Density is a linear
// perturbation around the critical point
//   ρ(p,T) = ρc · (1 + ap·(p-pc)/pc - at·(T-Tc)/Tc)
// enthalpy is cp·(T-273.15) with a constant nominal cp, and entropy is h/T.
// Only the interface matches the other regions; use it for rough estimates.
// Init must be called before use (it sets the nominal coefficients).
type DenseFluid struct {

	// parameters
	cp float64 // nominal isobaric heat capacity [kJ/(kg·K)]
	ap float64 // pressure slope of the density perturbation
	at float64 // temperature slope of the density perturbation
}

// add model to factory
func init() {
	allocators["region3"] = func() Model { return new(DenseFluid) }
}

// Init initialises model
func (o *DenseFluid) Init(prms fun.Prms) (err error) {
	o.cp, o.ap, o.at = 5.0, 1.0, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cp":
			o.cp = p.V
		case "ap":
			o.ap = p.V
		case "at":
			o.at = p.V
		default:
			return chk.Err("region3: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o DenseFluid) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{
			&fun.Prm{N: "cp", V: 5.0},
			&fun.Prm{N: "ap", V: 1.0},
			&fun.Prm{N: "at", V: 1.0},
		}
	}
	return fun.Prms{
		&fun.Prm{N: "cp", V: o.cp},
		&fun.Prm{N: "ap", V: o.ap},
		&fun.Prm{N: "at", V: o.at},
	}
}

// Density computes the approximate density ρ [kg/m³]; p [MPa], T [K]
func (o DenseFluid) Density(p, T float64) float64 {
	checkPT("region3", p, T)
	return RhoCrit * (1.0 + o.ap*(p-Pcrit)/Pcrit - o.at*(T-Tcrit)/Tcrit)
}

// Volume computes the approximate specific volume v = 1/ρ [m³/kg];
// p [MPa], T [K]
func (o DenseFluid) Volume(p, T float64) float64 {
	return 1.0 / o.Density(p, T)
}

// Enthalpy computes the approximate specific enthalpy h = cp·(T-273.15)
// [kJ/kg]; p [MPa], T [K]
func (o DenseFluid) Enthalpy(p, T float64) float64 {
	checkPT("region3", p, T)
	return o.cp * (T - Tzero)
}

// Entropy computes the approximate specific entropy s = h/T [kJ/(kg·K)];
// p [MPa], T [K]
func (o DenseFluid) Entropy(p, T float64) float64 {
	return o.Enthalpy(p, T) / T
}

// Cp returns the nominal isobaric heat capacity [kJ/(kg·K)]
func (o DenseFluid) Cp(p, T float64) float64 {
	checkPT("region3", p, T)
	return o.cp
}

// TfromEnthalpy recovers the temperature [K] corresponding to enthalpy
// h [kJ/kg] at pressure p [MPa]. res is the final enthalpy residual.
func (o DenseFluid) TfromEnthalpy(p, h float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Enthalpy(p, T) }, h, 373.15)
}

// TfromEntropy recovers the temperature [K] corresponding to entropy
// s [kJ/(kg·K)] at pressure p [MPa]. res is the final entropy residual.
func (o DenseFluid) TfromEntropy(p, s float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Entropy(p, T) }, s, 373.15)
}

// TfromDensity recovers the temperature [K] corresponding to density
// ρ [kg/m³] at pressure p [MPa]. res is the final density residual.
func (o DenseFluid) TfromDensity(p, rho float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Density(p, T) }, rho, 373.15)
}
