// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Region 4 is the saturation (liquid-vapour coexistence) curve. The functions
// here follow the public-facing unit convention: temperatures in [°C] and
// pressures in [Pa].

// coefficients of the quartic backward saturation-pressure equation
// (Wagner-Pruß). Fixed by the IF97 release; never derived or modified at
// runtime.
var r4N = []float64{
	+0.11670521452767e+04, -0.72421316703206e+06, -0.17073846940092e+02,
	+0.12020824702470e+05, -0.32325550322333e+07, +0.14915108613530e+02,
	-0.48232657361591e+04, +0.40511340542057e+06, -0.23855557567849e+00,
	+0.65017534844798e+03,
}

// models used by the exact saturated-enthalpy delegations
var (
	satLiq Liquid
	satVap Vapour
)

// psatMPa evaluates the backward saturation-pressure equation at T [K],
// without any domain guard. Outside the coexistence band the radicand goes
// negative and the result is NaN.
func psatMPa(T float64) float64 {
	tta := T + r4N[8]/(T-r4N[9])
	A := tta*tta + r4N[0]*tta + r4N[1]
	B := r4N[2]*tta*tta + r4N[3]*tta + r4N[4]
	C := r4N[5]*tta*tta + r4N[6]*tta + r4N[7]
	x := 2.0 * C / (-B + math.Sqrt(B*B-4.0*A*C))
	return x * x * x * x
}

// Psat computes the saturation pressure [Pa] at temperature T [°C]. The
// backward equation is valid from the melting line to the critical point;
// outside [0,373.946] [°C] an error is returned instead of a meaningless
// extrapolation.
func Psat(T float64) (p float64, err error) {
	TK := T + Tzero
	if TK < Tzero || TK > Tcrit {
		return 0, chk.Err("saturation pressure: T=%g [°C] is outside the valid range [0,%g] of the coexistence curve", T, Tcrit-Tzero)
	}
	p = psatMPa(TK) * 1e6
	if math.IsNaN(p) {
		return 0, chk.Err("saturation pressure: equation degenerates at T=%g [°C]", T)
	}
	return
}

// Tsat recovers the saturation temperature [°C] at pressure p [Pa] by Newton
// inversion of the backward equation, seeded at 100 [°C]. res is the pressure
// residual [Pa] left after the last step; pressures outside the coexistence
// range give NaN.
func Tsat(p float64) (T, res float64) {
	return invert(func(T float64) float64 { return psatMPa(T+Tzero) * 1e6 }, p, 100.0)
}

// HliqApprox computes the saturated-liquid enthalpy [kJ/kg] at T [°C] using a
// crude linear fit. Fast, but far from the release values away from 100 [°C]:
// prefer Hliq where fidelity matters.
func HliqApprox(T float64) float64 {
	return 419.0 + 4.18*T
}

// HvapApprox computes the saturated-vapour enthalpy [kJ/kg] at T [°C] by
// adding a linear latent-heat fit to HliqApprox. Same caveat as HliqApprox.
func HvapApprox(T float64) float64 {
	return HliqApprox(T) + (2500.0 - 20.0*T)
}

// Hliq computes the saturated-liquid enthalpy [kJ/kg] at T [°C] exactly:
// the region 1 formulation evaluated at the saturation pressure.
func Hliq(T float64) (h float64, err error) {
	p, err := Psat(T)
	if err != nil {
		return
	}
	return satLiq.Enthalpy(p/1e6, T+Tzero), nil
}

// Hvap computes the saturated-vapour enthalpy [kJ/kg] at T [°C] exactly:
// the region 2 formulation evaluated at the saturation pressure.
func Hvap(T float64) (h float64, err error) {
	p, err := Psat(T)
	if err != nil {
		return
	}
	return satVap.Enthalpy(p/1e6, T+Tzero), nil
}

// TfromHliqApprox recovers the saturation temperature [°C] from a
// saturated-liquid enthalpy h [kJ/kg], inverting HliqApprox from 100 [°C].
// res is the final enthalpy residual.
func TfromHliqApprox(h float64) (T, res float64) {
	return invert(HliqApprox, h, 100.0)
}

// TfromHvapApprox recovers the saturation temperature [°C] from a
// saturated-vapour enthalpy h [kJ/kg], inverting HvapApprox from 100 [°C].
// res is the final enthalpy residual.
func TfromHvapApprox(h float64) (T, res float64) {
	return invert(HvapApprox, h, 100.0)
}
