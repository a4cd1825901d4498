// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Liquid implements the region 1 formulation: compressed / subcooled liquid
// water, valid for T ≤ 623.15 [K] and p ≤ 100 [MPa]. The dimensionless Gibbs
// free energy is
//   γ(π,τ) = Σ n · (7.1-π)^I · (τ-1.222)^J
// with π = p/16.53 and τ = 1386/T.
type Liquid struct{}

// reference constants of region 1
const (
	r1pref = 16.53  // reducing pressure [MPa]
	r1Tref = 1386.0 // reducing temperature [K]
)

// coefficient table of region 1 (34 terms). Fixed by the IF97 release; never
// derived or modified at runtime.
var (
	r1I = []int{
		0, 0, 0, 0, 0, 0, 0, 0,
		1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2,
		3, 3, 3,
		4, 4, 4,
		5, 8, 8, 21, 23, 29, 30, 31, 32,
	}
	r1J = []int{
		-2, -1, 0, 1, 2, 3, 4, 5,
		-9, -7, -1, 0, 1, 3,
		-3, 0, 1, 3, 17,
		-4, 0, 6,
		-5, -2, 10,
		-8, -11, -6, -29, -31, -38, -39, -40, -41,
	}
	r1N = []float64{
		+0.14632971213167e+00, -0.84548187169114e+00, -0.37563603672040e+01, +0.33855169168385e+01,
		-0.95791963387872e+00, +0.15772038513228e+00, -0.16616417199501e-01, +0.81214629983568e-03,
		+0.28319080123804e-03, -0.60706301565874e-03, -0.18990068218419e-01, -0.32529748770505e-01,
		-0.21841717175414e-01, -0.52838357969930e-04, -0.47184321073267e-03, -0.30001780793026e-03,
		+0.47661393906987e-04, -0.44141845330846e-05, -0.72694996297594e-15, -0.31679644845054e-04,
		-0.28270797985312e-05, -0.85205128120103e-09, -0.22425281908000e-05, -0.65171222895601e-06,
		-0.14341729937924e-12, -0.40516996860117e-06, -0.12734301741641e-08, -0.17424871230634e-09,
		-0.68762131295531e-18, +0.14478307828521e-19, +0.26335781662795e-22, -0.11947622640071e-22,
		+0.18228094581404e-23, -0.93537087292458e-25,
	}
)

// add model to factory
func init() {
	allocators["region1"] = func() Model { return new(Liquid) }
}

// Init initialises model. Region 1 has no free parameters: the coefficient
// table is fixed by the IF97 release.
func (o *Liquid) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		return chk.Err("region1: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Liquid) GetPrms(example bool) fun.Prms {
	return fun.Prms{}
}

// gamma computes the dimensionless Gibbs free energy γ(π,τ)
func (o Liquid) gamma(pi, tau float64) (g float64) {
	for k, n := range r1N {
		g += n * math.Pow(7.1-pi, float64(r1I[k])) * math.Pow(tau-1.222, float64(r1J[k]))
	}
	return
}

// gammaP computes ∂γ/∂π
func (o Liquid) gammaP(pi, tau float64) (gp float64) {
	for k, n := range r1N {
		gp -= n * float64(r1I[k]) * math.Pow(7.1-pi, float64(r1I[k]-1)) * math.Pow(tau-1.222, float64(r1J[k]))
	}
	return
}

// gammaT computes ∂γ/∂τ
func (o Liquid) gammaT(pi, tau float64) (gt float64) {
	for k, n := range r1N {
		gt += n * math.Pow(7.1-pi, float64(r1I[k])) * float64(r1J[k]) * math.Pow(tau-1.222, float64(r1J[k]-1))
	}
	return
}

// gammaTT computes ∂²γ/∂τ²
func (o Liquid) gammaTT(pi, tau float64) (gtt float64) {
	for k, n := range r1N {
		gtt += n * math.Pow(7.1-pi, float64(r1I[k])) * float64(r1J[k]*(r1J[k]-1)) * math.Pow(tau-1.222, float64(r1J[k]-2))
	}
	return
}

// Enthalpy computes the specific enthalpy h = R·T·τ·γ_τ [kJ/kg];
// p [MPa], T [K]
func (o Liquid) Enthalpy(p, T float64) float64 {
	checkPT("region1", p, T)
	pi, tau := p/r1pref, r1Tref/T
	return Rgas * T * tau * o.gammaT(pi, tau)
}

// Entropy computes the specific entropy s = R·(τ·γ_τ - γ) [kJ/(kg·K)];
// p [MPa], T [K]
func (o Liquid) Entropy(p, T float64) float64 {
	checkPT("region1", p, T)
	pi, tau := p/r1pref, r1Tref/T
	return Rgas * (tau*o.gammaT(pi, tau) - o.gamma(pi, tau))
}

// Volume computes the specific volume v = R·T·π·γ_π/p [m³/kg];
// p [MPa], T [K]
func (o Liquid) Volume(p, T float64) float64 {
	checkPT("region1", p, T)
	pi, tau := p/r1pref, r1Tref/T
	return Rgas * T * pi * o.gammaP(pi, tau) / (p * 1000.0)
}

// Cp computes the isobaric heat capacity cp = -R·τ²·γ_ττ [kJ/(kg·K)];
// p [MPa], T [K]
func (o Liquid) Cp(p, T float64) float64 {
	checkPT("region1", p, T)
	pi, tau := p/r1pref, r1Tref/T
	return -Rgas * tau * tau * o.gammaTT(pi, tau)
}

// Density computes the density ρ = 1/v [kg/m³]; p [MPa], T [K]
func (o Liquid) Density(p, T float64) float64 {
	return 1.0 / o.Volume(p, T)
}

// TfromEnthalpy recovers the temperature [K] corresponding to enthalpy
// h [kJ/kg] at pressure p [MPa]. res is the enthalpy residual left after the
// last Newton step; a large |res| indicates a non-converged result.
func (o Liquid) TfromEnthalpy(p, h float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Enthalpy(p, T) }, h, 373.15)
}

// TfromEntropy recovers the temperature [K] corresponding to entropy
// s [kJ/(kg·K)] at pressure p [MPa]. res is the final entropy residual.
func (o Liquid) TfromEntropy(p, s float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Entropy(p, T) }, s, 373.15)
}

// TfromDensity recovers the temperature [K] corresponding to density
// ρ [kg/m³] at pressure p [MPa]. res is the final density residual.
func (o Liquid) TfromDensity(p, rho float64) (T, res float64) {
	return invert(func(T float64) float64 { return o.Density(p, T) }, rho, 373.15)
}
