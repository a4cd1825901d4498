// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HotVapour implements the region 5 formulation: high-temperature vapour,
// 1073.15 < T ≤ 2273.15 [K] at low pressure. The gas is nearly ideal there:
//   γ(π,τ) = ln(π) + Σ n°·τ^J°  +  Σ n · π^I · τ^J
// with π = p/1 and τ = 1000/T, and a short residual table (original 1997
// release).
type HotVapour struct{}

// reference temperature of region 5 [K]
const r5Tref = 1000.0

// coefficient tables of region 5: 6-term ideal-gas part and 5-term residual
// part. Fixed by the IF97 release; never derived or modified at runtime.
var (
	r5J0 = []int{0, 1, -3, -2, -1, 2}
	r5N0 = []float64{
		-0.13179983674201e+02, +0.68540841634434e+01, -0.24805148933466e-01,
		+0.36901534980333e+00, -0.31161318213925e+01, -0.32961626538917e+00,
	}

	r5I = []int{1, 1, 1, 2, 3}
	r5J = []int{1, 2, 3, 3, 9}
	r5N = []float64{
		+0.15736404855259e-02, +0.90153761673944e-03, -0.50270077677648e-02,
		+0.22440037409485e-05, -0.41163275453471e-05,
	}
)

// add model to factory
func init() {
	allocators["region5"] = func() Model { return new(HotVapour) }
}

// Init initialises model. Region 5 has no free parameters: the coefficient
// tables are fixed by the IF97 release.
func (o *HotVapour) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		return chk.Err("region5: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o HotVapour) GetPrms(example bool) fun.Prms {
	return fun.Prms{}
}

// gamma computes γ = γ° + γʳ
func (o HotVapour) gamma(pi, tau float64) (g float64) {
	g = math.Log(pi)
	for k, n := range r5N0 {
		g += n * math.Pow(tau, float64(r5J0[k]))
	}
	for k, n := range r5N {
		g += n * math.Pow(pi, float64(r5I[k])) * math.Pow(tau, float64(r5J[k]))
	}
	return
}

// gammaP computes ∂γ/∂π
func (o HotVapour) gammaP(pi, tau float64) (gp float64) {
	gp = 1.0 / pi
	for k, n := range r5N {
		gp += n * float64(r5I[k]) * math.Pow(pi, float64(r5I[k]-1)) * math.Pow(tau, float64(r5J[k]))
	}
	return
}

// gammaT computes ∂γ/∂τ
func (o HotVapour) gammaT(pi, tau float64) (gt float64) {
	for k, n := range r5N0 {
		gt += n * float64(r5J0[k]) * math.Pow(tau, float64(r5J0[k]-1))
	}
	for k, n := range r5N {
		gt += n * math.Pow(pi, float64(r5I[k])) * float64(r5J[k]) * math.Pow(tau, float64(r5J[k]-1))
	}
	return
}

// gammaTT computes ∂²γ/∂τ²
func (o HotVapour) gammaTT(pi, tau float64) (gtt float64) {
	for k, n := range r5N0 {
		gtt += n * float64(r5J0[k]*(r5J0[k]-1)) * math.Pow(tau, float64(r5J0[k]-2))
	}
	for k, n := range r5N {
		gtt += n * math.Pow(pi, float64(r5I[k])) * float64(r5J[k]*(r5J[k]-1)) * math.Pow(tau, float64(r5J[k]-2))
	}
	return
}

// Enthalpy computes the specific enthalpy h = R·T·τ·γ_τ [kJ/kg];
// p [MPa], T [K]
func (o HotVapour) Enthalpy(p, T float64) float64 {
	checkPT("region5", p, T)
	pi, tau := p, r5Tref/T
	return Rgas * T * tau * o.gammaT(pi, tau)
}

// Entropy computes the specific entropy s = R·(τ·γ_τ - γ) [kJ/(kg·K)];
// p [MPa], T [K]
func (o HotVapour) Entropy(p, T float64) float64 {
	checkPT("region5", p, T)
	pi, tau := p, r5Tref/T
	return Rgas * (tau*o.gammaT(pi, tau) - o.gamma(pi, tau))
}

// Volume computes the specific volume v = R·T·π·γ_π/p [m³/kg];
// p [MPa], T [K]
func (o HotVapour) Volume(p, T float64) float64 {
	checkPT("region5", p, T)
	pi, tau := p, r5Tref/T
	return Rgas * T * pi * o.gammaP(pi, tau) / (p * 1000.0)
}

// Cp computes the isobaric heat capacity cp = -R·τ²·γ_ττ [kJ/(kg·K)];
// p [MPa], T [K]
func (o HotVapour) Cp(p, T float64) float64 {
	checkPT("region5", p, T)
	pi, tau := p, r5Tref/T
	return -Rgas * tau * tau * o.gammaTT(pi, tau)
}
