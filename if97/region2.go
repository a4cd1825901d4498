// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Vapour implements the region 2 formulation: superheated vapour, valid for
// 273.15 ≤ T ≤ 1073.15 [K] up to the region boundaries. The dimensionless
// Gibbs free energy splits into an ideal-gas part and a residual part
//   γ(π,τ) = ln(π) + Σ n°·τ^J°  +  Σ n · π^I · (τ-0.5)^J
// with π = p/1 and τ = 540/T.
type Vapour struct{}

// reference temperature of region 2 [K]
const r2Tref = 540.0

// coefficient tables of region 2: 9-term ideal-gas part and 43-term residual
// part. Fixed by the IF97 release; never derived or modified at runtime.
var (
	r2J0 = []int{0, 1, -5, -4, -3, -2, -1, 2, 3}
	r2N0 = []float64{
		-0.96927686500217e+01, +0.10086655968018e+02, -0.56087911283020e-02,
		+0.71452738081455e-01, -0.40710498223928e+00, +0.14240819171444e+01,
		-0.43839511319450e+01, -0.28408632460772e+00, +0.21268463753307e-01,
	}

	r2I = []int{
		1, 1, 1, 1, 1,
		2, 2, 2, 2, 2,
		3, 3, 3, 3, 3,
		4, 4, 4, 5,
		6, 6, 6,
		7, 7, 7,
		8, 8, 9,
		10, 10, 10,
		16, 16, 18,
		20, 20, 20, 21, 22, 23, 24, 24, 24,
	}
	r2J = []int{
		0, 1, 2, 3, 6,
		1, 2, 4, 7, 36,
		0, 1, 3, 6, 35,
		1, 2, 3, 7,
		3, 16, 35,
		0, 11, 25,
		8, 36, 13,
		4, 10, 14,
		29, 50, 57,
		20, 35, 48, 21, 53, 39, 26, 40, 58,
	}
	r2N = []float64{
		-0.17731742473213e-02, -0.17834862292358e-01, -0.45996013696365e-01, -0.57581259083432e-01,
		-0.50325278727930e-01, -0.33032641670203e-04, -0.18948987516315e-03, -0.39392777243355e-02,
		-0.43797295650573e-01, -0.26674547914087e-04, +0.20481737692309e-07, +0.43870667284435e-06,
		-0.32277677238570e-04, -0.15033924542148e-02, -0.40668253562649e-01, -0.78847309559367e-09,
		+0.12790717852285e-07, +0.48225372718507e-06, +0.22922076337661e-05, -0.16714766451061e-10,
		-0.21171472321355e-02, -0.23895741934104e+02, -0.59059564324270e-17, -0.12621808899101e-05,
		-0.38946842435739e-01, +0.11256211360459e-10, -0.82311340897998e+01, +0.19809712802088e-07,
		+0.10406965210174e-18, -0.10234747095929e-12, -0.10018179379511e-08, -0.80882908646985e-10,
		+0.10693031879409e+00, -0.33662250574171e+00, +0.89185845355421e-24, +0.30629316876232e-12,
		-0.42002467698208e-05, -0.59056029685639e-25, +0.37826947613457e-05, -0.12768608934681e-14,
		+0.73087610595061e-28, +0.55414715350778e-16, -0.94369707241210e-06,
	}
)

// add model to factory
func init() {
	allocators["region2"] = func() Model { return new(Vapour) }
}

// Init initialises model. Region 2 has no free parameters: the coefficient
// tables are fixed by the IF97 release.
func (o *Vapour) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		return chk.Err("region2: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Vapour) GetPrms(example bool) fun.Prms {
	return fun.Prms{}
}

// gamma computes γ = γ° + γʳ
func (o Vapour) gamma(pi, tau float64) (g float64) {
	g = math.Log(pi)
	for k, n := range r2N0 {
		g += n * math.Pow(tau, float64(r2J0[k]))
	}
	for k, n := range r2N {
		g += n * math.Pow(pi, float64(r2I[k])) * math.Pow(tau-0.5, float64(r2J[k]))
	}
	return
}

// gammaP computes ∂γ/∂π
func (o Vapour) gammaP(pi, tau float64) (gp float64) {
	gp = 1.0 / pi
	for k, n := range r2N {
		gp += n * float64(r2I[k]) * math.Pow(pi, float64(r2I[k]-1)) * math.Pow(tau-0.5, float64(r2J[k]))
	}
	return
}

// gammaT computes ∂γ/∂τ
func (o Vapour) gammaT(pi, tau float64) (gt float64) {
	for k, n := range r2N0 {
		gt += n * float64(r2J0[k]) * math.Pow(tau, float64(r2J0[k]-1))
	}
	for k, n := range r2N {
		gt += n * math.Pow(pi, float64(r2I[k])) * float64(r2J[k]) * math.Pow(tau-0.5, float64(r2J[k]-1))
	}
	return
}

// gammaTT computes ∂²γ/∂τ²
func (o Vapour) gammaTT(pi, tau float64) (gtt float64) {
	for k, n := range r2N0 {
		gtt += n * float64(r2J0[k]*(r2J0[k]-1)) * math.Pow(tau, float64(r2J0[k]-2))
	}
	for k, n := range r2N {
		gtt += n * math.Pow(pi, float64(r2I[k])) * float64(r2J[k]*(r2J[k]-1)) * math.Pow(tau-0.5, float64(r2J[k]-2))
	}
	return
}

// Enthalpy computes the specific enthalpy h = R·T·τ·γ_τ [kJ/kg];
// p [MPa], T [K]
func (o Vapour) Enthalpy(p, T float64) float64 {
	checkPT("region2", p, T)
	pi, tau := p, r2Tref/T
	return Rgas * T * tau * o.gammaT(pi, tau)
}

// Entropy computes the specific entropy s = R·(τ·γ_τ - γ) [kJ/(kg·K)];
// p [MPa], T [K]
func (o Vapour) Entropy(p, T float64) float64 {
	checkPT("region2", p, T)
	pi, tau := p, r2Tref/T
	return Rgas * (tau*o.gammaT(pi, tau) - o.gamma(pi, tau))
}

// Volume computes the specific volume v = R·T·π·γ_π/p [m³/kg];
// p [MPa], T [K]
func (o Vapour) Volume(p, T float64) float64 {
	checkPT("region2", p, T)
	pi, tau := p, r2Tref/T
	return Rgas * T * pi * o.gammaP(pi, tau) / (p * 1000.0)
}

// Cp computes the isobaric heat capacity cp = -R·τ²·γ_ττ [kJ/(kg·K)];
// p [MPa], T [K]
func (o Vapour) Cp(p, T float64) float64 {
	checkPT("region2", p, T)
	pi, tau := p, r2Tref/T
	return -Rgas * tau * tau * o.gammaTT(pi, tau)
}
