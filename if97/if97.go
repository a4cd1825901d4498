// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package if97 implements the IAPWS Industrial Formulation 1997 (IF97) for the
// thermodynamic properties of water and steam. The formulation divides the
// pressure-temperature plane into regions, each governed by a dimensionless
// free-energy function whose partial derivatives yield enthalpy, entropy,
// specific volume and isobaric heat capacity in closed form.
//  References:
//   [1] IAPWS (1997) Release on the IAPWS Industrial Formulation 1997 for the
//       Thermodynamic Properties of Water and Steam. Erlangen, Germany
//   [2] Wagner W and Kretzschmar HJ (2008) International Steam Tables, 2nd ed,
//       Springer, Berlin, http://dx.doi.org/10.1007/978-3-540-74234-0
package if97

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// constants of the formulation
const (
	Rgas    = 0.461526 // specific gas constant of ordinary water [kJ/(kg·K)]
	Tcrit   = 647.096  // critical temperature [K]
	Pcrit   = 22.064   // critical pressure [MPa]
	RhoCrit = 322.0    // critical density [kg/m³]
	Tzero   = 273.15   // 0 °C [K]
)

// Region identifies which formulation governs a state point
type Region int

// regions of the pressure-temperature plane
const (
	Undefined Region = iota // outside all regions
	Region1                 // compressed / subcooled liquid
	Region2                 // superheated vapour
	Region3                 // dense fluid near the critical point
	Region4                 // saturation (liquid-vapour coexistence) curve
	Region5                 // high-temperature low-pressure vapour
)

// String returns the name of this region
func (o Region) String() string {
	switch o {
	case Region1:
		return "region1"
	case Region2:
		return "region2"
	case Region3:
		return "region3"
	case Region4:
		return "region4"
	case Region5:
		return "region5"
	}
	return "undefined"
}

// Model defines a region property evaluator. Pressures are given in [MPa] and
// temperatures in [K]; results are in [kJ/kg] (enthalpy), [kJ/(kg·K)] (entropy
// and cp) and [m³/kg] (volume). Models hold no state besides their coefficient
// tables, which are fixed after Init; all methods are safe for concurrent use.
// The formulas are defined piecewise: calling a model outside its region gives
// a formally computable but physically meaningless number.
type Model interface {
	Init(prms fun.Prms) error      // initialises model
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	Enthalpy(p, T float64) float64 // specific enthalpy h(p,T) [kJ/kg]
	Entropy(p, T float64) float64  // specific entropy s(p,T) [kJ/(kg·K)]
	Volume(p, T float64) float64   // specific volume v(p,T) [m³/kg]
	Cp(p, T float64) float64       // isobaric heat capacity cp(p,T) [kJ/(kg·K)]
}

// New region model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'if97' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkPT panics on physically impossible inputs
func checkPT(name string, p, T float64) {
	if p < 0 || T <= 0 {
		chk.Panic("%s: pressure and absolute temperature must be positive: p=%g [MPa], T=%g [K]", name, p, T)
	}
}
