// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

func Test_region2a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region2a. verification points (IF97 table 15)")

	mdl, err := New("region2")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// p = 0.0035 [MPa], T = 300 [K]
	chk.Scalar(tst, "h(0.0035,300)", 1e-2, mdl.Enthalpy(0.0035, 300), 2549.91145)
	chk.Scalar(tst, "s(0.0035,300)", 1e-5, mdl.Entropy(0.0035, 300), 8.52238967)
	chk.Scalar(tst, "v(0.0035,300)", 1e-4, mdl.Volume(0.0035, 300), 39.4913866)
	chk.Scalar(tst, "cp(0.0035,300)", 1e-5, mdl.Cp(0.0035, 300), 1.91300162)

	// p = 0.0035 [MPa], T = 700 [K]
	chk.Scalar(tst, "h(0.0035,700)", 1e-2, mdl.Enthalpy(0.0035, 700), 3335.68375)
	chk.Scalar(tst, "s(0.0035,700)", 1e-5, mdl.Entropy(0.0035, 700), 10.1749996)
	chk.Scalar(tst, "cp(0.0035,700)", 1e-5, mdl.Cp(0.0035, 700), 2.08141274)

	// p = 30 [MPa], T = 700 [K]
	chk.Scalar(tst, "h(30,700)", 1e-2, mdl.Enthalpy(30, 700), 2631.49474)
	chk.Scalar(tst, "s(30,700)", 1e-5, mdl.Entropy(30, 700), 5.17540298)
	chk.Scalar(tst, "v(30,700)", 1e-8, mdl.Volume(30, 700), 0.542946619e-2)
	chk.Scalar(tst, "cp(30,700)", 1e-4, mdl.Cp(30, 700), 10.3505092)
}

func Test_region2b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region2b. analytic derivatives of γ(π,τ)")

	var vap Vapour
	for _, p := range []float64{0.0035, 0.1, 1.0, 10.0} {
		for _, T := range utl.LinSpace(450.0, 1050.0, 4) {
			pi, tau := p, r2Tref/T

			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return vap.gamma(x, tau)
			}, pi, pi*1e-4)
			chk.Scalar(tst, io.Sf("γ_π (π=%.4f,τ=%.3f)", pi, tau), 1e-4, vap.gammaP(pi, tau), dnum)

			dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return vap.gamma(pi, x)
			}, tau, 1e-5)
			chk.Scalar(tst, io.Sf("γ_τ (π=%.4f,τ=%.3f)", pi, tau), 1e-4, vap.gammaT(pi, tau), dnum)

			dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return vap.gammaT(pi, x)
			}, tau, 1e-5)
			chk.Scalar(tst, io.Sf("γ_ττ(π=%.4f,τ=%.3f)", pi, tau), 1e-4, vap.gammaTT(pi, tau), dnum)
		}
	}
}

func Test_region2c(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region2c. consistency with the ideal gas at low pressure")

	// at very low pressure the residual part vanishes and pv ≈ RT
	var vap Vapour
	for _, T := range utl.LinSpace(300.0, 1000.0, 5) {
		p := 1e-4 // [MPa]
		pv := p * 1000.0 * vap.Volume(p, T)
		chk.Scalar(tst, io.Sf("p·v ≈ R·T @ T=%g", T), 1e-2, pv, Rgas*T)
	}
}
