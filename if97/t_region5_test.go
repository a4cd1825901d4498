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

func Test_region5a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region5a. verification point (IF97 table 42)")

	mdl, err := New("region5")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}

	// p = 0.5 [MPa], T = 1500 [K]
	chk.Scalar(tst, "v(0.5,1500)", 1e-4, mdl.Volume(0.5, 1500), 1.38455354)
	chk.Scalar(tst, "h(0.5,1500)", 1e-1, mdl.Enthalpy(0.5, 1500), 5219.76332)
	chk.Scalar(tst, "s(0.5,1500)", 1e-3, mdl.Entropy(0.5, 1500), 9.65408431)
	chk.Scalar(tst, "cp(0.5,1500)", 1e-3, mdl.Cp(0.5, 1500), 2.61610228)
}

func Test_region5b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region5b. near-ideal behaviour and derivatives")

	var hot HotVapour

	// the gas is nearly ideal: pv within 1% of RT over the whole region
	for _, T := range utl.LinSpace(1100.0, 2200.0, 5) {
		for _, p := range []float64{0.1, 1.0, 10.0} {
			pv := p * 1000.0 * hot.Volume(p, T)
			chk.Scalar(tst, io.Sf("p·v ≈ R·T @ p=%g,T=%g", p, T), 0.01*Rgas*T, pv, Rgas*T)
		}
	}

	// analytic derivatives of γ(π,τ)
	for _, p := range []float64{0.5, 5.0} {
		for _, T := range utl.LinSpace(1100.0, 2200.0, 4) {
			pi, tau := p, r5Tref/T

			dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return hot.gamma(x, tau)
			}, pi, pi*1e-4)
			chk.Scalar(tst, io.Sf("γ_π (π=%.3f,τ=%.3f)", pi, tau), 1e-5, hot.gammaP(pi, tau), dnum)

			dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return hot.gamma(pi, x)
			}, tau, 1e-5)
			chk.Scalar(tst, io.Sf("γ_τ (π=%.3f,τ=%.3f)", pi, tau), 1e-5, hot.gammaT(pi, tau), dnum)

			dnum, _ = num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
				return hot.gammaT(pi, x)
			}, tau, 1e-5)
			chk.Scalar(tst, io.Sf("γ_ττ(π=%.3f,τ=%.3f)", pi, tau), 1e-5, hot.gammaTT(pi, tau), dnum)
		}
	}

	// enthalpy increases with temperature along an isobar
	hprev := hot.Enthalpy(1.0, 1100.0)
	for _, T := range utl.LinSpace(1200.0, 2200.0, 11) {
		h := hot.Enthalpy(1.0, T)
		if h <= hprev {
			tst.Errorf("enthalpy is not increasing at T=%g\n", T)
			return
		}
		hprev = h
	}
}
