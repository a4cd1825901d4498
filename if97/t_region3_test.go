// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_region3a(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region3a. placeholder formulation")

	mdl, err := New("region3")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise model: %v\n", err)
		return
	}
	dense := mdl.(*DenseFluid)

	// at the critical point the perturbation vanishes
	chk.Scalar(tst, "ρ(pc,Tc)", 1e-12, dense.Density(Pcrit, Tcrit), RhoCrit)

	// density decreases with T and increases with p
	p, T := 25.0, 700.0
	if dense.Density(p, T+10) >= dense.Density(p, T) {
		tst.Errorf("density should decrease with temperature\n")
		return
	}
	if dense.Density(p+5, T) <= dense.Density(p, T) {
		tst.Errorf("density should increase with pressure\n")
		return
	}

	// internal consistency of the approximations
	chk.Scalar(tst, "v = 1/ρ", 1e-15, dense.Volume(p, T), 1.0/dense.Density(p, T))
	chk.Scalar(tst, "h = cp·(T-273.15)", 1e-12, dense.Enthalpy(p, T), dense.Cp(p, T)*(T-Tzero))
	chk.Scalar(tst, "s = h/T", 1e-12, dense.Entropy(p, T), dense.Enthalpy(p, T)/T)
}

func Test_region3b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("region3b. parameters and inversions")

	var dense DenseFluid
	err := dense.Init(fun.Prms{
		&fun.Prm{N: "cp", V: 4.6},
		&fun.Prm{N: "ap", V: 0.8},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "cp", 1e-15, dense.Cp(25, 700), 4.6)

	err = dense.Init(fakePrms("kappa", 1))
	if err == nil {
		tst.Errorf("Init should have failed with an unknown parameter\n")
		return
	}

	err = dense.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	for _, pt := range [][]float64{{20, 650}, {50, 750}, {90, 860}} {
		p, T := pt[0], pt[1]

		Th, _ := dense.TfromEnthalpy(p, dense.Enthalpy(p, T))
		chk.Scalar(tst, io.Sf("T(h) @ p=%g,T=%g", p, T), 1e-3, Th, T)

		Ts, _ := dense.TfromEntropy(p, dense.Entropy(p, T))
		chk.Scalar(tst, io.Sf("T(s) @ p=%g,T=%g", p, T), 1e-3, Ts, T)

		Tr, _ := dense.TfromDensity(p, dense.Density(p, T))
		chk.Scalar(tst, io.Sf("T(ρ) @ p=%g,T=%g", p, T), 1e-3, Tr, T)
	}
}
