// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func checkRegion(tst *testing.T, msg string, got, want Region) {
	if got != want {
		tst.Errorf("%s: got %v, want %v\n", msg, got, want)
	}
}

func Test_classify01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("classify01. representative state points")

	checkRegion(tst, "liquid @ 25 [°C], 1 [atm]", Classify(25, 101325), Region1)
	checkRegion(tst, "vapour @ 150 [°C], 1 [atm]", Classify(150, 101325), Region2)
	checkRegion(tst, "vapour @ 25 [°C], 100 [Pa]", Classify(25, 100), Region2)
	checkRegion(tst, "dense @ 400 [°C], 30 [MPa]", Classify(400, 30e6), Region3)
	checkRegion(tst, "hot vapour @ 900 [°C], 1 [MPa]", Classify(900, 1e6), Region5)
	checkRegion(tst, "undefined @ 25 [°C], 200 [MPa]", Classify(25, 200e6), Undefined)
	checkRegion(tst, "undefined @ 900 [°C], 80 [MPa]", Classify(900, 80e6), Undefined)
	checkRegion(tst, "undefined @ 2200 [°C], 1 [MPa]", Classify(2200, 1e6), Undefined)
	checkRegion(tst, "undefined @ 400 [°C], 10 [MPa]", Classify(400, 10e6), Undefined)
}

func Test_classify02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("classify02. saturation band and liquid/vapour partition")

	for _, T := range utl.LinSpace(5.0, 350.0, 12) {
		psat, err := Psat(T)
		if err != nil {
			tst.Errorf("Psat failed: %v\n", err)
			return
		}

		// within the band
		checkRegion(tst, io.Sf("sat @ T=%g", T), Classify(T, psat), Region4)
		checkRegion(tst, io.Sf("sat+99 @ T=%g", T), Classify(T, psat+99), Region4)
		checkRegion(tst, io.Sf("sat-99 @ T=%g", T), Classify(T, psat-99), Region4)

		// partition by the saturation pressure
		checkRegion(tst, io.Sf("liq @ T=%g", T), Classify(T, psat+101), Region1)
		checkRegion(tst, io.Sf("vap @ T=%g", T), Classify(T, psat-101), Region2)
	}
}

func Test_classify03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("classify03. check order and region names")

	// the region 5 box wins over every later check
	checkRegion(tst, "region5 first", Classify(1073.15-Tzero+1, 40e6), Region5)

	names := []string{"undefined", "region1", "region2", "region3", "region4", "region5"}
	for i, r := range []Region{Undefined, Region1, Region2, Region3, Region4, Region5} {
		if r.String() != names[i] {
			tst.Errorf("wrong name for region %d: %q\n", i, r.String())
		}
	}
}
