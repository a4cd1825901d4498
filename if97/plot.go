// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package if97

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotSatCurve plots the saturation pressure [MPa] against temperature [°C]
// from T0 to Tf with npts points
//  args -- plot arguments; e.g. "'b-'"
func PlotSatCurve(T0, Tf float64, npts int, args, label string) (T, P []float64, err error) {
	T = utl.LinSpace(T0, Tf, npts)
	P = make([]float64, npts)
	for i, t := range T {
		var p float64
		p, err = Psat(t)
		if err != nil {
			return
		}
		P[i] = p / 1e6
	}
	plt.Plot(T, P, io.Sf("%s, label='%s', clip_on=0", args, label))
	return
}

// PlotIsobar plots a property along an isobar computed by a region model
//  getprop -- property selector: "h", "s", "v" or "cp"
//  p       -- pressure [MPa]
//  TK0,TKf -- temperature range [K]
func PlotIsobar(mdl Model, getprop string, p, TK0, TKf float64, npts int, args, label string) (T, Y []float64) {
	T = utl.LinSpace(TK0, TKf, npts)
	Y = make([]float64, npts)
	for i, t := range T {
		switch getprop {
		case "h":
			Y[i] = mdl.Enthalpy(p, t)
		case "s":
			Y[i] = mdl.Entropy(p, t)
		case "v":
			Y[i] = mdl.Volume(p, t)
		case "cp":
			Y[i] = mdl.Cp(p, t)
		}
	}
	plt.Plot(T, Y, io.Sf("%s, label='%s', clip_on=0", args, label))
	return
}
