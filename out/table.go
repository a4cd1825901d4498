// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the evaluation and reporting of batches of state
// points
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosteam/if97"
	"github.com/cpmech/gosteam/inp"
)

// Row holds the evaluated properties of one state point
type Row struct {
	Point  *inp.Point  // the input state point
	Region if97.Region // region governing the point
	Valid  bool        // false for undefined points
	H      float64     // specific enthalpy [kJ/kg]
	S      float64     // specific entropy [kJ/(kg·K)]
	V      float64     // specific volume [m³/kg]
	Cp     float64     // isobaric heat capacity [kJ/(kg·K)]
}

// Evaluate classifies every state point of a batch and computes its
// properties with the governing region model. Points on the saturation curve
// are evaluated on the liquid side; undefined points give an invalid row.
func Evaluate(b *inp.Batch) (rows []*Row, err error) {
	rows = make([]*Row, len(b.Points))
	for i, pt := range b.Points {
		row := &Row{Point: pt, Region: if97.Classify(pt.T, pt.P)}
		rows[i] = row

		// internal unit convention of the region models
		p := pt.P / 1e6        // [MPa]
		T := pt.T + if97.Tzero // [K]

		var mdl if97.Model
		switch row.Region {
		case if97.Region1, if97.Region2, if97.Region5:
			mdl, err = if97.New(row.Region.String())
			if err != nil {
				return
			}
			err = mdl.Init(nil)
		case if97.Region3:
			mdl, err = if97.New(row.Region.String())
			if err != nil {
				return
			}
			err = mdl.Init(b.Region3)
		case if97.Region4:
			mdl = new(if97.Liquid)
			err = mdl.Init(nil)
		default:
			continue // undefined: leave row invalid
		}
		if err != nil {
			return
		}

		row.Valid = true
		row.H = mdl.Enthalpy(p, T)
		row.S = mdl.Entropy(p, T)
		row.V = mdl.Volume(p, T)
		row.Cp = mdl.Cp(p, T)
	}
	return
}

// Table formats evaluated rows into an aligned text table
func Table(rows []*Row) (l string) {
	l = io.Sf("%-12s%10s%14s%12s%14s%14s%14s%14s\n", "tag", "T [°C]", "P [Pa]", "region", "h [kJ/kg]", "s [kJ/kg·K]", "v [m³/kg]", "cp [kJ/kg·K]")
	for _, r := range rows {
		if !r.Valid {
			l += io.Sf("%-12s%10g%14g%12s%14s%14s%14s%14s\n", r.Point.Tag, r.Point.T, r.Point.P, r.Region, "-", "-", "-", "-")
			continue
		}
		l += io.Sf("%-12s%10g%14g%12s%14.4f%14.6f%14.6g%14.4f\n", r.Point.Tag, r.Point.T, r.Point.P, r.Region, r.H, r.S, r.V, r.Cp)
	}
	return
}
