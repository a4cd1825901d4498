// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of batches of state points
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Point holds one state point in the public unit convention
type Point struct {
	Tag string  `json:"tag"` // optional label
	T   float64 `json:"T"`   // temperature [°C]
	P   float64 `json:"P"`   // pressure [Pa]
}

// Batch holds a batch of state points read from a .pts JSON file
type Batch struct {

	// input
	Title   string   `json:"title"`   // description of this batch
	Points  []*Point `json:"points"`  // all state points
	Region3 fun.Prms `json:"region3"` // optional region 3 model parameters
}

// ReadPoints reads a batch of state points from a .pts JSON file
func ReadPoints(dir, fn string) (b *Batch, err error) {

	// new batch
	b = new(Batch)

	// read file
	dat, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(dat, b)
	if err != nil {
		return nil, err
	}

	// check
	if len(b.Points) == 0 {
		return nil, chk.Err("batch %q has no state points", fn)
	}
	for i, pt := range b.Points {
		if pt.P < 0 {
			return nil, chk.Err("point # %d has negative pressure: P=%g [Pa]", i, pt.P)
		}
	}
	return
}
