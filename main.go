// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "points", ".pts", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGosteam -- IAPWS-IF97 Water and Steam Properties\n")
		io.Pf("Copyright 2016 The Gosteam Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read points
	dir := filepath.Dir(fnamepath)
	fn := filepath.Base(fnamepath)
	batch, err := inp.ReadPoints(dir, fn)
	if err != nil {
		chk.Panic("cannot read points file:\n%v", err)
	}

	// evaluate properties
	rows, err := out.Evaluate(batch)
	if err != nil {
		chk.Panic("evaluation failed:\n%v", err)
	}

	// results
	if batch.Title != "" {
		io.Pf("\n%s\n\n", batch.Title)
	}
	io.Pf("%s\n", out.Table(rows))
}
