// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/container"
	"github.com/IvanChernyshov/voronoi3d/lattice"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

func Test_neighbor01(tst *testing.T) {

	chk.PrintTitle("Test neighbor01: empty box container yields empty table")

	box, err := container.NewBox(container.Bounds{Lo: vec3.New(0, 0, 0), Hi: vec3.New(1, 1, 1)})
	if err != nil {
		tst.Fatal(err)
	}
	cfg := config.New()
	T := PlanBox(box, cfg)
	chk.IntAssert(T.Size(), 0)
}

func Test_neighbor02(tst *testing.T) {

	chk.PrintTitle("Test neighbor02: box container, two atoms, each sees the other, i != j for every row")

	box, err := container.NewBox(container.Bounds{Lo: vec3.New(0, 0, 0), Hi: vec3.New(1, 1, 1)})
	if err != nil {
		tst.Fatal(err)
	}
	box.AddAtoms([]vec3.Vec3{vec3.New(0.25, 0.5, 0.5), vec3.New(0.75, 0.5, 0.5)})
	cfg := config.New()
	T := PlanBox(box, cfg)
	if T.Size() == 0 {
		tst.Fatal("expected at least one row")
	}
	for r := 0; r < T.Size(); r++ {
		if T.I[r] == T.J[r] {
			tst.Fatalf("row %d has i==j", r)
		}
		if T.R2[r] <= 0 {
			tst.Fatalf("row %d has non-positive r2", r)
		}
	}
}

func Test_neighbor03(tst *testing.T) {

	chk.PrintTitle("Test neighbor03: triclinic PBC, image i==j is suppressed")

	lat := lattice.New(2, 2, 2, 90, 90, 90)
	pbc := container.NewTriclinicPBC(lat, [3]bool{true, true, true})
	pbc.AddAtoms([]vec3.Vec3{vec3.New(0, 0, 0)})
	cfg := config.New()
	T := PlanTriclinic(pbc, cfg)
	for r := 0; r < T.Size(); r++ {
		if T.I[r] == T.J[r] && T.Img[r] == [3]int{0, 0, 0} {
			tst.Fatalf("row %d is the suppressed self-image (i,j,img)=(0,0,(0,0,0))", r)
		}
	}
}
