// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package container

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/lattice"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

func Test_container01(tst *testing.T) {

	chk.PrintTitle("Test container01: malformed bounds are rejected")

	_, err := NewBox(Bounds{Lo: vec3.New(1, 0, 0), Hi: vec3.New(1, 1, 1)})
	if err == nil {
		tst.Fatal("expected an error for hi.X == lo.X")
	}
}

func Test_container02(tst *testing.T) {

	chk.PrintTitle("Test container02: farthest-corner radius of a centered atom")

	box, err := NewBox(Bounds{Lo: vec3.New(0, 0, 0), Hi: vec3.New(2, 2, 2)})
	if err != nil {
		tst.Fatal(err)
	}
	box.AddAtoms([]vec3.Vec3{vec3.New(1, 1, 1)})
	chk.Scalar(tst, "R", 1e-12, box.FarthestCornerRadius(0), vec3.New(1, 1, 1).Norm())
}

func Test_container03(tst *testing.T) {

	chk.PrintTitle("Test container03: TriclinicPBC holds the atoms it is given")

	lat := lattice.New(1, 1, 1, 90, 90, 90)
	pbc := NewTriclinicPBC(lat, [3]bool{true, true, true})
	pbc.AddAtoms([]vec3.Vec3{vec3.New(0.1, 0.2, 0.3)})
	chk.IntAssert(len(pbc.Pos), 1)
	chk.Scalar(tst, "pos.x", 1e-15, pbc.Pos[0].X, 0.1)
}
