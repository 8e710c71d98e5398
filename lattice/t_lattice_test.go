// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/vec3"
)

func Test_lattice01(tst *testing.T) {

	chk.PrintTitle("Test lattice01: orthorhombic 2x3x4, to_cart/to_frac round trip")

	lat := New(2, 3, 4, 90, 90, 90)

	f := vec3.New(0.25, 0.5, 0.75)
	r := lat.ToCart(f)
	chk.Scalar(tst, "r.x", 1e-13, r.X, 0.5)
	chk.Scalar(tst, "r.y", 1e-13, r.Y, 1.5)
	chk.Scalar(tst, "r.z", 1e-13, r.Z, 3.0)

	f2 := lat.ToFrac(r)
	chk.Scalar(tst, "to_frac(to_cart(f)).x", 1e-12, f2.X, f.X)
	chk.Scalar(tst, "to_frac(to_cart(f)).y", 1e-12, f2.Y, f.Y)
	chk.Scalar(tst, "to_frac(to_cart(f)).z", 1e-12, f2.Z, f.Z)
}

func Test_lattice02(tst *testing.T) {

	chk.PrintTitle("Test lattice02: minimum-image displacement is minimal under the convention")

	lat := New(2, 2, 2, 90, 90, 90)
	periodic := [3]bool{true, true, true}

	ri := vec3.New(0.1, 0.1, 0.1)
	rj := vec3.New(1.9, 0.1, 0.1)

	disp, img := lat.MinImageDisp(ri, rj, periodic)
	chk.Scalar(tst, "|disp|", 1e-12, disp.Norm(), 0.2)
	if img[0] != -1 {
		tst.Fatalf("expected image[0]==-1, got %d", img[0])
	}

	// minimality: try every neighboring integer triple and check none beats it
	best := disp.Norm2()
	rjCart := rj
	for na := -2; na <= 2; na++ {
		for nb := -2; nb <= 2; nb++ {
			for nc := -2; nc <= 2; nc++ {
				shift := lat.Mat.MulVec(vec3.New(float64(na), float64(nb), float64(nc)))
				cand := rjCart.Add(shift).Sub(ri)
				if cand.Norm2() < best-1e-9 {
					tst.Fatalf("found shorter displacement with image (%d,%d,%d): %g < %g", na, nb, nc, cand.Norm2(), best)
				}
			}
		}
	}
}

func Test_lattice03(tst *testing.T) {

	chk.PrintTitle("Test lattice03: wrap_frac only touches periodic axes")

	lat := New(1, 1, 1, 90, 90, 90)
	f := vec3.New(1.5, -0.25, 2.75)
	w := lat.WrapFrac(f, [3]bool{true, false, true})
	chk.Scalar(tst, "w.x", 1e-15, w.X, 0.5)
	chk.Scalar(tst, "w.y (not periodic, unchanged)", 1e-15, w.Y, -0.25)
	chk.Scalar(tst, "w.z", 1e-15, w.Z, 0.75)
}
