// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec3

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vec01(tst *testing.T) {

	chk.PrintTitle("Test vec01: dot, cross, norm")

	a := New(1, 0, 0)
	b := New(0, 1, 0)

	chk.Scalar(tst, "a·b", 1e-17, a.Dot(b), 0)
	chk.Scalar(tst, "a·a", 1e-17, a.Dot(a), 1)

	c := a.Cross(b)
	chk.Scalar(tst, "c.x", 1e-17, c.X, 0)
	chk.Scalar(tst, "c.y", 1e-17, c.Y, 0)
	chk.Scalar(tst, "c.z", 1e-17, c.Z, 1)

	chk.Scalar(tst, "|a|", 1e-17, a.Norm(), 1)
}

func Test_vec02(tst *testing.T) {

	chk.PrintTitle("Test vec02: Mat3 * Vec3 round trip via Dense/MatFromRows")

	A := NewMat3(New(2, 0, 0), New(0, 3, 0), New(0, 0, 4))
	B := MatFromRows(A.Dense())

	f := New(1, 1, 1)
	r1 := A.MulVec(f)
	r2 := B.MulVec(f)

	chk.Scalar(tst, "r1.x==r2.x", 1e-17, r1.X, r2.X)
	chk.Scalar(tst, "r1.y==r2.y", 1e-17, r1.Y, r2.Y)
	chk.Scalar(tst, "r1.z==r2.z", 1e-17, r1.Z, r2.Z)
	chk.Scalar(tst, "r1", 1e-17, r1.X, 2)
}

func Test_vec03(tst *testing.T) {

	chk.PrintTitle("Test vec03: Unit of zero vector")

	z := Vec3{}
	u := z.Unit()
	chk.Scalar(tst, "unit(0).x", 1e-17, u.X, 0)
	chk.Scalar(tst, "unit(0).y", 1e-17, u.Y, 0)
	chk.Scalar(tst, "unit(0).z", 1e-17, u.Z, 0)
}
