// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lattice implements the triclinic periodic cell: construction of
// the cartesian basis from (a,b,c,α,β,γ), fractional↔cartesian conversion,
// fractional wrapping, and minimum-image displacement.
package lattice

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// minInvDet is the minimum |det(A)| gosl/la.MatInv accepts before refusing
// to invert; a lattice built from degenerate lengths/angles below this is a
// programmer error, not a recoverable condition.
const minInvDet = 1e-14

// Lattice holds the triclinic cell parameters together with the cartesian
// basis matrix Mat (A; columns are the lattice vectors) and its inverse
// Inv such that frac = Inv·cart.
type Lattice struct {
	A, B, C            float64 // lengths
	Alpha, Beta, Gamma float64 // angles, degrees
	Mat                vec3.Mat3
	Inv                vec3.Mat3
}

// New builds the triclinic basis in the canonical orientation: a along x;
// b in the xy-plane; c completing the cell from the angle constraints.
// It panics if the resulting basis is degenerate (det(A) too close to
// zero) since malformed cell parameters are a programmer error the
// caller controls directly, not a recoverable runtime condition.
func New(a, b, c, alphaDeg, betaDeg, gammaDeg float64) *Lattice {
	const deg = math.Pi / 180.0
	ca, cb, cg := math.Cos(alphaDeg*deg), math.Cos(betaDeg*deg), math.Cos(gammaDeg*deg)
	sg := math.Sin(gammaDeg * deg)

	a1 := vec3.New(a, 0, 0)
	a2 := vec3.New(b*cg, b*sg, 0)
	cx := c * cb
	cy := c * (ca - cb*cg) / sg
	cz := math.Sqrt(math.Max(0, c*c-cx*cx-cy*cy))
	a3 := vec3.New(cx, cy, cz)

	A := vec3.NewMat3(a1, a2, a3)

	dense := A.Dense()
	rows := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = dense[i][j]
		}
	}
	inv := la.MatAlloc(3, 3)
	det, err := la.MatInv(inv, rows, minInvDet)
	if err != nil {
		chk.Panic("lattice: cannot invert basis matrix (a=%g b=%g c=%g α=%g β=%g γ=%g): %v", a, b, c, alphaDeg, betaDeg, gammaDeg, err)
	}
	if det <= 0 {
		chk.Panic("lattice: basis matrix is not right-handed (det=%g)", det)
	}
	var invRows [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			invRows[i][j] = inv[i][j]
		}
	}

	return &Lattice{
		A: a, B: b, C: c,
		Alpha: alphaDeg, Beta: betaDeg, Gamma: gammaDeg,
		Mat: A,
		Inv: vec3.MatFromRows(invRows),
	}
}

// ToCart converts fractional coordinates to cartesian: cart = A·frac.
func (l *Lattice) ToCart(f vec3.Vec3) vec3.Vec3 { return l.Mat.MulVec(f) }

// ToFrac converts cartesian coordinates to fractional: frac = Ainv·cart.
func (l *Lattice) ToFrac(r vec3.Vec3) vec3.Vec3 { return l.Inv.MulVec(r) }

// WrapFrac subtracts floor() componentwise on the periodic axes, wrapping
// a fractional coordinate back into [0,1) on those axes.
func (l *Lattice) WrapFrac(f vec3.Vec3, periodic [3]bool) vec3.Vec3 {
	w := f
	if periodic[0] {
		w.X -= math.Floor(w.X)
	}
	if periodic[1] {
		w.Y -= math.Floor(w.Y)
	}
	if periodic[2] {
		w.Z -= math.Floor(w.Z)
	}
	return w
}

// MinImageDisp returns the cartesian displacement from ri to rj (modulo the
// lattice on periodic axes) with minimal norm, together with the integer
// image triple (na,nb,nc) such that rj_image = rj + A·(na,nb,nc).
func (l *Lattice) MinImageDisp(ri, rj vec3.Vec3, periodic [3]bool) (disp vec3.Vec3, img [3]int) {
	fi, fj := l.ToFrac(ri), l.ToFrac(rj)
	df := fj.Sub(fi)
	d := [3]float64{df.X, df.Y, df.Z}
	for k := 0; k < 3; k++ {
		if periodic[k] {
			s := math.Round(d[k])
			d[k] -= s
			img[k] = -int(s)
		}
	}
	disp = l.ToCart(vec3.New(d[0], d[1], d[2]))
	return disp, img
}
