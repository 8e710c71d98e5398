// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec3 implements the 3-vector and 3x3 matrix algebra shared by
// every geometric component of the tessellation engine.
package vec3

import "math"

// Vec3 is an ordered triple in ℝ³ with the usual inner-product operations.
type Vec3 struct {
	X, Y, Z float64
}

// New builds a Vec3 from its three components.
func New(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Add returns o+p.
func (o Vec3) Add(p Vec3) Vec3 { return Vec3{o.X + p.X, o.Y + p.Y, o.Z + p.Z} }

// Sub returns o-p.
func (o Vec3) Sub(p Vec3) Vec3 { return Vec3{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Scale returns o*s.
func (o Vec3) Scale(s float64) Vec3 { return Vec3{o.X * s, o.Y * s, o.Z * s} }

// Dot returns the inner product o·p.
func (o Vec3) Dot(p Vec3) float64 { return o.X*p.X + o.Y*p.Y + o.Z*p.Z }

// Cross returns o×p.
func (o Vec3) Cross(p Vec3) Vec3 {
	return Vec3{
		o.Y*p.Z - o.Z*p.Y,
		o.Z*p.X - o.X*p.Z,
		o.X*p.Y - o.Y*p.X,
	}
}

// Norm2 returns the squared Euclidean length.
func (o Vec3) Norm2() float64 { return o.Dot(o) }

// Norm returns the Euclidean length.
func (o Vec3) Norm() float64 { return math.Sqrt(o.Norm2()) }

// Unit returns o normalized to unit length, or the zero vector if o has
// zero length.
func (o Vec3) Unit() Vec3 {
	L := o.Norm()
	if L == 0 {
		return Vec3{}
	}
	return o.Scale(1.0 / L)
}

// At returns the i-th component (0:x, 1:y, 2:z).
func (o Vec3) At(i int) float64 {
	switch i {
	case 0:
		return o.X
	case 1:
		return o.Y
	default:
		return o.Z
	}
}

// Slice returns the components as a length-3 slice, the shape consumed by
// gosl/la's dense-matrix routines.
func (o Vec3) Slice() []float64 { return []float64{o.X, o.Y, o.Z} }

// FromSlice builds a Vec3 from a length-3 slice.
func FromSlice(s []float64) Vec3 { return Vec3{s[0], s[1], s[2]} }

// Mat3 is a 3x3 matrix stored by its three column vectors, matching the
// convention that its columns are lattice (or basis) vectors.
type Mat3 struct {
	C0, C1, C2 Vec3
}

// NewMat3 builds a Mat3 from its three columns.
func NewMat3(c0, c1, c2 Vec3) Mat3 { return Mat3{c0, c1, c2} }

// MulVec returns A·f, treating f as a column vector.
func (a Mat3) MulVec(f Vec3) Vec3 {
	return Vec3{
		a.C0.X*f.X + a.C1.X*f.Y + a.C2.X*f.Z,
		a.C0.Y*f.X + a.C1.Y*f.Y + a.C2.Y*f.Z,
		a.C0.Z*f.X + a.C1.Z*f.Y + a.C2.Z*f.Z,
	}
}

// Dense returns the matrix as a row-major [3][3]float64, the layout gosl/la
// dense routines expect (row i, column j).
func (a Mat3) Dense() [3][3]float64 {
	return [3][3]float64{
		{a.C0.X, a.C1.X, a.C2.X},
		{a.C0.Y, a.C1.Y, a.C2.Y},
		{a.C0.Z, a.C1.Z, a.C2.Z},
	}
}

// MatFromRows builds a Mat3 from a row-major [3][3]float64, the inverse of
// Dense.
func MatFromRows(m [3][3]float64) Mat3 {
	return Mat3{
		C0: Vec3{m[0][0], m[1][0], m[2][0]},
		C1: Vec3{m[0][1], m[1][1], m[2][1]},
		C2: Vec3{m[0][2], m[1][2], m[2][2]},
	}
}
