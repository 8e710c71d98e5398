// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capdirs generates near-uniform sets of unit vectors on the unit
// sphere used to bound surface-atom cells with spherical caps.
package capdirs

import (
	"math"

	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// Directions returns a direction set sized by order:
//
//	order <= 6:  6-point octahedron
//	order <= 14: octahedron + 8 cube-corner directions
//	order <= 26: octahedron + corners + 12 edge-midpoint directions
//	order > 26:  Fibonacci sphere with order points
func Directions(order int) []vec3.Vec3 {
	switch {
	case order <= 6:
		return octahedron()
	case order <= 14:
		return append(octahedron(), corners()...)
	case order <= 26:
		dirs := octahedron()
		dirs = append(dirs, edgeMidpoints()...)
		dirs = append(dirs, corners()...)
		return dirs
	default:
		return fibonacciSphere(order)
	}
}

func octahedron() []vec3.Vec3 {
	return []vec3.Vec3{
		vec3.New(1, 0, 0), vec3.New(-1, 0, 0),
		vec3.New(0, 1, 0), vec3.New(0, -1, 0),
		vec3.New(0, 0, 1), vec3.New(0, 0, -1),
	}
}

func corners() []vec3.Vec3 {
	s := 1.0 / math.Sqrt(3.0)
	sign := [2]float64{-1, 1}
	var dirs []vec3.Vec3
	for _, a := range sign {
		for _, b := range sign {
			for _, c := range sign {
				dirs = append(dirs, vec3.New(s*a, s*b, s*c))
			}
		}
	}
	return dirs
}

func edgeMidpoints() []vec3.Vec3 {
	s2 := 1.0 / math.Sqrt(2.0)
	sign := [2]float64{-1, 1}
	var dirs []vec3.Vec3
	for _, a := range sign {
		for _, b := range sign {
			dirs = append(dirs, vec3.New(s2*a, s2*b, 0))
			dirs = append(dirs, vec3.New(s2*a, 0, s2*b))
			dirs = append(dirs, vec3.New(0, s2*a, s2*b))
		}
	}
	return dirs
}

// fibonacciSphere returns n near-uniform unit vectors via the golden-angle
// spiral construction, used once the fixed octahedral families run out.
func fibonacciSphere(n int) []vec3.Vec3 {
	dirs := make([]vec3.Vec3, n)
	phi := (1.0 + math.Sqrt(5.0)) * 0.5
	ga := 2.0 * math.Pi * (1.0 - 1.0/phi)
	for k := 0; k < n; k++ {
		z := 1.0 - 2.0*((float64(k)+0.5)/float64(n))
		r := math.Sqrt(math.Max(0, 1.0-z*z))
		theta := ga * float64(k)
		x := r * math.Cos(theta)
		y := r * math.Sin(theta)
		dirs[k] = vec3.New(x, y, z)
	}
	return dirs
}
