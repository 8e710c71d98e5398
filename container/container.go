// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package container holds the two point-set containers the tessellation
// engine can operate on: an axis-aligned box, and a triclinic periodic
// cell with a per-axis periodicity mask.
package container

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/lattice"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// Bounds is an axis-aligned box with hi > lo componentwise.
type Bounds struct {
	Lo, Hi vec3.Vec3
}

// Box is an axis-aligned container: bounds plus an ordered sequence of
// atom positions.
type Box struct {
	Bounds Bounds
	Pos    []vec3.Vec3
}

// NewBox validates the bounds and returns an empty Box; bounds with
// max ≤ min anywhere are a caller error, reported immediately.
func NewBox(bounds Bounds) (*Box, error) {
	if bounds.Hi.X <= bounds.Lo.X || bounds.Hi.Y <= bounds.Lo.Y || bounds.Hi.Z <= bounds.Lo.Z {
		return nil, chk.Err("container: box bounds must satisfy hi > lo componentwise, got lo=%v hi=%v", bounds.Lo, bounds.Hi)
	}
	return &Box{Bounds: bounds}, nil
}

// AddAtoms appends atom positions in order.
func (b *Box) AddAtoms(xyz []vec3.Vec3) { b.Pos = append(b.Pos, xyz...) }

// FarthestCornerRadius returns the maximum distance from atom i to any of
// the eight box corners, the safe reach bound the neighbor planner uses.
func (b *Box) FarthestCornerRadius(i int) float64 {
	r := b.Pos[i]
	R := 0.0
	for cx := 0; cx < 2; cx++ {
		for cy := 0; cy < 2; cy++ {
			for cz := 0; cz < 2; cz++ {
				c := vec3.New(pick(cx, b.Bounds.Lo.X, b.Bounds.Hi.X),
					pick(cy, b.Bounds.Lo.Y, b.Bounds.Hi.Y),
					pick(cz, b.Bounds.Lo.Z, b.Bounds.Hi.Z))
				d := c.Sub(r).Norm()
				if d > R {
					R = d
				}
			}
		}
	}
	return R
}

func pick(flag int, lo, hi float64) float64 {
	if flag != 0 {
		return hi
	}
	return lo
}

// TriclinicPBC is a triclinic periodic cell: a Lattice, a per-axis
// periodicity mask, and an ordered sequence of atom positions. Positions
// are not required to lie in the primitive cell.
type TriclinicPBC struct {
	Lat      *lattice.Lattice
	Periodic [3]bool
	Pos      []vec3.Vec3
}

// NewTriclinicPBC builds a TriclinicPBC from a lattice and periodicity
// mask.
func NewTriclinicPBC(lat *lattice.Lattice, periodic [3]bool) *TriclinicPBC {
	return &TriclinicPBC{Lat: lat, Periodic: periodic}
}

// AddAtoms appends atom positions in order.
func (p *TriclinicPBC) AddAtoms(xyz []vec3.Vec3) { p.Pos = append(p.Pos, xyz...) }
