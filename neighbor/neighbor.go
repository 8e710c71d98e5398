// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor produces the table of oriented (i, j, image) pairs that
// can influence a given cell, bounding the search with a safe reach
// radius derived from the container geometry and the configured minimum
// bisector fraction.
package neighbor

import (
	"math"

	"github.com/cpmech/gosl/utl"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/container"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// Table holds the neighbor rows as equal-length parallel arrays, one row
// per oriented (i, j, image) pair.
type Table struct {
	I, J []int
	Img  [][3]int
	Disp []vec3.Vec3
	R2   []float64
}

// Size returns the number of rows.
func (t *Table) Size() int { return len(t.I) }

func (t *Table) push(i, j int, img [3]int, disp vec3.Vec3, r2 float64) {
	t.I = append(t.I, i)
	t.J = append(t.J, j)
	t.Img = append(t.Img, img)
	t.Disp = append(t.Disp, disp)
	t.R2 = append(t.R2, r2)
}

// RowsForAtom returns the row indices with I[row] == i, in table order.
func (t *Table) RowsForAtom(i int) []int {
	var rows []int
	for r, ii := range t.I {
		if ii == i {
			rows = append(rows, r)
		}
	}
	return rows
}

// PlanBox enumerates neighbor rows for a box container. For each atom i,
// the search radius is set so that a bisector at the configured minimum
// fraction min_M can still reach as far as the atom's farthest-corner
// distance R_i: rsearch = R_i/min_M + neighbor_skin.
func PlanBox(box *container.Box, cfg *config.Config) *Table {
	T := &Table{}
	n := len(box.Pos)
	minM := utl.Max(cfg.MinM, 1e-12)
	for i := 0; i < n; i++ {
		R := box.FarthestCornerRadius(i)
		rsearch := R/minM + cfg.NeighborSkin
		r2max := rsearch * rsearch
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := box.Pos[j].Sub(box.Pos[i])
			d2 := d.Norm2()
			if d2 <= r2max {
				T.push(i, j, [3]int{0, 0, 0}, d, d2)
			}
		}
	}
	return T
}

// PlanTriclinic enumerates neighbor rows for a triclinic periodic cell.
// The search radius is derived from an estimate of the nearest-neighbor
// distance d_nn scaled by cfg.ReachFactor, then converted to a reach
// radius the same way PlanBox does. Periodic image offsets are bounded per
// axis by ⌈rsearch/|a_k|⌉ and suppressed entirely on non-periodic axes.
func PlanTriclinic(pbc *container.TriclinicPBC, cfg *config.Config) *Table {
	T := &Table{}
	n := len(pbc.Pos)
	if n == 0 {
		return T
	}

	dnn := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, _ := pbc.Lat.MinImageDisp(pbc.Pos[i], pbc.Pos[j], pbc.Periodic)
			dnn = math.Min(dnn, d.Norm())
		}
	}
	if math.IsInf(dnn, 1) || dnn == 0 {
		dnn = 1.0
	}

	minM := utl.Max(cfg.MinM, 1e-12)
	R := cfg.ReachFactor * dnn
	rsearch := R/minM + cfg.NeighborSkin

	naMax := axisImageBound(rsearch, pbc.Lat.Mat.C0)
	nbMax := axisImageBound(rsearch, pbc.Lat.Mat.C1)
	ncMax := axisImageBound(rsearch, pbc.Lat.Mat.C2)

	r2max := rsearch * rsearch
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for na := axisRange(pbc.Periodic[0], naMax); na.lo <= na.hi; na.lo++ {
				for nb := axisRange(pbc.Periodic[1], nbMax); nb.lo <= nb.hi; nb.lo++ {
					for nc := axisRange(pbc.Periodic[2], ncMax); nc.lo <= nc.hi; nc.lo++ {
						if i == j && na.lo == 0 && nb.lo == 0 && nc.lo == 0 {
							continue
						}
						img := vec3.New(float64(na.lo), float64(nb.lo), float64(nc.lo))
						shift := pbc.Lat.Mat.MulVec(img)
						d := pbc.Pos[j].Add(shift).Sub(pbc.Pos[i])
						d2 := d.Norm2()
						if d2 <= r2max && d2 > 0 {
							T.push(i, j, [3]int{na.lo, nb.lo, nc.lo}, d, d2)
						}
					}
				}
			}
		}
	}
	return T
}

func axisImageBound(rsearch float64, axis vec3.Vec3) int {
	L := axis.Norm()
	if L < 1e-12 {
		L = 1e-12
	}
	return int(math.Ceil(rsearch / L))
}

type intRange struct{ lo, hi int }

func axisRange(periodic bool, bound int) intRange {
	if !periodic {
		return intRange{0, 0}
	}
	return intRange{-bound, bound}
}
