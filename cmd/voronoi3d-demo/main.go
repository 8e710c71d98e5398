// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command voronoi3d-demo runs a small built-in scenario through the full
// pipeline — plan neighbors, tessellate, stitch, flatten — and prints a
// summary.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/container"
	"github.com/IvanChernyshov/voronoi3d/marshal"
	"github.com/IvanChernyshov/voronoi3d/mesh"
	"github.com/IvanChernyshov/voronoi3d/neighbor"
	"github.com/IvanChernyshov/voronoi3d/tessellate"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nvoronoi3d-demo -- generalized 3D tessellation\n\n")
	io.Pf("unit-cube container, four atoms, per-pair fractional bisectors\n\n")

	box, err := container.NewBox(container.Bounds{Lo: vec3.New(0, 0, 0), Hi: vec3.New(1, 1, 1)})
	if err != nil {
		chk.Panic("cannot build container: %v", err)
	}
	box.AddAtoms([]vec3.Vec3{
		vec3.New(0.2, 0.2, 0.2),
		vec3.New(0.8, 0.2, 0.2),
		vec3.New(0.2, 0.8, 0.8),
		vec3.New(0.8, 0.8, 0.8),
	})

	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		chk.Panic("invalid config: %v", err)
	}

	T := neighbor.PlanBox(box, cfg)
	io.Pf("neighbor table: %d rows\n", T.Size())

	M := make([]float64, T.Size())
	for r := range M {
		M[r] = 0.5
	}
	cells, err := tessellate.PairsBox(box, T, M, cfg)
	if err != nil {
		chk.Panic("tessellation failed: %v", err)
	}

	var total float64
	for _, c := range cells {
		io.Pf("  atom %d: volume=%-10.6f centroid=(%.4f, %.4f, %.4f) faces=%d\n",
			c.AtomID, c.Volume, c.Centroid.X, c.Centroid.Y, c.Centroid.Z, len(c.Poly.F))
		total += c.Volume
	}
	io.Pf("\nsum of cell volumes: %.6f (container volume: 1.000000)\n", total)

	gm := mesh.Stitch(cells, T, cfg)
	io.Pf("global mesh: %d vertices, %d faces, %d edges\n", len(gm.V), len(gm.Faces), len(gm.Edges))

	ma := marshal.Mesh(gm)
	io.PfYel("\nflattened mesh ready for export: %d face loops, %d cell entries\n", len(ma.Faces.Loops), len(ma.Cells.AtomID))
}
