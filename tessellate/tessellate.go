// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tessellate assembles, per atom, the plane list (box walls or
// caps, plus neighbor-derived bisectors) and invokes the half-space
// intersector to produce each atom's convex cell.
package tessellate

import (
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/capdirs"
	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/container"
	"github.com/IvanChernyshov/voronoi3d/neighbor"
	"github.com/IvanChernyshov/voronoi3d/plane"
	"github.com/IvanChernyshov/voronoi3d/polyhedron"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// CellResult is the outcome of tessellating one atom: its id, its owned
// polyhedron, and the polyhedron's volume and centroid.
type CellResult struct {
	AtomID   int
	Poly     *polyhedron.Polyhedron
	Volume   float64
	Centroid vec3.Vec3
}

// boxWallPlanes returns the six axis-aligned wall half-spaces of a box
// container, tagged with the wall sentinels of package plane.
func boxWallPlanes(b *container.Box) []plane.TaggedPlane {
	lo, hi := b.Bounds.Lo, b.Bounds.Hi
	return []plane.TaggedPlane{
		{P: plane.Plane{N: vec3.New(-1, 0, 0), D: -lo.X}, Tag: plane.TagWallXLo},
		{P: plane.Plane{N: vec3.New(1, 0, 0), D: hi.X}, Tag: plane.TagWallXHi},
		{P: plane.Plane{N: vec3.New(0, -1, 0), D: -lo.Y}, Tag: plane.TagWallYLo},
		{P: plane.Plane{N: vec3.New(0, 1, 0), D: hi.Y}, Tag: plane.TagWallYHi},
		{P: plane.Plane{N: vec3.New(0, 0, -1), D: -lo.Z}, Tag: plane.TagWallZLo},
		{P: plane.Plane{N: vec3.New(0, 0, 1), D: hi.Z}, Tag: plane.TagWallZHi},
	}
}

// capPlanes returns the half-spaces approximating a ball of radius R around
// center, one per direction in dirs, tagged with the cap sentinel base.
func capPlanes(center vec3.Vec3, radius float64, dirs []vec3.Vec3) []plane.TaggedPlane {
	planes := make([]plane.TaggedPlane, len(dirs))
	for k, n := range dirs {
		p := center.Add(n.Scale(radius))
		planes[k] = plane.TaggedPlane{P: plane.FromPointNormal(p, n), Tag: plane.TagCapBase - k}
	}
	return planes
}

// neighborPlanes returns the bisector half-spaces for the given neighbor
// rows, seeded at center and clamped per cfg.MinM.
func neighborPlanes(center vec3.Vec3, rows []int, T *neighbor.Table, M []float64, cfg *config.Config) []plane.TaggedPlane {
	var planes []plane.TaggedPlane
	for _, r := range rows {
		d := T.Disp[r]
		L := d.Norm()
		if L == 0 {
			continue
		}
		n := d.Scale(1.0 / L)
		m := clampM(M[r], cfg)
		p := center.Add(d.Scale(m))
		planes = append(planes, plane.TaggedPlane{P: plane.FromPointNormal(p, n), Tag: r})
	}
	return planes
}

func clampM(m float64, cfg *config.Config) float64 {
	lo, hi := cfg.MinM, 1.0-cfg.MinM
	if m < lo {
		return lo
	}
	if m > hi {
		return hi
	}
	return m
}

func validateM(T *neighbor.Table, M []float64) error {
	if len(M) != T.Size() {
		return chk.Err("tessellate: M has length %d but the neighbor table has %d rows", len(M), T.Size())
	}
	return nil
}

func buildCell(atomID int, center vec3.Vec3, seed []plane.TaggedPlane, rows []int, T *neighbor.Table, M []float64, cfg *config.Config) CellResult {
	planes := append(append([]plane.TaggedPlane{}, seed...), neighborPlanes(center, rows, T, M, cfg)...)
	poly := polyhedron.HalfspaceIntersection(planes, cfg)
	vol, cen := polyhedron.VolumeCentroid(poly)
	return CellResult{AtomID: atomID, Poly: poly, Volume: vol, Centroid: cen}
}

// forEachAtom runs fn(i) for every atom index, optionally in parallel;
// cells are built independently of one another, so this is safe since
// each call only reads shared container/table state and writes to its
// own out[i] slot.
func forEachAtom(n int, parallel bool, fn func(i int)) {
	if !parallel {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			fn(i)
		}(i)
	}
	wg.Wait()
}

// PairsBox tessellates a box container: interior cells are bounded by the
// six box walls plus their neighbor bisectors.
func PairsBox(box *container.Box, T *neighbor.Table, M []float64, cfg *config.Config) ([]CellResult, error) {
	if err := validateM(T, M); err != nil {
		return nil, err
	}
	n := len(box.Pos)
	out := make([]CellResult, n)
	walls := boxWallPlanes(box)
	forEachAtom(n, true, func(i int) {
		rows := T.RowsForAtom(i)
		out[i] = buildCell(i, box.Pos[i], walls, rows, T, M, cfg)
	})
	return out, nil
}

// PairsTriclinic tessellates a triclinic PBC container: cells are bounded
// entirely by neighbor bisectors (no walls, no caps).
func PairsTriclinic(pbc *container.TriclinicPBC, T *neighbor.Table, M []float64, cfg *config.Config) ([]CellResult, error) {
	if err := validateM(T, M); err != nil {
		return nil, err
	}
	n := len(pbc.Pos)
	out := make([]CellResult, n)
	forEachAtom(n, true, func(i int) {
		rows := T.RowsForAtom(i)
		out[i] = buildCell(i, pbc.Pos[i], nil, rows, T, M, cfg)
	})
	return out, nil
}

// isSurfaceAtomBox decides, for box containers, whether atom i is a
// surface atom per the CapOptions policy (explicit list, else
// auto-detection by wall-distance margin).
func isSurfaceAtomBox(box *container.Box, i int, opt *config.CapOptions) bool {
	return opt.IsSurfaceAtom(i, func(margin float64) bool {
		r := box.Pos[i]
		lo, hi := box.Bounds.Lo, box.Bounds.Hi
		return (r.X-lo.X) < margin || (hi.X-r.X) < margin ||
			(r.Y-lo.Y) < margin || (hi.Y-r.Y) < margin ||
			(r.Z-lo.Z) < margin || (hi.Z-r.Z) < margin
	})
}

// PairsBoxWithCaps tessellates a box container, replacing box walls with
// spherical caps for atoms flagged (explicitly or via auto-detection) as
// surface atoms; caps replace walls, they never augment them.
func PairsBoxWithCaps(box *container.Box, T *neighbor.Table, M []float64, opt *config.CapOptions, cfg *config.Config) ([]CellResult, error) {
	if err := validateM(T, M); err != nil {
		return nil, err
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	n := len(box.Pos)
	out := make([]CellResult, n)
	walls := boxWallPlanes(box)
	dirs := capdirs.Directions(opt.LebedevOrder)
	forEachAtom(n, true, func(i int) {
		rows := T.RowsForAtom(i)
		var seed []plane.TaggedPlane
		if isSurfaceAtomBox(box, i, opt) {
			seed = capPlanes(box.Pos[i], opt.Radius, dirs)
		} else {
			seed = walls
		}
		out[i] = buildCell(i, box.Pos[i], seed, rows, T, M, cfg)
	})
	return out, nil
}
