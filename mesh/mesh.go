// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh stitches the independently-built per-atom polyhedra into a
// single GlobalMesh: shared vertices, faces, and edges are deduplicated,
// and each internal face records which pair of atoms it separates.
package mesh

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/neighbor"
	"github.com/IvanChernyshov/voronoi3d/plane"
	"github.com/IvanChernyshov/voronoi3d/tessellate"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// Face is a stitched face of the global mesh: a canonical vertex cycle
// (global ids), the (i, j, img) pair it separates (j == -1 for a wall or
// cap face), and its derived attributes.
type Face struct {
	Loop     []int
	I, J     int
	Img      [3]int
	Area     float64
	Centroid vec3.Vec3
	Normal   vec3.Vec3
}

// Cell is an atom's entry in the global mesh: its own volume/centroid plus
// the ids of the faces (in this mesh) bounding it.
type Cell struct {
	AtomID   int
	FaceIDs  []int
	Volume   float64
	Centroid vec3.Vec3
}

// GlobalMesh is the deduplicated union of every cell's polyhedron: unique
// vertices, unique faces (shared faces referenced, not copied, by both of
// their owning cells), unique edges, and the per-atom cells.
type GlobalMesh struct {
	V     []vec3.Vec3
	Faces []Face
	Edges [][2]int
	Cells []Cell
}

// quantKey mirrors polyhedron's vertex quantization so that a vertex
// shared by two cells, built independently, collapses to one global id.
type quantKey struct{ x, y, z int64 }

func quantize(v vec3.Vec3, q float64) quantKey {
	return quantKey{
		x: int64(math.Round(v.X / q)),
		y: int64(math.Round(v.Y / q)),
		z: int64(math.Round(v.Z / q)),
	}
}

// vertexIndex assigns global ids to vertices on first sighting, merging
// any vertex already seen under the quantization grid.
type vertexIndex struct {
	q      float64
	keyID  map[quantKey]int
	global []vec3.Vec3
}

func newVertexIndex(q float64) *vertexIndex {
	return &vertexIndex{q: q, keyID: make(map[quantKey]int)}
}

func (vx *vertexIndex) id(v vec3.Vec3) int {
	k := quantize(v, vx.q)
	if id, ok := vx.keyID[k]; ok {
		return id
	}
	id := len(vx.global)
	vx.keyID[k] = id
	vx.global = append(vx.global, v)
	return id
}

// translateLoop maps a local face loop to global vertex ids, collapsing
// consecutive duplicates and any closing duplicate that translation can
// introduce when two local vertices merge into one global vertex.
func translateLoop(loop []int, local []vec3.Vec3, vx *vertexIndex) []int {
	global := make([]int, 0, len(loop))
	for _, li := range loop {
		gid := vx.id(local[li])
		if len(global) > 0 && global[len(global)-1] == gid {
			continue
		}
		global = append(global, gid)
	}
	for len(global) > 1 && global[0] == global[len(global)-1] {
		global = global[:len(global)-1]
	}
	return global
}

// canonicalCycle rotates loop to start at its minimum id and returns
// whichever of the forward or reverse traversal is lexicographically
// smaller, so that any rotation or reversal of the same physical loop
// canonicalizes identically.
func canonicalCycle(loop []int) []int {
	fwd := rotateToMin(loop)
	rev := make([]int, len(loop))
	for i, v := range loop {
		rev[len(loop)-1-i] = v
	}
	rev = rotateToMin(rev)
	if lexLess(rev, fwd) {
		return rev
	}
	return fwd
}

func rotateToMin(loop []int) []int {
	n := len(loop)
	minAt := 0
	for i := 1; i < n; i++ {
		if loop[i] < loop[minAt] {
			minAt = i
		}
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = loop[(minAt+i)%n]
	}
	return out
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// loopKey renders a vertex-id cycle as a map key, using a separator that
// cannot appear inside a formatted int so distinct loops never collide.
func loopKey(loop []int) string {
	parts := make([]string, len(loop))
	for i, id := range loop {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "|")
}

// newellNormal computes a polygon normal by Newell's method, robust to
// mild non-planarity, used to orient a stitched face's stored normal.
func newellNormal(pts []vec3.Vec3) vec3.Vec3 {
	var n vec3.Vec3
	m := len(pts)
	for i := 0; i < m; i++ {
		a, b := pts[i], pts[(i+1)%m]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Unit()
}

func reverseInts(xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// Stitch builds the GlobalMesh from the per-atom tessellation results and
// the neighbor table that produced their bisector planes. The order of
// cells follows the order of cellResults (atom id 0..N-1).
func Stitch(cellResults []tessellate.CellResult, T *neighbor.Table, cfg *config.Config) *GlobalMesh {
	gm := &GlobalMesh{}
	vx := newVertexIndex(cfg.QuantGrid())
	faceID := make(map[string]int)

	gm.Cells = make([]Cell, len(cellResults))
	for ci, cr := range cellResults {
		gm.Cells[ci] = Cell{AtomID: cr.AtomID, Volume: cr.Volume, Centroid: cr.Centroid}
		if cr.Poly == nil {
			continue
		}
		for fi, localLoop := range cr.Poly.F {
			global := translateLoop(localLoop, cr.Poly.V, vx)
			if len(global) < 3 {
				continue
			}
			canon := canonicalCycle(global)
			key := loopKey(canon)

			if id, seen := faceID[key]; seen {
				gm.Cells[ci].FaceIDs = append(gm.Cells[ci].FaceIDs, id)
				continue
			}

			f := Face{
				Loop:     canon,
				Area:     cr.Poly.FaceArea[fi],
				Centroid: cr.Poly.FaceCentroid[fi],
			}
			tag := cr.Poly.FaceTag[fi]
			if plane.IsNeighborTag(tag) {
				f.I = cr.AtomID
				f.J = T.J[tag]
				f.Img = T.Img[tag]
				pts := make([]vec3.Vec3, len(canon))
				for k, gid := range canon {
					pts[k] = vx.global[gid]
				}
				nrm := newellNormal(pts)
				disp := T.Disp[tag]
				if nrm.Dot(disp) < 0 {
					nrm = nrm.Scale(-1)
					f.Loop = reverseInts(f.Loop)
				}
				f.Normal = nrm
			} else {
				f.I = cr.AtomID
				f.J = -1
				f.Normal = vec3.New(0, 0, 1)
			}

			id := len(gm.Faces)
			faceID[key] = id
			gm.Faces = append(gm.Faces, f)
			gm.Cells[ci].FaceIDs = append(gm.Cells[ci].FaceIDs, id)
		}
	}

	gm.V = vx.global
	gm.Edges = buildEdges(gm.Faces)
	return gm
}

// buildEdges emits the unordered (min, max) pairs of consecutive loop
// vertices across every face, deduplicated.
func buildEdges(faces []Face) [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, f := range faces {
		n := len(f.Loop)
		for i := 0; i < n; i++ {
			a, b := f.Loop[i], f.Loop[(i+1)%n]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}
