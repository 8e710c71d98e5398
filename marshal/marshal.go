// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package marshal flattens CellResult and GlobalMesh values into plain
// parallel-array structs suitable for copying into a numerical array
// format at the edge of the engine, mirroring the field layout the
// original project's language binding exposed. It holds no references
// back into the engine's own buffers.
package marshal

import (
	"github.com/IvanChernyshov/voronoi3d/mesh"
	"github.com/IvanChernyshov/voronoi3d/tessellate"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// CellArrays is the flattened form of a single CellResult.
type CellArrays struct {
	AtomID   int
	Volume   float64
	Centroid [3]float64
	Vertices [][3]float64
	Faces    [][]int
}

func flatten(v vec3.Vec3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func flattenAll(vs []vec3.Vec3) [][3]float64 {
	out := make([][3]float64, len(vs))
	for i, v := range vs {
		out[i] = flatten(v)
	}
	return out
}

// Cell copies one CellResult into its flattened form.
func Cell(cr tessellate.CellResult) CellArrays {
	out := CellArrays{AtomID: cr.AtomID, Volume: cr.Volume, Centroid: flatten(cr.Centroid)}
	if cr.Poly == nil {
		return out
	}
	out.Vertices = flattenAll(cr.Poly.V)
	out.Faces = make([][]int, len(cr.Poly.F))
	for f, loop := range cr.Poly.F {
		out.Faces[f] = append([]int{}, loop...)
	}
	return out
}

// Cells flattens an ordered sequence of CellResult.
func Cells(crs []tessellate.CellResult) []CellArrays {
	out := make([]CellArrays, len(crs))
	for i, cr := range crs {
		out[i] = Cell(cr)
	}
	return out
}

// FaceArrays is the flattened, struct-of-arrays form of a GlobalMesh's
// faces: index f across every slice describes the same face.
type FaceArrays struct {
	Loops    [][]int
	I, J     []int
	Img      [][3]int
	Area     []float64
	Centroid [][3]float64
	NormalIJ [][3]float64
}

// CellRefArrays is the flattened, struct-of-arrays form of a GlobalMesh's
// cells: index c across every slice describes the same cell.
type CellRefArrays struct {
	AtomID   []int
	Volume   []float64
	Centroid [][3]float64
	FaceIDs  [][]int
}

// MeshArrays is the flattened form of a GlobalMesh.
type MeshArrays struct {
	Vertices [][3]float64
	Edges    [][2]int
	Faces    FaceArrays
	Cells    CellRefArrays
}

// Mesh flattens a GlobalMesh into parallel-array form.
func Mesh(gm *mesh.GlobalMesh) MeshArrays {
	out := MeshArrays{
		Vertices: flattenAll(gm.V),
		Edges:    append([][2]int{}, gm.Edges...),
	}

	out.Faces.Loops = make([][]int, len(gm.Faces))
	out.Faces.I = make([]int, len(gm.Faces))
	out.Faces.J = make([]int, len(gm.Faces))
	out.Faces.Img = make([][3]int, len(gm.Faces))
	out.Faces.Area = make([]float64, len(gm.Faces))
	out.Faces.Centroid = make([][3]float64, len(gm.Faces))
	out.Faces.NormalIJ = make([][3]float64, len(gm.Faces))
	for f, face := range gm.Faces {
		out.Faces.Loops[f] = append([]int{}, face.Loop...)
		out.Faces.I[f] = face.I
		out.Faces.J[f] = face.J
		out.Faces.Img[f] = face.Img
		out.Faces.Area[f] = face.Area
		out.Faces.Centroid[f] = flatten(face.Centroid)
		out.Faces.NormalIJ[f] = flatten(face.Normal)
	}

	out.Cells.AtomID = make([]int, len(gm.Cells))
	out.Cells.Volume = make([]float64, len(gm.Cells))
	out.Cells.Centroid = make([][3]float64, len(gm.Cells))
	out.Cells.FaceIDs = make([][]int, len(gm.Cells))
	for c, cell := range gm.Cells {
		out.Cells.AtomID[c] = cell.AtomID
		out.Cells.Volume[c] = cell.Volume
		out.Cells.Centroid[c] = flatten(cell.Centroid)
		out.Cells.FaceIDs[c] = append([]int{}, cell.FaceIDs...)
	}

	return out
}
