// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plane implements the oriented half-space primitive {x : n·x ≤ d}
// that both the box-wall/cap seeding and the neighbor-bisector seeding of
// a cell reduce to.
package plane

import "github.com/IvanChernyshov/voronoi3d/vec3"

// Plane is the oriented half-space {x : n·x ≤ d} with |n| = 1.
type Plane struct {
	N vec3.Vec3
	D float64
}

// SignedDistance returns n·x − d: negative/zero means x is inside the
// half-space, positive means outside.
func SignedDistance(p Plane, x vec3.Vec3) float64 { return p.N.Dot(x) - p.D }

// FromPointNormal builds the plane through point p with (not necessarily
// unit) normal n, normalizing n and falling back to +x if n has zero
// length.
func FromPointNormal(p, n vec3.Vec3) Plane {
	nh := n.Unit()
	if nh == (vec3.Vec3{}) {
		nh = vec3.New(1, 0, 0)
	}
	return Plane{N: nh, D: nh.Dot(p)}
}

// TaggedPlane is a Plane carrying an integer identifier encoding
// provenance: a non-negative tag is a row index into a NeighborTable; a
// negative tag is a sentinel for a box wall or cap direction.
type TaggedPlane struct {
	P   Plane
	Tag int
}

// Sentinel tags for non-neighbor planes: walls occupy -1000..-1005
// (±x,±y,±z in that order), caps occupy -3000-k for the k-th
// direction-set vector.
const (
	TagWallXLo = -1000
	TagWallXHi = -1001
	TagWallYLo = -1002
	TagWallYHi = -1003
	TagWallZLo = -1004
	TagWallZHi = -1005

	TagCapBase = -3000
)

// IsNeighborTag reports whether tag refers to a neighbor-table row (i.e.
// the originating plane is a bisector, not a wall or cap).
func IsNeighborTag(tag int) bool { return tag >= 0 }
