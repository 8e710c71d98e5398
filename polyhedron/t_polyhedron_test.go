// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/plane"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

func unitCubePlanes() []plane.TaggedPlane {
	return []plane.TaggedPlane{
		{P: plane.Plane{N: vec3.New(-1, 0, 0), D: 0}, Tag: plane.TagWallXLo},
		{P: plane.Plane{N: vec3.New(1, 0, 0), D: 1}, Tag: plane.TagWallXHi},
		{P: plane.Plane{N: vec3.New(0, -1, 0), D: 0}, Tag: plane.TagWallYLo},
		{P: plane.Plane{N: vec3.New(0, 1, 0), D: 1}, Tag: plane.TagWallYHi},
		{P: plane.Plane{N: vec3.New(0, 0, -1), D: 0}, Tag: plane.TagWallZLo},
		{P: plane.Plane{N: vec3.New(0, 0, 1), D: 1}, Tag: plane.TagWallZHi},
	}
}

func Test_polyhedron01(tst *testing.T) {

	chk.PrintTitle("Test polyhedron01: unit cube from six wall half-spaces")

	cfg := config.New()
	P := HalfspaceIntersection(unitCubePlanes(), cfg)

	if len(P.V) != 8 {
		tst.Fatalf("expected 8 vertices, got %d", len(P.V))
	}
	if len(P.F) != 6 {
		tst.Fatalf("expected 6 faces, got %d", len(P.F))
	}
	for f := range P.F {
		chk.Scalar(tst, "face area", 1e-12, P.FaceArea[f], 1.0)
	}

	vol, cen := VolumeCentroid(P)
	chk.Scalar(tst, "volume", 1e-10, vol, 1.0)
	chk.Scalar(tst, "centroid.x", 1e-10, cen.X, 0.5)
	chk.Scalar(tst, "centroid.y", 1e-10, cen.Y, 0.5)
	chk.Scalar(tst, "centroid.z", 1e-10, cen.Z, 0.5)

	volFace := VolumeFaceBased(P)
	chk.Scalar(tst, "face-based volume cross-check", 1e-8, volFace, vol)
}

func Test_polyhedron02(tst *testing.T) {

	chk.PrintTitle("Test polyhedron02: every vertex respects every half-space within tolerance")

	cfg := config.New()
	P := HalfspaceIntersection(unitCubePlanes(), cfg)
	planes := unitCubePlanes()
	epsIn := cfg.EpsIn()
	for _, v := range P.V {
		for _, pl := range planes {
			if plane.SignedDistance(pl.P, v) > 2*epsIn {
				tst.Fatalf("vertex %v violates plane tag %d", v, pl.Tag)
			}
		}
	}
}

func Test_polyhedron03(tst *testing.T) {

	chk.PrintTitle("Test polyhedron03: fewer than 4 planes yields an empty polyhedron")

	cfg := config.New()
	P := HalfspaceIntersection(unitCubePlanes()[:3], cfg)
	if !P.Empty() {
		tst.Fatal("expected empty polyhedron")
	}
}

func Test_polyhedron04(tst *testing.T) {

	chk.PrintTitle("Test polyhedron04: tiny faces are pruned")

	cfg := config.New()
	cfg.MinFaceArea = 2.0 // larger than any unit-cube face
	P := HalfspaceIntersection(unitCubePlanes(), cfg)
	if len(P.F) != 0 {
		tst.Fatalf("expected all faces pruned, got %d", len(P.F))
	}
}
