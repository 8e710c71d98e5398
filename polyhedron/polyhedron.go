// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyhedron builds a convex polyhedron from the intersection of a
// set of tagged half-spaces, by triple-plane candidate enumeration
// followed by quantized-key vertex deduplication and per-plane angular
// face assembly. It also computes face attributes (normal, area,
// centroid) and the polyhedron's volume and centroid.
package polyhedron

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"

	"github.com/IvanChernyshov/voronoi3d/config"
	"github.com/IvanChernyshov/voronoi3d/plane"
	"github.com/IvanChernyshov/voronoi3d/vec3"
)

// Polyhedron is a convex body: deduplicated vertices, CCW face loops
// (indices into V), and per-face derived attributes.
type Polyhedron struct {
	V            []vec3.Vec3
	F            [][]int
	FaceNormal   []vec3.Vec3
	FaceArea     []float64
	FaceCentroid []vec3.Vec3
	FaceTag      []int
}

// Empty reports whether the polyhedron carries no faces: an infeasible
// half-space set yields an empty polyhedron rather than an error.
func (p *Polyhedron) Empty() bool { return len(p.F) == 0 }

// minDet3 is the determinant threshold below which a plane triple is
// treated as near-parallel and skipped.
const minDet3 = 1e-14

// solve3x3 solves [a;b;c]·x = (da,db,dc) via gosl/la.MatInv, matching the
// "generic 3x3 inversion" framing used by lattice.New for the same kind of
// small dense system. Returns ok=false if the determinant falls below
// minDet3 — the planes are near-parallel, so there is no vertex candidate
// here, and that is not an error, just a skipped triple.
func solve3x3(a, b, c vec3.Vec3, da, db, dc float64) (x vec3.Vec3, ok bool) {
	m := la.MatAlloc(3, 3)
	m[0][0], m[0][1], m[0][2] = a.X, a.Y, a.Z
	m[1][0], m[1][1], m[1][2] = b.X, b.Y, b.Z
	m[2][0], m[2][1], m[2][2] = c.X, c.Y, c.Z
	inv := la.MatAlloc(3, 3)
	det, err := la.MatInv(inv, m, minDet3)
	if err != nil || math.Abs(det) < minDet3 {
		return vec3.Vec3{}, false
	}
	rhs := []float64{da, db, dc}
	out := make([]float64, 3)
	la.MatVecMul(out, 1.0, inv, rhs)
	return vec3.FromSlice(out), true
}

// orthonormalU returns a unit vector perpendicular to n, used to seed the
// (u,v) basis for projecting a face's vertices into its own plane.
func orthonormalU(n vec3.Vec3) vec3.Vec3 {
	a := vec3.New(1, 0, 0)
	if math.Abs(n.X) >= 0.9 {
		a = vec3.New(0, 1, 0)
	}
	u := n.Cross(a)
	if u.Norm() == 0 {
		u = n.Cross(vec3.New(0, 0, 1))
	}
	return u.Unit()
}

type quantKey struct{ x, y, z int64 }

func quantize(v vec3.Vec3, q float64) quantKey {
	return quantKey{
		x: int64(math.Round(v.X / q)),
		y: int64(math.Round(v.Y / q)),
		z: int64(math.Round(v.Z / q)),
	}
}

// HalfspaceIntersection builds the convex polyhedron bounded by the given
// tagged half-spaces: candidate vertex enumeration over every plane
// triple, quantized-key deduplication, then per-plane face assembly by
// angular sort. Returns an empty Polyhedron (no error) when fewer than 4
// planes are given, when no valid vertex triple exists, or when fewer
// than 4 unique vertices survive.
func HalfspaceIntersection(planes []plane.TaggedPlane, cfg *config.Config) *Polyhedron {
	P := &Polyhedron{}
	n := len(planes)
	if n < 4 {
		return P
	}
	epsIn := cfg.EpsIn()

	// Step 1: candidate vertex enumeration over every unordered plane triple.
	var candidates []vec3.Vec3
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				x, ok := solve3x3(planes[a].P.N, planes[b].P.N, planes[c].P.N, planes[a].P.D, planes[b].P.D, planes[c].P.D)
				if !ok {
					continue
				}
				inside := true
				for k := 0; k < n; k++ {
					if plane.SignedDistance(planes[k].P, x) > epsIn {
						inside = false
						break
					}
				}
				if inside {
					candidates = append(candidates, x)
				}
			}
		}
	}

	// Step 2: quantized-key vertex deduplication.
	q := cfg.QuantGrid()
	keyToID := make(map[quantKey]int)
	for _, v := range candidates {
		k := quantize(v, q)
		if _, seen := keyToID[k]; !seen {
			keyToID[k] = len(P.V)
			P.V = append(P.V, v)
		}
	}
	if len(P.V) < 4 {
		P.V = nil
		return P
	}

	// Step 3: per-plane face assembly via angular sort around the plane's
	// own normal.
	for pi := 0; pi < n; pi++ {
		pl := planes[pi].P
		var onPlane []int
		for vi, v := range P.V {
			if math.Abs(plane.SignedDistance(pl, v)) <= epsIn*2 {
				onPlane = append(onPlane, vi)
			}
		}
		if len(onPlane) < 3 {
			continue
		}
		u := orthonormalU(pl.N)
		v := pl.N.Cross(u)
		centroid3D := vec3.Vec3{}
		for _, id := range onPlane {
			centroid3D = centroid3D.Add(P.V[id])
		}
		centroid3D = centroid3D.Scale(1.0 / float64(len(onPlane)))

		type angVert struct {
			id  int
			ang float64
		}
		proj := make([]angVert, len(onPlane))
		for k, id := range onPlane {
			d := P.V[id].Sub(centroid3D)
			proj[k] = angVert{id: id, ang: math.Atan2(d.Dot(v), d.Dot(u))}
		}
		sort.Slice(proj, func(i, j int) bool { return proj[i].ang < proj[j].ang })

		loop := make([]int, len(proj))
		for k, pv := range proj {
			loop[k] = pv.id
		}
		P.F = append(P.F, loop)
		P.FaceTag = append(P.FaceTag, planes[pi].Tag)
	}

	computeFaceAttributes(P)
	pruneTinyFaces(P, cfg.MinFaceArea)
	return P
}

// computeFaceAttributes fills FaceNormal/FaceArea/FaceCentroid by fan
// triangulation from each loop's first vertex.
func computeFaceAttributes(p *Polyhedron) {
	p.FaceNormal = make([]vec3.Vec3, len(p.F))
	p.FaceArea = make([]float64, len(p.F))
	p.FaceCentroid = make([]vec3.Vec3, len(p.F))
	for f, loop := range p.F {
		if len(loop) < 3 {
			p.FaceNormal[f] = vec3.New(0, 0, 1)
			continue
		}
		v0 := p.V[loop[0]]
		var normalSum vec3.Vec3
		var weightedCentroid vec3.Vec3
		var areaSum float64
		for k := 1; k < len(loop)-1; k++ {
			vk := p.V[loop[k]]
			vk1 := p.V[loop[k+1]]
			cross := vk.Sub(v0).Cross(vk1.Sub(v0))
			triArea := 0.5 * cross.Norm()
			triCentroid := v0.Add(vk).Add(vk1).Scale(1.0 / 3.0)
			normalSum = normalSum.Add(cross)
			weightedCentroid = weightedCentroid.Add(triCentroid.Scale(triArea))
			areaSum += triArea
		}
		p.FaceArea[f] = areaSum
		if areaSum > 0 {
			p.FaceCentroid[f] = weightedCentroid.Scale(1.0 / areaSum)
		} else {
			p.FaceCentroid[f] = v0
		}
		if normalSum.Norm() > 0 {
			p.FaceNormal[f] = normalSum.Unit()
		} else {
			p.FaceNormal[f] = vec3.New(0, 0, 1)
		}
	}
}

// pruneTinyFaces removes faces with area below minArea from all parallel
// per-face arrays.
func pruneTinyFaces(p *Polyhedron, minArea float64) {
	var F [][]int
	var normal, centroid []vec3.Vec3
	var area []float64
	var tag []int
	for f := range p.F {
		if p.FaceArea[f] < minArea {
			continue
		}
		F = append(F, p.F[f])
		normal = append(normal, p.FaceNormal[f])
		centroid = append(centroid, p.FaceCentroid[f])
		area = append(area, p.FaceArea[f])
		tag = append(tag, p.FaceTag[f])
	}
	p.F, p.FaceNormal, p.FaceCentroid, p.FaceArea, p.FaceTag = F, normal, centroid, area, tag
}

// VolumeCentroid computes the polyhedron's volume and centroid by
// tetrahedron-from-origin decomposition: for each face fan triangle
// (v0,vk,vk+1), signed volume = v0·(vk×vk+1)/6.
func VolumeCentroid(p *Polyhedron) (volume float64, centroid vec3.Vec3) {
	var signedSum float64
	var weighted vec3.Vec3
	for _, loop := range p.F {
		if len(loop) < 3 {
			continue
		}
		v0 := p.V[loop[0]]
		for k := 1; k < len(loop)-1; k++ {
			vk := p.V[loop[k]]
			vk1 := p.V[loop[k+1]]
			signedVol := v0.Dot(vk.Cross(vk1)) / 6.0
			triCentroid := v0.Add(vk).Add(vk1).Scale(0.25)
			signedSum += signedVol
			weighted = weighted.Add(triCentroid.Scale(signedVol))
		}
	}
	volume = math.Abs(signedSum)
	if signedSum != 0 {
		centroid = weighted.Scale(1.0 / signedSum)
	}
	return volume, centroid
}

// VolumeFaceBased computes V = |(1/3) Σ_f area_f · n_f·c_f|, an
// alternative face-based formula kept for cross-validation against
// VolumeCentroid.
func VolumeFaceBased(p *Polyhedron) float64 {
	var v float64
	for f := range p.F {
		v += p.FaceArea[f] * p.FaceNormal[f].Dot(p.FaceCentroid[f]) / 3.0
	}
	return math.Abs(v)
}
