// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the numerical tolerances and planning parameters
// shared by every stage of the tessellation pipeline, plus the options
// controlling optional spherical caps on surface atoms.
package config

import "github.com/cpmech/gosl/chk"

// Config collects the tolerances and planning knobs shared across the
// pipeline's external operations.
type Config struct {
	EpsPos       float64 // geometric position tolerance; seeds EpsIn and the quantization grid
	EpsAngle     float64 // near-parallel-plane threshold; not read by the pipeline (polyhedron uses a fixed 1e-14 determinant cut)
	MinFaceArea  float64 // faces with area below this are pruned
	MinM         float64 // lower clamp for the per-pair bisector fraction M
	ReachFactor  float64 // PBC reach multiplier on the nearest-neighbor distance
	NeighborSkin float64 // additive padding on the neighbor search radius
}

// New returns a Config seeded with the documented defaults.
func New() *Config {
	return &Config{
		EpsPos:       1e-10,
		EpsAngle:     1e-12,
		MinFaceArea:  1e-14,
		MinM:         0.1,
		ReachFactor:  2.5,
		NeighborSkin: 1e-8,
	}
}

// EpsIn is the inside/membership tolerance used by the half-space
// intersector, derived from EpsPos.
func (c *Config) EpsIn() float64 {
	if c.EpsPos*10 > 1e-9 {
		return c.EpsPos * 10
	}
	return 1e-9
}

// QuantGrid is the vertex-deduplication quantization grid, derived from
// EpsPos.
func (c *Config) QuantGrid() float64 {
	if c.EpsPos*100 > 1e-9 {
		return c.EpsPos * 100
	}
	return 1e-9
}

// Validate reports an error for nonsensical tolerances. The planners and
// tessellators do not call it; a caller runs it before handing the Config
// to the pipeline.
func (c *Config) Validate() error {
	if c.MinM <= 0 || c.MinM >= 0.5 {
		return chk.Err("config: min_M must lie in (0, 0.5), got %g", c.MinM)
	}
	if c.EpsPos <= 0 {
		return chk.Err("config: eps_pos must be positive, got %g", c.EpsPos)
	}
	if c.ReachFactor <= 0 {
		return chk.Err("config: reach_factor must be positive, got %g", c.ReachFactor)
	}
	return nil
}

// CapOptions controls the optional spherical-cap bounding of surface
// atoms' cells.
type CapOptions struct {
	Enabled           bool
	Radius            float64
	LebedevOrder      int
	SurfaceAtomIDs    []int
	AutoSurfaceMargin float64
}

// NewCapOptions returns disabled cap options (the zero-impact default).
func NewCapOptions() *CapOptions {
	return &CapOptions{
		Enabled:      false,
		Radius:       1.0,
		LebedevOrder: 26,
	}
}

// Validate reports an InvalidArgument-shaped error for a malformed,
// enabled CapOptions.
func (o *CapOptions) Validate() error {
	if !o.Enabled {
		return nil
	}
	if o.Radius <= 0 {
		return chk.Err("cap options: radius must be positive, got %g", o.Radius)
	}
	if o.LebedevOrder <= 0 {
		return chk.Err("cap options: lebedev_order must be positive, got %d", o.LebedevOrder)
	}
	return nil
}

// IsSurfaceAtom decides whether atom i should receive cap planes instead of
// box walls: explicit membership in SurfaceAtomIDs if non-empty, else
// auto-detection by wall distance via the supplied margin test.
func (o *CapOptions) IsSurfaceAtom(i int, marginTest func(margin float64) bool) bool {
	if !o.Enabled {
		return false
	}
	if len(o.SurfaceAtomIDs) > 0 {
		for _, id := range o.SurfaceAtomIDs {
			if id == i {
				return true
			}
		}
		return false
	}
	if o.AutoSurfaceMargin > 0 {
		return marginTest(o.AutoSurfaceMargin)
	}
	return false
}
