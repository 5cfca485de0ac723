// Package motion exposes the three entry points of the core (spec
// §6): BuildSuper constructs the reference pyramid, SearchMVs runs the
// coarse-to-fine block search, and ExtraDivide post-processes a
// searched field into a finer grid.
package motion

import (
	"fmt"

	"github.com/ausocean/motionvec/block"
	"github.com/ausocean/motionvec/gop"
	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/mvio"
	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/plane"
)

// BuildSuper constructs the multi-resolution reference pyramid from
// one source frame.
func BuildSuper[T pixel.Sample](src plane.Source[T], cfg config.SuperConfig) (*plane.GroupOfFrames[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("motion: build_super: %w", err)
	}
	pcfg := plane.Config{
		HPad: int(cfg.HPad), VPad: int(cfg.VPad),
		Pel: cfg.Pel, Levels: int(cfg.Levels),
		Chroma: cfg.Chroma, Sharp: cfg.Sharp, RFilter: cfg.RFilter,
		XRatioUV: cfg.XRatioUV, YRatioUV: cfg.YRatioUV,
		BitsPerSample: cfg.BitsPerSample, BlockSize: int(cfg.BlockSize),
	}
	return plane.BuildSuper[T](src, pcfg)
}

// SearchMVs runs the coarse-to-fine per-block search over the two
// pyramids and returns the vector field as an MvsOutput (levels in
// coarsest-to-finest order, ready for Marshal) together with the
// searched GroupOfPlanes.
func SearchMVs[T pixel.Sample](srcGof, refGof *plane.GroupOfFrames[T], cfg config.AnalyseConfig) (*mvio.MvsOutput, *gop.GroupOfPlanes[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("motion: search_mvs: %w", err)
	}

	distMode := block.DistortionSAD
	if cfg.DctMode > 0 {
		distMode = block.DistortionDCT
	}

	y0 := srcGof.Levels[0].Plane(plane.Y)
	g, err := gop.New[T](srcGof, int(cfg.BlkSizeX), int(cfg.BlkSizeY), int(cfg.OverlapX), int(cfg.OverlapY), y0.Pel, y0.BitsPerSample, distMode, cfg.Divide)
	if err != nil {
		return nil, nil, fmt.Errorf("motion: search_mvs: %w", err)
	}

	if err := g.SearchMVs(srcGof, refGof, cfg); err != nil {
		return nil, nil, fmt.Errorf("motion: search_mvs: %w", err)
	}

	out := &mvio.MvsOutput{Levels: make([]mvio.Level, len(g.Planes))}
	// Persisted order is coarsest to finest (spec §6); Planes is
	// indexed finest-first (index 0 == full resolution).
	for i, pob := range g.Planes {
		out.Levels[len(g.Planes)-1-i] = mvio.Level{BlkX: pob.BlkX, BlkY: pob.BlkY, Vectors: pob.Vectors}
	}

	return out, g, nil
}

// ExtraDivide post-processes the finest level of a searched field by
// the §4.6 subdivision rule, appending the result as a trailing
// divide block.
func ExtraDivide[T pixel.Sample](out *mvio.MvsOutput, g *gop.GroupOfPlanes[T]) *mvio.MvsOutput {
	rows := g.ExtraDivide()
	if rows == nil {
		return out
	}
	vectors := make([]block.MotionVector, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		vectors = append(vectors, row...)
	}
	divided := &mvio.MvsOutput{
		Levels: out.Levels,
		DivideBlock: &mvio.Level{
			BlkX: g.Planes[0].BlkX * 2, BlkY: g.Planes[0].BlkY * 2,
			Vectors: vectors,
		},
	}
	return divided
}
