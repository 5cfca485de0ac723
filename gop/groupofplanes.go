// Package gop implements GroupOfPlanes, the coarse-to-fine driver that
// runs PlaneOfBlocks search over every pyramid level, and the post-search
// ExtraDivide subdivision.
package gop

import (
	"fmt"

	"github.com/ausocean/motionvec/block"
	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/plane"
)

// GroupOfPlanes owns one PlaneOfBlocks per pyramid level, index 0
// being full resolution.
type GroupOfPlanes[T pixel.Sample] struct {
	BlkSizeX, BlkSizeY int
	OverlapX, OverlapY int
	Divide             config.DivideMode
	Planes             []*block.PlaneOfBlocks[T]
}

// New derives, for every level of gof, the block grid implied by that
// level's plane size, block size and overlap, and allocates the
// matching PlaneOfBlocks. Only level 0 gets the pyramid's full pel;
// deeper levels are always pel=1 (spec §4.2).
func New[T pixel.Sample](gof *plane.GroupOfFrames[T], blkSizeX, blkSizeY, overlapX, overlapY, pel, bitsPerSample int, distMode block.DistortionMode, divide config.DivideMode) (*GroupOfPlanes[T], error) {
	levels := len(gof.Levels)
	if levels == 0 {
		return nil, fmt.Errorf("gop: empty pyramid")
	}
	planes := make([]*block.PlaneOfBlocks[T], levels)
	for i := 0; i < levels; i++ {
		y := gof.Levels[i].Plane(plane.Y)
		blkX := (y.Width - overlapX) / (blkSizeX - overlapX)
		blkY := (y.Height - overlapY) / (blkSizeY - overlapY)
		if blkX <= 0 || blkY <= 0 {
			return nil, fmt.Errorf("gop: level %d too small for block size %dx%d", i, blkSizeX, blkSizeY)
		}
		levelPel := 1
		if i == 0 {
			levelPel = pel
		}
		pob, err := block.New[T](blkX, blkY, blkSizeX, blkSizeY, overlapX, overlapY, levelPel, 1<<i, bitsPerSample, distMode)
		if err != nil {
			return nil, fmt.Errorf("gop: level %d: %w", i, err)
		}
		planes[i] = pob
	}
	return &GroupOfPlanes[T]{
		BlkSizeX: blkSizeX, BlkSizeY: blkSizeY,
		OverlapX: overlapX, OverlapY: overlapY,
		Divide: divide,
		Planes: planes,
	}, nil
}

func isAxisOnly(s config.SearchType) bool {
	return s == config.SearchHorizontal || s == config.SearchVertical
}

// SearchMVs runs the per-block search from the coarsest level down to
// level 0 (spec §4.6), seeding each finer level with its parent's
// doubled vectors, leaving the searched vectors in g.Planes ready for
// serialization.
func (g *GroupOfPlanes[T]) SearchMVs(srcGof, refGof *plane.GroupOfFrames[T], cfg config.AnalyseConfig) error {
	levels := len(g.Planes)
	if len(srcGof.Levels) != levels || len(refGof.Levels) != levels {
		return fmt.Errorf("gop: pyramid level count mismatch")
	}

	searchTypeSmallest := cfg.SearchTypeCoarse
	if levels == 1 || isAxisOnly(cfg.SearchType) {
		searchTypeSmallest = cfg.SearchType
	}
	searchParamSmallest := cfg.SearchParam
	if levels == 1 {
		searchParamSmallest = cfg.PelSearch
	}
	tryManySmallest := cfg.TryMany && levels > 1

	top := levels - 1
	g.Planes[top].Reset()
	if err := g.Planes[top].SearchLevel(srcGof.Levels[top], refGof.Levels[top], nil, cfg, searchTypeSmallest, searchParamSmallest, tryManySmallest); err != nil {
		return fmt.Errorf("gop: level %d: %w", top, err)
	}

	for i := levels - 2; i >= 0; i-- {
		searchTypeLevel := cfg.SearchTypeCoarse
		if i == 0 || isAxisOnly(cfg.SearchType) {
			searchTypeLevel = cfg.SearchType
		}
		searchParamLevel := cfg.SearchParam
		if i == 0 {
			searchParamLevel = cfg.PelSearch
		}
		tryManyLevel := cfg.TryMany && i > 0

		if err := g.Planes[i].SearchLevel(srcGof.Levels[i], refGof.Levels[i], g.Planes[i+1], cfg, searchTypeLevel, searchParamLevel, tryManyLevel); err != nil {
			return fmt.Errorf("gop: level %d: %w", i, err)
		}
	}

	return nil
}
