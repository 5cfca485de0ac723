package block

import (
	"fmt"

	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/plane"
)

// PlaneOfBlocks is the per-pyramid-level grid of motion vectors plus
// the level metadata the search needs: block size, overlap, pel,
// scale, a running global-MV estimate and a per-vector frequency
// histogram kept for diagnostics.
type PlaneOfBlocks[T pixel.Sample] struct {
	BlkX, BlkY           int
	BlkSizeX, BlkSizeY   int
	OverlapX, OverlapY   int
	Pel                  int
	Scale                int // 2^level
	BitsPerSample        int
	DistMode             DistortionMode
	DCT                  DCTCost[T]

	GlobalMV MotionVector
	Vectors  []MotionVector // row-major, len == BlkX*BlkY

	// freq records how often each distinct vector value has won a
	// block's search this level; a diagnostic carried over from the
	// reference implementation's per-level frequency table, not
	// otherwise load-bearing in this port.
	freq map[[2]int32]int
}

// New allocates a PlaneOfBlocks for one pyramid level.
func New[T pixel.Sample](blkX, blkY, blkSizeX, blkSizeY, overlapX, overlapY, pel, scale, bitsPerSample int, distMode DistortionMode) (*PlaneOfBlocks[T], error) {
	if blkX <= 0 || blkY <= 0 {
		return nil, fmt.Errorf("block: blk_x/blk_y must be positive")
	}
	p := &PlaneOfBlocks[T]{
		BlkX: blkX, BlkY: blkY,
		BlkSizeX: blkSizeX, BlkSizeY: blkSizeY,
		OverlapX: overlapX, OverlapY: overlapY,
		Pel: pel, Scale: scale, BitsPerSample: bitsPerSample,
		DistMode: distMode,
		GlobalMV: Zero(),
		Vectors:  make([]MotionVector, blkX*blkY),
		freq:     make(map[[2]int32]int),
	}
	for i := range p.Vectors {
		p.Vectors[i] = Zero()
	}
	return p, nil
}

// Reset zeroes every vector in the grid. New already does this at
// allocation time; Reset exists so the coarsest level's search entry
// point can zero it explicitly, mirroring the original implementation
// writing the zero vector to the coarsest level array before search
// begins rather than relying on a zeroed default (src/group_of_planes.rs).
func (p *PlaneOfBlocks[T]) Reset() {
	for i := range p.Vectors {
		p.Vectors[i] = Zero()
	}
	p.GlobalMV = Zero()
}

func (p *PlaneOfBlocks[T]) index(bx, by int) int { return by*p.BlkX + bx }

// VectorAt returns the current vector at grid position (bx, by).
func (p *PlaneOfBlocks[T]) VectorAt(bx, by int) MotionVector {
	return p.Vectors[p.index(bx, by)]
}

func (p *PlaneOfBlocks[T]) setVectorAt(bx, by int, v MotionVector) {
	p.Vectors[p.index(bx, by)] = v
	p.freq[[2]int32{v.Dx, v.Dy}]++
}

// BlockOrigin returns the top-left pixel position of block (bx, by).
func (p *PlaneOfBlocks[T]) BlockOrigin(bx, by int) (int, int) {
	return bx * (p.BlkSizeX - p.OverlapX), by * (p.BlkSizeY - p.OverlapY)
}

// logPel reports pel's power-of-two exponent (pel is always 1, 2 or 4).
func logPel(pel int) int {
	switch pel {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 0
	}
}

// clampToPlane restricts a candidate displacement so that the
// resulting window never reads outside the reference plane's padded
// extent, mirroring the window clamp the original implementation
// applies per search level (src/util/mod.rs). An aggressive search
// step near a frame edge would otherwise have no defined cost.
func clampToPlane[T pixel.Sample](refY *plane.Plane[T], px, py, w, h int, vx, vy int32) (int32, int32) {
	pel := int32(refY.Pel)
	minX := int32(-refY.HPad-px) * pel
	maxX := int32(refY.Width+refY.HPad-w-px)*pel + (pel - 1)
	minY := int32(-refY.VPad-py) * pel
	maxY := int32(refY.Height+refY.VPad-h-py)*pel + (pel - 1)
	switch {
	case vx < minX:
		vx = minX
	case vx > maxX:
		vx = maxX
	}
	switch {
	case vy < minY:
		vy = minY
	case vy > maxY:
		vy = maxY
	}
	return vx, vy
}

// refWindow returns the candidate window of the reference plane for
// displacement (vx, vy) at source position (px, py), resolving the
// integer/fractional split against the plane's sub-pel siblings.
func refWindow[T pixel.Sample](refY *plane.Plane[T], px, py int, vx, vy int32, w, h int) pixel.Window[T] {
	vx, vy = clampToPlane(refY, px, py, w, h, vx, vy)
	lp := logPel(refY.Pel)
	intX := int(vx) >> uint(lp)
	intY := int(vy) >> uint(lp)
	fracX := int(vx) & (refY.Pel - 1)
	fracY := int(vy) & (refY.Pel - 1)
	sibling := fracY*refY.Pel + fracX
	return refY.WindowAt(sibling, px+intX, py+intY, w, h)
}

// predictors assembles the zero vector, the global-MV estimate, the
// block's currently stored vector, the parent-doubled vector (nil
// parent at the coarsest level) and the median-of-neighbours
// predictor (spec §4.5).
func (p *PlaneOfBlocks[T]) predictors(bx, by int, parent *PlaneOfBlocks[T]) []MotionVector {
	preds := make([]MotionVector, 0, 5)
	preds = append(preds, Zero())
	preds = append(preds, p.GlobalMV)
	preds = append(preds, p.VectorAt(bx, by))

	if parent != nil {
		pv := parent.VectorAt(bx/2, by/2)
		preds = append(preds, pv.Doubled())
	}

	var left, up, upRight MotionVector
	haveLeft, haveUp := bx > 0, by > 0
	if haveLeft {
		left = p.VectorAt(bx-1, by)
	}
	if haveUp {
		up = p.VectorAt(bx, by-1)
		if bx+1 < p.BlkX {
			upRight = p.VectorAt(bx+1, by-1)
		} else if haveLeft {
			upRight = left
		} else {
			upRight = up
		}
	}
	if haveLeft && haveUp {
		preds = append(preds, medianVector(left, up, upRight))
	} else if haveLeft {
		preds = append(preds, left)
	} else if haveUp {
		preds = append(preds, up)
	}

	return preds
}

// searchOrder returns the block x-indices for row by in meander order
// when meander is set: even rows left-to-right, odd rows right-to-left.
func (p *PlaneOfBlocks[T]) searchOrder(by int, meander bool) []int {
	order := make([]int, p.BlkX)
	for i := range order {
		order[i] = i
	}
	if meander && by%2 == 1 {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	return order
}

// SearchBlock runs the configured search strategy for one block,
// starting from its assembled predictor set, optionally in try-many
// mode (every predictor searched independently, best kept).
func (p *PlaneOfBlocks[T]) SearchBlock(bx, by int, srcY, refY *plane.Plane[T], parent *PlaneOfBlocks[T], searchType config.SearchType, searchParam int, pen Penalties, tryMany bool) error {
	px, py := p.BlockOrigin(bx, by)
	w, h := p.BlkSizeX, p.BlkSizeY
	srcWindow := srcY.WindowAt(0, px, py, w, h)

	eval := func(x, y int32) (Result, error) {
		rw := refWindow[T](refY, px, py, x, y, w, h)
		d, err := Distortion[T](p.DistMode, srcWindow, rw, p.DCT)
		if err != nil {
			return Result{}, err
		}
		return Result{X: x, Y: y, Sad: d, Cost: totalCost(d, x, y, pen, penaltyKindNew)}, nil
	}

	preds := p.predictors(bx, by, parent)
	evaluated := make([]Result, len(preds))
	for i, pr := range preds {
		kind := penaltyKindNew
		if pr.Dx == 0 && pr.Dy == 0 {
			kind = penaltyKindZero
		} else if pr.Dx == p.GlobalMV.Dx && pr.Dy == p.GlobalMV.Dy {
			kind = penaltyKindGlobal
		}
		d, err := Distortion[T](p.DistMode, srcWindow, refWindow[T](refY, px, py, pr.Dx, pr.Dy, w, h), p.DCT)
		if err != nil {
			return err
		}
		evaluated[i] = Result{X: pr.Dx, Y: pr.Dy, Sad: d, Cost: totalCost(d, pr.Dx, pr.Dy, pen, kind)}
	}

	best := evaluated[0]
	for _, r := range evaluated[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}

	if tryMany {
		for _, r := range evaluated {
			refined, err := Search(searchType, eval, r, searchParam)
			if err != nil {
				return err
			}
			if refined.Cost < best.Cost {
				best = refined
			}
		}
	} else {
		refined, err := Search(searchType, eval, best, searchParam)
		if err != nil {
			return err
		}
		best = refined
	}

	p.setVectorAt(bx, by, MotionVector{Dx: best.X, Dy: best.Y, Sad: int64(best.Sad)})
	return nil
}

// SearchLevel runs the per-block search over the whole grid in
// meander order (if enabled), then applies the bad-SAD replay pass.
func (p *PlaneOfBlocks[T]) SearchLevel(srcFrame, refFrame *plane.Frame[T], parent *PlaneOfBlocks[T], cfg config.AnalyseConfig, searchType config.SearchType, searchParam int, tryMany bool) error {
	pen := Penalties{Lambda: cfg.Lambda, PenaltyNew: cfg.PenaltyNew, PenaltyZero: cfg.PenaltyZero, PenaltyGlobal: cfg.PenaltyGlobal}
	srcY, refY := srcFrame.Plane(plane.Y), refFrame.Plane(plane.Y)

	for by := 0; by < p.BlkY; by++ {
		for _, bx := range p.searchOrder(by, cfg.Meander) {
			if err := p.SearchBlock(bx, by, srcY, refY, parent, searchType, searchParam, pen, tryMany); err != nil {
				return fmt.Errorf("block: search (%d,%d): %w", bx, by, err)
			}
		}
	}

	if err := p.replayBadSAD(srcY, refY, parent, searchType, cfg, pen); err != nil {
		return err
	}
	p.updateGlobalMV()
	return nil
}

// replayBadSAD re-searches, with an enlarged exhaustive window of
// radius bad_range, every block whose final cost exceeded bad_sad.
func (p *PlaneOfBlocks[T]) replayBadSAD(srcY, refY *plane.Plane[T], parent *PlaneOfBlocks[T], searchType config.SearchType, cfg config.AnalyseConfig, pen Penalties) error {
	if cfg.BadSad == 0 {
		return nil
	}
	for by := 0; by < p.BlkY; by++ {
		for bx := 0; bx < p.BlkX; bx++ {
			v := p.VectorAt(bx, by)
			if uint64(v.Sad) <= cfg.BadSad {
				continue
			}
			px, py := p.BlockOrigin(bx, by)
			w, h := p.BlkSizeX, p.BlkSizeY
			srcWindow := srcY.WindowAt(0, px, py, w, h)
			eval := func(x, y int32) (Result, error) {
				rw := refWindow[T](refY, px, py, x, y, w, h)
				d, err := Distortion[T](p.DistMode, srcWindow, rw, p.DCT)
				if err != nil {
					return Result{}, err
				}
				return Result{X: x, Y: y, Sad: d, Cost: totalCost(d, x, y, pen, penaltyKindNew)}, nil
			}
			cur := Result{X: v.Dx, Y: v.Dy, Sad: uint64(v.Sad), Cost: totalCost(uint64(v.Sad), v.Dx, v.Dy, pen, penaltyKindNew)}
			best, err := exhaustive(eval, cur, cfg.BadRange)
			if err != nil {
				return err
			}
			if best.Cost < cur.Cost {
				p.setVectorAt(bx, by, MotionVector{Dx: best.X, Dy: best.Y, Sad: int64(best.Sad)})
			}
		}
	}
	return nil
}

// updateGlobalMV recomputes the level's global MV as the mean of
// every block vector whose cost is at or below the level's median
// cost.
func (p *PlaneOfBlocks[T]) updateGlobalMV() {
	p.GlobalMV = EstimateGlobalMV(p.Vectors)
}
