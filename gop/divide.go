package gop

import (
	"github.com/ausocean/motionvec/block"
	"github.com/ausocean/motionvec/motion/config"
)

// ExtraDivide implements the §4.6 post-search subdivision: every block
// of the finest level is replaced by four half-size sub-blocks that
// inherit the parent vector with sad >>= 2; in Median mode, each
// interior sub-block's displacement is further replaced by the median
// of the parent and its two relevant neighbours. Returns nil when
// g.Divide is DivideNone.
func (g *GroupOfPlanes[T]) ExtraDivide() [][]block.MotionVector {
	if g.Divide == config.DivideNone {
		return nil
	}

	finest := g.Planes[0]
	blkX, blkY := finest.BlkX, finest.BlkY
	w2 := blkX * 2
	out := make([]block.MotionVector, w2*blkY*2)
	at := func(x, y int) *block.MotionVector { return &out[y*w2+x] }

	for by := 0; by < blkY; by++ {
		for bx := 0; bx < blkX; bx++ {
			v := finest.VectorAt(bx, by)
			v.Sad >>= 2
			ox, oy := bx*2, by*2
			*at(ox, oy) = v
			*at(ox+1, oy) = v
			*at(ox, oy+1) = v
			*at(ox+1, oy+1) = v
		}
	}

	if g.Divide == config.DivideMedian {
		for by := 1; by < blkY-1; by++ {
			for bx := 1; bx < blkX-1; bx++ {
				parent := finest.VectorAt(bx, by)
				left := finest.VectorAt(bx-1, by)
				right := finest.VectorAt(bx+1, by)
				up := finest.VectorAt(bx, by-1)
				down := finest.VectorAt(bx, by+1)
				ox, oy := bx*2, by*2

				assignMedianXY(at(ox, oy), block.MedianVector(parent, left, up))
				assignMedianXY(at(ox+1, oy), block.MedianVector(parent, right, up))
				assignMedianXY(at(ox, oy+1), block.MedianVector(parent, left, down))
				assignMedianXY(at(ox+1, oy+1), block.MedianVector(parent, right, down))
			}
		}
	}

	rows := make([][]block.MotionVector, blkY*2)
	for y := range rows {
		rows[y] = out[y*w2 : (y+1)*w2]
	}
	return rows
}

// assignMedianXY overwrites only the displacement of dst, preserving
// its already-assigned (parent.Sad >> 2) cost, matching the reference
// implementation's get_median which never touches the sad field.
func assignMedianXY(dst *block.MotionVector, median block.MotionVector) {
	dst.Dx = median.Dx
	dst.Dy = median.Dy
}
