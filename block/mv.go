// Package block implements PlaneOfBlocks: the per-pyramid-level grid of
// motion vectors, its predictor assembly, cost model and search
// strategies.
package block

// MotionVector is one block's best displacement and its cost. Dx, Dy
// are in units of 1/pel of a pixel at the level's current sub-pel
// factor. Sad is the block distortion last measured for this vector;
// a negative Sad marks the vector as not-yet-evaluated (the "parent
// doubled" predictor before it has been costed, or the zero value
// before the very first search).
type MotionVector struct {
	Dx, Dy int32
	Sad    int64
}

// Zero returns the origin vector with an unevaluated cost, matching
// the reference implementation's MotionVector::zero().
func Zero() MotionVector {
	return MotionVector{Sad: -1}
}

// Valid reports whether this vector has been costed.
func (m MotionVector) Valid() bool {
	return m.Sad >= 0
}

// SquareDistance returns the squared Euclidean distance between m and
// (x, y).
func (m MotionVector) SquareDistance(x, y int32) uint64 {
	dx := int64(m.Dx - x)
	dy := int64(m.Dy - y)
	return uint64(dx*dx + dy*dy)
}

// Doubled returns m with both components scaled by two and the cost
// reset to unevaluated, used to seed a finer level's predictor from
// its parent.
func (m MotionVector) Doubled() MotionVector {
	return MotionVector{Dx: m.Dx * 2, Dy: m.Dy * 2, Sad: -1}
}

func median3(a, b, c int32) int32 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}

// medianVector computes the per-axis median of three vectors. If that
// per-axis median does not exactly reproduce one of the three inputs
// (which can happen since x and y are medianed independently), v1 is
// returned instead, matching the reference implementation's
// fallback-to-first-candidate rule.
// MedianVector is the exported form of medianVector, used by the
// post-search extra_divide subdivision (spec §4.6).
func MedianVector(v1, v2, v3 MotionVector) MotionVector {
	return medianVector(v1, v2, v3)
}

func medianVector(v1, v2, v3 MotionVector) MotionVector {
	x := median3(v1.Dx, v2.Dx, v3.Dx)
	y := median3(v1.Dy, v2.Dy, v3.Dy)
	if (x == v1.Dx && y == v1.Dy) || (x == v2.Dx && y == v2.Dy) || (x == v3.Dx && y == v3.Dy) {
		return MotionVector{Dx: x, Dy: y, Sad: -1}
	}
	return MotionVector{Dx: v1.Dx, Dy: v1.Dy, Sad: -1}
}
