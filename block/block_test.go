package block

import (
	"testing"

	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/plane"
)

func buildShiftedPlanes(t *testing.T, w, h, hpad, vpad, shiftX, shiftY int) (*plane.Plane[uint8], *plane.Plane[uint8]) {
	t.Helper()
	src, err := plane.New[uint8](w, h, hpad, vpad, 1, 8)
	if err != nil {
		t.Fatalf("New src: %v", err)
	}
	ref, err := plane.New[uint8](w, h, hpad, vpad, 1, 8)
	if err != nil {
		t.Fatalf("New ref: %v", err)
	}

	// A cone centred on (8, 8): its block distortion rises in every
	// direction away from the true shift, so greedy strategies converge.
	pattern := func(x, y int) uint8 {
		ax, ay := x-8, y-8
		if ax < 0 {
			ax = -ax
		}
		if ay < 0 {
			ay = -ay
		}
		return uint8(6 * (ax + ay))
	}

	sv := src.IntegerView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sv.Set(x, y, pattern(x, y))
		}
	}
	src.FillBorders()

	rv := ref.IntegerView()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rv.Set(x, y, pattern(x-shiftX, y-shiftY))
		}
	}
	ref.FillBorders()

	return src, ref
}

func TestSearchBlockFindsExactShift(t *testing.T) {
	const w, h = 32, 32
	shiftX, shiftY := 4, -3
	srcY, refY := buildShiftedPlanes(t, w, h, 8, 8, shiftX, shiftY)

	pob, err := New[uint8](1, 1, 16, 16, 0, 0, 1, 1, 8, DistortionSAD)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pen := Penalties{Lambda: 1}

	if err := pob.SearchBlock(0, 0, srcY, refY, nil, config.SearchExhaustive, 8, pen, false); err != nil {
		t.Fatalf("SearchBlock: %v", err)
	}

	v := pob.VectorAt(0, 0)
	if v.Dx != int32(shiftX) || v.Dy != int32(shiftY) {
		t.Errorf("vector = (%d,%d), want (%d,%d)", v.Dx, v.Dy, shiftX, shiftY)
	}
	if v.Sad != 0 {
		t.Errorf("sad = %d, want 0", v.Sad)
	}
}

func TestMedianVectorKeepsExactMatch(t *testing.T) {
	v1 := MotionVector{Dx: 1, Dy: 5}
	v2 := MotionVector{Dx: 5, Dy: 1}
	v3 := MotionVector{Dx: 3, Dy: 3}
	got := medianVector(v1, v2, v3)
	// Per-axis median is (3,3), which matches v3 exactly, so it is kept.
	if got.Dx != 3 || got.Dy != 3 {
		t.Errorf("median = (%d,%d), want (3,3)", got.Dx, got.Dy)
	}
}

func TestMedianVectorNoExactMatchUsesFirst(t *testing.T) {
	v1 := MotionVector{Dx: 0, Dy: 0}
	v2 := MotionVector{Dx: 10, Dy: 0}
	v3 := MotionVector{Dx: 5, Dy: 10}
	got := medianVector(v1, v2, v3)
	// Per-axis median is (5,0), which matches none of the inputs, so
	// v1 is returned.
	if got.Dx != v1.Dx || got.Dy != v1.Dy {
		t.Errorf("median = (%d,%d), want (%d,%d)", got.Dx, got.Dy, v1.Dx, v1.Dy)
	}
}

func TestEstimateGlobalMVMeansBelowMedianVectors(t *testing.T) {
	vectors := []MotionVector{
		{Dx: 2, Dy: 2, Sad: 10},
		{Dx: 4, Dy: 4, Sad: 20},
		{Dx: 100, Dy: 100, Sad: 9000},
	}
	got := EstimateGlobalMV(vectors)
	if got.Dx != 3 || got.Dy != 3 {
		t.Errorf("global MV = (%d,%d), want (3,3)", got.Dx, got.Dy)
	}
}

func TestSearchDispatchStrategies(t *testing.T) {
	const w, h = 32, 32
	shiftX, shiftY := 2, 2
	srcY, refY := buildShiftedPlanes(t, w, h, 8, 8, shiftX, shiftY)

	for _, st := range []config.SearchType{
		config.SearchNStep,
		config.SearchLogarithmic,
		config.SearchHex2,
		config.SearchUMH,
	} {
		pob, err := New[uint8](1, 1, 16, 16, 0, 0, 1, 1, 8, DistortionSAD)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		pen := Penalties{Lambda: 1}
		if err := pob.SearchBlock(0, 0, srcY, refY, nil, st, 3, pen, false); err != nil {
			t.Fatalf("%v: SearchBlock: %v", st, err)
		}
		v := pob.VectorAt(0, 0)
		if v.Dx != int32(shiftX) || v.Dy != int32(shiftY) {
			t.Errorf("%v: vector = (%d,%d), want (%d,%d)", st, v.Dx, v.Dy, shiftX, shiftY)
		}
	}
}
