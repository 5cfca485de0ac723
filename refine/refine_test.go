package refine

import (
	"testing"

	"github.com/ausocean/motionvec/pixel"
)

func uniformWindow(v uint8, w, h int) pixel.Window[uint8] {
	buf := make([]uint8, w*h)
	for i := range buf {
		buf[i] = v
	}
	return pixel.Window[uint8]{Base: buf, Stride: w, Width: w, Height: h}
}

func TestRefineUniformPreservesValue(t *testing.T) {
	const bits = 8
	w, h := 16, 16
	for _, m := range []Method{MethodBilinear, MethodBicubic, MethodWiener} {
		src := uniformWindow(100, w, h)
		dstH := uniformWindow(0, w, h)
		dstV := uniformWindow(0, w, h)

		if err := Horizontal(dstH, src, bits, m); err != nil {
			t.Fatalf("%v horizontal: %v", m, err)
		}
		if err := Vertical(dstV, src, bits, m); err != nil {
			t.Fatalf("%v vertical: %v", m, err)
		}
		for i, v := range dstH.Base {
			if v != 100 {
				t.Errorf("%v horizontal: dst[%d] = %d, want 100", m, i, v)
			}
		}
		for i, v := range dstV.Base {
			if v != 100 {
				t.Errorf("%v vertical: dst[%d] = %d, want 100", m, i, v)
			}
		}
	}
}

func TestBilinearDiagonalUniform(t *testing.T) {
	w, h := 8, 8
	src := uniformWindow(50, w, h)
	dst := uniformWindow(0, w, h)
	Diagonal(dst, src)
	for i, v := range dst.Base {
		if v != 50 {
			t.Errorf("diagonal: dst[%d] = %d, want 50", i, v)
		}
	}
}

func TestQuarterAverageUniform(t *testing.T) {
	w, h := 8, 8
	a := uniformWindow(10, w, h)
	b := uniformWindow(20, w, h)
	dst := uniformWindow(0, w, h)
	QuarterAverage(dst, a, b)
	for i, v := range dst.Base {
		if v != 15 {
			t.Errorf("quarter average: dst[%d] = %d, want 15", i, v)
		}
	}
}

func TestClamp32(t *testing.T) {
	max := maxSample(8)
	if got := clamp32(-5, max); got != 0 {
		t.Errorf("clamp32(-5) = %d, want 0", got)
	}
	if got := clamp32(300, max); got != max {
		t.Errorf("clamp32(300) = %d, want %d", got, max)
	}
	if got := clamp32(100, max); got != 100 {
		t.Errorf("clamp32(100) = %d, want 100", got)
	}
}
