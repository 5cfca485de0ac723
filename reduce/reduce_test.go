package reduce

import (
	"testing"

	"github.com/ausocean/motionvec/pixel"
)

func mkWindow(vals []uint8, w, h int) pixel.Window[uint8] {
	return pixel.Window[uint8]{Base: vals, Stride: w, Width: w, Height: h}
}

// TestBilinearReduce is spec scenario S5.
func TestBilinearReduce(t *testing.T) {
	src := mkWindow([]uint8{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}, 4, 4)
	dst := mkWindow(make([]uint8, 4), 2, 2)
	scratch := make([]uint8, 4*2)

	if err := Reduce(dst, src, scratch, Bilinear); err != nil {
		t.Fatal(err)
	}
	want := []uint8{4, 6, 12, 14}
	for i, v := range want {
		if dst.Base[i] != v {
			t.Errorf("dst[%d] = %d, want %d", i, dst.Base[i], v)
		}
	}

	// Determinism: repeated runs must produce the same result.
	dst2 := mkWindow(make([]uint8, 4), 2, 2)
	if err := Reduce(dst2, src, scratch, Bilinear); err != nil {
		t.Fatal(err)
	}
	for i := range dst.Base {
		if dst.Base[i] != dst2.Base[i] {
			t.Errorf("bilinear reduce not deterministic at %d: %d vs %d", i, dst.Base[i], dst2.Base[i])
		}
	}
}

func TestReduceHalvesDimensions(t *testing.T) {
	for _, f := range []Filter{Average, Triangle, Bilinear, Quadratic, Cubic} {
		w, h := 16, 16
		vals := make([]uint8, w*h)
		for i := range vals {
			vals[i] = uint8(i % 251)
		}
		src := mkWindow(vals, w, h)
		dst := mkWindow(make([]uint8, (w/2)*(h/2)), w/2, h/2)
		scratch := make([]uint8, w*(h/2))
		if err := Reduce(dst, src, scratch, f); err != nil {
			t.Fatalf("filter %v: %v", f, err)
		}
	}
}

func TestReduceUniformPreservesValue(t *testing.T) {
	w, h := 16, 16
	vals := make([]uint8, w*h)
	for i := range vals {
		vals[i] = 42
	}
	src := mkWindow(vals, w, h)
	for _, f := range []Filter{Average, Triangle, Bilinear, Quadratic, Cubic} {
		dst := mkWindow(make([]uint8, (w/2)*(h/2)), w/2, h/2)
		scratch := make([]uint8, w*(h/2))
		if err := Reduce(dst, src, scratch, f); err != nil {
			t.Fatalf("filter %v: %v", f, err)
		}
		for i, v := range dst.Base {
			if v != 42 {
				t.Errorf("filter %v: dst[%d] = %d, want 42 (uniform input must reduce to itself)", f, i, v)
			}
		}
	}
}

func TestReduceMismatchedDstSize(t *testing.T) {
	src := mkWindow(make([]uint8, 16), 4, 4)
	dst := mkWindow(make([]uint8, 4), 3, 3)
	scratch := make([]uint8, 16)
	if err := Reduce(dst, src, scratch, Bilinear); err == nil {
		t.Fatal("expected error for mismatched destination size")
	}
}
