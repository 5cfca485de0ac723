package pixel

import (
	"testing"
)

func uniform(v uint8, w, h, stride int) Window[uint8] {
	buf := make([]uint8, stride*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[y*stride+x] = v
		}
	}
	return Window[uint8]{Base: buf, Stride: stride, Width: w, Height: h}
}

// TestSadSupportedSizes is spec scenario S1.
func TestSadSupportedSizes(t *testing.T) {
	sizes := [][2]int{
		{2, 2}, {2, 4}, {4, 2}, {4, 4}, {4, 8}, {8, 1}, {8, 2}, {8, 4}, {8, 8},
		{8, 16}, {16, 1}, {16, 2}, {16, 4}, {16, 8}, {16, 16}, {16, 32},
		{32, 8}, {32, 16}, {32, 32}, {32, 64}, {64, 16}, {64, 32}, {64, 64},
		{64, 128}, {128, 32}, {128, 64}, {128, 128},
	}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		src := uniform(10, w, h, w)
		ref := uniform(7, w, h, w)
		got, err := Sad(src, ref)
		if err != nil {
			t.Fatalf("Sad(%dx%d): unexpected error: %v", w, h, err)
		}
		want := uint64(3 * w * h)
		if got != want {
			t.Errorf("Sad(%dx%d) = %d, want %d", w, h, got, want)
		}
	}
}

func TestSadUnsupportedSize(t *testing.T) {
	src := uniform(1, 3, 3, 3)
	ref := uniform(1, 3, 3, 3)
	if _, err := Sad(src, ref); err == nil {
		t.Fatal("expected error for unsupported block size")
	}
}

func TestSadUniformSelfIsZero(t *testing.T) {
	a := uniform(42, 16, 16, 16)
	got, err := Sad(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Sad(a,a) = %d, want 0", got)
	}
}

func TestSadSymmetric(t *testing.T) {
	a := uniform(10, 16, 16, 16)
	b := uniform(7, 16, 16, 16)
	ab, _ := Sad(a, b)
	ba, _ := Sad(b, a)
	if ab != ba {
		t.Errorf("Sad not symmetric: %d vs %d", ab, ba)
	}
}

// TestSatdUniformDifference is spec scenario S2.
func TestSatdUniformDifference(t *testing.T) {
	src := uniform(10, 16, 16, 16)
	ref := uniform(7, 16, 16, 16)
	got, err := Satd(src, ref)
	if err != nil {
		t.Fatal(err)
	}
	const want = 3 * 16 * 16 / 2
	if got != want {
		t.Errorf("Satd = %d, want %d", got, want)
	}
}

func TestLumaSumUniform(t *testing.T) {
	w, h := 8, 8
	v := uint8(5)
	src := uniform(v, w, h, w)
	got, err := LumaSum(src)
	if err != nil {
		t.Fatal(err)
	}
	want := uint64(v) * uint64(w) * uint64(h)
	if got != want {
		t.Errorf("LumaSum = %d, want %d", got, want)
	}
}

func TestLumaSumUnsupported(t *testing.T) {
	src := uniform(1, 3, 3, 3)
	if _, err := LumaSum(src); err == nil {
		t.Fatal("expected error for unsupported size")
	}
}

// TestAverage2Ceiling is spec scenario S3.
func TestAverage2Ceiling(t *testing.T) {
	a := Window[uint8]{Base: []uint8{0, 1, 254, 255}, Stride: 4, Width: 4, Height: 1}
	b := Window[uint8]{Base: []uint8{1, 2, 255, 254}, Stride: 4, Width: 4, Height: 1}
	dst := Window[uint8]{Base: make([]uint8, 4), Stride: 4, Width: 4, Height: 1}
	Average2(dst, a, b, 4, 1)
	want := []uint8{1, 2, 255, 255}
	for i, v := range want {
		if dst.Base[i] != v {
			t.Errorf("dst[%d] = %d, want %d", i, dst.Base[i], v)
		}
	}
}

func TestAverage2Commutative(t *testing.T) {
	a := Window[uint8]{Base: []uint8{3, 9, 200}, Stride: 3, Width: 3, Height: 1}
	b := Window[uint8]{Base: []uint8{8, 2, 50}, Stride: 3, Width: 3, Height: 1}
	dst1 := Window[uint8]{Base: make([]uint8, 3), Stride: 3, Width: 3, Height: 1}
	dst2 := Window[uint8]{Base: make([]uint8, 3), Stride: 3, Width: 3, Height: 1}
	Average2(dst1, a, b, 3, 1)
	Average2(dst2, b, a, 3, 1)
	for i := range dst1.Base {
		if dst1.Base[i] != dst2.Base[i] {
			t.Errorf("average2 not commutative at %d: %d vs %d", i, dst1.Base[i], dst2.Base[i])
		}
	}
}

func TestBitbltCopiesRectangle(t *testing.T) {
	src := Window[uint8]{Base: []uint8{1, 2, 3, 99, 4, 5, 6, 99}, Stride: 4, Width: 3, Height: 2}
	dst := Window[uint8]{Base: make([]uint8, 8), Stride: 4, Width: 3, Height: 2}
	Bitblt(dst, src, 3, 2)
	want := []uint8{1, 2, 3, 0, 4, 5, 6, 0}
	for i, v := range want {
		if dst.Base[i] != v {
			t.Errorf("dst[%d] = %d, want %d", i, dst.Base[i], v)
		}
	}
}

// TestPadBorders is spec scenario S4.
func TestPadBorders(t *testing.T) {
	// 4x4 buffer (pitch 4, 4 rows); interior 2x2 at (1,1).
	buf := make([]uint8, 16)
	buf[1*4+1] = 10
	buf[1*4+2] = 20
	buf[2*4+1] = 30
	buf[2*4+2] = 40

	PadBorders(buf, 4, 1, 1, 2, 2, 0)

	want := []uint8{
		10, 10, 20, 20,
		10, 10, 20, 20,
		30, 30, 40, 40,
		30, 30, 40, 40,
	}
	for i, v := range want {
		if buf[i] != v {
			t.Errorf("buf[%d] = %d, want %d", i, buf[i], v)
		}
	}
}

func TestPadBordersIdempotent(t *testing.T) {
	buf := make([]uint8, 16)
	buf[1*4+1] = 10
	buf[1*4+2] = 20
	buf[2*4+1] = 30
	buf[2*4+2] = 40

	PadBorders(buf, 4, 1, 1, 2, 2, 0)
	first := append([]uint8(nil), buf...)
	PadBorders(buf, 4, 1, 1, 2, 2, 0)
	for i := range first {
		if buf[i] != first[i] {
			t.Errorf("pad_borders not idempotent at %d: %d vs %d", i, buf[i], first[i])
		}
	}
}
