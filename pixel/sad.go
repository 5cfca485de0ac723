package pixel

// sadSizes is the set of (width, height) pairs the SAD kernel supports:
// every power of two from 2 to 128 with aspect ratio 1:1, 1:2 or 2:1,
// plus the wide sizes 8x1, 8x2, 16x1, 16x2, 16x4, 32x8, 64x16 and
// 128x32.
var sadSizes = buildSadSizes()

func buildSadSizes() map[[2]int]bool {
	m := make(map[[2]int]bool)
	for s := 2; s <= 128; s *= 2 {
		m[[2]int{s, s}] = true
		if s*2 <= 128 {
			m[[2]int{s, s * 2}] = true
			m[[2]int{s * 2, s}] = true
		}
	}
	for _, sz := range [][2]int{{8, 1}, {8, 2}, {16, 1}, {16, 2}, {16, 4}, {32, 8}, {64, 16}, {128, 32}} {
		m[sz] = true
	}
	return m
}

// Sad returns the sum of absolute differences between two equally shaped
// windows. Only the sizes enumerated in spec scenario S1 are supported;
// any other size is reported as an UnsupportedGeometry-style error.
func Sad[T Sample](src, ref Window[T]) (uint64, error) {
	if src.Width != ref.Width || src.Height != ref.Height {
		return 0, unsupportedSize("sad", src.Width, src.Height)
	}
	if !sadSizes[[2]int{src.Width, src.Height}] {
		return 0, unsupportedSize("sad", src.Width, src.Height)
	}
	return SadUnchecked(src, ref), nil
}

// SadUnchecked computes SAD without validating the block size; used by the
// search where the caller already knows the size is valid, to avoid a map
// lookup per candidate vector.
func SadUnchecked[T Sample](src, ref Window[T]) uint64 {
	var sum uint64
	for y := 0; y < src.Height; y++ {
		sRow := src.Row(y)
		rRow := ref.Row(y)
		for x := 0; x < src.Width; x++ {
			s := int64(sRow[x])
			r := int64(rRow[x])
			d := s - r
			if d < 0 {
				d = -d
			}
			sum += uint64(d)
		}
	}
	return sum
}
