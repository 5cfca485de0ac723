package refine

import "github.com/ausocean/motionvec/pixel"

// wienerHorizontal: clamp(0, max, ((-(a+f) -5(b+e) +20(c+d)) + 16) >> 5)
// over six consecutive samples; three edge positions on each side use
// 1-D average; last column copied.
func wienerHorizontal[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int) {
	max := maxSample(bitsPerSample)
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		sRow := src.Row(y)
		dRow := dst.Row(y)

		a0 := uint32(sRow[0])
		b0 := uint32(sRow[1])
		dRow[0] = T((a0 + b0 + 1) / 2)
		c0 := uint32(sRow[2])
		dRow[1] = T((b0 + c0 + 1) / 2)
		d0 := uint32(sRow[3])
		dRow[2] = T((c0 + d0 + 1) / 2)

		for x := 3; x < w-4; x++ {
			a := int32(sRow[x-2])
			b := int32(sRow[x-1])
			c := int32(sRow[x])
			d := int32(sRow[x+1])
			e := int32(sRow[x+2])
			f := int32(sRow[x+3])
			m2 := (c + d) * 4
			m2 -= b + e
			m2 *= 5
			v := (a + f + m2 + 16) >> 5
			dRow[x] = T(clamp32(v, max))
		}

		for x := w - 4; x < w-1; x++ {
			a := uint32(sRow[x])
			b := uint32(sRow[x+1])
			dRow[x] = T((a + b + 1) / 2)
		}

		dRow[w-1] = sRow[w-1]
	}
}

// wienerVertical is the symmetric row-wise filter.
func wienerVertical[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int) {
	max := maxSample(bitsPerSample)
	w, h := src.Width, src.Height

	for y := 0; y < 3; y++ {
		r0 := src.Row(y)
		r1 := src.Row(y + 1)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := uint32(r0[x])
			b := uint32(r1[x])
			dRow[x] = T((a + b + 1) / 2)
		}
	}

	for y := 3; y < h-4; y++ {
		rm2 := src.Row(y - 2)
		rm1 := src.Row(y - 1)
		r0 := src.Row(y)
		r1 := src.Row(y + 1)
		r2 := src.Row(y + 2)
		r3 := src.Row(y + 3)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := int32(rm2[x])
			b := int32(rm1[x])
			c := int32(r0[x])
			d := int32(r1[x])
			e := int32(r2[x])
			f := int32(r3[x])
			m2 := (c + d) * 4
			m2 -= b + e
			m2 *= 5
			v := (a + f + m2 + 16) >> 5
			dRow[x] = T(clamp32(v, max))
		}
	}

	for y := h - 4; y < h-1; y++ {
		r0 := src.Row(y)
		r1 := src.Row(y + 1)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := uint32(r0[x])
			b := uint32(r1[x])
			dRow[x] = T((a + b + 1) / 2)
		}
	}

	copy(dst.Row(h-1), src.Row(h-1))
}
