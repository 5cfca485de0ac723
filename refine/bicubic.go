package refine

import "github.com/ausocean/motionvec/pixel"

// bicubicHorizontal: clamp(0, max, (-(a+d)+9(b+c)+8)>>4) over four
// consecutive samples; two edge pixels on each side use 1-D average;
// last column copied.
func bicubicHorizontal[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int) {
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

		for x := 2; x < w-3; x++ {
			a := int32(sRow[x-1])
			b := int32(sRow[x])
			c := int32(sRow[x+1])
			d := int32(sRow[x+2])
			v := (-(a + d) + (b+c)*9 + 8) >> 4
			dRow[x] = T(clamp32(v, max))
		}

		for x := w - 3; x < w-1; x++ {
			a := uint32(sRow[x])
			b := uint32(sRow[x+1])
			dRow[x] = T((a + b + 1) / 2)
		}

		dRow[w-1] = sRow[w-1]
	}
}

// bicubicVertical is the symmetric row-wise filter.
func bicubicVertical[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int) {
	max := maxSample(bitsPerSample)
	w, h := src.Width, src.Height

	for y := 0; y < 2; y++ {
		r0 := src.Row(y)
		r1 := src.Row(y + 1)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := uint32(r0[x])
			b := uint32(r1[x])
			dRow[x] = T((a + b + 1) / 2)
		}
	}

	for y := 2; y < h-3; y++ {
		rm1 := src.Row(y - 1)
		r0 := src.Row(y)
		r1 := src.Row(y + 1)
		r2 := src.Row(y + 2)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := int32(rm1[x])
			b := int32(r0[x])
			c := int32(r1[x])
			d := int32(r2[x])
			v := (-(a + d) + (b+c)*9 + 8) >> 4
			dRow[x] = T(clamp32(v, max))
		}
	}

	for y := h - 3; y < h-1; y++ {
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
