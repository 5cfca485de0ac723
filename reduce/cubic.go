package reduce

import "github.com/ausocean/motionvec/pixel"

// cubicVertical halves height with a 6-tap filter: edge lines use
// row-pair averaging, interior lines use
// (a + 5(b+e) + 10(c+d) + f + 16) / 32 over six consecutive source rows.
func cubicVertical[T pixel.Sample](dst, src []T, dstPitch, srcPitch, dstWidth, dstHeight int) {
	for x := 0; x < dstWidth; x++ {
		a := uint32(src[x])
		b := uint32(src[x+srcPitch])
		dst[x] = clampToSample[T]((a + b + 1) / 2)
	}

	for y := 1; y < dstHeight-1; y++ {
		rowBase := y * 2 * srcPitch
		dstRow := dst[y*dstPitch:]
		for x := 0; x < dstWidth; x++ {
			a := uint32(src[rowBase+x-2*srcPitch])
			b := uint32(src[rowBase+x-srcPitch])
			c := uint32(src[rowBase+x])
			d := uint32(src[rowBase+x+srcPitch])
			e := uint32(src[rowBase+x+2*srcPitch])
			f := uint32(src[rowBase+x+3*srcPitch])
			dstRow[x] = clampToSample[T]((a + 5*(b+e) + 10*(c+d) + f + 16) / 32)
		}
	}

	if dstHeight > 1 {
		rowBase := (dstHeight - 1) * 2 * srcPitch
		dstRow := dst[(dstHeight-1)*dstPitch:]
		for x := 0; x < dstWidth; x++ {
			a := uint32(src[rowBase+x])
			b := uint32(src[rowBase+x+srcPitch])
			dstRow[x] = clampToSample[T]((a + b + 1) / 2)
		}
	}
}

// cubicHorizontal is the symmetric column-wise pass.
func cubicHorizontal[T pixel.Sample](dst, src []T, dstPitch, srcPitch, dstWidth, dstHeight int) {
	for y := 0; y < dstHeight; y++ {
		srcRow := src[y*srcPitch:]
		dstRow := dst[y*dstPitch:]

		a := uint32(srcRow[0])
		b := uint32(srcRow[1])
		dstRow[0] = clampToSample[T]((a + b + 1) / 2)

		for x := 1; x < dstWidth-1; x++ {
			aa := uint32(srcRow[x*2-2])
			bb := uint32(srcRow[x*2-1])
			cc := uint32(srcRow[x*2])
			dd := uint32(srcRow[x*2+1])
			ee := uint32(srcRow[x*2+2])
			ff := uint32(srcRow[x*2+3])
			dstRow[x] = clampToSample[T]((aa + 5*(bb+ee) + 10*(cc+dd) + ff + 16) / 32)
		}

		if dstWidth > 1 {
			x := dstWidth - 1
			aa := uint32(srcRow[x*2])
			bb := uint32(srcRow[x*2+1])
			dstRow[x] = clampToSample[T]((aa + bb + 1) / 2)
		}
	}
}
