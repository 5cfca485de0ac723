package reduce

import "github.com/ausocean/motionvec/pixel"

// averageCombined computes dst[x,y] = round((a+b+c+d+2)/4) over the 2x2
// source tile at (2x,2y), in full 32-bit precision.
func averageCombined[T pixel.Sample](dst, src []T, dstPitch, srcPitch, dstWidth, dstHeight int) {
	for y := 0; y < dstHeight; y++ {
		srcRow := src[y*2*srcPitch:]
		dstRow := dst[y*dstPitch:]
		for x := 0; x < dstWidth; x++ {
			a := uint32(srcRow[x*2])
			b := uint32(srcRow[x*2+1])
			c := uint32(srcRow[x*2+srcPitch])
			d := uint32(srcRow[x*2+srcPitch+1])
			dstRow[x] = clampToSample[T]((a + b + c + d + 2) / 4)
		}
	}
}
