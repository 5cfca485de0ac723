package refine

import "github.com/ausocean/motionvec/pixel"

// bilinearHorizontal: dst[x,y] = ceil((src[x,y]+src[x+1,y])/2); last
// column copied.
func bilinearHorizontal[T pixel.Sample](dst, src pixel.Window[T]) {
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		sRow := src.Row(y)
		dRow := dst.Row(y)
		for x := 0; x < w-1; x++ {
			a := uint32(sRow[x])
			b := uint32(sRow[x+1])
			dRow[x] = T((a + b + 1) / 2)
		}
		dRow[w-1] = sRow[w-1]
	}
}

// bilinearVertical is the symmetric row-pair filter.
func bilinearVertical[T pixel.Sample](dst, src pixel.Window[T]) {
	w, h := src.Width, src.Height
	for y := 0; y < h-1; y++ {
		sRow := src.Row(y)
		sNext := src.Row(y + 1)
		dRow := dst.Row(y)
		for x := 0; x < w; x++ {
			a := uint32(sRow[x])
			b := uint32(sNext[x])
			dRow[x] = T((a + b + 1) / 2)
		}
	}
	copy(dst.Row(h-1), src.Row(h-1))
}

// bilinearDiagonal: round((a+b+c+d+2)/4) over each 2x2 tile; last row
// and last column handled by 1-D average; bottom-right pixel copied.
func bilinearDiagonal[T pixel.Sample](dst, src pixel.Window[T]) {
	w, h := src.Width, src.Height
	for y := 0; y < h-1; y++ {
		sRow := src.Row(y)
		sNext := src.Row(y + 1)
		dRow := dst.Row(y)
		for x := 0; x < w-1; x++ {
			a := uint32(sRow[x])
			b := uint32(sRow[x+1])
			c := uint32(sNext[x])
			d := uint32(sNext[x+1])
			dRow[x] = T((a + b + c + d + 2) / 4)
		}
		// Last column of this row: 1-D vertical average.
		a := uint32(sRow[w-1])
		b := uint32(sNext[w-1])
		dRow[w-1] = T((a + b + 1) / 2)
	}

	// Last row: 1-D horizontal average.
	lastSrc := src.Row(h - 1)
	lastDst := dst.Row(h - 1)
	for x := 0; x < w-1; x++ {
		a := uint32(lastSrc[x])
		b := uint32(lastSrc[x+1])
		lastDst[x] = T((a + b + 1) / 2)
	}
	// Bottom-right pixel copied.
	lastDst[w-1] = lastSrc[w-1]
}
