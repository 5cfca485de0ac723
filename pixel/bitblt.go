package pixel

// Bitblt copies a rectangle of rowSize samples by height rows from src to
// dst, row by row. When both windows are contiguous (stride equals
// rowSize) the whole rectangle is copied in one pass.
func Bitblt[T Sample](dst, src Window[T], rowSize, height int) {
	if dst.Stride == rowSize && src.Stride == rowSize {
		n := rowSize * height
		copy(dst.Base[:n], src.Base[:n])
		return
	}
	for y := 0; y < height; y++ {
		dOff := y * dst.Stride
		sOff := y * src.Stride
		copy(dst.Base[dOff:dOff+rowSize], src.Base[sOff:sOff+rowSize])
	}
}
