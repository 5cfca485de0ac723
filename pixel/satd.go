package pixel

// satdSizes is the set of (width, height) pairs the SATD kernel supports.
var satdSizes = map[[2]int]bool{
	{4, 4}: true, {8, 4}: true, {8, 8}: true, {16, 8}: true, {16, 16}: true,
	{32, 16}: true, {32, 32}: true, {64, 32}: true, {64, 64}: true,
	{128, 64}: true, {128, 128}: true,
}

// Satd returns the sum of absolute values of a 2-D 4x4 Hadamard transform
// applied to the block difference, tiled over the block in 4x4 pieces
// (the spec's 8x4 partitioning is two independent 4x4 transforms side by
// side; summing them individually is numerically identical since no
// packed-word overflow is possible in this unpacked implementation).
func Satd[T Sample](src, ref Window[T]) (uint64, error) {
	if src.Width != ref.Width || src.Height != ref.Height {
		return 0, unsupportedSize("satd", src.Width, src.Height)
	}
	if !satdSizes[[2]int{src.Width, src.Height}] {
		return 0, unsupportedSize("satd", src.Width, src.Height)
	}
	var sum uint64
	for y := 0; y < src.Height; y += 4 {
		for x := 0; x < src.Width; x += 4 {
			sum += satd4x4(src, ref, x, y)
		}
	}
	return sum, nil
}

// hadamard4 applies the 1-D 4-point Hadamard (Walsh-Hadamard) butterfly.
func hadamard4(a, b, c, d int64) (int64, int64, int64, int64) {
	s0, s1 := a+b, a-b
	s2, s3 := c+d, c-d
	return s0 + s2, s1 + s3, s0 - s2, s1 - s3
}

// satd4x4 computes the SATD of a single 4x4 tile at (x0, y0) in src/ref.
func satd4x4[T Sample](src, ref Window[T], x0, y0 int) uint64 {
	var diff [4][4]int64
	for y := 0; y < 4; y++ {
		sRow := src.Row(y0 + y)
		rRow := ref.Row(y0 + y)
		for x := 0; x < 4; x++ {
			diff[y][x] = int64(sRow[x0+x]) - int64(rRow[x0+x])
		}
	}

	// Transform each row.
	var rowT [4][4]int64
	for y := 0; y < 4; y++ {
		rowT[y][0], rowT[y][1], rowT[y][2], rowT[y][3] = hadamard4(diff[y][0], diff[y][1], diff[y][2], diff[y][3])
	}

	// Transform each resulting column.
	var sum uint64
	for x := 0; x < 4; x++ {
		c0, c1, c2, c3 := hadamard4(rowT[0][x], rowT[1][x], rowT[2][x], rowT[3][x])
		sum += absI64(c0) + absI64(c1) + absI64(c2) + absI64(c3)
	}
	return sum >> 1
}

func absI64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
