package pixel

// lumaSizes is the set of (width, height) pairs LumaSum supports.
var lumaSizes = map[[2]int]bool{
	{4, 4}: true, {8, 4}: true, {8, 8}: true, {16, 2}: true, {16, 8}: true,
	{16, 16}: true, {32, 16}: true, {32, 32}: true, {64, 32}: true,
	{64, 64}: true, {128, 64}: true, {128, 128}: true,
}

// LumaSum returns the sum of all samples in the window. Only the sizes
// enumerated by the spec are supported.
func LumaSum[T Sample](src Window[T]) (uint64, error) {
	if !lumaSizes[[2]int{src.Width, src.Height}] {
		return 0, unsupportedSize("luma_sum", src.Width, src.Height)
	}
	var sum uint64
	for y := 0; y < src.Height; y++ {
		row := src.Row(y)
		for x := 0; x < src.Width; x++ {
			sum += uint64(row[x])
		}
	}
	return sum, nil
}
