package pixel

// PadBorders replicates the interior of a width x height active region
// out into its hpad/vpad border bands. buf is the backing storage of the
// whole padded rectangle (pitch samples per row, height+2*vpad rows);
// offset is the index of the first sample of that whole rectangle, and
// the interior's top-left pixel therefore sits at
// offset + vpad*pitch + hpad.
//
// The edge columns/rows are replicated from the adjacent interior
// row/column; the four corners follow from replicating the (already
// left/right extended) top and bottom interior rows vertically, which
// is equivalent to, and idempotent with, filling the corners from the
// matching corner pixel directly.
func PadBorders[T Sample](buf []T, pitch, hpad, vpad, width, height, offset int) {
	interior := offset + vpad*pitch + hpad

	// Extend left and right columns of every interior row.
	for y := 0; y < height; y++ {
		rowStart := interior + y*pitch
		left := buf[rowStart]
		right := buf[rowStart+width-1]
		for x := 1; x <= hpad; x++ {
			buf[rowStart-x] = left
			buf[rowStart+width-1+x] = right
		}
	}

	fullWidth := width + 2*hpad
	topRow := offset + vpad*pitch
	bottomRow := offset + (vpad+height-1)*pitch

	// Extend the top band upward, replicating the topmost (now
	// left/right padded) interior row.
	for y := 1; y <= vpad; y++ {
		dst := topRow - y*pitch
		copy(buf[dst:dst+fullWidth], buf[topRow:topRow+fullWidth])
	}

	// Extend the bottom band downward, replicating the bottommost row.
	for y := 1; y <= vpad; y++ {
		dst := bottomRow + y*pitch
		copy(buf[dst:dst+fullWidth], buf[bottomRow:bottomRow+fullWidth])
	}
}
