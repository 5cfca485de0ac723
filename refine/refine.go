// Package refine implements the sub-pel upsampling filters used to build
// a plane's half-pel and quarter-pel sibling rasters: bilinear, bicubic
// and Wiener (6-tap), each with independent horizontal and vertical
// passes.
package refine

import (
	"fmt"

	"github.com/ausocean/motionvec/pixel"
)

// Method names the sub-pel interpolation kernel used to build a plane's
// half-pel siblings.
type Method int

const (
	MethodBilinear Method = iota
	MethodBicubic
	MethodWiener
)

func (m Method) String() string {
	switch m {
	case MethodBilinear:
		return "bilinear"
	case MethodBicubic:
		return "bicubic"
	case MethodWiener:
		return "wiener"
	default:
		return "unknown"
	}
}

// maxSample returns the saturation ceiling (1<<bitsPerSample)-1.
func maxSample(bitsPerSample int) int32 {
	return int32(1)<<uint(bitsPerSample) - 1
}

func clamp32(v, max int32) int32 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Horizontal writes the horizontal-half sibling of src into dst, both
// windows the same size as src, using the chosen method.
func Horizontal[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int, m Method) error {
	switch m {
	case MethodBilinear:
		bilinearHorizontal(dst, src)
	case MethodBicubic:
		bicubicHorizontal(dst, src, bitsPerSample)
	case MethodWiener:
		wienerHorizontal(dst, src, bitsPerSample)
	default:
		return fmt.Errorf("refine: unknown method %d", int(m))
	}
	return nil
}

// Vertical writes the vertical-half sibling of src into dst.
func Vertical[T pixel.Sample](dst, src pixel.Window[T], bitsPerSample int, m Method) error {
	switch m {
	case MethodBilinear:
		bilinearVertical(dst, src)
	case MethodBicubic:
		bicubicVertical(dst, src, bitsPerSample)
	case MethodWiener:
		wienerVertical(dst, src, bitsPerSample)
	default:
		return fmt.Errorf("refine: unknown method %d", int(m))
	}
	return nil
}

// Diagonal writes the diagonal-half sibling, a straight bilinear 2x2 tile
// average regardless of method (spec §4.3: diagonal is always bilinear).
func Diagonal[T pixel.Sample](dst, src pixel.Window[T]) {
	bilinearDiagonal(dst, src)
}

// QuarterAverage builds a quarter-pel sibling as the bilinear average of
// two already-built siblings (integer and half-pel), per spec §4.3's
// pel=4 cascade.
func QuarterAverage[T pixel.Sample](dst, a, b pixel.Window[T]) {
	pixel.Average2(dst, a, b, dst.Width, dst.Height)
}
