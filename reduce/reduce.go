// Package reduce implements the two-pass separable pyramid downscalers:
// average, triangle, bilinear, quadratic and cubic. Every reducer halves
// both dimensions of its source. All but average filter vertically into a
// scratch buffer first and then horizontally into the destination;
// average computes each 2x2 box in one combined pass.
package reduce

import (
	"fmt"

	"github.com/ausocean/motionvec/pixel"
)

// Filter names the downscale kernel a GroupOfFrames level uses to build
// the next, coarser level.
type Filter int

const (
	Average Filter = iota
	Triangle
	Bilinear
	Quadratic
	Cubic
)

func (f Filter) String() string {
	switch f {
	case Average:
		return "average"
	case Triangle:
		return "triangle"
	case Bilinear:
		return "bilinear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// pass1D is the shape shared by every filter's vertical and horizontal
// pass: it reads a pitch-separated source and writes a pitch-separated
// destination of half the extent along the filtered axis.
type pass1D[T pixel.Sample] func(dst, src []T, dstPitch, srcPitch, dstWidth, dstHeight int)

type filterImpl[T pixel.Sample] struct {
	vertical   pass1D[T]
	horizontal pass1D[T]
}

func impls[T pixel.Sample](f Filter) (filterImpl[T], error) {
	switch f {
	case Triangle:
		return filterImpl[T]{triangleVertical[T], triangleHorizontal[T]}, nil
	case Bilinear:
		return filterImpl[T]{bilinearVertical[T], bilinearHorizontal[T]}, nil
	case Quadratic:
		return filterImpl[T]{quadraticVertical[T], quadraticHorizontal[T]}, nil
	case Cubic:
		return filterImpl[T]{cubicVertical[T], cubicHorizontal[T]}, nil
	default:
		return filterImpl[T]{}, fmt.Errorf("reduce: unknown filter %d", int(f))
	}
}

// Reduce downscales src into dst (dst.Width == src.Width/2, dst.Height ==
// src.Height/2) using the chosen filter. scratch must have capacity for
// at least src.Width*dst.Height samples; it holds the intermediate,
// vertically-filtered image at full width and half height.
func Reduce[T pixel.Sample](dst, src pixel.Window[T], scratch []T, filter Filter) error {
	dstWidth, dstHeight := src.Width/2, src.Height/2
	if dst.Width != dstWidth || dst.Height != dstHeight {
		return fmt.Errorf("reduce: dst size %dx%d does not match halved src size %dx%d", dst.Width, dst.Height, dstWidth, dstHeight)
	}

	// Average is a true 2x2 box filter: computing it as two separate
	// rounded passes would compound rounding error, so it runs as one
	// combined pass straight from src to dst rather than through the
	// shared vertical/horizontal scratch pipeline the tent-shaped
	// filters below use.
	if filter == Average {
		averageCombined(dst.Base, src.Base, dst.Stride, src.Stride, dstWidth, dstHeight)
		return nil
	}

	if len(scratch) < src.Width*dstHeight {
		return fmt.Errorf("reduce: scratch too small: have %d, need %d", len(scratch), src.Width*dstHeight)
	}
	impl, err := impls[T](filter)
	if err != nil {
		return err
	}
	impl.vertical(scratch, src.Base, src.Width, src.Stride, src.Width, dstHeight)
	impl.horizontal(dst.Base, scratch, dst.Stride, src.Width, dstWidth, dstHeight)
	return nil
}

// clampToSample narrows a u32 filter result to the sample type,
// saturating at the type's maximum (255 or 65535).
func clampToSample[T pixel.Sample](v uint32) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if v > 255 {
			v = 255
		}
	case uint16:
		if v > 65535 {
			v = 65535
		}
	}
	return T(v)
}
