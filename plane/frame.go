package plane

import (
	"fmt"

	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/reduce"
	"github.com/ausocean/motionvec/refine"
)

// Component selects one of the three planes a Frame may carry.
type Component int

const (
	Y Component = iota
	U
	V
)

func (c Component) String() string {
	switch c {
	case Y:
		return "Y"
	case U:
		return "U"
	case V:
		return "V"
	default:
		return "unknown"
	}
}

// FrameConfig carries the construction parameters shared by every
// plane of a Frame.
type FrameConfig struct {
	Width, Height int
	Pel           int
	HPad, VPad    int
	XRatioUV      int // 1 or 2
	YRatioUV      int // 1 or 2
	BitsPerSample int
	Chroma        bool // when false, only Y is constructed.
}

// Frame owns one Plane per active component. Chroma planes (U, V) are
// sized by dividing luma width/height by the configured subsampling
// ratios. A Frame is a reusable container: successive input frames are
// written into the same allocation.
type Frame[T pixel.Sample] struct {
	Cfg    FrameConfig
	Planes map[Component]*Plane[T]
}

// NewFrame allocates the Y plane, and U/V planes when cfg.Chroma is
// set, at the given pyramid level's pel.
func NewFrame[T pixel.Sample](cfg FrameConfig) (*Frame[T], error) {
	if cfg.XRatioUV != 1 && cfg.XRatioUV != 2 {
		return nil, fmt.Errorf("plane: invalid x_ratio_uv %d", cfg.XRatioUV)
	}
	if cfg.YRatioUV != 1 && cfg.YRatioUV != 2 {
		return nil, fmt.Errorf("plane: invalid y_ratio_uv %d", cfg.YRatioUV)
	}

	f := &Frame[T]{Cfg: cfg, Planes: make(map[Component]*Plane[T])}

	yPlane, err := New[T](cfg.Width, cfg.Height, cfg.HPad, cfg.VPad, cfg.Pel, cfg.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("plane: Y: %w", err)
	}
	f.Planes[Y] = yPlane

	if !cfg.Chroma {
		return f, nil
	}

	cw, ch := cfg.Width/cfg.XRatioUV, cfg.Height/cfg.YRatioUV
	chpad, cvpad := cfg.HPad/cfg.XRatioUV, cfg.VPad/cfg.YRatioUV
	for _, c := range []Component{U, V} {
		p, err := New[T](cw, ch, chpad, cvpad, cfg.Pel, cfg.BitsPerSample)
		if err != nil {
			return nil, fmt.Errorf("plane: %v: %w", c, err)
		}
		f.Planes[c] = p
	}
	return f, nil
}

// Plane returns the named component's plane, or nil if inactive.
func (f *Frame[T]) Plane(c Component) *Plane[T] {
	return f.Planes[c]
}

// FillBorders pads every active plane's borders.
func (f *Frame[T]) FillBorders() {
	for _, p := range f.Planes {
		p.FillBorders()
	}
}

// ReduceInto downscales every active plane of f into the matching
// plane of dst, using per-component scratch buffers from scratch
// (keyed the same way as f.Planes; callers may pass nil for a
// component to have it allocated on demand).
func (f *Frame[T]) ReduceInto(dst *Frame[T], scratch map[Component][]T, filter reduce.Filter) error {
	for c, p := range f.Planes {
		dp := dst.Plane(c)
		if dp == nil {
			return fmt.Errorf("plane: reduce_into: destination frame missing component %v", c)
		}
		s := scratch[c]
		if s == nil {
			s = make([]T, p.Width*dp.Height)
		}
		if err := p.ReduceInto(dp, s, filter); err != nil {
			return fmt.Errorf("plane: reduce_into %v: %w", c, err)
		}
	}
	return nil
}

// RefineInto builds sub-pel siblings for every active plane of f.
func (f *Frame[T]) RefineInto(method refine.Method) error {
	for c, p := range f.Planes {
		if err := p.RefineInto(method); err != nil {
			return fmt.Errorf("plane: refine_into %v: %w", c, err)
		}
	}
	return nil
}
