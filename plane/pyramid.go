package plane

import (
	"fmt"
	"math/bits"

	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/reduce"
	"github.com/ausocean/motionvec/refine"
)

// Config gathers the build_super parameters of the reference pyramid.
type Config struct {
	HPad, VPad    int
	Pel           int
	Levels        int // 0 means auto: log2(min(w,h)/BlockSize) + 1.
	Chroma        bool
	Sharp         refine.Method
	RFilter       reduce.Filter
	XRatioUV      int
	YRatioUV      int
	BitsPerSample int
	BlockSize     int // used only for the auto level count.
}

// DefaultConfig returns the spec's documented build_super defaults.
func DefaultConfig() Config {
	return Config{
		HPad: 16, VPad: 16,
		Pel:           2,
		Chroma:        true,
		Sharp:         refine.MethodWiener,
		RFilter:       reduce.Bilinear,
		XRatioUV:      2,
		YRatioUV:      2,
		BitsPerSample: 8,
		BlockSize:     8,
	}
}

// Source is the host-provided read view into one undistorted input
// frame's planes, with no padding.
type Source[T pixel.Sample] struct {
	Y, U, V pixel.Window[T]
}

// GroupOfFrames is the coarse-to-fine reference pyramid: index 0 is
// full resolution, each deeper index halves width and height.
type GroupOfFrames[T pixel.Sample] struct {
	Levels []*Frame[T]
}

// autoLevels computes log2(min(w,h)/blockSize) + 1, floored at 1.
func autoLevels(w, h, blockSize int) int {
	if blockSize <= 0 {
		blockSize = 1
	}
	m := w
	if h < m {
		m = h
	}
	ratio := m / blockSize
	if ratio < 1 {
		return 1
	}
	return bits.Len(uint(ratio))
}

// BuildSuper constructs the full pyramid from one source frame: level
// 0 is the padded, sub-pel-refined copy of src; each deeper level is
// the reduction of its parent, always at pel=1.
func BuildSuper[T pixel.Sample](src Source[T], cfg Config) (*GroupOfFrames[T], error) {
	if cfg.Pel != 1 && cfg.Pel != 2 && cfg.Pel != 4 {
		return nil, fmt.Errorf("plane: build_super: invalid pel %d", cfg.Pel)
	}
	width, height := src.Y.Width, src.Y.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plane: build_super: empty source frame")
	}

	levels := cfg.Levels
	if levels == 0 {
		levels = autoLevels(width, height, cfg.BlockSize)
	}
	if levels < 1 {
		return nil, fmt.Errorf("plane: build_super: levels must be >= 1, got %d", levels)
	}

	gof := &GroupOfFrames[T]{Levels: make([]*Frame[T], levels)}

	fc0 := FrameConfig{
		Width: width, Height: height,
		Pel: cfg.Pel, HPad: cfg.HPad, VPad: cfg.VPad,
		XRatioUV: cfg.XRatioUV, YRatioUV: cfg.YRatioUV,
		BitsPerSample: cfg.BitsPerSample, Chroma: cfg.Chroma,
	}
	frame0, err := NewFrame[T](fc0)
	if err != nil {
		return nil, fmt.Errorf("plane: build_super: level 0: %w", err)
	}
	if err := copySource(frame0, src); err != nil {
		return nil, fmt.Errorf("plane: build_super: level 0: %w", err)
	}
	frame0.FillBorders()
	if err := frame0.RefineInto(cfg.Sharp); err != nil {
		return nil, fmt.Errorf("plane: build_super: level 0 refine: %w", err)
	}
	gof.Levels[0] = frame0

	for lvl := 1; lvl < levels; lvl++ {
		prev := gof.Levels[lvl-1]
		prevY := prev.Plane(Y)
		fc := FrameConfig{
			Width: prevY.Width / 2, Height: prevY.Height / 2,
			Pel: 1, HPad: cfg.HPad, VPad: cfg.VPad,
			XRatioUV: cfg.XRatioUV, YRatioUV: cfg.YRatioUV,
			BitsPerSample: cfg.BitsPerSample, Chroma: cfg.Chroma,
		}
		next, err := NewFrame[T](fc)
		if err != nil {
			return nil, fmt.Errorf("plane: build_super: level %d: %w", lvl, err)
		}
		if err := prev.ReduceInto(next, nil, cfg.RFilter); err != nil {
			return nil, fmt.Errorf("plane: build_super: level %d reduce: %w", lvl, err)
		}
		gof.Levels[lvl] = next
	}

	return gof, nil
}

// copySource copies each active plane of src into frame's integer
// views.
func copySource[T pixel.Sample](frame *Frame[T], src Source[T]) error {
	pixel.Bitblt(frame.Plane(Y).IntegerView(), src.Y, src.Y.Width, src.Y.Height)
	if !frame.Cfg.Chroma {
		return nil
	}
	if up := frame.Plane(U); up != nil {
		if src.U.Width != up.Width || src.U.Height != up.Height {
			return fmt.Errorf("U plane size mismatch: src %dx%d, frame %dx%d", src.U.Width, src.U.Height, up.Width, up.Height)
		}
		pixel.Bitblt(up.IntegerView(), src.U, src.U.Width, src.U.Height)
	}
	if vp := frame.Plane(V); vp != nil {
		if src.V.Width != vp.Width || src.V.Height != vp.Height {
			return fmt.Errorf("V plane size mismatch: src %dx%d, frame %dx%d", src.V.Width, src.V.Height, vp.Width, vp.Height)
		}
		pixel.Bitblt(vp.IntegerView(), src.V, src.V.Width, src.V.Height)
	}
	return nil
}
