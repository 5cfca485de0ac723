// Package plane implements the pixel-pyramid data types of the motion
// estimation engine: Plane (one padded raster plus its sub-pel
// siblings), Frame (the Y/U/V planes of one image) and GroupOfFrames
// (the coarse-to-fine pyramid built over a Frame).
package plane

import (
	"fmt"

	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/reduce"
	"github.com/ausocean/motionvec/refine"
)

// Plane owns one padded raster and, for pel > 1, its pel^2 sub-pel
// sibling rasters, all sharing a single backing allocation.
//
// Sibling index layout: for a query fractional offset (fx, fy) with
// fx, fy in [0, pel), the sibling holding that sub-pel phase is at index
// fy*pel + fx. Index 0 (fx=0, fy=0) is always the integer raster.
type Plane[T pixel.Sample] struct {
	Width, Height int
	HPad, VPad    int
	Pitch         int
	Pel           int
	BitsPerSample int

	buf          []T
	subpelOffset []int // len == Pel*Pel; base offset of the whole padded rectangle for each sibling.
}

// rasterLen is the number of samples in one padded raster (integer or
// sibling), pitch * (height + 2*vpad).
func (p *Plane[T]) rasterLen() int {
	return p.Pitch * (p.Height + 2*p.VPad)
}

// New allocates a Plane for the given logical size, padding and sub-pel
// level. Pitch is chosen as width + 2*hpad, the minimum satisfying the
// spec's pitch >= width + 2*hpad invariant.
func New[T pixel.Sample](width, height, hpad, vpad, pel, bitsPerSample int) (*Plane[T], error) {
	if pel != 1 && pel != 2 && pel != 4 {
		return nil, fmt.Errorf("plane: invalid pel %d, must be 1, 2 or 4", pel)
	}
	p := &Plane[T]{
		Width: width, Height: height,
		HPad: hpad, VPad: vpad,
		Pitch: width + 2*hpad,
		Pel:   pel, BitsPerSample: bitsPerSample,
	}
	numSiblings := pel * pel
	raster := p.rasterLen()
	p.buf = make([]T, raster*numSiblings)
	p.subpelOffset = make([]int, numSiblings)
	for i := range p.subpelOffset {
		p.subpelOffset[i] = i * raster
	}
	return p, nil
}

// siblingIndex maps a fractional sub-pel phase to its sibling index.
func (p *Plane[T]) siblingIndex(fx, fy int) int {
	return fy*p.Pel + fx
}

// fullView returns a window over the whole padded rectangle (width +
// 2*hpad by height + 2*vpad) of the given sibling.
func (p *Plane[T]) fullView(sibling int) pixel.Window[T] {
	return pixel.Window[T]{
		Base:   p.buf[p.subpelOffset[sibling]:],
		Stride: p.Pitch,
		Width:  p.Width + 2*p.HPad,
		Height: p.Height + 2*p.VPad,
	}
}

// interiorBase returns the index of the top-left interior pixel for a
// given sibling.
func (p *Plane[T]) interiorBase(sibling int) int {
	return p.subpelOffset[sibling] + p.VPad*p.Pitch + p.HPad
}

// IntegerView returns a window over the integer (non-sub-pel) raster's
// active width x height area.
func (p *Plane[T]) IntegerView() pixel.Window[T] {
	return p.viewAt(0)
}

// SubpelView returns a window over the i-th sub-pel sibling's active
// area, using the fy*pel+fx index convention.
func (p *Plane[T]) SubpelView(i int) pixel.Window[T] {
	return p.viewAt(i)
}

// SubpelViewAt returns the sibling view for fractional phase (fx, fy).
func (p *Plane[T]) SubpelViewAt(fx, fy int) pixel.Window[T] {
	return p.viewAt(p.siblingIndex(fx, fy))
}

func (p *Plane[T]) viewAt(sibling int) pixel.Window[T] {
	return pixel.Window[T]{
		Base:   p.buf[p.interiorBase(sibling):],
		Stride: p.Pitch,
		Width:  p.Width,
		Height: p.Height,
	}
}

// WindowAt returns a window of size w x h anchored at interior-relative
// coordinate (x, y) of the given sibling, where x may range over
// [-hpad, width+hpad) and y over [-vpad, height+vpad). Used by block
// search to read candidate windows that extend into the padding.
func (p *Plane[T]) WindowAt(sibling, x, y, w, h int) pixel.Window[T] {
	raster := p.buf[p.subpelOffset[sibling]:]
	base := (p.VPad+y)*p.Pitch + (p.HPad + x)
	return pixel.Window[T]{Base: raster[base:], Stride: p.Pitch, Width: w, Height: h}
}

// FillBorders replicates every sibling's interior into its hpad/vpad
// border bands.
func (p *Plane[T]) FillBorders() {
	for i := range p.subpelOffset {
		pixel.PadBorders(p.buf, p.Pitch, p.HPad, p.VPad, p.Width, p.Height, p.subpelOffset[i])
	}
}

// ReduceInto downscales p's integer raster into dst's integer raster
// (dst must be exactly half width and height) using the chosen filter,
// then pads dst's borders. scratch must be sized for
// p.Width * dst.Height samples.
func (p *Plane[T]) ReduceInto(dst *Plane[T], scratch []T, filter reduce.Filter) error {
	if err := reduce.Reduce(dst.IntegerView(), p.IntegerView(), scratch, filter); err != nil {
		return err
	}
	dst.FillBorders()
	return nil
}

// RefineInto builds every sub-pel sibling of p from its integer raster
// using the chosen interpolation method, then pads each sibling's
// borders. A no-op when p.Pel == 1.
func (p *Plane[T]) RefineInto(method refine.Method) error {
	if p.Pel == 1 {
		return nil
	}

	half := p.Pel / 2
	integer := p.IntegerView()

	hHalf := p.SubpelViewAt(half, 0)
	if err := refine.Horizontal(hHalf, integer, p.BitsPerSample, method); err != nil {
		return err
	}
	vHalf := p.SubpelViewAt(0, half)
	if err := refine.Vertical(vHalf, integer, p.BitsPerSample, method); err != nil {
		return err
	}
	dHalf := p.SubpelViewAt(half, half)
	refine.Diagonal(dHalf, integer)

	// Quarter (and finer) phases: bilinear average of the nearest
	// already-built coarser-grid siblings along each axis that needs
	// refining. This is a documented approximation for pel=4 (spec
	// §4.3 only mandates "bilinear averaging of integer and half-pel
	// siblings", not an exact position); it is not a spec-tested
	// bit-exact path.
	for fy := 0; fy < p.Pel; fy++ {
		for fx := 0; fx < p.Pel; fx++ {
			if fx%half == 0 && fy%half == 0 {
				continue // already built above.
			}
			px, py := (fx/half)*half, (fy/half)*half
			qx, qy := px, py
			if fx%half != 0 {
				qx = px + half
			}
			if fy%half != 0 {
				qy = py + half
			}
			if qx >= p.Pel {
				qx = px
			}
			if qy >= p.Pel {
				qy = py
			}
			a := p.SubpelViewAt(px, py)
			b := p.SubpelViewAt(qx, qy)
			dst := p.SubpelViewAt(fx, fy)
			refine.QuarterAverage(dst, a, b)
		}
	}

	p.FillBorders()
	return nil
}
