// Package pixel provides the low level block arithmetic kernels that the
// motion estimation engine builds on: block distortion (SAD, SATD), block
// luma sums, pairwise averaging, block copy and border replication.
//
// Every kernel operates on a rectangular window described by a base slice,
// a row stride and a width/height, so that a window may address the
// interior of a larger, padded buffer. Kernels never allocate and never
// fail on a supported size; unsupported sizes return an error rather than
// panicking, since block size is a caller-supplied, not compile-time,
// parameter in this implementation.
package pixel

import "fmt"

// Sample is the pixel element type a kernel can operate over.
type Sample interface {
	~uint8 | ~uint16
}

// Window is a view over a rectangular region of a pixel buffer. Base is
// the first sample of the window; Stride is the number of samples between
// the start of successive rows, which may exceed Width when the window
// sits inside a larger, padded plane.
type Window[T Sample] struct {
	Base   []T
	Stride int
	Width  int
	Height int
}

// At returns the sample at (x, y) within the window.
func (w Window[T]) At(x, y int) T {
	return w.Base[y*w.Stride+x]
}

// Set assigns the sample at (x, y) within the window.
func (w Window[T]) Set(x, y int, v T) {
	w.Base[y*w.Stride+x] = v
}

// Row returns the slice covering row y, exactly Width samples long.
func (w Window[T]) Row(y int) []T {
	off := y * w.Stride
	return w.Base[off : off+w.Width]
}

// unsupportedSize reports an unsupported (width, height) kernel argument
// as a plain error naming the kernel and the rejected size.
func unsupportedSize(kernel string, width, height int) error {
	return fmt.Errorf("%s: unsupported block size %dx%d", kernel, width, height)
}
