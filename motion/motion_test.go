package motion

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/mvio"
	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/plane"
)

func plainSource(buf []uint8, w, h int) plane.Source[uint8] {
	return plane.Source[uint8]{Y: pixel.Window[uint8]{Base: buf, Stride: w, Width: w, Height: h}}
}

// shiftedPlanes builds a w x h luma source and a ref shifted by
// (dx, dy) samples, replicating edges so the shift stays well-defined.
// For a positive shift the source repeats its edge sample over its last
// dx columns and dy rows, so that blocks at the right and bottom edges
// still match exactly against the ref's replicated border padding.
func shiftedPlanes(w, h int, dx, dy int) (src, ref []uint8) {
	src = make([]uint8, w*h)
	ref = make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := x, y
			if dx > 0 && px > w-1-dx {
				px = w - 1 - dx
			}
			if dy > 0 && py > h-1-dy {
				py = h - 1 - dy
			}
			v := uint8((px*7 + py*13) % 251)
			src[y*w+x] = v
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x-dx, y-dy
			if sx < 0 {
				sx = 0
			}
			if sx >= w {
				sx = w - 1
			}
			if sy < 0 {
				sy = 0
			}
			if sy >= h {
				sy = h - 1
			}
			ref[y*w+x] = src[sy*w+sx]
		}
	}
	return src, ref
}

func TestSearchMVsFindsExactShift(t *testing.T) {
	const w, h = 64, 64
	srcBuf, refBuf := shiftedPlanes(w, h, 4, 0)

	srcSource := plainSource(srcBuf, w, h)
	refSource := plainSource(refBuf, w, h)

	superCfg := config.DefaultSuperConfig()
	superCfg.Chroma = false
	superCfg.Levels = 2
	superCfg.Pel = 1

	srcGof, err := BuildSuper[uint8](srcSource, superCfg)
	if err != nil {
		t.Fatalf("BuildSuper(src): %v", err)
	}
	refGof, err := BuildSuper[uint8](refSource, superCfg)
	if err != nil {
		t.Fatalf("BuildSuper(ref): %v", err)
	}

	analyseCfg := config.DefaultAnalyseConfig()
	analyseCfg.BlkSizeX, analyseCfg.BlkSizeY = 8, 8
	analyseCfg.PelSearch = 1
	analyseCfg.Global = false
	analyseCfg.BadSad = 0

	out, g, err := SearchMVs[uint8](srcGof, refGof, analyseCfg)
	if err != nil {
		t.Fatalf("SearchMVs: %v", err)
	}
	if len(out.Levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(out.Levels))
	}

	finest := out.Levels[len(out.Levels)-1]
	for i, v := range finest.Vectors {
		if v.Dx != 4 || v.Dy != 0 || v.Sad != 0 {
			t.Fatalf("vector %d = %+v, want {Dx:4 Dy:0 Sad:0}", i, v)
		}
	}

	divided := ExtraDivide[uint8](out, g)
	if divided.DivideBlock != nil {
		t.Fatalf("DivideBlock set with DivideNone config")
	}

	buf := out.Marshal()
	dims := make([][2]int, len(g.Planes))
	for i, pob := range g.Planes {
		dims[len(g.Planes)-1-i] = [2]int{pob.BlkX, pob.BlkY}
	}
	roundTripped, err := mvio.Unmarshal(buf, dims, nil)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(out.Levels, roundTripped.Levels); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExtraDivideInheritsParentQuarterSad(t *testing.T) {
	const w, h = 32, 32
	srcBuf, refBuf := shiftedPlanes(w, h, 2, 2)
	srcSource := plainSource(srcBuf, w, h)
	refSource := plainSource(refBuf, w, h)

	superCfg := config.DefaultSuperConfig()
	superCfg.Chroma = false
	superCfg.Levels = 1
	superCfg.Pel = 1

	srcGof, err := BuildSuper[uint8](srcSource, superCfg)
	if err != nil {
		t.Fatalf("BuildSuper(src): %v", err)
	}
	refGof, err := BuildSuper[uint8](refSource, superCfg)
	if err != nil {
		t.Fatalf("BuildSuper(ref): %v", err)
	}

	analyseCfg := config.DefaultAnalyseConfig()
	analyseCfg.BlkSizeX, analyseCfg.BlkSizeY = 8, 8
	analyseCfg.PelSearch = 1
	analyseCfg.BadSad = 0
	analyseCfg.Divide = config.DivideOriginal

	out, g, err := SearchMVs[uint8](srcGof, refGof, analyseCfg)
	if err != nil {
		t.Fatalf("SearchMVs: %v", err)
	}

	divided := ExtraDivide[uint8](out, g)
	if divided.DivideBlock == nil {
		t.Fatal("DivideBlock is nil, want a divided grid")
	}
	finest := out.Levels[len(out.Levels)-1]
	want := finest.Vectors[0].Sad >> 2
	w2 := divided.DivideBlock.BlkX
	subIdx := []int{0, 1, w2, w2 + 1} // the four sub-blocks of parent block (0,0).
	for _, i := range subIdx {
		v := divided.DivideBlock.Vectors[i]
		if v.Sad != want {
			t.Errorf("sub-block %d sad = %d, want %d", i, v.Sad, want)
		}
	}
}

