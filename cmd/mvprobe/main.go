/*
DESCRIPTION
  mvprobe is a command-line driver for the motion estimation core: it
  reads a source and reference still image (PNG or JPEG), converts each
  to an 8-bit luma plane, runs the hierarchical block search between
  them, and writes the
  serialized vector field to a file, optionally printing a readable
  summary.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package mvprobe is a command-line driver for the motion package.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/motionvec/motion"
	"github.com/ausocean/motionvec/motion/config"
	"github.com/ausocean/motionvec/pixel"
	"github.com/ausocean/motionvec/plane"
)

const version = "v0.1.0"

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		srcPath     = flag.String("src", "", "path to the source still (PNG/JPEG)")
		refPath     = flag.String("ref", "", "path to the reference still (PNG/JPEG)")
		outPath     = flag.String("out", "mvs.out", "path to write the serialized vector field")
		blkSize     = flag.Uint("blocksize", 8, "block size in samples")
		pel         = flag.Int("pel", 2, "sub-pel precision: 1, 2 or 4")
		levels      = flag.Uint("levels", 0, "pyramid level count, 0 means auto")
		verbose     = flag.Bool("v", false, "print a per-level vector summary")
		targetW     = flag.Int("width", 0, "resize both stills to this width before searching, 0 keeps native size")
		targetH     = flag.Int("height", 0, "resize both stills to this height before searching, 0 keeps native size")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	log := logging.New(logging.Info, os.Stderr, false)

	if *srcPath == "" || *refPath == "" {
		log.Fatal("mvprobe: -src and -ref are required")
	}

	srcY, width, height, err := decodeLuma(*srcPath, *targetW, *targetH)
	if err != nil {
		log.Fatal("mvprobe: could not decode source", "error", err.Error())
	}
	refY, refWidth, refHeight, err := decodeLuma(*refPath, *targetW, *targetH)
	if err != nil {
		log.Fatal("mvprobe: could not decode reference", "error", err.Error())
	}
	if width != refWidth || height != refHeight {
		log.Fatal("mvprobe: source and reference dimensions differ")
	}

	superCfg := config.DefaultSuperConfig()
	superCfg.Pel = *pel
	superCfg.Levels = *levels
	superCfg.Chroma = false
	superCfg.BlockSize = *blkSize
	superCfg.Logger = log

	srcSource := plane.Source[uint8]{Y: pixel.Window[uint8]{Base: srcY, Stride: width, Width: width, Height: height}}
	refSource := plane.Source[uint8]{Y: pixel.Window[uint8]{Base: refY, Stride: width, Width: width, Height: height}}

	log.Info("building pyramids", "width", width, "height", height, "pel", *pel)
	srcGof, err := motion.BuildSuper[uint8](srcSource, superCfg)
	if err != nil {
		log.Fatal("mvprobe: build_super(src) failed", "error", err.Error())
	}
	refGof, err := motion.BuildSuper[uint8](refSource, superCfg)
	if err != nil {
		log.Fatal("mvprobe: build_super(ref) failed", "error", err.Error())
	}

	analyseCfg := config.DefaultAnalyseConfig()
	analyseCfg.BlkSizeX, analyseCfg.BlkSizeY = *blkSize, *blkSize
	analyseCfg.PelSearch = *pel
	analyseCfg.Logger = log

	log.Info("searching motion vectors", "levels", len(srcGof.Levels))
	out, g, err := motion.SearchMVs[uint8](srcGof, refGof, analyseCfg)
	if err != nil {
		log.Fatal("mvprobe: search_mvs failed", "error", err.Error())
	}
	out = motion.ExtraDivide[uint8](out, g)

	if *verbose {
		for i, lvl := range out.Levels {
			fmt.Printf("level %d: %dx%d blocks\n", i, lvl.BlkX, lvl.BlkY)
			for _, v := range lvl.Vectors {
				fmt.Printf("  dx=%d dy=%d sad=%d\n", v.Dx, v.Dy, v.Sad)
			}
		}
	}

	if err := os.WriteFile(*outPath, out.Marshal(), 0o644); err != nil {
		log.Fatal("mvprobe: could not write output", "error", err.Error())
	}
	log.Info("wrote vector field", "path", *outPath)
}

// decodeLuma decodes a still image into an 8-bit grayscale luma plane,
// scaling it to targetW x targetH first when both are non-zero.
func decodeLuma(path string, targetW, targetH int) (luma []uint8, width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, err
	}

	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if targetW > 0 && targetH > 0 {
		width, height = targetW, targetH
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)

	return gray.Pix, width, height, nil
}

