// Package config holds the tunable parameters of the motion-estimation
// core: the pyramid-construction parameters (SuperConfig) and the
// per-level search parameters (AnalyseConfig), together with the
// validation and update machinery that mirrors the host's
// string-keyed control channel.
package config

import (
	"fmt"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/motionvec/reduce"
	"github.com/ausocean/motionvec/refine"
)

// SearchType names a single-block search strategy.
type SearchType int

const (
	SearchNStep SearchType = iota
	SearchLogarithmic
	SearchExhaustive
	SearchHex2
	SearchUMH
	SearchHorizontal
	SearchVertical
)

func (s SearchType) String() string {
	switch s {
	case SearchNStep:
		return "nstep"
	case SearchLogarithmic:
		return "logarithmic"
	case SearchExhaustive:
		return "exhaustive"
	case SearchHex2:
		return "hex2"
	case SearchUMH:
		return "umh"
	case SearchHorizontal:
		return "horizontal"
	case SearchVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// PenaltyLevel names how the length/new/zero/global penalty terms
// scale across pyramid levels.
type PenaltyLevel int

const (
	PenaltyNone PenaltyLevel = iota
	PenaltyLinear
	PenaltyQuadratic
)

// DivideMode names the §4.6 post-search block subdivision rule.
type DivideMode int

const (
	DivideNone DivideMode = iota
	DivideOriginal
	DivideMedian
)

// SuperConfig is the build_super parameter set (spec §6.1). Defaults
// match the spec's documented values.
type SuperConfig struct {
	HPad, VPad uint
	Pel        int
	Levels     uint // 0 means auto.
	Chroma     bool
	Sharp      refine.Method
	RFilter    reduce.Filter
	BlockSize  uint // used only for the auto level count.

	XRatioUV, YRatioUV int
	BitsPerSample      int

	Logger logging.Logger
}

// DefaultSuperConfig returns the spec-documented defaults.
func DefaultSuperConfig() SuperConfig {
	return SuperConfig{
		HPad: 16, VPad: 16,
		Pel:     2,
		Chroma:  true,
		Sharp:   refine.MethodWiener,
		RFilter: reduce.Bilinear,
		XRatioUV: 2, YRatioUV: 2,
		BitsPerSample: 8,
	}
}

// Validate defaults unset or out-of-range fields, logging each
// correction through c.Logger when set.
func (c *SuperConfig) Validate() error {
	if c.Pel != 1 && c.Pel != 2 && c.Pel != 4 {
		c.logInvalidField("Pel", 2)
		c.Pel = 2
	}
	if c.HPad == 0 {
		c.logInvalidField("HPad", 16)
		c.HPad = 16
	}
	if c.VPad == 0 {
		c.logInvalidField("VPad", 16)
		c.VPad = 16
	}
	if c.XRatioUV != 1 && c.XRatioUV != 2 {
		c.logInvalidField("XRatioUV", 2)
		c.XRatioUV = 2
	}
	if c.YRatioUV != 1 && c.YRatioUV != 2 {
		c.logInvalidField("YRatioUV", 2)
		c.YRatioUV = 2
	}
	if c.BitsPerSample == 0 {
		c.logInvalidField("BitsPerSample", 8)
		c.BitsPerSample = 8
	}
	return nil
}

func (c *SuperConfig) logInvalidField(name string, def interface{}) {
	if c.Logger != nil {
		c.Logger.Info(name+" bad or unset, defaulting", name, def)
	}
}

// AnalyseConfig is the search_mvs parameter set (spec §6.2).
type AnalyseConfig struct {
	BlkSizeX, BlkSizeY           uint
	SearchType, SearchTypeCoarse SearchType
	SearchParam                  int
	PelSearch                    int
	Lambda, LambdaSad            float64
	PenaltyNew                   float64
	PenaltyZero                  float64
	PenaltyGlobal                float64
	PenaltyLevel                 PenaltyLevel
	Global                       bool
	FieldShift                   int32
	DctMode                      int // 0..10
	BadSad                       uint64
	BadRange                     int32
	Meander                      bool
	TryMany                      bool
	OverlapX, OverlapY           uint
	IsBackward                   bool
	Divide                       DivideMode

	Logger logging.Logger
}

// DefaultAnalyseConfig returns reasonable defaults for fields the spec
// leaves to the host (block size, search strategy, penalties).
func DefaultAnalyseConfig() AnalyseConfig {
	return AnalyseConfig{
		BlkSizeX: 8, BlkSizeY: 8,
		SearchType:       SearchNStep,
		SearchTypeCoarse: SearchExhaustive,
		SearchParam:      2,
		PelSearch:        2,
		Lambda:           1, LambdaSad: 400,
		PenaltyNew: 25, PenaltyZero: 0, PenaltyGlobal: 0,
		PenaltyLevel: PenaltyLinear,
		Global:       true,
		DctMode:      0,
		BadSad:       10000,
		BadRange:     24,
		Meander:      true,
	}
}

// Validate checks field ranges, defaulting and logging corrections.
// It returns an error for fields with no sane default (the block size
// must be supported by the pixel kernels).
func (c *AnalyseConfig) Validate() error {
	if c.BlkSizeX == 0 || c.BlkSizeY == 0 {
		return fmt.Errorf("config: BlkSizeX/BlkSizeY must be non-zero")
	}
	for _, s := range []uint{c.BlkSizeX, c.BlkSizeY} {
		if s < 2 || s > 128 || s&(s-1) != 0 {
			return fmt.Errorf("config: block size %d unsupported, must be a power of two from 2 to 128", s)
		}
	}
	if c.DctMode < 0 || c.DctMode > 10 {
		c.logInvalidField("DctMode", 0)
		c.DctMode = 0
	}
	if c.PelSearch != 1 && c.PelSearch != 2 && c.PelSearch != 4 {
		c.logInvalidField("PelSearch", 2)
		c.PelSearch = 2
	}
	if c.OverlapX >= c.BlkSizeX || c.OverlapY >= c.BlkSizeY {
		return fmt.Errorf("config: overlap must be smaller than block size")
	}
	return nil
}

func (c *AnalyseConfig) logInvalidField(name string, def interface{}) {
	if c.Logger != nil {
		c.Logger.Info(name+" bad or unset, defaulting", name, def)
	}
}
