package config

import (
	"fmt"
	"strconv"
	"strings"
)

// AnalyseConfig map Keys, for hosts that configure the core from a
// string-keyed control channel rather than constructing the struct
// directly.
const (
	KeyBlkSizeX     = "BlkSizeX"
	KeyBlkSizeY     = "BlkSizeY"
	KeySearchType   = "SearchType"
	KeySearchParam  = "SearchParam"
	KeyPelSearch    = "PelSearch"
	KeyLambda       = "Lambda"
	KeyPenaltyNew   = "PenaltyNew"
	KeyPenaltyZero  = "PenaltyZero"
	KeyBadSad       = "BadSad"
	KeyBadRange     = "BadRange"
	KeyMeander      = "Meander"
	KeyTryMany      = "TryMany"
	KeyOverlapX     = "OverlapX"
	KeyOverlapY     = "OverlapY"
	KeyGlobal       = "Global"
)

// AnalyseVariables describes the subset of AnalyseConfig fields a host
// may update by name, mirroring revid/config's Variables table: each
// entry names a field, its update function and (where there is a
// sane default) its validation function.
var AnalyseVariables = []struct {
	Name     string
	Update   func(*AnalyseConfig, string)
	Validate func(*AnalyseConfig)
}{
	{
		Name:   KeyBlkSizeX,
		Update: func(c *AnalyseConfig, v string) { c.BlkSizeX = parseUint(KeyBlkSizeX, v, c) },
		Validate: func(c *AnalyseConfig) {
			if c.BlkSizeX == 0 {
				c.logInvalidField(KeyBlkSizeX, 8)
				c.BlkSizeX = 8
			}
		},
	},
	{
		Name:   KeyBlkSizeY,
		Update: func(c *AnalyseConfig, v string) { c.BlkSizeY = parseUint(KeyBlkSizeY, v, c) },
		Validate: func(c *AnalyseConfig) {
			if c.BlkSizeY == 0 {
				c.logInvalidField(KeyBlkSizeY, 8)
				c.BlkSizeY = 8
			}
		},
	},
	{
		Name: KeySearchType,
		Update: func(c *AnalyseConfig, v string) {
			n, err := strconv.Atoi(v)
			if err != nil || n < int(SearchNStep) || n > int(SearchVertical) {
				c.logWarning(KeySearchType, v, "expected a SearchType ordinal")
				return
			}
			c.SearchType = SearchType(n)
		},
	},
	{
		Name:   KeySearchParam,
		Update: func(c *AnalyseConfig, v string) { c.SearchParam = parseInt(KeySearchParam, v, c) },
	},
	{
		Name: KeyPelSearch,
		Update: func(c *AnalyseConfig, v string) { c.PelSearch = parseInt(KeyPelSearch, v, c) },
		Validate: func(c *AnalyseConfig) {
			if c.PelSearch != 1 && c.PelSearch != 2 && c.PelSearch != 4 {
				c.logInvalidField(KeyPelSearch, 2)
				c.PelSearch = 2
			}
		},
	},
	{
		Name:   KeyLambda,
		Update: func(c *AnalyseConfig, v string) { c.Lambda = parseFloat(KeyLambda, v, c) },
	},
	{
		Name:   KeyPenaltyNew,
		Update: func(c *AnalyseConfig, v string) { c.PenaltyNew = parseFloat(KeyPenaltyNew, v, c) },
	},
	{
		Name:   KeyPenaltyZero,
		Update: func(c *AnalyseConfig, v string) { c.PenaltyZero = parseFloat(KeyPenaltyZero, v, c) },
	},
	{
		Name:   KeyBadSad,
		Update: func(c *AnalyseConfig, v string) { c.BadSad = uint64(parseUint(KeyBadSad, v, c)) },
	},
	{
		Name:   KeyBadRange,
		Update: func(c *AnalyseConfig, v string) { c.BadRange = int32(parseInt(KeyBadRange, v, c)) },
	},
	{
		Name:   KeyMeander,
		Update: func(c *AnalyseConfig, v string) { c.Meander = parseBool(KeyMeander, v, c) },
	},
	{
		Name:   KeyTryMany,
		Update: func(c *AnalyseConfig, v string) { c.TryMany = parseBool(KeyTryMany, v, c) },
	},
	{
		Name:   KeyOverlapX,
		Update: func(c *AnalyseConfig, v string) { c.OverlapX = parseUint(KeyOverlapX, v, c) },
	},
	{
		Name:   KeyOverlapY,
		Update: func(c *AnalyseConfig, v string) { c.OverlapY = parseUint(KeyOverlapY, v, c) },
	},
	{
		Name:   KeyGlobal,
		Update: func(c *AnalyseConfig, v string) { c.Global = parseBool(KeyGlobal, v, c) },
	},
}

// Update applies vars to c by name, consulting AnalyseVariables.
func (c *AnalyseConfig) Update(vars map[string]string) {
	for _, vv := range AnalyseVariables {
		if v, ok := vars[vv.Name]; ok && vv.Update != nil {
			vv.Update(c, v)
		}
	}
}

// ValidateNamed runs each AnalyseVariables entry's Validate function,
// in addition to the fixed checks in Validate.
func (c *AnalyseConfig) ValidateNamed() {
	for _, vv := range AnalyseVariables {
		if vv.Validate != nil {
			vv.Validate(c)
		}
	}
}

func (c *AnalyseConfig) logWarning(name, value, msg string) {
	if c.Logger != nil {
		c.Logger.Warning(fmt.Sprintf("%s: %s", name, msg), "value", value)
	}
}

func parseUint(n, v string, c *AnalyseConfig) uint {
	_v, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		c.logWarning(n, v, "expected unsigned int")
	}
	return uint(_v)
}

func parseInt(n, v string, c *AnalyseConfig) int {
	_v, err := strconv.Atoi(v)
	if err != nil {
		c.logWarning(n, v, "expected int")
	}
	return _v
}

func parseFloat(n, v string, c *AnalyseConfig) float64 {
	_v, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.logWarning(n, v, "expected float")
	}
	return _v
}

func parseBool(n, v string, c *AnalyseConfig) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.logWarning(n, v, "expected bool")
	}
	return
}
