package block

import "github.com/ausocean/motionvec/pixel"

// DistortionMode selects the block distortion metric a PlaneOfBlocks
// search minimises.
type DistortionMode int

const (
	DistortionSAD DistortionMode = iota
	DistortionSATD
	DistortionDCT
)

// DCTCost is the external collaborator providing a block-DCT-domain
// distortion; spec §4.5 delegates this frequency-domain path to the
// host rather than specifying its transform.
type DCTCost[T pixel.Sample] func(src, ref pixel.Window[T]) (uint64, error)

// Distortion evaluates the chosen metric over one candidate window
// pair. DistortionDCT blends the spatial SAD with the DCT-domain cost
// reported by dct; a nil dct falls back to plain SAD.
func Distortion[T pixel.Sample](mode DistortionMode, src, ref pixel.Window[T], dct DCTCost[T]) (uint64, error) {
	switch mode {
	case DistortionSATD:
		return pixel.Satd(src, ref)
	case DistortionDCT:
		sad, err := pixel.Sad(src, ref)
		if err != nil {
			return 0, err
		}
		if dct == nil {
			return sad, nil
		}
		d, err := dct(src, ref)
		if err != nil {
			return 0, err
		}
		return (sad + d) / 2, nil
	default:
		return pixel.Sad(src, ref)
	}
}

// penaltyKind names which predictor candidate a cost evaluation is
// comparing against, selecting which of the "new"/"zero"/"global"
// penalty terms (spec §4.5) applies in addition to the base length
// penalty.
type penaltyKind int

const (
	penaltyKindKeep penaltyKind = iota
	penaltyKindNew
	penaltyKindZero
	penaltyKindGlobal
)

// Penalties holds the per-level penalty weights used by totalCost.
type Penalties struct {
	Lambda        float64
	PenaltyNew    float64
	PenaltyZero   float64
	PenaltyGlobal float64
}

// totalCost combines a raw distortion d for candidate (vx, vy) with
// the base length penalty and, depending on kind, one of the
// new/zero/global penalty terms.
func totalCost(d uint64, vx, vy int32, p Penalties, kind penaltyKind) float64 {
	cost := float64(d) + p.Lambda*float64(abs32(vx)+abs32(vy))
	switch kind {
	case penaltyKindNew:
		cost += p.PenaltyNew * float64(d) / 256
	case penaltyKindZero:
		cost += p.PenaltyZero * float64(d) / 256
	case penaltyKindGlobal:
		cost += p.PenaltyGlobal * float64(d) / 256
	}
	return cost
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
