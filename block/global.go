package block

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// EstimateGlobalMV computes the per-level global MV (spec §4.5): the
// component-wise mean of the vectors of blocks whose cost is at or
// below the level's median cost. The mean (rather than the per-axis
// median) is the implementation choice taken here, within the spec's
// documented tolerance; gonum/stat already supplies both the median
// (via stat.Quantile) and the mean used to average the below-median
// population.
func EstimateGlobalMV(vectors []MotionVector) MotionVector {
	if len(vectors) == 0 {
		return Zero()
	}

	sads := make([]float64, len(vectors))
	for i, v := range vectors {
		sads[i] = float64(v.Sad)
	}
	sorted := append([]float64(nil), sads...)
	sort.Float64s(sorted)
	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)

	var xs, ys []float64
	for _, v := range vectors {
		if float64(v.Sad) <= median {
			xs = append(xs, float64(v.Dx))
			ys = append(ys, float64(v.Dy))
		}
	}
	if len(xs) == 0 {
		return Zero()
	}

	mx := stat.Mean(xs, nil)
	my := stat.Mean(ys, nil)
	return MotionVector{
		Dx:  int32(math.Round(mx)),
		Dy:  int32(math.Round(my)),
		Sad: -1,
	}
}
