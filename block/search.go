package block

import "github.com/ausocean/motionvec/motion/config"

// Result is one evaluated candidate: its displacement, total cost
// (distortion plus penalty) and raw distortion.
type Result struct {
	X, Y int32
	Cost float64
	Sad  uint64
}

// evalFunc evaluates one candidate displacement, returning its total
// cost and raw distortion.
type evalFunc func(x, y int32) (Result, error)

var hexOffsets = [6][2]int32{{-2, 0}, {-1, -2}, {1, -2}, {2, 0}, {1, 2}, {-1, 2}}

// Search dispatches to the named strategy, starting from pred (the
// initial best candidate, already evaluated) and returning the best
// candidate found. searchParam is the
// step/ring count, interpreted per strategy as described in spec
// §4.5.
func Search(strategy config.SearchType, eval evalFunc, pred Result, searchParam int) (Result, error) {
	switch strategy {
	case config.SearchExhaustive:
		return exhaustive(eval, pred, int32(searchParam))
	case config.SearchNStep:
		return nstep(eval, pred, searchParam, true)
	case config.SearchLogarithmic:
		return nstep(eval, pred, searchParam, false)
	case config.SearchHex2:
		return hex2(eval, pred)
	case config.SearchUMH:
		return umh(eval, pred, searchParam)
	case config.SearchHorizontal:
		return axisOnly(eval, pred, int32(searchParam), true)
	case config.SearchVertical:
		return axisOnly(eval, pred, int32(searchParam), false)
	default:
		return exhaustive(eval, pred, int32(searchParam))
	}
}

func exhaustive(eval evalFunc, pred Result, radius int32) (Result, error) {
	best := pred
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r, err := eval(pred.X+dx, pred.Y+dy)
			if err != nil {
				return Result{}, err
			}
			if r.Cost < best.Cost {
				best = r
			}
		}
	}
	return best, nil
}

// nstep implements both N-step (eight neighbours per iteration) and
// logarithmic search (four axis-aligned neighbours per iteration):
// start at step 1<<searchParam, evaluate the neighbour set around the
// current best, keep any improvement, then halve the step until it
// reaches zero.
func nstep(eval evalFunc, pred Result, searchParam int, eightWay bool) (Result, error) {
	best := pred
	step := int32(1) << uint(searchParam)
	for step > 0 {
		var offsets [][2]int32
		if eightWay {
			offsets = [][2]int32{
				{-step, -step}, {0, -step}, {step, -step},
				{-step, 0}, {step, 0},
				{-step, step}, {0, step}, {step, step},
			}
		} else {
			offsets = [][2]int32{{-step, 0}, {step, 0}, {0, -step}, {0, step}}
		}
		for _, o := range offsets {
			r, err := eval(best.X+o[0], best.Y+o[1])
			if err != nil {
				return Result{}, err
			}
			if r.Cost < best.Cost {
				best = r
			}
		}
		step >>= 1
	}
	return best, nil
}

func hex2(eval evalFunc, pred Result) (Result, error) {
	best := pred
	for {
		improved := false
		for _, o := range hexOffsets {
			r, err := eval(best.X+o[0], best.Y+o[1])
			if err != nil {
				return Result{}, err
			}
			if r.Cost < best.Cost {
				best = r
				improved = true
			}
		}
		if !improved {
			break
		}
	}
	// Small square refinement of radius 1.
	return exhaustive(eval, best, 1)
}

func umh(eval evalFunc, pred Result, rings int) (Result, error) {
	best := pred

	// Cross search.
	for _, o := range [4][2]int32{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, err := eval(best.X+o[0], best.Y+o[1])
		if err != nil {
			return Result{}, err
		}
		if r.Cost < best.Cost {
			best = r
		}
	}

	// Multi-hexagon expansion up to the requested ring count.
	for ring := 1; ring <= rings; ring++ {
		scale := int32(ring)
		for _, o := range hexOffsets {
			r, err := eval(best.X+o[0]*scale, best.Y+o[1]*scale)
			if err != nil {
				return Result{}, err
			}
			if r.Cost < best.Cost {
				best = r
			}
		}
	}

	// Extended hexagon, then hexagonal refinement.
	return hex2(eval, best)
}

func axisOnly(eval evalFunc, pred Result, radius int32, horizontal bool) (Result, error) {
	best := pred
	for d := -radius; d <= radius; d++ {
		if d == 0 {
			continue
		}
		var x, y int32
		if horizontal {
			x, y = pred.X+d, pred.Y
		} else {
			x, y = pred.X, pred.Y+d
		}
		r, err := eval(x, y)
		if err != nil {
			return Result{}, err
		}
		if r.Cost < best.Cost {
			best = r
		}
	}
	return best, nil
}
