package timeline

import "math"

type placement struct {
	position float64
	minute   int
}

// placements is the collision state of one layout run, threaded through the
// minute groups in ascending order. Each place call returns the grown value;
// only the latest value should be used afterwards.
type placements struct {
	placed    []placement
	rightmost int // index into placed, -1 when empty
}

func newPlacements(capacity int) placements {
	return placements{
		placed:    make([]placement, 0, capacity),
		rightmost: -1,
	}
}

// spacing is the horizontal gap two minute groups need: temporally close
// groups need more room than distant ones, never less than MinSpacing.
func spacing(opts Options, minute, other int) float64 {
	dt := math.Abs(float64(minute - other))
	return math.Max(opts.MinSpacing, opts.ProximityWindow-dt)
}

// place resolves the candidate position of a minute group against every
// earlier group. A conflicting candidate jumps past the rightmost placement
// rather than just past the group it hit, so placement order stays left to
// right. The walk continues with the moved candidate.
func (p placements) place(opts Options, minute int, candidate float64) (float64, bool, placements) {
	adjusted := false

	for _, prev := range p.placed {
		need := spacing(opts, minute, prev.minute)
		if math.Abs(candidate-prev.position) < need {
			candidate = p.placed[p.rightmost].position + need
			adjusted = true
		}
	}

	if p.rightmost >= 0 {
		last := p.placed[p.rightmost]
		if candidate < last.position {
			candidate = last.position + spacing(opts, minute, last.minute)
			adjusted = true
		}
	}

	next := placements{
		placed:    append(p.placed, placement{position: candidate, minute: minute}),
		rightmost: p.rightmost,
	}
	if next.rightmost < 0 || candidate >= next.placed[next.rightmost].position {
		next.rightmost = len(next.placed) - 1
	}

	return candidate, adjusted, next
}
