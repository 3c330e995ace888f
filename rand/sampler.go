package rand

import "math/bits"

// maxRange is the widest range one 32-bit draw can cover.
const maxRange = uint64(1) << 32

// closestPow2Divisor returns the smallest power of two >= rangeVal, for
// rangeVal in [0, 2^32]. By convention a range of zero maps to one, since no
// value will ever be sampled from it.
//
// Reducing a draw modulo a power of two <= 2^32 leaves every residue equally
// likely, which is what makes the rejection loop in Sample bias-free.
func closestPow2Divisor(rangeVal uint64) (uint64, error) {
	if rangeVal > maxRange {
		return 0, ErrRangeOutOfBounds{Range: rangeVal}
	}
	if rangeVal <= 1 {
		return 1, nil
	}
	return uint64(1) << uint(bits.Len64(rangeVal-1)), nil
}

// Sample returns count independent uniform values in [0, rangeVal), in draw
// order, with replacement. rangeVal must not exceed 2^32. A count <= 0
// returns an empty slice without touching the generator.
//
// Each value is drawn by reducing a 32-bit word modulo the closest power-of-
// two divisor >= rangeVal and rejecting candidates >= rangeVal. The divisor
// is below 2*rangeVal, so each trial accepts with probability > 1/2 and the
// loop terminates with probability 1. Rejecting, rather than reducing modulo
// rangeVal directly, is what keeps every surviving value equally likely.
func (r *Rand) Sample(rangeVal uint64, count int) ([]uint32, error) {
	divisor, err := closestPow2Divisor(rangeVal)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return []uint32{}, nil
	}
	if rangeVal == 0 {
		return nil, ErrEmptyRange
	}
	// Masking with divisor-1 is the modulo; for divisor 2^32 the mask is all
	// ones and every word is accepted outright.
	mask := uint32(divisor - 1)

	r.Lock()
	defer r.Unlock()
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	out := make([]uint32, 0, count)
	for len(out) < count {
		candidate := r.nextWord() & mask
		if uint64(candidate) >= rangeVal {
			r.metrics.SampleRejections.Add(1)
			continue
		}
		out = append(out, candidate)
	}
	r.metrics.Samples.Add(float64(count))
	return out, nil
}
