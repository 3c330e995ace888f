package rand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestPow2Divisor(t *testing.T) {
	// Smallest power of two >= r, checked against a naive search.
	for r := uint64(1); r <= 64; r++ {
		want := uint64(1)
		for want < r {
			want *= 2
		}
		got, err := closestPow2Divisor(r)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "range %d", r)
	}
}

func TestClosestPow2DivisorBoundaries(t *testing.T) {
	d, err := closestPow2Divisor(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), d)

	d, err = closestPow2Divisor(maxRange)
	require.NoError(t, err)
	assert.Equal(t, maxRange, d)

	_, err = closestPow2Divisor(maxRange + 1)
	require.Error(t, err)
	var oob ErrRangeOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, maxRange+1, oob.Range)
}

func TestSampleBounds(t *testing.T) {
	const rangeVal = 200
	const count = 10000

	r := NewRand()
	samples, err := r.Sample(rangeVal, count)
	require.NoError(t, err)
	require.Len(t, samples, count)

	seen := make(map[uint32]bool)
	for _, s := range samples {
		assert.Less(t, s, uint32(rangeVal))
		seen[s] = true
	}
	// Both boundary values are reachable; with 10k draws a miss is
	// astronomically unlikely.
	assert.True(t, seen[0], "0 never sampled")
	assert.True(t, seen[rangeVal-1], "199 never sampled")
}

func TestSamplePowerOfTwoRange(t *testing.T) {
	r := NewRand()
	samples, err := r.Sample(64, 1000)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Less(t, s, uint32(64))
	}
}

func TestSampleFullRange(t *testing.T) {
	r := NewRand()
	samples, err := r.Sample(maxRange, 16)
	require.NoError(t, err)
	assert.Len(t, samples, 16)
}

func TestSampleRangeOne(t *testing.T) {
	r := NewRand()
	samples, err := r.Sample(1, 100)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Equal(t, uint32(0), s)
	}
}

func TestSampleZeroCount(t *testing.T) {
	r := NewRand()
	samples, err := r.Sample(200, 0)
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.False(t, r.Seeded())

	samples, err = r.Sample(200, -3)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestSampleEmptyRange(t *testing.T) {
	r := NewRand()

	// Divisor convention: range zero maps to divisor one and a zero count is
	// fine, but actually drawing from it can never produce a value.
	samples, err := r.Sample(0, 0)
	require.NoError(t, err)
	assert.Empty(t, samples)

	_, err = r.Sample(0, 1)
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestSampleRangeTooLarge(t *testing.T) {
	r := NewRand()
	_, err := r.Sample(maxRange+1, 1)
	var oob ErrRangeOutOfBounds
	require.ErrorAs(t, err, &oob)
}

// A range just above a power of two is the worst case for the rejection
// loop; it must still terminate and stay in bounds.
func TestSampleWorstCaseRange(t *testing.T) {
	const rangeVal = 65 // divisor 128, acceptance just over 50%

	r := NewRand()
	samples, err := r.Sample(rangeVal, 5000)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Less(t, s, uint32(rangeVal))
	}
}
