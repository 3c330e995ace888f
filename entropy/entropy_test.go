package entropy

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDefault(t *testing.T) {
	src, err := Select(Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceCrypto, src.Name())
	assert.True(t, src.Strong())

	buf := make([]byte, 32)
	_, err = io.ReadFull(src, buf)
	require.NoError(t, err)
	assert.NotEqual(t, make([]byte, 32), buf)
}

func TestSelectCustomShortCircuits(t *testing.T) {
	want := bytes.Repeat([]byte{0xab}, 16)
	src, err := Select(Options{
		Custom: bytes.NewReader(want),
		// Filters are irrelevant once a custom reader is supplied.
		Only: []string{SourceRandom},
	})
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src.Name())
	assert.True(t, src.Strong())

	got := make([]byte, 16)
	_, err = io.ReadFull(src, got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSelectUnknownSource(t *testing.T) {
	_, err := Select(Options{Only: []string{"radioactive-decay"}})
	var unknown ErrUnknownSource
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "radioactive-decay", unknown.Name)

	_, err = Select(Options{Exclude: []string{"lava-lamp"}})
	require.Error(t, err)
}

func TestSelectNothingSurvives(t *testing.T) {
	_, err := Select(Options{
		Exclude: []string{SourceCrypto, SourceURandom, SourceRandom},
	})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSelectNonBlockingSkipsBlockingSource(t *testing.T) {
	_, err := Select(Options{
		Only:        []string{SourceRandom},
		NonBlocking: true,
	})
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestSelectWeakFallbackRequiresOptIn(t *testing.T) {
	opts := Options{
		Exclude: []string{SourceCrypto, SourceURandom, SourceRandom},
	}
	_, err := Select(opts)
	require.ErrorIs(t, err, ErrUnavailable)

	opts.AllowWeak = true
	src, err := Select(opts)
	require.NoError(t, err)
	assert.Equal(t, SourceWeak, src.Name())
	assert.False(t, src.Strong())

	// The weak source still honors the io.Reader contract, odd lengths
	// included.
	buf := make([]byte, 13)
	n, err := src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 13, n)
}

func TestSelectDevice(t *testing.T) {
	if !devicePresent("/dev/urandom")() {
		t.Skip("/dev/urandom not present on this host")
	}
	src, err := Select(Options{Only: []string{SourceURandom}})
	require.NoError(t, err)
	assert.Equal(t, SourceURandom, src.Name())

	buf := make([]byte, 64)
	_, err = io.ReadFull(src, buf)
	require.NoError(t, err)
	assert.NotEqual(t, make([]byte, 64), buf)
}

func TestWeakSourceVaries(t *testing.T) {
	a := newWeakSource()
	buf1 := make([]byte, 16)
	buf2 := make([]byte, 16)
	_, err := a.Read(buf1)
	require.NoError(t, err)
	_, err = a.Read(buf2)
	require.NoError(t, err)
	assert.NotEqual(t, buf1, buf2)
}
