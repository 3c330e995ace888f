// Package entropy selects the operating-system facility used to seed the
// generator in package rand.
//
// Sources are tried in order of preference: the Go runtime's CSPRNG
// (crypto/rand), then the character devices /dev/urandom and /dev/random
// where they exist. A deliberately weak, time-seeded fallback exists for
// hosts with no usable facility, but it is never selected unless the caller
// opts in via Options.AllowWeak.
package entropy

import (
	crand "crypto/rand"
	"errors"
	"io"
	"os"
)

// Source names recognized by Select.
const (
	SourceCrypto  = "crypto"
	SourceURandom = "urandom"
	SourceRandom  = "random"
	SourceWeak    = "weak"
	SourceCustom  = "custom"
)

// ErrUnavailable is returned when no strong entropy source survives the
// caller's filters and the caller has not opted into the weak fallback.
var ErrUnavailable = errors.New("no strong entropy source available")

// ErrUnknownSource is returned when Options name a source that does not exist.
type ErrUnknownSource struct {
	Name string
}

func (e ErrUnknownSource) Error() string {
	return "unknown entropy source " + e.Name
}

// Source supplies raw high-quality random bytes on demand.
type Source interface {
	io.Reader

	// Name identifies the source ("crypto", "urandom", ...).
	Name() string
	// Strong reports whether the source is cryptographically strong.
	Strong() bool
}

// Options filter which sources Select may return.
type Options struct {
	// NonBlocking skips sources that may block on a depleted entropy pool
	// (in practice, /dev/random).
	NonBlocking bool

	// AllowWeak permits the time-seeded fallback when no strong source
	// survives filtering. Off by default.
	AllowWeak bool

	// Only restricts selection to the named sources. Empty means no
	// restriction.
	Only []string

	// Exclude removes the named sources from consideration.
	Exclude []string

	// Custom short-circuits selection entirely: the reader is used as-is and
	// treated as strong. The caller vouches for its quality.
	Custom io.Reader
}

// Validate checks that every source named in Only and Exclude is known.
func (opts Options) Validate() error {
	for _, name := range append(append([]string{}, opts.Only...), opts.Exclude...) {
		if !knownSource(name) {
			return ErrUnknownSource{Name: name}
		}
	}
	return nil
}

// candidate pairs a Source with its selection metadata.
type candidate struct {
	source    Source
	blocking  bool
	available func() bool
}

// registry returns the strong sources in preference order.
func registry() []candidate {
	return []candidate{
		{
			source:    cryptoSource{},
			available: func() bool { return true },
		},
		{
			source:    deviceSource{name: SourceURandom, path: "/dev/urandom"},
			available: devicePresent("/dev/urandom"),
		},
		{
			source:    deviceSource{name: SourceRandom, path: "/dev/random"},
			blocking:  true,
			available: devicePresent("/dev/random"),
		},
	}
}

// Select returns the most preferred source that satisfies opts.
func Select(opts Options) (Source, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Custom != nil {
		return customSource{r: opts.Custom}, nil
	}
	for _, c := range registry() {
		name := c.source.Name()
		if opts.NonBlocking && c.blocking {
			continue
		}
		if contains(opts.Exclude, name) {
			continue
		}
		if len(opts.Only) > 0 && !contains(opts.Only, name) {
			continue
		}
		if !c.available() {
			continue
		}
		return c.source, nil
	}
	if opts.AllowWeak {
		return newWeakSource(), nil
	}
	return nil, ErrUnavailable
}

func knownSource(name string) bool {
	switch name {
	case SourceCrypto, SourceURandom, SourceRandom, SourceWeak, SourceCustom:
		return true
	}
	return false
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func devicePresent(path string) func() bool {
	return func() bool {
		fi, err := os.Stat(path)
		return err == nil && fi.Mode()&os.ModeCharDevice != 0
	}
}

// cryptoSource reads from the runtime's CSPRNG. It keeps no state.
type cryptoSource struct{}

func (cryptoSource) Read(p []byte) (int, error) { return crand.Read(p) }
func (cryptoSource) Name() string               { return SourceCrypto }
func (cryptoSource) Strong() bool               { return true }

// deviceSource reads from an entropy character device. The device is opened
// per read; seeding happens once per generator, so the open cost is noise.
type deviceSource struct {
	name string
	path string
}

func (s deviceSource) Read(p []byte) (int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.ReadFull(f, p)
}

func (s deviceSource) Name() string { return s.name }
func (deviceSource) Strong() bool   { return true }

// customSource wraps a caller-supplied reader.
type customSource struct {
	r io.Reader
}

func (s customSource) Read(p []byte) (int, error) { return s.r.Read(p) }
func (customSource) Name() string                 { return SourceCustom }
func (customSource) Strong() bool                 { return true }
