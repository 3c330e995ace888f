package rand

import (
	"io"

	"github.com/daoswald/bytes-random-secure/entropy"
)

const (
	// SeedMinBits is the narrowest seed the generator accepts (2 words).
	SeedMinBits = 64
	// SeedMaxBits is the widest seed the generator accepts (16 words).
	// Anything wider over-draws the entropy pool for no statistical gain.
	SeedMaxBits = 512
	// SeedDefaultBits is the seed width used when none is configured.
	SeedDefaultBits = 256
)

// Config holds the seed options for a generator. It is consulted once, when
// the generator seeds itself on first use, and is immutable afterwards (see
// Rand.ConfigureSeed).
type Config struct {
	// Bits is the requested seed width. It is rounded up to the next multiple
	// of 32 and clamped into [SeedMinBits, SeedMaxBits] before any entropy is
	// drawn. Zero means SeedDefaultBits.
	Bits int

	// NonBlocking skips entropy sources that may block on a depleted pool.
	NonBlocking bool

	// AllowWeak permits a weak time-seeded fallback when no strong entropy
	// source is available. Off by default; without it seeding fails with an
	// error wrapping entropy.ErrUnavailable.
	AllowWeak bool

	// OnlySources restricts entropy selection to the named sources.
	OnlySources []string

	// ExcludeSources removes the named sources from entropy selection.
	ExcludeSources []string

	// Source supplies seed bytes directly, bypassing source selection.
	// The caller vouches for its quality.
	Source io.Reader
}

// DefaultConfig returns a default configuration for the generator.
func DefaultConfig() Config {
	return Config{Bits: SeedDefaultBits}
}

// NormalizedBits returns the effective seed width: Bits rounded up to the
// next multiple of 32, then clamped into [SeedMinBits, SeedMaxBits].
func (cfg Config) NormalizedBits() int {
	b := cfg.Bits
	if b <= 0 {
		b = SeedDefaultBits
	}
	if rem := b % 32; rem != 0 {
		b += 32 - rem
	}
	if b < SeedMinBits {
		b = SeedMinBits
	}
	if b > SeedMaxBits {
		b = SeedMaxBits
	}
	return b
}

// ValidateBasic performs basic validation (checking param bounds, etc.) and
// returns an error if any check fails.
func (cfg Config) ValidateBasic() error {
	if cfg.Bits < 0 {
		return ErrNegativeSeedBits
	}
	return cfg.entropyOptions().Validate()
}

func (cfg Config) entropyOptions() entropy.Options {
	return entropy.Options{
		NonBlocking: cfg.NonBlocking,
		AllowWeak:   cfg.AllowWeak,
		Only:        cfg.OnlySources,
		Exclude:     cfg.ExcludeSources,
		Custom:      cfg.Source,
	}
}
