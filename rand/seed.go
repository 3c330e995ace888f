package rand

import (
	"encoding/binary"
	"fmt"
	"io"

	sha256 "github.com/minio/sha256-simd"
	"golang.org/x/crypto/chacha20"

	"github.com/daoswald/bytes-random-secure/entropy"
)

// buildSeed draws the configured number of seed words from the entropy
// source selected by cfg. Word order is an internal detail; seeds are opaque.
func buildSeed(cfg Config, metrics *Metrics) ([]uint32, entropy.Source, error) {
	if err := cfg.ValidateBasic(); err != nil {
		return nil, nil, err
	}
	words := cfg.NormalizedBits() / 32

	src, err := entropy.Select(cfg.entropyOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("selecting entropy source: %w", err)
	}

	raw := make([]byte, words*4)
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, nil, fmt.Errorf("reading %d seed bytes from %s: %w", len(raw), src.Name(), err)
	}
	metrics.EntropyBytes.Add(float64(len(raw)))

	seed := make([]uint32, words)
	for i := range seed {
		seed[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return seed, src, nil
}

// newCipher keys a ChaCha20 keystream from the seed words. The seed is
// stretched (or folded) to the 32-byte key size with SHA-256.
func newCipher(seed []uint32) (*chacha20.Cipher, error) {
	raw := make([]byte, len(seed)*4)
	for i, w := range seed {
		binary.LittleEndian.PutUint32(raw[i*4:], w)
	}
	key := sha256.Sum256(raw)
	return chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
}
