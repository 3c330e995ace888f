// Package rand generates cryptographically seeded pseudo-random bytes and
// strings.
//
// The generator is a ChaCha20 keystream keyed, exactly once and lazily, from
// a high-quality entropy source (see package entropy). Seed options freeze as
// soon as the generator produces its first output. Ranged values are drawn by
// rejection sampling against the nearest power-of-two divisor, which keeps
// every value in [0, range) equally likely; reducing modulo range directly
// would favor low residues whenever range does not divide 2^32.
//
// A process-wide generator backs the package-level functions. Callers that
// want their own seed options or their own lifetime construct a handle with
// NewRand.
//
// Length policy: the byte-count functions clamp negative counts to zero,
// while the bag and range functions reject negative counts with
// ErrInvalidLength. A zero count is always a legitimate empty result and
// never touches the generator.
package rand
