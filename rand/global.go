package rand

import "github.com/daoswald/bytes-random-secure/libs/log"

// grand backs the package-level functions. Construction is free; the seed is
// drawn on the first demand for output.
var grand = NewRand()

// ConfigureSeed replaces the seed configuration of the process-wide
// generator. It reports false, and mutates nothing, once the generator has
// produced any output.
func ConfigureSeed(cfg Config) bool {
	return grand.ConfigureSeed(cfg)
}

// SetLogger replaces the logger of the process-wide generator.
func SetLogger(logger log.Logger) {
	grand.SetLogger(logger)
}

// Bytes returns n pseudo-random bytes from the process-wide generator.
func Bytes(n int) ([]byte, error) {
	return grand.Bytes(n)
}

// BytesHex returns n pseudo-random bytes as 2n lowercase hex digits.
func BytesHex(n int) (string, error) {
	return grand.BytesHex(n)
}

// BytesBase64 returns n pseudo-random bytes in base64, wrapped at 76
// characters with eol ("" disables wrapping).
func BytesBase64(n int, eol string) (string, error) {
	return grand.BytesBase64(n, eol)
}

// BytesQP returns n pseudo-random bytes in quoted-printable encoding,
// wrapped at 76 columns with eol ("" disables wrapping).
func BytesQP(n int, eol string) (string, error) {
	return grand.BytesQP(n, eol)
}

// StringFrom returns count characters drawn uniformly from the positions of
// bag.
func StringFrom(bag string, count int) (string, error) {
	return grand.StringFrom(bag, count)
}

// Str constructs a random alphanumeric string of the given length.
func Str(length int) (string, error) {
	return grand.Str(length)
}

// Sample returns count uniform values in [0, rangeVal).
func Sample(rangeVal uint64, count int) ([]uint32, error) {
	return grand.Sample(rangeVal, count)
}

// Uint32 returns one uniform pseudo-random 32-bit value.
func Uint32() (uint32, error) {
	return grand.Uint32()
}
