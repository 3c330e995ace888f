package rand

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"

	"github.com/daoswald/bytes-random-secure/libs/log"
	cmtsync "github.com/daoswald/bytes-random-secure/libs/sync"
)

// Rand is a pseudo-random generator seeded, exactly once and lazily, from a
// strong entropy source. Constructing a Rand costs nothing; the seed is drawn
// on the first demand for output and the internal state is never re-derived
// for the lifetime of the handle.
//
// All of the methods are suitable for concurrent use. This is achieved by
// using a mutex lock on all of the provided methods.
type Rand struct {
	cmtsync.Mutex

	config  Config
	metrics *Metrics
	logger  log.Logger

	// cipher is nil until the first draw seeds the generator.
	cipher *chacha20.Cipher
	word   [4]byte
}

// Option sets an optional parameter on a Rand.
type Option func(*Rand)

// WithConfig sets the seed configuration. Equivalent to calling
// ConfigureSeed before first use.
func WithConfig(cfg Config) Option {
	return func(r *Rand) { r.config = cfg }
}

// WithMetrics sets the metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(r *Rand) { r.metrics = metrics }
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Rand) { r.logger = logger }
}

// NewRand returns an unseeded generator. Seeding happens on first use.
func NewRand(opts ...Option) *Rand {
	r := &Rand{
		config:  DefaultConfig(),
		metrics: NopMetrics(),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetLogger replaces the logger.
func (r *Rand) SetLogger(logger log.Logger) {
	r.Lock()
	r.logger = logger
	r.Unlock()
}

// ConfigureSeed replaces the seed configuration and reports whether it took
// effect. Once the generator has produced any output the configuration is
// frozen: ConfigureSeed returns false and mutates nothing. The check and the
// store happen under the same lock as seeding, so a configuration can never
// sneak in while initialization is underway.
func (r *Rand) ConfigureSeed(cfg Config) bool {
	r.Lock()
	defer r.Unlock()
	if r.cipher != nil {
		return false
	}
	r.config = cfg
	return true
}

// Seeded reports whether the generator has been initialized.
func (r *Rand) Seeded() bool {
	r.Lock()
	defer r.Unlock()
	return r.cipher != nil
}

// Uint32 returns one uniform pseudo-random 32-bit value, seeding the
// generator first if needed. No statistical post-processing happens at this
// layer.
func (r *Rand) Uint32() (uint32, error) {
	r.Lock()
	defer r.Unlock()
	if err := r.ensureInitialized(); err != nil {
		return 0, err
	}
	return r.nextWord(), nil
}

// ensureInitialized seeds the generator on first call and is a no-op after.
// A failed seeding leaves the handle unseeded, so a later call retries from
// scratch. Callers must hold the lock.
func (r *Rand) ensureInitialized() error {
	if r.cipher != nil {
		return nil
	}
	seed, src, err := buildSeed(r.config, r.metrics)
	if err != nil {
		return err
	}
	cipher, err := newCipher(seed)
	if err != nil {
		return err
	}
	r.cipher = cipher
	r.metrics.SeedBits.Set(float64(len(seed) * 32))
	if !src.Strong() {
		r.logger.Error("seeded from a weak entropy source", "source", src.Name())
	} else {
		r.logger.Info("seeded generator", "source", src.Name(), "bits", len(seed)*32)
	}
	return nil
}

// nextWord returns the next 32-bit word off the keystream. Callers must hold
// the lock and have initialized the generator.
func (r *Rand) nextWord() uint32 {
	for i := range r.word {
		r.word[i] = 0
	}
	r.cipher.XORKeyStream(r.word[:], r.word[:])
	r.metrics.Words.Add(1)
	return binary.LittleEndian.Uint32(r.word[:])
}

// Bytes returns n pseudo-random bytes. Negative n clamps to zero; n <= 0
// returns an empty slice without touching the generator.
//
// Whole 32-bit words are packed four bytes at a time; a 1-3 byte tail costs
// exactly one extra word, taking its two low bytes when the tail is at least
// two and one more byte when the tail is odd.
func (r *Rand) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}
	r.Lock()
	defer r.Unlock()
	if err := r.ensureInitialized(); err != nil {
		return nil, err
	}
	bs := make([]byte, 0, n)
	for rem := n; rem > 0; {
		w := r.nextWord()
		if rem >= 4 {
			bs = binary.LittleEndian.AppendUint32(bs, w)
			rem -= 4
			continue
		}
		if rem >= 2 {
			bs = append(bs, byte(w), byte(w>>8))
			w >>= 16
			rem -= 2
		}
		if rem == 1 {
			bs = append(bs, byte(w))
			rem--
		}
	}
	return bs, nil
}
