package entropy

import (
	"encoding/binary"
	mrand "math/rand"
	"time"
)

// weakSource is a time-seeded math/rand stream. It exists so that hosts with
// no usable entropy facility can still run when the caller explicitly accepts
// the weaker guarantee; it must never be selected by default.
type weakSource struct {
	rand *mrand.Rand
}

func newWeakSource() *weakSource {
	// G404: math/rand is the point of this source, the caller opted in.
	//nolint:gosec
	return &weakSource{rand: mrand.New(mrand.NewSource(time.Now().UnixNano()))}
}

func (s *weakSource) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], s.rand.Uint64())
		copy(p[i:], word[:])
	}
	return len(p), nil
}

func (*weakSource) Name() string { return SourceWeak }
func (*weakSource) Strong() bool { return false }
