package deck

import (
	"crypto/cipher"
	"encoding/binary"

	"go.dedis.ch/kyber/v4/suites"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// Shuffle randomly permutes the active pile. The drawn and discarded piles
// are not touched.
func (d *Deck) Shuffle() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rng.Shuffle(len(d.active), func(i, j int) {
		d.active[i], d.active[j] = d.active[j], d.active[i]
	})
	d.logger.Debug("deck shuffled", "active", len(d.active))
}

// streamSource adapts the suite's cryptographic random stream to a
// math/rand/v2 Source.
type streamSource struct {
	stream cipher.Stream
	buf    [8]byte
}

func newStreamSource() *streamSource {
	return &streamSource{stream: suite.RandomStream()}
}

func (s *streamSource) Uint64() uint64 {
	clear(s.buf[:])
	s.stream.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}
