// Package id issues run identifiers for priced quotes.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator hands out monotonic ULIDs. IDs generated within the same
// millisecond stay lexicographically increasing, so journal rows sort by
// run order.
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator seeds a PRNG from crypto/rand. now defaults to time.Now.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}

	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		now:     now,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
	}
}

// New returns the next ULID string and the timestamp encoded in it.
func (g *Generator) New() (string, time.Time, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := g.now().UTC()
	id, err := ulid.New(ulid.Timestamp(ts), g.entropy)
	if err != nil {
		return "", time.Time{}, err
	}
	return id.String(), ts, nil
}
