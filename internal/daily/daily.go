// internal/daily/daily.go
//
// Deterministic daily puzzles. With --daily, automatic pools and secrets are
// drawn from a random source seeded by Seed, so everyone playing the same
// settings on the same UTC day gets the same rounds.

package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for the date using a BLAKE2b-256 MAC
// keyed by salt over the date key. The first 8 bytes of the sum are read
// big-endian.
func Seed(date time.Time, salt string) uint64 {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	// New256 only fails for keys longer than blake2b.Size.
	h, _ := blake2b.New256(key)
	h.Write([]byte(DateKey(date)))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}
