// Package entropy derives seeds for runs that did not configure one.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Seed returns a nonzero int64 suitable for seeding a run. Drawn from
// crypto/rand, with the wall clock as fallback if that ever fails.
func Seed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1) // keep it positive
	if seed == 0 {
		seed = 1
	}
	return seed
}
