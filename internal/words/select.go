package words

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Pick returns a uniformly random word from the list. The caller owns the
// rand source, so a fixed seed reproduces the same draw.
func (l *List) Pick(rng *rand.Rand) string {
	if len(l.words) == 0 {
		return ""
	}
	return l.words[rng.Intn(len(l.words))]
}

// PickForDate returns the word for a calendar date. The same date and salt
// always map to the same word, independent of process or host.
func (l *List) PickForDate(date time.Time, salt string) string {
	if len(l.words) == 0 {
		return ""
	}
	return l.words[wordIndex(date, salt, len(l.words))]
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// wordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func wordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
