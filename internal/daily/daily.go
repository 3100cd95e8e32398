// Package daily picks the puzzle word of the day.
//
// The pick is a pure function of (UTC date, salt, word class), so every
// instance with the same word list and DAILY_SALT serves the same daily word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC-SHA256(salt, YYYY-MM-DD) % n. n <= 0 yields 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as the modulus source
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Candidates returns up to limit words of class starting at the day's index
// and wrapping around, so callers can step past a word they cannot use.
func Candidates(date time.Time, salt string, class []string, limit int) []string {
	n := len(class)
	if n == 0 || limit <= 0 {
		return nil
	}
	limit = min(limit, n)
	start := WordIndex(date, salt, n)
	out := make([]string, 0, limit)
	for i := range limit {
		out = append(out, class[(start+i)%n])
	}
	return out
}
