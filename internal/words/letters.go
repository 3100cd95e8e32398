package words

import (
	"slices"
	"strings"
)

// LetterCounts is the letter-frequency multiset of a word over a–z.
// Index 0 is 'a'. Counts saturate at 255, far beyond any real word.
type LetterCounts [26]uint8

// Counts returns the letter frequencies of w, ignoring case.
// Characters outside a–z are not counted.
func Counts(w string) LetterCounts {
	var c LetterCounts
	for i := 0; i < len(w); i++ {
		b := w[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if b < 'a' || b > 'z' {
			continue
		}
		if c[b-'a'] < 255 {
			c[b-'a']++
		}
	}
	return c
}

// Covers reports whether every letter of sub appears in c at least as many
// times, i.e. sub's multiset is dominated entrywise by c.
func (c LetterCounts) Covers(sub LetterCounts) bool {
	for i := range c {
		if sub[i] > c[i] {
			return false
		}
	}
	return true
}

// anagramKey returns w's letters in sorted order.
func anagramKey(w string) string {
	b := []byte(strings.ToLower(w))
	slices.Sort(b)
	return string(b)
}
