package words

import (
	"slices"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
)

// Filter selects words for Search. Every field is optional.
type Filter struct {
	Start  opt.Value[rune] // first letter
	End    opt.Value[rune] // last letter
	Length opt.Value[int]  // exact length
}

// empty reports whether no filter is set.
func (f Filter) empty() bool {
	return !f.Start.IsSet() && !f.End.IsSet() && !f.Length.IsSet()
}

// Search returns the words matching every set field of f.
//
// A Filter with no field set matches nothing rather than the whole list.
// A digit given as Start or End, or a negative Length, also yields no words;
// these are lenient "no match" answers, not errors. Letter filters are
// applied first and the length filter second.
func (d *Dictionary) Search(f Filter) []string {
	if f.empty() {
		return []string{}
	}

	start, hasStart := f.Start.Get()
	end, hasEnd := f.End.Get()
	length, hasLength := f.Length.Get()

	if hasStart && unicode.IsDigit(start) || hasEnd && unicode.IsDigit(end) {
		return []string{}
	}
	if hasLength && length < 0 {
		return []string{}
	}

	var sb, eb byte
	if hasStart {
		var ok bool
		if sb, ok = letterByte(start); !ok {
			return []string{}
		}
	}
	if hasEnd {
		var ok bool
		if eb, ok = letterByte(end); !ok {
			return []string{}
		}
	}

	// Seed from the narrowest letter index, then filter the rest.
	var candidates []int
	switch {
	case hasStart && hasEnd:
		candidates = d.byStart[sb]
		if len(d.byEnd[eb]) < len(candidates) {
			candidates = d.byEnd[eb]
		}
	case hasStart:
		candidates = d.byStart[sb]
	case hasEnd:
		candidates = d.byEnd[eb]
	default:
		candidates = d.byLength[length]
	}

	matched := lo.Filter(candidates, func(p int, _ int) bool {
		w := d.entries[p].word
		if hasStart && w[0] != sb {
			return false
		}
		if hasEnd && w[len(w)-1] != eb {
			return false
		}
		return true
	})
	if hasLength {
		matched = lo.Filter(matched, func(p int, _ int) bool {
			return len(d.entries[p].word) == length
		})
	}
	return d.wordsAt(matched)
}

// letterByte lowercases r and reports whether it is an ASCII letter.
func letterByte(r rune) (byte, bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return byte(r), true
}

// WordsWithPrefix returns the words beginning with prefix, ignoring case.
// An empty prefix or one containing non-letters matches nothing.
func (d *Dictionary) WordsWithPrefix(prefix string) []string {
	if !IsLetters(prefix) {
		return []string{}
	}
	prefix = strings.ToLower(prefix)

	first := sort.Search(len(d.sorted), func(i int) bool {
		return d.entries[d.sorted[i]].word >= prefix
	})
	var hits []int
	for i := first; i < len(d.sorted); i++ {
		p := d.sorted[i]
		if !strings.HasPrefix(d.entries[p].word, prefix) {
			break
		}
		hits = append(hits, p)
	}
	slices.Sort(hits)
	return d.wordsAt(hits)
}

// Palindromes returns the words of two or more letters that read the same
// backwards.
func (d *Dictionary) Palindromes() []string {
	var hits []int
	for p, e := range d.entries {
		if len(e.word) > 1 && isPalindrome(e.word) {
			hits = append(hits, p)
		}
	}
	return d.wordsAt(hits)
}

func isPalindrome(w string) bool {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		if w[i] != w[j] {
			return false
		}
	}
	return true
}

// Anagrams returns the dictionary words made of exactly the letters of word,
// excluding word itself. Case is ignored.
func (d *Dictionary) Anagrams(word string) []string {
	if !IsLetters(word) {
		return []string{}
	}
	word = strings.ToLower(word)
	hits := lo.Filter(d.anagrams[anagramKey(word)], func(p int, _ int) bool {
		return d.entries[p].word != word
	})
	return d.wordsAt(hits)
}

// SubWords returns every word of at least minLength letters that can be
// spelled from seed's letters, each used no more often than seed has it.
// seed itself is excluded. Callers validate seed and minLength.
func (d *Dictionary) SubWords(seed string, minLength int) []string {
	seed = strings.ToLower(seed)
	have := Counts(seed)
	hits := make([]int, 0, 16)
	for p, e := range d.entries {
		n := len(e.word)
		if n < minLength || n > len(seed) || e.word == seed {
			continue
		}
		if have.Covers(e.counts) {
			hits = append(hits, p)
		}
	}
	return d.wordsAt(hits)
}
