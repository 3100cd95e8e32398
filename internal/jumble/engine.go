// Package jumble is the word engine's query surface: membership, prefix and
// pattern search, subword generation, scrambling, palindromes and anagrams,
// all answered from one shared, read-only dictionary.
//
// Query methods never fail on malformed input; they return an empty list.
// Only Scramble reports errors, because its degenerate inputs (empty,
// single-letter, uniform-letter words) have no valid answer.
package jumble

import (
	"strings"

	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
	"github.com/robalobadob/jumble/apps/go-server/internal/words"
)

// DefaultMinLength is the subword minimum length when none is given.
const DefaultMinLength = 3

// Engine answers word queries against a loaded dictionary.
type Engine struct {
	dict      *words.Dictionary
	rng       Rand
	scrambler *Scrambler
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for scrambling and random picks.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New builds an Engine over dict.
func New(dict *words.Dictionary, opts ...Option) *Engine {
	e := &Engine{dict: dict}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = NewLockedRand(nil)
	}
	e.scrambler = NewScrambler(e.rng)
	return e
}

// Dictionary exposes the underlying word list.
func (e *Engine) Dictionary() *words.Dictionary { return e.dict }

// Exists reports whether word is a dictionary word, ignoring case.
func (e *Engine) Exists(word string) bool {
	return e.dict.Contains(word)
}

// WordsMatchingPrefix returns the words starting with prefix.
func (e *Engine) WordsMatchingPrefix(prefix string) []string {
	return e.dict.WordsWithPrefix(prefix)
}

// SearchWords filters by first letter, last letter and length.
// With no filter set the result is empty.
func (e *Engine) SearchWords(startChar, endChar opt.Value[rune], length opt.Value[int]) []string {
	return e.dict.Search(words.Filter{Start: startChar, End: endChar, Length: length})
}

// GenerateSubWords returns the dictionary words of at least minLength letters
// (default DefaultMinLength) spelled from word's letters, never reusing a
// letter more often than word has it. word itself is not included.
// A word with non-letters, a minLength below 1, or a word shorter than
// minLength gives an empty result.
func (e *Engine) GenerateSubWords(word string, minLength opt.Value[int]) []string {
	if !words.IsLetters(word) {
		return []string{}
	}
	minLen := minLength.Or(DefaultMinLength)
	if minLen < 1 || len(word) < minLen {
		return []string{}
	}
	return e.dict.SubWords(strings.ToLower(word), minLen)
}

// Scramble returns a permutation of word different from word.
func (e *Engine) Scramble(word string) (string, error) {
	return e.scrambler.Scramble(word)
}

// Palindromes returns the dictionary's palindromes of two or more letters.
func (e *Engine) Palindromes() []string {
	return e.dict.Palindromes()
}

// Anagrams returns the dictionary words using exactly word's letters.
func (e *Engine) Anagrams(word string) []string {
	return e.dict.Anagrams(word)
}

// RandomWord picks a random word, optionally of a fixed length.
func (e *Engine) RandomWord(length opt.Value[int]) (string, bool) {
	return e.dict.RandomWord(e.rng, length)
}
