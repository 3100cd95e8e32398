// Package words holds the loaded dictionary and its read-only indexes.
//
// Responsibilities:
//   - Load a newline-delimited word list once (file, reader, or the embedded default).
//   - Normalise entries to lowercase a–z and build lookup indexes.
//   - Answer membership, prefix, search, random-pick, palindrome and anagram queries.
//
// A *Dictionary is immutable after Load returns and is safe for concurrent
// use without locking. Every query returns words in dictionary insertion
// order (first occurrence in the source), so results are reproducible for a
// given word list.
package words

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jumble/apps/go-server/assets"
	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
)

// entry is one dictionary word with its precomputed letter counts.
type entry struct {
	word   string
	counts LetterCounts
}

// Dictionary is the immutable, indexed word list.
type Dictionary struct {
	entries  []entry          // insertion order
	position map[string]int   // word -> index into entries
	byLength map[int][]int    // length -> positions
	byStart  map[byte][]int   // first letter -> positions
	byEnd    map[byte][]int   // last letter -> positions
	sorted   []int            // positions ordered alphabetically by word
	anagrams map[string][]int // sorted-letter key -> positions
	lengths  []int            // non-empty length classes, ascending
}

// Load reads a newline-delimited word list from r.
// Lines are trimmed and lowercased; blank lines are dropped, lines with
// anything other than a–z are skipped, and duplicates keep their first
// position. An unreadable source or a list with no usable words is a
// LOAD_FAILED error.
func Load(r io.Reader) (*Dictionary, error) {
	return load("reader", r)
}

// LoadFile loads the word list at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.LoadFailed(path, err)
	}
	defer f.Close()
	return load(path, f)
}

// LoadDefault loads the word list embedded in the binary.
func LoadDefault() (*Dictionary, error) {
	return load("embedded:words.txt", bytes.NewReader(assets.Words()))
}

func load(source string, r io.Reader) (*Dictionary, error) {
	d := &Dictionary{
		position: make(map[string]int),
		byLength: make(map[int][]int),
		byStart:  make(map[byte][]int),
		byEnd:    make(map[byte][]int),
		anagrams: make(map[string][]int),
	}

	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			skipped++
			continue
		}
		d.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.LoadFailed(source, err)
	}
	if len(d.entries) == 0 {
		return nil, apperr.New(apperr.CodeLoadFailed, "word list "+source+" has no usable words", nil)
	}

	d.buildSorted()
	log.Debug().
		Str("source", source).
		Int("words", len(d.entries)).
		Int("skipped", skipped).
		Ints("lengths", d.lengths).
		Msg("dictionary loaded")
	return d, nil
}

// add appends w to every index unless it is already present.
func (d *Dictionary) add(w string) {
	if _, dup := d.position[w]; dup {
		return
	}
	pos := len(d.entries)
	d.entries = append(d.entries, entry{word: w, counts: Counts(w)})
	d.position[w] = pos

	n := len(w)
	if _, ok := d.byLength[n]; !ok {
		d.lengths = append(d.lengths, n)
	}
	d.byLength[n] = append(d.byLength[n], pos)
	d.byStart[w[0]] = append(d.byStart[w[0]], pos)
	d.byEnd[w[n-1]] = append(d.byEnd[w[n-1]], pos)

	key := anagramKey(w)
	d.anagrams[key] = append(d.anagrams[key], pos)
}

func (d *Dictionary) buildSorted() {
	d.sorted = make([]int, len(d.entries))
	for i := range d.sorted {
		d.sorted[i] = i
	}
	slices.SortFunc(d.sorted, func(a, b int) int {
		return strings.Compare(d.entries[a].word, d.entries[b].word)
	})
	slices.Sort(d.lengths)
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Lengths returns the word lengths that have at least one word, ascending.
func (d *Dictionary) Lengths() []int { return slices.Clone(d.lengths) }

// Contains reports whether word is in the dictionary, ignoring case.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.position[strings.ToLower(word)]
	return ok
}

// OfLength returns every word of length n in insertion order.
func (d *Dictionary) OfLength(n int) []string {
	return d.wordsAt(d.byLength[n])
}

// Words returns the whole dictionary in insertion order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.word
	}
	return out
}

// wordsAt maps positions to words. The result is never nil.
func (d *Dictionary) wordsAt(positions []int) []string {
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, d.entries[p].word)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return s != ""
}

// IsLetters reports whether s is non-empty and made only of ASCII letters,
// in either case.
func IsLetters(s string) bool {
	return isAlpha(strings.ToLower(s))
}
