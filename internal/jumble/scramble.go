package jumble

import (
	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
)

// maxShuffles bounds the retry loop. For a word with two distinct letters
// the chance that every shuffle reproduces the input is at most 2^-8.
const maxShuffles = 8

// Scrambler permutes the letters of a word.
type Scrambler struct {
	rng Rand
}

// NewScrambler returns a Scrambler drawing from rng.
func NewScrambler(rng Rand) *Scrambler {
	return &Scrambler{rng: rng}
}

// Scramble returns a permutation of word's characters that differs from word.
//
// An empty word is INVALID_INPUT. A single character, or a word whose
// characters are all the same, has no differing permutation and is
// UNSCRAMBLABLE. Otherwise the result always differs from the input: after
// maxShuffles unlucky shuffles the first character is swapped with the first
// character that differs from it.
func (s *Scrambler) Scramble(word string) (string, error) {
	if word == "" {
		return "", apperr.InvalidInput("word to scramble must not be empty")
	}
	letters := []rune(word)
	if !hasTwoDistinct(letters) {
		return "", apperr.Unscramblable(word)
	}

	for range maxShuffles {
		s.rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		if out := string(letters); out != word {
			return out, nil
		}
	}

	// letters equals word here.
	for i := 1; i < len(letters); i++ {
		if letters[i] != letters[0] {
			letters[0], letters[i] = letters[i], letters[0]
			break
		}
	}
	return string(letters), nil
}

func hasTwoDistinct(rs []rune) bool {
	for _, r := range rs[1:] {
		if r != rs[0] {
			return true
		}
	}
	return false
}
