package words

import "github.com/robalobadob/jumble/apps/go-server/internal/opt"

// Rand is the randomness RandomWord needs. *math/rand/v2.Rand satisfies it;
// so does jumble.LockedRand for shared use.
type Rand interface {
	// IntN returns a uniform int in [0, n). n > 0.
	IntN(n int) int
}

// RandomWord picks a word uniformly from the words of the given length.
// With no length, it first picks uniformly among the lengths that have
// words, then a word within that length, so short and long words are
// equally likely regardless of how many of each the list holds.
// ok is false when no word has the requested length.
func (d *Dictionary) RandomWord(rng Rand, length opt.Value[int]) (word string, ok bool) {
	n, set := length.Get()
	if !set {
		if len(d.lengths) == 0 {
			return "", false
		}
		n = d.lengths[rng.IntN(len(d.lengths))]
	}
	class := d.byLength[n]
	if len(class) == 0 {
		return "", false
	}
	return d.entries[class[rng.IntN(len(class))]].word, true
}
