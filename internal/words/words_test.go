package words

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
)

func mustLoad(t *testing.T, list string) *Dictionary {
	t.Helper()
	d, err := Load(strings.NewReader(list))
	require.NoError(t, err)
	return d
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

// seqRand returns the queued values in order, modulo n.
type seqRand struct{ vals []int }

func (s *seqRand) IntN(n int) int {
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func TestLoad_Normalises(t *testing.T) {
	d := mustLoad(t, "  Apple \n\nBANANA\napple\nfoo1\nit's\n\tcherry\n")

	assert.Equal(t, []string{"apple", "banana", "cherry"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []int{5, 6}, d.Lengths())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(failingReader{})
	assert.ErrorIs(t, err, apperr.ErrLoad)

	_, err = Load(strings.NewReader("\n  \n123\n"))
	assert.ErrorIs(t, err, apperr.ErrLoad)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, apperr.ErrLoad)
}

func TestLoadDefault(t *testing.T) {
	d, err := LoadDefault()
	require.NoError(t, err)
	assert.True(t, d.Contains("yellow"))
	assert.NotEmpty(t, d.OfLength(6))
}

func TestContains(t *testing.T) {
	d := mustLoad(t, "cart\ncar\n")
	assert.True(t, d.Contains("car"))
	assert.True(t, d.Contains("CaRt"))
	assert.False(t, d.Contains("ca"))
	assert.False(t, d.Contains(""))
}

func TestWordsWithPrefix(t *testing.T) {
	d := mustLoad(t, "cart\ncar\ncat\ndog\ncarp\n")

	assert.Equal(t, []string{"cart", "car", "carp"}, d.WordsWithPrefix("CAR"))
	assert.Equal(t, []string{"dog"}, d.WordsWithPrefix("d"))
	assert.Empty(t, d.WordsWithPrefix("z"))
	assert.Empty(t, d.WordsWithPrefix(""))
	assert.Empty(t, d.WordsWithPrefix("c4"))
	assert.Empty(t, d.WordsWithPrefix("ca r"))
}

func TestSearch(t *testing.T) {
	d := mustLoad(t, "cart\ncar\ncat\ndog\ncarp\nact\n")

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filters", Filter{}, []string{}},
		{"start", Filter{Start: opt.Some('c')}, []string{"cart", "car", "cat", "carp"}},
		{"start upper case", Filter{Start: opt.Some('C')}, []string{"cart", "car", "cat", "carp"}},
		{"end", Filter{End: opt.Some('t')}, []string{"cart", "cat", "act"}},
		{"start and end", Filter{Start: opt.Some('c'), End: opt.Some('t')}, []string{"cart", "cat"}},
		{"start and length", Filter{Start: opt.Some('c'), Length: opt.Some(3)}, []string{"car", "cat"}},
		{"length only", Filter{Length: opt.Some(4)}, []string{"cart", "carp"}},
		{"length zero", Filter{Length: opt.Some(0)}, []string{}},
		{"negative length", Filter{Length: opt.Some(-1)}, []string{}},
		{"digit start", Filter{Start: opt.Some('1')}, []string{}},
		{"digit end", Filter{Start: opt.Some('c'), End: opt.Some('9')}, []string{}},
		{"symbol start", Filter{Start: opt.Some('!')}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Search(tt.filter))
		})
	}
}

func TestPalindromes(t *testing.T) {
	d := mustLoad(t, "a\neye\nlevel\nabc\nAa\nnoon\ni\n")

	got := d.Palindromes()
	assert.Equal(t, []string{"eye", "level", "aa", "noon"}, got)
	for _, w := range got {
		assert.Greater(t, len(w), 1)
	}
}

func TestRandomWord(t *testing.T) {
	d := mustLoad(t, "cat\ndog\nbird\nhorse\nmouse\n")
	rng := rand.New(rand.NewPCG(1, 2))

	for range 20 {
		w, ok := d.RandomWord(rng, opt.Some(5))
		require.True(t, ok)
		assert.Contains(t, []string{"horse", "mouse"}, w)
	}

	_, ok := d.RandomWord(rng, opt.Some(9))
	assert.False(t, ok)
}

func TestRandomWord_AnyLengthPicksClassFirst(t *testing.T) {
	// Three length classes: 3 (two words), 4 (one), 5 (two).
	d := mustLoad(t, "cat\ndog\nbird\nhorse\nmouse\n")

	// Class index 1 -> length 4, then the only word in it.
	w, ok := d.RandomWord(&seqRand{vals: []int{1, 0}}, opt.None[int]())
	require.True(t, ok)
	assert.Equal(t, "bird", w)

	// Class index 2 -> length 5, word index 1.
	w, ok = d.RandomWord(&seqRand{vals: []int{2, 1}}, opt.None[int]())
	require.True(t, ok)
	assert.Equal(t, "mouse", w)
}

func TestAnagrams(t *testing.T) {
	d, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, []string{"enlist", "inlets", "silent", "tinsel"}, d.Anagrams("LISTEN"))
	assert.Empty(t, d.Anagrams("zzz"))
	assert.Empty(t, d.Anagrams("li5ten"))
}

func TestSubWords_Yellow(t *testing.T) {
	d, err := LoadDefault()
	require.NoError(t, err)

	got := d.SubWords("yellow", 3)
	assert.ElementsMatch(t, []string{
		"low", "lowly", "lye", "ole", "owe", "owl", "well",
		"welly", "woe", "yell", "yeow", "yew", "yowl",
	}, got)
	assert.NotContains(t, got, "yellow")
}

func TestCounts(t *testing.T) {
	c := Counts("Yellow")
	assert.Equal(t, uint8(2), c['l'-'a'])
	assert.Equal(t, uint8(1), c['y'-'a'])

	assert.True(t, c.Covers(Counts("well")))
	assert.False(t, c.Covers(Counts("wool")))
	assert.True(t, c.Covers(Counts("")))
}
