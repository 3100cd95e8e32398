package jumble

import (
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
	"github.com/robalobadob/jumble/apps/go-server/internal/words"
)

// stuckRand never moves anything, forcing the scrambler's fallback.
type stuckRand struct{}

func (stuckRand) IntN(int) int                { return 0 }
func (stuckRand) Shuffle(int, func(i, j int)) {}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	d, err := words.LoadDefault()
	require.NoError(t, err)
	return New(d, WithRand(NewSeededRand(42)))
}

func sortedRunes(s string) string {
	r := []rune(s)
	slices.Sort(r)
	return string(r)
}

func TestScramble_IsDifferentPermutation(t *testing.T) {
	s := NewScrambler(NewSeededRand(7))
	for _, w := range []string{"ab", "aab", "abba", "yellow", "elephant", "Mississippi", "noon"} {
		for range 50 {
			got, err := s.Scramble(w)
			require.NoError(t, err, w)
			assert.NotEqual(t, w, got)
			assert.Equal(t, sortedRunes(w), sortedRunes(got))
		}
	}
}

func TestScramble_Degenerate(t *testing.T) {
	s := NewScrambler(NewSeededRand(1))

	_, err := s.Scramble("")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	for _, w := range []string{"a", "Z", "aaa", "zzzzzz"} {
		_, err := s.Scramble(w)
		assert.ErrorIs(t, err, apperr.ErrUnscramblable, w)
	}
}

func TestScramble_FallbackWhenShufflesRepeat(t *testing.T) {
	s := NewScrambler(stuckRand{})

	got, err := s.Scramble("aab")
	require.NoError(t, err)
	assert.Equal(t, "baa", got)

	got, err = s.Scramble("ab")
	require.NoError(t, err)
	assert.Equal(t, "ba", got)
}

func TestScramble_Concurrent(t *testing.T) {
	e := newTestEngine(t)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, err := e.Scramble("planet")
				assert.NoError(t, err)
				assert.NotEqual(t, "planet", got)
			}
		}()
	}
	wg.Wait()
}

func TestGenerateSubWords_Properties(t *testing.T) {
	e := newTestEngine(t)
	dict := e.Dictionary()

	for _, seed := range []string{"yellow", "Garden", "stream", "elephant", "triangle"} {
		for _, m := range []int{1, 3, 5} {
			have := words.Counts(seed)
			for _, w := range e.GenerateSubWords(seed, opt.Some(m)) {
				assert.GreaterOrEqual(t, len(w), m)
				assert.True(t, dict.Contains(w))
				assert.False(t, strings.EqualFold(w, seed))
				assert.True(t, have.Covers(words.Counts(w)), "%s from %s", w, seed)
			}
		}
	}
}

func TestGenerateSubWords_Inputs(t *testing.T) {
	e := newTestEngine(t)

	assert.Len(t, e.GenerateSubWords("YELLOW", opt.None[int]()), 13)
	assert.Empty(t, e.GenerateSubWords("yel1ow", opt.None[int]()))
	assert.Empty(t, e.GenerateSubWords("", opt.None[int]()))
	assert.Empty(t, e.GenerateSubWords("yellow", opt.Some(0)))
	assert.Empty(t, e.GenerateSubWords("yellow", opt.Some(7)))
	assert.Equal(t, []string{"lowly", "welly"}, e.GenerateSubWords("yellow", opt.Some(5)))
}

func TestSearchWords(t *testing.T) {
	e := newTestEngine(t)

	assert.Empty(t, e.SearchWords(opt.None[rune](), opt.None[rune](), opt.None[int]()))

	got := e.SearchWords(opt.Some('a'), opt.None[rune](), opt.None[int]())
	require.NotEmpty(t, got)
	for _, w := range got {
		assert.True(t, strings.HasPrefix(w, "a"), w)
	}

	assert.Empty(t, e.SearchWords(opt.Some('1'), opt.None[rune](), opt.None[int]()))
}

func TestPalindromesAndExists(t *testing.T) {
	e := newTestEngine(t)

	got := e.Palindromes()
	require.NotEmpty(t, got)
	for _, w := range got {
		assert.Greater(t, len(w), 1)
		r := []rune(strings.ToLower(w))
		slices.Reverse(r)
		assert.Equal(t, strings.ToLower(w), string(r))
	}

	assert.True(t, e.Exists("Level"))
	assert.False(t, e.Exists("levle"))
	assert.Equal(t, []string{"level"}, e.WordsMatchingPrefix("LEV"))
}

func TestRandomWord(t *testing.T) {
	e := newTestEngine(t)

	w, ok := e.RandomWord(opt.Some(6))
	require.True(t, ok)
	assert.Len(t, w, 6)

	_, ok = e.RandomWord(opt.Some(42))
	assert.False(t, ok)

	w, ok = e.RandomWord(opt.None[int]())
	require.True(t, ok)
	assert.True(t, e.Exists(w))
}
