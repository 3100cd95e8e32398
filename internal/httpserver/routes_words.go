// HTTP routes for dictionary queries, all GET under /api/words.
// Form-level validation (trim, blank, single-letter, integer) happens here;
// the engine itself answers malformed input with an empty list.

package httpserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
	"github.com/robalobadob/jumble/apps/go-server/internal/words"
)

const msgBlank = "must not be blank"

func (s *Server) mountWords(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/exists", s.handleExists)
		r.Get("/prefix", s.handlePrefix)
		r.Get("/search", s.handleSearch)
		r.Get("/subwords", s.handleSubWords)
		r.Get("/scramble", s.handleScramble)
		r.Get("/palindromes", s.handlePalindromes)
		r.Get("/anagrams", s.handleAnagrams)
		r.Get("/random", s.handleRandom)
	})
}

type wordsRes struct {
	Words []string `json:"words"`
}

// requiredParam returns the trimmed parameter or answers 400 when blank.
func requiredParam(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		badRequest(w, key+" "+msgBlank)
		return "", false
	}
	return v, true
}

// letterParam reads an optional single-letter parameter.
func letterParam(r *http.Request, key string) (opt.Value[rune], bool) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return opt.None[rune](), true
	}
	if len(v) != 1 || !words.IsLetters(v) {
		return opt.None[rune](), false
	}
	return opt.Some(rune(v[0])), true
}

func (s *Server) handleExists(w http.ResponseWriter, r *http.Request) {
	word, ok := requiredParam(w, r, "word")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"word": word, "exists": s.deps.Engine.Exists(word)})
}

func (s *Server) handlePrefix(w http.ResponseWriter, r *http.Request) {
	prefix, ok := requiredParam(w, r, "prefix")
	if !ok {
		return
	}
	if !words.IsLetters(strings.Join(strings.Fields(prefix), "")) {
		badRequest(w, "Prefix must not contain numbers or symbols")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"prefix": prefix,
		"words":  s.deps.Engine.WordsMatchingPrefix(prefix),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start, ok := letterParam(r, "start_char")
	if !ok {
		badRequest(w, "Invalid startChar")
		return
	}
	end, ok := letterParam(r, "end_char")
	if !ok {
		badRequest(w, "Invalid endChar")
		return
	}
	length, ok := queryInt(r.URL.Query(), "length")
	if !ok {
		badRequest(w, "Invalid length")
		return
	}
	writeJSON(w, http.StatusOK, wordsRes{Words: s.deps.Engine.SearchWords(start, end, length)})
}

func (s *Server) handleSubWords(w http.ResponseWriter, r *http.Request) {
	word, ok := requiredParam(w, r, "word")
	if !ok {
		return
	}
	minLength, ok := queryInt(r.URL.Query(), "min_length")
	if !ok {
		badRequest(w, "Invalid min_length")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":  word,
		"words": s.deps.Engine.GenerateSubWords(word, minLength),
	})
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	word, ok := requiredParam(w, r, "word")
	if !ok {
		return
	}
	scrambled, err := s.deps.Engine.Scramble(word)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"word": word, "scramble": scrambled})
}

func (s *Server) handlePalindromes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wordsRes{Words: s.deps.Engine.Palindromes()})
}

func (s *Server) handleAnagrams(w http.ResponseWriter, r *http.Request) {
	word, ok := requiredParam(w, r, "word")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":  word,
		"words": s.deps.Engine.Anagrams(word),
	})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	length, ok := queryInt(r.URL.Query(), "length")
	if !ok {
		badRequest(w, "Invalid length")
		return
	}
	word, found := s.deps.Engine.RandomWord(length)
	if !found {
		writeError(w, r, apperr.NoWordAvailable(length.Or(0)))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"word": word})
}
