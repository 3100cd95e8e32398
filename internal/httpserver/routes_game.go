// HTTP routes for jumble games.
//   - GET|POST /api/game/new   → start a game (length, min_length optional)
//   - POST     /api/game/guess → submit {id, word}
//   - GET      /api/game/{id}  → current state of a game
//
// Daily games are mounted from routes_daily.go under the same prefix.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
)

func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		limited := r.With(s.limiter.middleware)
		limited.Get("/new", s.handleNewGame)
		limited.Post("/new", s.handleNewGame)
		limited.Post("/guess", s.handleGuess)
		s.mountDaily(r, limited)
		r.Get("/{id}", s.handleState)
	})
}

// gameRes is the wire form of a game.View.
type gameRes struct {
	Result         string   `json:"result"`
	ID             string   `json:"id"`
	OriginalWord   string   `json:"original_word"`
	ScrambleWord   string   `json:"scramble_word"`
	GuessWord      string   `json:"guess_word,omitempty"`
	TotalWords     int      `json:"total_words"`
	RemainingWords int      `json:"remaining_words"`
	GuessedWords   []string `json:"guessed_words"`
	Status         string   `json:"status"`
}

func toGameRes(v game.View) gameRes {
	guessed := v.GuessedWords
	if guessed == nil {
		guessed = []string{}
	}
	return gameRes{
		Result:         string(v.Result),
		ID:             v.ID,
		OriginalWord:   v.OriginalWord,
		ScrambleWord:   v.ScrambleWord,
		GuessWord:      v.GuessWord,
		TotalWords:     v.TotalWords,
		RemainingWords: v.RemainingWords,
		GuessedWords:   guessed,
		Status:         string(v.Status),
	}
}

// resultRes answers lookups that never reached a game.
type resultRes struct {
	Result string `json:"result"`
	ID     string `json:"id,omitempty"`
}

// writeGameError renders id failures as a 404 carrying the game result
// message and everything else through writeError.
func writeGameError(w http.ResponseWriter, r *http.Request, v game.View, err error) {
	if errors.Is(err, apperr.ErrInvalidGameID) || errors.Is(err, apperr.ErrGameNotFound) {
		writeJSON(w, http.StatusNotFound, resultRes{Result: string(v.Result), ID: v.ID})
		return
	}
	writeError(w, r, err)
}

// queryInt reads an optional integer query parameter.
// ok is false when the parameter is present but not an integer.
func queryInt(q url.Values, key string) (v opt.Value[int], ok bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return opt.None[int](), true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return opt.None[int](), false
	}
	return opt.Some(n), true
}

// newGameReq is the optional POST body for /game/new; fields override the query.
type newGameReq struct {
	Length    *int `json:"length"`
	MinLength *int `json:"min_length"`
}

// gameParams reads length and min_length from the query and, for POST, the body.
func (s *Server) gameParams(w http.ResponseWriter, r *http.Request) (length int, minLength opt.Value[int], ok bool) {
	q := r.URL.Query()
	l, ok := queryInt(q, "length")
	if !ok {
		badRequest(w, "Invalid length")
		return 0, minLength, false
	}
	m, ok := queryInt(q, "min_length")
	if !ok {
		badRequest(w, "Invalid min_length")
		return 0, minLength, false
	}

	if r.Method == http.MethodPost && r.Body != nil {
		var req newGameReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			badRequest(w, "bad_json")
			return 0, minLength, false
		}
		if req.Length != nil {
			l = opt.Some(*req.Length)
		}
		if req.MinLength != nil {
			m = opt.Some(*req.MinLength)
		}
	}
	return l.Or(s.opts.DefaultLength), opt.Some(m.Or(s.opts.DefaultMinLength)), true
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	length, minLength, ok := s.gameParams(w, r)
	if !ok {
		return
	}
	v, err := s.deps.Games.CreateGame(r.Context(), length, minLength)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameRes(v))
}

// guessReq is the body of POST /game/guess. Both fields may be null.
type guessReq struct {
	ID   *string `json:"id"`
	Word *string `json:"word"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, "bad_json")
		return
	}
	var id, word string
	if req.ID != nil {
		id = strings.TrimSpace(*req.ID)
	}
	if req.Word != nil {
		word = *req.Word
	}

	v, err := s.deps.Games.Guess(r.Context(), id, word)
	if err != nil {
		writeGameError(w, r, v, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameRes(v))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.deps.Games.State(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeGameError(w, r, v, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameRes(v))
}
