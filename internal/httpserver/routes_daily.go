// HTTP routes for the daily puzzle.
// Exposes two endpoints under /api/game/daily:
//   - GET /api/game/daily       → start a game on today's word (rate limited)
//   - GET /api/game/daily/board → fastest completed daily games for a date
//
// Every player gets the same word on the same UTC day. Word selection is
// deterministic from date + DAILY_SALT.

package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/jumble/apps/go-server/internal/daily"
	"github.com/robalobadob/jumble/apps/go-server/internal/history"
)

// mountDaily registers the daily routes; limited carries the rate limiter.
func (s *Server) mountDaily(r, limited chi.Router) {
	limited.Get("/daily", s.handleDailyNew)
	r.Get("/daily/board", s.handleDailyBoard)
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	length, minLength, ok := s.gameParams(w, r)
	if !ok {
		return
	}
	v, err := s.deps.Games.CreateDailyGame(r.Context(), time.Now().UTC(), length, minLength)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameRes(v))
}

type boardRes struct {
	Date string             `json:"date"`
	Rows []history.BoardRow `json:"rows"`
}

// handleDailyBoard returns the top results for ?date=YYYY-MM-DD (default today).
func (s *Server) handleDailyBoard(w http.ResponseWriter, r *http.Request) {
	if s.deps.History == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorRes{Error: "history disabled"})
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = daily.DateKey(time.Now())
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		badRequest(w, "Invalid date")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			badRequest(w, "Invalid limit")
			return
		}
		limit = n
	}

	rows, err := s.deps.History.DailyBoard(r.Context(), date, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boardRes{Date: date, Rows: rows})
}
