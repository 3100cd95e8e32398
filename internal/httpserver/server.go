// HTTP server wiring for the jumble backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, CORS, timeouts, panic recovery).
//   - Diagnostics: "/", "/health", "/stats".
//   - Game endpoints under /api/game (rate limited per client IP).
//   - Word query endpoints under /api/words.
//   - One place mapping domain error codes to HTTP statuses.
//
// Notes:
//   - Every response is JSON; errors are {"error": "...", "code": "..."}.
//   - Unknown or malformed game ids answer 404 with the game result message,
//     matching what clients of the guess endpoint expect.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/game"
	"github.com/robalobadob/jumble/apps/go-server/internal/history"
	"github.com/robalobadob/jumble/apps/go-server/internal/jumble"
)

// SessionCounter reports how many games are live.
type SessionCounter interface {
	Len() int
}

// HistoryReader answers aggregate queries over past games.
type HistoryReader interface {
	Stats(ctx context.Context) (history.Stats, error)
	DailyBoard(ctx context.Context, day string, limit int) ([]history.BoardRow, error)
}

// Deps are the collaborators the handlers call into.
type Deps struct {
	Engine   *jumble.Engine
	Games    *game.Service
	Sessions SessionCounter
	History  HistoryReader // optional
}

// Options tune HTTP behaviour.
type Options struct {
	ClientOrigin     string
	RequestTimeout   time.Duration
	DefaultLength    int
	DefaultMinLength int
	RateLimitRPS     int
	RateLimitBurst   int
}

// Server bundles the router and its dependencies.
type Server struct {
	r       *chi.Mux
	deps    Deps
	opts    Options
	limiter *ipLimiter
	started time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps, o Options) *Server {
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.DefaultLength <= 0 {
		o.DefaultLength = 6
	}
	if o.DefaultMinLength <= 0 {
		o.DefaultMinLength = jumble.DefaultMinLength
	}
	s := &Server{
		r:       chi.NewRouter(),
		deps:    d,
		opts:    o,
		limiter: newIPLimiter(o.RateLimitRPS, o.RateLimitBurst),
		started: time.Now(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog())                     // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(o.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(o.ClientOrigin))            // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "jumble-go",
			"endpoints": []string{"/health", "/stats", "/api/game/*", "/api/words/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/stats", s.handleStats)

	s.r.Route("/api", func(r chi.Router) {
		s.mountGame(r)
		s.mountWords(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go s.limiter.runCleanup(ctx, time.Minute, time.Hour)

	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statsRes struct {
	LiveGames  int            `json:"live_games"`
	Words      int            `json:"words"`
	UptimeSecs int64          `json:"uptime_secs"`
	History    *history.Stats `json:"history,omitempty"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	res := statsRes{
		Words:      s.deps.Engine.Dictionary().Len(),
		UptimeSecs: int64(time.Since(s.started).Seconds()),
	}
	if s.deps.Sessions != nil {
		res.LiveGames = s.deps.Sessions.Len()
	}
	if s.deps.History != nil {
		st, err := s.deps.History.Stats(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("history stats")
		} else {
			res.History = &st
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// ----------------------------- responses -----------------------------------

type errorRes struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// badRequest answers 400 with a form-level validation message.
func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorRes{Error: msg, Code: apperr.CodeInvalidArgument})
}

// statusFor maps domain error codes to HTTP statuses.
func statusFor(err error) int {
	switch apperr.CodeOf(err) {
	case apperr.CodeInvalidArgument, apperr.CodeInvalidInput:
		return http.StatusBadRequest
	case apperr.CodeGameNotFound, apperr.CodeInvalidGameID:
		return http.StatusNotFound
	case apperr.CodeNoWordAvailable, apperr.CodeUnscramblable:
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError renders err with the status its code maps to.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		msg = "internal error"
	}
	writeJSON(w, status, errorRes{Error: msg, Code: apperr.CodeOf(err)})
}
