package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/jumble/apps/go-server/internal/apperr"
	"github.com/robalobadob/jumble/apps/go-server/internal/daily"
	"github.com/robalobadob/jumble/apps/go-server/internal/jumble"
	"github.com/robalobadob/jumble/apps/go-server/internal/opt"
)

// MinWordLength is the shortest puzzle word accepted by CreateGame.
const MinWordLength = 3

// maxPicks bounds how many words are tried when a pick cannot be scrambled.
const maxPicks = 5

// Repository persists sessions. Implementations must run Update's fn while
// holding exclusive access to that session.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	// Get returns a snapshot the caller may keep.
	Get(ctx context.Context, id string) (*Session, error)
	// Update applies fn to the stored session atomically.
	Update(ctx context.Context, id string, fn func(*Session) error) error
}

// Recorder receives game events. Failures are logged and never reach the caller.
type Recorder interface {
	RecordGame(ctx context.Context, v View, minLength int, daily bool) error
	RecordGuess(ctx context.Context, v View) error
}

// Service runs games over the word engine and a session repository.
type Service struct {
	engine   *jumble.Engine
	repo     Repository
	recorder Recorder
	salt     string
	now      func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithRecorder attaches a game event recorder.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) { s.recorder = r }
}

// WithDailySalt sets the secret mixed into the daily word pick.
func WithDailySalt(salt string) ServiceOption {
	return func(s *Service) { s.salt = salt }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService wires a Service.
func NewService(engine *jumble.Engine, repo Repository, opts ...ServiceOption) *Service {
	s := &Service{engine: engine, repo: repo, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func validateLengths(length, minLen int) error {
	switch {
	case minLen <= 0:
		return apperr.InvalidArgument("min length must be positive, got %d", minLen)
	case length < MinWordLength:
		return apperr.InvalidArgument("word length must be at least %d, got %d", MinWordLength, length)
	case minLen > length:
		return apperr.InvalidArgument("min length %d exceeds word length %d", minLen, length)
	}
	return nil
}

// CreateGame starts a game on a random word of the given length.
// minLength defaults to jumble.DefaultMinLength.
func (s *Service) CreateGame(ctx context.Context, length int, minLength opt.Value[int]) (View, error) {
	minLen := minLength.Or(jumble.DefaultMinLength)
	if err := validateLengths(length, minLen); err != nil {
		return View{}, err
	}

	var lastErr error
	for range maxPicks {
		word, ok := s.engine.RandomWord(opt.Some(length))
		if !ok {
			return View{}, apperr.NoWordAvailable(length)
		}
		v, err := s.start(ctx, word, minLen, false)
		if errors.Is(err, apperr.ErrUnscramblable) {
			lastErr = err
			continue
		}
		return v, err
	}
	return View{}, lastErr
}

// CreateDailyGame starts a game on the word of the day for now's UTC date.
// If that word cannot be scrambled the next words of the class are tried.
func (s *Service) CreateDailyGame(ctx context.Context, now time.Time, length int, minLength opt.Value[int]) (View, error) {
	minLen := minLength.Or(jumble.DefaultMinLength)
	if err := validateLengths(length, minLen); err != nil {
		return View{}, err
	}

	picks := daily.Candidates(now, s.salt, s.engine.Dictionary().OfLength(length), maxPicks)
	if len(picks) == 0 {
		return View{}, apperr.NoWordAvailable(length)
	}
	var lastErr error
	for _, word := range picks {
		v, err := s.start(ctx, word, minLen, true)
		if errors.Is(err, apperr.ErrUnscramblable) {
			lastErr = err
			continue
		}
		return v, err
	}
	return View{}, lastErr
}

func (s *Service) start(ctx context.Context, word string, minLen int, isDaily bool) (View, error) {
	scrambled, err := s.engine.Scramble(word)
	if err != nil {
		return View{}, err
	}
	targets := s.engine.GenerateSubWords(word, opt.Some(minLen))

	sess := NewSession(uuid.NewString(), word, scrambled, targets, minLen, s.now())
	if err := s.repo.Create(ctx, sess); err != nil {
		return View{}, fmt.Errorf("create session: %w", err)
	}
	v := sess.View(ResultCreated, "")

	log.Info().
		Str("game_id", v.ID).
		Int("length", len(word)).
		Int("min_length", minLen).
		Int("targets", v.TotalWords).
		Bool("daily", isDaily).
		Msg("game created")

	if s.recorder != nil {
		if err := s.recorder.RecordGame(ctx, v, minLen, isDaily); err != nil {
			log.Warn().Err(err).Str("game_id", v.ID).Msg("record game failed")
		}
	}
	return v, nil
}

// parseID validates id and returns its canonical form.
func parseID(id string) (string, error) {
	if id == "" {
		return "", apperr.InvalidGameID(id)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", apperr.InvalidGameID(id)
	}
	return u.String(), nil
}

// Guess submits word against the session id.
// The returned View carries the outcome even when err is non-nil.
func (s *Service) Guess(ctx context.Context, id, word string) (View, error) {
	key, err := parseID(id)
	if err != nil {
		return View{Result: ResultInvalidID, ID: id, GuessWord: word}, err
	}

	var v View
	err = s.repo.Update(ctx, key, func(sess *Session) error {
		v = sess.View(sess.ApplyGuess(word), word)
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrGameNotFound) {
			return View{Result: ResultNotFound, ID: id, GuessWord: word}, err
		}
		return View{}, err
	}

	log.Debug().
		Str("game_id", v.ID).
		Str("result", string(v.Result)).
		Int("remaining", v.RemainingWords).
		Msg("guess applied")

	if s.recorder != nil {
		if err := s.recorder.RecordGuess(ctx, v); err != nil {
			log.Warn().Err(err).Str("game_id", v.ID).Msg("record guess failed")
		}
	}
	return v, nil
}

// State returns the current snapshot of a session without changing it.
func (s *Service) State(ctx context.Context, id string) (View, error) {
	key, err := parseID(id)
	if err != nil {
		return View{Result: ResultInvalidID, ID: id}, err
	}
	sess, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperr.ErrGameNotFound) {
			return View{Result: ResultNotFound, ID: id}, err
		}
		return View{}, err
	}
	return sess.View(ResultState, ""), nil
}
