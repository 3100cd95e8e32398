// Session state machine for a single jumble game.
// Responsibilities:
//   - Build a session from a word, its scramble and its target subwords.
//   - Apply guesses: flip one target from unguessed to guessed.
//   - Track state transitions: active → completed.
//
// Notes:
//   - Target keys are lowercase; guesses are trimmed and lowercased before lookup.
//   - Re-submitting an already guessed word is an incorrect guess and changes nothing.

package game

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// NewSession builds a session with every target unguessed.
// Targets equal to original (ignoring case) and duplicates are dropped.
func NewSession(id, original, scrambled string, targets []string, minLength int, now time.Time) *Session {
	original = strings.ToLower(original)
	keys := lo.Uniq(lo.FilterMap(targets, func(w string, _ int) (string, bool) {
		w = strings.ToLower(w)
		return w, w != "" && w != original
	}))
	slices.Sort(keys)

	s := &Session{
		ID:         id,
		Original:   original,
		Scrambled:  scrambled,
		MinLength:  minLength,
		CreatedAt:  now,
		LastAccess: now,
		targets:    make(map[string]bool, len(keys)),
		order:      keys,
		guessed:    []string{},
		remaining:  len(keys),
	}
	for _, k := range keys {
		s.targets[k] = false
	}
	return s
}

// ApplyGuess checks word against the targets and records it if it is a
// target that has not been guessed yet.
//
// Outcomes:
//   - blank, not a target, or already guessed → ResultIncorrect, no change.
//   - new target with others left → ResultCorrect.
//   - new target and none left → ResultAllGuessed.
func (s *Session) ApplyGuess(word string) Result {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return ResultIncorrect
	}
	done, ok := s.targets[key]
	if !ok || done {
		return ResultIncorrect
	}

	s.targets[key] = true
	s.guessed = append(s.guessed, key)
	s.remaining--
	if s.remaining == 0 {
		return ResultAllGuessed
	}
	return ResultCorrect
}

// Status reports whether targets remain.
func (s *Session) Status() Status {
	if s.remaining == 0 {
		return StatusCompleted
	}
	return StatusActive
}

// Total is the number of target words.
func (s *Session) Total() int { return len(s.order) }

// Remaining is the number of unguessed target words.
func (s *Session) Remaining() int { return s.remaining }

// Targets returns the target words in sorted order.
func (s *Session) Targets() []string { return slices.Clone(s.order) }

// Guessed returns the correctly guessed words in guess order.
func (s *Session) Guessed() []string { return slices.Clone(s.guessed) }

// View snapshots the session with the given outcome and submitted guess.
func (s *Session) View(res Result, guess string) View {
	return View{
		Result:         res,
		ID:             s.ID,
		OriginalWord:   s.Original,
		ScrambleWord:   s.Scrambled,
		GuessWord:      guess,
		TotalWords:     s.Total(),
		RemainingWords: s.remaining,
		GuessedWords:   s.Guessed(),
		Status:         s.Status(),
	}
}

// Clone returns a deep copy that shares nothing with s.
func (s *Session) Clone() *Session {
	cp := *s
	cp.targets = make(map[string]bool, len(s.targets))
	for k, v := range s.targets {
		cp.targets[k] = v
	}
	cp.order = slices.Clone(s.order)
	cp.guessed = slices.Clone(s.guessed)
	return &cp
}
