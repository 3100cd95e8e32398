// Core type definitions for the jumble game.
// Defines:
//   - Status: coarse lifecycle state (active/completed).
//   - Result: the outcome message reported for every game operation.
//   - Session: state for a single puzzle instance.
//   - View: an immutable snapshot handed to callers.

package game

import "time"

// Status is the lifecycle state of a session.
type Status string

const (
	StatusActive    Status = "active"    // some target words are still unguessed
	StatusCompleted Status = "completed" // every target word has been guessed
)

// Result is the outcome message of a game operation.
type Result string

const (
	ResultCreated    Result = "Created new game."
	ResultCorrect    Result = "Guessed correctly."
	ResultIncorrect  Result = "Guessed incorrectly."
	ResultAllGuessed Result = "All words guessed."
	ResultInvalidID  Result = "Invalid Game ID."
	ResultNotFound   Result = "Game board/state not found."
	ResultState      Result = "Game state retrieved."
)

// Session holds the state of one puzzle.
//
// Sessions are not safe for concurrent use on their own; the store that owns
// them serialises access per session.
type Session struct {
	ID         string    // random UUIDv4, also the credential for guessing
	Original   string    // the picked word (lowercase)
	Scrambled  string    // permutation of Original shown to the player
	MinLength  int       // shortest target word length
	CreatedAt  time.Time // creation time
	LastAccess time.Time // last create/guess/read, used for expiry

	targets   map[string]bool // target word -> guessed
	order     []string        // target words, sorted
	guessed   []string        // guessed targets in guess order
	remaining int             // count of false entries in targets
}

// View is a read-only snapshot of a session plus the outcome that produced it.
type View struct {
	Result         Result
	ID             string
	OriginalWord   string
	ScrambleWord   string
	GuessWord      string // submitted guess; empty when none was given
	TotalWords     int
	RemainingWords int
	GuessedWords   []string
	Status         Status
}
