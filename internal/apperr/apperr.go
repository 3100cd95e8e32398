// Package apperr defines the coded error taxonomy shared by the word engine,
// the game service and the HTTP adapter.
//
// Every error carries a stable Code. Sentinel values (ErrGameNotFound, ...)
// match any *Error with the same code under errors.Is, so callers can test
// the kind without caring about the message.
package apperr

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeLoadFailed      = "LOAD_FAILED"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNoWordAvailable = "NO_WORD_AVAILABLE"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeInvalidGameID   = "INVALID_GAME_ID"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeUnscramblable   = "UNSCRAMBLABLE"
)

// Error is a domain error with a stable code.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrLoad            = &Error{Code: CodeLoadFailed}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrNoWordAvailable = &Error{Code: CodeNoWordAvailable}
	ErrGameNotFound    = &Error{Code: CodeGameNotFound}
	ErrInvalidGameID   = &Error{Code: CodeInvalidGameID}
	ErrInvalidInput    = &Error{Code: CodeInvalidInput}
	ErrUnscramblable   = &Error{Code: CodeUnscramblable}
)

// New creates an Error.
func New(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// LoadFailed wraps a dictionary read/parse failure.
func LoadFailed(source string, err error) *Error {
	return New(CodeLoadFailed, fmt.Sprintf("cannot load word list %q", source), err)
}

// InvalidArgument reports a bad parameter supplied by the caller.
func InvalidArgument(format string, args ...any) *Error {
	return New(CodeInvalidArgument, fmt.Sprintf(format, args...), nil)
}

// NoWordAvailable reports that the dictionary has no word of the length.
func NoWordAvailable(length int) *Error {
	return New(CodeNoWordAvailable, fmt.Sprintf("no word of length %d", length), nil)
}

// GameNotFound reports a well-formed id with no session behind it.
func GameNotFound(id string) *Error {
	return New(CodeGameNotFound, fmt.Sprintf("game not found: %s", id), nil)
}

// InvalidGameID reports an id that is absent or malformed.
func InvalidGameID(id string) *Error {
	return New(CodeInvalidGameID, fmt.Sprintf("invalid game id: %q", id), nil)
}

// InvalidInput reports input that violates an operation precondition.
func InvalidInput(reason string) *Error {
	return New(CodeInvalidInput, reason, nil)
}

// Unscramblable reports a word with no permutation different from itself.
func Unscramblable(word string) *Error {
	return New(CodeUnscramblable, fmt.Sprintf("word %q cannot be scrambled", word), nil)
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
