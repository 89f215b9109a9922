package service

import "errors"

// Error kinds carried by service errors. Handlers map them onto HTTP
// status codes with errors.Is; the error's message is the human-readable
// detail sent to the client.
var (
	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or invariant violation.
	ErrConflict = errors.New("conflict")
	// ErrBadInput marks malformed or unsupported client input.
	ErrBadInput = errors.New("bad input")
)

// kindError pairs a client-facing message with an error kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }
func conflict(msg string) error { return &kindError{kind: ErrConflict, msg: msg} }
func badInput(msg string) error { return &kindError{kind: ErrBadInput, msg: msg} }
