package streamcsv

import (
	"errors"
	"fmt"

	"github.com/cktan-csv/streamcsv/internal/buffer"
)

// Sentinel errors identifying the core's error taxonomy. Use errors.Is
// against these, or errors.As against *ParseError, to classify a
// failure returned from Parse.
var (
	// ErrUnterminatedRow means EOF arrived mid-row with no closing newline.
	ErrUnterminatedRow = errors.New("unterminated row")
	// ErrUnterminatedQuote means EOF arrived inside a quoted value whose
	// closing quote never appeared.
	ErrUnterminatedQuote = errors.New("unterminated quote")
	// ErrCallback is substituted for a perrow error that carries no
	// message of its own.
	ErrCallback = errors.New("perrow callback failed")
	// ErrRowTooLarge means a single row (commonly an unterminated quoted
	// field) grew past Config.MaxBufSize before a terminator was found.
	ErrRowTooLarge = buffer.ErrRowTooLarge
	// ErrOutOfMemory means growing the input buffer failed; the runtime
	// could not satisfy the allocation for the configured MaxBufSize.
	ErrOutOfMemory = buffer.ErrOutOfMemory
)

// ParseError wraps a core error with the line, row and column it
// occurred at, matching the "(line L, row R, col C) cause" format of
// the reference implementation's error strings.
type ParseError struct {
	Line, Row, Col int64
	Err            error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("(line %d, row %d, col %d) %v", e.Line, e.Row, e.Col, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func wrapCallbackErr(err error) error {
	if err.Error() == "" {
		return ErrCallback
	}
	return err
}
