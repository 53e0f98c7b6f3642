package chess

import (
	"errors"
	"fmt"
)

// Sentinel errors for the board engine. Use errors.Is to test for these
// across the fmt.Errorf wrapping this package applies for context.
var (
	// ErrBadFen indicates a FEN string that could not be parsed.
	ErrBadFen = errors.New("chess: invalid FEN")
	// ErrNoPieceToMove indicates Push was called with an empty origin square.
	ErrNoPieceToMove = errors.New("chess: no piece to move")
	// ErrIllegalMove indicates a SAN or UCI move with no matching legal move.
	ErrIllegalMove = errors.New("chess: illegal move")
	// ErrBadUCI indicates text that does not match the UCI move grammar.
	ErrBadUCI = errors.New("chess: invalid UCI move")
)

// ParseError records a single move that could not be resolved while
// building a game tree from a PGN move list. It is collected onto
// Game.Errors rather than aborting the build.
type ParseError struct {
	Message    string
	SAN        string
	FEN        string
	MoveNumber int
	err        error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.MoveNumber > 0 {
		return fmt.Sprintf("move %d (%q) at %s: %s", e.MoveNumber, e.SAN, e.FEN, e.Message)
	}
	return fmt.Sprintf("move %q at %s: %s", e.SAN, e.FEN, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.err
}

func newParseError(san, fen, message string, cause error) *ParseError {
	return &ParseError{Message: message, SAN: san, FEN: fen, err: cause}
}
