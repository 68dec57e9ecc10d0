package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidPlayer   = errors.New("invalid player configuration")
	ErrTooManyAttempts = errors.New("too many invalid attempts")

	// ErrMalformedInput and ErrCellOccupied are both kinds of ErrInvalidMove.
	ErrMalformedInput = fmt.Errorf("%w: malformed input", ErrInvalidMove)
	ErrCellOccupied   = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
)
