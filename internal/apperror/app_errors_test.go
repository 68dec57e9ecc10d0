package apperror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidMoveKinds(t *testing.T) {
	t.Run("Malformed input is an invalid move", func(t *testing.T) {
		assert.ErrorIs(t, ErrMalformedInput, ErrInvalidMove)
		assert.NotErrorIs(t, ErrMalformedInput, ErrCellOccupied)
	})

	t.Run("Occupied cell is an invalid move", func(t *testing.T) {
		assert.ErrorIs(t, ErrCellOccupied, ErrInvalidMove)
		assert.NotErrorIs(t, ErrCellOccupied, ErrMalformedInput)
	})
}
