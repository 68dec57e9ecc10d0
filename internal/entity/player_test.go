package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

func TestNewPlayer(t *testing.T) {
	t.Run("Creates a player with a trimmed name", func(t *testing.T) {
		// When: creating a player with padded name
		player, err := NewPlayer("  Alice ", MarkX)

		// Then: the name is trimmed and the mark kept
		require.NoError(t, err)
		assert.Equal(t, "Alice", player.Name())
		assert.Equal(t, MarkX, player.Mark())
		assert.Equal(t, "Alice (X)", player.String())
	})

	t.Run("Error on empty name", func(t *testing.T) {
		player, err := NewPlayer("   ", MarkO)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Nil(t, player)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		player, err := NewPlayer("Bob", MarkEmpty)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Nil(t, player)
	})

	t.Run("Error on unknown mark", func(t *testing.T) {
		player, err := NewPlayer("Bob", Mark("Z"))

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
		assert.Nil(t, player)
	})
}
