package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/mines"
)

func newTestGame(t *testing.T) *mines.GameState {
	t.Helper()
	params := mines.DefaultParams()
	game, err := mines.NewGame(&params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return game
}

func TestExecuteCommand(t *testing.T) {
	t.Run("get state leaves game untouched", func(t *testing.T) {
		game := newTestGame(t)
		before := *game
		require.NoError(t, executeCommand(game, "g"))
		assert.Equal(t, before, *game)
	})

	t.Run("flag toggles a tile", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, executeCommand(game, "f 0"))
		assert.True(t, game.Board[0].Flagged)
		require.NoError(t, executeCommand(game, "f 0"))
		assert.False(t, game.Board[0].Flagged)
	})

	t.Run("resign ends the game", func(t *testing.T) {
		game := newTestGame(t)
		require.NoError(t, executeCommand(game, "r"))
		assert.True(t, game.GameOver)
		assert.False(t, game.Won)
	})

	t.Run("unknown command", func(t *testing.T) {
		game := newTestGame(t)
		assert.Error(t, executeCommand(game, "x"))
	})

	t.Run("wrong argument count", func(t *testing.T) {
		game := newTestGame(t)
		assert.Error(t, executeCommand(game, "c"))
		assert.Error(t, executeCommand(game, "g 1"))
	})

	t.Run("non-numeric index", func(t *testing.T) {
		game := newTestGame(t)
		assert.Error(t, executeCommand(game, "c one"))
	})

	t.Run("index off the board", func(t *testing.T) {
		game := newTestGame(t)
		assert.Error(t, executeCommand(game, "c 1000"))
	})
}
