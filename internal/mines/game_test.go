package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testState builds a deterministic board with mines at the given
// indexes and adjacency counts filled in.
func testState(t *testing.T, width, height int, mineAt ...int) GameState {
	t.Helper()
	tiles := make(Board, width*height)
	for _, i := range mineAt {
		tiles[i].Mine = true
	}
	params := GameParams{Width: width, Height: height, MineCount: len(mineAt)}
	params.countAdjacency(tiles)
	return GameState{GameParams: params, Board: tiles}
}

func revealedIndexes(s GameState) []int {
	indexes := make([]int, 0, len(s.Board))
	for i, tile := range s.Board {
		if tile.Revealed {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// 3×3 board, single mine at the center. Every surrounding tile counts
// exactly one mine.
func TestSingleCenterMine(t *testing.T) {
	state := testState(t, 3, 3, 4)

	for i, tile := range state.Board {
		if i == 4 {
			assert.True(t, tile.Mine)
			continue
		}
		assert.Equal(t, 1, tile.Adjacent, "tile %d", i)
	}

	// clearing a numbered corner reveals only that corner
	next := state.Pick(ActionClear, 0)
	assert.Equal(t, []int{0}, revealedIndexes(next))
	assert.False(t, next.GameOver)

	// clearing the center loses the game and exposes the mine
	lost := state.Pick(ActionClear, 4)
	assert.True(t, lost.GameOver)
	assert.False(t, lost.Won)
	assert.True(t, lost.Board[4].Revealed)
	assert.Equal(t, []int{4}, revealedIndexes(lost))
}

func TestClearFillStopsAtNumberedBorder(t *testing.T) {
	// 5×1 strip, mine in the middle: 0 1 * 1 0
	state := testState(t, 5, 1, 2)

	next := state.Pick(ActionClear, 0)
	assert.Equal(t, []int{0, 1}, revealedIndexes(next))
	assert.False(t, next.GameOver)

	// the far side of the wall stays hidden until cleared itself
	assert.False(t, next.Board[3].Revealed)
	assert.False(t, next.Board[4].Revealed)
}

func TestClearFillDropsFlagsInRegion(t *testing.T) {
	state := testState(t, 5, 1, 2)
	state = state.Pick(ActionFlag, 1)
	require.True(t, state.Board[1].Flagged)

	next := state.Pick(ActionClear, 0)
	assert.True(t, next.Board[1].Revealed)
	assert.False(t, next.Board[1].Flagged)
}

func TestClearWinsOnLastSafeTile(t *testing.T) {
	// 4×4, mine in a corner: one flood fill reveals every safe tile
	state := testState(t, 4, 4, 0)
	state = state.Pick(ActionFlag, 0) // flagged mine must unflag on reveal

	won := state.Pick(ActionClear, 15)
	assert.True(t, won.GameOver)
	assert.True(t, won.Won)
	for i, tile := range won.Board {
		assert.True(t, tile.Revealed, "tile %d", i)
		assert.False(t, tile.Flagged, "tile %d", i)
	}
}

func TestClearMineLosesAndRevealsMinefield(t *testing.T) {
	state := testState(t, 5, 5, 0, 24)
	state = state.Pick(ActionFlag, 24)
	state = state.Pick(ActionFlag, 7) // flag on a safe tile survives a loss

	lost := state.Pick(ActionClear, 0)
	assert.True(t, lost.GameOver)
	assert.False(t, lost.Won)
	assert.Equal(t, []int{0, 24}, revealedIndexes(lost))
	assert.False(t, lost.Board[24].Flagged)
	assert.True(t, lost.Board[7].Flagged)
	assert.False(t, lost.Board[7].Revealed)
}

func TestFlagIsItsOwnInverse(t *testing.T) {
	state := testState(t, 3, 3, 4)

	flagged := state.Pick(ActionFlag, 0)
	assert.True(t, flagged.Board[0].Flagged)
	assert.False(t, flagged.Board[0].Revealed)

	unflagged := flagged.Pick(ActionFlag, 0)
	assert.Equal(t, state.Board[0], unflagged.Board[0])
}

func TestFlagRevealedTileNoOp(t *testing.T) {
	state := testState(t, 3, 3, 4).Pick(ActionClear, 0)
	require.True(t, state.Board[0].Revealed)

	assert.Equal(t, state, state.Pick(ActionFlag, 0))
}

func TestClearRevealedTileNoOp(t *testing.T) {
	state := testState(t, 3, 3, 4).Pick(ActionClear, 0)
	assert.Equal(t, state, state.Pick(ActionClear, 0))
}

func TestPickAfterGameOverNoOp(t *testing.T) {
	lost := testState(t, 3, 3, 4).Pick(ActionClear, 4)
	require.True(t, lost.GameOver)

	for index := range lost.Board {
		assert.Equal(t, lost, lost.Pick(ActionClear, index))
		assert.Equal(t, lost, lost.Pick(ActionFlag, index))
		assert.Equal(t, lost, lost.Pick(ActionUnknown, index))
	}
}

func TestPickUnknownActionNoOp(t *testing.T) {
	state := testState(t, 3, 3, 4)
	assert.Equal(t, state, state.Pick(ActionUnknown, 0))
	assert.Equal(t, state, state.Pick(Action(99), 0))
}

func TestPickIndexOffBoardNoOp(t *testing.T) {
	state := testState(t, 3, 3, 4)
	assert.Equal(t, state, state.Pick(ActionClear, -1))
	assert.Equal(t, state, state.Pick(ActionClear, 9))
	assert.Equal(t, state, state.Pick(ActionClear, OutOfBounds))
}

// Every operation must leave its input untouched.
func TestPickDoesNotMutateInput(t *testing.T) {
	state := testState(t, 3, 3, 4)
	before := state.clone()

	state.Pick(ActionClear, 0)
	state.Pick(ActionClear, 4)
	state.Pick(ActionFlag, 8)
	state.Forfeit()

	assert.Equal(t, before, state)
}

func TestForfeit(t *testing.T) {
	state := testState(t, 3, 3, 4)

	forfeited := state.Forfeit()
	assert.True(t, forfeited.GameOver)
	assert.False(t, forfeited.Won)
	assert.True(t, forfeited.Board[4].Revealed)

	// forfeiting a finished game changes nothing
	assert.Equal(t, forfeited, forfeited.Forfeit())
}

func TestParseAction(t *testing.T) {
	assert.Equal(t, ActionClear, ParseAction("clear"))
	assert.Equal(t, ActionFlag, ParseAction("flag"))
	assert.Equal(t, ActionUnknown, ParseAction("chord"))
	assert.Equal(t, ActionUnknown, ParseAction(""))
}

func TestGameStateBytesRoundTrip(t *testing.T) {
	params := DefaultParams()
	game, err := NewGame(&params, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	buf, err := game.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeGameState(buf)
	require.NoError(t, err)
	assert.Equal(t, game, decoded)
}
