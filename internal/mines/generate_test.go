package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveAdjacency recounts a tile's mined neighbors the slow way, as an
// independent check on the generator's increment pass.
func naiveAdjacency(tiles Board, width, height, index int) (count int) {
	x, y := IndexToXY(index, width)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= width || yy < 0 || yy >= height {
				continue
			}
			if tiles[XYToIndex(xx, yy, width)].Mine {
				count++
			}
		}
	}
	return
}

func TestNewGame(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"10x8(10) reference", DefaultParams()},
		{"9x9(10)", GameParams{Width: 9, Height: 9, MineCount: 10}},
		{"16x16(40)", GameParams{Width: 16, Height: 16, MineCount: 40}},
		{"30x16(99)", GameParams{Width: 30, Height: 16, MineCount: 99}},
		{"3x3(8) dense", GameParams{Width: 3, Height: 3, MineCount: 8}},
		{"2x2(4) all mines", GameParams{Width: 2, Height: 2, MineCount: 4}},
		{"5x5(0) empty", GameParams{Width: 5, Height: 5, MineCount: 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			game, err := NewGame(&test.params, r)
			require.NoError(t, err)
			require.Len(t, game.Board, test.params.TileCount())

			mineCount := 0
			for i, tile := range game.Board {
				assert.False(t, tile.Revealed, "tile %d starts hidden", i)
				assert.False(t, tile.Flagged, "tile %d starts unflagged", i)
				if tile.Mine {
					mineCount++
					continue
				}
				want := naiveAdjacency(
					game.Board, test.params.Width, test.params.Height, i,
				)
				assert.Equal(t, want, tile.Adjacent, "tile %d", i)
			}
			assert.Equal(t, test.params.MineCount, mineCount)
			assert.False(t, game.GameOver)
			assert.False(t, game.Won)
		})
	}
}

func TestNewGameRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	bad := []GameParams{
		{Width: 0, Height: 8, MineCount: 0},
		{Width: 10, Height: -1, MineCount: 0},
		{Width: 3, Height: 3, MineCount: 10},
		{Width: 3, Height: 3, MineCount: -1},
	}
	for _, params := range bad {
		_, err := NewGame(&params, r)
		assert.Error(t, err, params.Seed())
	}
}

// A tile surrounded by mines on all eight sides must count 8. The
// source this engine was ported from could not represent that count;
// here the full [0,8] range is legal.
func TestAdjacencyCountAllEightNeighbors(t *testing.T) {
	p := GameParams{Width: 3, Height: 3, MineCount: 8}
	tiles := make(Board, 9)
	for i := range tiles {
		if i != 4 {
			tiles[i].Mine = true
		}
	}
	p.countAdjacency(tiles)
	assert.Equal(t, 8, tiles[4].Adjacent)
}

func TestSeedRoundTrip(t *testing.T) {
	params := GameParams{Width: 30, Height: 16, MineCount: 99}
	require.Equal(t, "30:16:99", params.Seed())
	parsed, err := ParseSeed(params.Seed())
	require.NoError(t, err)
	assert.Equal(t, params, *parsed)

	_, err = ParseSeed("30:16")
	assert.Error(t, err)
}
