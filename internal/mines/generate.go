package mines

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
}

// DefaultParams is the reference configuration: a 10×8 board carrying
// 10 mines.
func DefaultParams() GameParams {
	return GameParams{Width: 10, Height: 8, MineCount: 10}
}

func (p GameParams) TileCount() int {
	return p.Width * p.Height
}

func (p GameParams) ValidIndex(i int) bool {
	return 0 <= i && i < p.TileCount()
}

func (p GameParams) Check() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", p.Width, p.Height)
	}
	if p.MineCount < 0 || p.MineCount > p.TileCount() {
		return fmt.Errorf(
			"cannot fit %d mines into a %dx%d board",
			p.MineCount, p.Width, p.Height,
		)
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// generateTiles builds a fresh board: every tile hidden, MineCount
// mines placed uniformly at random without replacement, adjacency
// counts filled in.
//
// panics [AssertionError]
func (p GameParams) generateTiles(r *rand.Rand) Board {
	tiles := make(Board, p.TileCount())

	/*
	 * Write down every index as a mine candidate, then pick
	 * MineCount of them off the list at random.
	 */
	candidates := make([]int, p.TileCount())
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		tiles[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	p.countAdjacency(tiles)
	return tiles
}

// countAdjacency visits each mine's in-bounds neighbors and bumps their
// counts. Mines themselves never receive a count.
//
// panics [AssertionError]
func (p GameParams) countAdjacency(tiles Board) {
	for i := range tiles {
		if !tiles[i].Mine {
			continue
		}
		for _, d := range neighborOffsets {
			j := RelativeIndex(i, p.Width, p.Height, d[0], d[1])
			if j == OutOfBounds || tiles[j].Mine {
				continue
			}
			tiles[j].incrementAdjacent()
		}
	}
}
