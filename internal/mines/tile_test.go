package mines

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileTags(t *testing.T) {
	tests := []struct {
		name string
		tile Tile
		want []string
	}{
		{"zero value", Tile{}, []string{"hidden", "0"}},
		{"hidden mine", Tile{Mine: true}, []string{"hidden", "mine"}},
		{
			"flagged mine",
			Tile{Mine: true, Flagged: true},
			[]string{"hidden", "flag", "mine"},
		},
		{
			"revealed number",
			Tile{Revealed: true, Adjacent: 3},
			[]string{"3"},
		},
		{
			"flagged number",
			Tile{Flagged: true, Adjacent: 1},
			[]string{"hidden", "flag", "1"},
		},
		{
			"revealed mine",
			Tile{Mine: true, Revealed: true},
			[]string{"mine"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.tile.Tags())
		})
	}
}

func TestTileJSON(t *testing.T) {
	tiles := []Tile{
		{},
		{Mine: true},
		{Mine: true, Flagged: true},
		{Revealed: true, Adjacent: 8},
		{Flagged: true, Adjacent: 2},
	}
	for _, tile := range tiles {
		data, err := json.Marshal(tile)
		require.NoError(t, err)
		var parsed Tile
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, tile, parsed)
	}
}

func TestTileJSONRejectsInvalidTags(t *testing.T) {
	bad := []string{
		`["bogus"]`,
		`["9"]`,
		`["-1"]`,
		`["hidden"]`,         // neither mine nor numbered
		`["mine","4"]`,       // both mine and numbered
		`["flag","2"]`,       // flag on a revealed tile
		`["flag","mine"]`,    // ditto
	}
	for _, data := range bad {
		var tile Tile
		assert.Error(t, json.Unmarshal([]byte(data), &tile), data)
	}
}

func TestIncrementAdjacent(t *testing.T) {
	var tile Tile
	for want := 1; want <= MaxAdjacent; want++ {
		tile.incrementAdjacent()
		assert.Equal(t, want, tile.Adjacent)
	}
	assert.PanicsWithError(t, "cannot increment adjacency count 8", func() {
		tile.incrementAdjacent()
	})
}
