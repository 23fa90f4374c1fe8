package mines

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxAdjacent is the largest legal neighboring-mine count.
const MaxAdjacent = 8

// Tile is one cell of the board. The zero value is a hidden, unflagged,
// mine-free tile with no neighboring mines.
//
// Invariants, enforced by construction:
//
//   - a tile is either a mine or carries an adjacency count in [0,8]
//   - Flagged may be true only while the tile is hidden
//   - a revealed tile never re-hides
type Tile struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // neighboring mines; meaningless on a mine tile
}

// Tile tag vocabulary. This is the serialization contract: any
// persistence or transport layer must preserve exactly these tags.
const (
	TagHidden = "hidden"
	TagFlag   = "flag"
	TagMine   = "mine"
	// plus "0".."8" for the adjacency count of a non-mine tile
)

// Tags renders the tile as its tag set.
func (t Tile) Tags() []string {
	tags := make([]string, 0, 3)
	if !t.Revealed {
		tags = append(tags, TagHidden)
	}
	if t.Flagged {
		tags = append(tags, TagFlag)
	}
	if t.Mine {
		tags = append(tags, TagMine)
	} else {
		tags = append(tags, strconv.Itoa(t.Adjacent))
	}
	return tags
}

func (t Tile) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Tags())
}

func (t *Tile) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	parsed := Tile{Revealed: true}
	numbered := false
	for _, tag := range tags {
		switch tag {
		case TagHidden:
			parsed.Revealed = false
		case TagFlag:
			parsed.Flagged = true
		case TagMine:
			parsed.Mine = true
		default:
			n, err := strconv.Atoi(tag)
			if err != nil || n < 0 || n > MaxAdjacent {
				return fmt.Errorf("unknown tile tag %q", tag)
			}
			parsed.Adjacent = n
			numbered = true
		}
	}
	if parsed.Mine == numbered {
		return fmt.Errorf("tile must be either a mine or numbered, got %v", tags)
	}
	if parsed.Flagged && parsed.Revealed {
		return fmt.Errorf("flag on a revealed tile: %v", tags)
	}
	*t = parsed
	return nil
}

func (t Tile) String() string {
	switch {
	case t.Flagged:
		return "*"
	case !t.Revealed:
		return " "
	case t.Mine:
		return "!"
	default:
		return strconv.Itoa(t.Adjacent)
	}
}

// incrementAdjacent bumps the neighbor count during generation. A tile
// has at most 8 neighbors, so overflowing [MaxAdjacent] can only mean a
// generator defect.
//
// panics [AssertionError]
func (t *Tile) incrementAdjacent() {
	if t.Adjacent < 0 || t.Adjacent >= MaxAdjacent {
		panic(AssertionError{
			fmt.Sprintf("cannot increment adjacency count %d", t.Adjacent),
		})
	}
	t.Adjacent++
}

// Board is a fixed-length, row-major sequence of tiles. It is created
// once per game and never resized.
type Board []Tile

func (b Board) clone() Board {
	c := make(Board, len(b))
	copy(c, b)
	return c
}

func (b Board) ToString(width int) string {
	var s strings.Builder
	for y := range len(b) / width {
		for x := range width {
			i := y*width + x
			if i >= len(b) {
				break
			}
			fmt.Fprint(&s, b[i].String()+" ")
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
