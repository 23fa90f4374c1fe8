package mines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// GameState is one game's full state. Every operation on it is a pure
// function: the receiver is never modified, a derived state is
// returned. Collaborators own the lifetime of each value and must keep
// at most one pick in flight per game.
type GameState struct {
	Board         Board
	GameOver, Won bool
	GameParams
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewGame generates a fresh board for params: all tiles hidden, no
// flags, mines placed by r.
func NewGame(params *GameParams, r *rand.Rand) (state *GameState, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				Log.Error("board generation failed an assertion: ", ae)
				state, err = nil, ae
				return
			}
			panic(r)
		}
	}()

	if err := params.Check(); err != nil {
		return nil, err
	}
	state = &GameState{
		GameParams: *params,
		Board:      params.generateTiles(r),
	}
	return state, nil
}

type Action int

const (
	ActionUnknown Action = iota
	ActionClear
	ActionFlag
)

func ParseAction(s string) Action {
	switch s {
	case "clear":
		return ActionClear
	case "flag":
		return ActionFlag
	}
	return ActionUnknown
}

func (a Action) String() string {
	switch a {
	case ActionClear:
		return "clear"
	case ActionFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Pick applies one player action and returns the resulting state. Once
// the game is over every pick returns the state unchanged, as do picks
// with an unknown action or an index off the board.
func (s GameState) Pick(action Action, index int) GameState {
	if s.GameOver || !s.ValidIndex(index) {
		return s
	}
	switch action {
	case ActionClear:
		return s.clearTile(index)
	case ActionFlag:
		return s.flagTile(index)
	}
	return s
}

// Forfeit ends the game as a loss and exposes the minefield.
func (s GameState) Forfeit() GameState {
	if s.GameOver {
		return s
	}
	next := s.clone()
	next.GameOver = true
	next.Board.revealMines()
	return next
}

func (s GameState) ToString() string {
	return s.Board.ToString(s.Width)
}

func (s GameState) clone() GameState {
	s.Board = s.Board.clone()
	return s
}

func (s GameState) clearTile(index int) GameState {
	switch tile := s.Board[index]; {
	case tile.Mine:
		/*
		 * The player has landed on a mine. Bad luck. Expose the
		 * whole minefield and close the game as a loss.
		 */
		next := s.clone()
		next.GameOver = true
		next.Board.revealMines()
		return next
	case tile.Revealed:
		return s
	default:
		next := s.clone()
		next.Board.clearFill(index, next.Width, next.Height)
		if next.won() {
			next.GameOver = true
			next.Won = true
			next.Board.revealMines()
		}
		return next
	}
}

func (s GameState) flagTile(index int) GameState {
	tile := s.Board[index]
	if tile.Revealed {
		return s
	}
	next := s.clone()
	next.Board[index].Flagged = !tile.Flagged
	return next
}

// won reports whether no tile is simultaneously hidden and mine-free,
// i.e. every safe tile has been revealed.
func (s GameState) won() bool {
	for _, t := range s.Board {
		if !t.Mine && !t.Revealed {
			return false
		}
	}
	return true
}

// revealMines removes hidden and flag from every mine tile, leaving
// non-mine tiles untouched.
func (b Board) revealMines() {
	for i := range b {
		if b[i].Mine {
			b[i].Revealed = true
			b[i].Flagged = false
		}
	}
}
