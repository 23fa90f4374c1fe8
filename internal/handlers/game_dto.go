package handlers

import (
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/mines"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/repository"
)

type NewGameDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

// ParseNewGameDTO reads board parameters from the query, falling back
// to the reference configuration when none are given.
func ParseNewGameDTO(src map[string][]string) (mines.GameParams, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	if dto == (NewGameDTO{}) {
		return mines.DefaultParams(), nil
	}
	params := mines.GameParams(dto)
	return params, params.Check()
}

type MoveDTO struct {
	Action string `schema:"action,required"`
	Index  int    `schema:"index,required"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameSessionDTO is the wire view of one session. The board is
// rendered tile by tile in the hidden/flag/mine/number tag vocabulary.
type GameSessionDTO struct {
	GameSessionId string      `json:"game_session_id"`
	Board         mines.Board `json:"board"`
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	MineCount     int         `json:"mine_count"`
	GameOver      bool        `json:"game_over"`
	Won           bool        `json:"won"`
	StartedAt     int64       `json:"started_at"`
	EndedAt       *int64      `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *mines.GameState,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionID, 10),
		Board:         game.Board,
		Width:         game.Width,
		Height:        game.Height,
		MineCount:     game.MineCount,
		GameOver:      game.GameOver,
		Won:           game.Won,
		StartedAt:     session.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

func endedNow() *time.Time {
	now := time.Now().UTC()
	return &now
}
