package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/config"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/middleware"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/mines"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/repository"
)

type GameHandler struct {
	log     *logrus.Logger
	repo    *repository.Queries
	cookies *config.Cookies
	ws      *config.WebSocket
	rnd     *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	db *pgxpool.Pool,
	cookies *config.Cookies,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:     log,
		repo:    repository.New(db),
		cookies: cookies,
		ws:      ws,
		rnd:     rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	game, err := mines.NewGame(&params, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to generate a new game: ", err)
		return
	}
	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to encode game state: ", err)
		return
	}

	createParams := repository.CreateGameSessionParams{
		Width:     game.Width,
		Height:    game.Height,
		MineCount: game.MineCount,
		State:     state,
	}
	if claims, loggedIn := middleware.PlayerClaims(r); loggedIn {
		g.log.Debug("creating session for player ", claims.Username)
		createParams.PlayerID = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), createParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to create game session: ", err)
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch session from db: ", err)
		return nil, nil, false
	}

	game, err := mines.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("db returned invalid game_session.state: ", err)
		return nil, nil, false
	}
	return session, game, true
}

func (g GameHandler) saveSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *mines.GameState,
) bool {
	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to serialize game state: ", err)
		return false
	}

	_, err = g.repo.UpdateGameSession(
		r.Context(), session.GameSessionID,
		repository.UpdateGameSessionParams{
			GameOver: &game.GameOver,
			Won:      &game.Won,
			EndedAt:  session.EndedAt,
			State:    &state,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to update session in db: ", err)
		return false
	}
	return true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	move, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if !game.ValidIndex(move.Index) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	next := game.Pick(mines.ParseAction(move.Action), move.Index)
	if next.GameOver && session.EndedAt == nil {
		session.EndedAt = endedNow()
	}

	if !g.saveSession(w, r, session, &next) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, &next))
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	next := game.Forfeit()
	if session.EndedAt == nil {
		session.EndedAt = endedNow()
	}

	if !g.saveSession(w, r, session, &next) {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, &next))
}
