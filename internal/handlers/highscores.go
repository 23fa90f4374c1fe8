package handlers

import (
	"net/http"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/middleware"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/mines"
	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/repository"
)

// Highscores lists won games ordered by playtime. Optional query
// params: username, and seed (width:height:mine_count) to narrow to
// one board configuration.
func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter repository.HighscoreFilter

	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if seed := query.Get("seed"); seed != "" {
		params, err := mines.ParseSeed(seed)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.log, wrapError(err))
			return
		}
		filter.GameParams = params
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch highscores: ", err)
		return
	}
	sendJSONOrLog(w, g.log, highscores)
}

// MyHighscores narrows Highscores to the logged-in player.
func (g GameHandler) MyHighscores(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	highscores, err := g.repo.GetHighscores(r.Context(), repository.HighscoreFilter{
		Username: &claims.Username,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.Error("unable to fetch highscores: ", err)
		return
	}
	sendJSONOrLog(w, g.log, highscores)
}
