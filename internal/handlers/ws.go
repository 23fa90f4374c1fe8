package handlers

import (
	"errors"
	"strconv"
	"strings"

	"net/http"

	"github.com/gorilla/websocket"

	"github.com/unremarkableSCM/minesweeper-as-a-service/internal/mines"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // get state
	"c": 1, // clear a tile
	"f": 1, // flag a tile
	"r": 0, // resign
}

// executeCommand applies one text command to the game, replacing it
// with the derived state.
func executeCommand(game *mines.GameState, c string) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	switch parts[0] {
	case "g":
		return nil
	case "c", "f":
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			return errors.New("argument must be an int")
		}
		if !game.ValidIndex(index) {
			return errors.New("invalid tile index")
		}
		action := mines.ActionClear
		if parts[0] == "f" {
			action = mines.ActionFlag
		}
		*game = game.Pick(action, index)
		return nil
	case "r":
		*game = game.Forfeit()
		return nil
	}
	return errors.New("invalid command")
}

// ConnectWS upgrades the request and plays the session over a text
// command stream: newline-separated commands in, session JSON out.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("unable to upgrade: ", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.log.Warn("abnormal ws break: ", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		text := strings.TrimSpace(string(message))
		g.log.Debug("\t> ", text)

		for _, command := range strings.Split(text, "\n") {
			if err := executeCommand(game, command); err != nil {
				g.log.Error("unable to process command: ", err)
				return
			}
			if game.GameOver {
				if session.EndedAt == nil {
					session.EndedAt = endedNow()
				}
				break
			}
		}

		if !g.saveSession(w, r, session, game) {
			return
		}
		if err := c.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.log.Error("unable to write json: ", err)
			break
		}
		g.log.Debug("\t< <session data>")
	}
}
