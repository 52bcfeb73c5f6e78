// server.go
// This file implements a compact HTTP boundary over the Client API,
// grounded on the teacher's server.go (JSON-in, JSON-out request
// handlers registered directly against net/http, no router framework).

package engine

import (
	"encoding/json"
	"net/http"
)

// MoveRequest is the JSON body of a /validate or /commit request.
type MoveRequest struct {
	Player    int        `json:"player"`
	Kind      string     `json:"kind"` // "place", "exchange", "pass"
	StartRow  int        `json:"start_row"`
	StartCol  int        `json:"start_col"`
	Direction string     `json:"direction"` // "H" or "V"
	Tiles     []tileJSON `json:"tiles"`
	Letters   string     `json:"letters"` // exchange letters
}

type tileJSON struct {
	Letter  string `json:"letter"`
	Meaning string `json:"meaning"`
}

func (r *MoveRequest) toMove() *Move {
	switch r.Kind {
	case "exchange":
		return NewExchangeMove(r.Player, []rune(r.Letters))
	case "pass":
		return NewPassMove(r.Player)
	default:
		dir := Horizontal
		if r.Direction == "V" {
			dir = Vertical
		}
		tiles := make([]PlacedTile, len(r.Tiles))
		for i, t := range r.Tiles {
			letter := []rune(t.Letter)[0]
			meaning := letter
			if t.Meaning != "" {
				meaning = []rune(t.Meaning)[0]
			}
			tiles[i] = PlacedTile{Letter: letter, Meaning: meaning}
		}
		return NewPlaceMove(r.Player, r.StartRow, r.StartCol, dir, tiles)
	}
}

// MoveResponse is the JSON shape returned by /validate and /commit.
type MoveResponse struct {
	OK          bool     `json:"ok"`
	Error       string   `json:"error,omitempty"`
	FormedWords []string `json:"formed_words,omitempty"`
	Score       int       `json:"score,omitempty"`
}

// Handler wires a Client and a single live Game to HTTP endpoints for
// validate, commit (which also carries exchange and pass moves) and AI
// move generation. It is a development convenience, not a production
// multi-game server.
type Handler struct {
	Client *Client
	Game   *Game
}

// NewHandler returns an http.Handler exposing the game's endpoints.
func NewHandler(client *Client, game *Game) http.Handler {
	h := &Handler{Client: client, Game: game}
	mux := http.NewServeMux()
	mux.HandleFunc("/validate", h.handleValidate)
	mux.HandleFunc("/commit", h.handleCommit)
	mux.HandleFunc("/ai-move", h.handleAIMove)
	return mux
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	move := req.toMove()
	formed, err := h.Client.Validate(h.Game, move)
	writeMoveResponse(w, formed, 0, err)
}

func (h *Handler) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	move := req.toMove()
	err := h.Client.Commit(h.Game, move)
	writeMoveResponse(w, move.FormedWords, move.Score, err)
}

func (h *Handler) handleAIMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Player int `json:"player"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	move := h.Client.GenerateAIMove(h.Game, req.Player)
	json.NewEncoder(w).Encode(move)
}

func writeMoveResponse(w http.ResponseWriter, formed []FormedWord, score int, err error) {
	resp := MoveResponse{OK: err == nil, Score: score}
	if err != nil {
		resp.Error = err.Error()
	}
	for _, fw := range formed {
		resp.FormedWords = append(resp.FormedWords, fw.Word)
	}
	json.NewEncoder(w).Encode(resp)
}
