// client.go
// This file implements the engine's external Client API boundary, per
// spec.md §6: new_game, add_player, start, validate, score, commit,
// generate_ai_move, exchange, pass.
//
// Game already carries most of this behavior; Client is a thin façade
// that owns the dictionary/tile-set/RNG construction from a Config
// (config.go) so callers never touch Dictionary/TileSet/*rand.Rand
// directly, mirroring how the teacher's server.go keeps dictionary and
// tile-set selection out of the caller's hands (decodeLocale).

package engine

import (
	"context"
	"math/rand"
	"os"
)

// Client is the entry point external callers use to open a
// dictionary once and spin up games against it.
type Client struct {
	dict    *Dictionary
	tileSet *TileSet
	cfg     Config
}

// NewClient loads the dictionary named by cfg.DictionaryPath and
// returns a Client ready to create games.
func NewClient(cfg Config) (*Client, error) {
	f, err := os.Open(cfg.DictionaryPath)
	if err != nil {
		return nil, newMsgErr(DictionaryLoadError, err.Error())
	}
	defer f.Close()
	dict, err := LoadDictionary(f)
	if err != nil {
		return nil, err
	}
	return &Client{dict: dict, tileSet: StandardEnglishTileSet, cfg: cfg}, nil
}

// NewGame creates a fresh game seeded from the client's configuration.
func (c *Client) NewGame() *Game {
	rng := rand.New(rand.NewSource(c.cfg.Seed))
	return NewGame(c.dict, c.tileSet, rng)
}

// AddPlayer seats a new player in game.
func (c *Client) AddPlayer(game *Game, name string, isAI bool) *Player {
	return game.AddPlayer(name, isAI)
}

// Start begins game play.
func (c *Client) Start(game *Game) error {
	return game.Start()
}

// Validate checks move against game without mutating it.
func (c *Client) Validate(game *Game, move *Move) ([]FormedWord, error) {
	return game.Validate(move)
}

// Score returns the point value move would earn if committed now.
func (c *Client) Score(game *Game, move *Move) (int, error) {
	formed, err := game.Validate(move)
	if err != nil {
		return 0, err
	}
	return game.Score(move, formed), nil
}

// Commit applies move to game, per spec.md §4.6's state machine.
func (c *Client) Commit(game *Game, move *Move) error {
	return game.Commit(move)
}

// GenerateAIMove asks the AI to produce a move for the given player,
// bounded by the client's configured AI time budget.
func (c *Client) GenerateAIMove(game *Game, playerIndex int) *Move {
	ctx, cancel := context.WithTimeout(context.Background(), c.cfg.AITimeBudget)
	defer cancel()
	return game.GenerateAIMove(ctx, playerIndex)
}

// Exchange builds and commits an EXCHANGE move for the player,
// returning the letters to the bag.
func (c *Client) Exchange(game *Game, playerIndex int, letters []rune) error {
	return game.Commit(NewExchangeMove(playerIndex, letters))
}

// Pass builds and commits a PASS move for the player.
func (c *Client) Pass(game *Game, playerIndex int) error {
	return game.Commit(NewPassMove(playerIndex))
}
