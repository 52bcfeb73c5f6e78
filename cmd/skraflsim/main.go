// main.go
// Example program for exercising the engine module: simulates a
// number of robot-vs-robot games and tallies wins.
//
// Grounded on the teacher's main/main.go (flag-based dictionary
// selection, simulateGame loop, win tally), generalized from the
// teacher's hardcoded two-player game to this engine's Client API.

package main

import (
	"flag"
	"fmt"
	"os"

	engine "scrabbleengine"
)

func simulateGame(client *engine.Client, verbose bool) (scoreA, scoreB int) {
	game := client.NewGame()
	client.AddPlayer(game, "Robot A", true)
	client.AddPlayer(game, "Robot B", true)
	if err := client.Start(game); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start game: %v\n", err)
		return 0, 0
	}

	for game.Status == engine.InProgress {
		turn := game.Turn
		move := client.GenerateAIMove(game, turn)
		if err := client.Commit(game, move); err != nil {
			fmt.Fprintf(os.Stderr, "AI produced an invalid move: %v\n", err)
			break
		}
		if verbose {
			fmt.Printf("Player %d played a %v move for %d points\n", turn, move.Kind, move.Score)
		}
	}
	if len(game.Players) >= 2 {
		scoreA = game.Players[0].Score
		scoreB = game.Players[1].Score
	}
	return
}

func main() {
	dictPath := flag.String("d", "dictionary.txt", "Path to the newline-delimited dictionary file")
	num := flag.Int("n", 10, "Number of games to simulate")
	quiet := flag.Bool("q", false, "Suppress per-move output")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	cfg := engine.DefaultConfig
	cfg.DictionaryPath = *dictPath
	cfg.Seed = *seed

	client, err := engine.NewClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dictionary: %v\n", err)
		os.Exit(1)
	}

	var winsA, winsB int
	for i := 0; i < *num; i++ {
		scoreA, scoreB := simulateGame(client, !*quiet)
		switch {
		case scoreA > scoreB:
			winsA++
		case scoreB > scoreA:
			winsB++
		}
	}
	fmt.Printf("%d games were played.\nRobot A won %d games, Robot B won %d games; %d games were draws.\n",
		*num, winsA, winsB, *num-winsA-winsB)
}
