// puzzle.go
// This file implements single-move puzzle generation: play out random
// AI-vs-AI games until the board reaches a target tile count, then
// pick the resulting position only if its best available move clears
// a quality bar. This is a feature the teacher carries (its riddle
// generator) and the distilled spec does not; SPEC_FULL.md's
// SUPPLEMENTED FEATURES section adds it.
//
// Grounded directly on the teacher's riddle.go: the same
// context.WithTimeout + worker-pool + sync/atomic shape
// (GenerateRiddle/generateCandidate), replayed here against this
// engine's Game/AIMoveGenerator instead of the teacher's Game/Robot.

package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
)

// PuzzleHeuristics bounds what counts as an acceptable puzzle
// position, mirroring the teacher's HeuristicConfig.
type PuzzleHeuristics struct {
	MinTiles      int
	MaxTiles      int
	MinBestScore  int
	MinWordLength int
}

// DefaultPuzzleHeuristics is a reasonable baseline for the standard
// English tile set and board.
var DefaultPuzzleHeuristics = PuzzleHeuristics{
	MinTiles:      20,
	MaxTiles:      40,
	MinBestScore:  15,
	MinWordLength: 3,
}

// Puzzle is a single-move exercise: a board position, a rack, and the
// best move available from it.
type Puzzle struct {
	Board *Board
	Rack  string
	Move  *Move
	Score int
}

// PuzzleStats tallies why candidate positions were rejected, for
// observability (the same accounting the teacher's riddle.go Stats
// keeps, pared to the fields this engine's generator can produce).
type PuzzleStats struct {
	Candidates       int64
	NoValidMove      int64
	TooFewTiles      int64
	TooLowBestScore  int64
	TooShortWord     int64
	ContextCancelled int64
}

// GeneratePuzzle plays out random games with two AI players until
// numCandidates attempts have been tried or ctx expires, whichever
// comes first, and returns the highest-scoring puzzle among the
// positions that satisfied heuristics.
func GeneratePuzzle(ctx context.Context, dict *Dictionary, tileSet *TileSet, rng *rand.Rand, heuristics PuzzleHeuristics, numWorkers, numCandidates int) (*Puzzle, *PuzzleStats, error) {
	if numWorkers <= 0 {
		numWorkers = 4
	}
	stats := &PuzzleStats{}
	results := make(chan *Puzzle, numCandidates)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		workerSeed := rng.Int63()
		go func(seed int64) {
			defer wg.Done()
			workerRNG := rand.New(rand.NewSource(seed))
			for atomic.LoadInt64(&stats.Candidates) < int64(numCandidates) {
				select {
				case <-ctx.Done():
					atomic.AddInt64(&stats.ContextCancelled, 1)
					return
				default:
				}
				p := generatePuzzleCandidate(ctx, dict, tileSet, workerRNG, heuristics, stats)
				atomic.AddInt64(&stats.Candidates, 1)
				if p != nil {
					results <- p
				}
			}
		}(workerSeed)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var found []*Puzzle
	for p := range results {
		found = append(found, p)
	}
	if len(found) == 0 {
		return nil, stats, fmt.Errorf("no suitable puzzle position found in the allotted time")
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Score > found[j].Score
	})
	return found[0], stats, nil
}

func generatePuzzleCandidate(ctx context.Context, dict *Dictionary, tileSet *TileSet, rng *rand.Rand, h PuzzleHeuristics, stats *PuzzleStats) *Puzzle {
	game := NewGame(dict, tileSet, rng)
	game.AddPlayer("P1", true)
	game.AddPlayer("P2", true)
	if err := game.Start(); err != nil {
		return nil
	}

	targetTiles := h.MinTiles + rng.Intn(h.MaxTiles-h.MinTiles+1)
	for game.Board.NumTiles < targetTiles {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if game.Status != InProgress {
			stats.TooFewTiles++
			return nil
		}
		move := game.GenerateAIMove(ctx, game.Turn)
		move.Player = game.Turn
		if err := game.Commit(move); err != nil {
			return nil
		}
	}

	if game.Status != InProgress {
		return nil
	}

	player := game.Players[game.Turn]
	rackLetters := player.Rack.AsString()
	var attempts []placementAttempt
	if game.Board.IsEmpty() {
		attempts = game.ai.openingPlacements(rackLetters)
	} else {
		attempts = game.ai.anchorPlacements(game.Board, rackLetters)
	}
	var best *Move
	for _, c := range game.ai.evaluate(ctx, game.Board, player, attempts) {
		if best == nil || c.score > best.Score {
			best = c.move
		}
	}
	if best == nil {
		stats.NoValidMove++
		return nil
	}
	best.Player = game.Turn
	if best.Score < h.MinBestScore {
		stats.TooLowBestScore++
		return nil
	}
	word := best.FormedWords[0].Word
	if len(word) < h.MinWordLength {
		stats.TooShortWord++
		return nil
	}

	return &Puzzle{
		Board: game.Board.Clone(),
		Rack:  player.Rack.AsString(),
		Move:  best,
		Score: best.Score,
	}
}
