// aiplayer.go
// This file implements the AI MoveGenerator (component C7): enumerate
// legal placements by walking anchor squares and extending into the
// rack, then rank candidates with the heuristics.go evaluator, per
// spec.md §4.5.
//
// The teacher's player.go/movegen.go generate moves by navigating the
// packed DAWG with an Appel-Jacobson cross-check Navigator. This
// engine's Dictionary exposes a GADDAG WordsFrom query instead, so
// generation here follows spec.md's own anchor-walk algorithm rather
// than the teacher's navigator. The concurrency shape (a bounded
// worker pool fanning out over independent anchors, cancellable via
// context, collecting results over a channel) is grounded on the
// teacher's riddle.go GenerateRiddle/generateCandidate pair.

package engine

import (
	"context"
	"math/rand"
	"sort"
	"sync"
)

// AIMoveGenerator produces a move for a player given the current game
// state, per spec.md §4.5.
type AIMoveGenerator struct {
	Validator *MoveValidator
	Scorer    *ScoreCalculator
	RNG       *rand.Rand
	// NumWorkers bounds the candidate-search worker pool; 0 selects a
	// small fixed default.
	NumWorkers int
}

// NewAIMoveGenerator returns a generator backed by the given validator
// and scorer, sharing the game's seeded random source.
func NewAIMoveGenerator(validator *MoveValidator, scorer *ScoreCalculator, rng *rand.Rand) *AIMoveGenerator {
	return &AIMoveGenerator{Validator: validator, Scorer: scorer, RNG: rng}
}

type candidate struct {
	move      *Move
	formed    []FormedWord
	score     int
	newCoords [][2]int
	composite float64
}

// GenerateMove implements the full §4.5 algorithm: opening-move
// enumeration, anchor-square extension, ranking, and the exchange/pass
// fallback. It never returns an error; internal failures degrade to a
// PASS move.
func (a *AIMoveGenerator) GenerateMove(ctx context.Context, board *Board, bag *Bag, playerIndex int, player *Player) *Move {
	rackLetters := player.Rack.AsString()
	if player.Rack.IsEmpty() {
		return NewPassMove(playerIndex)
	}

	var starts []placementAttempt
	if board.IsEmpty() {
		starts = a.openingPlacements(rackLetters)
	} else {
		starts = a.anchorPlacements(board, rackLetters)
	}

	candidates := a.evaluate(ctx, board, player, starts)
	if len(candidates) == 0 {
		return a.fallback(bag, playerIndex, player)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].composite > candidates[j].composite
	})
	k := 3
	if len(candidates) < k {
		k = len(candidates)
	}
	chosen := candidates[a.RNG.Intn(k)]
	chosen.move.Player = playerIndex
	return chosen.move
}

// placementAttempt is one candidate placement before validation:
// where to start, which axis, and the exact ordered tiles to lay.
type placementAttempt struct {
	row, col int
	dir      Direction
	tiles    []PlacedTile
}

// openingPlacements implements §4.5 step 2: every word expressible
// from the rack, tried at every offset through the center square.
func (a *AIMoveGenerator) openingPlacements(rackLetters string) []placementAttempt {
	center := BoardSize / 2
	words := make(map[string]bool)
	for _, letter := range uniqueRunes(rackLetters) {
		for _, w := range a.Validator.Dict.WordsFrom(rackLetters, letter, true, true) {
			words[w] = true
		}
	}

	var attempts []placementAttempt
	for w := range words {
		runes := []rune(w)
		for o := 0; o < len(runes); o++ {
			if tiles, ok := tilesFor(runes, rackLetters); ok {
				if col := center - o; col >= 0 && col+len(runes) <= BoardSize {
					attempts = append(attempts, placementAttempt{row: center, col: col, dir: Horizontal, tiles: tiles})
				}
				if row := center - o; row >= 0 && row+len(runes) <= BoardSize {
					attempts = append(attempts, placementAttempt{row: row, col: center, dir: Vertical, tiles: tiles})
				}
			}
		}
	}
	return attempts
}

// anchorPlacements implements §4.5 step 3: every empty square
// adjacent to an occupied square, tried on both axes with every word
// reachable from the rack through each rack letter as anchor.
func (a *AIMoveGenerator) anchorPlacements(board *Board, rackLetters string) []placementAttempt {
	var attempts []placementAttempt
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if board.TileAt(row, col) != nil || board.NumAdjacentTiles(row, col) == 0 {
				continue
			}
			for axis := Horizontal; axis <= Vertical; axis++ {
				attempts = append(attempts, anchorWordAttempts(a.Validator.Dict, rackLetters, row, col, axis)...)
			}
		}
	}
	return attempts
}

func anchorWordAttempts(dict *Dictionary, rackLetters string, row, col int, axis Direction) []placementAttempt {
	var attempts []placementAttempt
	dr, dc := stepFor(axis)
	for _, letter := range uniqueRunes(rackLetters) {
		for _, w := range dict.WordsFrom(rackLetters, letter, true, true) {
			runes := []rune(w)
			for i, r := range runes {
				if r != letter {
					continue
				}
				startRow := row - i*dr
				startCol := col - i*dc
				if startRow < 0 || startCol < 0 || startRow+len(runes)*dr > BoardSize || startCol+len(runes)*dc > BoardSize {
					continue
				}
				if tiles, ok := tilesFor(runes, rackLetters); ok {
					attempts = append(attempts, placementAttempt{row: startRow, col: startCol, dir: axis, tiles: tiles})
				}
			}
		}
	}
	return attempts
}

// tilesFor maps a dictionary word onto the exact rack tiles needed to
// spell it, substituting blanks for letters the rack lacks (one per
// deficit), per spec.md §4.5 step 3b. It returns ok=false if the rack
// cannot supply the word even with blanks.
func tilesFor(word []rune, rackLetters string) ([]PlacedTile, bool) {
	available := make(map[rune]int)
	for _, r := range rackLetters {
		available[r]++
	}
	tiles := make([]PlacedTile, len(word))
	for i, r := range word {
		if available[r] > 0 {
			available[r]--
			tiles[i] = PlacedTile{Letter: r, Meaning: r}
			continue
		}
		if available[BlankLetter] > 0 {
			available[BlankLetter]--
			tiles[i] = PlacedTile{Letter: BlankLetter, Meaning: r}
			continue
		}
		return nil, false
	}
	return tiles, true
}

func uniqueRunes(s string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range s {
		if r == BlankLetter || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// evaluate validates, scores and ranks every placement attempt using a
// bounded pool of workers, per the teacher's riddle.go concurrency
// idiom. Duplicate candidates (same start, axis and tile sequence)
// are dropped, as are zero-score candidates, per spec.md §4.5 step 4.
func (a *AIMoveGenerator) evaluate(ctx context.Context, board *Board, player *Player, attempts []placementAttempt) []candidate {
	numWorkers := a.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 4
	}
	work := make(chan placementAttempt)
	results := make(chan *candidate, len(attempts))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for att := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- a.tryAttempt(board, player, att)
			}
		}()
	}
	go func() {
		for _, att := range attempts {
			select {
			case <-ctx.Done():
			case work <- att:
			}
		}
		close(work)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	seen := make(map[string]bool)
	var out []candidate
	for c := range results {
		if c == nil || c.score == 0 {
			continue
		}
		key := candidateKey(c.move)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, *c)
	}
	return out
}

func candidateKey(m *Move) string {
	s := ""
	for _, t := range m.Tiles {
		s += string(t.Letter) + string(t.Meaning)
	}
	return string(rune(m.StartRow)) + string(rune(m.StartCol)) + string(rune(m.Direction)) + s
}

func (a *AIMoveGenerator) tryAttempt(board *Board, player *Player, att placementAttempt) *candidate {
	move := NewPlaceMove(0, att.row, att.col, att.dir, att.tiles)
	formed, err := a.Validator.IsValidPlace(board, move)
	if err != nil {
		return nil
	}

	overlay := board.Clone()
	dr, dc := stepFor(att.dir)
	row, col := att.row, att.col
	var newCoords [][2]int
	tileValues := make([]int, 0, len(att.tiles))
	for _, pt := range att.tiles {
		for overlay.TileAt(row, col) != nil {
			row, col = row+dr, col+dc
		}
		value := a.Validator.TileSet.Scores[pt.Letter]
		overlay.PlaceTile(row, col, &Tile{Letter: pt.Letter, Meaning: pt.Meaning, Value: value})
		newCoords = append(newCoords, [2]int{row, col})
		tileValues = append(tileValues, value)
		row, col = row+dr, col+dc
	}

	score := a.Scorer.Score(board, overlay, move, formed)
	move.FormedWords = formed
	move.Score = score

	leave := rackLeave(player.Rack, att.tiles)
	composite := float64(score)
	composite += BonusAllTiles * boolFloat(len(att.tiles) == RackSize)
	composite += BonusMultiWord * boolFloat(len(formed) > 1)
	composite += RackLeaveWeight * rackLeaveValue(leave)
	composite += PremiumSquareWeight * premiumUsageValue(board, newCoords, tileValues)

	return &candidate{move: move, formed: formed, score: score, newCoords: newCoords, composite: composite}
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// rackLeave computes the rack letters that would remain after tiles
// is played, for rack_leave_value.
func rackLeave(rack *Rack, tiles []PlacedTile) []rune {
	counts := make(map[rune]int)
	for _, l := range rack.Letters() {
		counts[l]++
	}
	for _, t := range tiles {
		counts[t.Letter]--
	}
	var out []rune
	for letter, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, letter)
		}
	}
	return out
}

// fallback implements §4.5's final step: exchange the two
// lowest-valued tiles if the bag can support it, else PASS.
func (a *AIMoveGenerator) fallback(bag *Bag, playerIndex int, player *Player) *Move {
	if !bag.ExchangeAllowed() {
		return NewPassMove(playerIndex)
	}
	tiles := player.Rack.Tiles()
	if len(tiles) < 2 {
		return NewPassMove(playerIndex)
	}
	rackHasU := false
	for _, t := range tiles {
		if t.Letter == 'U' {
			rackHasU = true
			break
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		return tileValuationHeuristic(tiles[i], rackHasU) < tileValuationHeuristic(tiles[j], rackHasU)
	})
	return NewExchangeMove(playerIndex, []rune{tiles[0].Letter, tiles[1].Letter})
}
