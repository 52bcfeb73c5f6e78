// score.go
// This file implements the ScoreCalculator (component C6): scoring a
// validated PLACE move, per spec.md §4.3/§4.4.
//
// Grounded on the teacher's move.go Score() walk (per-word letter/word
// multiplier accumulation, bingo bonus), but splits the "premium
// square already used" bookkeeping into two layers per spec.md §8
// invariants 3/4: board.go's Square.PremiumConsumed is the permanent,
// whole-game record (flipped only at Commit), while usedWordPremium
// here is scoped to a single Score() call and enforces "a word
// multiplier applies at most once per move even if two formed words
// share a premium square" -- a distinct rule the teacher does not need
// since it only ever scores one placement shape at a time.

package engine

// BingoBonus is added when a PLACE move uses all RackSize tiles.
const BingoBonus = 50

// ScoreCalculator computes the point value of a validated PLACE move.
type ScoreCalculator struct{}

// Score returns the total point value of move's formed words. overlay
// is the post-move board (as built by MoveValidator.IsValidPlace,
// carrying the new tiles with their real point values); live is the
// pre-move board, consulted only for each square's permanent
// PremiumConsumed flag so a square an earlier move already covered no
// longer contributes its multiplier. Neither board is mutated.
func (s *ScoreCalculator) Score(live, overlay *Board, move *Move, formed []FormedWord) int {
	dr, dc := stepFor(move.Direction)
	total := 0
	usedWordPremium := make(map[[2]int]bool)

	for i, fw := range formed {
		lr, lc := dr, dc
		// Cross-words run perpendicular to the move. formed[0] is the
		// main word unless that run was a single tile, in which case it
		// is already a cross-word.
		if i > 0 || lineWord(overlay, fw.Row, fw.Col, dr, dc) != fw.Word {
			lr, lc = perpStep(move.Direction)
		}
		total += s.scoreWord(live, overlay, fw, lr, lc, usedWordPremium)
	}

	if len(move.Tiles) == RackSize {
		total += BingoBonus
	}
	return total
}

func (s *ScoreCalculator) scoreWord(live, overlay *Board, fw FormedWord, dr, dc int, usedWordPremium map[[2]int]bool) int {
	letterSum := 0
	wordMultiplier := 1
	row, col := fw.Row, fw.Col
	for i := 0; i < len(fw.Word); i++ {
		sq := overlay.Sq(row, col)
		if sq == nil || sq.Tile == nil {
			break
		}
		value := sq.Tile.Value

		liveSq := live.Sq(row, col)
		isNewTile := liveSq == nil || liveSq.Tile == nil
		alreadyConsumed := liveSq != nil && liveSq.PremiumConsumed

		if isNewTile && !alreadyConsumed {
			switch sq.Premium {
			case DoubleLetter:
				value *= 2
			case TripleLetter:
				value *= 3
			case DoubleWord, CenterSquare:
				if !usedWordPremium[[2]int{row, col}] {
					wordMultiplier *= 2
					usedWordPremium[[2]int{row, col}] = true
				}
			case TripleWord:
				if !usedWordPremium[[2]int{row, col}] {
					wordMultiplier *= 3
					usedWordPremium[[2]int{row, col}] = true
				}
			}
		}
		letterSum += value
		row, col = row+dr, col+dc
	}
	return letterSum * wordMultiplier
}
