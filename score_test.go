package engine

import "testing"

// S1: empty-board opening score.
func TestScoreEmptyBoardOpening(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	move := NewPlaceMove(0, 7, 6, Horizontal, placeTiles("CAT"))
	formed, err := v.IsValidPlace(board, move)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overlay := board.Clone()
	overlay.PlaceTile(7, 6, &Tile{Letter: 'C', Meaning: 'C', Value: 3})
	overlay.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	overlay.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})

	sc := &ScoreCalculator{}
	score := sc.Score(board, overlay, move, formed)
	if score != 10 {
		t.Errorf("expected score 10 (2*(3+1+1)), got %d", score)
	}
}

// S4: bingo bonus.
func TestScoreBingoBonus(t *testing.T) {
	dict := BuildDictionary([]string{"RETAINS"})
	v := NewMoveValidator(dict, StandardEnglishTileSet)
	board := NewBoard()
	move := NewPlaceMove(0, 7, 4, Horizontal, placeTiles("RETAINS"))
	formed, err := v.IsValidPlace(board, move)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overlay := board.Clone()
	row, col := 7, 4
	for _, l := range "RETAINS" {
		overlay.PlaceTile(row, col, &Tile{Letter: l, Meaning: l, Value: StandardEnglishTileSet.Scores[l]})
		col++
	}

	sc := &ScoreCalculator{}
	score := sc.Score(board, overlay, move, formed)

	baseSum := 0
	for _, l := range "RETAINS" {
		baseSum += StandardEnglishTileSet.Scores[l]
	}
	expected := baseSum*2 + BingoBonus
	if score != expected {
		t.Errorf("expected bingo score %d, got %d", expected, score)
	}
}

// S6: two tiles laid on an empty board, only one of them on the
// center square, earn a single doubling: (1+1)*2 = 4, not 8.
func TestScorePremiumAppliedOnce(t *testing.T) {
	dict := BuildDictionary([]string{"AA"})
	v := NewMoveValidator(dict, StandardEnglishTileSet)
	board := NewBoard()
	move := NewPlaceMove(0, 7, 6, Horizontal, placeTiles("AA"))
	formed, err := v.IsValidPlace(board, move)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overlay := board.Clone()
	overlay.PlaceTile(7, 6, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	overlay.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})

	sc := &ScoreCalculator{}
	score := sc.Score(board, overlay, move, formed)
	if score != 4 {
		t.Errorf("expected score 4 ((1+1)*2), got %d", score)
	}
}

