package engine

import "testing"

func newTestValidator() *MoveValidator {
	dict := BuildDictionary([]string{"CAT", "CATS", "DOG", "TEA", "EAT", "OAT"})
	return NewMoveValidator(dict, StandardEnglishTileSet)
}

func placeTiles(letters string) []PlacedTile {
	tiles := make([]PlacedTile, len(letters))
	for i, l := range letters {
		tiles[i] = PlacedTile{Letter: l, Meaning: l}
	}
	return tiles
}

// S1: empty-board opening.
func TestValidatorOpeningMoveMustCoverCenter(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	move := NewPlaceMove(0, 7, 6, Horizontal, placeTiles("CAT"))
	formed, err := v.IsValidPlace(board, move)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(formed) != 1 || formed[0].Word != "CAT" {
		t.Errorf("expected formed_words = [CAT], got %v", formed)
	}
}

func TestValidatorOpeningMoveMissingCenterFails(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	move := NewPlaceMove(0, 0, 0, Horizontal, placeTiles("CAT"))
	_, err := v.IsValidPlace(board, move)
	engineErr, ok := err.(*EngineError)
	if !ok || engineErr.Kind != FirstMoveMissesCenter {
		t.Fatalf("expected FirstMoveMissesCenter, got %v", err)
	}
}

// S2: cross-word.
func TestValidatorCrossWordMustBeInDictionary(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	board.PlaceTile(7, 6, &Tile{Letter: 'C', Meaning: 'C', Value: 3})
	board.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	board.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})
	board.NumTiles = 3

	moveTS := NewPlaceMove(0, 8, 8, Vertical, placeTiles("S"))
	_, err := v.IsValidPlace(board, moveTS)
	engineErr, ok := err.(*EngineError)
	if !ok || engineErr.Kind != NotInDictionary {
		t.Fatalf("expected NotInDictionary for TS, got %v", err)
	}

	moveOT := NewPlaceMove(0, 6, 8, Vertical, placeTiles("O"))
	_, err = v.IsValidPlace(board, moveOT)
	engineErr, ok = err.(*EngineError)
	if !ok || engineErr.Kind != NotInDictionary {
		t.Fatalf("expected NotInDictionary for OT, got %v", err)
	}

	move2 := NewPlaceMove(0, 7, 9, Horizontal, placeTiles("S"))
	formed, err := v.IsValidPlace(board, move2)
	if err != nil {
		t.Fatalf("unexpected error forming CATS: %v", err)
	}
	if len(formed) != 1 || formed[0].Word != "CATS" {
		t.Errorf("expected formed_words = [CATS], got %v", formed)
	}
}

// S3: disconnected rejection.
func TestValidatorDisconnectedMoveRejected(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	board.PlaceTile(7, 6, &Tile{Letter: 'C', Meaning: 'C', Value: 3})
	board.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	board.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})
	board.NumTiles = 3

	dict := BuildDictionary([]string{"CAT", "DOG"})
	v2 := NewMoveValidator(dict, StandardEnglishTileSet)
	move := NewPlaceMove(0, 0, 0, Horizontal, placeTiles("DOG"))
	_, err := v2.IsValidPlace(board, move)
	engineErr, ok := err.(*EngineError)
	if !ok || engineErr.Kind != Disconnected {
		t.Fatalf("expected Disconnected, got %v", err)
	}
}

func TestValidatorNoTilesRejected(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	move := NewPlaceMove(0, 7, 7, Horizontal, nil)
	_, err := v.IsValidPlace(board, move)
	engineErr, ok := err.(*EngineError)
	if !ok || engineErr.Kind != NoTiles {
		t.Fatalf("expected NoTiles, got %v", err)
	}
}

func TestValidatorAdjacentConnectionIsSufficient(t *testing.T) {
	v := newTestValidator()
	board := NewBoard()
	board.PlaceTile(7, 6, &Tile{Letter: 'C', Meaning: 'C', Value: 3})
	board.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	board.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})
	board.NumTiles = 3

	// "TEA" placed vertically starting at (7,8), reusing the existing T
	// and adding E, A below it -- adjacent to, not threaded through.
	move := NewPlaceMove(0, 8, 8, Vertical, placeTiles("EA"))
	formed, err := v.IsValidPlace(board, move)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(formed) == 0 {
		t.Errorf("expected at least one formed word")
	}
}
