package engine

import "testing"

func TestNewBoardPremiumLayout(t *testing.T) {
	b := NewBoard()
	center := b.Sq(7, 7)
	if center.Premium != CenterSquare {
		t.Errorf("expected center square to carry CenterSquare, got %v", center.Premium)
	}
	corner := b.Sq(0, 0)
	if corner.Premium != TripleWord {
		t.Errorf("expected corner to carry TripleWord, got %v", corner.Premium)
	}
	if b.Sq(0, 3).Premium != DoubleLetter {
		t.Errorf("expected (0,3) to carry DoubleLetter, got %v", b.Sq(0, 3).Premium)
	}
}

func TestBoardPlaceTile(t *testing.T) {
	b := NewBoard()
	tile := &Tile{Letter: 'A', Meaning: 'A', Value: 1}
	if !b.PlaceTile(7, 7, tile) {
		t.Fatalf("expected first placement at (7,7) to succeed")
	}
	if b.NumTiles != 1 {
		t.Errorf("expected NumTiles 1, got %d", b.NumTiles)
	}
	if b.PlaceTile(7, 7, tile) {
		t.Errorf("expected placement on an occupied square to fail")
	}
	if b.PlaceTile(20, 20, tile) {
		t.Errorf("expected out-of-bounds placement to fail")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	clone := b.Clone()
	clone.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})

	if b.NumTiles != 1 {
		t.Errorf("expected original board untouched, NumTiles = %d", b.NumTiles)
	}
	if clone.NumTiles != 2 {
		t.Errorf("expected clone to carry the new tile, NumTiles = %d", clone.NumTiles)
	}
	if clone.Adjacents[7][7][dirRight] != clone.Sq(7, 8) {
		t.Errorf("expected clone's adjacency cache to point within the clone")
	}
}

func TestBoardWordFragment(t *testing.T) {
	b := NewBoard()
	b.PlaceTile(7, 6, &Tile{Letter: 'C', Meaning: 'C', Value: 3})
	b.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	b.PlaceTile(7, 8, &Tile{Letter: 'T', Meaning: 'T', Value: 1})

	if word := b.WordFragment(7, 9, dirLeft); word != "CAT" {
		t.Errorf("expected WordFragment left of (7,9) to be CAT, got %q", word)
	}
	if word := b.WordFragment(7, 5, dirRight); word != "CAT" {
		t.Errorf("expected WordFragment right of (7,5) to be CAT, got %q", word)
	}
}

func TestBoardNumAdjacentTiles(t *testing.T) {
	b := NewBoard()
	b.PlaceTile(7, 7, &Tile{Letter: 'A', Meaning: 'A', Value: 1})
	if n := b.NumAdjacentTiles(7, 8); n != 1 {
		t.Errorf("expected 1 adjacent tile at (7,8), got %d", n)
	}
	if n := b.NumAdjacentTiles(0, 0); n != 0 {
		t.Errorf("expected 0 adjacent tiles at (0,0), got %d", n)
	}
}
