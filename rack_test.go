package engine

import (
	"math/rand"
	"testing"
)

func TestRackAddAndRemove(t *testing.T) {
	r := NewRack()
	tile := &Tile{Letter: 'C', Meaning: 'C', Value: 3}
	if !r.Add(tile) {
		t.Fatalf("expected Add to succeed on an empty rack")
	}
	if r.Size() != 1 {
		t.Errorf("expected size 1, got %d", r.Size())
	}
	if !r.Remove(tile) {
		t.Fatalf("expected Remove to find the tile by identity")
	}
	if !r.IsEmpty() {
		t.Errorf("expected rack empty after removing its only tile")
	}
}

func TestRackRemoveFallsBackToEquality(t *testing.T) {
	r := NewRack()
	r.Add(&Tile{Letter: 'A', Meaning: 'A', Value: 1})
	other := &Tile{Letter: 'A', Meaning: 'A', Value: 1}
	if !r.Remove(other) {
		t.Errorf("expected Remove to fall back to (letter, value, meaning) equality")
	}
}

func TestRackFull(t *testing.T) {
	r := NewRack()
	for i := 0; i < RackSize; i++ {
		r.Add(&Tile{Letter: 'A', Meaning: 'A', Value: 1})
	}
	if !r.IsFull() {
		t.Errorf("expected rack full after %d tiles", RackSize)
	}
	if r.Add(&Tile{Letter: 'B', Meaning: 'B', Value: 3}) {
		t.Errorf("expected Add to fail on a full rack")
	}
}

func TestRackFill(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bag := newBag(StandardEnglishTileSet, rng)
	r := NewRack()
	if !r.Fill(bag) {
		t.Fatalf("expected a fresh bag to fill the rack completely")
	}
	if r.Size() != RackSize {
		t.Errorf("expected rack size %d, got %d", RackSize, r.Size())
	}
}

func TestRackShuffleIsDeterministicForSameSeed(t *testing.T) {
	build := func(seed int64) []rune {
		r := NewRack()
		for _, l := range "ABCDEFG" {
			r.Add(&Tile{Letter: l, Meaning: l})
		}
		r.Shuffle(rand.New(rand.NewSource(seed)))
		return r.Letters()
	}
	a := build(42)
	b := build(42)
	if string(a) != string(b) {
		t.Errorf("expected same seed to produce same shuffle order, got %q vs %q", string(a), string(b))
	}
}

func TestRackFindTiles(t *testing.T) {
	r := NewRack()
	r.Add(&Tile{Letter: 'C', Meaning: 'C'})
	r.Add(&Tile{Letter: 'A', Meaning: 'A'})
	r.Add(&Tile{Letter: 'A', Meaning: 'A'})
	found := r.FindTiles([]rune{'A', 'A', 'C'})
	if len(found) != 3 {
		t.Fatalf("expected 3 tiles found, got %d", len(found))
	}
	missing := r.FindTiles([]rune{'Z'})
	if len(missing) != 0 {
		t.Errorf("expected no tiles found for a letter not on the rack")
	}
}
