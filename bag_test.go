package engine

import (
	"math/rand"
	"testing"
)

func TestBagDrawDepletesAndRestores(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bag := newBag(StandardEnglishTileSet, rng)
	if bag.Count() != StandardEnglishTileSet.Size {
		t.Fatalf("expected %d tiles, got %d", StandardEnglishTileSet.Size, bag.Count())
	}

	drawn := make([]*Tile, 0, 10)
	for i := 0; i < 10; i++ {
		tile := bag.DrawTile()
		if tile == nil {
			t.Fatalf("expected a tile on draw %d", i)
		}
		drawn = append(drawn, tile)
	}
	if bag.Count() != StandardEnglishTileSet.Size-10 {
		t.Fatalf("expected %d tiles remaining, got %d", StandardEnglishTileSet.Size-10, bag.Count())
	}

	for _, tile := range drawn {
		bag.ReturnTile(tile)
	}
	if bag.Count() != StandardEnglishTileSet.Size {
		t.Fatalf("expected tiles returned, got %d", bag.Count())
	}
}

func TestBagExchangeAllowed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bag := newBag(StandardEnglishTileSet, rng)
	for bag.Count() > RackSize-1 {
		bag.DrawTile()
	}
	if bag.ExchangeAllowed() {
		t.Errorf("expected exchange disallowed with fewer than %d tiles left", RackSize)
	}
}

func TestBagDrawEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bag := &Bag{rng: rng}
	if tile := bag.DrawTile(); tile != nil {
		t.Errorf("expected nil draw from an empty bag, got %v", tile)
	}
}
