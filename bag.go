// bag.go
// This file implements the Bag that tiles are drawn from and
// returned to over the course of a game.
//
// Grounded on the teacher's bag.go (makeBag/DrawTile/ReturnTile), with
// one deliberate departure: the teacher draws via the package-global
// math/rand source, whereas spec.md's "Random source" design note
// requires an injected, seedable generator so games are replayable.

package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Bag is a shuffled pool of tiles that have not yet been drawn by a
// rack. It owns every tile until it is handed to a Rack or placed on
// the Board.
type Bag struct {
	contents []*Tile
	rng      *rand.Rand
}

// newBag copies a TileSet into a fresh Bag, owned by the given
// seeded random source.
func newBag(tileSet *TileSet, rng *rand.Rand) *Bag {
	contents := make([]*Tile, 0, tileSet.Size)
	for letter, count := range tileSet.Counts {
		for i := 0; i < count; i++ {
			contents = append(contents, &Tile{
				Letter:  letter,
				Meaning: letter,
				Value:   tileSet.Scores[letter],
			})
		}
	}
	return &Bag{contents: contents, rng: rng}
}

// Count returns the number of tiles currently in the bag.
func (b *Bag) Count() int {
	if b == nil {
		return 0
	}
	return len(b.contents)
}

// ExchangeAllowed returns true if the bag holds enough tiles
// (RackSize) to allow an exchange move, per spec.md §4 ExchangeMove
// and §7 BagUnderflow.
func (b *Bag) ExchangeAllowed() bool {
	return b.Count() >= RackSize
}

// DrawTile removes and returns one random tile from the bag, or nil
// if the bag is empty.
func (b *Bag) DrawTile() *Tile {
	n := b.Count()
	if n == 0 {
		return nil
	}
	i := b.rng.Intn(n)
	tile := b.contents[i]
	b.contents = append(b.contents[:i], b.contents[i+1:]...)
	return tile
}

// ReturnTile puts a previously drawn tile back into the bag.
func (b *Bag) ReturnTile(tile *Tile) {
	if b == nil || tile == nil {
		return
	}
	b.contents = append(b.contents, tile)
}

// String renders the bag's remaining contents for debugging.
func (b *Bag) String() string {
	if b == nil || len(b.contents) == 0 {
		return "Empty"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("(%d tiles): ", len(b.contents)))
	for _, t := range b.contents {
		sb.WriteString(fmt.Sprintf("%v ", t))
	}
	return sb.String()
}
