// rack.go
// This file implements the Rack: the ordered set of up to RackSize
// tiles owned by one player.
//
// The teacher shipped two divergent Rack implementations (one in
// board.go built on an array of Squares, one in rack.go built on a
// RackTiles letter-count map). Consolidated here into a single
// version grounded on the rack.go variant, since spec.md's "remove
// (by identity with fallback to (letter,value,blank) match)" contract
// maps more directly onto a plain tile slice than onto Square slots.

package engine

import (
	"math/rand"
	"strings"
)

// Rack holds a player's tiles.
type Rack struct {
	tiles []*Tile
}

// NewRack returns an empty rack.
func NewRack() *Rack {
	return &Rack{tiles: make([]*Tile, 0, RackSize)}
}

// Size returns the number of tiles currently on the rack.
func (r *Rack) Size() int {
	if r == nil {
		return 0
	}
	return len(r.tiles)
}

// IsEmpty returns true if the rack holds no tiles.
func (r *Rack) IsEmpty() bool {
	return r.Size() == 0
}

// IsFull returns true if the rack holds RackSize tiles.
func (r *Rack) IsFull() bool {
	return r.Size() >= RackSize
}

// Add places a tile onto the rack. It is a no-op if the rack is
// already full.
func (r *Rack) Add(tile *Tile) bool {
	if tile == nil || r.IsFull() {
		return false
	}
	r.tiles = append(r.tiles, tile)
	return true
}

// Remove takes a specific tile (by pointer identity) off the rack. If
// the exact tile is not found, it falls back to removing the first
// tile matching (letter, value, blank-ness), per spec.md §3's Rack
// remove contract.
func (r *Rack) Remove(tile *Tile) bool {
	if tile == nil {
		return false
	}
	for i, t := range r.tiles {
		if t == tile {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return true
		}
	}
	for i, t := range r.tiles {
		if t.Equal(tile) {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLetter removes and returns the first tile on the rack whose
// Letter matches, or nil if none is found.
func (r *Rack) RemoveLetter(letter rune) *Tile {
	for i, t := range r.tiles {
		if t.Letter == letter {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			return t
		}
	}
	return nil
}

// HasTile returns true if the given tile (by pointer identity) is on
// the rack.
func (r *Rack) HasTile(tile *Tile) bool {
	if r == nil || tile == nil {
		return false
	}
	for _, t := range r.tiles {
		if t == tile {
			return true
		}
	}
	return false
}

// Tiles returns a copy of the rack's tiles, in rack order.
func (r *Rack) Tiles() []*Tile {
	out := make([]*Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// Letters returns the rack's tiles as their Letter runes (blanks as
// '?'), in rack order.
func (r *Rack) Letters() []rune {
	out := make([]rune, len(r.tiles))
	for i, t := range r.tiles {
		out[i] = t.Letter
	}
	return out
}

// AsString returns the rack's letters as a contiguous string, e.g.
// "CAT?O".
func (r *Rack) AsString() string {
	return string(r.Letters())
}

// Shuffle randomizes the order of the tiles on the rack using the
// given seeded random source (per spec.md §9, no hidden global
// randomness).
func (r *Rack) Shuffle(rng *rand.Rand) {
	for i := len(r.tiles) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		r.tiles[i], r.tiles[j] = r.tiles[j], r.tiles[i]
	}
}

// Fill draws tiles from the bag until the rack holds RackSize tiles
// or the bag runs dry. Returns false if the rack could not be
// completely filled.
func (r *Rack) Fill(bag *Bag) bool {
	for !r.IsFull() {
		tile := bag.DrawTile()
		if tile == nil {
			return false
		}
		r.Add(tile)
	}
	return true
}

// ReturnToBag removes every tile from the rack and returns it to the
// bag.
func (r *Rack) ReturnToBag(bag *Bag) {
	for _, t := range r.tiles {
		bag.ReturnTile(t)
	}
	r.tiles = r.tiles[:0]
}

// FindTiles finds rack tiles (by Letter) corresponding to the given
// letters, without returning the same tile twice even if a letter
// is requested more than once. Letters not found in the rack are
// omitted from the result.
func (r *Rack) FindTiles(letters []rune) []*Tile {
	result := make([]*Tile, 0, len(letters))
	picked := make([]bool, len(r.tiles))
	for _, letter := range letters {
		for i, t := range r.tiles {
			if !picked[i] && t.Letter == letter {
				result = append(result, t)
				picked[i] = true
				break
			}
		}
	}
	return result
}

// String renders the rack for debugging.
func (r *Rack) String() string {
	var sb strings.Builder
	for _, t := range r.tiles {
		sb.WriteString(t.String())
	}
	return sb.String()
}
