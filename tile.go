// tile.go
// This file implements the Letter/Tile tables and the TileSet they
// are drawn from (component C1 of the word-search engine).

package engine

// Tile is a single letter tile, either a plain letter or a blank.
// A blank tile's Meaning is assigned when it is placed on the board
// and is fixed thereafter; its Value remains 0 permanently.
type Tile struct {
	Letter  rune // 'A'..'Z', or '?' for a blank
	Meaning rune // the displayed letter; equals Letter unless blank
	Value   int  // point value (0 for a blank, regardless of Meaning)
}

// IsBlank returns true if the tile is a blank.
func (t *Tile) IsBlank() bool {
	return t != nil && t.Letter == '?'
}

// Equal returns true if two tiles carry the same letter, value and
// blank-ness. Per spec.md §3, this is the full equality contract for
// a Tile.
func (t *Tile) Equal(other *Tile) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Letter == other.Letter && t.Value == other.Value && t.Meaning == other.Meaning
}

// String renders a tile for debugging.
func (t *Tile) String() string {
	if t == nil {
		return "."
	}
	return string(t.Meaning)
}

// BlankLetter is the sentinel rune used for blank tiles.
const BlankLetter = '?'

// TileSet is the static catalogue a game's Bag is copied from: for
// each letter (plus the blank), how many tiles exist and what each is
// worth.
type TileSet struct {
	Counts map[rune]int
	Scores map[rune]int
	Size   int
}

// Contains returns true if the letter (or '?' for blank) is part of
// this TileSet's alphabet.
func (ts *TileSet) Contains(letter rune) bool {
	_, ok := ts.Scores[letter]
	return ok
}

// newTileSet builds a TileSet from per-letter counts and scores, with
// Size set to the total of counts. It does not check that counts and
// scores cover the same letters.
func newTileSet(counts, scores map[rune]int) *TileSet {
	size := 0
	for _, c := range counts {
		size += c
	}
	return &TileSet{Counts: counts, Scores: scores, Size: size}
}

// StandardEnglishTileSet is the classic 100-tile English Scrabble tile
// set, per spec.md §6.
var StandardEnglishTileSet = newTileSet(
	map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1, BlankLetter: 2,
	},
	map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10, BlankLetter: 0,
	},
)
