// board.go
// This file implements the Board, its Squares, the fixed premium
// layout, and the cached adjacency matrix used to find anchor
// squares (component C2 of the word-search engine).
//
// Grounded on the teacher's board.go: same grid-string encoding of
// the premium layout (decoded once in Init), same cached Adjacents
// matrix, same Fragment/WordFragment axis-walk helpers.

package engine

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of the board.
const BoardSize = 15

// RackSize is the number of tiles a rack holds.
const RackSize = 7

const zeroDigit = int('0')

// Premium is the kind of premium a square carries.
type Premium int

const (
	NoPremium Premium = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	CenterSquare // acts as DoubleWord
)

// wordMultiplierGrid and letterMultiplierGrid encode the standard
// 15x15 Scrabble premium layout, one digit per square, row-major.
// This is the same representation the teacher uses; it is equivalent
// to spec.md §6's explicit coordinate lists for the standard board.
var wordMultiplierGrid = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultiplierGrid = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// Square is one cell of the Board.
type Square struct {
	Tile             *Tile
	Row, Col         int
	Premium          Premium
	PremiumConsumed  bool
}

// String renders a square for debugging: '.' if empty, else the
// displayed letter.
func (sq *Square) String() string {
	if sq == nil || sq.Tile == nil {
		return "."
	}
	return string(sq.Tile.Meaning)
}

// Indices into AdjSquares.
const (
	dirAbove = 0
	dirLeft  = 1
	dirRight = 2
	dirBelow = 3
)

// AdjSquares holds pointers to the (up to four) squares adjacent to a
// given square, with nil where the neighbor falls off the board.
type AdjSquares [4]*Square

// Board is the 15x15 grid of Squares, with a cached adjacency matrix.
type Board struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	NumTiles  int
}

// NewBoard allocates and initializes an empty board with the
// standard premium layout.
func NewBoard() *Board {
	b := &Board{}
	b.init()
	return b
}

func (b *Board) init() {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sq := &b.Squares[i][j]
			sq.Row, sq.Col = i, j
			wm := int(wordMultiplierGrid[i][j]) - zeroDigit
			lm := int(letterMultiplierGrid[i][j]) - zeroDigit
			switch {
			case i == BoardSize/2 && j == BoardSize/2:
				sq.Premium = CenterSquare
			case wm == 3:
				sq.Premium = TripleWord
			case wm == 2:
				sq.Premium = DoubleWord
			case lm == 3:
				sq.Premium = TripleLetter
			case lm == 2:
				sq.Premium = DoubleLetter
			default:
				sq.Premium = NoPremium
			}
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &b.Adjacents[row][col]
			if row > 0 {
				adj[dirAbove] = b.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[dirBelow] = b.Sq(row+1, col)
			}
			if col > 0 {
				adj[dirLeft] = b.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[dirRight] = b.Sq(row, col+1)
			}
		}
	}
}

// Clone returns a deep-enough copy of the board suitable for use as a
// validation overlay: Square values (including Tile pointers, which
// are never mutated after placement) are copied, but the Adjacents
// cache is rebuilt to point within the copy.
func (b *Board) Clone() *Board {
	clone := &Board{Squares: b.Squares, NumTiles: b.NumTiles}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			adj := &clone.Adjacents[row][col]
			if row > 0 {
				adj[dirAbove] = clone.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[dirBelow] = clone.Sq(row+1, col)
			}
			if col > 0 {
				adj[dirLeft] = clone.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[dirRight] = clone.Sq(row, col+1)
			}
		}
	}
	return clone
}

// Sq returns a pointer to the square at (row, col), or nil if the
// coordinate is out of bounds.
func (b *Board) Sq(row, col int) *Square {
	if b == nil || row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return &b.Squares[row][col]
}

// TileAt returns the tile at (row, col), or nil if out of bounds or
// empty.
func (b *Board) TileAt(row, col int) *Tile {
	sq := b.Sq(row, col)
	if sq == nil {
		return nil
	}
	return sq.Tile
}

// IsEmpty returns true if no tile has been placed on the board yet.
func (b *Board) IsEmpty() bool {
	return b.NumTiles == 0
}

// PlaceTile places a tile on an empty square. It is a no-op (and
// returns false) if the square is already occupied or out of bounds,
// per spec.md §4.2.
func (b *Board) PlaceTile(row, col int, tile *Tile) bool {
	sq := b.Sq(row, col)
	if sq == nil || sq.Tile != nil {
		return false
	}
	sq.Tile = tile
	b.NumTiles++
	return true
}

// NumAdjacentTiles returns how many of the up-to-four neighbors of
// (row, col) hold a tile.
func (b *Board) NumAdjacentTiles(row, col int) int {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return 0
	}
	count := 0
	for _, sq := range b.Adjacents[row][col] {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// AdjacentOccupied returns the (up to four) neighbor squares of
// (row, col) that currently hold a tile, per spec.md §4.2
// adjacent_occupied.
func (b *Board) AdjacentOccupied(row, col int) []*Square {
	sq := b.Sq(row, col)
	if sq == nil {
		return nil
	}
	result := make([]*Square, 0, 4)
	for _, adj := range b.Adjacents[row][col] {
		if adj != nil && adj.Tile != nil {
			result = append(result, adj)
		}
	}
	return result
}

// Fragment returns the tiles extending from (row, col) in the given
// direction, not including (row, col) itself, stopping at the first
// empty square or the board edge.
func (b *Board) Fragment(row, col, direction int) []*Tile {
	if row < 0 || col < 0 || row >= BoardSize || col >= BoardSize {
		return nil
	}
	if direction < dirAbove || direction > dirBelow {
		return nil
	}
	frag := make([]*Tile, 0, BoardSize-1)
	for {
		sq := b.Adjacents[row][col][direction]
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word spelled by the tile run emanating
// from (row, col) in the given direction, not including (row, col)
// itself, read in natural reading order.
func (b *Board) WordFragment(row, col, direction int) string {
	frag := b.Fragment(row, col, direction)
	var result string
	if direction == dirLeft || direction == dirAbove {
		for _, t := range frag {
			result = string(t.Meaning) + result
		}
	} else {
		for _, t := range frag {
			result += string(t.Meaning)
		}
	}
	return result
}

// String renders the board for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf(" %v", b.Sq(i, j)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
