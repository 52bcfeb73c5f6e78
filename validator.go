// validator.go
// This file implements the MoveValidator (component C5): the rules
// that decide whether a PLACE move is legal and which words it forms,
// per spec.md §4.2/§4.3.
//
// Grounded on the teacher's move.go IsValid/Apply flow (walk the
// covered squares, read off cross-words at each new tile), but
// restructured around an explicit Board.Clone overlay rather than
// live board mutation -- so a rejected move never touches the real
// board, matching spec.md §8 invariant 1 ("validating a move never
// mutates the board").

package engine

import "fmt"

// stepFor returns the (row, col) step that advances one square along dir.
func stepFor(dir Direction) (dr, dc int) {
	if dir == Horizontal {
		return 0, 1
	}
	return 1, 0
}

func perpStep(dir Direction) (dr, dc int) {
	if dir == Horizontal {
		return 1, 0
	}
	return 0, 1
}

// MoveValidator checks PLACE moves against a Dictionary.
type MoveValidator struct {
	Dict    *Dictionary
	TileSet *TileSet
}

// NewMoveValidator returns a validator backed by the given dictionary
// and tile set (used to assign point values to newly placed tiles).
func NewMoveValidator(dict *Dictionary, tileSet *TileSet) *MoveValidator {
	return &MoveValidator{Dict: dict, TileSet: tileSet}
}

// IsValidPlace checks move against board (without mutating it) and, if
// legal, returns every word the move forms. board is the live,
// pre-move board; move.Tiles holds only the NEW tiles the player is
// laying down, in playing order.
func (v *MoveValidator) IsValidPlace(board *Board, move *Move) ([]FormedWord, error) {
	if len(move.Tiles) == 0 {
		return nil, newErr(NoTiles)
	}
	if board.Sq(move.StartRow, move.StartCol) == nil {
		return nil, newErr(OutOfBounds)
	}

	overlay := board.Clone()
	dr, dc := stepFor(move.Direction)

	row, col := move.StartRow, move.StartCol
	var newCoords [][2]int
	for _, pt := range move.Tiles {
		for {
			sq := overlay.Sq(row, col)
			if sq == nil {
				return nil, newErr(OutOfBounds)
			}
			if sq.Tile == nil {
				break
			}
			row, col = row+dr, col+dc
		}
		tile := &Tile{Letter: pt.Letter, Meaning: pt.Meaning, Value: v.TileSet.Scores[pt.Letter]}
		overlay.PlaceTile(row, col, tile)
		newCoords = append(newCoords, [2]int{row, col})
		row, col = row+dr, col+dc
	}

	wasEmpty := board.IsEmpty()
	if wasEmpty {
		center := BoardSize / 2
		covered := false
		for _, c := range newCoords {
			if c[0] == center && c[1] == center {
				covered = true
				break
			}
		}
		if !covered {
			return nil, newErr(FirstMoveMissesCenter)
		}
	} else if !v.connects(board, overlay, newCoords, move.Direction) {
		return nil, newErr(Disconnected)
	}

	var formed []FormedWord
	seen := make(map[string]bool)

	mainRow, mainCol := lineStart(overlay, newCoords[0][0], newCoords[0][1], dr, dc)
	mainWord := lineWord(overlay, mainRow, mainCol, dr, dc)
	if len(mainWord) >= 2 {
		key := fmt.Sprintf("%d:%d:%s", mainRow, mainCol, mainWord)
		if !seen[key] {
			seen[key] = true
			formed = append(formed, FormedWord{Word: mainWord, Row: mainRow, Col: mainCol})
		}
	}

	pr, pc := perpStep(move.Direction)
	for _, c := range newCoords {
		startRow, startCol := lineStart(overlay, c[0], c[1], pr, pc)
		word := lineWord(overlay, startRow, startCol, pr, pc)
		if len(word) < 2 {
			continue
		}
		key := fmt.Sprintf("%d:%d:%s", startRow, startCol, word)
		if seen[key] {
			continue
		}
		seen[key] = true
		formed = append(formed, FormedWord{Word: word, Row: startRow, Col: startCol})
	}

	if len(formed) == 0 {
		// A single isolated tile with no neighbors in either direction
		// forms no word at all; spec.md §4.2 treats this the same as a
		// too-short word.
		return nil, newNotInDictionary("")
	}

	for _, fw := range formed {
		if !v.Dict.IsValidWord(fw.Word) {
			return nil, newNotInDictionary(fw.Word)
		}
	}

	return formed, nil
}

// connects reports whether the move threads through an existing tile
// (a gap was skipped while laying tiles) or lands at least one new
// tile adjacent to a pre-existing tile on the original board.
func (v *MoveValidator) connects(board, overlay *Board, newCoords [][2]int, dir Direction) bool {
	for _, c := range newCoords {
		if board.NumAdjacentTiles(c[0], c[1]) > 0 {
			return true
		}
	}
	// All newCoords lie on a single line along dir; walk from the first
	// to the last placed tile on the ORIGINAL board, which surfaces any
	// existing tile the move threads through along the way.
	dr, dc := stepFor(dir)
	first, last := newCoords[0], newCoords[len(newCoords)-1]
	if dr < 0 || dc < 0 {
		first, last = last, first
	}
	for r, c := first[0], first[1]; ; r, c = r+dr, c+dc {
		if board.TileAt(r, c) != nil {
			return true
		}
		if r == last[0] && c == last[1] {
			break
		}
	}
	return false
}

// lineStart walks backwards (against step dr,dc) from (row, col) on
// overlay to the first cell of the contiguous tile run containing it.
func lineStart(overlay *Board, row, col, dr, dc int) (int, int) {
	for {
		pr, pc := row-dr, col-dc
		sq := overlay.Sq(pr, pc)
		if sq == nil || sq.Tile == nil {
			return row, col
		}
		row, col = pr, pc
	}
}

// lineWord reads the contiguous tile run starting at (row, col) and
// advancing by (dr, dc) until the run ends.
func lineWord(overlay *Board, row, col, dr, dc int) string {
	var word []rune
	for {
		sq := overlay.Sq(row, col)
		if sq == nil || sq.Tile == nil {
			break
		}
		word = append(word, sq.Tile.Meaning)
		row, col = row+dr, col+dc
	}
	return string(word)
}
