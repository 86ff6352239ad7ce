package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Display coordinate system:
// - Columns: A-C (left to right)
// - Rows: 1-3 (top to bottom)
// - Example: A1 is the top-left cell, C3 the bottom-right one
//
// Engine coordinate system:
// - Row: 0-2 (top to bottom)
// - Col: 0-2 (left to right)

// ErrInvalidPos is returned by ParsePos for text that does not name a cell.
var ErrInvalidPos = errors.New("invalid position")

// PosToDisplay converts engine coordinates to display notation.
// (0, 0) -> A1, (2, 1) -> B3
func PosToDisplay(row, col int) string {
	if !InBounds(row, col) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'A'+rune(col), row+1)
}

// ParsePos converts display notation back to engine coordinates.
func ParsePos(s string) (int, int, error) {
	v := strings.TrimSpace(strings.ToUpper(s))
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPos, s)
	}
	col := int(v[0] - 'A')
	row := int(v[1] - '1')
	if !InBounds(row, col) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPos, s)
	}
	return row, col, nil
}

// CellFromPoint maps a point, relative to the top-left corner of the grid,
// to the cell under it. cellW and cellH are the size of one cell in the
// same units as the point. ok is false outside the grid.
func CellFromPoint(x, y, cellW, cellH int) (row, col int, ok bool) {
	if cellW <= 0 || cellH <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/cellH, x/cellW
	if !InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// KeypadPos maps the digits 1-9 to cells in reading order, 1 being the
// top-left cell.
func KeypadPos(r rune) (row, col int, ok bool) {
	if r < '1' || r > '9' {
		return 0, 0, false
	}
	i := int(r - '1')
	return i / Size, i % Size, true
}
