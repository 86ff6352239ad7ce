package engine

// Pos is a cell position.
type Pos struct {
	Row int
	Col int
}

// Line is one of the eight triples that win when filled with one mark.
type Line [Size]Pos

// Lines lists every winning line: rows, then columns, then the two diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Contains reports whether the line passes through (row, col).
func (l Line) Contains(row, col int) bool {
	for _, p := range l {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

// winningLine scans all lines and returns the first one held by a single mark.
func (b *Board) winningLine() (Line, bool) {
	for _, l := range Lines {
		a := b[l[0].Row][l[0].Col]
		if a != Empty && a == b[l[1].Row][l[1].Col] && a == b[l[2].Row][l[2].Col] {
			return l, true
		}
	}
	return Line{}, false
}

// full reports whether no cell is Empty.
func (b *Board) full() bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// String renders the board as three rows of bracketed cells.
func (b Board) String() string {
	var s string
	for row := range b {
		for col := range b[row] {
			s += "[" + b[row][col].String() + "]"
		}
		s += "\n"
	}
	return s
}
