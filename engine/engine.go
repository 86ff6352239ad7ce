// Package engine implements the tic-tac-toe rules: board state, move
// validation, win and draw detection, turn switching and reset.
//
// An Engine is not safe for concurrent use. Callers that receive input on
// several goroutines must serialize calls themselves.
package engine

// Size is the board width and height.
const Size = 3

// Board is the 3x3 grid, indexed as Board[row][col].
type Board [Size][Size]Cell

// Move is an accepted move.
type Move struct {
	Row  int
	Col  int
	Mark Cell
}

// Engine owns the state of a single game.
type Engine struct {
	board  Board
	turn   Cell
	status Status
	winner Cell
	line   *Line
	moves  []Move
}

// New returns an engine with an empty board and X to move.
func New() *Engine {
	e := &Engine{}
	e.Reset()
	return e
}

// Reset clears the board and gives the first move back to X.
func (e *Engine) Reset() {
	e.board = Board{}
	e.turn = MarkX
	e.status = InProgress
	e.winner = Empty
	e.line = nil
	e.moves = e.moves[:0]
}

// ApplyMove places the current player's mark at (row, col).
// Moves out of range, on an occupied cell, or after the game has ended are
// rejected without touching any state.
func (e *Engine) ApplyMove(row, col int) MoveResult {
	res := MoveResult{Row: row, Col: col, Status: e.status, Winner: e.winner}

	switch {
	case !InBounds(row, col):
		res.Reason = RejectOutOfRange
		return res
	case e.status != InProgress:
		res.Reason = RejectGameOver
		return res
	case e.board[row][col] != Empty:
		res.Reason = RejectOccupied
		return res
	}

	mark := e.turn
	e.board[row][col] = mark
	e.moves = append(e.moves, Move{Row: row, Col: col, Mark: mark})

	// Win is checked before draw: a move that fills the board and
	// completes a line is a win.
	if line, ok := e.board.winningLine(); ok {
		e.status = Won
		e.winner = e.board[line[0].Row][line[0].Col]
		e.line = &line
	} else if e.board.full() {
		e.status = Draw
	} else {
		e.turn = mark.Opponent()
	}

	res.Accepted = true
	res.Mark = mark
	res.Status = e.status
	res.Winner = e.winner
	return res
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Turn returns the mark that the next accepted move will place.
// Once the game has ended it is the mark that played last.
func (e *Engine) Turn() Cell {
	return e.turn
}

// Winner returns the winning mark, or Empty unless the status is Won.
func (e *Engine) Winner() Cell {
	return e.winner
}

// CellAt returns the content of a cell. Out of range positions read as Empty.
func (e *Engine) CellAt(row, col int) Cell {
	if !InBounds(row, col) {
		return Empty
	}
	return e.board[row][col]
}

// Board returns a copy of the grid.
func (e *Engine) Board() Board {
	return e.board
}

// MoveCount returns the number of accepted moves since the last reset.
func (e *Engine) MoveCount() int {
	return len(e.moves)
}

// Moves returns the accepted moves since the last reset, oldest first.
func (e *Engine) Moves() []Move {
	out := make([]Move, len(e.moves))
	copy(out, e.moves)
	return out
}

// WinningLine returns the completed line when the game is won.
func (e *Engine) WinningLine() (Line, bool) {
	if e.line == nil {
		return Line{}, false
	}
	return *e.line, true
}

// InBounds reports whether (row, col) is a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
