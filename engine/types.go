package engine

import "fmt"

// Cell is the content of a board cell. Marks are Cells other than Empty.
type Cell int

const (
	Empty Cell = iota
	MarkX
	MarkO
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return "?"
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Status is the phase of a game.
type Status int

const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Finished reports whether no more moves are accepted.
func (s Status) Finished() bool {
	return s == Won || s == Draw
}

// RejectReason says why a move was not applied.
type RejectReason int

const (
	NotRejected RejectReason = iota
	RejectOutOfRange
	RejectOccupied
	RejectGameOver
)

func (r RejectReason) String() string {
	switch r {
	case NotRejected:
		return "accepted"
	case RejectOutOfRange:
		return "out of range"
	case RejectOccupied:
		return "cell occupied"
	case RejectGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// MoveResult describes the outcome of ApplyMove.
// Status and Winner are the engine state after the call, so a rejected
// move still reports the game it was rejected from.
type MoveResult struct {
	Accepted bool
	Reason   RejectReason
	Row      int
	Col      int
	Mark     Cell
	Status   Status
	Winner   Cell
}

// Terminal reports whether this move ended the game.
func (r MoveResult) Terminal() bool {
	return r.Accepted && r.Status.Finished()
}

// Message is the text shown to players when the move ended the game.
// It is empty for moves that did not.
func (r MoveResult) Message() string {
	if !r.Terminal() {
		return ""
	}
	if r.Status == Won {
		return fmt.Sprintf("Player %s wins!", r.Winner)
	}
	return "It's a draw!"
}
