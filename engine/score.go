package engine

import "fmt"

// Score tallies finished games for the running session.
type Score struct {
	X     int
	O     int
	Draws int
}

// Record counts r if it ended a game. Other results are ignored.
func (s *Score) Record(r MoveResult) {
	if !r.Terminal() {
		return
	}
	switch {
	case r.Status == Draw:
		s.Draws++
	case r.Winner == MarkX:
		s.X++
	case r.Winner == MarkO:
		s.O++
	}
}

// Games returns the number of finished games.
func (s Score) Games() int {
	return s.X + s.O + s.Draws
}

func (s Score) String() string {
	return fmt.Sprintf("X %d · O %d · draws %d", s.X, s.O, s.Draws)
}
