// Package ui specifies custom controls for tview to play tic-tac-toe in the terminal.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"

	"tictactoe-term/config"
	"tictactoe-term/engine"
)

// Indexes into BoardUI.styles.
const (
	styleBoard = iota
	styleLine
	styleX
	styleO
	styleCursor
	styleLastPlayed
	styleWinLine
)

// BoardUI draws the grid and turns mouse and keyboard input into moves.
// All methods must be called from the tview event goroutine, which is what
// serializes access to the engine.
type BoardUI struct {
	Box       *tview.Box
	hint      *tview.TextView
	cfg       *config.Config
	eng       *engine.Engine
	score     engine.Score
	selRow    int
	selCol    int
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	pending   rune // column letter of a typed move, or 0
	onGameEnd func(engine.MoveResult)
	baseLog   *slog.Logger
	log       *slog.Logger
	session   string
}

// NewBoard creates the board widget with a fresh game. onGameEnd is called
// once for every move that ends a game.
func NewBoard(c *config.Config, hint *tview.TextView, logger *slog.Logger, onGameEnd func(engine.MoveResult)) *BoardUI {
	board := &BoardUI{
		Box:       tview.NewBox(),
		hint:      hint,
		eng:       engine.New(),
		selRow:    -1,
		selCol:    -1,
		onGameEnd: onGameEnd,
		baseLog:   logger.With("component", "board"),
	}
	board.SetConfig(c)
	board.newSession()
	board.Box.SetDrawFunc(board.draw)
	board.Box.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action != tview.MouseLeftClick {
			return action, event
		}
		x, y := event.Position()
		if !board.Box.InRect(x, y) {
			return action, event
		}
		// A finished board takes no clicks and no focus
		if board.IsFinished() {
			return action, nil
		}
		board.HandleClick(x, y)
		return action, event
	})
	board.refreshHint()
	return board
}

func (b *BoardUI) newSession() {
	b.session = uuid.NewString()
	b.log = b.baseLog.With("session", b.session)
	b.log.Info("game started")
}

// Engine returns the engine driving this board.
func (b *BoardUI) Engine() *engine.Engine {
	return b.eng
}

// Score returns the tally of games finished on this board.
func (b *BoardUI) Score() engine.Score {
	return b.score
}

// Session returns the id attached to log lines of the current game.
func (b *BoardUI) Session() string {
	return b.session
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *BoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

// SelectedTile returns the cell under the keyboard cursor, or nil.
func (b *BoardUI) SelectedTile() *engine.Pos {
	if b.selRow == -1 && b.selCol == -1 {
		return nil
	}
	return &engine.Pos{Row: b.selRow, Col: b.selCol}
}

// MoveSelection moves the keyboard cursor. The first call places it on the
// last move, or the centre cell on an empty board.
func (b *BoardUI) MoveSelection(dRow, dCol int) {
	if b.eng.Status().Finished() {
		b.ResetSelection()
		return
	}
	if b.SelectedTile() == nil {
		b.selRow, b.selCol = engine.Size/2, engine.Size/2
		if moves := b.eng.Moves(); len(moves) > 0 {
			last := moves[len(moves)-1]
			b.selRow, b.selCol = last.Row, last.Col
		}
		return
	}
	if !engine.InBounds(b.selRow+dRow, b.selCol+dCol) {
		return
	}
	b.selRow += dRow
	b.selCol += dCol
}

func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

// PlayMove applies a move for the player whose turn it is.
func (b *BoardUI) PlayMove(row, col int) engine.MoveResult {
	res := b.eng.ApplyMove(row, col)
	if !res.Accepted {
		b.log.Debug("move rejected", "pos", engine.PosToDisplay(row, col), "reason", res.Reason)
		return res
	}
	b.log.Debug("move played", "mark", res.Mark, "pos", engine.PosToDisplay(row, col), "move", b.eng.MoveCount())

	if res.Terminal() {
		b.score.Record(res)
		b.ResetSelection()
		b.log.Info("game over", "status", res.Status, "winner", res.Winner, "moves", b.eng.MoveCount())
		b.log.Debug("final board", "board", b.eng.Board().String())
	}
	b.refreshHint()
	if res.Terminal() && b.onGameEnd != nil {
		b.onGameEnd(res)
	}
	return res
}

// PlaySelected plays the cell under the keyboard cursor. ok is false when
// nothing is selected.
func (b *BoardUI) PlaySelected() (res engine.MoveResult, ok bool) {
	sel := b.SelectedTile()
	if sel == nil {
		return engine.MoveResult{}, false
	}
	return b.PlayMove(sel.Row, sel.Col), true
}

// HandleClick plays the cell under a screen position.
func (b *BoardUI) HandleClick(x, y int) (engine.MoveResult, bool) {
	row, col, ok := b.geometry().cellAt(x, y)
	if !ok {
		return engine.MoveResult{}, false
	}
	return b.playAt(row, col), true
}

// playAt plays a cell picked directly and leaves the cursor on it while the
// game goes on.
func (b *BoardUI) playAt(row, col int) engine.MoveResult {
	res := b.PlayMove(row, col)
	if res.Accepted && !res.Terminal() {
		b.selRow, b.selCol = row, col
	}
	return res
}

// HandleKey processes board keys and returns nil for the ones it consumed.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(-1, 0)
	case tcell.KeyDown:
		b.MoveSelection(1, 0)
	case tcell.KeyLeft:
		b.MoveSelection(0, -1)
	case tcell.KeyRight:
		b.MoveSelection(0, 1)
	case tcell.KeyEnter:
		b.PlaySelected()
	case tcell.KeyRune:
		r := event.Rune()
		if b.pending != 0 {
			b.completeTyped(r)
			return nil
		}
		if r >= 'a' && r < 'a'+engine.Size {
			b.pending = r
			b.refreshHint()
			return nil
		}
		if row, col, ok := engine.KeypadPos(r); ok {
			b.playAt(row, col)
			return nil
		}
		switch r {
		case 'h':
			b.MoveSelection(0, -1)
		case 'j':
			b.MoveSelection(1, 0)
		case 'k':
			b.MoveSelection(-1, 0)
		case 'l':
			b.MoveSelection(0, 1)
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// completeTyped finishes a move typed in display notation, like "b2".
// Any key other than a row number cancels it.
func (b *BoardUI) completeTyped(r rune) {
	col := b.pending
	b.pending = 0
	row, c, err := engine.ParsePos(string([]rune{col, r}))
	if err != nil {
		b.log.Debug("typed move discarded", "error", err)
		b.refreshHint()
		return
	}
	b.playAt(row, c)
}

// Reset starts a new game on the same board.
func (b *BoardUI) Reset() {
	b.eng.Reset()
	b.ResetSelection()
	b.pending = 0
	b.newSession()
	b.refreshHint()
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // styleLine
		tcell.PaletteColor(c.Theme.Colors.XColor),            // styleX
		tcell.PaletteColor(c.Theme.Colors.OColor),            // styleO
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursor
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
		tcell.PaletteColor(c.Theme.Colors.WinLineColorBG),    // styleWinLine
	}
	b.cfg = c
}

// IsFinished returns true if the game is over.
func (b *BoardUI) IsFinished() bool {
	return b.eng.Status().Finished()
}

func (b *BoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.Update(b.eng, b.score)
	}
	if b.hint == nil {
		return
	}

	if b.focusMode {
		b.hint.SetText("  f to toggle")
		return
	}

	var statusLine string
	switch b.eng.Status() {
	case engine.Won:
		statusLine = fmt.Sprintf("  Player %s wins!", b.eng.Winner())
	case engine.Draw:
		statusLine = "  It's a draw!"
	default:
		statusLine = fmt.Sprintf("  %c Player %s to move", b.symbol(b.eng.Turn()), b.eng.Turn())
		if b.pending != 0 {
			statusLine += fmt.Sprintf("   %c_", b.pending-'a'+'A')
		}
	}
	b.hint.SetText(statusLine + "\n  click/1-9/a1 play   hjkl/↑↓←→ move   ⏎ play   f focus   q menu")
}

func (b *BoardUI) symbol(c engine.Cell) rune {
	switch c {
	case engine.MarkX:
		return b.cfg.Theme.Symbols.X
	case engine.MarkO:
		return b.cfg.Theme.Symbols.O
	default:
		return ' '
	}
}

func (b *BoardUI) geometry() gridGeometry {
	x, y, w, h := b.Box.GetRect()
	return layoutGrid(x, y, w, h)
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	g := layoutGrid(x, y, width, height)

	lastRow, lastCol := -1, -1
	if moves := b.eng.Moves(); len(moves) > 0 {
		lastRow, lastCol = moves[len(moves)-1].Row, moves[len(moves)-1].Col
	}
	winLine, won := b.eng.WinningLine()
	lineStyle := tcell.StyleDefault.Background(b.styles[styleBoard]).Foreground(b.styles[styleLine])

	for dy := 0; dy < g.height(); dy++ {
		for dx := 0; dx < g.width(); dx++ {
			onV := dx%(g.cellW+1) == 0
			onH := dy%(g.cellH+1) == 0
			sx, sy := g.x+dx, g.y+dy

			switch {
			case onV && onH:
				screen.SetContent(sx, sy, gridRune(dx/(g.cellW+1), dy/(g.cellH+1)), nil, lineStyle)
			case onV:
				screen.SetContent(sx, sy, '│', nil, lineStyle)
			case onH:
				screen.SetContent(sx, sy, '─', nil, lineStyle)
			default:
				row, col := dy/(g.cellH+1), dx/(g.cellW+1)
				bg := b.styles[styleBoard]
				switch {
				case row == b.selRow && col == b.selCol && b.cfg.Theme.DrawCursorBackground:
					bg = b.styles[styleCursor]
				case won && b.cfg.Theme.HighlightWinningLine && winLine.Contains(row, col):
					bg = b.styles[styleWinLine]
				case row == lastRow && col == lastCol && b.cfg.Theme.DrawLastPlayedBackground:
					bg = b.styles[styleLastPlayed]
				}
				style := tcell.StyleDefault.Background(bg)
				r := ' '
				ix, iy := dx%(g.cellW+1)-1, dy%(g.cellH+1)-1
				if ix == g.cellW/2 && iy == g.cellH/2 {
					cell := b.eng.CellAt(row, col)
					r = b.symbol(cell)
					switch cell {
					case engine.MarkX:
						style = style.Foreground(b.styles[styleX]).Bold(true)
					case engine.MarkO:
						style = style.Foreground(b.styles[styleO]).Bold(true)
					}
				}
				screen.SetContent(sx, sy, r, nil, style)
			}
		}
	}
	return x, y, width, height
}

// gridGeometry is the screen placement of the grid. Cells are cellW by
// cellH characters, separated and framed by one character lines.
type gridGeometry struct {
	x, y         int
	cellW, cellH int
}

const (
	minCellW = 3
	minCellH = 1
)

// layoutGrid fits the largest roughly square grid into the given rect and
// centres it. Terminal characters are about twice as tall as wide, so
// cells are twice as wide as they are tall.
func layoutGrid(x, y, width, height int) gridGeometry {
	cellW := (width - engine.Size - 1) / engine.Size
	cellH := (height - engine.Size - 1) / engine.Size
	if cellW > 2*cellH+1 {
		cellW = 2*cellH + 1
	} else {
		cellH = (cellW - 1) / 2
	}
	if cellW < minCellW {
		cellW = minCellW
	}
	if cellH < minCellH {
		cellH = minCellH
	}
	g := gridGeometry{cellW: cellW, cellH: cellH}
	g.x = x + max0((width-g.width())/2)
	g.y = y + max0((height-g.height())/2)
	return g
}

func (g gridGeometry) width() int {
	return engine.Size*(g.cellW+1) + 1
}

func (g gridGeometry) height() int {
	return engine.Size*(g.cellH+1) + 1
}

// cellAt maps a screen position to a cell. A line belongs to the cell on
// its left or above it, except the outer frame on the left and top.
func (g gridGeometry) cellAt(x, y int) (row, col int, ok bool) {
	return engine.CellFromPoint(x-g.x-1, y-g.y-1, g.cellW+1, g.cellH+1)
}

// cellOrigin returns the top-left screen position inside a cell.
func (g gridGeometry) cellOrigin(row, col int) (int, int) {
	return g.x + 1 + col*(g.cellW+1), g.y + 1 + row*(g.cellH+1)
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// gridRune returns the box-drawing character where grid line ix (from the
// left) crosses grid line iy (from the top).
func gridRune(ix, iy int) rune {
	isTop := iy == 0
	isBottom := iy == engine.Size
	isLeft := ix == 0
	isRight := ix == engine.Size

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}
