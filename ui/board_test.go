package ui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-term/config"
	"tictactoe-term/engine"
)

func newTestBoard(t *testing.T) (*BoardUI, *[]engine.MoveResult) {
	t.Helper()
	cfg := config.DefaultConfig
	var ended []engine.MoveResult
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := NewBoard(&cfg, tview.NewTextView(), logger, func(res engine.MoveResult) {
		ended = append(ended, res)
	})
	b.Box.SetRect(0, 0, 40, 20)
	return b, &ended
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLayoutGrid(t *testing.T) {
	g := layoutGrid(0, 0, 40, 20)
	assert.Equal(t, 11, g.cellW)
	assert.Equal(t, 5, g.cellH)
	assert.Equal(t, 37, g.width())
	assert.Equal(t, 19, g.height())
	assert.Equal(t, 1, g.x)
	assert.Equal(t, 0, g.y)

	small := layoutGrid(2, 3, 5, 3)
	assert.Equal(t, minCellW, small.cellW)
	assert.Equal(t, minCellH, small.cellH)
	assert.Equal(t, 2, small.x)
	assert.Equal(t, 3, small.y)
}

func TestGridCellAt(t *testing.T) {
	g := layoutGrid(0, 0, 40, 20)
	for row := 0; row < engine.Size; row++ {
		for col := 0; col < engine.Size; col++ {
			x, y := g.cellOrigin(row, col)
			r, c, ok := g.cellAt(x+g.cellW-1, y+g.cellH-1)
			require.True(t, ok)
			assert.Equal(t, row, r)
			assert.Equal(t, col, c)
		}
	}

	_, _, ok := g.cellAt(g.x, g.y)
	assert.False(t, ok, "top-left frame corner")
	_, _, ok = g.cellAt(g.x+g.width(), g.y)
	assert.False(t, ok, "right of the frame")
}

func TestClickPlaysCell(t *testing.T) {
	b, _ := newTestBoard(t)
	g := b.geometry()

	x, y := g.cellOrigin(1, 2)
	res, ok := b.HandleClick(x+1, y)
	require.True(t, ok)
	assert.True(t, res.Accepted)
	assert.Equal(t, engine.MarkX, b.Engine().CellAt(1, 2))
	assert.Equal(t, engine.MarkO, b.Engine().Turn())

	_, ok = b.HandleClick(g.x, g.y)
	assert.False(t, ok)
	assert.Equal(t, 1, b.Engine().MoveCount())
}

func playTopRowWin(t *testing.T, b *BoardUI) {
	t.Helper()
	for _, p := range []engine.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}} {
		require.True(t, b.PlayMove(p.Row, p.Col).Accepted)
	}
	require.True(t, b.IsFinished())
}

func TestClickOnFinishedBoard(t *testing.T) {
	b, ended := newTestBoard(t)
	playTopRowWin(t, b)
	g := b.geometry()

	x, y := g.cellOrigin(2, 2)
	res, ok := b.HandleClick(x, y)
	require.True(t, ok)
	assert.False(t, res.Accepted)
	assert.Equal(t, engine.RejectGameOver, res.Reason)
	assert.Nil(t, b.SelectedTile(), "no cursor on a finished board")
	assert.Len(t, *ended, 1)

	capture := b.Box.GetMouseCapture()
	_, event := capture(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Nil(t, event, "clicks on a finished board are consumed")
}

func TestClickRejectedOnOccupiedCell(t *testing.T) {
	b, _ := newTestBoard(t)
	g := b.geometry()
	x, y := g.cellOrigin(0, 0)

	_, ok := b.HandleClick(x, y)
	require.True(t, ok)
	b.MoveSelection(0, 1)
	require.Equal(t, &engine.Pos{Row: 0, Col: 1}, b.SelectedTile())

	res, _ := b.HandleClick(x, y)
	assert.Equal(t, engine.RejectOccupied, res.Reason)
	assert.Equal(t, &engine.Pos{Row: 0, Col: 1}, b.SelectedTile(), "rejected click keeps the cursor")
}

func TestMouseCapturePlaysClick(t *testing.T) {
	b, _ := newTestBoard(t)
	g := b.geometry()
	x, y := g.cellOrigin(2, 0)

	capture := b.Box.GetMouseCapture()
	action, event := capture(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, tview.MouseLeftClick, action)
	assert.NotNil(t, event)
	assert.Equal(t, engine.MarkX, b.Engine().CellAt(2, 0))
}

func TestDrawRendersGridAndMarks(t *testing.T) {
	b, _ := newTestBoard(t)
	screen := newSimScreen(t)

	b.PlayMove(0, 0)
	b.PlayMove(2, 1)
	b.Box.Draw(screen)

	g := b.geometry()
	corner, _, _, _ := screen.GetContent(g.x, g.y)
	assert.Equal(t, '┌', corner)
	cross, _, _, _ := screen.GetContent(g.x+g.cellW+1, g.y+g.cellH+1)
	assert.Equal(t, '┼', cross)

	x, y := g.cellOrigin(0, 0)
	mark, _, _, _ := screen.GetContent(x+g.cellW/2, y+g.cellH/2)
	assert.Equal(t, 'X', mark)

	x, y = g.cellOrigin(2, 1)
	mark, _, _, _ = screen.GetContent(x+g.cellW/2, y+g.cellH/2)
	assert.Equal(t, 'O', mark)

	x, y = g.cellOrigin(1, 1)
	empty, _, _, _ := screen.GetContent(x+g.cellW/2, y+g.cellH/2)
	assert.Equal(t, ' ', empty)
}

func TestDrawUsesConfiguredSymbols(t *testing.T) {
	b, _ := newTestBoard(t)
	cfg := config.DefaultConfig
	cfg.Theme.Symbols = config.SymbolSets[1].Symbols
	b.SetConfig(&cfg)
	screen := newSimScreen(t)

	b.PlayMove(1, 1)
	b.Box.Draw(screen)

	g := b.geometry()
	x, y := g.cellOrigin(1, 1)
	mark, _, _, _ := screen.GetContent(x+g.cellW/2, y+g.cellH/2)
	assert.Equal(t, config.SymbolSets[1].Symbols.X, mark)
}

func TestGameEndFiresOnce(t *testing.T) {
	b, ended := newTestBoard(t)

	for _, p := range []engine.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}} {
		res := b.PlayMove(p.Row, p.Col)
		require.True(t, res.Accepted)
	}
	assert.Empty(t, *ended)

	res := b.PlayMove(0, 2)
	require.True(t, res.Terminal())
	require.Len(t, *ended, 1)
	assert.Equal(t, "Player X wins!", (*ended)[0].Message())
	assert.True(t, b.IsFinished())
	assert.Equal(t, engine.Score{X: 1}, b.Score())

	res = b.PlayMove(2, 2)
	assert.False(t, res.Accepted)
	assert.Len(t, *ended, 1)
	assert.Equal(t, engine.Empty, b.Engine().CellAt(2, 2))
}

func TestResetStartsNewGame(t *testing.T) {
	b, _ := newTestBoard(t)
	session := b.Session()

	b.MoveSelection(0, 0)
	b.PlayMove(1, 1)
	b.Reset()

	assert.Equal(t, engine.Empty, b.Engine().CellAt(1, 1))
	assert.Equal(t, engine.MarkX, b.Engine().Turn())
	assert.Nil(t, b.SelectedTile())
	assert.NotEqual(t, session, b.Session())
	assert.False(t, b.IsFinished())
}

func TestMoveSelection(t *testing.T) {
	b, _ := newTestBoard(t)
	assert.Nil(t, b.SelectedTile())

	b.MoveSelection(-1, 0)
	assert.Equal(t, &engine.Pos{Row: 1, Col: 1}, b.SelectedTile(), "first move selects the centre")

	b.MoveSelection(-1, 0)
	b.MoveSelection(-1, 0)
	assert.Equal(t, &engine.Pos{Row: 0, Col: 1}, b.SelectedTile(), "selection stays on the board")

	res, ok := b.PlaySelected()
	require.True(t, ok)
	assert.True(t, res.Accepted)
	assert.Equal(t, engine.MarkX, b.Engine().CellAt(0, 1))

	b.ResetSelection()
	b.MoveSelection(1, 0)
	assert.Equal(t, &engine.Pos{Row: 0, Col: 1}, b.SelectedTile(), "selection resumes at the last move")
}

func TestPlaySelectedWithoutSelection(t *testing.T) {
	b, _ := newTestBoard(t)
	_, ok := b.PlaySelected()
	assert.False(t, ok)
	assert.Zero(t, b.Engine().MoveCount())
}

func TestHandleKey(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.Nil(t, b.HandleKey(key('5')))
	assert.Equal(t, engine.MarkX, b.Engine().CellAt(1, 1))

	assert.Nil(t, b.HandleKey(key('l')))
	assert.Equal(t, &engine.Pos{Row: 1, Col: 2}, b.SelectedTile())
	assert.Nil(t, b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, engine.MarkO, b.Engine().CellAt(1, 2))

	ev := key('z')
	assert.Same(t, ev, b.HandleKey(ev))
}

func TestHandleKeyTypedMove(t *testing.T) {
	b, _ := newTestBoard(t)

	assert.Nil(t, b.HandleKey(key('c')))
	assert.Contains(t, b.hint.GetText(false), "C_")
	assert.Nil(t, b.HandleKey(key('1')))
	assert.Equal(t, engine.MarkX, b.Engine().CellAt(0, 2))
	assert.Equal(t, engine.Empty, b.Engine().CellAt(0, 0), "the digit completes the move instead of playing the keypad")
	assert.Equal(t, &engine.Pos{Row: 0, Col: 2}, b.SelectedTile())

	// A key that is not a row number drops the typed column
	assert.Nil(t, b.HandleKey(key('a')))
	assert.Nil(t, b.HandleKey(key('9')))
	assert.Equal(t, 1, b.Engine().MoveCount())
	assert.NotContains(t, b.hint.GetText(false), "A_")

	assert.Nil(t, b.HandleKey(key('9')))
	assert.Equal(t, engine.MarkO, b.Engine().CellAt(2, 2))
}

func TestHintShowsTurnAndResult(t *testing.T) {
	b, _ := newTestBoard(t)
	assert.Contains(t, b.hint.GetText(false), "Player X to move")

	b.PlayMove(0, 0)
	assert.Contains(t, b.hint.GetText(false), "Player O to move")

	for _, p := range []engine.Pos{{Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}} {
		b.PlayMove(p.Row, p.Col)
	}
	assert.Contains(t, b.hint.GetText(false), "Player X wins!")
}

func TestInfoText(t *testing.T) {
	e := engine.New()
	e.ApplyMove(1, 1)
	e.ApplyMove(0, 2)

	text := infoText(e, engine.Score{X: 2, Draws: 1})
	assert.Contains(t, text, "Turn:[-:-:-] X")
	assert.Contains(t, text, "Move:[-:-:-] 2")
	assert.Contains(t, text, "X 2   O 0   draws 1")
	assert.Contains(t, text, "1.[-] X B2")
	assert.Contains(t, text, "2.[-] O C1")
	assert.Equal(t, 1, strings.Count(text, ">"))
}

func TestFocusLayoutDropsInfoPanel(t *testing.T) {
	b, _ := newTestBoard(t)
	hint := tview.NewTextView()
	frame := CreateGameLayout(b, hint)
	require.NotNil(t, b.infoPanel)

	BuildFocusLayout(frame, b)
	assert.Nil(t, b.infoPanel)

	RebuildNormalLayout(frame, b, hint)
	assert.NotNil(t, b.infoPanel)
}
