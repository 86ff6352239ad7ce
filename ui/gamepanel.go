package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"tictactoe-term/engine"
)

// GameInfoPanel displays the turn, move history and session score alongside the board.
type GameInfoPanel struct {
	box *tview.TextView
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Update redraws the panel text from the engine state.
func (p *GameInfoPanel) Update(eng *engine.Engine, score engine.Score) {
	p.box.SetText(infoText(eng, score))
}

func infoText(eng *engine.Engine, score engine.Score) string {
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	switch eng.Status() {
	case engine.Won:
		text += fmt.Sprintf("[white]Result:[-:-:-] %s wins\n", eng.Winner())
	case engine.Draw:
		text += "[white]Result:[-:-:-] draw\n"
	default:
		text += fmt.Sprintf("[white]Turn:[-:-:-] %s\n", eng.Turn())
	}
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", eng.MoveCount())

	text += "\n[white::b]Score[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("X %d   O %d   draws %d\n", score.X, score.O, score.Draws)

	moves := eng.Moves()
	if len(moves) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	for i, m := range moves {
		marker := " "
		if i == len(moves)-1 {
			marker = "[white]>[-]"
		}
		text += fmt.Sprintf("%s[dimgray]%d.[-] %s %s\n", marker, i+1, m.Mark, engine.PosToDisplay(m.Row, m.Col))
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCentered places p in the middle of the screen at a fixed size.
func CreateCentered(p tview.Primitive, width, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, height, 0, true).
		AddItem(nil, 0, 1, false)
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.Update(board.eng, board.score)

	// Board takes the remaining width, info panel is fixed
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()
	board.infoPanel = nil

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(board.Box, 0, 1, true)
}
