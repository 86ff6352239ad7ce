package ui

import (
	"github.com/rivo/tview"

	"tictactoe-term/engine"
)

const (
	buttonPlayAgain = "Play again"
	buttonQuit      = "Quit"
)

// ResultDialog is the modal shown when a game ends. It cannot be dismissed
// without choosing one of its buttons.
type ResultDialog struct {
	modal   *tview.Modal
	onReset func()
	onQuit  func()
}

// NewResultDialog creates the dialog. onReset is called for "Play again".
func NewResultDialog(onReset, onQuit func()) *ResultDialog {
	d := &ResultDialog{
		modal:   tview.NewModal(),
		onReset: onReset,
		onQuit:  onQuit,
	}
	d.modal.
		AddButtons([]string{buttonPlayAgain, buttonQuit}).
		SetDoneFunc(d.done)
	d.modal.SetBackgroundColor(MenuColors.CardBG)
	d.modal.SetButtonBackgroundColor(MenuColors.ButtonBG)
	d.modal.SetButtonTextColor(MenuColors.ButtonText)
	return d
}

// SetResult shows the outcome of res.
func (d *ResultDialog) SetResult(res engine.MoveResult) {
	d.modal.SetText(res.Message())
}

// Modal returns the underlying tview component.
func (d *ResultDialog) Modal() *tview.Modal {
	return d.modal
}

// done handles a button press. Escape reports index -1 and is ignored.
func (d *ResultDialog) done(buttonIndex int, buttonLabel string) {
	switch buttonLabel {
	case buttonPlayAgain:
		if d.onReset != nil {
			d.onReset()
		}
	case buttonQuit:
		if d.onQuit != nil {
			d.onQuit()
		}
	}
}
