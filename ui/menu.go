package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-term/config"
)

// MenuUI is the start screen: a card with the mark style choice and the
// Start, Colors and Quit buttons.
type MenuUI struct {
	*MenuCard
	cfg     *config.Config
	symbols *RadioSelect
	buttons []*MenuButton
	focus   int // 0 is the radio group, 1.. the buttons
}

// NewMenu creates the start screen. Choosing a mark style updates cfg.Theme.Symbols.
func NewMenu(cfg *config.Config, onStart, onColors, onQuit func()) *MenuUI {
	m := &MenuUI{
		MenuCard: NewMenuCard("T I C  T A C  T O E", '#'),
		cfg:      cfg,
	}

	options := make([]RadioOption, len(config.SymbolSets))
	for i, set := range config.SymbolSets {
		options[i] = RadioOption{
			Label:       set.Name,
			Description: fmt.Sprintf("%c %c", set.Symbols.X, set.Symbols.O),
		}
	}
	m.symbols = NewRadioSelect("Marks", options, config.SymbolSetIndex(cfg.Theme.Symbols), func(i int) {
		m.cfg.Theme.Symbols = config.SymbolSets[i].Symbols
	})

	m.buttons = []*MenuButton{
		NewMenuButton("Start", true, onStart),
		NewMenuButton("Colors", false, onColors),
		NewMenuButton("Quit", false, onQuit),
	}
	m.setFocus(1)
	return m
}

// Focused returns the label of the focused button, or "" for the radio group.
func (m *MenuUI) Focused() string {
	if m.focus == 0 {
		return ""
	}
	return m.buttons[m.focus-1].label
}

// Symbols returns the index of the chosen mark style.
func (m *MenuUI) Symbols() int {
	return m.symbols.Selected()
}

func (m *MenuUI) setFocus(i int) {
	n := len(m.buttons) + 1
	m.focus = (i%n + n) % n
	m.symbols.SetFocused(m.focus == 0)
	for j, b := range m.buttons {
		b.SetFocused(m.focus == j+1)
	}
}

// HandleKey routes a key to the focused element. Tab and Backtab move the
// focus; Left and Right move between buttons.
func (m *MenuUI) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		m.setFocus(m.focus + 1)
		return true
	case tcell.KeyBacktab:
		m.setFocus(m.focus - 1)
		return true
	}
	if m.focus == 0 {
		if event.Key() == tcell.KeyEnter {
			m.setFocus(1)
			return true
		}
		return m.symbols.HandleKey(event)
	}
	switch event.Key() {
	case tcell.KeyLeft:
		if m.focus > 1 {
			m.setFocus(m.focus - 1)
		}
		return true
	case tcell.KeyRight:
		if m.focus < len(m.buttons) {
			m.setFocus(m.focus + 1)
		}
		return true
	case tcell.KeyUp:
		m.setFocus(0)
		return true
	}
	return m.buttons[m.focus-1].HandleKey(event)
}

// Draw renders the card, the radio group and the button row.
func (m *MenuUI) Draw(screen tcell.Screen) {
	m.Box.DrawForSubclass(screen, m)
	m.SetFocused(m.HasFocus())

	x, y, width, height := m.drawCard(screen)
	if width <= 0 || height <= 0 {
		return
	}
	m.symbols.Draw(screen, x, y, width)

	col := x
	row := y + height - 1
	for _, b := range m.buttons {
		col += b.Draw(screen, col, row) + 2
	}
}

// InputHandler returns the handler for this primitive.
func (m *MenuUI) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		m.HandleKey(event)
	})
}
