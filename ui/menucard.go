package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a styled card container with rounded borders and a title row.
type MenuCard struct {
	*tview.Box
	title   string
	accent  rune
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string, accent rune) *MenuCard {
	return &MenuCard{
		Box:    tview.NewBox(),
		title:  title,
		accent: accent,
	}
}

// drawCard renders the card frame and title into the box's inner rect and
// returns the rect left for content below the title divider.
func (c *MenuCard) drawCard(screen tcell.Screen) (int, int, int, int) {
	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return x, y, 0, 0
	}

	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	if c.title == "" {
		return x + 2, y + 2, width - 4, height - 3
	}

	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	// Accent, two spaces, title; centred on the row below the top border gap
	titleLen := len([]rune(c.title)) + 3
	titleX := x + (width-titleLen)/2
	titleY := y + 2
	screen.SetContent(titleX, titleY, c.accent, nil, accentStyle)
	drawText(screen, titleX+3, titleY, c.title, titleStyle)

	c.drawDivider(screen, y+4)
	return x + 2, y + 6, width - 4, height - 7
}

// drawDivider draws a horizontal divider at the given row.
func (c *MenuCard) drawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	borderColor := MenuColors.Border
	if c.focused {
		borderColor = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(borderColor).Background(MenuColors.CardBG)

	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
