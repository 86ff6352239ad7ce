package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tictactoe-term/config"
)

// colorTarget is the theme color being edited.
type colorTarget int

const (
	editX colorTarget = iota
	editO
	editLine
	numTargets
)

func (t colorTarget) String() string {
	switch t {
	case editX:
		return "X"
	case editO:
		return "O"
	default:
		return "Line"
	}
}

type paletteColor struct {
	code int
	name string
}

// Mark colors (bright tones that stand out on a dark board)
var markColors = []paletteColor{
	{12, "Blue"},
	{9, "Red"},
	{10, "Green"},
	{11, "Yellow"},
	{13, "Magenta"},
	{14, "Cyan"},
	{15, "White"},
	{208, "Orange"},
	{213, "Pink"},
	{141, "Lavender"},
	{118, "Lime"},
	{81, "Sky"},
}

// Line colors (muted tones for the grid)
var lineColors = []paletteColor{
	{245, "Gray"},
	{240, "Dark Gray"},
	{250, "Light Gray"},
	{60, "Slate"},
	{94, "Saddle Brown"},
	{24, "Dark Cyan"},
	{22, "Dark Green"},
	{54, "Purple"},
	{255, "White"},
}

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func(error)

	target   colorTarget
	selected [numTargets]int
}

// NewColorConfig creates a new color configuration screen. onDone receives
// the result of saving the config.
func NewColorConfig(cfg *config.Config, onDone func(error)) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:    cfg,
		onDone: onDone,
	}
	cc.discard()

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if colors := cc.colors(); index >= 0 && index < len(colors) {
			cc.selected[cc.target] = colors[index].code
		}
	})

	// Enter applies it and moves on; after the line color the config is saved
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		cc.apply()
		if cc.target == editLine {
			err := cc.cfg.Save()
			cc.target = editX
			cc.populateColorList()
			if cc.onDone != nil {
				cc.onDone(err)
			}
			return
		}
		cc.target++
		cc.populateColorList()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) colors() []paletteColor {
	if cc.target == editLine {
		return lineColors
	}
	return markColors
}

// configured returns the color target t has in the config.
func (cc *ColorConfigUI) configured(t colorTarget) *int {
	switch t {
	case editX:
		return &cc.cfg.Theme.Colors.XColor
	case editO:
		return &cc.cfg.Theme.Colors.OColor
	default:
		return &cc.cfg.Theme.Colors.LineColor
	}
}

// apply copies the selected color of the current target into the config.
func (cc *ColorConfigUI) apply() {
	*cc.configured(cc.target) = cc.selected[cc.target]
}

// discard drops every previewed color that was not applied.
func (cc *ColorConfigUI) discard() {
	for t := editX; t < numTargets; t++ {
		cc.selected[t] = *cc.configured(t)
	}
}

// populateColorList fills the list with the palette for the current target.
func (cc *ColorConfigUI) populateColorList() {
	// Adding items fires the changed func, keep the current choice aside
	want := cc.selected[cc.target]
	cc.colorList.Clear()
	cc.colorList.SetTitle(fmt.Sprintf(" %s Color (Tab: next) ", cc.target))

	colors := cc.colors()
	for i, c := range colors {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range colors {
		if c.code == want {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
	cc.selected[cc.target] = want
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.cfg.Theme.Colors.BoardColor)
	boardStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selected[editLine]))
	xStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selected[editX])).Bold(true)
	oStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selected[editO])).Bold(true)

	// Sample position on a 3x3 grid with 3x1 cells
	marks := map[[2]int]rune{
		{0, 0}: 'x', {1, 1}: 'x', {2, 0}: 'x',
		{0, 2}: 'o', {1, 0}: 'o',
	}
	g := gridGeometry{x: x + 2, y: y + 1, cellW: 3, cellH: 1}

	for dy := 0; dy < g.height(); dy++ {
		for dx := 0; dx < g.width(); dx++ {
			onV := dx%(g.cellW+1) == 0
			onH := dy%(g.cellH+1) == 0
			var ch rune
			style := boardStyle
			switch {
			case onV && onH:
				ch = gridRune(dx/(g.cellW+1), dy/(g.cellH+1))
			case onV:
				ch = '│'
			case onH:
				ch = '─'
			default:
				ch = ' '
				if dx%(g.cellW+1) == 2 {
					switch marks[[2]int{dy / (g.cellH + 1), dx / (g.cellW + 1)}] {
					case 'x':
						ch, style = cc.cfg.Theme.Symbols.X, xStyle
					case 'o':
						ch, style = cc.cfg.Theme.Symbols.O, oStyle
					}
				}
			}
			screen.SetContent(g.x+dx, g.y+dy, ch, nil, style)
		}
	}

	info := fmt.Sprintf("X: %d  O: %d  Line: %d", cc.selected[editX], cc.selected[editO], cc.selected[editLine])
	for i, ch := range info {
		if g.x+i < x+width-1 {
			screen.SetContent(g.x+i, g.y+g.height()+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode moves on to the next color without applying the current one.
func (cc *ColorConfigUI) ToggleMode() {
	cc.selected[cc.target] = *cc.configured(cc.target)
	cc.target = (cc.target + 1) % numTargets
	cc.populateColorList()
}

// Cancel leaves the screen: previews are dropped and the next visit
// starts again at the X color.
func (cc *ColorConfigUI) Cancel() {
	cc.discard()
	cc.target = editX
	cc.populateColorList()
}
