package config

var DefaultConfig Config
var DefaultTheme Theme

// SymbolSet is a named pair of marks offered on the start menu.
type SymbolSet struct {
	Name    string
	Symbols ConfigSymbols
}

// SymbolSets lists the mark styles the start menu offers. The first one is
// the default.
var SymbolSets = []SymbolSet{
	{Name: "Letters", Symbols: ConfigSymbols{X: 'X', O: 'O'}},
	{Name: "Shapes", Symbols: ConfigSymbols{X: '✕', O: '◯'}},
	{Name: "Stones", Symbols: ConfigSymbols{X: '●', O: '○'}},
}

// SymbolSetIndex returns the index in SymbolSets matching s, or 0.
func SymbolSetIndex(s ConfigSymbols) int {
	for i, set := range SymbolSets {
		if set.Symbols == s {
			return i
		}
	}
	return 0
}

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		HighlightWinningLine:     true,
		Colors: ConfigColors{
			BoardColor:        236,
			LineColor:         245,
			XColor:            12,
			OColor:            9,
			CursorColorBG:     24,
			LastPlayedColorBG: 238,
			WinLineColorBG:    22,
		},
		Symbols: SymbolSets[0].Symbols,
	}

	DefaultConfig = Config{
		Theme:    DefaultTheme,
		LogLevel: "info",
	}
}
