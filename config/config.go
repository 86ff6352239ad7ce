package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

var (
	cfgFile = "tictactoe-term/config.json"
	logFile = "tictactoe-term/tictactoe.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	LineColor         int `json:"line" env:"TICTACTOE_LINE_COLOR"`
	XColor            int `json:"x" env:"TICTACTOE_X_COLOR"`
	OColor            int `json:"o" env:"TICTACTOE_O_COLOR"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
	WinLineColorBG    int `json:"win_line_bg"`
}

type ConfigSymbols struct {
	X rune `json:"x"`
	O rune `json:"o"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	HighlightWinningLine     bool          `json:"highlight_winning_line"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

type Config struct {
	Theme    Theme  `json:"theme"`
	LogLevel string `json:"log_level" env:"TICTACTOE_LOG_LEVEL"`

	path string
	// file holds the overridable values as stored in the file, override
	// the values the environment and flags replaced them with.
	file     overridable
	override overridable
	// stored is what the file holds after the last load or save.
	stored stored
}

type stored struct {
	theme    Theme
	logLevel string
}

// overridable are the settings that environment variables and flags may
// replace for a single run without changing the file.
type overridable struct {
	logLevel  string
	lineColor int
	xColor    int
	oColor    int
}

func (c *Config) overridableValues() overridable {
	return overridable{
		logLevel:  c.LogLevel,
		lineColor: c.Theme.Colors.LineColor,
		xColor:    c.Theme.Colors.XColor,
		oColor:    c.Theme.Colors.OColor,
	}
}

// InitConfig loads the config file at path, or the one found in the XDG
// config directories when path is empty. A missing file is not an error.
func InitConfig(path string) (*Config, error) {
	if path == "" {
		found, err := xdg.SearchConfigFile(cfgFile)
		if err != nil {
			cfg := DefaultConfig
			return cfg.applyEnv()
		}
		path = found
	}
	return Load(path)
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig
	cfg.path = path

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		defer f.Close()
		if err := cleanenv.ParseJSON(f, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return cfg.applyEnv()
}

func (c *Config) applyEnv() (*Config, error) {
	c.file = c.overridableValues()
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, fmt.Errorf("read config env: %w", err)
	}
	c.override = c.overridableValues()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.markStored()
	return c, nil
}

func (c *Config) markStored() {
	out := c.persistent()
	c.stored = stored{theme: out.Theme, logLevel: out.LogLevel}
}

// Changed reports whether Save would write something other than what the
// file held when it was last loaded or saved.
func (c *Config) Changed() bool {
	out := c.persistent()
	return out.Theme != c.stored.theme || out.LogLevel != c.stored.logLevel
}

// SetLogLevel overrides the log level for this run. Save keeps the level
// from the file unless it was changed since.
func (c *Config) SetLogLevel(level string) error {
	c.LogLevel = level
	c.override.logLevel = level
	return c.Validate()
}

// persistent returns the config as it should be written: overridden values
// that were not changed in the application go back to their file values.
func (c *Config) persistent() Config {
	out := *c
	cur := c.overridableValues()
	if cur.logLevel == c.override.logLevel {
		out.LogLevel = c.file.logLevel
	}
	if cur.lineColor == c.override.lineColor {
		out.Theme.Colors.LineColor = c.file.lineColor
	}
	if cur.xColor == c.override.xColor {
		out.Theme.Colors.XColor = c.file.xColor
	}
	if cur.oColor == c.override.oColor {
		out.Theme.Colors.OColor = c.file.oColor
	}
	return out
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.X, c.Theme.Symbols.O} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.X == c.Theme.Symbols.O {
		return &InvalidConfig{"X and O symbols must differ"}
	}
	colors := c.Theme.Colors
	for _, v := range []int{colors.BoardColor, colors.LineColor, colors.XColor, colors.OColor,
		colors.CursorColorBG, colors.LastPlayedColorBG, colors.WinLineColorBG} {
		if v < 0 || v > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256 color palette", v)}
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

// Save writes the config back to the file it was loaded from, or to the
// XDG config home when it was not loaded from a file.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = xdg.ConfigFile(cfgFile)
		if err != nil {
			return fmt.Errorf("locate config file: %w", err)
		}
		c.path = path
	}
	out := c.persistent()
	if err := saveCfgFile(path, &out, 0664); err != nil {
		return err
	}
	c.file = out.overridableValues()
	c.override = c.overridableValues()
	c.markStored()
	return nil
}

// Path returns the file the config is saved to, if known.
func (c *Config) Path() string {
	return c.path
}

// LogFile returns the log file location under the XDG state home,
// creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
