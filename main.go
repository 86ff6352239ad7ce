// tictactoe-term is a terminal application for two players sharing a keyboard and mouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/sync/errgroup"

	"tictactoe-term/config"
	"tictactoe-term/engine"
	"tictactoe-term/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Start a game immediately, skipping the menu")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagConfig     = flag.String("config", "", "Path to a config file (default: XDG config dir)")
	flagLogLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var resultDialog *ui.ResultDialog
var cfg *config.Config
var logger *slog.Logger

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tictactoe-term %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig(*flagConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *flagLogLevel != "" {
		if err := cfg.SetLogLevel(*flagLogLevel); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logOut, closeLog := openLog()
	defer closeLog()
	logger = initLogger(logOut, cfg.LogLevel)
	logger.Info("starting", "version", Version, "config", cfg.Path())

	if err := run(); err != nil {
		logger.Error("exited with error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("stopped")
}

// run builds the screens and drives the application until it is quit or
// the process receives SIGINT or SIGTERM.
func run() error {
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" # tictactoe ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameBoard = ui.NewBoard(cfg, gameHint, logger, showResult)
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				rootPage.SwitchToPage("menu")
			}
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'f' {
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
			return nil
		}
		return gameBoard.HandleKey(event)
	})

	// End of game dialog
	resultDialog = ui.NewResultDialog(
		func() {
			gameBoard.Reset()
			rootPage.HidePage("result")
			app.SetFocus(gameBoard.Box)
		},
		func() {
			app.Stop()
		},
	)

	// Start screen
	menu := ui.NewMenu(cfg,
		func() {
			if cfg.Changed() {
				if err := cfg.Save(); err != nil {
					logger.Warn("could not save config", "error", err)
				}
			}
			startGame()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			app.Stop()
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		if err != nil {
			logger.Warn("could not save config", "error", err)
		}
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			colorConfig.Cancel()
			rootPage.SwitchToPage("menu")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	quickStart := *flagQuickStart || *flagFocus

	rootPage.AddPage("menu", ui.CreateCentered(menu, 44, 16), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	rootPage.AddPage("result", resultDialog.Modal(), true, false)

	if *flagFocus {
		gameBoard.SetFocusMode(true)
		ui.BuildFocusLayout(gameFrame, gameBoard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer stop()
		return app.SetRoot(rootPage, true).EnableMouse(true).Run()
	})
	g.Go(func() error {
		<-ctx.Done()
		app.Stop()
		return nil
	})

	return g.Wait()
}

// startGame shows the board with a fresh game.
func startGame() {
	gameBoard.SetConfig(cfg)
	if gameBoard.Engine().MoveCount() > 0 {
		gameBoard.Reset()
	}
	rootPage.HidePage("result")
	rootPage.SwitchToPage("gameview")
}

// showResult opens the end of game dialog over the board.
func showResult(res engine.MoveResult) {
	logger.Info("score", "session", gameBoard.Session(), "total", gameBoard.Score().String())
	resultDialog.SetResult(res)
	rootPage.ShowPage("result")
	app.SetFocus(resultDialog.Modal())
}

// openLog opens the log file under the XDG state dir. Logging is discarded
// when it cannot be opened, since stdout belongs to the terminal UI.
func openLog() (io.Writer, func()) {
	path, err := config.LogFile()
	if err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// initLogger creates the text logger at the configured level.
func initLogger(w io.Writer, levelName string) *slog.Logger {
	var level slog.Level

	switch levelName {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
