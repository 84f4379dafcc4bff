// numgrid is a terminal reaction game: tap the numbers 1 to 50 in order as fast as you can.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"numgrid/config"
	"numgrid/engine/classic"
	"numgrid/logging"
	"numgrid/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagSeed     uint64
	flagLocale   string
	flagTick     int
	flagLogLevel string
	flagLogFile  string
	flagWrite    bool
)

var rootCmd = &cobra.Command{
	Use:   "numgrid",
	Short: "Tap 1 to 50 in order, against the clock",
	Long: `numgrid deals the numbers 1 to 25 onto a 5x5 grid. Tap them in ascending order;
every tapped cell is refilled from 26 to 50 until the queue runs dry.
The timer starts on the first correct tap and stops on the fiftieth.

Keys:
  mouse / hjkl+enter   tap a cell
  r                    new game
  q                    quit`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	registerFlags(rootCmd)
}

func registerFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Seed for dealing boards (0 = random)")
	cmd.Flags().StringVar(&flagLocale, "locale", "", "Display language (en, zh-TW)")
	cmd.Flags().IntVar(&flagTick, "tick", 0, "Timer refresh interval in milliseconds")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default under the XDG state dir)")
	cmd.Flags().BoolVar(&flagWrite, "write-config", false, "Write the merged config to the XDG config dir and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	config.LoadDotEnv()

	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagWrite {
		return writeConfig(cmd, cfg)
	}

	logger, closer := openLog(cfg)
	defer closer.Close()

	session := classic.NewSession(cfg.GameConfig(), classic.WithLogger(logger))
	defer session.Close()

	app := tview.NewApplication().EnableMouse(true)

	status := ui.NewStatusPanel(cfg)
	board := ui.NewGridBoard(app, cfg, status)
	summary := ui.NewSummaryCard(cfg, board.Reset)
	screens := ui.NewScreens(ui.CreateGameLayout(board, status, cfg), summary)
	board.ConnectEngine(session, screens)

	board.Box.SetInputCapture(boardKeys(board))
	app.SetInputCapture(globalKeys(app, board))

	logger.Info().Str("session", session.ID().String()).Uint64("seed", session.Seed()).Msg("game ready")

	if err := app.SetRoot(screens.Pages(), true).SetFocus(board.Box).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("locale") {
		cfg.Locale = flagLocale
	}
	if flags.Changed("tick") {
		cfg.Timing.TickMillis = flagTick
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
}

// writeConfig saves cfg under the XDG config dir and reports the path.
func writeConfig(cmd *cobra.Command, cfg *config.Config) error {
	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

// openLog opens the debug log, falling back to a no-op logger.
func openLog(cfg *config.Config) (zerolog.Logger, io.Closer) {
	path := flagLogFile
	if path == "" {
		var err error
		path, err = logging.Path()
		if err != nil {
			return zerolog.Nop(), io.NopCloser(nil)
		}
	}
	logger, closer, err := logging.Open(path, cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil)
	}
	return logger, closer
}

// globalKeys handles keys that work on every page.
func globalKeys(app *tview.Application, board *ui.GridBoardUI) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		switch event.Rune() {
		case 'r', 'R':
			board.Reset()
			app.SetFocus(board.Box)
			return nil
		case 'q', 'Q':
			app.Stop()
			return nil
		}
		return event
	}
}

// boardKeys moves the keyboard cursor and taps the selected cell.
func boardKeys(board *ui.GridBoardUI) func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			board.MoveSelection(0, -1)
		case tcell.KeyDown:
			board.MoveSelection(0, 1)
		case tcell.KeyLeft:
			board.MoveSelection(-1, 0)
		case tcell.KeyRight:
			board.MoveSelection(1, 0)
		case tcell.KeyEnter:
			board.PlaySelected()
		case tcell.KeyEsc:
			board.ResetSelection()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				board.MoveSelection(-1, 0)
			case 'j':
				board.MoveSelection(0, 1)
			case 'k':
				board.MoveSelection(0, -1)
			case 'l':
				board.MoveSelection(1, 0)
			case ' ':
				board.PlaySelected()
			default:
				return event
			}
		default:
			return event
		}
		return nil
	}
}
