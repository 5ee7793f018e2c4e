// Package main is the entry point for the marquee CLI.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/marquee/internal/adapter"
	"github.com/mmcdole/marquee/internal/adapter/omdb"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/mmcdole/marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	cfg    *adapter.Config
	logger *slog.Logger
)

// errNotConfigured is returned by headless commands when no API key is set
var errNotConfigured = errors.New("no OMDb API key configured; run marquee to set one up or set MARQUEE_OMDB_API_KEY")

// rootCmd runs the interactive browser
var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Search movies and TV shows from the terminal",
	Long: `marquee is a terminal browser for the OMDb movie database. Type a query to
search, select a title to see its details.

Run without arguments for the interactive browser, or use the search and show
subcommands for scripting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		loaded, err := adapter.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded

		logger, err = adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = adapter.NullLogger()
		}
		slog.SetDefault(logger)
		logger.Info("starting marquee", "version", Version, "command", cmd.Name())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/marquee/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newMovieService wires the OMDb client behind the service layer
func newMovieService(history *search.History) *service.MovieService {
	client := omdb.NewClient(cfg.OMDb.BaseURL, cfg.OMDb.APIKey, cfg.OMDb.Timeout, logger)
	return service.NewMovieService(client, history, logger)
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive browser needs a terminal; use 'marquee search' for scripting")
	}

	sessionSvc := service.NewSessionService()

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(sessionSvc); err != nil {
			return err
		}
	}

	history := search.NewHistory(cfg.Search.HistorySize)
	movieSvc := newMovieService(history)
	opener := adapter.NewOpener(cfg.UI.Browser, cfg.UI.BrowserArgs, logger)

	model := tui.NewModel(movieSvc, sessionSvc, opener, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")
	start := time.Now()

	final, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down", "session", time.Since(start).Round(time.Second))
	if m, ok := final.(tui.Model); ok && m.LoggedOut {
		fmt.Println("API key removed from", cfg.FilePath())
	}
	return nil
}
