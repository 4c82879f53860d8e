package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anunobi/clicksearch/pkg/clicksearch"
	"github.com/anunobi/clicksearch/pkg/clicksearch/config"
	"github.com/anunobi/clicksearch/pkg/clicksearch/names"
	"github.com/anunobi/clicksearch/pkg/clicksearch/router"
	"github.com/anunobi/clicksearch/pkg/clicksearch/tui"
)

const defaultTUILogPath = "logs/clicksearch-tui.log"

var (
	flagConfig   string
	flagLogLevel string
	flagLogPath  string
	flagNames    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicksearch",
	Short: "Search a list of names and open one",
	Long: `clicksearch shows a searchable list of names. Selecting a name opens a
detail screen; going back returns to the list with the query intact.

Run without a subcommand to start the SDL app, or use "tui" for the terminal.

Examples:
  clicksearch                          # SDL app with the built-in names
  clicksearch --names people.toml      # Names from a TOML file
  clicksearch tui                      # Terminal app
  clicksearch routes                   # Print the route table`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, repo, err := load()
		if err != nil {
			return err
		}
		return runSDL(cmd.Context(), cfg, repo)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the terminal app",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, repo, err := load()
		if err != nil {
			return err
		}
		return runTUI(cmd.Context(), cfg, repo)
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tPATTERN")
		for _, kind := range router.Kinds() {
			fmt.Fprintf(w, "%s\t%s\n", kind, kind.Pattern())
		}
		return w.Flush()
	},
}

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log-path", "", "Log file path")
	rootCmd.PersistentFlags().StringVar(&flagNames, "names", "", "TOML file with a names array")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(routesCmd)
}

// load reads the config, applies flag overrides and resolves the names.
func load() (config.Config, names.Repository, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogPath != "" {
		cfg.LogPath = flagLogPath
	}

	repo, err := names.Resolve(cfg.Names, flagNames)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, repo, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runSDL(parent context.Context, cfg config.Config, repo names.Repository) error {
	ctx, stop := signalContext(parent)
	defer stop()

	if cfg.LogPath != "" {
		clicksearch.SetLogPath(cfg.LogPath)
	}
	clicksearch.SetRawLogLevel(cfg.LogLevel)
	if err := clicksearch.Init(clicksearch.OptionsFromConfig(cfg)); err != nil {
		return err
	}
	defer clicksearch.Close()

	return clicksearch.Run(ctx, repo)
}

func runTUI(parent context.Context, cfg config.Config, repo names.Repository) error {
	ctx, stop := signalContext(parent)
	defer stop()

	// The terminal belongs to Bubble Tea, so logs only go to the file.
	path := cfg.LogPath
	if path == "" {
		path = defaultTUILogPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "clicksearch")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))

	return tui.Run(ctx, repo, tui.WithTitle(cfg.Title), tui.WithLogger(logger))
}
