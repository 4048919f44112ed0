package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/lazycollect/internal/app"
	"github.com/chmouel/lazycollect/internal/buildinfo"
	"github.com/chmouel/lazycollect/internal/config"
	"github.com/chmouel/lazycollect/internal/log"
)

// errNotTerminal is returned when the UI is started without a terminal.
var errNotTerminal = errors.New("lazycollect needs an interactive terminal, use 'lazycollect export' instead")

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // file descriptors fit in int
}

// NewCommand builds the root command.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:    "lazycollect",
		Usage:   "Select project files and collect them into one text blob",
		Version: buildinfo.Version(),
		Flags:   globalFlags(),
		Commands: []*urfavecli.Command{
			exportCommand(),
		},
		Action: runTUI,
		// --config values carry their own commas (exclude=a,b).
		DisableSliceFlagSeparator: true,
	}
}

// Run executes the command line.
func Run(ctx context.Context, args []string) error {
	urfavecli.VersionPrinter = func(*urfavecli.Command) {
		fmt.Println(buildinfo.Summary())
	}
	return NewCommand().Run(ctx, args)
}

// runTUI is the default action that launches the TUI when no subcommand is given.
func runTUI(_ context.Context, cmd *urfavecli.Command) error {
	defer closeLog()

	cfg, err := loadCLIConfig(cmd)
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	model := app.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// loadCLIConfig loads the configuration file and applies the global flags,
// CLI overrides last.
func loadCLIConfig(cmd *urfavecli.Command) (*config.AppConfig, error) {
	if debugLog := cmd.String("debug-log"); debugLog != "" {
		setupDebugLog(debugLog)
	}

	cfg, err := config.LoadConfig(cmd.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// If debug log wasn't set via flag, check if it's in the config
	if cmd.String("debug-log") == "" {
		setupDebugLog(cfg.DebugLog)
	}

	if err := applyThemeConfig(cfg, cmd.String("theme")); err != nil {
		return nil, err
	}
	if err := applyRootConfig(cfg, cmd.String("dir")); err != nil {
		return nil, err
	}
	if output := cmd.String("output"); output != "" {
		cfg.OutputFilename = output
	}
	if cmd.Bool("no-icons") {
		cfg.ShowIcons = false
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	log.Printf("bootstrap: root=%s output=%s theme=%s", cfg.Root, cfg.OutputFilename, cfg.Theme)
	return cfg, nil
}

// setupDebugLog opens the debug log at path. An empty path discards the
// logs buffered so far.
func setupDebugLog(path string) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

func closeLog() {
	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
}

// applyThemeConfig applies theme configuration from command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}

	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	cfg.Theme = normalized
	return nil
}

// applyRootConfig resolves the project directory, defaulting to the working
// directory.
func applyRootConfig(cfg *config.AppConfig, dirFlag string) error {
	dir := dirFlag
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("error reading working directory: %w", err)
		}
		dir = wd
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return fmt.Errorf("error expanding dir: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return fmt.Errorf("error resolving dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("project directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project directory %s is not a directory", abs)
	}
	cfg.Root = abs
	return nil
}
