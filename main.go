package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/screen"
	"github.com/olivier-w/folio/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath  string
	debugMode   bool
	logFilePath string
	logFile     io.Closer
}

type runFlags struct {
	screen    string
	noIntro   bool
	sound     bool
	tickSound string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	var run runFlags

	cmd := &cobra.Command{
		Use:   "folio [dir]",
		Short: "folio - an infinite portfolio in your terminal",
		Long: `folio shows a directory of images as an infinite draggable grid, a
stretching scroll list and a snapping picker.

The directory may hold a projects.txt manifest with one "Title | Subtitle"
per line. Without a directory a built-in project list is shown.`,
		Example: `  folio
  folio ~/work/portfolio
  folio --screen picker --sound ~/work/portfolio`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logs must never reach the terminal the TUI draws on.
			if err := flags.setupLogging(); err != nil {
				slog.SetDefault(slog.New(slog.DiscardHandler))
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: debug log disabled: %v\n", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.logFile != nil {
				if err := flags.logFile.Close(); err != nil {
					slog.Error("Failed to close log file", "error", err)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerminal(&flags, run, dirArg(args))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML feel configuration (watched for changes)")
	cmd.PersistentFlags().BoolVarP(&flags.debugMode, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFilePath, "log-file", "", "Path to debug log file (default: $TMPDIR/folio.debug.log; only used with --debug)")

	cmd.Flags().StringVarP(&run.screen, "screen", "s", "grid", "First screen: grid, scroll or picker")
	cmd.Flags().BoolVar(&run.noIntro, "no-intro", false, "Skip the intro animation")
	cmd.Flags().BoolVar(&run.sound, "sound", false, "Tick when the picker passes a row")
	cmd.Flags().StringVar(&run.tickSound, "tick-sound", "", "WAV file to use as the picker tick (implies --sound)")

	cmd.AddCommand(newWindowCmd(&flags))
	cmd.AddCommand(newSnapshotCmd(&flags))
	cmd.AddCommand(newConfigCmd(&flags))

	return cmd
}

// setupLogging discards logs unless --debug is set, in which case they go
// to a text log file.
func (f *rootFlags) setupLogging() error {
	if !f.debugMode {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	path := cmp.Or(strings.TrimSpace(f.logFilePath), filepath.Join(os.TempDir(), "folio.debug.log"))
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	f.logFile = logFile

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Debug("Logging started", "path", path)
	return nil
}

func (f *rootFlags) loadConfig() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("Config loaded", "path", f.configPath)
	return cfg, nil
}

// watchConfig reports valid edits of the config file to onChange. It
// returns a no-op closer when no config file is in use.
func (f *rootFlags) watchConfig(onChange func(config.Config)) func() {
	if f.configPath == "" {
		return func() {}
	}
	w := config.NewWatcher(onChange)
	if err := w.Watch(f.configPath); err != nil {
		slog.Warn("Config hot reload disabled", "path", f.configPath, "error", err)
		return func() {}
	}
	return w.Close
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runTerminal(flags *rootFlags, run runFlags, dir string) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	kind, err := screen.Parse(run.screen)
	if err != nil {
		return err
	}

	m := newStartupModel(
		ui.Options{Config: cfg, Screen: kind},
		openOptions{Dir: dir, Sound: run.sound, TickSound: run.tickSound},
		!run.noIntro,
	)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	stop := flags.watchConfig(func(c config.Config) {
		p.Send(ui.ConfigReloadedMsg{Config: c})
	})
	defer stop()

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
