package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mistakeknot/tasklane/internal/tasklane/board"
	"github.com/mistakeknot/tasklane/internal/tasklane/cli/commands"
	"github.com/mistakeknot/tasklane/internal/tasklane/config"
	"github.com/mistakeknot/tasklane/internal/tasklane/seed"
	"github.com/mistakeknot/tasklane/internal/tasklane/tasks"
	"github.com/mistakeknot/tasklane/internal/tasklane/tui"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	seedPath   string
	logLevel   string
}

func Execute() error {
	return NewRoot().Execute()
}

var runTUI = func(app *commands.App) error {
	m := tui.NewModel(app.Board, tui.Options{})
	var opts []tea.ProgramOption
	if app.Config.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)
	_, err := p.Run()
	return err
}

func NewRoot() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "tasklane",
		Short:        "Terminal task board",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			closeLog, err := configureLogging(cfg, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer closeLog()
			app, err := buildApp(cfg, time.Now())
			if err != nil {
				return err
			}
			slog.Info("starting board", "tasks", len(app.Board.Tasks()), "detail_source", cfg.Detail.Source)
			return runTUI(app)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default .tasklane/config.toml)")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "YAML fixture to seed tasks and users from")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	load := func() (*commands.App, error) {
		cfg, err := loadConfig(opts)
		if err != nil {
			return nil, err
		}
		if _, err := configureLogging(cfg, root.ErrOrStderr(), false); err != nil {
			return nil, err
		}
		return buildApp(cfg, time.Now())
	}
	root.AddCommand(
		commands.ListCmd(load),
		commands.ShowCmd(load),
		commands.UsersCmd(load),
	)
	return root
}

// loadConfig layers config file, .env and environment, then flags, and
// validates the merged result once.
func loadConfig(opts *rootOptions) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadFromProject(".")
	}
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(".env"); err != nil {
		return cfg, err
	}
	if opts.seedPath != "" {
		cfg.Seed.Path = opts.seedPath
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, cfg.Validate()
}

// configureLogging installs the default slog logger. Subcommands log to
// stderr. While the TUI owns the terminal, logs go to log.file or, without
// one, only errors reach stderr.
func configureLogging(cfg config.Config, stderr io.Writer, tuiMode bool) (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Log.Level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	closeFn := func() {}
	w := stderr
	if tuiMode && cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	} else if tuiMode {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return closeFn, nil
}

func buildApp(cfg config.Config, now time.Time) (*commands.App, error) {
	var data *seed.Data
	if cfg.Seed.Path != "" {
		loaded, err := seed.LoadFile(cfg.Seed.Path, now)
		if err != nil {
			return nil, fmt.Errorf("load seed %s: %w", cfg.Seed.Path, err)
		}
		data = loaded
	} else {
		data = seed.Default(now)
	}

	opts := board.Options{RequireName: cfg.Form.RequireName}
	if cfg.Detail.Source == config.DetailSourceSeed {
		opts.Lookup = data
	}
	b := board.New(tasks.SeedStore(data.ListTasks()), data, opts)
	return &commands.App{Config: cfg, Provider: data, Board: b}, nil
}
