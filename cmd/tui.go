package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/pslog"

	"github.com/VoxDroid/spliminal/cmd/tui/ui"
	"github.com/VoxDroid/spliminal/internal/config"
	"github.com/VoxDroid/spliminal/internal/executor"
	"github.com/VoxDroid/spliminal/internal/logging"
	"github.com/VoxDroid/spliminal/internal/security"
	"github.com/VoxDroid/spliminal/internal/tui/adapters"
	modelpkg "github.com/VoxDroid/spliminal/internal/tui/model"
	"github.com/VoxDroid/spliminal/internal/version"
)

// shutdownGrace bounds how long quitting waits for killed commands to be
// reaped.
const shutdownGrace = 2 * time.Second

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("spliminal needs an interactive terminal on stdin and stdout")

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if _, err := config.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logger, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	logger = logger.With("session", os.Getpid())
	ctx := pslog.ContextWithLogger(cmd.Context(), logger)

	shell := adapters.NewExecutorAdapter(executor.New(cfg.Shell))
	if cfg.Exec.Guard {
		shell = adapters.Guard(shell, security.CheckAllowed)
	}
	runner := modelpkg.NewCommandExecutor(shell, time.Duration(cfg.Exec.Timeout))
	m := ui.NewModel(ctx, modelpkg.NewSession(), runner, ui.Options{
		Title:        cfg.UI.Title,
		Accent:       cfg.UI.Accent,
		HighContrast: cfg.UI.HighContrast,
		Blocking:     cfg.Exec.Mode == config.ModeBlocking,
	})

	logger.Info("session started", "version", version.Version, "shell", cfg.Shell, "mode", cfg.Exec.Mode, "guard", cfg.Exec.Guard)
	_, err = ui.NewProgram(ctx, m).Run()
	if !m.Shutdown(shutdownGrace) {
		logger.Error("commands still running at exit", "grace", shutdownGrace.String())
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.With("err", err).Error("session failed")
		return fmt.Errorf("run tui: %w", err)
	}
	logger.Info("session ended")
	return nil
}
