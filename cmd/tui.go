package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/desertthunder/nova/internal/ui"
	"github.com/urfave/cli/v3"
)

const defaultTUILog = "./tmp/nova-tui.log"

// TUI launches the interactive terminal catalog.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	cat, err := r.loadCatalog()
	if err != nil {
		return err
	}

	logPath := r.config.Log.File
	if logPath == "" {
		logPath = defaultTUILog
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.config.Log.Level)
	r.SetLogger(fileLogger)

	ui.LoadMascot()

	model := ui.NewModel(ctx, cat, ui.Options{
		Asker:           r.asker,
		Player:          r.player,
		Logger:          shared.WithLogger(fileLogger, "component", "ui"),
		Route:           cmd.String("route"),
		Greeting:        r.config.Chat.Greeting,
		ScrollThreshold: r.config.Chat.ScrollThreshold,
		Autoplay:        r.config.Player.Autoplay,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
