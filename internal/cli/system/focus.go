package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/tui"
)

// FocusCmd opens the focus timer with today's recommendations.
type FocusCmd struct {
	Mode  string `short:"m" help:"Interval to open on (focus|shortBreak|longBreak)." default:"focus" enum:"focus,shortBreak,longBreak"`
	Start bool   `short:"s" help:"Start the countdown immediately."`
}

// runProgram is swapped in tests so no terminal is needed.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (c *FocusCmd) Run(ctx *cli.Context) error {
	mode, ok := models.ParseTimerMode(c.Mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s", c.Mode)
	}

	ctx.PerformAutomaticBackup()

	model := tui.NewModel(tui.Options{
		Store:       ctx.Store,
		Recommender: ctx.Recommender,
		Notify:      ctx.Notify,
		Now:         ctx.Clock,
		Mode:        mode,
		AutoStart:   c.Start,
	})
	if err := runProgram(model); err != nil {
		return fmt.Errorf("focus session failed: %w", err)
	}
	return nil
}
