package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Radha57/Pcod-Tracker/internal/tui"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Now), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
