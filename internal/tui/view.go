package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/metrics"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateHistory:
		content = docStyle.Render(m.history.View())
	case StateInsights:
		content = docStyle.Render(m.insights.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	idx := m.log.IndexOf(m.today)
	if idx < 0 {
		return docStyle.Render(strings.Join([]string{
			fmt.Sprintf("No entry for %s yet.", m.today.Format(constants.DateFormat)),
			mutedStyle.Render("Log one with 'pcod-tracker log -i'."),
			"",
			"Coach: " + metrics.DailyTip(0, ""),
		}, "\n"))
	}

	e := m.log[idx]
	rows := [][2]string{
		{"Date", e.Day()},
		{"Exercise", e.Exercise},
		{"Water", fmt.Sprintf("%d glasses", e.WaterGlasses)},
		{"Mood", string(e.Mood)},
		{"Cramps", string(e.Cramps)},
		{"Bloating", string(e.Bloating)},
		{"Energy", fmt.Sprintf("%d / %d", e.EnergyLevel, constants.MaxEnergyLevel)},
		{"Notes", e.Notes},
	}
	if !e.SavedAt.IsZero() {
		rows = append(rows, [2]string{"Saved at", e.SavedAt.Local().Format(constants.DisplayTimestampFormat)})
	}

	lines := make([]string, 0, len(rows)+2)
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r[0])+r[1])
	}
	lines = append(lines, "", "Coach: "+metrics.DailyTip(e.WaterGlasses, e.Exercise))
	return docStyle.Render(strings.Join(lines, "\n"))
}
