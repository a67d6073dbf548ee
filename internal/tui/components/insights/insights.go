package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Radha57/Pcod-Tracker/internal/constants"
	"github.com/Radha57/Pcod-Tracker/internal/metrics"
	"github.com/Radha57/Pcod-Tracker/internal/models"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	summary  *metrics.Summary
	water    []metrics.DayValue
	counts   []metrics.DayCount
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.summary == nil {
		return "No insights loaded."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetData(log models.Log, today time.Time) {
	s := metrics.Summarize(log, today)
	m.summary = &s
	m.water = metrics.WaterSeries(metrics.WindowLastNDaysAsOf(log, constants.WaterWindowDays, today))
	m.counts = metrics.DailyCounts(metrics.WindowLastNDaysAsOf(log, constants.CountWindowDays, today))
	m.Render()
}

// Content returns the rendered text shown in the viewport.
func (m Model) Content() string {
	if m.summary == nil {
		return ""
	}
	s := m.summary

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Streaks • Badges • Coach") + "\n")
	b.WriteString(row("Current streak", fmt.Sprintf("%d day(s)", s.Streak)))
	b.WriteString(row("Total logged days", fmt.Sprint(s.TotalDays)))
	if len(s.Badges) == 0 {
		b.WriteString(row("Badges", "none yet"))
	}
	for _, badge := range s.Badges {
		b.WriteString(row("Badge", badge.Label()))
	}

	b.WriteString("\n" + sectionStyle.Render(fmt.Sprintf("Water intake (last %d days)", constants.WaterWindowDays)) + "\n")
	if len(m.water) == 0 {
		b.WriteString("  no entries\n")
	}
	for _, dv := range m.water {
		bar := barStyle.Render(strings.Repeat("█", dv.Value))
		b.WriteString(fmt.Sprintf("  %s %s %d\n", dv.Date.Format("Mon 02"), bar, dv.Value))
	}

	b.WriteString("\n" + sectionStyle.Render(fmt.Sprintf("Logs per day (last %d days)", constants.CountWindowDays)) + "\n")
	b.WriteString(row("Days logged", fmt.Sprint(len(m.counts))))
	if s.WeekEntries > 0 {
		b.WriteString(row("Avg water (7d)", fmt.Sprintf("%.1f glasses", s.AvgWater)))
		b.WriteString(row("Avg energy (7d)", fmt.Sprintf("%.1f / %d", s.AvgEnergy, constants.MaxEnergyLevel)))
	}
	return b.String()
}

func (m *Model) Render() {
	if m.summary == nil {
		m.viewport.SetContent("No insights loaded.")
		return
	}
	m.viewport.SetContent(m.Content())
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}
