package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight covers the tab row, warning line and help footer.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.history.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		m.insights.SetSize(msg.Width-h, msg.Height-v-chromeHeight)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHistory:
		m.history, cmd = m.history.Update(msg)
	case StateInsights:
		m.insights, cmd = m.insights.Update(msg)
	}
	return m, cmd
}
