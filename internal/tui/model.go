package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Radha57/Pcod-Tracker/internal/models"
	"github.com/Radha57/Pcod-Tracker/internal/storage"
	"github.com/Radha57/Pcod-Tracker/internal/tui/components/history"
	"github.com/Radha57/Pcod-Tracker/internal/tui/components/insights"
	"github.com/Radha57/Pcod-Tracker/internal/validation"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHistory
	StateInsights
)

var tabTitles = []string{"Today's Entry", "History", "Insights"}

// Model is a read-only dashboard over the Log. Entries are written through
// the log command, never from here.
type Model struct {
	store    storage.Provider
	now      func() time.Time
	state    SessionState
	keys     KeyMap
	help     help.Model
	history  history.Model
	insights insights.Model

	log   models.Log
	today time.Time

	quitting          bool
	width             int
	height            int
	validationWarning string
}

func NewModel(store storage.Provider, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	m := Model{
		store:    store,
		now:      now,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		history:  history.New(nil, 0, 0),
		insights: insights.New(0, 0),
	}
	m.reload()
	return m
}

// reload re-reads the Log and refreshes every tab.
func (m *Model) reload() {
	m.today = models.NormalizeDate(m.now())
	m.log = m.store.LoadAll()
	m.history.SetEntries(m.log)
	m.insights.SetData(m.log, m.today)
	m.updateValidationStatus()
}

// updateValidationStatus flags conflicts such as future-dated entries that
// were written outside the app.
func (m *Model) updateValidationStatus() {
	result := validation.New().ValidateLog(m.log, m.today)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s), run 'pcod-tracker validate'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	if m.state == StateHistory {
		keys = append(keys, m.keys.Up, m.keys.Down)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}
