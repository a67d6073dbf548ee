package history

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Radha57/Pcod-Tracker/internal/models"
)

type Item struct {
	Entry models.LogEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Entry.Day(), i.Entry.Mood)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("💧 %d | energy %d | cramps %s | bloating %s",
		i.Entry.WaterGlasses, i.Entry.EnergyLevel, i.Entry.Cramps, i.Entry.Bloating)
	if i.Entry.Exercise != "" {
		desc += " | " + i.Entry.Exercise
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Day() + " " + i.Entry.Exercise + " " + i.Entry.Notes }

type Model struct {
	list list.Model
}

func New(log models.Log, width, height int) Model {
	l := list.New(toItems(log), list.NewDefaultDelegate(), width, height)
	l.Title = "History"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	return Model{list: l}
}

// toItems lists entries newest first.
func toItems(log models.Log) []list.Item {
	items := make([]list.Item, len(log))
	for i, e := range log {
		items[len(log)-1-i] = Item{Entry: e}
	}
	return items
}

func (m *Model) SetEntries(log models.Log) {
	m.list.SetItems(toItems(log))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

// Selected returns the highlighted entry, if any.
func (m Model) Selected() (models.LogEntry, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Entry, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No entries yet.\n  Log today's entry to begin your streak!"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
