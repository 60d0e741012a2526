package tasklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/flowmind/internal/models"
)

type ToggleTaskMsg struct {
	ID string
}

type PostponeTaskMsg struct {
	ID string
}

type Item struct {
	Task models.Task
}

func (i Item) Title() string {
	if i.Task.Completed {
		return "✓ " + i.Task.Title
	}
	return i.Task.Title
}

func (i Item) Description() string {
	parts := []string{string(i.Task.Priority) + " priority", string(i.Task.Energy) + " energy"}
	if i.Task.DueDate != "" {
		parts = append(parts, "due "+i.Task.DueDate)
	}
	if i.Task.PostponedCount > 0 {
		parts = append(parts, fmt.Sprintf("postponed %dx", i.Task.PostponedCount))
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Toggle   key.Binding
	Postpone key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("x", "enter"),
			key.WithHelp("x", "toggle done"),
		),
		Postpone: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "postpone"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(tasks []models.Task, width, height int) Model {
	l := list.New(toItems(tasks), list.NewDefaultDelegate(), width, height)
	l.Title = "Tasks"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Postpone}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(tasks []models.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = Item{Task: t}
	}
	return items
}

func (m *Model) SetTasks(tasks []models.Task) {
	m.list.SetItems(toItems(tasks))
}

// Selected returns the highlighted task.
func (m Model) Selected() (models.Task, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Task, ok
}

// Filtering reports whether the user is typing a filter, in which case keys
// belong to the list.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		if t, selected := m.Selected(); selected {
			switch {
			case key.Matches(msg, m.keys.Toggle):
				return m, func() tea.Msg { return ToggleTaskMsg{ID: t.ID} }
			case key.Matches(msg, m.keys.Postpone):
				return m, func() tea.Msg { return PostponeTaskMsg{ID: t.ID} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No tasks yet.\n  Add one with 'flowmind task add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
