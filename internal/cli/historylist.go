package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/core"
	"github.com/inovacc/clipr/internal/model"
	"github.com/inovacc/clipr/internal/store"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// categoryKeys maps the number row to category filters; 0 shows everything.
var categoryKeys = map[string]model.Category{
	"1": model.CategoryCode,
	"2": model.CategoryLaTeX,
	"3": model.CategoryQuote,
	"4": model.CategoryURL,
	"5": model.CategoryPlaintext,
}

type entryItem struct {
	entry model.ClipEntry
}

func (i entryItem) Title() string {
	return i.entry.Preview(72)
}

func (i entryItem) Description() string {
	return fmt.Sprintf("%s | %s | %d chars",
		i.entry.Category,
		i.entry.Timestamp.Format("2006-01-02 15:04"),
		i.entry.Chars)
}

func (i entryItem) FilterValue() string {
	return i.entry.Text
}

// HistoryModel is the interactive history browser. Typing "/" searches the
// entry text, the number keys filter by category, enter copies the selected
// entry back to the clipboard, and "x" deletes it.
type HistoryModel struct {
	list     list.Model
	db       store.Store
	clip     clipboard.Clipboard
	category model.Category
	err      error
	quitting bool
}

func (m HistoryModel) Init() tea.Cmd {
	return nil
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		// Let the built-in search consume keystrokes while active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch key := msg.String(); key {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(entryItem); ok {
				if err := m.clip.WriteText(i.entry.Text); err != nil {
					return m, m.list.NewStatusMessage("copy failed: " + err.Error())
				}

				return m, m.list.NewStatusMessage("copied to clipboard")
			}

			return m, nil

		case "x":
			if i, ok := m.list.SelectedItem().(entryItem); ok {
				if err := core.Remove(m.db, i.entry.ID); err != nil {
					return m, m.list.NewStatusMessage("delete failed: " + err.Error())
				}

				// Rebuild from the store; the visible index does not map to
				// the underlying items while a filter is applied.
				entries, err := loadEntries(m.db, m.category)
				if err != nil {
					m.err = err

					return m, tea.Quit
				}

				return m, tea.Batch(
					m.list.SetItems(buildItems(entries)),
					m.list.NewStatusMessage("entry deleted"),
				)
			}

			return m, nil

		case "0":
			return m.withCategory("")

		default:
			if category, ok := categoryKeys[key]; ok {
				return m.withCategory(category)
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	return docStyle.Render(m.list.View())
}

// withCategory reloads the list under a new category filter.
func (m HistoryModel) withCategory(category model.Category) (tea.Model, tea.Cmd) {
	entries, err := loadEntries(m.db, category)
	if err != nil {
		m.err = err

		return m, tea.Quit
	}

	m.category = category
	m.list.Title = historyTitle(category)

	return m, m.list.SetItems(buildItems(entries))
}

// NewHistory creates the history browser. An empty label shows every entry.
func NewHistory(db store.Store, clip clipboard.Clipboard, label string) (HistoryModel, error) {
	var category model.Category

	if label != "" {
		parsed, err := model.ParseCategory(label)
		if err != nil {
			return HistoryModel{err: err}, err
		}

		category = parsed
	}

	entries, err := loadEntries(db, category)
	if err != nil {
		return HistoryModel{err: err}, err
	}

	l := list.New(buildItems(entries), list.NewDefaultDelegate(), 0, 0)
	l.Title = historyTitle(category)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return HistoryModel{
		list:     l,
		db:       db,
		clip:     clip,
		category: category,
	}, nil
}

func loadEntries(db store.Store, category model.Category) ([]model.ClipEntry, error) {
	if category == "" {
		return db.Load()
	}

	return db.FilterByCategory(category)
}

// buildItems lists entries newest first.
func buildItems(entries []model.ClipEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[len(entries)-1-i] = entryItem{entry: entry}
	}

	return items
}

func historyTitle(category model.Category) string {
	if category == "" {
		return "Clipboard History"
	}

	return fmt.Sprintf("Clipboard History (%s)", category)
}
