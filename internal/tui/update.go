package tui

import (
	"os"
	"path/filepath"

	"dirinfo/internal/inspect"
	"dirinfo/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgEntriesReady carries a freshly read directory listing.
type MsgEntriesReady struct {
	Dir     string
	Entries []Item
}

// MsgError indicates an error occurred.
type MsgError error

// loadDirCmd reads dir and resolves metadata for every entry. Entries that
// fail to resolve stay in the list with their error attached.
func loadDirCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return MsgError(err)
		}

		items := make([]Item, 0, len(entries))
		for _, entry := range entries {
			name := entry.Name()
			if name == "." || name == ".." {
				continue
			}
			meta, err := inspect.Resolve(filepath.Join(dir, name))
			items = append(items, Item{Name: name, Meta: meta, Err: err})
		}
		return MsgEntriesReady{Dir: dir, Entries: items}
	}
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		m.refreshDetails()
		return m, nil

	case MsgEntriesReady:
		m.Loading = false
		m.Dir = msg.Dir
		m.Entries = msg.Entries
		m.SelectedIdx = 0
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.Entries)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
		case "enter", "right", "l":
			if item, ok := m.selected(); ok && item.Meta.Type == model.EntryTypeDirectory {
				m.Loading = true
				return m, loadDirCmd(filepath.Join(m.Dir, item.Name))
			}
		case "backspace", "left", "h":
			parent := filepath.Dir(m.Dir)
			if parent != m.Dir {
				m.Loading = true
				return m, loadDirCmd(parent)
			}
		}
	}

	return m, nil
}

func (m AppModel) selected() (Item, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Entries) {
		return Item{}, false
	}
	return m.Entries[m.SelectedIdx], true
}

func (m *AppModel) refreshDetails() {
	item, ok := m.selected()
	if !ok {
		m.DetailsViewport.SetContent("(no entry selected)")
		return
	}
	if item.Err != nil {
		m.DetailsViewport.SetContent("error: " + item.Err.Error())
		return
	}
	path := filepath.Join(m.Dir, item.Name)
	m.DetailsViewport.SetContent(inspect.DetailText(item.Name, path, item.Meta))
}
