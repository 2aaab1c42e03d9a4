package tui

import (
	"dirinfo/internal/model"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Item is one directory entry shown in the browser.
type Item struct {
	Name string
	Meta model.Metadata
	Err  error
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Dir     string
	Entries []Item
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state, rooted at dir.
func InitialModel(dir string) AppModel {
	return AppModel{
		Dir:     dir,
		Loading: true,
	}
}

func (m AppModel) Init() tea.Cmd {
	return loadDirCmd(m.Dir)
}
