package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dirinfo/internal/inspect"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	borderColor = lipgloss.Color("63")
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Reading directory... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	interiorHeight := height - 6
	if interiorHeight < 4 {
		interiorHeight = 4
	}

	// LEFT PANEL: directory entries
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render(m.Dir))
	leftView.WriteString("\n\n")

	// Windowing so the selection stays visible
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.Entries)
	if len(m.Entries) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - visibleItems/2
		}
		if startIdx+visibleItems > len(m.Entries) {
			startIdx = len(m.Entries) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		item := m.Entries[i]

		line := fmt.Sprintf("%c %s%s", byte(item.Meta.Type), item.Name, item.Meta.LinkSuffix())
		if item.Err != nil {
			line = fmt.Sprintf("? %s (unreadable)", item.Name)
		}
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render(line))
		} else if item.Err != nil {
			leftView.WriteString(dimStyle.Render(line))
		} else {
			leftView.WriteString(inspect.TypeStyle(item.Meta.Type).Render(line))
		}
		leftView.WriteString("\n")
	}
	if len(m.Entries) == 0 {
		leftView.WriteString(dimStyle.Render("(empty directory)"))
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: detail block for the selected entry
	var rightView strings.Builder
	rightView.WriteString(titleStyle.Render("Details"))
	rightView.WriteString("\n\n")
	rightView.WriteString(m.DetailsViewport.View())

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(rightView.String())

	footer := "\n\nHelp: up/down: Navigate | enter: Open Dir | backspace: Parent Dir | q: Quit"

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}
