package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pagerModel scrolls a pre-rendered report.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-1, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-1, 1)
	}

	var cmd tea.Cmd

	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(fmt.Sprintf("↑/k up • ↓/j down • q quit • %3.f%%", p.viewport.ScrollPercent()*100))

	return p.viewport.View() + "\n" + footer
}
