// Copyright (c) 2026 the structdiff authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// runDiffPager shows the rendered diff in a scrollable full-screen viewer.
func runDiffPager(text string) error {
	p := tea.NewProgram(initialPagerModel(text), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type pagerModel struct {
	vp    viewport.Model
	lines int
}

func initialPagerModel(text string) pagerModel {
	// Size from the terminal directly so the first frame is right; a
	// WindowSizeMsg follows and corrects it if needed.
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		w, h = 80, 24
	}

	vp := viewport.New(w, h-1)
	vp.SetContent(text)

	return pagerModel{
		vp:    vp,
		lines: strings.Count(text, "\n") + 1,
	}
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m pagerModel) View() string {
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4"))
	status := statusStyle.Render("↑/↓ scroll, Q/ESCAPE: quit")
	return m.vp.View() + "\n" + status
}
