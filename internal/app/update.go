package app

import tea "github.com/charmbracelet/bubbletea"

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.copyFeedback = ""

	switch msg.String() {
	case "up", "k":
		if m.index > 0 {
			m.index--
		}

	case "down", "j":
		if m.index < len(m.titles)-1 {
			m.index++
		}

	case "enter":
		m.choice = m.titles[m.index]
		return m, tea.Quit

	case "c":
		copyToClipboard(m.titles[m.index])
		m.copyFeedback = "Copied!"

	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}
