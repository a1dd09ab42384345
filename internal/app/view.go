package app

import (
	"strings"

	"github.com/wahlandcase/attuned.prtitle/internal/ui"
)

// View renders the picker
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(ui.SelectedStyle.Render("Pick a PR title"))
	b.WriteString("\n\n")

	for i, title := range m.titles {
		if i == m.index {
			b.WriteString(ui.CursorStyle.Render("> "))
			b.WriteString(ui.SelectedStyle.Render(title))
		} else {
			b.WriteString("  ")
			b.WriteString(title)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.copyFeedback != "" {
		b.WriteString(ui.SelectedStyle.Render(m.copyFeedback))
		b.WriteString("  ")
	}
	b.WriteString(ui.HelpStyle.Render("↑/↓ move · enter select · c copy · q quit"))
	b.WriteString("\n")

	return b.String()
}
