// Package app implements the interactive title picker.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// Model is the picker state
type Model struct {
	titles []string
	index  int

	choice  string
	aborted bool

	copyFeedback string // Brief "Copied!" message, clears on next action

	width  int
	height int
}

// New creates a picker over the candidate titles
func New(titles []string) Model {
	return Model{titles: titles}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Choice returns the selected title and whether one was selected
func (m Model) Choice() (string, bool) {
	if m.aborted || m.choice == "" {
		return "", false
	}
	return m.choice, true
}

// copyToClipboard copies text via the terminal's OSC52 sequence
func copyToClipboard(text string) {
	termenv.DefaultOutput().Copy(text)
}
