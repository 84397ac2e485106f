package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const defaultToastDuration = 3 * time.Second

// toastExpiredMsg clears the toast it was scheduled for. Newer toasts carry a
// higher id, so a stale tick never hides them.
type toastExpiredMsg struct {
	id int
}

// Toast is a transient message shown over the bottom right of the screen
type Toast struct {
	message  string
	id       int
	duration time.Duration
}

// NewToast creates a toast that hides itself after duration
func NewToast(duration time.Duration) *Toast {
	if duration <= 0 {
		duration = defaultToastDuration
	}
	return &Toast{duration: duration}
}

// Show replaces the current message and returns the command that hides it
func (t *Toast) Show(message string) tea.Cmd {
	t.id++
	t.message = message
	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Update hides the toast when its timer fires
func (t *Toast) Update(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.message = ""
	}
}

// Message returns the visible message, empty when hidden
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast box wrapped to maxWidth
func (t *Toast) View(maxWidth int) string {
	if t.message == "" {
		return ""
	}
	width := maxWidth - 4
	if width < 10 {
		width = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1).
		Render(wordwrap.String(t.message, width))
}
