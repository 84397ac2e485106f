package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string   // Dialog title (optional)
	Message     string   // Main confirmation message
	Warning     string   // Optional warning text (shown in orange)
	Details     []string // Optional detail lines
	Destructive bool     // If true, Yes is red, No is green
	Width       int      // Dialog width, 0 for the default
}

// ConfirmationModel asks a yes/no question before a destructive change
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y", "enter":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the dialog, or nothing when inactive
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	width := m.config.Width
	if width == 0 {
		width = 50
	}
	contentWidth := width - 4

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1).
		Width(width)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWarning))
	warningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal))
	center := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(titleStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(lipgloss.NewStyle().Width(contentWidth).Render(m.config.Message))
	b.WriteString("\n")

	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(m.config.Warning))
		b.WriteString("\n")
	}

	for _, detail := range m.config.Details {
		b.WriteString(detailStyle.Render("  • " + detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive)))

	return borderStyle.Render(b.String())
}

// formatConfirmOptions renders the [y] / [n] hint
func formatConfirmOptions(destructive bool) string {
	yesColor, noColor := ColorSuccess, ColorDanger
	if destructive {
		yesColor, noColor = ColorDanger, ColorSuccess
	}
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(yesColor)).Bold(true).Render("[y]es")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(noColor)).Bold(true).Render("[n]o")
	return fmt.Sprintf("%s / %s", yes, no)
}
