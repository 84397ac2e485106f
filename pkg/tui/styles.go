package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive    = "170" // Purple/magenta for active elements
	ColorInactive  = "240" // Gray for inactive elements
	ColorSelected  = "236" // Dark gray for background selection
	ColorHighlight = "238" // Hover / canvas highlight background
	ColorNormal    = "245" // Light gray for normal text
	ColorDim       = "241" // Dimmer gray
	ColorVeryDim   = "242" // Even dimmer gray
	ColorWarning   = "214" // Orange/yellow for warnings
	ColorDanger    = "196" // Red for dangerous actions
	ColorSuccess   = "28"  // Green for success
	ColorWhite     = "255" // White
	ColorDark      = "235" // Dark for contrast
	ColorBorder    = "243" // Border gray
	ColorPrimary   = "33"  // Blue for primary actions
)

// Common styles
var (
	// Border styles
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	// Selection styles
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorHighlight))

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	EmptyInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim))

	// Marker styles
	AppliedMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)).
				Bold(true)

	LockedMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning)).
				Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	// Cursor style
	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	// Popover frame
	PopoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorDark))
)

// GetActiveHeaderStyle returns the header style for a pane
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// GetSwatchStyle renders a block of tag color
func GetSwatchStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color))
}

// GetTagChipStyle is a tag name on its own color
func GetTagChipStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1)
}
