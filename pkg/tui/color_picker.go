package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pickerColumns   = 5
	pickerCellWidth = 4
)

// ColorPicker is a palette grid shown in a popover
type ColorPicker struct {
	palette []string
	cursor  int
}

// NewColorPicker creates an empty color picker
func NewColorPicker() *ColorPicker {
	return &ColorPicker{}
}

// SetPalette sets the colors offered
func (c *ColorPicker) SetPalette(palette []string) {
	c.palette = palette
	if c.cursor >= len(palette) {
		c.cursor = 0
	}
}

// Focus moves the cursor onto color, or the first entry when it is not in
// the palette
func (c *ColorPicker) Focus(color string) {
	c.cursor = 0
	for i, candidate := range c.palette {
		if strings.EqualFold(candidate, color) {
			c.cursor = i
			return
		}
	}
}

// Current returns the color under the cursor
func (c *ColorPicker) Current() (string, bool) {
	if len(c.palette) == 0 {
		return "", false
	}
	return c.palette[c.cursor], true
}

// HandleKey moves the cursor. It returns the picked color on enter.
func (c *ColorPicker) HandleKey(msg tea.KeyMsg) (picked string, ok bool) {
	n := len(c.palette)
	if n == 0 {
		return "", false
	}

	switch msg.String() {
	case "left", "h":
		if c.cursor > 0 {
			c.cursor--
		}
	case "right", "l":
		if c.cursor < n-1 {
			c.cursor++
		}
	case "up", "k":
		if c.cursor-pickerColumns >= 0 {
			c.cursor -= pickerColumns
		}
	case "down", "j":
		if c.cursor+pickerColumns < n {
			c.cursor += pickerColumns
		}
	case "enter", " ":
		return c.palette[c.cursor], true
	}
	return "", false
}

// ColorAt returns the color drawn at (x, y) relative to the popover's top-left
func (c *ColorPicker) ColorAt(x, y int) (string, bool) {
	// one border cell on each side, one title row
	col := (x - 1) / pickerCellWidth
	row := y - 2
	if x < 1 || row < 0 || col >= pickerColumns {
		return "", false
	}
	idx := row*pickerColumns + col
	if idx < 0 || idx >= len(c.palette) {
		return "", false
	}
	return c.palette[idx], true
}

// View renders the popover
func (c *ColorPicker) View() string {
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive)).Bold(true)

	var rows []string
	rows = append(rows, HeaderStyle.Render("Color"))

	var line strings.Builder
	for i, color := range c.palette {
		left, right := " ", " "
		if i == c.cursor {
			left, right = cursorStyle.Render("›"), cursorStyle.Render("‹")
		}
		line.WriteString(left + GetSwatchStyle(color).Render("  ") + right)
		if (i+1)%pickerColumns == 0 || i == len(c.palette)-1 {
			rows = append(rows, line.String())
			line.Reset()
		}
	}

	width := pickerColumns * pickerCellWidth
	return PopoverStyle.Width(width).Render(strings.Join(rows, "\n"))
}
