package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// MenuAction is an entry of the tag context menu
type MenuAction int

const (
	MenuRename MenuAction = iota
	MenuColor
	MenuType
	MenuFormat
	MenuLock
	MenuMoveUp
	MenuMoveDown
	MenuCopy
	MenuDelete
)

var menuActions = []MenuAction{
	MenuRename, MenuColor, MenuType, MenuFormat, MenuLock,
	MenuMoveUp, MenuMoveDown, MenuCopy, MenuDelete,
}

// TagMenu is the dropdown shown next to the edited tag's name
type TagMenu struct {
	cursor int
}

// NewTagMenu creates a menu
func NewTagMenu() *TagMenu {
	return &TagMenu{}
}

// Reset moves the cursor to the first entry
func (m *TagMenu) Reset() {
	m.cursor = 0
}

// HandleKey moves the cursor and returns the chosen action on enter
func (m *TagMenu) HandleKey(msg tea.KeyMsg) (MenuAction, bool) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuActions)-1 {
			m.cursor++
		}
	case "enter", " ":
		return menuActions[m.cursor], true
	}
	return 0, false
}

// ActionAt returns the entry drawn on row y of the popover
func (m *TagMenu) ActionAt(y int) (MenuAction, bool) {
	// top border
	idx := y - 1
	if idx < 0 || idx >= len(menuActions) {
		return 0, false
	}
	return menuActions[idx], true
}

func menuLabel(action MenuAction, tag models.Tag, locked bool) string {
	switch action {
	case MenuRename:
		return "Rename"
	case MenuColor:
		return "Color"
	case MenuType:
		return fmt.Sprintf("Type: %s", tag.Type)
	case MenuFormat:
		return fmt.Sprintf("Format: %s", tag.Format)
	case MenuLock:
		if locked {
			return "Unlock"
		}
		return "Lock"
	case MenuMoveUp:
		return "Move up"
	case MenuMoveDown:
		return "Move down"
	case MenuCopy:
		return "Copy name"
	case MenuDelete:
		return "Delete"
	}
	return ""
}

// View renders the menu for tag
func (m *TagMenu) View(tag models.Tag, locked bool) string {
	itemStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal))
	dangerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))

	width := 0
	labels := make([]string, len(menuActions))
	for i, action := range menuActions {
		labels[i] = menuLabel(action, tag, locked)
		if w := lipgloss.Width(labels[i]); w > width {
			width = w
		}
	}
	width += 3

	var rows []string
	for i, action := range menuActions {
		text := labels[i]
		style := itemStyle
		if action == MenuDelete {
			style = dangerStyle
		}
		if i == m.cursor {
			rows = append(rows, SelectedStyle.Width(width).Render("▸ "+text))
			continue
		}
		rows = append(rows, style.Width(width).Render("  "+text))
	}

	return PopoverStyle.Render(strings.Join(rows, "\n"))
}
