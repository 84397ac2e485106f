package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ToolbarAction is a toolbar button
type ToolbarAction int

const (
	ToolbarNone ToolbarAction = iota
	ToolbarAdd
	ToolbarSearch
	ToolbarEdit
	ToolbarLock
	ToolbarDelete
	ToolbarMoveUp
	ToolbarMoveDown
)

type toolbarButton struct {
	action ToolbarAction
	icon   string
	key    ShortcutKey
}

var toolbarButtons = []toolbarButton{
	{ToolbarAdd, "+", Shortcuts.Add},
	{ToolbarSearch, "⌕", Shortcuts.Search},
	{ToolbarEdit, "✎", Shortcuts.Edit},
	{ToolbarLock, "⊘", Shortcuts.Lock},
	{ToolbarDelete, "✕", Shortcuts.Delete},
	{ToolbarMoveUp, "↑", Shortcuts.MoveUp},
	{ToolbarMoveDown, "↓", Shortcuts.MoveDown},
}

// TagToolbar renders the action buttons above the tag list
type TagToolbar struct {
	spans []toolbarSpan
}

type toolbarSpan struct {
	action   ToolbarAction
	from, to int
}

// NewTagToolbar creates a toolbar
func NewTagToolbar() *TagToolbar {
	return &TagToolbar{}
}

// ActionForKey maps a list-mode key to its toolbar action
func ActionForKey(key string) ToolbarAction {
	for _, b := range toolbarButtons {
		if b.key.Get() == key {
			return b.action
		}
	}
	return ToolbarNone
}

// View renders the buttons; active marks toggled panels (add, search) and
// hasTarget dims the buttons that need a selected tag when there is none
func (t *TagToolbar) View(active map[ToolbarAction]bool, hasTarget bool) string {
	t.spans = t.spans[:0]

	buttonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNormal)).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorActive)).
		Bold(true).
		Padding(0, 1)
	disabledStyle := buttonStyle.Foreground(lipgloss.Color(ColorVeryDim))

	var out string
	x := 0
	for _, b := range toolbarButtons {
		style := buttonStyle
		switch {
		case active[b.action]:
			style = activeStyle
		case needsTarget(b.action) && !hasTarget:
			style = disabledStyle
		}
		rendered := style.Render(b.icon)
		w := lipgloss.Width(rendered)
		t.spans = append(t.spans, toolbarSpan{action: b.action, from: x, to: x + w})
		out += rendered
		x += w
	}
	return out
}

// ActionAt returns the button under column x of the last rendered toolbar
func (t *TagToolbar) ActionAt(x int) ToolbarAction {
	for _, s := range t.spans {
		if x >= s.from && x < s.to {
			return s.action
		}
	}
	return ToolbarNone
}

func needsTarget(action ToolbarAction) bool {
	switch action {
	case ToolbarAdd, ToolbarSearch:
		return false
	}
	return true
}
