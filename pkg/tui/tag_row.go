package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

const (
	rowSwatchX     = 2
	rowSwatchWidth = 2
	rowNameX       = 5
	rowSuffixWidth = 11
	rowMenuWidth   = 3
	minNameWidth   = 3
)

// TagRowState is everything a row needs to know about its tag
type TagRowState struct {
	Cursor      bool
	Selected    bool
	Editing     bool
	Locked      bool
	Applied     bool
	Highlighted bool
	Hovered     bool
	LabelCount  int

	// Rename replaces the name while the inline rename field is shown
	Rename string
}

// TagRowRenderer draws a tag as "▸ ██ name   ✓ L  (3) ▾"
type TagRowRenderer struct{}

// NewTagRowRenderer creates a row renderer
func NewTagRowRenderer() *TagRowRenderer {
	return &TagRowRenderer{}
}

// NameWidth is the number of cells left for the name in a row of width
func (r *TagRowRenderer) NameWidth(width int) int {
	w := width - rowNameX - rowSuffixWidth
	if w < minNameWidth {
		w = minNameWidth
	}
	return w
}

// Layout returns the anchor of a row drawn at (x, y)
func (r *TagRowRenderer) Layout(tag models.Tag, x, y, width int) tagAnchor {
	nameW := r.NameWidth(width)
	rowW := rowNameX + nameW + rowSuffixWidth
	return tagAnchor{
		Tag:    tag,
		Row:    Rect{X: x, Y: y, W: rowW, H: 1},
		Swatch: Rect{X: x + rowSwatchX, Y: y, W: rowSwatchWidth, H: 1},
		Name:   Rect{X: x + rowNameX, Y: y, W: nameW, H: 1},
		Menu:   Rect{X: x + rowW - rowMenuWidth, Y: y, W: rowMenuWidth, H: 1},
	}
}

// Render draws one row
func (r *TagRowRenderer) Render(tag models.Tag, state TagRowState, width int) string {
	nameW := r.NameWidth(width)

	cursor := " "
	if state.Cursor {
		cursor = CursorStyle.Render("▸")
	}

	swatch := GetSwatchStyle(tag.Color).Render(strings.Repeat(" ", rowSwatchWidth))

	var name string
	if state.Rename != "" {
		name = fitCells(state.Rename, nameW)
	} else {
		label := tag.Name
		if state.Editing {
			label = "✎ " + label
		}
		name = nameStyle(state).Render(fitCells(label, nameW))
	}

	applied := " "
	if state.Applied {
		applied = AppliedMarkerStyle.Render("✓")
	}
	locked := " "
	if state.Locked {
		locked = LockedMarkerStyle.Render("L")
	}

	count := strings.Repeat(" ", 4)
	if state.LabelCount > 0 {
		c := fmt.Sprintf("(%d)", state.LabelCount)
		if len(c) > 4 {
			c = "(++)"
		}
		count = CountStyle.Render(fmt.Sprintf("%4s", c))
	}

	menu := " ▾ "
	if state.Editing {
		menu = CursorStyle.Render(menu)
	}

	return cursor + " " + swatch + " " + name + " " + applied + locked + " " + count + menu
}

func nameStyle(state TagRowState) lipgloss.Style {
	switch {
	case state.Selected:
		return SelectedStyle
	case state.Highlighted, state.Hovered:
		return HighlightStyle
	default:
		return NormalStyle
	}
}

// fitCells truncates s to width cells and pads it to exactly width
func fitCells(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
