package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// View renders the panel inside its own box. It also rebuilds the anchor map
// used for hit testing and popover placement, so stale handles from an
// earlier list never survive a render.
func (p *TagPanel) View() string {
	p.anchors = make(map[string]tagAnchor)

	width := p.origin.W
	var lines []string

	header := GetActiveHeaderStyle(p.focused).Render("TAGS")
	header += CountStyle.Render(fmt.Sprintf(" %d", len(p.Tags)))
	if p.SearchQuery != "" {
		header += CountStyle.Render(fmt.Sprintf(" · %d shown", len(p.Visible())))
	}
	lines = append(lines, header)

	toolbar := p.Toolbar.View(map[ToolbarAction]bool{
		ToolbarAdd:    p.AddTags,
		ToolbarSearch: p.SearchTags,
		ToolbarEdit:   p.EditingTag != nil,
	}, p.SelectedTag != nil)
	p.toolbarRect = Rect{X: p.origin.X, Y: p.origin.Y + len(lines), W: lipgloss.Width(toolbar), H: 1}
	lines = append(lines, toolbar)

	if p.SearchTags {
		lines = append(lines, p.SearchInput.View())
	}

	footer := 0
	if p.AddTags {
		footer = 1
	}
	available := p.origin.H - len(lines) - footer
	if available < 1 {
		available = 1
	}

	visible := p.Visible()
	if len(visible) == 0 {
		empty := "(no tags)"
		if p.SearchQuery != "" {
			empty = "(no matches)"
		}
		lines = append(lines, EmptyInactiveStyle.Render("  "+empty))
	}

	start := scrollStart(p.Cursor, len(visible), available)
	applied := models.AppliedTagNames(p.props.SelectedRegions)
	highlighted := make(map[string]bool)
	for _, l := range p.props.HighlightedLabels {
		highlighted[models.TagKey(l.Label)] = true
	}

	for i := start; i < len(visible) && i < start+available; i++ {
		tag := visible[i]
		key := models.TagKey(tag.Name)
		anchor := p.Rows.Layout(tag, p.origin.X, p.origin.Y+len(lines), width)
		p.anchors[key] = anchor

		state := TagRowState{
			Cursor:      p.focused && i == p.Cursor && p.focus == focusList,
			Selected:    p.IsSelected(tag),
			Editing:     p.IsEditing(tag),
			Locked:      p.IsLocked(tag),
			Applied:     applied[key],
			Highlighted: highlighted[key],
			Hovered:     p.hovered == key,
			LabelCount:  len(models.LabelsForTag(p.props.Labels, tag.Name)),
		}
		if state.Editing && p.focus == focusRename {
			state.Rename = p.RenameInput.View()
		}
		lines = append(lines, p.Rows.Render(tag, state, width))
	}

	if p.AddTags {
		lines = append(lines, p.AddInput.View())
	}

	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(p.origin.H).Render(strings.Join(lines, "\n"))
}

// RenderPopovers composites the open popovers over screen, a full-screen
// view that already contains the panel. Positions are derived from the
// current anchors on every call.
func (p *TagPanel) RenderPopovers(screen string) string {
	p.pickerRect = Rect{}
	p.menuRect = Rect{}

	if !p.ShowColorPicker && !p.ShowDropDown {
		return screen
	}

	anchor := p.editingAnchor()

	if p.ShowColorPicker {
		view := p.Picker.View()
		w, h := lipgloss.Width(view), lipgloss.Height(view)
		x, y := Place(ColorPickerAlign(anchor.Row, p.screen.H), anchor.Row, w, h, p.screen)
		x, y = max(x, 0), max(y, 0)
		p.pickerRect = Rect{X: x, Y: y, W: w, H: h}
		screen = Overlay(screen, view, x, y)
	}

	if p.ShowDropDown && p.EditingTag != nil {
		view := p.Menu.View(*p.EditingTag, p.IsLocked(*p.EditingTag))
		w, h := lipgloss.Width(view), lipgloss.Height(view)
		x, y := Place(MenuAlign(), anchor.Name, w, h, p.screen)
		x, y = max(x, 0), max(y, 0)
		p.menuRect = Rect{X: x, Y: y, W: w, H: h}
		screen = Overlay(screen, view, x, y)
	}

	return screen
}

// editingAnchor resolves the anchor of the tag in edit mode, falling back to
// the panel's header row when that tag is not on screen
func (p *TagPanel) editingAnchor() tagAnchor {
	if p.EditingTag != nil {
		if a, ok := p.anchors[models.TagKey(p.EditingTag.Name)]; ok {
			return a
		}
	}
	fallback := Rect{X: p.origin.X, Y: p.origin.Y, W: p.origin.W, H: 1}
	return tagAnchor{Row: fallback, Name: fallback}
}

func scrollStart(cursor, total, available int) int {
	if total <= available || cursor < available {
		return 0
	}
	start := cursor - available + 1
	if start > total-available {
		start = total - available
	}
	return start
}
