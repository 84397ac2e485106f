package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// CanvasPane lists the workspace regions with the labels applied to them.
// Regions are selected here; the tag panel applies tags to the selection.
type CanvasPane struct {
	regions  []models.Region
	labels   []models.Label
	tags     []models.Tag
	selected map[string]bool

	// labels entered from the tag panel
	entered map[models.Label]bool

	cursor  int
	pointer string // region under the mouse
	focused bool
	origin  Rect
}

// NewCanvasPane creates an empty canvas pane
func NewCanvasPane() *CanvasPane {
	return &CanvasPane{
		selected: make(map[string]bool),
		entered:  make(map[models.Label]bool),
	}
}

// SetData refreshes the pane from the registry
func (c *CanvasPane) SetData(regions, selected []models.Region, labels []models.Label, tags []models.Tag) {
	c.regions = regions
	c.labels = labels
	c.tags = tags
	c.selected = make(map[string]bool, len(selected))
	for _, r := range selected {
		c.selected[r.ID] = true
	}
	if c.cursor >= len(regions) {
		c.cursor = len(regions) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// SetSize places the pane on screen
func (c *CanvasPane) SetSize(x, y, width, height int) {
	c.origin = Rect{X: x, Y: y, W: width, H: height}
}

// SetFocused marks whether the pane owns the keyboard
func (c *CanvasPane) SetFocused(focused bool) {
	c.focused = focused
}

// EnterLabel highlights a label on the canvas
func (c *CanvasPane) EnterLabel(l models.Label) {
	c.entered[l] = true
}

// LeaveLabel removes a label highlight
func (c *CanvasPane) LeaveLabel(l models.Label) {
	delete(c.entered, l)
}

// HandleKey moves the cursor and returns the id of a region to toggle
func (c *CanvasPane) HandleKey(msg tea.KeyMsg) (toggle string, handled bool) {
	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
		return "", true
	case "down", "j":
		if c.cursor < len(c.regions)-1 {
			c.cursor++
		}
		return "", true
	case " ", "enter":
		if c.cursor < len(c.regions) {
			return c.regions[c.cursor].ID, true
		}
		return "", true
	}
	return "", false
}

// HandleMouse tracks the pointer and returns the id of a clicked region
func (c *CanvasPane) HandleMouse(msg tea.MouseMsg) (toggle string, handled bool) {
	if !c.origin.Contains(msg.X, msg.Y) {
		c.pointer = ""
		return "", false
	}

	idx := msg.Y - c.origin.Y - 1
	var region string
	if idx >= 0 && idx < len(c.regions) {
		region = c.regions[idx].ID
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		c.pointer = region
		return "", true
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || region == "" {
			return "", true
		}
		c.cursor = idx
		return region, true
	}
	return "", true
}

// HighlightedLabels returns the labels of the region under the mouse, or of
// the region under the cursor when the pane has focus
func (c *CanvasPane) HighlightedLabels() []models.Label {
	id := c.pointer
	if id == "" && c.focused && c.cursor < len(c.regions) {
		id = c.regions[c.cursor].ID
	}
	if id == "" {
		return nil
	}
	var result []models.Label
	for _, l := range c.labels {
		if l.Region == id {
			result = append(result, l)
		}
	}
	return result
}

// View renders one line per region
func (c *CanvasPane) View() string {
	var lines []string
	header := GetActiveHeaderStyle(c.focused).Render("CANVAS")
	header += CountStyle.Render(fmt.Sprintf(" %d selected", len(c.selected)))
	lines = append(lines, header)

	if len(c.regions) == 0 {
		lines = append(lines, EmptyInactiveStyle.Render("  (no regions)"))
	}

	colors := make(map[string]string, len(c.tags))
	for _, t := range c.tags {
		colors[models.TagKey(t.Name)] = t.Color
	}

	for i, region := range c.regions {
		cursor := " "
		if c.focused && i == c.cursor {
			cursor = CursorStyle.Render("▸")
		}
		check := "[ ]"
		if c.selected[region.ID] {
			check = AppliedMarkerStyle.Render("[x]")
		}

		var chips []string
		for _, name := range region.Tags {
			style := GetTagChipStyle(colors[models.TagKey(name)])
			if c.entered[models.Label{Label: name, Region: region.ID}] {
				style = style.Underline(true).Bold(true)
			}
			chips = append(chips, style.Render(name))
		}

		id := NormalStyle.Render(region.ID)
		if region.ID == c.pointer {
			id = HighlightStyle.Render(region.ID)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s  %s", cursor, check, id, strings.Join(chips, " ")))
	}

	return lipgloss.NewStyle().MaxWidth(c.origin.W).MaxHeight(c.origin.H).Render(strings.Join(lines, "\n"))
}
