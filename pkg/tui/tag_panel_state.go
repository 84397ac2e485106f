package tui

import (
	"math/rand"
	"time"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// TagPanel is the interactive tag list: add, rename, recolor, delete,
// reorder, lock, search, and highlighting against canvas labels. The owner
// keeps the canonical state and feeds it back through SetProps.
type TagPanel struct {
	*TagPanelDataStore
	*TagPanelSelection
	*TagPanelPopovers
	*TagPanelInputs

	props Props

	// Sub-components
	Picker  *ColorPicker
	Menu    *TagMenu
	Toolbar *TagToolbar
	Rows    *TagRowRenderer

	// Layout, in screen cells
	origin Rect
	screen Rect

	// Rendered handles, rebuilt on every View call
	anchors     map[string]tagAnchor
	pickerRect  Rect
	menuRect    Rect
	toolbarRect Rect

	focused bool
	hovered string
	rnd     *rand.Rand
}

// NewTagPanel creates a tag panel and applies the initial props
func NewTagPanel(props Props) *TagPanel {
	p := &TagPanel{
		TagPanelDataStore: &TagPanelDataStore{},
		TagPanelSelection: &TagPanelSelection{},
		TagPanelPopovers:  &TagPanelPopovers{},
		TagPanelInputs:    newTagPanelInputs(props.PlaceHolder),
		Picker:            NewColorPicker(),
		Menu:              NewTagMenu(),
		Toolbar:           NewTagToolbar(),
		Rows:              NewTagRowRenderer(),
		anchors:           make(map[string]tagAnchor),
		rnd:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	p.AddTags = props.ShowTagInputBox
	p.SearchTags = props.ShowSearchBox
	p.SetProps(props)
	return p
}

// SetProps synchronises the panel with the owner's state. The mirror is
// replaced only when the owner's tag list changed; the selected and edited
// tag are then looked up again by name. A new non-empty region selection
// clears the selected tag.
func (p *TagPanel) SetProps(props Props) {
	prevRegions := p.props.SelectedRegions
	p.props = props
	if len(props.Palette) == 0 {
		p.props.Palette = models.DefaultColorPalette
	}
	p.Picker.SetPalette(p.props.Palette)

	if p.SyncFrom(props.Tags) {
		p.Reconcile(p.Tags)
		if p.renaming != "" && (p.EditingTag == nil || !models.SameTag(p.EditingTag.Name, p.renaming)) {
			p.blurRename()
		}
	}

	if len(props.SelectedRegions) > 0 && !sameRegionSet(prevRegions, props.SelectedRegions) {
		p.SelectedTag = nil
	}
}

// Props returns the props last applied
func (p *TagPanel) Props() Props {
	return p.props
}

// SetRand replaces the random source used when the palette is exhausted
func (p *TagPanel) SetRand(rnd *rand.Rand) {
	p.rnd = rnd
}

// SetSize sets the panel's own box and the screen it is drawn on. Popovers may
// extend past the panel but not past the screen.
func (p *TagPanel) SetSize(x, y, width, height, screenWidth, screenHeight int) {
	p.origin = Rect{X: x, Y: y, W: width, H: height}
	p.screen = Rect{W: screenWidth, H: screenHeight}
	p.TagPanelInputs.SetWidth(width)
}

// SetFocused marks whether the panel owns the keyboard
func (p *TagPanel) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.blurAll()
	}
}

// Focused reports whether the panel owns the keyboard
func (p *TagPanel) Focused() bool {
	return p.focused
}

// VisibleTags returns the tags shown after the search filter
func (p *TagPanel) VisibleTags() []models.Tag {
	return p.Visible()
}

// IsLocked reports whether tag is in the owner's locked set
func (p *TagPanel) IsLocked(tag models.Tag) bool {
	for _, name := range p.props.LockedTags {
		if models.SameTag(name, tag.Name) {
			return true
		}
	}
	return false
}

// InputFocused reports whether a text field is capturing keys
func (p *TagPanel) InputFocused() bool {
	return p.focus != focusList
}

func (p *TagPanel) cursorTag() (models.Tag, bool) {
	visible := p.Visible()
	if len(visible) == 0 {
		return models.Tag{}, false
	}
	if p.Cursor >= len(visible) {
		p.Cursor = len(visible) - 1
	}
	return visible[p.Cursor], true
}

func (p *TagPanel) moveCursorTo(tag models.Tag) {
	for i, t := range p.Visible() {
		if models.SameTag(t.Name, tag.Name) {
			p.Cursor = i
			return
		}
	}
}

func sameRegionSet(a, b []models.Region) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]bool, len(a))
	for _, r := range a {
		ids[r.ID] = true
	}
	for _, r := range b {
		if !ids[r.ID] {
			return false
		}
	}
	return true
}
