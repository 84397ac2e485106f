package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// TagPanelDataStore holds the local mirror of the owner's tag list and the
// search filter applied on top of it
type TagPanelDataStore struct {
	Tags        []models.Tag
	SearchQuery string

	// source is the last list received through props; the mirror is only
	// replaced when it changes
	source []models.Tag
}

// TagPanelSelection tracks the selected and the edited tag. Both are
// re-resolved by name whenever the mirror is replaced.
type TagPanelSelection struct {
	SelectedTag *models.Tag
	EditingTag  *models.Tag
	Cursor      int
}

// TagPanelPopovers records which floating panel is open and which row
// sub-element opened it
type TagPanelPopovers struct {
	ShowColorPicker bool
	ShowDropDown    bool
	ClickedColor    bool
	ClickedDropDown bool
}

// TagPanelInputs manages the add box, search box and inline rename field
type TagPanelInputs struct {
	AddTags    bool
	SearchTags bool

	AddInput    textinput.Model
	SearchInput textinput.Model
	RenameInput textinput.Model

	focus panelFocus
	// renaming is the name of the tag the open rename field belongs to
	renaming string
}

// Helper methods for TagPanelDataStore

// SyncFrom replaces the mirror when the owner's list differs from the last
// one seen. It reports whether a replacement happened.
func (d *TagPanelDataStore) SyncFrom(tags []models.Tag) bool {
	if d.source != nil && tagsEqual(d.source, tags) {
		return false
	}
	d.source = cloneTags(tags)
	d.Tags = cloneTags(tags)
	return true
}

// Visible returns the tags whose name contains the search query, ignoring case
func (d *TagPanelDataStore) Visible() []models.Tag {
	query := strings.ToLower(strings.TrimSpace(d.SearchQuery))
	if query == "" {
		return d.Tags
	}

	var visible []models.Tag
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag.Name), query) {
			visible = append(visible, tag)
		}
	}
	return visible
}

// Find returns the mirrored tag with the given name
func (d *TagPanelDataStore) Find(name string) (*models.Tag, bool) {
	idx := models.FindTag(d.Tags, name)
	if idx < 0 {
		return nil, false
	}
	tag := d.Tags[idx]
	return &tag, true
}

// Helper methods for TagPanelSelection

// IsSelected reports whether tag is the selected tag
func (s *TagPanelSelection) IsSelected(tag models.Tag) bool {
	return s.SelectedTag != nil && models.SameTag(s.SelectedTag.Name, tag.Name)
}

// IsEditing reports whether tag is in edit mode
func (s *TagPanelSelection) IsEditing(tag models.Tag) bool {
	return s.EditingTag != nil && models.SameTag(s.EditingTag.Name, tag.Name)
}

// Select makes tag the selected tag
func (s *TagPanelSelection) Select(tag models.Tag) {
	s.SelectedTag = &tag
}

// Edit puts tag in edit mode
func (s *TagPanelSelection) Edit(tag models.Tag) {
	s.EditingTag = &tag
}

// Reconcile looks the selected and edited tag up again in tags
func (s *TagPanelSelection) Reconcile(tags []models.Tag) {
	s.SelectedTag = lookupTag(tags, s.SelectedTag)
	s.EditingTag = lookupTag(tags, s.EditingTag)
	if s.Cursor >= len(tags) {
		s.Cursor = len(tags) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Helper methods for TagPanelPopovers

// Close hides both popovers
func (p *TagPanelPopovers) Close() {
	p.ShowColorPicker = false
	p.ShowDropDown = false
}

// Record stores which sub-element was clicked
func (p *TagPanelPopovers) Record(part TagPart) {
	p.ClickedColor = part == PartSwatch
	p.ClickedDropDown = part == PartMenu
}

// Helper methods for TagPanelInputs

func newTagPanelInputs(placeholder string) *TagPanelInputs {
	add := textinput.New()
	add.Placeholder = placeholder
	add.CharLimit = models.MaxTagNameLength
	add.Prompt = "+ "

	search := textinput.New()
	search.Placeholder = "Search tags..."
	search.CharLimit = 100
	search.Prompt = "⌕ "

	rename := textinput.New()
	rename.CharLimit = models.MaxTagNameLength
	rename.Prompt = ""

	return &TagPanelInputs{
		AddInput:    add,
		SearchInput: search,
		RenameInput: rename,
	}
}

// SetWidth sizes the text inputs for a panel of the given width
func (i *TagPanelInputs) SetWidth(width int) {
	w := width - 4
	if w < 1 {
		w = 1
	}
	i.AddInput.Width = w
	i.SearchInput.Width = w
	i.RenameInput.Width = w
}

func (i *TagPanelInputs) blurAll() {
	i.AddInput.Blur()
	i.SearchInput.Blur()
	i.RenameInput.Blur()
	i.focus = focusList
}

func tagsEqual(a, b []models.Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func cloneTags(tags []models.Tag) []models.Tag {
	result := make([]models.Tag, len(tags))
	copy(result, tags)
	return result
}

func lookupTag(tags []models.Tag, tag *models.Tag) *models.Tag {
	if tag == nil {
		return nil
	}
	idx := models.FindTag(tags, tag.Name)
	if idx < 0 {
		return nil
	}
	found := tags[idx]
	return &found
}
