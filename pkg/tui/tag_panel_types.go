package tui

import (
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// Notifier receives user-facing validation warnings
type Notifier interface {
	Notify(message string)
}

// NotifyFunc adapts a function to the Notifier interface
type NotifyFunc func(message string)

// Notify calls f(message)
func (f NotifyFunc) Notify(message string) {
	f(message)
}

// TagPanelCallbacks report committed changes to the owner of the tag list.
// All of them are optional and fire synchronously after the panel's own
// state has been updated.
type TagPanelCallbacks struct {
	// OnChange receives the full tag list after an add, recolor, or reorder
	OnChange func(tags []models.Tag)

	// OnLockedTagsChange receives the new locked set
	OnLockedTagsChange func(names []string)

	// OnTagClick is the "apply tag to selected regions" signal
	OnTagClick func(tag models.Tag)

	// OnCtrlTagClick receives ctrl-clicks; its presence enables the lock intent
	OnCtrlTagClick func(tag models.Tag)

	// OnTagRenamed takes over every rename. Without it the panel renames locally.
	OnTagRenamed func(oldTag, newTag models.Tag)

	// OnTagDeleted is the only way a tag leaves the list
	OnTagDeleted func(name string)

	// OnTagChanged fires for in-place edits of a single tag
	OnTagChanged func(oldTag, newTag models.Tag)

	// OnLabelEnter / OnLabelLeave fire while a tag row is hovered, once per label
	OnLabelEnter func(label models.Label)
	OnLabelLeave func(label models.Label)
}

// Props is the externally owned input of the tag panel. The panel reads it on
// every SetProps call and never writes to it.
type Props struct {
	Tags              []models.Tag
	Labels            []models.Label
	SelectedRegions   []models.Region
	LockedTags        []string
	HighlightedLabels []models.Label
	Palette           []string

	// Initial visibility of the sub-panels
	ShowTagInputBox bool
	ShowSearchBox   bool
	PlaceHolder     string

	Callbacks TagPanelCallbacks
	Notifier  Notifier
}

// TagPart identifies the sub-element of a tag row
type TagPart int

const (
	PartName TagPart = iota
	PartSwatch
	PartMenu
)

func (p TagPart) String() string {
	switch p {
	case PartSwatch:
		return "swatch"
	case PartMenu:
		return "menu"
	default:
		return "name"
	}
}

// ClickEvent is the raw click context reported by a tag row
type ClickEvent struct {
	Ctrl         bool
	Alt          bool
	FromKeyboard bool
	Part         TagPart
}

// ClickIntent is what a click means once modifiers have been interpreted
type ClickIntent int

const (
	IntentSelect ClickIntent = iota
	IntentLock
	IntentEdit
	IntentKeyboard
)

func (i ClickIntent) String() string {
	switch i {
	case IntentLock:
		return "lock"
	case IntentEdit:
		return "edit"
	case IntentKeyboard:
		return "keyboard"
	default:
		return "select"
	}
}

// ResolveClickIntent maps a click to exactly one intent, in priority order
// lock, edit, keyboard, select. The lock intent needs a ctrl-click handler.
func ResolveClickIntent(ev ClickEvent, hasCtrlHandler bool) ClickIntent {
	switch {
	case ev.Ctrl && hasCtrlHandler:
		return IntentLock
	case ev.Alt:
		return IntentEdit
	case ev.FromKeyboard:
		return IntentKeyboard
	default:
		return IntentSelect
	}
}

// Rect is a cell rectangle in screen coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// tagAnchor is the rendered handle of one tag row
type tagAnchor struct {
	Tag    models.Tag
	Row    Rect
	Swatch Rect
	Name   Rect
	Menu   Rect
}

// PartAt returns the sub-element under column x of the row
func (a tagAnchor) PartAt(x int) TagPart {
	switch {
	case x >= a.Swatch.X && x < a.Swatch.X+a.Swatch.W:
		return PartSwatch
	case x >= a.Menu.X && x < a.Menu.X+a.Menu.W:
		return PartMenu
	default:
		return PartName
	}
}

// panelFocus is which part of the panel receives keys
type panelFocus int

const (
	focusList panelFocus = iota
	focusAdd
	focusSearch
	focusRename
)
