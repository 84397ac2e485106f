package tui

import (
	"github.com/pluqqy/pluqqy-tags/pkg/logging"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// HandleClick interprets a click on a tag row and dispatches it to the
// handler of the resolved intent
func (p *TagPanel) HandleClick(tag models.Tag, ev ClickEvent) ClickIntent {
	intent := ResolveClickIntent(ev, p.props.Callbacks.OnCtrlTagClick != nil)
	logging.Trace("tag.click", map[string]string{"tag": tag.Name, "intent": intent.String(), "part": ev.Part.String()})

	switch intent {
	case IntentLock:
		p.onLockClick(tag, ev)
	case IntentEdit:
		p.onEditClick(tag, ev)
	case IntentKeyboard:
		p.onKeyboardClick(tag, ev)
	default:
		p.onSelectClick(tag)
	}
	return intent
}

// onLockClick hands a ctrl-click to the owner
func (p *TagPanel) onLockClick(tag models.Tag, ev ClickEvent) {
	p.Record(ev.Part)
	p.props.Callbacks.OnCtrlTagClick(tag)
}

// onEditClick enters edit mode. A second alt-click on the same tag leaves edit
// mode, but only while its menu is open.
func (p *TagPanel) onEditClick(tag models.Tag, ev ClickEvent) {
	p.Record(ev.Part)
	if p.IsEditing(tag) && p.ShowDropDown {
		p.EditingTag = nil
		p.Close()
		p.blurRename()
		return
	}
	if !p.IsEditing(tag) {
		p.Close()
	}
	p.editTag(tag)
}

// onKeyboardClick toggles edit mode together with the popover of the
// activated sub-element. Opening the menu this way also selects the tag.
func (p *TagPanel) onKeyboardClick(tag models.Tag, ev ClickEvent) {
	p.Record(ev.Part)

	inEdit := p.IsEditing(tag)
	showPicker := p.ClickedColor
	showDrop := p.ClickedDropDown
	if inEdit {
		showPicker = !p.ShowColorPicker && p.ClickedColor
		showDrop = !p.ShowDropDown && p.ClickedDropDown
	}

	if inEdit && !showPicker && !showDrop {
		p.EditingTag = nil
		p.blurRename()
	} else {
		p.editTag(tag)
	}
	p.ShowColorPicker = showPicker
	p.ShowDropDown = showDrop

	if showPicker {
		p.Picker.Focus(tag.Color)
	}
	if showDrop {
		p.Menu.Reset()
		p.Select(tag)
	}
}

// onSelectClick toggles selection. Outside edit mode, a click with regions
// selected in the canvas also applies the tag through OnTagClick.
func (p *TagPanel) onSelectClick(tag models.Tag) {
	inEdit := p.IsEditing(tag)

	if p.IsSelected(tag) && !inEdit {
		p.SelectedTag = nil
	} else {
		p.Select(tag)
	}
	if inEdit {
		p.EditingTag = nil
		p.blurRename()
	}
	p.Close()
	p.moveCursorTo(tag)

	if len(p.props.SelectedRegions) > 0 && p.props.Callbacks.OnTagClick != nil && !inEdit {
		p.props.Callbacks.OnTagClick(tag)
	}
}

// ToggleEditSelected is the toolbar edit action: it opens the menu for the
// selected tag, or leaves edit mode when that tag is already being edited.
func (p *TagPanel) ToggleEditSelected() {
	if p.SelectedTag == nil {
		return
	}
	if p.IsEditing(*p.SelectedTag) {
		p.EditingTag = nil
		p.Close()
		p.blurRename()
		return
	}
	p.editTag(*p.SelectedTag)
	p.Record(PartMenu)
	p.ShowColorPicker = false
	p.ShowDropDown = true
	p.Menu.Reset()
}
