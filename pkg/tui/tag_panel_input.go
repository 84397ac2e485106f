package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// HandleInput processes keyboard input. Keys the panel does not use are
// reported as unhandled so the owner can bind them.
func (p *TagPanel) HandleInput(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	switch p.focus {
	case focusAdd:
		return p.handleAddInput(msg)
	case focusSearch:
		return p.handleSearchInput(msg)
	case focusRename:
		return p.handleRenameInput(msg)
	}

	if p.ShowColorPicker {
		if msg.String() == "esc" {
			p.ShowColorPicker = false
			return true, nil
		}
		if color, ok := p.Picker.HandleKey(msg); ok {
			p.ChangeColor(color)
		}
		return true, nil
	}

	if p.ShowDropDown {
		if msg.String() == "esc" {
			p.ShowDropDown = false
			return true, nil
		}
		if action, ok := p.Menu.HandleKey(msg); ok {
			return true, p.RunMenuAction(action)
		}
		return true, nil
	}

	return p.handleListKey(msg)
}

func (p *TagPanel) handleListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	visible := p.Visible()

	switch msg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
		return true, nil

	case "down", "j":
		if p.Cursor < len(visible)-1 {
			p.Cursor++
		}
		return true, nil

	case "home", "g":
		p.Cursor = 0
		return true, nil

	case "end", "G":
		if len(visible) > 0 {
			p.Cursor = len(visible) - 1
		}
		return true, nil

	case "shift+up", "K":
		if tag, ok := p.cursorTag(); ok {
			p.MoveTag(&tag, -1)
		}
		return true, nil

	case "shift+down", "J":
		if tag, ok := p.cursorTag(); ok {
			p.MoveTag(&tag, 1)
		}
		return true, nil

	case "enter":
		if tag, ok := p.cursorTag(); ok {
			p.HandleClick(tag, ClickEvent{FromKeyboard: true, Part: PartMenu})
		}
		return true, nil

	case "c":
		if tag, ok := p.cursorTag(); ok {
			p.HandleClick(tag, ClickEvent{FromKeyboard: true, Part: PartSwatch})
		}
		return true, nil

	case " ":
		if tag, ok := p.cursorTag(); ok {
			p.HandleClick(tag, ClickEvent{Part: PartName})
		}
		return true, nil

	case "r":
		if p.EditingTag != nil {
			return true, p.startRename()
		}
		return false, nil

	case "esc":
		if p.EditingTag != nil || p.SelectedTag != nil {
			p.EditingTag = nil
			p.SelectedTag = nil
			p.Close()
			return true, nil
		}
		if p.SearchQuery != "" {
			p.closeSearch()
			return true, nil
		}
		return false, nil
	}

	if action := ActionForKey(msg.String()); action != ToolbarNone {
		return true, p.RunToolbarAction(action)
	}

	return false, nil
}

func (p *TagPanel) handleAddInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.AddInput.SetValue("")
		p.AddInput.Blur()
		p.AddTags = false
		p.focus = focusList
		return true, nil

	case "enter":
		p.submitAddInput()
		return true, nil

	case "tab":
		p.BlurAddInput()
		return true, nil
	}

	var cmd tea.Cmd
	p.AddInput, cmd = p.AddInput.Update(msg)
	return true, cmd
}

func (p *TagPanel) handleSearchInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.closeSearch()
		return true, nil

	case "enter", "tab":
		p.SearchInput.Blur()
		p.focus = focusList
		return true, nil
	}

	var cmd tea.Cmd
	p.SearchInput, cmd = p.SearchInput.Update(msg)
	p.SetSearchQuery(p.SearchInput.Value())
	return true, cmd
}

func (p *TagPanel) handleRenameInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.blurRename()
		return true, nil

	case "enter":
		target, ok := p.Find(p.renaming)
		if !ok {
			p.blurRename()
			return true, nil
		}
		renamed := *target
		renamed.Name = p.RenameInput.Value()
		if renamed.Name == target.Name {
			p.blurRename()
			return true, nil
		}
		if p.UpdateTag(*target, renamed) {
			p.blurRename()
		}
		return true, nil
	}

	var cmd tea.Cmd
	p.RenameInput, cmd = p.RenameInput.Update(msg)
	return true, cmd
}

// SetSearchQuery filters the visible tags. The tag list itself and the
// selection are left alone.
func (p *TagPanel) SetSearchQuery(query string) {
	p.SearchQuery = query
	if p.Cursor >= len(p.Visible()) {
		p.Cursor = 0
	}
}

// BlurAddInput takes focus away from the add box. Like any blur, a non-empty
// value becomes a new tag.
func (p *TagPanel) BlurAddInput() {
	if p.focus != focusAdd && !p.AddInput.Focused() {
		return
	}
	p.AddInput.Blur()
	p.focus = focusList
	if strings.TrimSpace(p.AddInput.Value()) != "" {
		p.submitAddInput()
	}
}

func (p *TagPanel) submitAddInput() {
	value := strings.TrimSpace(p.AddInput.Value())
	if value == "" {
		return
	}
	p.AddTag(value)
	p.AddInput.SetValue("")
}

func (p *TagPanel) closeSearch() {
	p.SearchInput.SetValue("")
	p.SearchInput.Blur()
	p.SearchTags = false
	p.SetSearchQuery("")
	if p.focus == focusSearch {
		p.focus = focusList
	}
}

func (p *TagPanel) startRename() tea.Cmd {
	if p.EditingTag == nil {
		return nil
	}
	p.Close()
	p.RenameInput.SetValue(p.EditingTag.Name)
	p.RenameInput.CursorEnd()
	p.renaming = p.EditingTag.Name
	p.focus = focusRename
	return p.RenameInput.Focus()
}

func (p *TagPanel) blurRename() {
	p.RenameInput.Blur()
	p.renaming = ""
	if p.focus == focusRename {
		p.focus = focusList
	}
}

// editTag puts tag in edit mode. An open rename field for another tag closes.
func (p *TagPanel) editTag(tag models.Tag) {
	if p.renaming != "" && !models.SameTag(p.renaming, tag.Name) {
		p.blurRename()
	}
	p.Edit(tag)
}

func focusInput(input *textinput.Model) tea.Cmd {
	return input.Focus()
}

// RunToolbarAction performs a toolbar button. Buttons other than add and
// search act on the selected tag.
func (p *TagPanel) RunToolbarAction(action ToolbarAction) tea.Cmd {
	switch action {
	case ToolbarAdd:
		p.AddTags = !p.AddTags
		if p.AddTags {
			p.blurAll()
			p.focus = focusAdd
			return focusInput(&p.AddInput)
		}
		p.AddInput.SetValue("")
		p.AddInput.Blur()
		if p.focus == focusAdd {
			p.focus = focusList
		}

	case ToolbarSearch:
		if p.SearchTags {
			p.closeSearch()
			return nil
		}
		p.SearchTags = true
		p.blurAll()
		p.focus = focusSearch
		return focusInput(&p.SearchInput)

	case ToolbarEdit:
		p.ToggleEditSelected()

	case ToolbarLock:
		p.LockTag(p.SelectedTag)

	case ToolbarDelete:
		p.DeleteTag(p.SelectedTag)

	case ToolbarMoveUp:
		p.MoveTag(p.SelectedTag, -1)

	case ToolbarMoveDown:
		p.MoveTag(p.SelectedTag, 1)
	}
	return nil
}

// RunMenuAction performs a context menu entry on the tag in edit mode
func (p *TagPanel) RunMenuAction(action MenuAction) tea.Cmd {
	if p.EditingTag == nil {
		p.ShowDropDown = false
		return nil
	}
	tag := *p.EditingTag
	p.ShowDropDown = false

	switch action {
	case MenuRename:
		return p.startRename()

	case MenuColor:
		p.Record(PartSwatch)
		p.ShowColorPicker = true
		p.Picker.Focus(tag.Color)

	case MenuType:
		p.CycleType()

	case MenuFormat:
		p.CycleFormat()

	case MenuLock:
		p.LockTag(&tag)

	case MenuMoveUp:
		p.MoveTag(&tag, -1)

	case MenuMoveDown:
		p.MoveTag(&tag, 1)

	case MenuCopy:
		p.CopyTagName(&tag)

	case MenuDelete:
		p.EditingTag = nil
		p.DeleteTag(&tag)
	}
	return nil
}

// HandleMouse routes a mouse event in screen coordinates. Popovers are
// tested first, then the toolbar and the rows.
func (p *TagPanel) HandleMouse(msg tea.MouseMsg) (handled bool, cmd tea.Cmd) {
	if msg.Action == tea.MouseActionMotion {
		p.hover(msg.X, msg.Y)
		return false, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, nil
	}

	if p.ShowColorPicker && p.pickerRect.Contains(msg.X, msg.Y) {
		if color, ok := p.Picker.ColorAt(msg.X-p.pickerRect.X, msg.Y-p.pickerRect.Y); ok {
			p.ChangeColor(color)
		}
		return true, nil
	}

	if p.ShowDropDown && p.menuRect.Contains(msg.X, msg.Y) {
		if action, ok := p.Menu.ActionAt(msg.Y - p.menuRect.Y); ok {
			return true, p.RunMenuAction(action)
		}
		return true, nil
	}

	if !p.origin.Contains(msg.X, msg.Y) {
		p.BlurAddInput()
		return false, nil
	}

	if p.toolbarRect.Contains(msg.X, msg.Y) {
		if action := p.Toolbar.ActionAt(msg.X - p.toolbarRect.X); action != ToolbarNone {
			p.BlurAddInput()
			return true, p.RunToolbarAction(action)
		}
		return true, nil
	}

	for _, anchor := range p.anchors {
		if !anchor.Row.Contains(msg.X, msg.Y) {
			continue
		}
		p.BlurAddInput()
		part := anchor.PartAt(msg.X)
		// the swatch and the ▾ glyph behave like buttons: a click on them
		// activates them the same way a key press does
		p.HandleClick(anchor.Tag, ClickEvent{
			Ctrl:         msg.Ctrl,
			Alt:          msg.Alt,
			FromKeyboard: part != PartName,
			Part:         part,
		})
		return true, nil
	}

	p.BlurAddInput()
	return true, nil
}

// hover tracks the row under the pointer and reports the labels of the tag
// entering and leaving it
func (p *TagPanel) hover(x, y int) {
	next := ""
	var nextTag models.Tag
	for key, anchor := range p.anchors {
		if anchor.Row.Contains(x, y) {
			next = key
			nextTag = anchor.Tag
			break
		}
	}
	if next == p.hovered {
		return
	}

	if p.hovered != "" {
		if cb := p.props.Callbacks.OnLabelLeave; cb != nil {
			for _, l := range models.LabelsForTag(p.props.Labels, p.hovered) {
				cb(l)
			}
		}
	}
	p.hovered = next
	if next != "" {
		if cb := p.props.Callbacks.OnLabelEnter; cb != nil {
			for _, l := range models.LabelsForTag(p.props.Labels, nextTag.Name) {
				cb(l)
			}
		}
	}
}
