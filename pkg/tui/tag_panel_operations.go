package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/pluqqy/pluqqy-tags/pkg/logging"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// AddTag validates name, assigns the next free palette color and appends the
// tag. Invalid names are reported through the notifier and change nothing.
func (p *TagPanel) AddTag(name string) bool {
	name = strings.TrimSpace(name)
	if err := models.ValidateTagName(name, p.Tags); err != nil {
		p.reject(name, err)
		return false
	}

	tag := models.NewTag(name, models.NextColor(p.Tags, p.props.Palette, p.rnd))
	tags := append(cloneTags(p.Tags), tag)
	p.Tags = tags

	logging.Trace("tag.add", tag)
	p.commit(tags)
	return true
}

// UpdateTag replaces oldTag with newTag. A changed name is handed to the
// rename handler; any other change is applied in place.
func (p *TagPanel) UpdateTag(oldTag, newTag models.Tag) bool {
	newTag.Name = strings.TrimSpace(newTag.Name)
	if oldTag == newTag {
		return false
	}

	idx := models.FindTag(p.Tags, oldTag.Name)
	if idx < 0 {
		return false
	}

	if err := models.ValidateTagName(newTag.Name, models.WithoutTag(p.Tags, oldTag.Name)); err != nil {
		p.reject(newTag.Name, err)
		return false
	}

	if newTag.Name != oldTag.Name {
		p.EditingTag = nil
		p.blurRename()
		logging.Trace("tag.rename", map[string]string{"from": oldTag.Name, "to": newTag.Name})
		p.renameHandler()(oldTag, newTag)
		return true
	}

	p.replaceTag(idx, oldTag, newTag)
	return true
}

// renameHandler returns the single path every rename takes: the owner's
// handler when there is one, otherwise a local replace and commit.
func (p *TagPanel) renameHandler() func(oldTag, newTag models.Tag) {
	if p.props.Callbacks.OnTagRenamed != nil {
		return p.props.Callbacks.OnTagRenamed
	}
	return func(oldTag, newTag models.Tag) {
		if idx := models.FindTag(p.Tags, oldTag.Name); idx >= 0 {
			p.replaceTag(idx, oldTag, newTag)
		}
	}
}

func (p *TagPanel) replaceTag(idx int, oldTag, newTag models.Tag) {
	tags := cloneTags(p.Tags)
	tags[idx] = newTag
	p.Tags = tags
	p.EditingTag = nil
	p.Select(newTag)

	logging.Trace("tag.update", map[string]interface{}{"old": oldTag, "new": newTag})
	if cb := p.props.Callbacks.OnTagChanged; cb != nil {
		cb(oldTag, newTag)
	}
	p.commit(tags)
}

// DeleteTag asks the owner to delete tag. The panel does not remove it locally.
func (p *TagPanel) DeleteTag(tag *models.Tag) {
	if tag == nil {
		return
	}
	logging.Trace("tag.delete", tag.Name)
	if cb := p.props.Callbacks.OnTagDeleted; cb != nil {
		cb(tag.Name)
	}
}

// LockTag toggles tag in the owner's locked set
func (p *TagPanel) LockTag(tag *models.Tag) {
	if tag == nil {
		return
	}

	var locked []string
	found := false
	for _, name := range p.props.LockedTags {
		if models.SameTag(name, tag.Name) {
			found = true
			continue
		}
		locked = append(locked, name)
	}
	if !found {
		locked = append(locked, tag.Name)
	}

	logging.Trace("tag.lock", map[string]interface{}{"name": tag.Name, "locked": !found})
	if cb := p.props.Callbacks.OnLockedTagsChange; cb != nil {
		cb(locked)
	}
}

// MoveTag moves tag by displacement positions. Moves that would leave the
// list are ignored.
func (p *TagPanel) MoveTag(tag *models.Tag, displacement int) bool {
	if tag == nil {
		return false
	}
	idx := models.FindTag(p.Tags, tag.Name)
	if idx < 0 {
		return false
	}
	newIdx := idx + displacement
	if newIdx < 0 || newIdx >= len(p.Tags) {
		return false
	}

	moved := p.Tags[idx]
	tags := make([]models.Tag, 0, len(p.Tags))
	tags = append(tags, p.Tags[:idx]...)
	tags = append(tags, p.Tags[idx+1:]...)
	tags = append(tags[:newIdx], append([]models.Tag{moved}, tags[newIdx:]...)...)
	p.Tags = tags
	p.moveCursorTo(moved)

	logging.Trace("tag.move", map[string]interface{}{"name": moved.Name, "from": idx, "to": newIdx})
	p.commit(tags)
	return true
}

// ChangeColor recolors the tag in edit mode and closes the color picker
func (p *TagPanel) ChangeColor(color string) bool {
	if p.EditingTag == nil {
		return false
	}
	idx := models.FindTag(p.Tags, p.EditingTag.Name)
	if idx < 0 {
		return false
	}

	oldTag := p.Tags[idx]
	newTag := oldTag
	newTag.Color = color

	tags := cloneTags(p.Tags)
	tags[idx] = newTag
	p.Tags = tags
	p.EditingTag = nil
	p.ShowColorPicker = false

	logging.Trace("tag.color", map[string]string{"name": newTag.Name, "color": color})
	if oldTag != newTag {
		if cb := p.props.Callbacks.OnTagChanged; cb != nil {
			cb(oldTag, newTag)
		}
	}
	p.commit(tags)
	return true
}

// CycleType advances the edited tag's type
func (p *TagPanel) CycleType() bool {
	if p.EditingTag == nil {
		return false
	}
	newTag := *p.EditingTag
	newTag.Type = models.NextTagType(newTag.Type)
	return p.UpdateTag(*p.EditingTag, newTag)
}

// CycleFormat advances the edited tag's format
func (p *TagPanel) CycleFormat() bool {
	if p.EditingTag == nil {
		return false
	}
	newTag := *p.EditingTag
	newTag.Format = models.NextTagFormat(newTag.Format)
	return p.UpdateTag(*p.EditingTag, newTag)
}

// CopyTagName puts the tag name on the system clipboard
func (p *TagPanel) CopyTagName(tag *models.Tag) {
	if tag == nil {
		return
	}
	if err := clipboard.WriteAll(tag.Name); err != nil {
		logging.Error(fmt.Errorf("copy tag name: %w", err))
		p.notify("Could not copy to clipboard")
		return
	}
	p.notify(fmt.Sprintf("Copied %q", tag.Name))
}

func (p *TagPanel) commit(tags []models.Tag) {
	if cb := p.props.Callbacks.OnChange; cb != nil {
		cb(cloneTags(tags))
	}
}

func (p *TagPanel) reject(name string, err error) {
	logging.Trace("tag.rejected", map[string]string{"name": name, "error": err.Error()})
	p.notify(validationMessage(name, err))
}

func (p *TagPanel) notify(message string) {
	if p.props.Notifier != nil {
		p.props.Notifier.Notify(message)
	}
}

func validationMessage(name string, err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyTagName):
		return "Tag name cannot be empty"
	case errors.Is(err, models.ErrTagExists):
		return fmt.Sprintf("Tag %q already exists", name)
	case errors.Is(err, models.ErrTagNameTooLong):
		return fmt.Sprintf("Tag name is too long (max %d characters)", models.MaxTagNameLength-1)
	default:
		return err.Error()
	}
}
