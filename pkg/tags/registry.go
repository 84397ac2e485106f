package tags

import (
	"fmt"
	"sync"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// Registry owns the canonical tags, labels, regions and locked set of a
// workspace. The tag panel reads it through props and writes back through
// callbacks; the registry is the source of truth.
type Registry struct {
	mu       sync.RWMutex
	tags     []models.Tag
	labels   []models.Label
	regions  []models.Region
	locked   []string
	selected map[string]bool
	palette  []string
}

// NewRegistry creates a registry seeded from a workspace
func NewRegistry(ws *models.Workspace) *Registry {
	r := &Registry{selected: make(map[string]bool)}
	if ws == nil {
		ws = &models.Workspace{}
		ws.Normalize()
	}
	r.tags = append([]models.Tag{}, ws.Tags...)
	r.labels = append([]models.Label{}, ws.Labels...)
	r.regions = make([]models.Region, len(ws.Regions))
	for i, region := range ws.Regions {
		r.regions[i] = models.Region{ID: region.ID, Tags: append([]string{}, region.Tags...)}
	}
	r.locked = append([]string{}, ws.Locked...)
	r.palette = append([]string{}, ws.Palette...)
	return r
}

// Tags returns a copy of the tag list
func (r *Registry) Tags() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]models.Tag, len(r.tags))
	copy(tags, r.tags)
	return tags
}

// SetTags replaces the tag list
func (r *Registry) SetTags(tags []models.Tag) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tags = make([]models.Tag, len(tags))
	copy(r.tags, tags)
}

// Labels returns a copy of the labels
func (r *Registry) Labels() []models.Label {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]models.Label, len(r.labels))
	copy(labels, r.labels)
	return labels
}

// Regions returns a copy of all regions
func (r *Registry) Regions() []models.Region {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.copyRegions(func(models.Region) bool { return true })
}

// SelectedRegions returns the regions currently selected in the canvas
func (r *Registry) SelectedRegions() []models.Region {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.copyRegions(func(region models.Region) bool { return r.selected[region.ID] })
}

func (r *Registry) copyRegions(keep func(models.Region) bool) []models.Region {
	var result []models.Region
	for _, region := range r.regions {
		if keep(region) {
			result = append(result, models.Region{ID: region.ID, Tags: append([]string{}, region.Tags...)})
		}
	}
	return result
}

// ToggleRegion flips the selection of a region
func (r *Registry) ToggleRegion(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.selected[id] {
		delete(r.selected, id)
	} else {
		r.selected[id] = true
	}
}

// ClearRegionSelection deselects every region
func (r *Registry) ClearRegionSelection() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.selected = make(map[string]bool)
}

// Locked returns a copy of the locked tag names
func (r *Registry) Locked() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.locked...)
}

// SetLocked replaces the locked tag names
func (r *Registry) SetLocked(names []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locked = append([]string{}, names...)
}

// IsLocked reports whether the named tag is locked
func (r *Registry) IsLocked(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.locked {
		if models.SameTag(n, name) {
			return true
		}
	}
	return false
}

// Palette returns the workspace palette
func (r *Registry) Palette() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.palette...)
}

// RenameTag renames a tag and cascades the new name to labels, regions and
// the locked set
func (r *Registry) RenameTag(oldName string, tag models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := models.FindTag(r.tags, oldName)
	if idx < 0 {
		return fmt.Errorf("tag '%s' not found", oldName)
	}

	others := models.WithoutTag(r.tags, oldName)
	if err := models.ValidateTagName(tag.Name, others); err != nil {
		return fmt.Errorf("invalid new tag name: %w", err)
	}

	r.tags[idx] = tag

	for i := range r.labels {
		if models.SameTag(r.labels[i].Label, oldName) {
			r.labels[i].Label = tag.Name
		}
	}
	for i := range r.regions {
		for j, name := range r.regions[i].Tags {
			if models.SameTag(name, oldName) {
				r.regions[i].Tags[j] = tag.Name
			}
		}
	}
	for i, name := range r.locked {
		if models.SameTag(name, oldName) {
			r.locked[i] = tag.Name
		}
	}

	return nil
}

// RemoveTag deletes a tag together with its labels, region references and lock
func (r *Registry) RemoveTag(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if models.FindTag(r.tags, name) < 0 {
		return fmt.Errorf("tag '%s' not found", name)
	}

	r.tags = models.WithoutTag(r.tags, name)

	labels := r.labels[:0]
	for _, l := range r.labels {
		if !models.SameTag(l.Label, name) {
			labels = append(labels, l)
		}
	}
	r.labels = labels

	for i := range r.regions {
		kept := make([]string, 0, len(r.regions[i].Tags))
		for _, t := range r.regions[i].Tags {
			if !models.SameTag(t, name) {
				kept = append(kept, t)
			}
		}
		r.regions[i].Tags = kept
	}

	locked := make([]string, 0, len(r.locked))
	for _, n := range r.locked {
		if !models.SameTag(n, name) {
			locked = append(locked, n)
		}
	}
	r.locked = locked

	return nil
}

// ApplyTag applies a tag to every selected region and records a label for
// each region that did not carry it yet. Locked tags are refused. It returns
// the number of regions that changed.
func (r *Registry) ApplyTag(name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := models.FindTag(r.tags, name)
	if idx < 0 {
		return 0, fmt.Errorf("tag '%s' not found", name)
	}
	for _, n := range r.locked {
		if models.SameTag(n, name) {
			return 0, fmt.Errorf("tag '%s' is locked", name)
		}
	}

	tagName := r.tags[idx].Name
	changed := 0
	for i := range r.regions {
		if !r.selected[r.regions[i].ID] || r.regions[i].HasTag(tagName) {
			continue
		}
		r.regions[i].Tags = append(r.regions[i].Tags, tagName)
		r.labels = append(r.labels, models.Label{Label: tagName, Region: r.regions[i].ID})
		changed++
	}
	return changed, nil
}

// Snapshot returns the registry contents as a workspace
func (r *Registry) Snapshot(name string) *models.Workspace {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &models.Workspace{
		Name:    name,
		Tags:    append([]models.Tag{}, r.tags...),
		Labels:  append([]models.Label{}, r.labels...),
		Regions: r.copyRegions(func(models.Region) bool { return true }),
		Locked:  append([]string{}, r.locked...),
		Palette: append([]string{}, r.palette...),
	}
}
