package tags

import (
	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// UsageStats represents usage statistics for a tag
type UsageStats struct {
	LabelCount  int
	RegionCount int
	Locked      bool
}

// CountTagUsage counts how many labels and regions reference a tag
func (r *Registry) CountTagUsage(tagName string) *UsageStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &UsageStats{}
	stats.LabelCount = len(models.LabelsForTag(r.labels, tagName))

	for _, region := range r.regions {
		if region.HasTag(tagName) {
			stats.RegionCount++
		}
	}

	for _, name := range r.locked {
		if models.SameTag(name, tagName) {
			stats.Locked = true
			break
		}
	}

	return stats
}

// GetAllTagUsage returns usage statistics keyed by tag key
func (r *Registry) GetAllTagUsage() map[string]*UsageStats {
	usage := make(map[string]*UsageStats)
	for _, tag := range r.Tags() {
		usage[models.TagKey(tag.Name)] = r.CountTagUsage(tag.Name)
	}
	return usage
}

// OrphanedLabels returns labels whose tag no longer exists
func (r *Registry) OrphanedLabels() []models.Label {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orphans []models.Label
	for _, l := range r.labels {
		if models.FindTag(r.tags, l.Label) < 0 {
			orphans = append(orphans, l)
		}
	}
	return orphans
}

// PruneResult counts the dangling references removed by Prune
type PruneResult struct {
	Labels     int `json:"labels" yaml:"labels"`
	RegionRefs int `json:"region_refs" yaml:"region_refs"`
	Locked     int `json:"locked" yaml:"locked"`
}

// Total returns the number of references removed
func (p PruneResult) Total() int {
	return p.Labels + p.RegionRefs + p.Locked
}

// Prune drops labels, region references and lock entries naming tags that
// no longer exist
func (r *Registry) Prune() PruneResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result PruneResult
	known := func(name string) bool { return models.FindTag(r.tags, name) >= 0 }

	labels := make([]models.Label, 0, len(r.labels))
	for _, l := range r.labels {
		if known(l.Label) {
			labels = append(labels, l)
		} else {
			result.Labels++
		}
	}
	r.labels = labels

	for i := range r.regions {
		kept := make([]string, 0, len(r.regions[i].Tags))
		for _, t := range r.regions[i].Tags {
			if known(t) {
				kept = append(kept, t)
			} else {
				result.RegionRefs++
			}
		}
		r.regions[i].Tags = kept
	}

	locked := make([]string, 0, len(r.locked))
	for _, n := range r.locked {
		if known(n) {
			locked = append(locked, n)
		} else {
			result.Locked++
		}
	}
	r.locked = locked

	return result
}
