package models

// Label is the application of a tag to a region, referenced by tag name
type Label struct {
	Label  string `json:"label" yaml:"label"`
	Region string `json:"region" yaml:"region"`
}

// Region is a canvas-side selectable area carrying applied tag names
type Region struct {
	ID   string   `json:"id" yaml:"id"`
	Tags []string `json:"tags" yaml:"tags"`
}

// AppliedTagNames returns the keys of every tag applied to the given regions
func AppliedTagNames(regions []Region) map[string]bool {
	applied := make(map[string]bool)
	for _, r := range regions {
		for _, name := range r.Tags {
			applied[TagKey(name)] = true
		}
	}
	return applied
}

// LabelsForTag returns the labels that reference the named tag
func LabelsForTag(labels []Label, name string) []Label {
	var result []Label
	for _, l := range labels {
		if SameTag(l.Label, name) {
			result = append(result, l)
		}
	}
	return result
}

// HasTag reports whether the region carries the named tag
func (r Region) HasTag(name string) bool {
	for _, t := range r.Tags {
		if SameTag(t, name) {
			return true
		}
	}
	return false
}
