package models

// Workspace is the on-disk shape of a labeling session
type Workspace struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Tags    []Tag    `json:"tags" yaml:"tags"`
	Labels  []Label  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Regions []Region `json:"regions,omitempty" yaml:"regions,omitempty"`
	Locked  []string `json:"locked,omitempty" yaml:"locked,omitempty"`
	Palette []string `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// Normalize fills defaults for fields older workspace files leave out
func (w *Workspace) Normalize() {
	for i := range w.Tags {
		if w.Tags[i].Type == "" {
			w.Tags[i].Type = TagTypeString
		}
		if w.Tags[i].Format == "" {
			w.Tags[i].Format = TagFormatText
		}
	}
	if len(w.Palette) == 0 {
		w.Palette = append([]string(nil), DefaultColorPalette...)
	}
}
