package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

// panelRecorder captures every callback the panel fires
type panelRecorder struct {
	changes    [][]models.Tag
	locked     [][]string
	clicks     []models.Tag
	ctrlClicks []models.Tag
	renames    [][2]models.Tag
	deleted    []string
	changed    [][2]models.Tag
	entered    []models.Label
	left       []models.Label
	notes      []string
}

func (r *panelRecorder) callbacks() TagPanelCallbacks {
	return TagPanelCallbacks{
		OnChange:           func(tags []models.Tag) { r.changes = append(r.changes, tags) },
		OnLockedTagsChange: func(names []string) { r.locked = append(r.locked, names) },
		OnTagClick:         func(tag models.Tag) { r.clicks = append(r.clicks, tag) },
		OnTagDeleted:       func(name string) { r.deleted = append(r.deleted, name) },
		OnTagChanged: func(oldTag, newTag models.Tag) {
			r.changed = append(r.changed, [2]models.Tag{oldTag, newTag})
		},
		OnLabelEnter: func(l models.Label) { r.entered = append(r.entered, l) },
		OnLabelLeave: func(l models.Label) { r.left = append(r.left, l) },
	}
}

func (r *panelRecorder) onRename(oldTag, newTag models.Tag) {
	r.renames = append(r.renames, [2]models.Tag{oldTag, newTag})
}

func (r *panelRecorder) onCtrlClick(tag models.Tag) {
	r.ctrlClicks = append(r.ctrlClicks, tag)
}

func newTestPanel(tags []models.Tag, configure func(*Props, *panelRecorder)) (*TagPanel, *panelRecorder) {
	rec := &panelRecorder{}
	props := Props{
		Tags:      tags,
		Callbacks: rec.callbacks(),
		Notifier:  NotifyFunc(func(msg string) { rec.notes = append(rec.notes, msg) }),
	}
	if configure != nil {
		configure(&props, rec)
	}
	p := NewTagPanel(props)
	p.SetRand(rand.New(rand.NewSource(1)))
	return p, rec
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

func TestTagPanel_AddTag(t *testing.T) {
	existing := []models.Tag{models.NewTag("Alpha", "#e74c3c")}

	tests := []struct {
		name      string
		input     string
		wantOK    bool
		wantNote  string
		wantNames []string
	}{
		{
			name:      "whitespace only",
			input:     "  ",
			wantNote:  "Tag name cannot be empty",
			wantNames: []string{"Alpha"},
		},
		{
			name:      "duplicate ignoring case and spaces",
			input:     "  alpha ",
			wantNote:  `Tag "alpha" already exists`,
			wantNames: []string{"Alpha"},
		},
		{
			name:      "128 characters",
			input:     strings.Repeat("x", 128),
			wantNote:  "Tag name is too long (max 127 characters)",
			wantNames: []string{"Alpha"},
		},
		{
			name:      "127 characters",
			input:     strings.Repeat("x", 127),
			wantOK:    true,
			wantNames: []string{"Alpha", strings.Repeat("x", 127)},
		},
		{
			name:      "trimmed before adding",
			input:     "  beta  ",
			wantOK:    true,
			wantNames: []string{"Alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestPanel(existing, nil)

			ok := p.AddTag(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNames, tagNames(p.Tags))
			if tt.wantOK {
				require.Len(t, rec.changes, 1)
				assert.Equal(t, tt.wantNames, tagNames(rec.changes[0]))
				assert.Empty(t, rec.notes)
			} else {
				assert.Empty(t, rec.changes)
				assert.Equal(t, []string{tt.wantNote}, rec.notes)
			}
		})
	}
}

func TestTagPanel_AddTagColor(t *testing.T) {
	t.Run("first unused palette color", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{models.NewTag("a", "#E74C3C")}, nil)

		require.True(t, p.AddTag("b"))
		assert.Equal(t, "#3498db", p.Tags[1].Color)
	})

	t.Run("exhausted palette falls back to a palette color", func(t *testing.T) {
		palette := []string{"#111111", "#222222"}
		p, _ := newTestPanel([]models.Tag{
			models.NewTag("a", "#111111"),
			models.NewTag("b", "#222222"),
		}, func(props *Props, _ *panelRecorder) {
			props.Palette = palette
		})

		require.True(t, p.AddTag("c"))
		assert.Contains(t, palette, p.Tags[2].Color)
	})

	t.Run("default type and format", func(t *testing.T) {
		p, _ := newTestPanel(nil, nil)

		require.True(t, p.AddTag("a"))
		assert.Equal(t, models.TagTypeString, p.Tags[0].Type)
		assert.Equal(t, models.TagFormatText, p.Tags[0].Format)
	})
}

func TestTagPanel_UpdateTag(t *testing.T) {
	a := models.NewTag("a", "#111111")
	b := models.NewTag("b", "#222222")

	t.Run("unchanged tag is a no-op", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, nil)

		assert.False(t, p.UpdateTag(b, b))
		assert.Empty(t, rec.changes)
		assert.Empty(t, rec.notes)
	})

	t.Run("rename colliding ignoring case is rejected", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, func(props *Props, rec *panelRecorder) {
			props.Callbacks.OnTagRenamed = rec.onRename
		})
		renamed := b
		renamed.Name = "A"

		assert.False(t, p.UpdateTag(b, renamed))
		assert.Equal(t, []string{"a", "b"}, tagNames(p.Tags))
		assert.Empty(t, rec.renames)
		assert.Equal(t, []string{`Tag "A" already exists`}, rec.notes)
	})

	t.Run("rename with handler is delegated", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, func(props *Props, rec *panelRecorder) {
			props.Callbacks.OnTagRenamed = rec.onRename
		})
		p.Edit(b)
		renamed := b
		renamed.Name = "c"

		assert.True(t, p.UpdateTag(b, renamed))
		require.Len(t, rec.renames, 1)
		assert.Equal(t, [2]models.Tag{b, renamed}, rec.renames[0])
		assert.Equal(t, []string{"a", "b"}, tagNames(p.Tags))
		assert.Empty(t, rec.changes)
		assert.Nil(t, p.EditingTag)
	})

	t.Run("rename without handler is applied locally", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, nil)
		renamed := b
		renamed.Name = "c"

		assert.True(t, p.UpdateTag(b, renamed))
		assert.Equal(t, []string{"a", "c"}, tagNames(p.Tags))
		require.Len(t, rec.changes, 1)
		require.NotNil(t, p.SelectedTag)
		assert.Equal(t, "c", p.SelectedTag.Name)
	})

	t.Run("renaming to itself with different case is allowed", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a, b}, nil)
		renamed := b
		renamed.Name = "B"

		assert.True(t, p.UpdateTag(b, renamed))
		assert.Equal(t, []string{"a", "B"}, tagNames(p.Tags))
	})

	t.Run("color change is replaced in place", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, func(props *Props, rec *panelRecorder) {
			props.Callbacks.OnTagRenamed = rec.onRename
		})
		p.Edit(a)
		recolored := a
		recolored.Color = "#333333"

		assert.True(t, p.UpdateTag(a, recolored))
		assert.Equal(t, "#333333", p.Tags[0].Color)
		assert.Empty(t, rec.renames)
		require.Len(t, rec.changed, 1)
		assert.Equal(t, [2]models.Tag{a, recolored}, rec.changed[0])
		require.Len(t, rec.changes, 1)
		assert.Nil(t, p.EditingTag)
		require.NotNil(t, p.SelectedTag)
		assert.Equal(t, "a", p.SelectedTag.Name)
	})

	t.Run("unknown tag", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a}, nil)

		assert.False(t, p.UpdateTag(b, models.NewTag("z", "")))
		assert.Empty(t, rec.changes)
	})
}

func TestTagPanel_DeleteTag(t *testing.T) {
	a := models.NewTag("a", "#111111")
	p, rec := newTestPanel([]models.Tag{a}, nil)

	p.DeleteTag(nil)
	assert.Empty(t, rec.deleted)

	p.DeleteTag(&a)
	assert.Equal(t, []string{"a"}, rec.deleted)
	assert.Equal(t, []string{"a"}, tagNames(p.Tags))
}

func TestTagPanel_LockTag(t *testing.T) {
	a := models.NewTag("a", "#111111")
	b := models.NewTag("b", "#222222")
	p, rec := newTestPanel([]models.Tag{a, b}, func(props *Props, _ *panelRecorder) {
		props.LockedTags = []string{"A"}
	})

	p.LockTag(nil)
	assert.Empty(t, rec.locked)

	p.LockTag(&b)
	p.LockTag(&a)

	require.Len(t, rec.locked, 2)
	assert.ElementsMatch(t, []string{"A", "b"}, rec.locked[0])
	assert.Empty(t, rec.locked[1])
}

func TestTagPanel_MoveTag(t *testing.T) {
	tags := []models.Tag{
		models.NewTag("a", ""),
		models.NewTag("b", ""),
		models.NewTag("c", ""),
	}

	tests := []struct {
		name         string
		tag          string
		displacement int
		wantOK       bool
		wantNames    []string
	}{
		{"up by one", "b", -1, true, []string{"b", "a", "c"}},
		{"down by one", "b", 1, true, []string{"a", "c", "b"}},
		{"down by two", "a", 2, true, []string{"b", "c", "a"}},
		{"before the start", "a", -1, false, []string{"a", "b", "c"}},
		{"past the end", "c", 1, false, []string{"a", "b", "c"}},
		{"far past the end", "a", 3, false, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newTestPanel(tags, nil)
			tag := tags[models.FindTag(tags, tt.tag)]

			assert.Equal(t, tt.wantOK, p.MoveTag(&tag, tt.displacement))
			assert.Equal(t, tt.wantNames, tagNames(p.Tags))
			if tt.wantOK {
				require.Len(t, rec.changes, 1)
				assert.Equal(t, tt.wantNames, tagNames(rec.changes[0]))
			} else {
				assert.Empty(t, rec.changes)
			}
		})
	}

	t.Run("nil tag", func(t *testing.T) {
		p, _ := newTestPanel(tags, nil)
		assert.False(t, p.MoveTag(nil, 1))
	})
}

func TestTagPanel_ChangeColor(t *testing.T) {
	a := models.NewTag("a", "#111111")
	b := models.NewTag("b", "#222222")

	t.Run("without a tag in edit mode", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, nil)

		assert.False(t, p.ChangeColor("#000000"))
		assert.Empty(t, rec.changes)
	})

	t.Run("recolors the edited tag", func(t *testing.T) {
		p, rec := newTestPanel([]models.Tag{a, b}, nil)
		p.Edit(b)
		p.ShowColorPicker = true

		assert.True(t, p.ChangeColor("#000000"))
		assert.Equal(t, "#000000", p.Tags[1].Color)
		assert.Nil(t, p.EditingTag)
		assert.False(t, p.ShowColorPicker)
		require.Len(t, rec.changes, 1)
		require.Len(t, rec.changed, 1)
		assert.Equal(t, "#000000", rec.changed[0][1].Color)
	})
}

func TestTagPanel_SetProps(t *testing.T) {
	a := models.NewTag("a", "#111111")
	b := models.NewTag("b", "#222222")

	t.Run("keeps the local mirror while the owner list is unchanged", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a}, nil)
		require.True(t, p.AddTag("b"))

		p.SetProps(p.Props())
		assert.Equal(t, []string{"a", "b"}, tagNames(p.Tags))
	})

	t.Run("replaces the mirror when the owner list changes", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a}, nil)
		props := p.Props()
		props.Tags = []models.Tag{a, b}

		p.SetProps(props)
		assert.Equal(t, []string{"a", "b"}, tagNames(p.Tags))
	})

	t.Run("re-resolves the selected tag by name", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a, b}, nil)
		p.Select(b)
		p.Edit(a)

		recolored := b
		recolored.Color = "#999999"
		props := p.Props()
		props.Tags = []models.Tag{a, recolored}
		p.SetProps(props)

		require.NotNil(t, p.SelectedTag)
		assert.Equal(t, "#999999", p.SelectedTag.Color)
		require.NotNil(t, p.EditingTag)
		assert.Equal(t, "a", p.EditingTag.Name)
	})

	t.Run("drops a selected tag that disappeared", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a, b}, nil)
		p.Select(b)

		props := p.Props()
		props.Tags = []models.Tag{a}
		p.SetProps(props)

		assert.Nil(t, p.SelectedTag)
	})

	t.Run("a new region selection clears the selected tag", func(t *testing.T) {
		p, _ := newTestPanel([]models.Tag{a, b}, nil)
		p.Select(a)

		props := p.Props()
		p.SetProps(props)
		require.NotNil(t, p.SelectedTag)

		props.SelectedRegions = []models.Region{{ID: "r1"}}
		p.SetProps(props)
		assert.Nil(t, p.SelectedTag)

		p.Select(a)
		p.SetProps(props)
		assert.NotNil(t, p.SelectedTag, "same region set keeps the selection")
	})

	t.Run("palette defaults", func(t *testing.T) {
		p, _ := newTestPanel(nil, nil)
		assert.Equal(t, models.DefaultColorPalette, p.Props().Palette)
	})

	t.Run("initial visibility", func(t *testing.T) {
		p, _ := newTestPanel(nil, func(props *Props, _ *panelRecorder) {
			props.ShowTagInputBox = true
			props.ShowSearchBox = true
			props.PlaceHolder = "New label"
		})
		assert.True(t, p.AddTags)
		assert.True(t, p.SearchTags)
		assert.Equal(t, "New label", p.AddInput.Placeholder)
	})
}

func TestTagPanel_Search(t *testing.T) {
	tags := []models.Tag{
		models.NewTag("Cat", ""),
		models.NewTag("dog", ""),
		models.NewTag("concatenate", ""),
		models.NewTag("BOBCAT", ""),
	}
	p, _ := newTestPanel(tags, nil)
	p.Select(tags[1])

	p.SetSearchQuery("cat")

	assert.Equal(t, []string{"Cat", "concatenate", "BOBCAT"}, tagNames(p.VisibleTags()))
	assert.Equal(t, []string{"Cat", "dog", "concatenate", "BOBCAT"}, tagNames(p.Tags))
	require.NotNil(t, p.SelectedTag)
	assert.Equal(t, "dog", p.SelectedTag.Name)

	p.SetSearchQuery("")
	assert.Len(t, p.VisibleTags(), 4)
}

func TestTagPanel_EndToEnd(t *testing.T) {
	p, rec := newTestPanel([]models.Tag{{Name: "A", Color: "red"}}, func(props *Props, _ *panelRecorder) {
		props.Palette = []string{"red", "green", "blue"}
	})

	require.True(t, p.AddTag("b"))
	assert.Equal(t, []string{"A", "b"}, tagNames(p.Tags))
	assert.Equal(t, "green", p.Tags[1].Color)

	b := p.Tags[1]
	renamed := b
	renamed.Name = "A"
	assert.False(t, p.UpdateTag(b, renamed))
	assert.Equal(t, []string{"A", "b"}, tagNames(p.Tags))
	assert.Len(t, rec.notes, 1)

	a := p.Tags[0]
	p.DeleteTag(&a)
	assert.Equal(t, []string{"A"}, rec.deleted)
	assert.Equal(t, []string{"A", "b"}, tagNames(p.Tags))
}
