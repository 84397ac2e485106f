package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(p *TagPanel, s string) {
	for _, r := range s {
		p.HandleInput(keyRunes(string(r)))
	}
}

func inputTestTags() []models.Tag {
	return []models.Tag{
		models.NewTag("a", "#111111"),
		models.NewTag("b", "#222222"),
		models.NewTag("c", "#333333"),
	}
}

func TestTagPanel_ListKeys(t *testing.T) {
	p, rec := newTestPanel(inputTestTags(), nil)

	handled, _ := p.HandleInput(keyType(tea.KeyDown))
	assert.True(t, handled)
	assert.Equal(t, 1, p.Cursor)

	p.HandleInput(keyRunes("j"))
	p.HandleInput(keyRunes("j"))
	assert.Equal(t, 2, p.Cursor, "cursor stops at the last row")

	p.HandleInput(keyType(tea.KeyShiftUp))
	assert.Equal(t, []string{"a", "c", "b"}, tagNames(p.Tags))
	assert.Equal(t, 1, p.Cursor, "cursor follows the moved tag")
	require.Len(t, rec.changes, 1)

	p.HandleInput(keyType(tea.KeySpace))
	require.NotNil(t, p.SelectedTag)
	assert.Equal(t, "c", p.SelectedTag.Name)

	p.HandleInput(keyType(tea.KeyEsc))
	assert.Nil(t, p.SelectedTag)

	handled, _ = p.HandleInput(keyRunes("z"))
	assert.False(t, handled, "unbound keys are left to the owner")
}

func TestTagPanel_AddBox(t *testing.T) {
	t.Run("enter creates and clears", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyRunes("a"))
		require.True(t, p.AddTags)
		require.True(t, p.InputFocused())

		typeText(p, "  new ")
		p.HandleInput(keyType(tea.KeyEnter))

		assert.Equal(t, []string{"a", "b", "c", "new"}, tagNames(p.Tags))
		assert.Empty(t, p.AddInput.Value())
		assert.True(t, p.InputFocused(), "the box stays open for the next tag")
		require.Len(t, rec.changes, 1)
	})

	t.Run("escape closes without creating", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyRunes("a"))
		typeText(p, "new")
		p.HandleInput(keyType(tea.KeyEsc))

		assert.False(t, p.AddTags)
		assert.False(t, p.InputFocused())
		assert.Len(t, p.Tags, 3)
		assert.Empty(t, rec.changes)
	})

	t.Run("blur with a value creates the tag", func(t *testing.T) {
		p, _ := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyRunes("a"))
		typeText(p, "new")
		p.BlurAddInput()

		assert.Equal(t, []string{"a", "b", "c", "new"}, tagNames(p.Tags))
		assert.False(t, p.InputFocused())
	})

	t.Run("blur with an empty value does nothing", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyRunes("a"))
		p.BlurAddInput()

		assert.Len(t, p.Tags, 3)
		assert.Empty(t, rec.notes)
	})

	t.Run("duplicates are reported", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyRunes("a"))
		typeText(p, "B")
		p.HandleInput(keyType(tea.KeyEnter))

		assert.Len(t, p.Tags, 3)
		assert.Equal(t, []string{`Tag "B" already exists`}, rec.notes)
	})
}

func TestTagPanel_SearchBox(t *testing.T) {
	p, _ := newTestPanel([]models.Tag{
		models.NewTag("cat", ""),
		models.NewTag("dog", ""),
		models.NewTag("Bobcat", ""),
	}, nil)

	p.HandleInput(keyRunes("/"))
	require.True(t, p.SearchTags)
	typeText(p, "CA")

	assert.Equal(t, "CA", p.SearchQuery)
	assert.Equal(t, []string{"cat", "Bobcat"}, tagNames(p.VisibleTags()))

	p.HandleInput(keyType(tea.KeyEnter))
	assert.False(t, p.InputFocused())
	assert.Equal(t, "CA", p.SearchQuery, "leaving the box keeps the filter")

	p.HandleInput(keyRunes("/"))
	assert.False(t, p.SearchTags)
	assert.Empty(t, p.SearchQuery)

	p.HandleInput(keyRunes("/"))
	typeText(p, "dog")
	p.HandleInput(keyType(tea.KeyEsc))
	assert.False(t, p.SearchTags)
	assert.Empty(t, p.SearchQuery)
	assert.Len(t, p.VisibleTags(), 3)
}

func TestTagPanel_MenuKeys(t *testing.T) {
	t.Run("cycle type", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyType(tea.KeyEnter))
		require.True(t, p.ShowDropDown)

		p.HandleInput(keyType(tea.KeyDown))
		p.HandleInput(keyType(tea.KeyDown))
		p.HandleInput(keyType(tea.KeyEnter))

		assert.False(t, p.ShowDropDown)
		assert.Equal(t, models.TagTypeNumber, p.Tags[0].Type)
		require.Len(t, rec.changed, 1)
	})

	t.Run("rename", func(t *testing.T) {
		p, _ := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyType(tea.KeyEnter))
		p.HandleInput(keyType(tea.KeyEnter))
		require.True(t, p.InputFocused())
		assert.Equal(t, "a", p.RenameInput.Value())

		p.RenameInput.SetValue("zeta")
		p.HandleInput(keyType(tea.KeyEnter))

		assert.Equal(t, []string{"zeta", "b", "c"}, tagNames(p.Tags))
		assert.False(t, p.InputFocused())
	})

	t.Run("rename to an existing name stays in the field", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyType(tea.KeyEnter))
		p.HandleInput(keyType(tea.KeyEnter))
		p.RenameInput.SetValue("B")
		p.HandleInput(keyType(tea.KeyEnter))

		assert.Equal(t, []string{"a", "b", "c"}, tagNames(p.Tags))
		assert.True(t, p.InputFocused())
		assert.Len(t, rec.notes, 1)

		p.HandleInput(keyType(tea.KeyEsc))
		assert.False(t, p.InputFocused())
	})

	t.Run("escape closes the menu", func(t *testing.T) {
		p, _ := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyType(tea.KeyEnter))
		p.HandleInput(keyType(tea.KeyEsc))
		assert.False(t, p.ShowDropDown)
		assert.NotNil(t, p.EditingTag)
	})

	t.Run("delete", func(t *testing.T) {
		p, rec := newTestPanel(inputTestTags(), nil)

		p.HandleInput(keyType(tea.KeyEnter))
		p.RunMenuAction(MenuDelete)

		assert.Equal(t, []string{"a"}, rec.deleted)
		assert.Nil(t, p.EditingTag)
		assert.False(t, p.ShowDropDown)
	})
}

func TestTagPanel_PickerKeys(t *testing.T) {
	p, rec := newTestPanel(inputTestTags(), nil)

	p.HandleInput(keyRunes("c"))
	require.True(t, p.ShowColorPicker)

	p.HandleInput(keyType(tea.KeyRight))
	p.HandleInput(keyType(tea.KeyEnter))

	assert.False(t, p.ShowColorPicker)
	assert.Nil(t, p.EditingTag)
	assert.Equal(t, models.DefaultColorPalette[1], p.Tags[0].Color)
	require.Len(t, rec.changes, 1)
}

func TestTagPanel_ToolbarKeys(t *testing.T) {
	p, rec := newTestPanel(inputTestTags(), nil)

	// no target yet
	p.HandleInput(keyRunes("d"))
	assert.Empty(t, rec.deleted)

	p.HandleInput(keyType(tea.KeySpace))
	p.HandleInput(keyRunes("l"))
	p.HandleInput(keyRunes("]"))
	p.HandleInput(keyRunes("d"))

	require.Len(t, rec.locked, 1)
	assert.Equal(t, []string{"a"}, rec.locked[0])
	assert.Equal(t, []string{"b", "a", "c"}, tagNames(p.Tags))
	assert.Equal(t, []string{"a"}, rec.deleted)

	p.HandleInput(keyRunes("e"))
	require.NotNil(t, p.EditingTag)
	assert.True(t, p.ShowDropDown)
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func TestTagPanel_Mouse(t *testing.T) {
	newMousePanel := func(configure func(*Props, *panelRecorder)) (*TagPanel, *panelRecorder) {
		p, rec := newTestPanel(inputTestTags(), configure)
		p.SetSize(40, 0, 40, 20, 80, 24)
		p.View()
		return p, rec
	}

	t.Run("rows are placed below the header and toolbar", func(t *testing.T) {
		p, _ := newMousePanel(nil)

		require.Contains(t, p.anchors, "a")
		assert.Equal(t, 2, p.anchors["a"].Row.Y)
		assert.Equal(t, 4, p.anchors["c"].Row.Y)
		assert.Equal(t, 40, p.anchors["a"].Row.X)
	})

	t.Run("plain click on the name selects", func(t *testing.T) {
		p, _ := newMousePanel(nil)
		name := p.anchors["b"].Name

		handled, _ := p.HandleMouse(click(name.X+1, name.Y))
		assert.True(t, handled)
		require.NotNil(t, p.SelectedTag)
		assert.Equal(t, "b", p.SelectedTag.Name)
		assert.Equal(t, 1, p.Cursor)
	})

	t.Run("alt click edits", func(t *testing.T) {
		p, _ := newMousePanel(nil)
		name := p.anchors["a"].Name

		msg := click(name.X, name.Y)
		msg.Alt = true
		p.HandleMouse(msg)
		require.NotNil(t, p.EditingTag)
		assert.Equal(t, "a", p.EditingTag.Name)
	})

	t.Run("ctrl click with handler locks", func(t *testing.T) {
		p, rec := newMousePanel(func(props *Props, rec *panelRecorder) {
			props.Callbacks.OnCtrlTagClick = rec.onCtrlClick
		})
		name := p.anchors["a"].Name

		msg := click(name.X, name.Y)
		msg.Ctrl = true
		p.HandleMouse(msg)
		require.Len(t, rec.ctrlClicks, 1)
		assert.Nil(t, p.SelectedTag)
	})

	t.Run("swatch opens the picker and a picked cell recolors", func(t *testing.T) {
		p, rec := newMousePanel(nil)
		swatch := p.anchors["a"].Swatch

		p.HandleMouse(click(swatch.X, swatch.Y))
		require.True(t, p.ShowColorPicker)

		p.RenderPopovers(p.View())
		require.NotZero(t, p.pickerRect.W)
		assert.Equal(t, p.anchors["a"].Row.Y+pickerOffset, p.pickerRect.Y)
		assert.Equal(t, p.anchors["a"].Row.X, p.pickerRect.X+p.pickerRect.W)

		handled, _ := p.HandleMouse(click(p.pickerRect.X+1, p.pickerRect.Y+2))
		assert.True(t, handled)
		assert.Equal(t, models.DefaultColorPalette[0], p.Tags[0].Color)
		assert.False(t, p.ShowColorPicker)
		require.Len(t, rec.changes, 1)
	})

	t.Run("menu glyph opens the menu and an entry runs", func(t *testing.T) {
		p, _ := newMousePanel(nil)
		menu := p.anchors["b"].Menu

		p.HandleMouse(click(menu.X+1, menu.Y))
		require.True(t, p.ShowDropDown)

		p.RenderPopovers(p.View())
		require.NotZero(t, p.menuRect.W)
		assert.Equal(t, p.anchors["b"].Name.Y+1, p.menuRect.Y)

		p.HandleMouse(click(p.menuRect.X+2, p.menuRect.Y+1))
		assert.False(t, p.ShowDropDown)
		assert.True(t, p.InputFocused(), "rename field is open")
	})

	t.Run("toolbar click", func(t *testing.T) {
		p, _ := newMousePanel(nil)

		p.HandleMouse(click(p.toolbarRect.X+1, p.toolbarRect.Y))
		assert.True(t, p.AddTags)
	})

	t.Run("clicking a row commits a pending add", func(t *testing.T) {
		p, _ := newMousePanel(nil)
		p.HandleInput(keyRunes("a"))
		typeText(p, "new")
		p.View()

		name := p.anchors["a"].Name
		p.HandleMouse(click(name.X, name.Y))
		assert.Equal(t, []string{"a", "b", "c", "new"}, tagNames(p.Tags))
	})

	t.Run("clicks outside the panel are not handled", func(t *testing.T) {
		p, _ := newMousePanel(nil)

		handled, _ := p.HandleMouse(click(5, 5))
		assert.False(t, handled)
	})
}

func TestTagPanel_Hover(t *testing.T) {
	labels := []models.Label{
		{Label: "a", Region: "r1"},
		{Label: "A", Region: "r2"},
		{Label: "b", Region: "r1"},
	}
	p, rec := newTestPanel(inputTestTags(), func(props *Props, _ *panelRecorder) {
		props.Labels = labels
	})
	p.SetSize(0, 0, 40, 20, 80, 24)
	p.View()

	rowA := p.anchors["a"].Row
	rowB := p.anchors["b"].Row

	p.HandleMouse(motion(rowA.X+10, rowA.Y))
	assert.Equal(t, labels[:2], rec.entered)
	assert.Empty(t, rec.left)

	// moving within the row fires nothing new
	p.HandleMouse(motion(rowA.X+12, rowA.Y))
	assert.Len(t, rec.entered, 2)

	p.HandleMouse(motion(rowB.X+10, rowB.Y))
	assert.Equal(t, labels[:2], rec.left)
	assert.Equal(t, []models.Label{labels[0], labels[1], labels[2]}, rec.entered)

	p.HandleMouse(motion(70, 22))
	assert.Equal(t, []models.Label{labels[0], labels[1], labels[2]}, rec.left)
}

func TestTagPanel_View(t *testing.T) {
	p, _ := newTestPanel(inputTestTags(), func(props *Props, _ *panelRecorder) {
		props.SelectedRegions = []models.Region{{ID: "r1", Tags: []string{"b"}}}
		props.LockedTags = []string{"c"}
	})
	p.SetSize(0, 0, 40, 10, 80, 24)

	view := p.View()
	assert.Contains(t, view, "TAGS")
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "L")

	p.SetSearchQuery("zzz")
	view = p.View()
	assert.Contains(t, view, "(no matches)")
	assert.Empty(t, p.anchors, "anchors are rebuilt on every render")
}

func TestTagPanel_RenameFollowsEditedTag(t *testing.T) {
	tags := inputTestTags()

	t.Run("editing another tag closes the field", func(t *testing.T) {
		p, rec := newTestPanel(tags, nil)

		p.HandleClick(tags[0], ClickEvent{Alt: true})
		p.HandleInput(keyRunes("r"))
		require.True(t, p.InputFocused())
		typeText(p, "2")

		p.HandleClick(tags[1], ClickEvent{Alt: true})
		require.NotNil(t, p.EditingTag)
		assert.Equal(t, "b", p.EditingTag.Name)
		assert.False(t, p.InputFocused())

		p.HandleInput(keyType(tea.KeyEnter))
		assert.Equal(t, []string{"a", "b", "c"}, tagNames(p.Tags))
		assert.Empty(t, rec.changes)
	})

	t.Run("edited tag removed by the owner", func(t *testing.T) {
		p, _ := newTestPanel(tags, nil)

		p.HandleClick(tags[0], ClickEvent{Alt: true})
		p.HandleInput(keyRunes("r"))
		require.True(t, p.InputFocused())

		props := p.Props()
		props.Tags = tags[1:]
		p.SetProps(props)

		assert.False(t, p.InputFocused())
		assert.Nil(t, p.EditingTag)
	})

	t.Run("enter renames the tag the field was opened for", func(t *testing.T) {
		p, _ := newTestPanel(tags, nil)

		p.HandleClick(tags[2], ClickEvent{Alt: true})
		p.HandleInput(keyRunes("r"))
		typeText(p, "3")
		p.HandleInput(keyType(tea.KeyEnter))

		assert.Equal(t, []string{"a", "b", "c3"}, tagNames(p.Tags))
		assert.False(t, p.InputFocused())
	})
}
