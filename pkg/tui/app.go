package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-tags/pkg/logging"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
	"github.com/pluqqy/pluqqy-tags/pkg/tags"
)

type paneFocus int

const (
	focusTagPanel paneFocus = iota
	focusCanvas
)

// App hosts the tag panel next to a canvas of regions. It owns the registry
// and answers every panel callback against it.
type App struct {
	registry *tags.Registry
	settings *models.Settings
	name     string

	panel   *TagPanel
	canvas  *CanvasPane
	confirm *ConfirmationModel
	toast   *Toast

	focus   paneFocus
	width   int
	height  int
	pending []tea.Cmd
}

// NewApp creates the host for a workspace
func NewApp(registry *tags.Registry, settings *models.Settings, name string) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	a := &App{
		registry: registry,
		settings: settings,
		name:     name,
		canvas:   NewCanvasPane(),
		confirm:  NewConfirmation(),
		toast:    NewToast(time.Duration(settings.Panel.ToastSeconds) * time.Second),
	}

	palette := settings.Panel.Palette
	if len(palette) == 0 {
		palette = registry.Palette()
	}
	a.panel = NewTagPanel(Props{
		Palette:         palette,
		ShowTagInputBox: settings.Panel.ShowTagInputBox,
		ShowSearchBox:   settings.Panel.ShowSearchBox,
		PlaceHolder:     settings.Panel.PlaceHolder,
		Callbacks:       a.callbacks(),
		Notifier:        a,
	})
	a.panel.SetFocused(true)
	a.sync()
	return a
}

// Notify shows message as a toast
func (a *App) Notify(message string) {
	a.pending = append(a.pending, a.toast.Show(message))
}

// Panel returns the hosted tag panel
func (a *App) Panel() *TagPanel {
	return a.panel
}

// Workspace returns the current state as a workspace
func (a *App) Workspace() *models.Workspace {
	return a.registry.Snapshot(a.name)
}

func (a *App) callbacks() TagPanelCallbacks {
	return TagPanelCallbacks{
		OnChange: func(list []models.Tag) {
			a.registry.SetTags(list)
		},
		OnLockedTagsChange: func(names []string) {
			a.registry.SetLocked(names)
		},
		OnTagClick: func(tag models.Tag) {
			n, err := a.registry.ApplyTag(tag.Name)
			if err != nil {
				logging.Error(err)
				a.Notify(err.Error())
				return
			}
			if n > 0 {
				a.Notify(fmt.Sprintf("Applied %q to %d region(s)", tag.Name, n))
			}
		},
		OnCtrlTagClick: func(tag models.Tag) {
			a.panel.LockTag(&tag)
		},
		OnTagRenamed: func(oldTag, newTag models.Tag) {
			if err := a.registry.RenameTag(oldTag.Name, newTag); err != nil {
				logging.Error(err)
				a.Notify(err.Error())
			}
		},
		OnTagDeleted: a.confirmDelete,
		OnTagChanged: func(oldTag, newTag models.Tag) {
			logging.Trace("app.tag_changed", map[string]interface{}{"old": oldTag, "new": newTag})
		},
		OnLabelEnter: a.canvas.EnterLabel,
		OnLabelLeave: a.canvas.LeaveLabel,
	}
}

func (a *App) confirmDelete(name string) {
	stats := a.registry.CountTagUsage(name)

	var details []string
	if stats.LabelCount > 0 {
		details = append(details, fmt.Sprintf("%d label(s) will be removed", stats.LabelCount))
	}
	if stats.RegionCount > 0 {
		details = append(details, fmt.Sprintf("%d region(s) carry this tag", stats.RegionCount))
	}
	warning := ""
	if stats.Locked {
		warning = "This tag is locked"
	}

	a.confirm.Show(ConfirmationConfig{
		Title:       "Delete Tag",
		Message:     fmt.Sprintf("Delete tag %q?", name),
		Warning:     warning,
		Details:     details,
		Destructive: true,
	}, func() tea.Cmd {
		if err := a.registry.RemoveTag(name); err != nil {
			logging.Error(err)
			return a.toast.Show(err.Error())
		}
		a.sync()
		return a.toast.Show(fmt.Sprintf("Deleted tag %q", name))
	}, nil)
}

// sync pushes the registry state into the panel and the canvas
func (a *App) sync() {
	a.canvas.SetData(a.registry.Regions(), a.registry.SelectedRegions(), a.registry.Labels(), a.registry.Tags())

	props := a.panel.Props()
	props.Tags = a.registry.Tags()
	props.Labels = a.registry.Labels()
	props.SelectedRegions = a.registry.SelectedRegions()
	props.LockedTags = a.registry.Locked()
	props.HighlightedLabels = a.canvas.HighlightedLabels()
	a.panel.SetProps(props)
}

func (a *App) setFocus(focus paneFocus) {
	a.focus = focus
	a.panel.SetFocused(focus == focusTagPanel)
	a.canvas.SetFocused(focus == focusCanvas)
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()

	case toastExpiredMsg:
		a.toast.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.confirm.Active() {
			cmds = append(cmds, a.confirm.Update(msg))
			break
		}
		cmd, quit := a.handleKey(msg)
		if quit {
			return a, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		if a.confirm.Active() {
			break
		}
		cmds = append(cmds, a.handleMouse(msg))
	}

	a.sync()
	cmds = append(cmds, a.pending...)
	a.pending = nil
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if a.focus == focusTagPanel && a.panel.InputFocused() {
		_, cmd := a.panel.HandleInput(msg)
		return cmd, false
	}

	switch msg.String() {
	case Shortcuts.SwitchPane.Get():
		if a.focus == focusTagPanel {
			a.setFocus(focusCanvas)
		} else {
			a.setFocus(focusTagPanel)
		}
		return nil, false
	case Shortcuts.Quit.Get():
		return nil, true
	}

	if a.focus == focusCanvas {
		if id, _ := a.canvas.HandleKey(msg); id != "" {
			a.registry.ToggleRegion(id)
		} else if msg.String() == "esc" {
			a.registry.ClearRegionSelection()
		}
		return nil, false
	}

	_, cmd := a.panel.HandleInput(msg)
	return cmd, false
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	handled, cmd := a.panel.HandleMouse(msg)
	if handled {
		if msg.Action == tea.MouseActionPress && a.focus != focusTagPanel {
			a.setFocus(focusTagPanel)
		}
		return cmd
	}

	if id, ok := a.canvas.HandleMouse(msg); ok && msg.Action == tea.MouseActionPress {
		if a.focus != focusCanvas {
			a.setFocus(focusCanvas)
		}
		if id != "" {
			a.registry.ToggleRegion(id)
		}
	}
	return cmd
}

func (a *App) layout() {
	bodyHeight := a.height - 1
	canvasWidth := a.width * 55 / 100
	panelX := canvasWidth + 1
	a.canvas.SetSize(0, 0, canvasWidth, bodyHeight)
	a.panel.SetSize(panelX, 0, a.width-panelX, bodyHeight, a.width, a.height)
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	bodyHeight := a.height - 1
	canvasWidth := a.width * 55 / 100

	canvas := lipgloss.NewStyle().Width(canvasWidth).Height(bodyHeight).Render(a.canvas.View())
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Render(strings.TrimSuffix(strings.Repeat("│\n", bodyHeight), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, separator, a.panel.View())

	screen := lipgloss.JoinVertical(lipgloss.Left, body, a.helpLine())
	screen = a.panel.RenderPopovers(screen)

	if a.confirm.Active() {
		dialog := a.confirm.View()
		x := (a.width - lipgloss.Width(dialog)) / 2
		y := (a.height - lipgloss.Height(dialog)) / 2
		screen = Overlay(screen, dialog, max(x, 0), max(y, 0))
	}

	if toast := a.toast.View(a.width / 2); toast != "" {
		x := a.width - lipgloss.Width(toast) - 1
		y := a.height - lipgloss.Height(toast) - 1
		screen = Overlay(screen, toast, max(x, 0), max(y, 0))
	}

	return screen
}

func (a *App) helpLine() string {
	var parts []string
	switch {
	case a.confirm.Active():
		parts = []string{"y confirm", "n cancel"}
	case a.focus == focusCanvas:
		parts = []string{
			GetShortcutHelp("tags", Shortcuts.SwitchPane),
			GetShortcutHelp("select region", Shortcuts.Select),
			GetShortcutHelp("clear", Shortcuts.Cancel),
			GetShortcutHelp("quit", Shortcuts.Quit),
		}
	case a.panel.InputFocused():
		parts = []string{"enter submit", GetShortcutHelp("cancel", Shortcuts.Cancel)}
	default:
		parts = []string{
			GetShortcutHelp("canvas", Shortcuts.SwitchPane),
			GetShortcutHelp("menu", Shortcuts.Menu),
			GetShortcutHelp("color", Shortcuts.Color),
			GetShortcutHelp("select", Shortcuts.Select),
			GetShortcutHelp("add", Shortcuts.Add),
			GetShortcutHelp("search", Shortcuts.Search),
			GetShortcutHelp("lock", Shortcuts.LockClick),
			GetShortcutHelp("edit", Shortcuts.EditClick),
			GetShortcutHelp("quit", Shortcuts.Quit),
		}
	}
	help := strings.Join(parts, " • ")
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDim)).MaxWidth(a.width).Render(" " + help)
}
