package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/pluqqy/pluqqy-tags/pkg/files"
	"github.com/pluqqy/pluqqy-tags/pkg/models"
	"github.com/pluqqy/pluqqy-tags/pkg/tags"
)

// CommandContext loads the workspace and settings a command works on
type CommandContext struct {
	WorkspacePath string
	SettingsPath  string
	Settings      *models.Settings
	Registry      *tags.Registry

	workspaceName string
}

// NewCommandContext creates a new command context
func NewCommandContext(workspacePath, settingsPath string) *CommandContext {
	if workspacePath == "" {
		workspacePath = files.DefaultWorkspaceFile
	}
	if settingsPath == "" {
		settingsPath = files.DefaultSettingsPath()
	}
	return &CommandContext{
		WorkspacePath: workspacePath,
		SettingsPath:  settingsPath,
	}
}

// RequireWorkspace fails when the workspace file is missing
func (c *CommandContext) RequireWorkspace() error {
	return ValidateFilePath(c.WorkspacePath)
}

// LoadSettings reads the settings file under environment overrides and any
// settings flags set in flags, which may be nil
func (c *CommandContext) LoadSettings(flags *pflag.FlagSet) (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := files.LoadSettings(c.SettingsPath, flags)
	if err != nil {
		return nil, err
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings(nil)
	if err != nil {
		PrintWarning("using default settings: %v", err)
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// LoadRegistry reads the workspace into a registry
func (c *CommandContext) LoadRegistry() (*tags.Registry, error) {
	if c.Registry != nil {
		return c.Registry, nil
	}

	ws, err := files.LoadWorkspace(c.WorkspacePath)
	if err != nil {
		return nil, err
	}

	c.workspaceName = ws.Name
	c.Registry = tags.NewRegistry(ws)
	return c.Registry, nil
}

// WorkspaceName returns the name stored in the loaded workspace
func (c *CommandContext) WorkspaceName() string {
	return c.workspaceName
}

// Save writes the registry back to the workspace file
func (c *CommandContext) Save() error {
	if c.Registry == nil {
		return fmt.Errorf("no workspace loaded")
	}
	return files.SaveWorkspace(c.WorkspacePath, c.Registry.Snapshot(c.workspaceName))
}

// Palette returns the settings palette, falling back to the workspace's
func (c *CommandContext) Palette() []string {
	if settings := c.LoadSettingsWithDefault(); len(settings.Panel.Palette) > 0 {
		return settings.Panel.Palette
	}
	if c.Registry != nil {
		return c.Registry.Palette()
	}
	return models.DefaultColorPalette
}
