package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pluqqy/pluqqy-tags/pkg/models"
)

const (
	SettingsDir  = ".pluqqy-tags"
	SettingsFile = "settings.yaml"
)

// Environment variables that override settings file values
const (
	EnvShowTagInputBox = "PLUQQY_TAGS_SHOW_TAG_INPUT_BOX"
	EnvShowSearchBox   = "PLUQQY_TAGS_SHOW_SEARCH_BOX"
	EnvPlaceHolder     = "PLUQQY_TAGS_PLACEHOLDER"
	EnvPalette         = "PLUQQY_TAGS_PALETTE"
	EnvToastSeconds    = "PLUQQY_TAGS_TOAST_SECONDS"
	EnvLogFile         = "PLUQQY_TAGS_LOG_FILE"
	EnvTrace           = "PLUQQY_TAGS_TRACE"
)

var settingsEnv = map[string]string{
	"panel.show_tag_input_box": EnvShowTagInputBox,
	"panel.show_search_box":    EnvShowSearchBox,
	"panel.placeholder":        EnvPlaceHolder,
	"panel.palette":            EnvPalette,
	"panel.toast_seconds":      EnvToastSeconds,
	"logging.file":             EnvLogFile,
	"logging.trace":            EnvTrace,
}

// SettingsFlags maps command line flag names to settings keys
var SettingsFlags = map[string]string{
	"add-box":     "panel.show_tag_input_box",
	"search-box":  "panel.show_search_box",
	"placeholder": "panel.placeholder",
	"trace":       "logging.trace",
	"log-file":    "logging.file",
}

// DefaultSettingsPath returns ~/.pluqqy-tags/settings.yaml
func DefaultSettingsPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, SettingsDir, SettingsFile)
}

// ReadSettings loads settings from path on top of the defaults and applies
// PLUQQY_TAGS_* environment variables. A missing file is not an error.
func ReadSettings(path string) (*models.Settings, error) {
	return LoadSettings(path, nil)
}

// LoadSettings layers, lowest first: defaults, the settings file at path,
// environment variables, then flags in fs that were set explicitly.
func LoadSettings(path string, fs *pflag.FlagSet) (*models.Settings, error) {
	v := viper.New()
	setSettingsDefaults(v, models.DefaultSettings())

	for key, env := range settingsEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if fs != nil {
		for name, key := range SettingsFlags {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to parse settings: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	settings := &models.Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	settings.Panel.Palette = cleanPalette(settings.Panel.Palette)

	return settings, nil
}

func setSettingsDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("panel.show_tag_input_box", d.Panel.ShowTagInputBox)
	v.SetDefault("panel.show_search_box", d.Panel.ShowSearchBox)
	v.SetDefault("panel.placeholder", d.Panel.PlaceHolder)
	v.SetDefault("panel.palette", d.Panel.Palette)
	v.SetDefault("panel.toast_seconds", d.Panel.ToastSeconds)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.trace", d.Logging.Trace)
}

// cleanPalette trims entries split from a comma separated variable
func cleanPalette(palette []string) []string {
	var cleaned []string
	for _, c := range palette {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}
