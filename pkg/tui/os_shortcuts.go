package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// For returns the shortcut used on os
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Shortcuts contains the tag panel and host key bindings
var Shortcuts = struct {
	// Toolbar
	Add      ShortcutKey
	Search   ShortcutKey
	Edit     ShortcutKey
	Lock     ShortcutKey
	Delete   ShortcutKey
	MoveUp   ShortcutKey
	MoveDown ShortcutKey

	// Rows
	Select ShortcutKey
	Menu   ShortcutKey
	Color  ShortcutKey
	Rename ShortcutKey

	// Mouse modifiers
	LockClick ShortcutKey
	EditClick ShortcutKey

	// System
	SwitchPane ShortcutKey
	Cancel     ShortcutKey
	Quit       ShortcutKey
}{
	Add:      ShortcutKey{Default: "a"},
	Search:   ShortcutKey{Default: "/"},
	Edit:     ShortcutKey{Default: "e"},
	Lock:     ShortcutKey{Default: "l"},
	Delete:   ShortcutKey{Default: "d"},
	MoveUp:   ShortcutKey{Default: "["},
	MoveDown: ShortcutKey{Default: "]"},

	Select: ShortcutKey{Default: "space"},
	Menu:   ShortcutKey{Default: "enter"},
	Color:  ShortcutKey{Default: "c"},
	Rename: ShortcutKey{Default: "r"},

	LockClick: ShortcutKey{
		Mac:     "ctrl+click", // Terminal.app maps this to a right click; iTerm2 passes it through
		Default: "ctrl+click",
	},
	EditClick: ShortcutKey{
		Mac:     "alt+click", // needs "Option as Meta" in the terminal profile
		Default: "alt+click",
	},

	SwitchPane: ShortcutKey{Default: "tab"},
	Cancel:     ShortcutKey{Default: "esc"},
	Quit:       ShortcutKey{Default: "q"},
}

// GetShortcutHelp returns formatted help text for a shortcut
func GetShortcutHelp(name string, key ShortcutKey) string {
	return FormatShortcutForHelp(key) + " " + name
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// Use M- prefix for Alt on Linux/Windows (common terminal convention)
	if os == OSMac {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}
