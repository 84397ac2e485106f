package models

// Settings represents the application configuration
type Settings struct {
	Panel   PanelSettings   `yaml:"panel" mapstructure:"panel"`
	Logging LoggingSettings `yaml:"logging" mapstructure:"logging"`
}

// PanelSettings controls the tag panel's initial layout
type PanelSettings struct {
	ShowTagInputBox bool     `yaml:"show_tag_input_box" mapstructure:"show_tag_input_box"`
	ShowSearchBox   bool     `yaml:"show_search_box" mapstructure:"show_search_box"`
	PlaceHolder     string   `yaml:"placeholder" mapstructure:"placeholder"`
	Palette         []string `yaml:"palette,omitempty" mapstructure:"palette"`
	ToastSeconds    int      `yaml:"toast_seconds" mapstructure:"toast_seconds"`
}

// LoggingSettings controls the trace log
type LoggingSettings struct {
	File  string `yaml:"file" mapstructure:"file"`
	Trace bool   `yaml:"trace" mapstructure:"trace"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Panel: PanelSettings{
			ShowTagInputBox: false,
			ShowSearchBox:   false,
			PlaceHolder:     "Add new tag",
			ToastSeconds:    3,
		},
		Logging: LoggingSettings{
			File:  "",
			Trace: false,
		},
	}
}
