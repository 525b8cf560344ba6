package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorScheme is a foreground/background/border color triple, given as
// "#rrggbb" hex strings in YAML and resolved to packed uint32s at startup
// for wm.ColorScheme.
type ColorScheme struct {
	Fg     string `yaml:"fg"`
	Bg     string `yaml:"bg"`
	Border string `yaml:"border"`
}

// schemeNames are the five fixed schemes spec.md §6 names; Config.Schemes
// must define at least these keys; other keys are accepted and unused.
var schemeNames = []string{"normal", "selected", "visible", "minimized", "urgent"}

// RuleConfig is one entry of the ordered rule list (spec.md §6 "Rules").
// Tags is a list of 1-based tag indices (1..9); an empty Tags list leaves
// the client's inherited tags untouched. Monitor of -1 (the default) means
// "no monitor assignment".
type RuleConfig struct {
	Class    string `yaml:"class,omitempty"`
	Instance string `yaml:"instance,omitempty"`
	Title    string `yaml:"title,omitempty"`
	Tags     []int  `yaml:"tags,omitempty"`
	Floating bool   `yaml:"floating,omitempty"`
	Monitor  int    `yaml:"monitor"`
}

// LayoutConfig is one entry of the ordered layout list (spec.md §6
// "Layout list"). Kind selects which built-in arrange function the
// runtime wires in: tile, deck, monocle, or floating (no arrange).
type LayoutConfig struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Kind   string `yaml:"kind"`
}

// KeyBindingConfig is one entry of the key-binding table (spec.md §6 "Key
// bindings"). Mod is a dash-joined modifier spec ("Mod4-Shift"), Key is an
// X keysym name ("t", "Return", "Tab"). Command must name a registered
// wm command; Arg is parsed according to that command (an int for most,
// a shell command line for `spawn`).
type KeyBindingConfig struct {
	Mod     string `yaml:"mod"`
	Key     string `yaml:"key"`
	Command string `yaml:"command"`
	Arg     string `yaml:"arg,omitempty"`
}

// MouseBindingConfig is one entry of the mouse-binding table (spec.md §6
// "Mouse bindings"). Click names a click region: root, client, tagbar,
// layout_symbol, status_text, win_title, clientbar_tab.
type MouseBindingConfig struct {
	Click   string `yaml:"click"`
	Mod     string `yaml:"mod"`
	Button  int    `yaml:"button"`
	Command string `yaml:"command"`
	Arg     string `yaml:"arg,omitempty"`
}

// Config holds the effective, fully-resolved window manager configuration
// (spec.md §6 "Configuration (immutable startup inputs)").
type Config struct {
	Display    string `yaml:"display,omitempty"`
	XAuthority string `yaml:"xauthority,omitempty"`
	LogLevel   string `yaml:"log_level"`

	Tags [9]string `yaml:"tags"`
	Font string    `yaml:"font"`

	Schemes map[string]ColorScheme `yaml:"schemes"`

	BorderWidth         int `yaml:"border_width"`
	FloatingBorderWidth int `yaml:"floating_border_width"`
	SnapDistance        int `yaml:"snap_distance"`

	ShowTagbar        bool `yaml:"show_tagbar"`
	TagsOnTop         bool `yaml:"tags_on_top"`
	FollowNewWindows  bool `yaml:"follow_new_windows"`
	ViewTagToggles    bool `yaml:"view_tag_toggles"`
	HideInactiveTags  bool `yaml:"hide_inactive_tags"`
	ResizeHints       bool `yaml:"resizehints"`
	HideBuriedWindows bool `yaml:"hide_buried_windows"`

	ClientbarMode string  `yaml:"clientbar_mode"`
	MarkedWidth   float64 `yaml:"marked_width"`

	Rules []RuleConfig `yaml:"rules"`

	Layouts    []LayoutConfig `yaml:"layouts"`
	DefLayouts [10]string     `yaml:"def_layouts"`

	Keys  []KeyBindingConfig   `yaml:"keys"`
	Mouse []MouseBindingConfig `yaml:"mouse"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig configures the process-wide slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
	File   string `yaml:"file,omitempty"`   // empty = stderr
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Tags:     [9]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Font:     "monospace:size=10",
		Schemes: map[string]ColorScheme{
			"normal":    {Fg: "#bbbbbb", Bg: "#222222", Border: "#444444"},
			"selected":  {Fg: "#eeeeee", Bg: "#005577", Border: "#005577"},
			"visible":   {Fg: "#bbbbbb", Bg: "#222222", Border: "#005577"},
			"minimized": {Fg: "#666666", Bg: "#222222", Border: "#444444"},
			"urgent":    {Fg: "#eeeeee", Bg: "#990000", Border: "#990000"},
		},
		BorderWidth:         1,
		FloatingBorderWidth: 1,
		SnapDistance:        32,
		ShowTagbar:          true,
		TagsOnTop:           true,
		FollowNewWindows:    true,
		ViewTagToggles:      true,
		HideInactiveTags:    false,
		ResizeHints:         false,
		HideBuriedWindows:   false,
		ClientbarMode:       "auto",
		MarkedWidth:         0.55,
		Rules:               nil,
		Layouts:             BuiltinLayouts(),
		DefLayouts:          [10]string{"tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile"},
		Keys:                DefaultKeys(),
		Mouse:               DefaultMouse(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetLoggingConfig returns the logging configuration with defaults applied.
func (c *Config) GetLoggingConfig() LoggingConfig {
	if c == nil {
		return LoggingConfig{Level: "info", Format: "text"}
	}
	cfg := c.Logging
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg
}

// Save writes the effective configuration to the standard location.
//
// Note: this marshals the effective config and will not preserve comments
// or include structure from the original YAML.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LayoutIndex returns the position of name in Layouts, or -1.
func (c *Config) LayoutIndex(name string) int {
	for i, l := range c.Layouts {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if len(c.Layouts) == 0 {
		return &ValidationError{Path: "layouts", Err: fmt.Errorf("layouts must not be empty")}
	}
	seen := make(map[string]bool, len(c.Layouts))
	for i, l := range c.Layouts {
		if strings.TrimSpace(l.Name) == "" {
			return &ValidationError{Path: fmt.Sprintf("layouts.%d.name", i), Err: fmt.Errorf("layout name must not be empty")}
		}
		if seen[l.Name] {
			return &ValidationError{Path: "layouts", Err: fmt.Errorf("duplicate layout name %q", l.Name)}
		}
		seen[l.Name] = true
		switch l.Kind {
		case "tile", "deck", "monocle", "floating":
		default:
			return &ValidationError{Path: fmt.Sprintf("layouts.%d.kind", i), Err: fmt.Errorf("kind must be one of: tile, deck, monocle, floating")}
		}
	}

	for i, name := range c.DefLayouts {
		if name == "" {
			continue
		}
		if c.LayoutIndex(name) < 0 {
			return &ValidationError{Path: fmt.Sprintf("def_layouts.%d", i), Err: fmt.Errorf("unknown layout %q", name)}
		}
	}

	for _, name := range schemeNames {
		scheme, ok := c.Schemes[name]
		if !ok {
			return &ValidationError{Path: "schemes", Err: fmt.Errorf("missing required color scheme %q", name)}
		}
		if err := validateHexColor(scheme.Fg); err != nil {
			return &ValidationError{Path: "schemes." + name + ".fg", Err: err}
		}
		if err := validateHexColor(scheme.Bg); err != nil {
			return &ValidationError{Path: "schemes." + name + ".bg", Err: err}
		}
		if err := validateHexColor(scheme.Border); err != nil {
			return &ValidationError{Path: "schemes." + name + ".border", Err: err}
		}
	}

	if c.BorderWidth < 0 {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be >= 0")}
	}
	if c.FloatingBorderWidth < 0 {
		return &ValidationError{Path: "floating_border_width", Err: fmt.Errorf("floating_border_width must be >= 0")}
	}
	if c.SnapDistance < 0 {
		return &ValidationError{Path: "snap_distance", Err: fmt.Errorf("snap_distance must be >= 0")}
	}
	if c.MarkedWidth <= 0.05 || c.MarkedWidth >= 0.95 {
		return &ValidationError{Path: "marked_width", Err: fmt.Errorf("marked_width must be in (0.05, 0.95)")}
	}
	switch c.ClientbarMode {
	case "never", "auto", "always":
	default:
		return &ValidationError{Path: "clientbar_mode", Err: fmt.Errorf("clientbar_mode must be one of: never, auto, always")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warn" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}

	for i, r := range c.Rules {
		for _, t := range r.Tags {
			if t < 1 || t > 9 {
				return &ValidationError{Path: fmt.Sprintf("rules.%d.tags", i), Err: fmt.Errorf("tag index must be in 1..9, got %d", t)}
			}
		}
	}

	for i, k := range c.Keys {
		if strings.TrimSpace(k.Key) == "" {
			return &ValidationError{Path: fmt.Sprintf("keys.%d.key", i), Err: fmt.Errorf("key must not be empty")}
		}
		if err := validateCommandName(k.Command); err != nil {
			return &ValidationError{Path: fmt.Sprintf("keys.%d.command", i), Err: err}
		}
	}
	for i, b := range c.Mouse {
		switch b.Click {
		case "root", "client", "tagbar", "layout_symbol", "status_text", "win_title", "clientbar_tab":
		default:
			return &ValidationError{Path: fmt.Sprintf("mouse.%d.click", i), Err: fmt.Errorf("click must be one of: root, client, tagbar, layout_symbol, status_text, win_title, clientbar_tab")}
		}
		if err := validateCommandName(b.Command); err != nil {
			return &ValidationError{Path: fmt.Sprintf("mouse.%d.command", i), Err: err}
		}
	}

	return nil
}

// validateCommandName only checks the name is present; it is shape
// validation, not existence validation. Checking against the actual
// command table would mean importing internal/wm from internal/config,
// which the command-registry split in internal/wm/registry.go is
// specifically designed to avoid — the x11/cmd layer that resolves
// bindings against wm.LookupCommand is where an unknown name surfaces.
func validateCommandName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("command must not be empty")
	}
	return nil
}

func validateHexColor(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("color %q must be in #rrggbb form", s)
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("color %q is not valid hex", s)
	}
	return nil
}
