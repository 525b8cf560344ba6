package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawConfig is the literal YAML shape of a config file or include
// fragment. Scalars are pointers so BuildEffectiveConfig can tell
// "absent" from "explicitly zero"; ordered lists (rules, layouts, keys,
// mouse) are appended across includes rather than overlaid, since a
// config fragment adding bindings is the common case.
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	Display    *string `yaml:"display"`
	XAuthority *string `yaml:"xauthority"`
	LogLevel   *string `yaml:"log_level"`

	Tags *[9]string `yaml:"tags"`
	Font *string    `yaml:"font"`

	Schemes map[string]ColorScheme `yaml:"schemes"`

	BorderWidth         *int `yaml:"border_width"`
	FloatingBorderWidth *int `yaml:"floating_border_width"`
	SnapDistance        *int `yaml:"snap_distance"`

	ShowTagbar        *bool `yaml:"show_tagbar"`
	TagsOnTop         *bool `yaml:"tags_on_top"`
	FollowNewWindows  *bool `yaml:"follow_new_windows"`
	ViewTagToggles    *bool `yaml:"view_tag_toggles"`
	HideInactiveTags  *bool `yaml:"hide_inactive_tags"`
	ResizeHints       *bool `yaml:"resizehints"`
	HideBuriedWindows *bool `yaml:"hide_buried_windows"`

	ClientbarMode *string  `yaml:"clientbar_mode"`
	MarkedWidth   *float64 `yaml:"marked_width"`

	Rules []RuleConfig `yaml:"rules"`

	Layouts    []LayoutConfig `yaml:"layouts"`
	DefLayouts *[10]string    `yaml:"def_layouts"`

	Keys  []KeyBindingConfig   `yaml:"keys"`
	Mouse []MouseBindingConfig `yaml:"mouse"`

	Logging *RawLoggingConfig `yaml:"logging"`
}

type RawLoggingConfig struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
	File   *string `yaml:"file"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Tags != nil {
		out.Tags = overlay.Tags
	}
	if overlay.Font != nil {
		out.Font = overlay.Font
	}
	if overlay.Schemes != nil {
		if out.Schemes == nil {
			out.Schemes = make(map[string]ColorScheme, len(overlay.Schemes))
		}
		for name, scheme := range overlay.Schemes {
			out.Schemes[name] = scheme
		}
	}
	if overlay.BorderWidth != nil {
		out.BorderWidth = overlay.BorderWidth
	}
	if overlay.FloatingBorderWidth != nil {
		out.FloatingBorderWidth = overlay.FloatingBorderWidth
	}
	if overlay.SnapDistance != nil {
		out.SnapDistance = overlay.SnapDistance
	}
	if overlay.ShowTagbar != nil {
		out.ShowTagbar = overlay.ShowTagbar
	}
	if overlay.TagsOnTop != nil {
		out.TagsOnTop = overlay.TagsOnTop
	}
	if overlay.FollowNewWindows != nil {
		out.FollowNewWindows = overlay.FollowNewWindows
	}
	if overlay.ViewTagToggles != nil {
		out.ViewTagToggles = overlay.ViewTagToggles
	}
	if overlay.HideInactiveTags != nil {
		out.HideInactiveTags = overlay.HideInactiveTags
	}
	if overlay.ResizeHints != nil {
		out.ResizeHints = overlay.ResizeHints
	}
	if overlay.HideBuriedWindows != nil {
		out.HideBuriedWindows = overlay.HideBuriedWindows
	}
	if overlay.ClientbarMode != nil {
		out.ClientbarMode = overlay.ClientbarMode
	}
	if overlay.MarkedWidth != nil {
		out.MarkedWidth = overlay.MarkedWidth
	}
	if overlay.Rules != nil {
		out.Rules = append(append([]RuleConfig{}, out.Rules...), overlay.Rules...)
	}
	if overlay.Layouts != nil {
		out.Layouts = append(append([]LayoutConfig{}, out.Layouts...), overlay.Layouts...)
	}
	if overlay.DefLayouts != nil {
		out.DefLayouts = overlay.DefLayouts
	}
	if overlay.Keys != nil {
		out.Keys = append(append([]KeyBindingConfig{}, out.Keys...), overlay.Keys...)
	}
	if overlay.Mouse != nil {
		out.Mouse = append(append([]MouseBindingConfig{}, out.Mouse...), overlay.Mouse...)
	}
	if overlay.Logging != nil {
		if out.Logging == nil {
			out.Logging = &RawLoggingConfig{}
		}
		if overlay.Logging.Level != nil {
			out.Logging.Level = overlay.Logging.Level
		}
		if overlay.Logging.Format != nil {
			out.Logging.Format = overlay.Logging.Format
		}
		if overlay.Logging.File != nil {
			out.Logging.File = overlay.Logging.File
		}
	}

	return out
}
