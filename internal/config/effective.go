package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

// BuildEffectiveConfig overlays raw onto DefaultConfig(). Rules, Layouts,
// Keys and Mouse each replace the corresponding default list wholesale the
// moment the user sets the field at all, rather than appending to it —
// Validate rejects duplicate layout names, and the built-in names (tile,
// deck, monocle, floating) are exactly what a user customizing a layout is
// likely to reuse, so appending would make redefining "tile" an error;
// the other three fields follow the same replace rule for consistency.
// A config file that wants to keep the defaults alongside new entries
// must repeat them; an empty list (YAML `keys: []`) opts out entirely.
//
// The returned layoutBases map records, for each layout name still present
// in the effective config that matches a built-in layout verbatim, the name
// of that built-in, so Explain can attribute unmodified layout fields to
// "builtin" rather than "default".
func BuildEffectiveConfig(raw RawConfig) (*Config, map[string]string, error) {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.XAuthority != nil {
		cfg.XAuthority = *raw.XAuthority
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Tags != nil {
		cfg.Tags = *raw.Tags
	}
	if raw.Font != nil {
		cfg.Font = *raw.Font
	}
	if raw.Schemes != nil {
		for name, scheme := range raw.Schemes {
			cfg.Schemes[name] = scheme
		}
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.FloatingBorderWidth != nil {
		cfg.FloatingBorderWidth = *raw.FloatingBorderWidth
	}
	if raw.SnapDistance != nil {
		cfg.SnapDistance = *raw.SnapDistance
	}
	if raw.ShowTagbar != nil {
		cfg.ShowTagbar = *raw.ShowTagbar
	}
	if raw.TagsOnTop != nil {
		cfg.TagsOnTop = *raw.TagsOnTop
	}
	if raw.FollowNewWindows != nil {
		cfg.FollowNewWindows = *raw.FollowNewWindows
	}
	if raw.ViewTagToggles != nil {
		cfg.ViewTagToggles = *raw.ViewTagToggles
	}
	if raw.HideInactiveTags != nil {
		cfg.HideInactiveTags = *raw.HideInactiveTags
	}
	if raw.ResizeHints != nil {
		cfg.ResizeHints = *raw.ResizeHints
	}
	if raw.HideBuriedWindows != nil {
		cfg.HideBuriedWindows = *raw.HideBuriedWindows
	}
	if raw.ClientbarMode != nil {
		cfg.ClientbarMode = *raw.ClientbarMode
	}
	if raw.MarkedWidth != nil {
		cfg.MarkedWidth = *raw.MarkedWidth
	}
	if raw.Rules != nil {
		cfg.Rules = raw.Rules
	}
	if raw.Layouts != nil {
		cfg.Layouts = raw.Layouts
	}
	if raw.DefLayouts != nil {
		cfg.DefLayouts = *raw.DefLayouts
	}
	if raw.Keys != nil {
		cfg.Keys = raw.Keys
	}
	if raw.Mouse != nil {
		cfg.Mouse = raw.Mouse
	}
	if raw.Logging != nil {
		if raw.Logging.Level != nil {
			cfg.Logging.Level = *raw.Logging.Level
		}
		if raw.Logging.Format != nil {
			cfg.Logging.Format = *raw.Logging.Format
		}
		if raw.Logging.File != nil {
			cfg.Logging.File = *raw.Logging.File
		}
	}

	for i, name := range cfg.DefLayouts {
		if name == "" {
			cfg.DefLayouts[i] = cfg.Layouts[0].Name
		}
	}

	layoutBases := make(map[string]string)
	builtins := BuiltinLayouts()
	for _, l := range cfg.Layouts {
		for _, b := range builtins {
			if l == b {
				layoutBases[l.Name] = b.Name
				break
			}
		}
	}

	return cfg, layoutBases, nil
}
