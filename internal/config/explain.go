package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths include:
//
//	display
//	xauthority
//	log_level
//	tags.<n>
//	font
//	schemes.<name>.fg
//	schemes.<name>.bg
//	schemes.<name>.border
//	border_width
//	floating_border_width
//	snap_distance
//	show_tagbar
//	tags_on_top
//	follow_new_windows
//	view_tag_toggles
//	hide_inactive_tags
//	resizehints
//	hide_buried_windows
//	clientbar_mode
//	marked_width
//	rules
//	layouts
//	layouts.<name>.symbol
//	layouts.<name>.kind
//	def_layouts.<n>
//	keys
//	mouse
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}

	if strings.HasPrefix(path, "layouts.") {
		name := secondPathSegment(path)
		base := ""
		if name != "" {
			base = res.LayoutBases[name]
		}
		return value, Source{Kind: SourceBuiltin, Name: base}, nil
	}

	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func secondPathSegment(path string) string {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "display":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.Display, nil
	case "xauthority":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.XAuthority, nil
	case "log_level":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.LogLevel, nil
	case "font":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.Font, nil
	case "tags":
		if len(parts) == 1 {
			return cfg.Tags, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 || idx >= len(cfg.Tags) {
			return nil, fmt.Errorf("unknown tags index %q", parts[1])
		}
		return cfg.Tags[idx], nil
	case "schemes":
		if len(parts) < 2 {
			return cfg.Schemes, nil
		}
		name := parts[1]
		scheme, ok := cfg.Schemes[name]
		if !ok {
			return nil, fmt.Errorf("unknown scheme %q", name)
		}
		if len(parts) == 2 {
			return scheme, nil
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		switch parts[2] {
		case "fg":
			return scheme.Fg, nil
		case "bg":
			return scheme.Bg, nil
		case "border":
			return scheme.Border, nil
		default:
			return nil, fmt.Errorf("unknown path: %s", path)
		}
	case "border_width":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.BorderWidth, nil
	case "floating_border_width":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.FloatingBorderWidth, nil
	case "snap_distance":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.SnapDistance, nil
	case "show_tagbar":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.ShowTagbar, nil
	case "tags_on_top":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.TagsOnTop, nil
	case "follow_new_windows":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.FollowNewWindows, nil
	case "view_tag_toggles":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.ViewTagToggles, nil
	case "hide_inactive_tags":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.HideInactiveTags, nil
	case "resizehints":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.ResizeHints, nil
	case "hide_buried_windows":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.HideBuriedWindows, nil
	case "clientbar_mode":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.ClientbarMode, nil
	case "marked_width":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.MarkedWidth, nil
	case "rules":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.Rules, nil
	case "layouts":
		if len(parts) == 1 {
			return cfg.Layouts, nil
		}
		name := parts[1]
		idx := cfg.LayoutIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("unknown layout %q", name)
		}
		layout := cfg.Layouts[idx]
		if len(parts) == 2 {
			return layout, nil
		}
		if len(parts) != 3 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		switch parts[2] {
		case "symbol":
			return layout.Symbol, nil
		case "kind":
			return layout.Kind, nil
		default:
			return nil, fmt.Errorf("unknown path: %s", path)
		}
	case "def_layouts":
		if len(parts) == 1 {
			return cfg.DefLayouts, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 || idx >= len(cfg.DefLayouts) {
			return nil, fmt.Errorf("unknown def_layouts index %q", parts[1])
		}
		return cfg.DefLayouts[idx], nil
	case "keys":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.Keys, nil
	case "mouse":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path: %s", path)
		}
		return cfg.Mouse, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
