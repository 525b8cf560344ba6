package x11

import (
	"fmt"
	"strconv"

	"github.com/1broseidon/gowm/internal/config"
	"github.com/1broseidon/gowm/internal/wm"
)

// ResolveLayouts turns the configured layout list into wm.Layout values,
// wiring each Kind to its built-in arrange function. The floating kind
// carries a nil Arrange: layout.go's size-hint rule tests for exactly that
// to recognize "the current layout is floating" (spec.md §4.A).
func ResolveLayouts(cfgs []config.LayoutConfig) ([]*wm.Layout, error) {
	out := make([]*wm.Layout, 0, len(cfgs))
	for _, l := range cfgs {
		layout := &wm.Layout{Symbol: l.Symbol}
		switch l.Kind {
		case "tile":
			layout.Kind = wm.KindTile
			layout.Arrange = wm.TileLayout
		case "deck":
			layout.Kind = wm.KindDeck
			layout.Arrange = wm.DeckLayout
		case "monocle":
			layout.Kind = wm.KindMonocle
			layout.Arrange = wm.MonocleLayout
		case "floating":
			layout.Kind = wm.KindFloating
		default:
			return nil, fmt.Errorf("x11: layout %q: unknown kind %q", l.Name, l.Kind)
		}
		out = append(out, layout)
	}
	return out, nil
}

// ResolveRules builds the wm.Rule table from the configured rule list,
// unioning each rule's 1-based tag indices into a tag bitmask (spec.md §6
// "Rules").
func ResolveRules(cfgs []config.RuleConfig) []wm.Rule {
	out := make([]wm.Rule, 0, len(cfgs))
	for _, r := range cfgs {
		var tags uint
		for _, t := range r.Tags {
			if t >= 1 && t <= wm.NumTags {
				tags |= 1 << uint(t-1)
			}
		}
		out = append(out, wm.Rule{
			Class: r.Class, Instance: r.Instance, Title: r.Title,
			Tags: tags, Floating: r.Floating, Monitor: r.Monitor,
		})
	}
	return out
}

// ResolveSchemes parses the five #rrggbb scheme triples into the packed
// uint32 form Connection.New and bar.go draw from.
func ResolveSchemes(cfgs map[string]config.ColorScheme) (map[wm.SchemeName]wm.ColorScheme, error) {
	names := map[string]wm.SchemeName{
		"normal": wm.SchemeNormal, "selected": wm.SchemeSelected,
		"visible": wm.SchemeVisible, "minimized": wm.SchemeMinimized,
		"urgent": wm.SchemeUrgent,
	}
	out := make(map[wm.SchemeName]wm.ColorScheme, len(names))
	for key, id := range names {
		c, ok := cfgs[key]
		if !ok {
			return nil, fmt.Errorf("x11: missing color scheme %q", key)
		}
		fg, err := parseHexColor(c.Fg)
		if err != nil {
			return nil, fmt.Errorf("x11: scheme %q fg: %w", key, err)
		}
		bg, err := parseHexColor(c.Bg)
		if err != nil {
			return nil, fmt.Errorf("x11: scheme %q bg: %w", key, err)
		}
		border, err := parseHexColor(c.Border)
		if err != nil {
			return nil, fmt.Errorf("x11: scheme %q border: %w", key, err)
		}
		out[id] = wm.ColorScheme{Fg: fg, Bg: bg, Border: border}
	}
	return out, nil
}

// BuildMonitorDefaults resolves the effective config's layout list and
// per-tag default-layout names into the wm.MonitorDefaults NewMonitor seeds
// every head from. Both of dwm's layout-toggle slots start on the same
// configured default; they only diverge once set_layout is invoked at
// runtime.
func BuildMonitorDefaults(cfg *config.Config, layouts []*wm.Layout) (wm.MonitorDefaults, error) {
	var defLayouts [wm.NumTags + 1][2]int
	for i, name := range cfg.DefLayouts {
		idx := cfg.LayoutIndex(name)
		if idx < 0 {
			return wm.MonitorDefaults{}, fmt.Errorf("x11: def_layouts[%d]: unknown layout %q", i, name)
		}
		defLayouts[i] = [2]int{idx, idx}
	}

	clientbarMode, err := parseClientbarMode(cfg.ClientbarMode)
	if err != nil {
		return wm.MonitorDefaults{}, err
	}

	return wm.MonitorDefaults{
		MarkedWidth:   cfg.MarkedWidth,
		Layouts:       layouts,
		DefLayouts:    defLayouts,
		ShowTagbar:    cfg.ShowTagbar,
		ClientbarMode: clientbarMode,
	}, nil
}

func parseClientbarMode(s string) (wm.ClientbarMode, error) {
	switch s {
	case "never":
		return wm.ClientbarNever, nil
	case "auto":
		return wm.ClientbarAuto, nil
	case "always":
		return wm.ClientbarAlways, nil
	default:
		return 0, fmt.Errorf("x11: unknown clientbar_mode %q", s)
	}
}

func parseHexColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%q is not a #rrggbb color", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a #rrggbb color: %w", s, err)
	}
	return uint32(v), nil
}
