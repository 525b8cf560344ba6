package x11

import (
	"testing"

	"github.com/1broseidon/gowm/internal/config"
	"github.com/1broseidon/gowm/internal/wm"
)

func TestParseHexColorParsesRRGGBB(t *testing.T) {
	v, err := parseHexColor("#ff00aa")
	if err != nil {
		t.Fatalf("parseHexColor() error = %v", err)
	}
	if v != 0xff00aa {
		t.Fatalf("parseHexColor() = %#x, want %#x", v, 0xff00aa)
	}
}

func TestParseHexColorRejectsMissingHash(t *testing.T) {
	if _, err := parseHexColor("ff00aa"); err == nil {
		t.Fatalf("parseHexColor(no #) = nil error, want error")
	}
}

func TestParseHexColorRejectsWrongLength(t *testing.T) {
	if _, err := parseHexColor("#fff"); err == nil {
		t.Fatalf("parseHexColor(short) = nil error, want error")
	}
}

func TestParseClientbarModeKnownValues(t *testing.T) {
	for s, want := range map[string]wm.ClientbarMode{
		"never": wm.ClientbarNever, "auto": wm.ClientbarAuto, "always": wm.ClientbarAlways,
	} {
		got, err := parseClientbarMode(s)
		if err != nil {
			t.Fatalf("parseClientbarMode(%q) error = %v", s, err)
		}
		if got != want {
			t.Fatalf("parseClientbarMode(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestParseClientbarModeRejectsUnknown(t *testing.T) {
	if _, err := parseClientbarMode("sometimes"); err == nil {
		t.Fatalf("parseClientbarMode(unknown) = nil error, want error")
	}
}

func TestResolveLayoutsWiresArrangeFunctionsByKind(t *testing.T) {
	cfgs := []config.LayoutConfig{
		{Name: "tile", Symbol: "[]=", Kind: "tile"},
		{Name: "deck", Symbol: "[D]", Kind: "deck"},
		{Name: "monocle", Symbol: "[M]", Kind: "monocle"},
		{Name: "float", Symbol: "><>", Kind: "floating"},
	}
	layouts, err := ResolveLayouts(cfgs)
	if err != nil {
		t.Fatalf("ResolveLayouts() error = %v", err)
	}
	if len(layouts) != 4 {
		t.Fatalf("len(layouts) = %d, want 4", len(layouts))
	}
	if layouts[0].Arrange == nil {
		t.Fatalf("tile layout has nil Arrange")
	}
	if layouts[3].Arrange != nil {
		t.Fatalf("floating layout has non-nil Arrange, want nil")
	}
	if layouts[3].Kind != wm.KindFloating {
		t.Fatalf("floating layout Kind = %v, want KindFloating", layouts[3].Kind)
	}
}

func TestResolveLayoutsRejectsUnknownKind(t *testing.T) {
	cfgs := []config.LayoutConfig{{Name: "weird", Symbol: "?", Kind: "spiral"}}
	if _, err := ResolveLayouts(cfgs); err == nil {
		t.Fatalf("ResolveLayouts(unknown kind) = nil error, want error")
	}
}

func TestResolveRulesUnionsTagIndicesIntoBitmask(t *testing.T) {
	cfgs := []config.RuleConfig{
		{Class: "Firefox", Tags: []int{1, 3}, Monitor: -1},
	}
	rules := ResolveRules(cfgs)
	if len(rules) != 1 {
		t.Fatalf("len(rules) = %d, want 1", len(rules))
	}
	want := uint(1<<0 | 1<<2)
	if rules[0].Tags != want {
		t.Fatalf("rules[0].Tags = %b, want %b", rules[0].Tags, want)
	}
}

func TestResolveRulesIgnoresOutOfRangeTagIndices(t *testing.T) {
	cfgs := []config.RuleConfig{{Class: "X", Tags: []int{0, 10, 2}}}
	rules := ResolveRules(cfgs)
	if rules[0].Tags != 1<<1 {
		t.Fatalf("rules[0].Tags = %b, want only tag 2's bit set (%b)", rules[0].Tags, 1<<1)
	}
}

func validSchemeMap() map[string]config.ColorScheme {
	return map[string]config.ColorScheme{
		"normal":    {Fg: "#ffffff", Bg: "#000000", Border: "#444444"},
		"selected":  {Fg: "#ffffff", Bg: "#285577", Border: "#4c7899"},
		"visible":   {Fg: "#ffffff", Bg: "#222222", Border: "#555555"},
		"minimized": {Fg: "#888888", Bg: "#111111", Border: "#222222"},
		"urgent":    {Fg: "#ffffff", Bg: "#900000", Border: "#ff0000"},
	}
}

func TestResolveSchemesParsesAllFiveSchemes(t *testing.T) {
	schemes, err := ResolveSchemes(validSchemeMap())
	if err != nil {
		t.Fatalf("ResolveSchemes() error = %v", err)
	}
	if len(schemes) != 5 {
		t.Fatalf("len(schemes) = %d, want 5", len(schemes))
	}
	if schemes[wm.SchemeUrgent].Bg != 0x900000 {
		t.Fatalf("urgent bg = %#x, want %#x", schemes[wm.SchemeUrgent].Bg, 0x900000)
	}
}

func TestResolveSchemesRejectsMissingScheme(t *testing.T) {
	cfgs := validSchemeMap()
	delete(cfgs, "urgent")
	if _, err := ResolveSchemes(cfgs); err == nil {
		t.Fatalf("ResolveSchemes(missing urgent) = nil error, want error")
	}
}

func TestBuildMonitorDefaultsResolvesDefLayoutIndices(t *testing.T) {
	layouts, err := ResolveLayouts([]config.LayoutConfig{
		{Name: "tile", Symbol: "[]=", Kind: "tile"},
		{Name: "monocle", Symbol: "[M]", Kind: "monocle"},
	})
	if err != nil {
		t.Fatalf("ResolveLayouts() error = %v", err)
	}
	cfg := &config.Config{
		MarkedWidth:   0.55,
		ShowTagbar:    true,
		ClientbarMode: "auto",
		DefLayouts:    [10]string{"tile", "monocle", "tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile"},
	}
	defs, err := BuildMonitorDefaults(cfg, layouts)
	if err != nil {
		t.Fatalf("BuildMonitorDefaults() error = %v", err)
	}
	if defs.DefLayouts[0] != [2]int{0, 0} {
		t.Fatalf("DefLayouts[0] = %v, want {0,0}", defs.DefLayouts[0])
	}
	if defs.DefLayouts[1] != [2]int{1, 1} {
		t.Fatalf("DefLayouts[1] = %v, want {1,1}", defs.DefLayouts[1])
	}
	if defs.ClientbarMode != wm.ClientbarAuto {
		t.Fatalf("ClientbarMode = %v, want ClientbarAuto", defs.ClientbarMode)
	}
}

func TestBuildMonitorDefaultsRejectsUnknownDefLayoutName(t *testing.T) {
	layouts, _ := ResolveLayouts([]config.LayoutConfig{{Name: "tile", Symbol: "[]=", Kind: "tile"}})
	cfg := &config.Config{
		ClientbarMode: "auto",
		DefLayouts:    [10]string{"does-not-exist", "tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile", "tile"},
	}
	if _, err := BuildMonitorDefaults(cfg, layouts); err == nil {
		t.Fatalf("BuildMonitorDefaults(unknown layout name) = nil error, want error")
	}
}
