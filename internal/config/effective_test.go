package config

import "testing"

func TestBuildEffectiveConfigOnEmptyRawMatchesDefaults(t *testing.T) {
	cfg, _, err := BuildEffectiveConfig(RawConfig{})
	if err != nil {
		t.Fatalf("BuildEffectiveConfig(RawConfig{}) error = %v", err)
	}
	def := DefaultConfig()
	if len(cfg.Keys) != len(def.Keys) {
		t.Fatalf("Keys len = %d, want %d (default keys preserved)", len(cfg.Keys), len(def.Keys))
	}
	if len(cfg.Mouse) != len(def.Mouse) {
		t.Fatalf("Mouse len = %d, want %d (default mouse bindings preserved)", len(cfg.Mouse), len(def.Mouse))
	}
	if len(cfg.Layouts) != len(def.Layouts) {
		t.Fatalf("Layouts len = %d, want %d (builtin layouts preserved)", len(cfg.Layouts), len(def.Layouts))
	}
	if cfg.Rules != nil {
		t.Fatalf("Rules = %v, want nil default", cfg.Rules)
	}
}

func TestBuildEffectiveConfigReplacesRatherThanAppendsKeys(t *testing.T) {
	raw := RawConfig{
		Keys: []KeyBindingConfig{{Mod: "Mod4", Key: "z", Command: "focus_next"}},
	}
	cfg, _, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	if len(cfg.Keys) != 1 {
		t.Fatalf("Keys len = %d, want 1 (overlay replaces the default set, it does not append to it)", len(cfg.Keys))
	}
	if cfg.Keys[0].Key != "z" {
		t.Fatalf("Keys[0] = %+v, want the overlay's single binding", cfg.Keys[0])
	}
}

func TestBuildEffectiveConfigReplacesRatherThanAppendsMouse(t *testing.T) {
	raw := RawConfig{
		Mouse: []MouseBindingConfig{{Click: "client", Mod: "Mod4", Button: 1, Command: "move_mouse"}},
	}
	cfg, _, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	if len(cfg.Mouse) != 1 {
		t.Fatalf("Mouse len = %d, want 1 (overlay replaces the default set)", len(cfg.Mouse))
	}
}

func TestBuildEffectiveConfigEmptyKeysOptsOutOfDefaults(t *testing.T) {
	raw := RawConfig{Keys: []KeyBindingConfig{}}
	cfg, _, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	if len(cfg.Keys) != 0 {
		t.Fatalf("Keys len = %d, want 0 (explicit empty list opts out of defaults entirely)", len(cfg.Keys))
	}
}

func TestBuildEffectiveConfigLayoutsReplaceBuiltinsWholesale(t *testing.T) {
	raw := RawConfig{
		Layouts: []LayoutConfig{{Name: "tile", Symbol: "[T]", Kind: "tile"}},
	}
	cfg, _, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	if len(cfg.Layouts) != 1 {
		t.Fatalf("Layouts len = %d, want 1 (overlay replaces the builtin set, not appends)", len(cfg.Layouts))
	}
	if cfg.Layouts[0].Symbol != "[T]" {
		t.Fatalf("Layouts[0].Symbol = %q, want the overlay's custom symbol, got no duplicate-name conflict", cfg.Layouts[0].Symbol)
	}
}

func TestBuildEffectiveConfigEmptyDefLayoutNameFallsBackToFirstLayout(t *testing.T) {
	raw := RawConfig{
		Layouts: []LayoutConfig{
			{Name: "monocle", Symbol: "[M]", Kind: "monocle"},
			{Name: "tile", Symbol: "[]=", Kind: "tile"},
		},
		DefLayouts: &[10]string{"monocle", "", "", "", "", "", "", "", "", ""},
	}
	cfg, _, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	if cfg.DefLayouts[0] != "monocle" {
		t.Fatalf("DefLayouts[0] = %q, want explicit %q preserved", cfg.DefLayouts[0], "monocle")
	}
	if cfg.DefLayouts[1] != "monocle" {
		t.Fatalf("DefLayouts[1] = %q, want fallback to Layouts[0].Name %q", cfg.DefLayouts[1], "monocle")
	}
}

func TestBuildEffectiveConfigLayoutBasesRecordsUnmodifiedBuiltins(t *testing.T) {
	raw := RawConfig{
		Layouts: []LayoutConfig{
			{Name: "tile", Symbol: "[]=", Kind: "tile"},
			{Name: "custom", Symbol: "[C]", Kind: "floating"},
		},
	}
	cfg, bases, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig() error = %v", err)
	}
	found := false
	for _, l := range cfg.Layouts {
		if l.Name == "tile" {
			found = true
		}
	}
	if !found {
		t.Fatalf("effective Layouts missing %q", "tile")
	}
	if base, ok := bases["tile"]; !ok || base != "tile" {
		t.Fatalf("layoutBases[%q] = %q, %v, want the matching builtin recorded", "tile", base, ok)
	}
	if _, ok := bases["custom"]; ok {
		t.Fatalf("layoutBases recorded %q, want it absent (not a verbatim builtin match)", "custom")
	}
}
