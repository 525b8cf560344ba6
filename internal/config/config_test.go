package config

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadHexColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schemes["normal"] = ColorScheme{Fg: "bbbbbb", Bg: "#222222", Border: "#444444"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for fg missing '#'")
	}
}

func TestValidateRejectsEmptyCommandName(t *testing.T) {
	// Validate only checks command-name shape, not existence: checking
	// against the real command table would require internal/config to
	// import internal/wm, which registry.go's split is designed to avoid.
	// Existence is checked later, when internal/x11 resolves bindings
	// against wm.LookupCommand.
	cfg := DefaultConfig()
	cfg.Keys = append(cfg.Keys, KeyBindingConfig{Mod: "Mod4", Key: "x", Command: ""})
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for empty command name")
	}
}

func TestValidateRejectsMissingScheme(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Schemes, "urgent")
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() = nil, want error for missing required scheme")
	}
}

func TestLayoutIndexFindsConfiguredLayout(t *testing.T) {
	cfg := DefaultConfig()
	idx := cfg.LayoutIndex(cfg.Layouts[0].Name)
	if idx != 0 {
		t.Fatalf("LayoutIndex(%q) = %d, want 0", cfg.Layouts[0].Name, idx)
	}
	if cfg.LayoutIndex("does-not-exist") != -1 {
		t.Fatalf("LayoutIndex(unknown) != -1")
	}
}

func TestGetLoggingConfigAppliesDefaults(t *testing.T) {
	var cfg *Config
	lc := cfg.GetLoggingConfig()
	if lc.Level != "info" || lc.Format != "text" {
		t.Fatalf("GetLoggingConfig() on nil = %+v, want info/text defaults", lc)
	}
}
