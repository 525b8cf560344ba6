// Command gowm is a dynamic tiling window manager for X11 in the dwm
// tradition: tag-based virtual desktops, a master/stack tiling layout, and
// a configuration file instead of a source-level patch.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/gowm/internal/config"
	"github.com/1broseidon/gowm/internal/wm"
	"github.com/1broseidon/gowm/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		runWM()
		return
	}

	switch os.Args[1] {
	case "run":
		runWM()
	case "config":
		if err := runConfig(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [run|config validate|config print]\n", os.Args[0])
		os.Exit(1)
	}
}

func runConfig(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: gowm config validate|print")
	}
	res, err := config.LoadWithSources()
	if err != nil {
		return err
	}
	switch args[0] {
	case "validate":
		fmt.Println("config OK")
		return nil
	case "print":
		data, err := yaml.Marshal(res.Config)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown config subcommand %q", args[0])
	}
}

func runWM() {
	res, err := config.LoadWithSources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gowm: config: %v\n", err)
		os.Exit(1)
	}
	cfg := res.Config

	logger := newLogger(cfg.GetLoggingConfig())

	if cfg.Display != "" {
		os.Setenv("DISPLAY", cfg.Display)
	}
	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}

	schemes, err := x11.ResolveSchemes(cfg.Schemes)
	if err != nil {
		logger.Error("resolve schemes", "err", err)
		os.Exit(1)
	}

	backend := x11.New(x11.Options{Font: cfg.Font, Schemes: schemes})
	if err := backend.Open(); err != nil {
		logger.Error("open display", "err", err)
		os.Exit(1)
	}

	keys, err := x11.ResolveKeyBindings(backend.XUtil, cfg.Keys)
	if err != nil {
		logger.Error("resolve key bindings", "err", err)
		os.Exit(1)
	}
	mouse, err := x11.ResolveMouseBindings(cfg.Mouse)
	if err != nil {
		logger.Error("resolve mouse bindings", "err", err)
		os.Exit(1)
	}
	layouts, err := x11.ResolveLayouts(cfg.Layouts)
	if err != nil {
		logger.Error("resolve layouts", "err", err)
		os.Exit(1)
	}
	defaults, err := x11.BuildMonitorDefaults(cfg, layouts)
	if err != nil {
		logger.Error("resolve default layouts", "err", err)
		os.Exit(1)
	}
	rules := x11.ResolveRules(cfg.Rules)

	var tagLabels [wm.NumTags]string
	for i := 0; i < wm.NumTags; i++ {
		tagLabels[i] = cfg.Tags[i]
	}

	env := wm.Env{
		BarH:              backend.BarHeight(),
		TagsOnTop:         cfg.TagsOnTop,
		HideBuriedWindows: cfg.HideBuriedWindows,
		TagLabels:         tagLabels,
		HideInactiveTags:  cfg.HideInactiveTags,
		ViewTagToggles:    cfg.ViewTagToggles,
		ResizeHints:       cfg.ResizeHints,
		Border:            cfg.BorderWidth,
		FloatingBorder:    cfg.FloatingBorderWidth,
		IgnoreModMask:     backend.IgnoreModMask(),
		SchemeLookup:      func(name wm.SchemeName) wm.ColorScheme { return schemes[name] },
	}

	core := wm.Setup(backend, env, defaults, rules, keys, mouse)
	core.Log = logger

	logger.Info("gowm started", "monitors", countMonitors(core), "keys", len(keys), "mouse", len(mouse))

	for core.Running {
		ev, err := backend.NextEvent()
		if err != nil {
			logger.Warn("next event", "err", err)
			break
		}
		core.Dispatch(ev)
	}

	core.Cleanup()
}

func countMonitors(co *wm.Core) int {
	n := 0
	for m := co.Monitors; m != nil; m = m.Next {
		n++
	}
	return n
}

func newLogger(lc config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := os.Stderr
	if lc.File != "" {
		if f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return slog.New(newHandler(f, lc.Format, level))
		}
	}
	return slog.New(newHandler(out, lc.Format, level))
}

func newHandler(w *os.File, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
