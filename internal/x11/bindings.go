package x11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/gowm/internal/config"
	"github.com/1broseidon/gowm/internal/wm"
)

// ResolveKeyBindings turns the configured mod/key/command strings into the
// wm.KeyBinding table Setup grabs. Mod and Key are joined into a single
// xgbutil binding string ("Mod4-Shift-t") and handed to keybind.ParseString,
// the same parser xgbutil's own Connect uses internally, so this backend
// accepts exactly the modifier/keysym name spelling xgbutil documents.
func ResolveKeyBindings(xu *xgbutil.XUtil, cfgs []config.KeyBindingConfig) ([]wm.KeyBinding, error) {
	out := make([]wm.KeyBinding, 0, len(cfgs))
	for _, kb := range cfgs {
		seq := kb.Key
		if kb.Mod != "" {
			seq = kb.Mod + "-" + kb.Key
		}
		mods, keyStr, err := keybind.ParseString(xu, seq)
		if err != nil {
			return nil, fmt.Errorf("x11: key binding %q: %w", seq, err)
		}
		keysyms := keybind.StrToKeysyms(xu, keyStr)
		if len(keysyms) == 0 {
			return nil, fmt.Errorf("x11: key binding %q: unknown keysym %q", seq, keyStr)
		}

		cmd, arg, err := resolveCommand(kb.Command, kb.Arg)
		if err != nil {
			return nil, fmt.Errorf("x11: key binding %q: %w", seq, err)
		}

		out = append(out, wm.KeyBinding{
			Mod: mods, Keysym: uint32(keysyms[0]), Cmd: cmd, Arg: arg,
		})
	}
	return out, nil
}

// ResolveMouseBindings turns the configured click/mod/button/command
// entries into the wm.MouseClickBinding table. Unlike key bindings a mouse
// spec has no trailing key token for keybind.ParseString to split on, so
// the modifier string is parsed directly here.
func ResolveMouseBindings(cfgs []config.MouseBindingConfig) ([]wm.MouseClickBinding, error) {
	out := make([]wm.MouseClickBinding, 0, len(cfgs))
	for _, mb := range cfgs {
		click, err := parseClickArea(mb.Click)
		if err != nil {
			return nil, err
		}
		mod, err := parseModString(mb.Mod)
		if err != nil {
			return nil, fmt.Errorf("x11: mouse binding %q: %w", mb.Click, err)
		}
		cmd, arg, err := resolveCommand(mb.Command, mb.Arg)
		if err != nil {
			return nil, fmt.Errorf("x11: mouse binding %q: %w", mb.Click, err)
		}
		out = append(out, wm.MouseClickBinding{
			Click: click, Mod: mod, Button: uint8(mb.Button), Cmd: cmd, Arg: arg,
		})
	}
	return out, nil
}

// resolveCommand looks a configured command name up in the wm command
// registry and converts its argument string: `spawn` tokenizes Arg into an
// argv and closes over it directly (spec.md §6's "spawn carries a shell
// command line" convention); every other command parses Arg as a decimal
// int, defaulting to 0 when empty.
func resolveCommand(name, arg string) (func(co *wm.Core, arg int), int, error) {
	if name == "spawn" {
		argv := tokenizeArgs(arg)
		if len(argv) == 0 {
			return nil, 0, fmt.Errorf("spawn binding has no command")
		}
		return wm.MakeSpawnCommand(argv), 0, nil
	}

	cmd, ok := wm.LookupCommand(name)
	if !ok {
		return nil, 0, fmt.Errorf("unknown command %q", name)
	}
	if arg == "" {
		return cmd, 0, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, 0, fmt.Errorf("command %q: bad argument %q: %w", name, arg, err)
	}
	return cmd, n, nil
}

func parseClickArea(s string) (wm.ClickArea, error) {
	switch s {
	case "root":
		return wm.ClickRootWin, nil
	case "client":
		return wm.ClickClientWin, nil
	case "tagbar":
		return wm.ClickTagbar, nil
	case "layout_symbol":
		return wm.ClickLayoutSymbol, nil
	case "status_text":
		return wm.ClickStatusText, nil
	case "win_title":
		return wm.ClickWinTitle, nil
	case "clientbar_tab":
		return wm.ClickClientbarTab, nil
	default:
		return 0, fmt.Errorf("x11: unknown click area %q", s)
	}
}

// parseModString parses a dash-joined modifier name list ("Mod4-Shift")
// into an X11 modifier mask. Token spelling follows the xgbutil/keybind
// convention keybind.ParseString uses for the modifier half of a full key
// sequence, reimplemented here because that function requires a trailing
// key token a pure modifier spec doesn't have.
func parseModString(s string) (uint16, error) {
	if s == "" {
		return 0, nil
	}
	var mask uint16
	for _, tok := range strings.Split(s, "-") {
		switch strings.ToLower(tok) {
		case "shift":
			mask |= xproto.ModMaskShift
		case "lock":
			mask |= xproto.ModMaskLock
		case "control", "ctrl":
			mask |= xproto.ModMaskControl
		case "mod1", "alt":
			mask |= xproto.ModMask1
		case "mod2":
			mask |= xproto.ModMask2
		case "mod3":
			mask |= xproto.ModMask3
		case "mod4", "super", "win":
			mask |= xproto.ModMask4
		case "mod5":
			mask |= xproto.ModMask5
		default:
			return 0, fmt.Errorf("unknown modifier %q", tok)
		}
	}
	return mask, nil
}

// tokenizeArgs splits a spawn binding's argument string into an argv,
// honoring single and double quotes so spawned commands can carry
// arguments containing spaces ("spawn" `dmenu_run -p "run:"`).
func tokenizeArgs(s string) []string {
	var out []string
	var cur strings.Builder
	var quote rune
	inField := false

	flush := func() {
		if inField {
			out = append(out, cur.String())
			cur.Reset()
			inField = false
		}
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inField = true
		case r == ' ' || r == '\t':
			flush()
		default:
			inField = true
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
