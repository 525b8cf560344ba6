package config

import "strconv"

// BuiltinLayouts returns the default ordered layout list: tiled master-
// stack, deck (monocle-with-stack-count), monocle, and a floating
// pass-through, in the order dwm-family window managers conventionally
// cycle through them with set_layout.
func BuiltinLayouts() []LayoutConfig {
	return []LayoutConfig{
		{Name: "tile", Symbol: "[]=", Kind: "tile"},
		{Name: "deck", Symbol: "[D]", Kind: "deck"},
		{Name: "monocle", Symbol: "[M]", Kind: "monocle"},
		{Name: "floating", Symbol: "><>", Kind: "floating"},
	}
}

// DefaultKeys returns a dwm-like binding set under Mod4 (the "super" key):
// Mod4+1..9 view a tag, Mod4+Shift+1..9 tag the selected client, Mod4+j/k
// cycle focus, Mod4+h/l adjust the master fraction, Mod4+Return spawns a
// terminal, Mod4+Shift+c kills the selected client, Mod4+Shift+q quits.
func DefaultKeys() []KeyBindingConfig {
	keys := []KeyBindingConfig{
		{Mod: "Mod4", Key: "b", Command: "toggle_tagbar"},
		{Mod: "Mod4", Key: "j", Command: "cycle_focus", Arg: "1"},
		{Mod: "Mod4", Key: "k", Command: "cycle_focus", Arg: "-1"},
		{Mod: "Mod4", Key: "h", Command: "adjust_marked_width", Arg: "-50"},
		{Mod: "Mod4", Key: "l", Command: "adjust_marked_width", Arg: "50"},
		{Mod: "Mod4", Key: "Return", Command: "spawn", Arg: "xterm"},
		{Mod: "Mod4", Key: "space", Command: "set_layout", Arg: "-1"},
		{Mod: "Mod4", Key: "t", Command: "toggle_floating"},
		{Mod: "Mod4", Key: "f", Command: "toggle_fullscreen"},
		{Mod: "Mod4", Key: "m", Command: "toggle_mark"},
		{Mod: "Mod4", Key: "n", Command: "hide_window"},
		{Mod: "Mod4-Shift", Key: "c", Command: "kill_client"},
		{Mod: "Mod4-Shift", Key: "q", Command: "quit"},
		{Mod: "Mod4", Key: "period", Command: "cycle_focus_monitor", Arg: "1"},
		{Mod: "Mod4", Key: "comma", Command: "cycle_focus_monitor", Arg: "-1"},
		{Mod: "Mod4-Shift", Key: "period", Command: "send_to_monitor", Arg: "1"},
		{Mod: "Mod4-Shift", Key: "comma", Command: "send_to_monitor", Arg: "-1"},
		{Mod: "Mod4", Key: "0", Command: "view_tag", Arg: "511"},
		{Mod: "Mod4-Shift", Key: "0", Command: "tag_client", Arg: "511"},
	}
	digits := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for i, d := range digits {
		bit := 1 << uint(i)
		keys = append(keys,
			KeyBindingConfig{Mod: "Mod4", Key: d, Command: "view_tag", Arg: strconv.Itoa(bit)},
			KeyBindingConfig{Mod: "Mod4-Control", Key: d, Command: "toggle_tag_view", Arg: strconv.Itoa(bit)},
			KeyBindingConfig{Mod: "Mod4-Shift", Key: d, Command: "tag_client", Arg: strconv.Itoa(bit)},
			KeyBindingConfig{Mod: "Mod4-Control-Shift", Key: d, Command: "toggle_tag", Arg: strconv.Itoa(bit)},
		)
	}
	return keys
}

// DefaultMouse returns the conventional floating-window drag/resize mouse
// bindings plus tagbar click-to-view.
func DefaultMouse() []MouseBindingConfig {
	return []MouseBindingConfig{
		{Click: "client", Mod: "Mod4", Button: 1, Command: "drag_window"},
		{Click: "client", Mod: "Mod4", Button: 3, Command: "resize_with_mouse"},
		{Click: "tagbar", Mod: "", Button: 1, Command: "view_tag"},
		{Click: "tagbar", Mod: "", Button: 3, Command: "toggle_tag_view"},
	}
}
