package wm

// commandTable maps spec.md §6 "Command surface" names to adapters over the
// native command functions in commands.go/tags.go/manage.go. internal/config
// stores only the name string (plus a mod/key/button spec and an argument
// string); internal/x11 resolves the mod/key strings into KeyBinding/
// MouseClickBinding values, parses the argument, and looks up Cmd here, so neither
// internal/config nor internal/x11 needs to know the native signature
// (*Monitor, *Client, float64, bool...) behind any one command.
//
// Argument convention: every bound command takes a single int. Tag-mask
// commands pass the raw bitmask. Direction-taking commands (cycle_view,
// shift_tag, cycle_focus, cycle_stackarea_selection, cycle_focus_monitor,
// send_to_monitor) treat arg < 0 as backward and arg >= 0 as forward.
// adjust_marked_width/set_marked_width take permille (1000ths) so a config
// value of 50 nudges or sets the master fraction by 0.05.
var commandTable = map[string]func(co *Core, arg int){
	"view_tag":         func(co *Core, arg int) { ViewTag(co.Selmon, co.viewTagMask(uint(arg))) },
	"toggle_tag_view":  func(co *Core, arg int) { ToggleTagView(co.Selmon, uint(arg), co.viewTagToggles()) },
	"cycle_view":       func(co *Core, arg int) { CycleView(co.Selmon, arg >= 0) },
	"shift_tag":        func(co *Core, arg int) { ShiftTag(co.Selmon, unitStep(arg)) },
	"tag_client":       func(co *Core, arg int) { TagClient(co.Selmon.Sel, uint(arg)) },
	"toggle_tag":       func(co *Core, arg int) { ToggleTag(co.Selmon.Sel, uint(arg)) },

	"set_layout":          func(co *Core, arg int) { SetLayout(co.Selmon, arg) },
	"adjust_marked_width": func(co *Core, arg int) { AdjustMarkedWidth(co.Selmon, float64(arg)/1000) },
	"set_marked_width":    func(co *Core, arg int) { SetMarkedWidth(co.Selmon, float64(arg)/1000) },

	"cycle_focus":               func(co *Core, arg int) { CycleFocus(co.Selmon, arg >= 0) },
	"cycle_stackarea_selection": func(co *Core, arg int) { CycleStackareaSelection(co.Selmon, arg >= 0) },
	"push_client_left":          func(co *Core, _ int) { PushClientLeft(co.Selmon) },
	"push_client_right":         func(co *Core, _ int) { PushClientRight(co.Selmon) },
	"focus_client":              func(co *Core, arg int) { FocusClient(co.Selmon, arg) },

	"toggle_floating":   func(co *Core, _ int) { ToggleFloating(co.Selmon.Sel) },
	"toggle_fullscreen": func(co *Core, _ int) { ToggleFullscreen(co.Selmon.Sel) },
	"toggle_mark":       func(co *Core, _ int) { ToggleMark(co.Selmon.Sel) },
	"hide_window":       func(co *Core, _ int) { HideWindow(co.Selmon.Sel) },
	"toggle_hidden":     func(co *Core, arg int) { ToggleHidden(co.Selmon, arg) },
	"kill_client":       func(co *Core, _ int) { KillClient(co.Selmon.Sel) },

	"toggle_tagbar":      func(co *Core, _ int) { ToggleTagbar(co.Selmon) },
	"set_clientbar_mode": func(co *Core, arg int) { SetClientbarMode(co.Selmon, arg) },

	"cycle_focus_monitor": func(co *Core, arg int) { CycleFocusMonitor(co, arg >= 0) },
	"send_to_monitor":     func(co *Core, arg int) { SendToMonitor(co, arg >= 0) },

	"drag_window":       DragWindowCmd,
	"resize_with_mouse": ResizeWithMouseCmd,

	"quit": func(co *Core, _ int) { Quit(co) },
}

// viewTagMask returns the mask the view_tag command passes to ViewTag: with
// view_tag_toggles set, asking for the view already shown yields 0, which
// ViewTag treats as "go back to the previous tagset".
func (co *Core) viewTagMask(tags uint) uint {
	if co.viewTagToggles() && tags&TagMask == co.Selmon.tagset[co.Selmon.SelectedTags] {
		return 0
	}
	return tags
}

// unitStep maps a direction argument onto one step: -1 for arg < 0, else +1.
func unitStep(arg int) int {
	if arg < 0 {
		return -1
	}
	return 1
}

// LookupCommand resolves a configured command name to its adapter.
func LookupCommand(name string) (func(co *Core, arg int), bool) {
	fn, ok := commandTable[name]
	return fn, ok
}

// CommandNames returns every registered command name, for config validation
// error messages ("unknown command %q, want one of %v").
func CommandNames() []string {
	names := make([]string, 0, len(commandTable))
	for name := range commandTable {
		names = append(names, name)
	}
	return names
}

// MakeSpawnCommand builds the adapter for a `spawn` binding. spawn carries
// an argv rather than an int argument, so it is constructed directly by the
// config/x11 layer that parsed the argv string instead of living in
// commandTable.
func MakeSpawnCommand(argv []string) func(co *Core, arg int) {
	return func(co *Core, _ int) { Spawn(argv) }
}
