package wm

import "log/slog"

// Core is the single mutable registry spec.md §9's design note calls for:
// the monitor list, the selected monitor, the running flag and the status
// text every command and event handler closes over. Everything else in
// this package is either a pure function of a *Monitor/*Client or reads
// Core through the methods below, so tests can construct a Core around a
// fake DisplayBackend. NewCore still installs env into the package-level
// globalEnv (SetEnv), which the free functions in this package read.
type Core struct {
	Monitors *Monitor
	Selmon   *Monitor
	Running  bool

	Env Env
	Log *slog.Logger

	Rules         []Rule
	KeyBindings   []KeyBinding
	MouseBindings []MouseClickBinding

	statusText string
}

// KeyBinding is one configured `(modifier mask, keysym, command,
// argument)` entry (spec.md §6 "Key bindings"). Cmd receives the core and
// the configured argument and is invoked directly by events.go's KeyPress
// handler; it closes over whichever commands.go function the binding
// names.
type KeyBinding struct {
	Mod    uint16
	Keysym uint32
	Cmd    func(co *Core, arg int)
	Arg    int
}

// MouseClickBinding is one configured `(click region, modifier mask,
// button, command, argument)` entry (spec.md §6 "Mouse bindings"). A zero
// Arg with Click in {ClickTagbar, ClickClientbarTab} tells ButtonPress to
// substitute the resolved tag/tab index instead (spec.md §4.H).
type MouseClickBinding struct {
	Click  ClickArea
	Mod    uint16
	Button uint8
	Cmd    func(co *Core, arg int)
	Arg    int
}

// NewCore wires env (backend, bar height, layout geometry) and the
// configured rule/key/mouse binding tables into a fresh, not-yet-started
// Core.
func NewCore(env Env, rules []Rule, keys []KeyBinding, mouse []MouseClickBinding, logger *slog.Logger) *Core {
	if logger == nil {
		logger = slog.Default()
	}
	SetEnv(env)
	return &Core{
		Env: env, Rules: rules, KeyBindings: keys, MouseBindings: mouse,
		Log: logger, Running: true,
	}
}

// AddMonitor appends m to the registry's tail, matching dwm's append-only
// monitor list order (new heads attach after the highest existing ID).
func (co *Core) AddMonitor(m *Monitor) {
	if co.Monitors == nil {
		co.Monitors = m
	} else {
		tail := co.Monitors
		for tail.Next != nil {
			tail = tail.Next
		}
		tail.Next = m
	}
	if co.Selmon == nil {
		co.Selmon = m
	}
}

// RemoveMonitor unlinks m, reassigning its clients to the new head monitor
// (spec.md §4.C cleanup rule) and updating Selmon if it pointed at m.
func (co *Core) RemoveMonitor(m *Monitor) {
	if co.Monitors == m {
		co.Monitors = m.Next
	} else {
		for p := co.Monitors; p != nil; p = p.Next {
			if p.Next == m {
				p.Next = m.Next
				break
			}
		}
	}
	if co.Monitors != nil {
		for c := m.clients; c != nil; {
			next := c.next
			SendClientToMonitor(c, co.Monitors)
			c = next
		}
	}
	if co.Selmon == m {
		co.Selmon = co.Monitors
	}
}

// MonitorAt returns the registry entry whose full geometry contains (x, y),
// falling back to Selmon when no monitor claims the point (spec.md §4.C
// recttomon for a point).
func (co *Core) MonitorAt(x, y int) *Monitor {
	for m := co.Monitors; m != nil; m = m.Next {
		if x >= m.MX && x < m.MX+m.MW && y >= m.MY && y < m.MY+m.MH {
			return m
		}
	}
	return co.Selmon
}

// RectToMonitor returns the registry entry with the largest overlap area
// against the rectangle (x, y, w, h), per spec.md §4.C recttomon.
func (co *Core) RectToMonitor(x, y, w, h int) *Monitor {
	best := co.Selmon
	bestArea := 0
	for m := co.Monitors; m != nil; m = m.Next {
		area := overlapArea(x, y, w, h, m.WX, m.WY, m.WW, m.WH)
		if area > bestArea {
			bestArea = area
			best = m
		}
	}
	return best
}

func overlapArea(ax, ay, aw, ah, bx, by, bw, bh int) int {
	ix := maxInt(0, minInt(ax+aw, bx+bw)-maxInt(ax, bx))
	iy := maxInt(0, minInt(ay+ah, by+bh)-maxInt(ay, by))
	return ix * iy
}

// ClientFor finds the managed client owning window w, searching every
// monitor's order-list.
func (co *Core) ClientFor(w WindowID) *Client {
	for m := co.Monitors; m != nil; m = m.Next {
		for c := m.clients; c != nil; c = c.next {
			if c.Window == w {
				return c
			}
		}
	}
	return nil
}

// StatusText returns the most recently set root WM_NAME status string
// (the EWMH-independent root-name status convention most dwm-family WMs
// use for a clickable statusline), as stored by SetStatusText.
func (co *Core) StatusText() string { return co.statusText }

// SetStatusText updates the status string and repaints every tag bar.
func (co *Core) SetStatusText(s string) {
	co.statusText = s
	globalStatusText = s
	for m := co.Monitors; m != nil; m = m.Next {
		drawBar(co, m)
	}
}

func drawBar(co *Core, m *Monitor) {
	RedrawBar(m)
}
