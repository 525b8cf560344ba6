package wm

// This file is the command surface of spec.md §4.I / §6 "Command surface":
// the functions bound to key and mouse bindings. Each mutates only Core/
// Monitor/Client state and then calls Arrange, which redraws both bars as
// its last step, never touching the backend directly except through the
// usual helpers in focus.go and manage.go.

// SetLayout implements `set_layout`: select layout index idx (or toggle
// back to the previous one when idx < 0, mirroring the deck/tile toggle
// bound to the same key in most dwm-family configs).
func SetLayout(m *Monitor, idx int) {
	if idx < 0 || idx >= len(m.layouts) {
		m.SelectedLayout ^= 1
	} else {
		m.layout[m.SelectedLayout] = m.layouts[idx]
	}
	m.LayoutSymbol = m.ActiveLayout().Symbol
	if m.Sel != nil {
		Arrange(m)
	}
}

// AdjustMarkedWidth implements `adjust_marked_width`: nudge the master
// fraction by delta, clamped to [0.05, 0.95].
func AdjustMarkedWidth(m *Monitor, delta float64) {
	SetMarkedWidth(m, m.MarkedWidth+delta)
}

// SetMarkedWidth implements `set_marked_width`: set the master fraction
// to an absolute value, clamped to [0.05, 0.95].
func SetMarkedWidth(m *Monitor, width float64) {
	if width < 0.05 {
		width = 0.05
	}
	if width > 0.95 {
		width = 0.95
	}
	m.MarkedWidth = width
	Arrange(m)
}

// CycleFocus implements `cycle_focus`: move Sel to the next (or, if
// !forward, previous) tag-visible, non-minimized client in order-list
// order, wrapping around.
func CycleFocus(m *Monitor, forward bool) {
	if m.Sel == nil {
		return
	}
	var candidates []*Client
	for c := m.clients; c != nil; c = c.next {
		if c.TagVisible() && !c.Minimized {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return
	}
	cur := -1
	for i, c := range candidates {
		if c == m.Sel {
			cur = i
			break
		}
	}
	var next int
	if cur < 0 {
		next = 0
	} else if forward {
		next = (cur + 1) % len(candidates)
	} else {
		next = ((cur-1)%len(candidates) + len(candidates)) % len(candidates)
	}
	Focus(candidates[next], m)
	Restack(m)
}

// CycleStackareaSelection implements `cycle_stackarea_selection`: like
// CycleFocus but restricted to the stack column (clients past
// NumMarkedWin in order-list order), used to move the deck/monocle
// "onscreen" pick without disturbing the master column.
func CycleStackareaSelection(m *Monitor, forward bool) {
	clients := tiledClients(m)
	if len(clients) <= m.NumMarkedWin {
		return
	}
	stack := clients[m.NumMarkedWin:]
	cur := -1
	for i, c := range stack {
		if c == m.Sel {
			cur = i
			break
		}
	}
	var next int
	if cur < 0 {
		next = 0
	} else if forward {
		next = (cur + 1) % len(stack)
	} else {
		next = ((cur-1)%len(stack) + len(stack)) % len(stack)
	}
	Focus(stack[next], m)
}

// PushClientLeft implements `push_client_left`.
func PushClientLeft(m *Monitor) {
	if m.Sel == nil {
		return
	}
	m.pushLeft(m.Sel)
	Arrange(m)
}

// PushClientRight implements `push_client_right`.
func PushClientRight(m *Monitor) {
	if m.Sel == nil {
		return
	}
	m.pushRight(m.Sel)
	Arrange(m)
}

// FocusClient implements `focus_client`: focus the n-th tag-visible,
// non-minimized client in order-list order (0-based); out-of-range is a
// no-op.
func FocusClient(m *Monitor, n int) {
	i := 0
	for c := m.clients; c != nil; c = c.next {
		if !c.TagVisible() || c.Minimized {
			continue
		}
		if i == n {
			Focus(c, m)
			Restack(m)
			return
		}
		i++
	}
}

// ToggleFloating implements `toggle_floating`: flip Sel's floating bit,
// refusing fixed-size clients (they are always floating) and fullscreen
// clients (floating state is driven by SetFullscreen while fullscreen).
func ToggleFloating(c *Client) {
	if c == nil || c.Fullscreen {
		return
	}
	c.Floating = !c.Floating || c.IsFixed
	if c.Floating {
		c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	} else {
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
	}
	c.Border = globalEnv.BorderWidthFor(c.Floating)
	globalEnv.Backend.ConfigureBorder(c.Window, c.Border)
	Arrange(c.Mon)
}

// ToggleMark implements `toggle_mark`: flip Sel's marked bit, adjusting
// NumMarkedWin and its list position to keep the attach invariant (spec.md
// §4.B three-band order) intact.
func ToggleMark(c *Client) {
	if c == nil {
		return
	}
	m := c.Mon
	c.Marked = !c.Marked
	if c.Marked {
		m.NumMarkedWin++
	} else {
		m.NumMarkedWin = maxInt(0, m.NumMarkedWin-1)
	}
	m.detach(c)
	m.attach(c)
	Arrange(m)
}

// HideWindow implements `hide_window`: minimize Sel, reassigning Sel to
// the next eligible stack entry.
func HideWindow(c *Client) {
	if c == nil {
		return
	}
	m := c.Mon
	c.Minimized = true
	c.Onscreen = false
	if m.Sel == c {
		m.Sel = nil
		for s := m.stack; s != nil; s = s.snext {
			if s.TagVisible() && !s.Minimized {
				m.Sel = s
				break
			}
		}
	}
	Focus(m.Sel, m)
	Arrange(m)
}

// ToggleHidden implements `toggle_hidden`: restore the n-th minimized
// client on m (by order-list order among minimized clients), focusing it.
func ToggleHidden(m *Monitor, n int) {
	i := 0
	for c := m.clients; c != nil; c = c.next {
		if !c.Minimized {
			continue
		}
		if i == n {
			c.Minimized = false
			Focus(c, m)
			Arrange(m)
			return
		}
		i++
	}
}

// KillClient implements `kill_client`: politely request a delete via
// WM_DELETE_WINDOW if supported, else forcibly kill the X client.
func KillClient(c *Client) {
	if c == nil {
		return
	}
	if _, supportsDelete := globalEnv.Backend.GetWMProtocols(c.Window); supportsDelete {
		globalEnv.Backend.SendDeleteWindow(c.Window)
		return
	}
	globalEnv.Backend.GrabServer()
	defer globalEnv.Backend.UngrabServer()
	globalEnv.Backend.KillClient(c.Window)
}

// ToggleTagbar implements `toggle_tagbar`.
func ToggleTagbar(m *Monitor) {
	m.ShowTagbar = !m.ShowTagbar
	Arrange(m)
}

// SetClientbarMode implements `set_clientbar_mode`: mode < 0 cycles to the
// next mode in ClientbarNever→Auto→Always→Never order; mode >= 0 sets it
// directly when it names a valid ClientbarMode.
func SetClientbarMode(m *Monitor, mode int) {
	if mode < 0 {
		m.ClientbarMode = (m.ClientbarMode + 1) % 3
	} else if mode <= int(ClientbarAlways) {
		m.ClientbarMode = ClientbarMode(mode)
	}
	Arrange(m)
}

// CycleFocusMonitor implements `cycle_focus_monitor`: move Selmon to the
// next (or previous) monitor in registry order, wrapping, and re-focus.
func CycleFocusMonitor(co *Core, forward bool) {
	var list []*Monitor
	for m := co.Monitors; m != nil; m = m.Next {
		list = append(list, m)
	}
	if len(list) < 2 {
		return
	}
	cur := 0
	for i, m := range list {
		if m == co.Selmon {
			cur = i
			break
		}
	}
	var next int
	if forward {
		next = (cur + 1) % len(list)
	} else {
		next = ((cur-1)%len(list) + len(list)) % len(list)
	}
	Unfocus(co.Selmon.Sel, true)
	co.Selmon = list[next]
	Focus(nil, co.Selmon)
}

// SendToMonitor implements `send_to_monitor`: move Sel to the next (or
// previous) monitor in registry order.
func SendToMonitor(co *Core, forward bool) {
	if co.Selmon.Sel == nil {
		return
	}
	var list []*Monitor
	for m := co.Monitors; m != nil; m = m.Next {
		list = append(list, m)
	}
	if len(list) < 2 {
		return
	}
	cur := 0
	for i, m := range list {
		if m == co.Selmon {
			cur = i
			break
		}
	}
	var next int
	if forward {
		next = (cur + 1) % len(list)
	} else {
		next = ((cur-1)%len(list) + len(list)) % len(list)
	}
	SendClientToMonitor(co.Selmon.Sel, list[next])
}

// DragWindowCmd adapts DragWindow to the (*Core, int) command signature
// key/mouse bindings use, passing the binding's own argument as the snap
// distance in pixels. The snap_distance config value is not read here; a
// binding without an argument drags with snapping off.
func DragWindowCmd(co *Core, snap int) {
	if co.Selmon.Sel != nil {
		DragWindow(co, co.Selmon.Sel, snap)
	}
}

// ResizeWithMouseCmd adapts ResizeWithMouse to the (*Core, int) command
// signature; arg is unused.
func ResizeWithMouseCmd(co *Core, _ int) {
	if co.Selmon.Sel != nil {
		ResizeWithMouse(co, co.Selmon.Sel)
	}
}

// Spawn implements `spawn`: fork-and-exec argv through the backend, which
// owns the fork/closed-fd/session-detach discipline (spec.md §5 resources).
func Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	globalEnv.Backend.Spawn(argv)
}

// Quit implements `quit`: flip the running flag; the main loop observes it
// after the current event handler returns and begins cleanup.
func Quit(co *Core) {
	co.Running = false
}
