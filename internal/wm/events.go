package wm

// Dispatch implements spec.md §4.H: the single dispatch table, invoked
// once per event read from the backend's blocking NextEvent. It is the
// only place that type-switches on Event; every case delegates to a small
// handler below so Dispatch itself stays a flat routing table.
func (co *Core) Dispatch(ev Event) {
	switch e := ev.(type) {
	case ButtonPressEvent:
		co.onButtonPress(e)
	case ClientMessageEvent:
		co.onClientMessage(e)
	case ConfigureRequestEvent:
		co.onConfigureRequest(e)
	case ConfigureNotifyEvent:
		co.onConfigureNotify(e)
	case DestroyNotifyEvent:
		co.onDestroyNotify(e)
	case UnmapNotifyEvent:
		co.onUnmapNotify(e)
	case EnterNotifyEvent:
		co.onEnterNotify(e)
	case ExposeEvent:
		co.onExpose(e)
	case FocusInEvent:
		co.onFocusIn(e)
	case KeyPressEvent:
		co.onKeyPress(e)
	case MappingNotifyEvent:
		co.onMappingNotify(e)
	case MapRequestEvent:
		co.onMapRequest(e)
	case MotionNotifyEvent:
		co.onMotionNotify(e)
	case PropertyNotifyEvent:
		co.onPropertyNotify(e)
	}
}

func (co *Core) onButtonPress(e ButtonPressEvent) {
	click, tagIdx, tabIdx := co.classifyClick(e)

	if m := co.monitorOwning(e.Window); m != nil && m != co.Selmon {
		Unfocus(co.Selmon.Sel, true)
		co.Selmon = m
		Focus(nil, m)
	}

	if c := co.ClientFor(e.Window); click == ClickClientWin && c != nil {
		Focus(c, c.Mon)
		Restack(c.Mon)
	}

	for _, b := range co.MouseBindings {
		if b.Click != click || b.Button != e.Button || b.Mod != cleanMask(e.Mod) {
			continue
		}
		arg := b.Arg
		if arg == 0 {
			switch click {
			case ClickTagbar:
				arg = 1 << uint(tagIdx)
			case ClickClientbarTab:
				arg = tabIdx
			}
		}
		b.Cmd(co, arg)
	}
}

// classifyClick resolves a ButtonPress into the click region spec.md §4.H
// describes ("inspecting the event window and x-coordinate against
// monitor bar geometry"), plus the tag/tab index a tagbar/clientbar click
// resolves to (used by ButtonPress when a binding's Arg is 0).
func (co *Core) classifyClick(e ButtonPressEvent) (click ClickArea, tagIdx, tabIdx int) {
	m := co.monitorOwning(e.Window)
	if m == nil {
		return ClickRootWin, 0, 0
	}
	if e.Window == m.TagbarWin {
		return co.classifyTagbarClick(m, e.RootX)
	}
	if e.Window == m.ClientbarWin {
		return co.classifyClientbarClick(m, e.RootX)
	}
	if co.ClientFor(e.Window) != nil {
		return ClickClientWin, 0, 0
	}
	return ClickRootWin, 0, 0
}

func (co *Core) classifyTagbarClick(m *Monitor, x int) (ClickArea, int, int) {
	model := ComputeTagbar(m, co.Env.TagLabels, co.Env.HideInactiveTags, co.statusText)
	cx := 0
	for _, t := range model.Tags {
		w := co.Env.Backend.TextWidth(t.Label) + 16
		if x >= cx && x < cx+w {
			return ClickTagbar, t.Index, 0
		}
		cx += w
	}
	symW := co.Env.Backend.TextWidth(model.LayoutSymbol) + 16
	if x >= cx && x < cx+symW {
		return ClickLayoutSymbol, 0, 0
	}
	return ClickStatusText, 0, 0
}

func (co *Core) classifyClientbarClick(m *Monitor, x int) (ClickArea, int, int) {
	viewinfo := co.Env.Backend.TextWidth(m.LayoutSymbol) + 16
	model := ComputeClientbar(m, co.Env.Backend.TextWidth, m.WW, viewinfo)
	cx := viewinfo
	for i, tab := range model.Tabs {
		if x >= cx && x < cx+tab.Width {
			return ClickClientbarTab, 0, i
		}
		cx += tab.Width
	}
	return ClickWinTitle, 0, 0
}

func (co *Core) monitorOwning(w WindowID) *Monitor {
	for m := co.Monitors; m != nil; m = m.Next {
		if w == m.TagbarWin || w == m.ClientbarWin {
			return m
		}
	}
	if c := co.ClientFor(w); c != nil {
		return c.Mon
	}
	return nil
}

const (
	netWMStateRemove = 0
	netWMStateAdd    = 1
	netWMStateToggle = 2
)

func (co *Core) onClientMessage(e ClientMessageEvent) {
	c := co.ClientFor(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case "_NET_WM_STATE":
		for _, v := range e.Data[1:3] {
			if v != 0 {
				co.applyWMStateFullscreen(c, e.Data[0])
			}
		}
	case "_NET_ACTIVE_WINDOW":
		if c != co.Selmon.Sel && !c.Urgent {
			co.seekTo(c)
		}
	}
}

func (co *Core) applyWMStateFullscreen(c *Client, action uint32) {
	switch action {
	case netWMStateAdd:
		SetFullscreen(c, true)
	case netWMStateRemove:
		SetFullscreen(c, false)
	case netWMStateToggle:
		ToggleFullscreen(c)
	}
}

// seekTo implements the _NET_ACTIVE_WINDOW side of ClientMessage: select
// whichever tag contains c (toggling into view if needed) and pop it to
// the top of the focus-stack.
func (co *Core) seekTo(c *Client) {
	m := c.Mon
	if !c.TagVisible() {
		ToggleTagView(m, c.Tags, co.viewTagToggles())
	}
	Focus(c, m)
}

func (co *Core) viewTagToggles() bool { return co.Env.ViewTagToggles }

func (co *Core) onConfigureRequest(e ConfigureRequestEvent) {
	c := co.ClientFor(e.Window)
	if c == nil {
		globalEnv.Backend.MoveResize(e.Window, e.X, e.Y, e.W, e.H)
		return
	}
	m := c.Mon
	if c.Floating || m.ActiveLayout().Arrange == nil {
		x, y, w, h := e.X, e.Y, e.W, e.H
		if x+w > m.MX+m.MW {
			x = m.MX + (m.MW-w)/2
		}
		if y+h > m.MY+m.MH {
			y = m.MY + (m.MH-h)/2
		}
		nx, ny, nw, nh, changed := ApplyGeometry(c, x, y, w, h, false, ScreenRect{m.MX, m.MY, m.MW, m.MH}, ResizeHints{BarH: globalEnv.BarH}, false, false)
		c.X, c.Y, c.W, c.H = nx, ny, nw, nh
		if changed {
			globalEnv.Backend.MoveResize(c.Window, nx, ny, nw, nh)
		}
	} else {
		c.Border = e.Border
		globalEnv.Backend.ConfigureBorder(c.Window, c.Border)
	}
}

func (co *Core) onConfigureNotify(e ConfigureNotifyEvent) {
	if !e.IsRoot {
		return
	}
	co.ReconcileMonitors()
	ArrangeAll(co.Monitors)
}

func (co *Core) onDestroyNotify(e DestroyNotifyEvent) {
	if c := co.ClientFor(e.Window); c != nil {
		co.Unmanage(c, true)
	}
}

func (co *Core) onUnmapNotify(e UnmapNotifyEvent) {
	if c := co.ClientFor(e.Window); c != nil {
		co.Unmanage(c, e.Synthetic)
	}
}

func (co *Core) onEnterNotify(e EnterNotifyEvent) {
	m := co.monitorOwning(e.Window)
	if m == nil {
		m = co.MonitorAt(e.RootX, e.RootY)
	}
	if m != co.Selmon {
		Unfocus(co.Selmon.Sel, true)
		co.Selmon = m
	}
	c := co.ClientFor(e.Window)
	if c == nil || c == co.Selmon.Sel {
		return
	}
	Focus(c, m)
}

func (co *Core) onExpose(e ExposeEvent) {
	m := co.monitorOwning(e.Window)
	if m != nil {
		drawBar(co, m)
	}
}

func (co *Core) onFocusIn(e FocusInEvent) {
	if co.Selmon.Sel != nil && e.Window != co.Selmon.Sel.Window {
		globalEnv.Backend.SetInputFocus(co.Selmon.Sel.Window)
	}
}

func (co *Core) onKeyPress(e KeyPressEvent) {
	mod := cleanMask(e.Mod)
	for _, b := range co.KeyBindings {
		if b.Keysym == e.Keysym && b.Mod == mod {
			b.Cmd(co, b.Arg)
		}
	}
}

func (co *Core) onMappingNotify(e MappingNotifyEvent) {
	globalEnv.Backend.UngrabAllKeys()
	for _, b := range co.KeyBindings {
		globalEnv.Backend.GrabKey(b.Mod, b.Keysym)
	}
}

func (co *Core) onMapRequest(e MapRequestEvent) {
	if co.ClientFor(e.Window) != nil {
		return
	}
	co.Manage(e.Window, WindowIdentity{}, Rect{}, 0, false)
}

func (co *Core) onMotionNotify(e MotionNotifyEvent) {
	m := co.MonitorAt(e.RootX, e.RootY)
	if m != co.Selmon {
		Unfocus(co.Selmon.Sel, true)
		co.Selmon = m
		Focus(nil, m)
	}
}

func (co *Core) onPropertyNotify(e PropertyNotifyEvent) {
	if e.Atom == "WM_NAME" {
		if m := co.monitorOwning(e.Window); m == nil {
			if name, ok := globalEnv.Backend.GetWMName(e.Window); ok {
				co.SetStatusText(name)
			}
			return
		}
	}

	c := co.ClientFor(e.Window)
	if c == nil {
		return
	}
	switch e.Atom {
	case "WM_NAME", "_NET_WM_NAME":
		if name, ok := globalEnv.Backend.GetWMName(e.Window); ok {
			c.Name = name
			drawBar(co, c.Mon)
		}
	case "WM_TRANSIENT_FOR":
		if _, ok := globalEnv.Backend.GetWMTransientFor(e.Window); ok {
			c.Floating = true
			Arrange(c.Mon)
		}
	case "WM_NORMAL_HINTS":
		c.Hints = globalEnv.Backend.GetWMNormalHints(e.Window)
		c.deriveIsFixed()
	case "WM_HINTS":
		c.Urgent, c.NeverFocus = globalEnv.Backend.GetWMHints(e.Window)
		drawBar(co, c.Mon)
	case "_NET_WM_WINDOW_TYPE":
		dialog, fullscreen := globalEnv.Backend.GetWindowType(e.Window)
		if dialog {
			c.Floating = true
		}
		if fullscreen && !c.Fullscreen {
			SetFullscreen(c, true)
		}
	}
}

// cleanMask strips lock/numlock-class modifiers the backend doesn't
// already filter, so bindings compare against a canonical mask (spec.md
// §4.H "cleaned-mask"). internal/x11 computes the live combination of
// Lock/Mod2/ScrollLock keysym-to-mask bindings at grab time (the actual
// NumLock and ScrollLock modifiers vary by keyboard mapping) and installs
// it into Env.IgnoreModMask; the conventional Lock|Mod2 bits below are
// only the fallback used when no such mask has been installed (tests,
// or a backend that never set one).
func cleanMask(mod uint16) uint16 {
	ignored := globalEnv.IgnoreModMask
	if ignored == 0 {
		ignored = 1<<1 | 1<<4 // Lock and Mod2, conventional X masks
	}
	return mod &^ ignored
}
