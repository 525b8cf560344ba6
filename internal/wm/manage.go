package wm

// Manage implements spec.md §4.I manage(w): build a Client for a newly
// mapped (or scanned) window, apply rules, clamp its geometry onto the
// owning monitor, attach it to both lists, map it and, unless it came from
// the startup scan, focus it.
func (co *Core) Manage(w WindowID, id WindowIdentity, geom Rect, border int, wasScan bool) *Client {
	if co.ClientFor(w) != nil {
		return nil
	}

	c := &Client{
		Window: w,
		Name:   id.Title,
		X:      geom.X, Y: geom.Y, W: geom.Width, H: geom.Height,
		OldX: geom.X, OldY: geom.Y, OldW: geom.Width, OldH: geom.Height,
		OldBorder: border,
	}

	transientOf, isTransient := co.Env.Backend.GetWMTransientFor(w)
	var parent *Client
	if isTransient {
		parent = co.ClientFor(transientOf)
	}

	switch {
	case parent != nil:
		c.Mon = parent.Mon
		c.Tags = parent.Tags
	default:
		c.Mon = co.Selmon
		c.Tags = co.Selmon.tagset[co.Selmon.SelectedTags]
	}

	tags, floating, monIdx := MatchRule(co.Rules, id)
	if tags != 0 {
		c.Tags &= TagMask
		c.Tags = tags
	}
	if floating || isTransient {
		c.Floating = true
	}
	if monIdx >= 0 {
		if m := co.monitorByID(monIdx); m != nil {
			c.Mon = m
		}
	}
	if c.Tags&TagMask == 0 {
		c.Tags = c.Mon.tagset[c.Mon.SelectedTags]
	}

	c.Hints = co.Env.Backend.GetWMNormalHints(w)
	c.deriveIsFixed()
	c.Urgent, c.NeverFocus = co.Env.Backend.GetWMHints(w)

	dialog, fullscreen := co.Env.Backend.GetWindowType(w)
	if dialog || parent != nil {
		c.Floating = true
	}
	if c.IsFixed {
		c.Floating = true
	}

	if c.X+c.W > c.Mon.WX+c.Mon.WW {
		c.X = c.Mon.WX + c.Mon.WW - c.W
	}
	if c.Y+c.H > c.Mon.WY+c.Mon.WH {
		c.Y = c.Mon.WY + c.Mon.WH - c.H
	}
	c.X = maxInt(c.X, c.Mon.WX)
	c.Y = maxInt(c.Y, c.Mon.WY)

	c.Border = co.Env.BorderWidthFor(c.Floating)
	co.Env.Backend.ConfigureBorder(w, c.Border)
	co.Env.Backend.SetBorderColor(w, co.Env.Scheme(SchemeNormal))
	co.Env.Backend.MoveResize(w, c.X, c.Y, c.W, c.H)
	co.Env.Backend.SetWMState(w, NormalState)

	c.Mon.attach(c)
	c.Mon.stackAttach(c)

	co.Env.Backend.MapWindow(w)
	co.refreshClientList()

	if fullscreen {
		SetFullscreen(c, true)
	}

	if !wasScan {
		Focus(c, c.Mon)
	}
	Arrange(c.Mon)
	return c
}

// Unmanage implements spec.md §4.I unmanage(c): detach from both lists on
// the owning monitor, reassign focus, and re-arrange.
func (co *Core) Unmanage(c *Client, destroyed bool) {
	if c == nil {
		return
	}
	m := c.Mon
	m.detach(c)
	m.stackDetach(c)
	if !destroyed {
		co.Env.Backend.ConfigureBorder(c.Window, c.OldBorder)
		co.Env.Backend.UngrabAllKeys()
	}
	co.refreshClientList()
	Focus(nil, m)
	Arrange(m)
}

func (co *Core) monitorByID(id int) *Monitor {
	for m := co.Monitors; m != nil; m = m.Next {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (co *Core) refreshClientList() {
	var wins []WindowID
	for m := co.Monitors; m != nil; m = m.Next {
		for c := m.clients; c != nil; c = c.next {
			wins = append(wins, c.Window)
		}
	}
	co.Env.Backend.SetClientList(wins)
}

// SetFullscreen implements spec.md §4.I set_fullscreen(c, on), saving and
// restoring the pre-fullscreen floating/geometry state in OldState/Old*.
func SetFullscreen(c *Client, fullscreen bool) {
	if c == nil || fullscreen == c.Fullscreen {
		return
	}
	if fullscreen {
		globalEnv.Backend.SetNetWMStateFullscreen(c.Window, true)
		c.Fullscreen = true
		c.OldState = c.Floating
		c.OldBorder = c.Border
		c.Border = 0
		c.Floating = true
		c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
		if c.Mon != nil {
			globalEnv.Backend.MoveResize(c.Window, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH)
		}
		globalEnv.Backend.ConfigureBorder(c.Window, 0)
		Restack(c.Mon)
	} else {
		globalEnv.Backend.SetNetWMStateFullscreen(c.Window, false)
		c.Fullscreen = false
		c.Floating = c.OldState
		c.Border = c.OldBorder
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
		globalEnv.Backend.ConfigureBorder(c.Window, c.Border)
		globalEnv.Backend.MoveResize(c.Window, c.X, c.Y, c.W, c.H)
		Arrange(c.Mon)
	}
}

// ToggleFullscreen flips c's fullscreen state.
func ToggleFullscreen(c *Client) {
	if c == nil {
		return
	}
	SetFullscreen(c, !c.Fullscreen)
}
