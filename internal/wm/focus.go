package wm

// Env bundles the pieces of the immutable startup config that focus.go and
// commands.go need but that don't belong on Monitor/Client themselves.
type Env struct {
	Backend           DisplayBackend
	BarH              int
	TagsOnTop         bool
	HideBuriedWindows bool
	TagLabels         [NumTags]string
	HideInactiveTags  bool
	ViewTagToggles    bool
	ResizeHints       bool
	Border            int
	FloatingBorder    int
	IgnoreModMask     uint16 // CapsLock/NumLock/ScrollLock combinations to mask out of every binding compare
	SchemeLookup      func(SchemeName) ColorScheme
}

// BorderWidth returns the configured tiled-client border width in pixels.
func (e Env) BorderWidth() int { return e.Border }

// BorderWidthFor returns the configured border width for a client, using
// the floating border width when floating is true (spec.md §6 "Border
// width for tiled clients and floating clients").
func (e Env) BorderWidthFor(floating bool) int {
	if floating {
		return e.FloatingBorder
	}
	return e.Border
}

// Scheme resolves a named color scheme through the configured palette.
func (e Env) Scheme(name SchemeName) ColorScheme {
	if e.SchemeLookup == nil {
		return ColorScheme{}
	}
	return e.SchemeLookup(name)
}

// Arrange recomputes onscreen/visibility/bar-position state for m and
// invokes its active layout's arrange function (spec.md §4.E arrange).
func Arrange(m *Monitor) {
	if m == nil {
		return
	}
	updateOnscreen(m)
	updateVisibility(m, m.stack)
	UpdateBarPositions(m, globalEnv.BarH, globalEnv.TagsOnTop)

	m.LayoutSymbol = m.ActiveLayout().Symbol
	if fn := m.ActiveLayout().Arrange; fn != nil {
		fn(m)
	}
	RedrawBar(m)
}

// ArrangeAll re-arranges every monitor in the registry (used after a
// ConfigureNotify root resize or multi-head reconciliation).
func ArrangeAll(monitors *Monitor) {
	for m := monitors; m != nil; m = m.Next {
		Arrange(m)
	}
}

// globalEnv is set once by bootstrap.Setup; it is the "core context" of
// spec.md §9 carrying backend/config pieces that pure per-monitor
// functions still need. Kept as a package var (not a parameter threaded
// through every call) to match the single "core context" the spec
// prescribes without repeating it on every leaf function's signature.
var globalEnv Env

// SetEnv installs the process-wide environment. Called once from
// bootstrap.Setup; tests may call it directly with a fake backend.
func SetEnv(e Env) {
	globalEnv = e
	if e.SchemeLookup != nil {
		schemeFor = e.SchemeLookup
	}
}

func updateOnscreen(m *Monitor) {
	m.NumMarkedWin = 0

	switch m.ActiveLayout().Kind {
	case KindMonocle:
		anyOnscreenNonFloating := false
		for c := m.clients; c != nil; c = c.next {
			if !c.TagVisible() || c.Minimized {
				c.Onscreen = false
				continue
			}
			c.Onscreen = c.Floating || c == m.Sel
			if c.Onscreen && !c.Floating {
				anyOnscreenNonFloating = true
			}
			if c.Marked {
				m.NumMarkedWin++
			}
		}
		if !anyOnscreenNonFloating {
			markTopStackEligible(m)
		}

	case KindDeck:
		anyOnscreenNonFloating := false
		for c := m.clients; c != nil; c = c.next {
			if !c.TagVisible() || c.Minimized {
				c.Onscreen = false
				continue
			}
			c.Onscreen = c.Floating || c.Marked || c == m.Sel
			if c.Onscreen && !c.Floating {
				anyOnscreenNonFloating = true
			}
			if c.Marked {
				m.NumMarkedWin++
			}
		}
		if !anyOnscreenNonFloating {
			markTopStackEligible(m)
		}

	default: // tile, floating
		for c := m.clients; c != nil; c = c.next {
			c.Onscreen = c.TagVisible() && !c.Minimized
			if c.Onscreen && c.Marked {
				m.NumMarkedWin++
			}
		}
	}
}

// markTopStackEligible sets Onscreen on the topmost stack entry that is
// tag-visible and not minimized, the tie-break spec.md §4.E prescribes
// when no non-floating selection exists under monocle/deck.
func markTopStackEligible(m *Monitor) {
	for s := m.stack; s != nil; s = s.snext {
		if s.TagVisible() && !s.Minimized {
			s.Onscreen = true
			return
		}
	}
}

// updateVisibility recurses top-down over the focus-stack (via snext),
// moving onscreen clients to their geometric position and hidden ones
// off-screen, preserving z-order across the transition (spec.md §4.E
// step 2: top-down for visible, bottom-up for hidden).
func updateVisibility(m *Monitor, c *Client) {
	if c == nil {
		return
	}
	visible := c.Onscreen || (!globalEnv.HideBuriedWindows && c.TagVisible() && !c.Minimized)
	if visible {
		showClient(m, c)
		updateVisibility(m, c.snext)
	} else {
		updateVisibility(m, c.snext)
		hideClient(m, c)
	}
}

func showClient(m *Monitor, c *Client) {
	globalEnv.Backend.MoveResize(c.Window, c.X, c.Y, c.W, c.H)
	globalEnv.Backend.SetWMState(c.Window, NormalState)
}

func hideClient(m *Monitor, c *Client) {
	width := c.W + 2*c.Border
	globalEnv.Backend.MoveResize(c.Window, -2*width, c.Y, c.W, c.H)
	globalEnv.Backend.SetWMState(c.Window, IconicState)
}

// Focus implements spec.md §4.E focus(c).
func Focus(c *Client, m *Monitor) {
	if m == nil {
		if c != nil {
			m = c.Mon
		}
		if m == nil {
			return
		}
	}
	if c == nil || !c.TagVisible() || c.Minimized {
		c = nil
		for s := m.stack; s != nil; s = s.snext {
			if s.TagVisible() && !s.Minimized {
				c = s
				break
			}
		}
	}

	if m.Sel != nil && m.Sel != c {
		Unfocus(m.Sel, false)
	}

	if c != nil {
		if c.Mon != nil {
			m = c.Mon
		}
		m.stackDetach(c)
		m.stackAttach(c)
		globalEnv.Backend.GrabButtons(c.Window, true, nil)
		globalEnv.Backend.SetBorderColor(c.Window, schemeFor(SchemeSelected))
		if !c.NeverFocus {
			globalEnv.Backend.SetInputFocus(c.Window)
			globalEnv.Backend.SetActiveWindow(c.Window)
		}
		globalEnv.Backend.SendTakeFocus(c.Window)
	}

	m.Sel = c
	Arrange(m)
}

// Unfocus reverts the border color and, if setfocus, releases input focus.
func Unfocus(c *Client, setfocus bool) {
	if c == nil {
		return
	}
	globalEnv.Backend.GrabButtons(c.Window, false, nil)
	globalEnv.Backend.SetBorderColor(c.Window, schemeFor(SchemeNormal))
	if setfocus {
		globalEnv.Backend.SetInputFocus(0)
		globalEnv.Backend.SetActiveWindow(0)
	}
}

// schemeFor is overridden by bootstrap with the configured palette; kept
// as a package var for the same "core context" reason as globalEnv.
var schemeFor = func(SchemeName) ColorScheme { return ColorScheme{} }

// SetSchemeResolver installs the configured color-scheme lookup.
func SetSchemeResolver(f func(SchemeName) ColorScheme) { schemeFor = f }

// Restack implements spec.md §4.E restack(m): raise the floating
// selection, or walk the focus-stack top-down stacking each tag-visible
// tiled client below the previous one so the topmost stack element becomes
// the topmost tile.
func Restack(m *Monitor) {
	if m == nil || m.Sel == nil {
		return
	}
	if m.Sel.Floating || m.ActiveLayout().Arrange == nil {
		globalEnv.Backend.RaiseWindow(m.Sel.Window)
		globalEnv.Backend.DrainEnterEvents()
		return
	}

	var prev WindowID
	for c := m.stack; c != nil; c = c.snext {
		if c.TagVisible() && !c.Floating && !c.Minimized {
			if prev != 0 {
				globalEnv.Backend.RestackBelow(c.Window, prev)
			}
			prev = c.Window
		}
	}
	globalEnv.Backend.DrainEnterEvents()
}
