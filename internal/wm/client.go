package wm

// SizeHints holds the ICCCM WM_NORMAL_HINTS fields a client has requested.
type SizeHints struct {
	BaseW, BaseH int
	IncW, IncH   int
	MinW, MinH   int
	MaxW, MaxH   int
	MinA, MaxA   float64 // aspect ratios, 0 disables the constraint
}

// Client is the per-window record. It belongs to exactly one monitor's
// order-list and exactly one monitor's focus-stack (the same monitor) —
// see Monitor.attach/Monitor.stackAttach.
type Client struct {
	Window WindowID
	Name   string // window title, truncated to 255 runes by the backend

	X, Y, W, H    int
	OldX, OldY    int
	OldW, OldH    int
	Border        int
	OldBorder     int

	Hints    SizeHints
	IsFixed  bool // derived: minw==maxw>0 && minh==maxh>0

	Tags uint
	Mon  *Monitor

	Floating    bool
	WasFloating bool
	Urgent      bool
	NeverFocus  bool
	OldState    bool // floating state saved across a fullscreen toggle
	Fullscreen  bool
	Minimized   bool
	Onscreen    bool // derived each arrange cycle by focus.go; never user-set
	Marked      bool // stays in the master column of tiled layouts

	next      *Client // order-list successor on Mon
	snext     *Client // focus-stack successor on Mon
}

// TagVisible reports whether c is visible under its monitor's current view.
func (c *Client) TagVisible() bool {
	return c.Mon != nil && c.Tags&c.Mon.tagset[c.Mon.SelectedTags] != 0
}

// attach inserts c at the head of Mon's order-list, preserving the
// three-band invariant: floating* ‖ (marked ∧ tiled)* ‖ tiled*.
//
// Floating clients always go to the very head. Non-floating clients are
// inserted at the head of their own band (marked-tiled, or plain tiled).
func (m *Monitor) attach(c *Client) {
	if c.Floating {
		c.next = m.clients
		m.clients = c
		return
	}

	// Scan past the floating band; then, if c is marked, insert at the head
	// of the marked band; otherwise insert after the marked band.
	var prev *Client
	cur := m.clients
	for cur != nil && cur.Floating {
		prev, cur = cur, cur.next
	}
	if c.Marked {
		c.next = cur
	} else {
		for cur != nil && cur.Marked {
			prev, cur = cur, cur.next
		}
		c.next = cur
	}
	if prev == nil {
		m.clients = c
	} else {
		prev.next = c
	}
}

// detach removes c from Mon's order-list, wherever it is.
func (m *Monitor) detach(c *Client) {
	pp := &m.clients
	for *pp != nil && *pp != c {
		pp = &(*pp).next
	}
	if *pp == c {
		*pp = c.next
	}
	c.next = nil
}

// stackAttach pushes c to the top of Mon's focus-stack (LIFO).
func (m *Monitor) stackAttach(c *Client) {
	c.snext = m.stack
	m.stack = c
}

// stackDetach removes c from Mon's focus-stack. If c was Sel, Sel is
// replaced with the topmost tag-visible, non-minimized stack entry (or
// nil).
func (m *Monitor) stackDetach(c *Client) {
	pp := &m.stack
	for *pp != nil && *pp != c {
		pp = &(*pp).snext
	}
	if *pp == c {
		*pp = c.snext
	}
	c.snext = nil

	if m.Sel == c {
		for s := m.stack; s != nil; s = s.snext {
			if s.TagVisible() && !s.Minimized {
				m.Sel = s
				return
			}
		}
		m.Sel = nil
	}
}

// nextTiled yields the first client at-or-after c (order-list order) that
// is non-floating, tag-visible and not minimized.
func nextTiled(c *Client) *Client {
	for ; c != nil; c = c.next {
		if !c.Floating && c.TagVisible() && !c.Minimized {
			return c
		}
	}
	return nil
}

// prevTiled yields the last client of that kind before c, starting the
// search from Mon's order-list head.
func prevTiled(c *Client) *Client {
	if c == nil || c.Mon == nil {
		return nil
	}
	var prev *Client
	for p := nextTiled(c.Mon.clients); p != nil && p != c; p = nextTiled(p.next) {
		prev = p
	}
	return prev
}

// pushLeft shifts a non-floating client one step toward the list head,
// wrapping past the first tiled client to the end.
func (m *Monitor) pushLeft(c *Client) {
	if c == nil || c.Floating {
		return
	}
	prev := prevTiled(c)
	if prev == nil {
		// c is the first tiled client: move it to the end.
		m.detach(c)
		last := m.lastClient()
		m.insertAfter(last, c)
		return
	}
	m.swapAdjacent(prev, c)
}

// pushRight shifts a non-floating client one step toward the list tail,
// wrapping past the last tiled client to the front of the tiled band.
func (m *Monitor) pushRight(c *Client) {
	if c == nil || c.Floating {
		return
	}
	next := nextTiled(c.next)
	if next == nil {
		// c is the last tiled client: move it to the front of the tiled band.
		m.detach(c)
		firstTiled := nextTiled(m.clients)
		if firstTiled == nil {
			m.attach(c)
			return
		}
		m.insertBefore(firstTiled, c)
		return
	}
	m.swapAdjacent(c, next)
}

func (m *Monitor) lastClient() *Client {
	if m.clients == nil {
		return nil
	}
	c := m.clients
	for c.next != nil {
		c = c.next
	}
	return c
}

func (m *Monitor) insertAfter(after, c *Client) {
	if after == nil {
		c.next = m.clients
		m.clients = c
		return
	}
	c.next = after.next
	after.next = c
}

func (m *Monitor) insertBefore(before, c *Client) {
	if before == m.clients {
		c.next = m.clients
		m.clients = c
		return
	}
	p := m.clients
	for p != nil && p.next != before {
		p = p.next
	}
	if p != nil {
		c.next = before
		p.next = c
	}
}

// swapAdjacent exchanges the list positions of a followed directly by b.
func (m *Monitor) swapAdjacent(a, b *Client) {
	pp := &m.clients
	for *pp != nil && *pp != a {
		pp = &(*pp).next
	}
	if *pp != a || a.next != b {
		return
	}
	*pp = b
	a.next = b.next
	b.next = a
}

// deriveIsFixed recomputes c.IsFixed from its current size hints.
func (c *Client) deriveIsFixed() {
	h := c.Hints
	c.IsFixed = h.MinW > 0 && h.MinW == h.MaxW && h.MinH > 0 && h.MinH == h.MaxH
}
