package wm

// Monitor holds per-head geometry, bar state, and the two orderings
// (order-list, focus-stack) of the clients assigned to it. See spec.md §3
// "Monitor".
type Monitor struct {
	Next *Monitor // singly linked registry, see Core.Monitors

	ID int
	MX, MY, MW, MH int // full monitor geometry
	WX, WY, WW, WH int // work-area: monitor minus visible bars

	LayoutSymbol   string
	MarkedWidth    float64
	NumMarkedWin   int
	tagset         [2]uint
	SelectedTags   int
	layout         [2]*Layout
	SelectedLayout int

	ShowTagbar     bool
	TagbarY        int
	TagbarWin      WindowID
	ClientbarY     int
	ClientbarWin   WindowID
	ClientbarMode  ClientbarMode

	clients *Client // order-list head
	stack   *Client // focus-stack head
	Sel     *Client

	NumClientTabs int
	tabWidths     [50]int

	layouts []*Layout
	pertag  *Pertag
}

// ClientbarMode selects when the client (tab) bar is shown.
type ClientbarMode int

const (
	ClientbarNever ClientbarMode = iota
	ClientbarAuto
	ClientbarAlways
)

// MonitorDefaults are the configured startup values a newly created (or
// multi-head-reconciled) Monitor is seeded with.
type MonitorDefaults struct {
	MarkedWidth   float64
	Layouts       []*Layout // all configured layouts
	DefLayouts    [NumTags + 1][2]int // index-0 = all-tag default, 1..9 per-tag
	ShowTagbar    bool
	ClientbarMode ClientbarMode
}

// NewMonitor creates a monitor at the given geometry with both tagsets set
// to bit 0 and layouts/marked-width seeded from cfg (spec.md §4.C).
func NewMonitor(id, mx, my, mw, mh int, cfg MonitorDefaults) *Monitor {
	m := &Monitor{
		ID: id,
		MX: mx, MY: my, MW: mw, MH: mh,
		WX: mx, WY: my, WW: mw, WH: mh,
		tagset:        [2]uint{1, 1},
		SelectedTags:  0,
		MarkedWidth:   cfg.MarkedWidth,
		ShowTagbar:    cfg.ShowTagbar,
		ClientbarMode: cfg.ClientbarMode,
		layouts:       cfg.Layouts,
	}
	idx := cfg.DefLayouts[0]
	m.layout[0] = pickLayout(cfg.Layouts, idx[0])
	m.layout[1] = pickLayout(cfg.Layouts, idx[1])
	m.LayoutSymbol = m.layout[m.SelectedLayout].Symbol

	m.pertag = newPertag(cfg.MarkedWidth, idx, cfg.ShowTagbar)
	for i := 1; i <= NumTags; i++ {
		m.pertag.layoutIdxs[i] = cfg.DefLayouts[i]
	}
	return m
}

func pickLayout(layouts []*Layout, idx int) *Layout {
	if idx < 0 || idx >= len(layouts) {
		if len(layouts) == 0 {
			return &Layout{Symbol: "[]="}
		}
		return layouts[0]
	}
	return layouts[idx]
}

// ActiveLayout returns the currently selected layout slot.
func (m *Monitor) ActiveLayout() *Layout { return m.layout[m.SelectedLayout] }

// clientBarShouldShow implements spec.md §6's auto rule: "auto shows when
// there are minimized windows, when monocle has >1 tag-visible, or when
// deck's stack side has >0".
func (m *Monitor) clientBarShouldShow() bool {
	switch m.ClientbarMode {
	case ClientbarNever:
		return false
	case ClientbarAlways:
		return true
	}

	hasMinimized := false
	visibleCount := 0
	for c := m.clients; c != nil; c = c.next {
		if !c.TagVisible() {
			continue
		}
		visibleCount++
		if c.Minimized {
			hasMinimized = true
		}
	}
	if hasMinimized {
		return true
	}

	active := m.ActiveLayout()
	switch active.Kind {
	case KindMonocle:
		if visibleCount > 1 {
			return true
		}
	case KindDeck:
		if visibleCount-m.NumMarkedWin > 0 {
			return true
		}
	}
	return false
}

// MonitorCleanup unmaps m's bar windows. It does not unlink m from
// Core.Monitors.
func MonitorCleanup(m *Monitor, backend DisplayBackend) {
	if backend == nil {
		return
	}
	if m.TagbarWin != 0 {
		backend.UnmapWindow(m.TagbarWin)
	}
	if m.ClientbarWin != 0 {
		backend.UnmapWindow(m.ClientbarWin)
	}
}

// SendClientToMonitor implements spec.md §4.C send_client_to_monitor:
// detach c from src's lists, retag it to dst's current view, attach it to
// dst, and re-arrange both monitors.
func SendClientToMonitor(c *Client, dst *Monitor) {
	src := c.Mon
	if src == dst || c == nil {
		return
	}

	Unfocus(c, true)
	src.detach(c)
	src.stackDetach(c)
	if src.Sel == c {
		src.Sel = nil
	}

	c.Mon = dst
	c.Tags = dst.tagset[dst.SelectedTags]
	dst.attach(c)
	dst.stackAttach(c)

	Focus(nil, dst)
	Arrange(src)
	Arrange(dst)
}
