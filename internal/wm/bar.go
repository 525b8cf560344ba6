package wm

import "sort"

// SchemeName identifies one of the five fixed color schemes (spec.md §6).
type SchemeName int

const (
	SchemeNormal SchemeName = iota
	SchemeSelected
	SchemeVisible
	SchemeMinimized
	SchemeUrgent
)

// TagItem is one rendered tag segment of the tag bar.
type TagItem struct {
	Index      int
	Label      string
	Scheme     SchemeName
	Occupied   bool // any client on this monitor carries this tag
	SelHasTag  bool // the selected client carries this tag
}

// TagbarModel is the computed content of the tag bar (spec.md §4.G).
type TagbarModel struct {
	Tags          []TagItem
	StatusText    string
	CenterText    string // selected client's title, or "" for normal-scheme fill
	CenterScheme  SchemeName
	LayoutSymbol  string
}

// ComputeTagbar builds the tag-bar model for m. hideInactiveTags and
// tagLabels come from the immutable startup config.
func ComputeTagbar(m *Monitor, tagLabels [NumTags]string, hideInactiveTags bool, status string) TagbarModel {
	occupied := [NumTags]bool{}
	anyUrgent := [NumTags]bool{}
	for c := m.clients; c != nil; c = c.next {
		for i := 0; i < NumTags; i++ {
			if c.Tags&(1<<uint(i)) != 0 {
				occupied[i] = true
				if c.Urgent {
					anyUrgent[i] = true
				}
			}
		}
	}

	view := m.tagset[m.SelectedTags]
	var selTags uint
	if m.Sel != nil {
		selTags = m.Sel.Tags
	}

	model := TagbarModel{LayoutSymbol: m.LayoutSymbol, StatusText: status}
	for i := 0; i < NumTags; i++ {
		bit := uint(1) << uint(i)
		if !occupied[i] && view&bit == 0 && hideInactiveTags {
			continue
		}
		item := TagItem{
			Index:     i,
			Label:     tagLabels[i],
			Occupied:  occupied[i],
			SelHasTag: selTags&bit != 0,
		}
		switch {
		case anyUrgent[i]:
			item.Scheme = SchemeUrgent
		case view&bit != 0:
			item.Scheme = SchemeSelected
		case occupied[i]:
			item.Scheme = SchemeVisible
		default:
			item.Scheme = SchemeNormal
		}
		model.Tags = append(model.Tags, item)
	}

	if m.Sel != nil {
		model.CenterText = m.Sel.Name
		model.CenterScheme = SchemeSelected
	} else {
		model.CenterScheme = SchemeNormal
	}
	return model
}

// ClientTab is one rendered slot of the client (tab) bar.
type ClientTab struct {
	Client *Client
	Width  int
	Scheme SchemeName
	Marked bool
}

// ClientbarModel is the computed content of the client bar (spec.md §4.G).
type ClientbarModel struct {
	Tabs         []ClientTab
	LayoutSymbol string
}

// ComputeClientbar builds the tab-bar model for m. measure returns the
// pixel width of a title string (delegated to the backend's font metrics);
// viewinfo is the fixed width reserved for the layout symbol cell.
func ComputeClientbar(m *Monitor, measure func(string) int, ww, viewinfo int) ClientbarModel {
	var visible []*Client
	for c := m.clients; c != nil; c = c.next {
		if c.TagVisible() && !c.Minimized {
			visible = append(visible, c)
		}
	}

	model := ClientbarModel{LayoutSymbol: m.LayoutSymbol}
	n := len(visible)
	if n == 0 {
		return model
	}

	avail := ww - viewinfo
	widths := make([]int, n)
	total := 0
	for i, c := range visible {
		widths[i] = measure(c.Name)
		total += widths[i]
	}

	tabs := make([]ClientTab, n)
	if total <= avail {
		for i, c := range visible {
			tabs[i] = ClientTab{Client: c, Width: widths[i], Scheme: tabScheme(m, c), Marked: c.Marked}
		}
		model.Tabs = tabs
		return model
	}

	// Truncation: sort a copy of widths ascending and walk it while the
	// widths kept so far plus (num-i)*sorted[i] still fit in ww; best is
	// where the walk stops. The remaining tabs split
	// (ww - accumulated) / (num - best) equally.
	sorted := append([]int(nil), widths...)
	sort.Ints(sorted)

	best := 0
	for fit := viewinfo; best < n && fit+(n-best)*sorted[best] <= ww; best++ {
		fit += sorted[best]
	}

	accumulated := viewinfo
	// The best tabs narrower than sorted[best] keep their natural width;
	// the remaining (wider) tabs share the leftover space equally.
	threshold := sorted[best]
	narrowIdx := 0
	var wideIdxs []int
	for i, w := range widths {
		if w < threshold && narrowIdx < best {
			accumulated += w
			narrowIdx++
		} else {
			wideIdxs = append(wideIdxs, i)
		}
	}
	share := 0
	if len(wideIdxs) > 0 {
		share = (ww - accumulated) / len(wideIdxs)
	}

	narrowIdx = 0
	for i, c := range visible {
		w := widths[i]
		if w < threshold && narrowIdx < best {
			narrowIdx++
		} else {
			w = share
		}
		tabs[i] = ClientTab{Client: c, Width: w, Scheme: tabScheme(m, c), Marked: c.Marked}
	}
	model.Tabs = tabs
	return model
}

// tabScheme applies the priority order selected > urgent > minimized >
// visible > normal from spec.md §4.G.
func tabScheme(m *Monitor, c *Client) SchemeName {
	switch {
	case m.Sel == c:
		return SchemeSelected
	case c.Urgent:
		return SchemeUrgent
	case c.Minimized:
		return SchemeMinimized
	case c.TagVisible():
		return SchemeVisible
	default:
		return SchemeNormal
	}
}

// globalStatusText mirrors Core.statusText so RedrawBar can repaint from
// functions (Focus, the tag commands, Arrange) that only carry a *Monitor,
// not the *Core that owns the status string. Kept alongside globalEnv for
// the same "core context" reason.
var globalStatusText string

// RedrawBar repaints m's tag bar and, if due, its client bar from current
// Monitor/Client state. It is the drawBar step spec.md §4.E's focus(c) and
// arrange(m) both end with ("redraw bars and re-arrange this monitor"),
// so every caller of Arrange gets it for free.
func RedrawBar(m *Monitor) {
	if m == nil || globalEnv.Backend == nil {
		return
	}
	model := ComputeTagbar(m, globalEnv.TagLabels, globalEnv.HideInactiveTags, globalStatusText)
	globalEnv.Backend.DrawTagbar(m, model)
	if m.clientBarShouldShow() {
		cb := ComputeClientbar(m, globalEnv.Backend.TextWidth, m.WW, globalEnv.Backend.TextWidth(m.LayoutSymbol))
		globalEnv.Backend.DrawClientbar(m, cb)
	}
}

// UpdateBarPositions recomputes (wy, wh) from bar visibility and the
// client-bar's show/hide decision (spec.md §4.E step 3). tagsOnTop decides
// whether the tag bar reserves space at the top or bottom of the monitor;
// the client bar is always placed directly below the tag bar's band.
func UpdateBarPositions(m *Monitor, barH int, tagsOnTop bool) {
	showClientbar := m.clientBarShouldShow()

	reserved := 0
	if m.ShowTagbar {
		reserved += barH
	}
	if showClientbar {
		reserved += barH
	}

	m.WY = m.MY
	m.WH = m.MH
	m.WX = m.MX
	m.WW = m.MW

	if reserved == 0 {
		m.TagbarY = -barH
		m.ClientbarY = -barH
		return
	}

	if tagsOnTop {
		m.WY = m.MY + reserved
		m.WH = m.MH - reserved
		y := m.MY
		if m.ShowTagbar {
			m.TagbarY = y
			y += barH
		} else {
			m.TagbarY = -barH
		}
		if showClientbar {
			m.ClientbarY = y
		} else {
			m.ClientbarY = -barH
		}
	} else {
		m.WH = m.MH - reserved
		y := m.MY + m.WH
		if showClientbar {
			m.ClientbarY = y
			y += barH
		} else {
			m.ClientbarY = -barH
		}
		if m.ShowTagbar {
			m.TagbarY = y
		} else {
			m.TagbarY = -barH
		}
	}
}
