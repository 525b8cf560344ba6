package wm

// ViewTag implements spec.md §4.F view(tags): switch the monitor's active
// tagset slot to tags (0 means re-view the previous tagset, the
// view_tag_toggles behavior when toggled back to the same mask; see
// Core.viewTagMask).
func ViewTag(m *Monitor, tags uint) {
	if tags == m.tagset[m.SelectedTags] {
		return
	}
	m.storePertag()
	m.SelectedTags ^= 1
	if tags != 0 {
		m.tagset[m.SelectedTags] = tags
		m.pertag.prevtag = m.pertag.curtag
		if tags == AllTags {
			m.pertag.curtag = 0
		} else {
			m.pertag.curtag = lowestBitIndex(tags) + 1
		}
	} else {
		m.pertag.prevtag, m.pertag.curtag = m.pertag.curtag, m.pertag.prevtag
	}
	m.loadPertag()
	Focus(nil, m)
	Arrange(m)
}

// ToggleTagView implements spec.md §4.F toggleview: XOR tags into the
// active tagset; a result of zero is ignored. When the tag Pertag is
// tracking (curtag) leaves the view, curtag moves to the lowest tag that
// is still visible.
func ToggleTagView(m *Monitor, tags uint, viewTagToggles bool) {
	newTagset := m.tagset[m.SelectedTags] ^ tags
	if newTagset == 0 {
		return
	}
	if viewTagToggles && newTagset == AllTags {
		m.pertag.curtag = 0
	}

	m.tagset[m.SelectedTags] = newTagset
	if newTagset&(1<<uint(m.pertag.curtag-1)) == 0 {
		m.pertag.prevtag = m.pertag.curtag
		i := 0
		for ; !(newTagset&(1<<uint(i)) != 0); i++ {
		}
		m.pertag.curtag = i + 1
	}
	m.loadPertag()
	Focus(nil, m)
	Arrange(m)
}

// CycleView implements spec.md §4.F cyclically stepping to the next or
// previous occupied tag (wrapping), skipping tags with no clients.
func CycleView(m *Monitor, forward bool) {
	occupied := uint(0)
	for c := m.clients; c != nil; c = c.next {
		occupied |= c.Tags
	}
	if occupied == 0 {
		return
	}

	cur := lowestBitIndex(m.tagset[m.SelectedTags])
	if cur < 0 {
		cur = 0
	}
	for i := 1; i <= NumTags; i++ {
		var next int
		if forward {
			next = (cur + i) % NumTags
		} else {
			next = ((cur-i)%NumTags + NumTags) % NumTags
		}
		if occupied&(1<<uint(next)) != 0 {
			ViewTag(m, 1<<uint(next))
			return
		}
	}
}

// ShiftTag views the tag offset by delta positions from the currently
// visible single tag, wrapping within [0, NumTags).
func ShiftTag(m *Monitor, delta int) {
	cur := lowestBitIndex(m.tagset[m.SelectedTags])
	if cur < 0 {
		cur = 0
	}
	next := ((cur+delta)%NumTags + NumTags) % NumTags
	ViewTag(m, 1<<uint(next))
}

// TagClient implements spec.md §4.F tag(c, tags): replace the selected
// client's tag bitmask wholesale (not a toggle). A zero mask is a no-op.
func TagClient(c *Client, tags uint) {
	if c == nil || tags&TagMask == 0 {
		return
	}
	c.Tags = tags & TagMask
	Focus(nil, c.Mon)
	Arrange(c.Mon)
}

// ToggleTag implements spec.md §4.F tagtoggle(c, tags): XOR tags into the
// selected client's mask, refusing to leave it with zero tags.
func ToggleTag(c *Client, tags uint) {
	if c == nil {
		return
	}
	newTags := c.Tags ^ (tags & TagMask)
	if newTags == 0 {
		return
	}
	c.Tags = newTags
	Focus(nil, c.Mon)
	Arrange(c.Mon)
}
