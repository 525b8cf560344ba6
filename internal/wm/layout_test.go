package wm

import "testing"

func chainClients(m *Monitor, cs ...*Client) {
	m.clients = cs[0]
	for i, c := range cs {
		c.Mon = m
		if i+1 < len(cs) {
			c.next = cs[i+1]
		}
	}
}

func TestTileLayoutSplitsMasterAndStackColumns(t *testing.T) {
	m := &Monitor{WX: 0, WY: 0, WW: 1000, WH: 800, NumMarkedWin: 1, MarkedWidth: 0.6, tagset: [2]uint{1, 1}}
	a := &Client{Tags: 1}
	b := &Client{Tags: 1}
	c := &Client{Tags: 1}
	chainClients(m, a, b, c)

	TileLayout(m)

	if a.X != 0 || a.W != 600 {
		t.Fatalf("master client geometry = (x=%d,w=%d), want (0,600)", a.X, a.W)
	}
	if b.X != 600 || c.X != 600 {
		t.Fatalf("stack clients not placed at stack column: b.X=%d c.X=%d, want 600", b.X, c.X)
	}
	if b.Y != 0 || c.Y <= b.Y {
		t.Fatalf("stack clients not stacked vertically: b.Y=%d c.Y=%d", b.Y, c.Y)
	}
}

func TestTileLayoutSingleClientFillsWholeMonitor(t *testing.T) {
	m := &Monitor{WX: 0, WY: 0, WW: 1000, WH: 800, NumMarkedWin: 1, MarkedWidth: 0.6, tagset: [2]uint{1, 1}}
	a := &Client{Tags: 1}
	chainClients(m, a)

	TileLayout(m)

	if a.W != 1000 || a.H != 800 {
		t.Fatalf("sole client geometry = (w=%d,h=%d), want full monitor (1000,800)", a.W, a.H)
	}
}

func TestTileLayoutSkipsFloatingAndHiddenTagClients(t *testing.T) {
	m := &Monitor{WX: 0, WY: 0, WW: 1000, WH: 800, NumMarkedWin: 1, MarkedWidth: 0.6, tagset: [2]uint{1, 1}}
	visible := &Client{Tags: 1}
	floating := &Client{Tags: 1, Floating: true}
	otherTag := &Client{Tags: 1 << 1}
	chainClients(m, visible, floating, otherTag)

	TileLayout(m)

	if visible.W != 1000 {
		t.Fatalf("sole tiled client should fill the monitor, got W=%d", visible.W)
	}
	if floating.W != 0 || otherTag.W != 0 {
		t.Fatalf("TileLayout resized a floating or hidden-tag client: floating.W=%d otherTag.W=%d, want 0", floating.W, otherTag.W)
	}
}

func TestMonocleLayoutFillsWorkAreaForEveryVisibleClient(t *testing.T) {
	m := &Monitor{WX: 10, WY: 10, WW: 500, WH: 400, tagset: [2]uint{1, 1}}
	a := &Client{Tags: 1}
	b := &Client{Tags: 1}
	chainClients(m, a, b)

	MonocleLayout(m)

	for _, c := range []*Client{a, b} {
		if c.X != 10 || c.Y != 10 || c.W != 500 || c.H != 400 {
			t.Fatalf("client geometry = %+v, want full work area", c)
		}
	}
	if m.LayoutSymbol != "[2]" {
		t.Fatalf("LayoutSymbol = %q, want [2]", m.LayoutSymbol)
	}
}

func TestDeckLayoutStacksAllNonMasterClientsInOneRect(t *testing.T) {
	m := &Monitor{WX: 0, WY: 0, WW: 1000, WH: 800, NumMarkedWin: 1, MarkedWidth: 0.5, tagset: [2]uint{1, 1}}
	a := &Client{Tags: 1}
	b := &Client{Tags: 1}
	c := &Client{Tags: 1}
	chainClients(m, a, b, c)

	DeckLayout(m)

	if b.X != c.X || b.Y != c.Y || b.W != c.W || b.H != c.H {
		t.Fatalf("deck stack clients should share one rectangle: b=%+v c=%+v", b, c)
	}
	if m.LayoutSymbol != "D 2" {
		t.Fatalf("LayoutSymbol = %q, want \"D 2\"", m.LayoutSymbol)
	}
}
