package wm

import "testing"

func twoLayoutMonitor() *Monitor {
	tile := &Layout{Symbol: "[]=", Kind: KindTile, Arrange: TileLayout}
	monocle := &Layout{Symbol: "[M]", Kind: KindMonocle, Arrange: MonocleLayout}
	m, _ := newTestMonitor(MonitorDefaults{
		Layouts:    []*Layout{tile, monocle},
		DefLayouts: [NumTags + 1][2]int{{0, 0}},
	})
	return m
}

func TestSetLayoutSelectsByIndex(t *testing.T) {
	m := twoLayoutMonitor()
	SetLayout(m, 1)
	if m.LayoutSymbol != "[M]" {
		t.Fatalf("LayoutSymbol = %q, want [M]", m.LayoutSymbol)
	}
}

func TestSetLayoutNegativeTogglesBetweenSlots(t *testing.T) {
	m := twoLayoutMonitor()
	SetLayout(m, 1)
	SetLayout(m, -1)
	if m.LayoutSymbol != "[]=" {
		t.Fatalf("LayoutSymbol after toggle = %q, want []= (the other slot)", m.LayoutSymbol)
	}
}

func TestSetMarkedWidthClampsToValidRange(t *testing.T) {
	m := twoLayoutMonitor()
	SetMarkedWidth(m, 5)
	if m.MarkedWidth != 0.95 {
		t.Fatalf("MarkedWidth = %v, want clamped to 0.95", m.MarkedWidth)
	}
	SetMarkedWidth(m, -5)
	if m.MarkedWidth != 0.05 {
		t.Fatalf("MarkedWidth = %v, want clamped to 0.05", m.MarkedWidth)
	}
}

func TestAdjustMarkedWidthIsRelativeToCurrent(t *testing.T) {
	m := twoLayoutMonitor()
	m.MarkedWidth = 0.5
	AdjustMarkedWidth(m, 0.1)
	if m.MarkedWidth != 0.6 {
		t.Fatalf("MarkedWidth = %v, want 0.6", m.MarkedWidth)
	}
}

func TestToggleFloatingSavesAndRestoresGeometry(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, X: 10, Y: 10, W: 200, H: 150}
	ToggleFloating(c)
	if !c.Floating {
		t.Fatalf("Floating = false, want true")
	}
	if c.OldX != 10 || c.OldW != 200 {
		t.Fatalf("OldX/OldW not saved before floating: OldX=%d OldW=%d", c.OldX, c.OldW)
	}
}

func TestToggleFloatingIgnoresFullscreenClient(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, Fullscreen: true}
	ToggleFloating(c)
	if c.Floating {
		t.Fatalf("Floating = true, want unchanged false while fullscreen")
	}
}

func TestToggleFloatingAlwaysFloatsFixedSizeClients(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, IsFixed: true}
	ToggleFloating(c)
	if !c.Floating {
		t.Fatalf("Floating = false, want true for a fixed-size client")
	}
	ToggleFloating(c)
	if !c.Floating {
		t.Fatalf("Floating = false after second toggle, want still true (IsFixed forces floating)")
	}
}

func TestToggleMarkAdjustsNumMarkedWin(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, Tags: 1}
	m.clients = c
	m.stack = c
	ToggleMark(c)
	if !c.Marked || m.NumMarkedWin != 1 {
		t.Fatalf("Marked=%v NumMarkedWin=%d, want true/1", c.Marked, m.NumMarkedWin)
	}
	ToggleMark(c)
	if c.Marked || m.NumMarkedWin != 0 {
		t.Fatalf("Marked=%v NumMarkedWin=%d, want false/0", c.Marked, m.NumMarkedWin)
	}
}

func TestSetClientbarModeCyclesWhenNegative(t *testing.T) {
	m := twoLayoutMonitor()
	m.ClientbarMode = ClientbarNever
	SetClientbarMode(m, -1)
	if m.ClientbarMode != ClientbarAuto {
		t.Fatalf("ClientbarMode = %v, want ClientbarAuto after cycling from Never", m.ClientbarMode)
	}
	SetClientbarMode(m, -1)
	if m.ClientbarMode != ClientbarAlways {
		t.Fatalf("ClientbarMode = %v, want ClientbarAlways", m.ClientbarMode)
	}
	SetClientbarMode(m, -1)
	if m.ClientbarMode != ClientbarNever {
		t.Fatalf("ClientbarMode = %v, want wrap back to ClientbarNever", m.ClientbarMode)
	}
}

func TestSetClientbarModeSetsDirectlyWhenNonNegative(t *testing.T) {
	m := twoLayoutMonitor()
	SetClientbarMode(m, int(ClientbarAlways))
	if m.ClientbarMode != ClientbarAlways {
		t.Fatalf("ClientbarMode = %v, want ClientbarAlways", m.ClientbarMode)
	}
}

func TestToggleTagbarFlipsShowTagbar(t *testing.T) {
	m := twoLayoutMonitor()
	before := m.ShowTagbar
	ToggleTagbar(m)
	if m.ShowTagbar == before {
		t.Fatalf("ShowTagbar unchanged, want flipped")
	}
}
