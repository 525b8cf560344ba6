package wm

import "testing"

func schemeProbe() map[SchemeName]ColorScheme {
	return map[SchemeName]ColorScheme{
		SchemeNormal:   {Fg: 1, Bg: 2, Border: 3},
		SchemeSelected: {Fg: 4, Bg: 5, Border: 6},
	}
}

func TestFocusSetsSelAndAppliesSelectedScheme(t *testing.T) {
	m, fb := newTestMonitor(MonitorDefaults{})
	schemes := schemeProbe()
	SetSchemeResolver(func(n SchemeName) ColorScheme { return schemes[n] })
	defer SetSchemeResolver(func(SchemeName) ColorScheme { return ColorScheme{} })

	c := &Client{Mon: m, Window: 42, Tags: 1}
	m.stack = c
	m.tagset = [2]uint{1, 1}

	Focus(c, m)

	if m.Sel != c {
		t.Fatalf("Sel = %v, want %v", m.Sel, c)
	}
	if fb.lastBorderWin != 42 || fb.lastBorder != schemes[SchemeSelected] {
		t.Fatalf("border not set to selected scheme for the focused window: win=%d scheme=%+v", fb.lastBorderWin, fb.lastBorder)
	}
	if fb.focusCalls == 0 {
		t.Fatalf("SetInputFocus never called for a non-NeverFocus client")
	}
}

func TestFocusSkipsSetInputFocusForNeverFocusClients(t *testing.T) {
	m, fb := newTestMonitor(MonitorDefaults{})
	c := &Client{Mon: m, Window: 7, Tags: 1, NeverFocus: true}
	m.stack = c
	m.tagset = [2]uint{1, 1}

	Focus(c, m)

	if fb.focusCalls != 0 {
		t.Fatalf("SetInputFocus called %d times, want 0 for a NeverFocus client", fb.focusCalls)
	}
}

func TestFocusNilFallsBackToTopOfStack(t *testing.T) {
	m, _ := newTestMonitor(MonitorDefaults{})
	c := &Client{Mon: m, Window: 1, Tags: 1}
	m.stack = c
	m.tagset = [2]uint{1, 1}

	Focus(nil, m)

	if m.Sel != c {
		t.Fatalf("Sel = %v, want fallback to top-of-stack client %v", m.Sel, c)
	}
}

func TestUnfocusAppliesNormalSchemeAndClearsFocusOnRequest(t *testing.T) {
	m, fb := newTestMonitor(MonitorDefaults{})
	schemes := schemeProbe()
	SetSchemeResolver(func(n SchemeName) ColorScheme { return schemes[n] })
	defer SetSchemeResolver(func(SchemeName) ColorScheme { return ColorScheme{} })

	c := &Client{Mon: m, Window: 9}
	Unfocus(c, true)

	if fb.lastBorderWin != 9 || fb.lastBorder != schemes[SchemeNormal] {
		t.Fatalf("border not set to normal scheme: win=%d scheme=%+v", fb.lastBorderWin, fb.lastBorder)
	}
	if fb.lastFocusedWin != 0 {
		t.Fatalf("lastFocusedWin = %d, want 0 (input focus cleared)", fb.lastFocusedWin)
	}
}
