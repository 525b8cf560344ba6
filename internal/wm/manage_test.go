package wm

import "testing"

func TestSetFullscreenEntersAndFillsMonitor(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, X: 10, Y: 10, W: 200, H: 150, Border: 1}
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080

	SetFullscreen(c, true)

	if !c.Fullscreen || !c.Floating || c.Border != 0 {
		t.Fatalf("Fullscreen=%v Floating=%v Border=%d, want true/true/0", c.Fullscreen, c.Floating, c.Border)
	}
	if c.OldX != 10 || c.OldW != 200 {
		t.Fatalf("geometry not saved before fullscreen: OldX=%d OldW=%d", c.OldX, c.OldW)
	}
}

func TestSetFullscreenExitRestoresPriorFloatingState(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, X: 10, Y: 10, W: 200, H: 150, Border: 1, Floating: false}

	SetFullscreen(c, true)
	SetFullscreen(c, false)

	if c.Fullscreen {
		t.Fatalf("Fullscreen = true, want false after exit")
	}
	if c.Floating {
		t.Fatalf("Floating = true, want restored to pre-fullscreen false (tiled clients return to tiled, not floating)")
	}
	if c.X != 10 || c.W != 200 || c.Border != 1 {
		t.Fatalf("geometry/border not restored: X=%d W=%d Border=%d", c.X, c.W, c.Border)
	}
}

func TestSetFullscreenExitRestoresFloatingWhenClientWasFloatingBefore(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, X: 10, Y: 10, W: 200, H: 150, Floating: true}

	SetFullscreen(c, true)
	SetFullscreen(c, false)

	if !c.Floating {
		t.Fatalf("Floating = false, want restored to true (client was already floating before fullscreen)")
	}
}

func TestSetFullscreenIsNoOpWhenAlreadyInTargetState(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m, Fullscreen: true, Floating: true}
	SetFullscreen(c, true)
	if c.OldX != 0 {
		t.Fatalf("OldX = %d, want untouched 0 (SetFullscreen(true) on an already-fullscreen client must be a no-op)", c.OldX)
	}
}

func TestToggleFullscreenFlipsState(t *testing.T) {
	m := twoLayoutMonitor()
	c := &Client{Mon: m}
	ToggleFullscreen(c)
	if !c.Fullscreen {
		t.Fatalf("Fullscreen = false, want true after first toggle")
	}
	ToggleFullscreen(c)
	if c.Fullscreen {
		t.Fatalf("Fullscreen = true, want false after second toggle")
	}
}
