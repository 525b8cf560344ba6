package wm

// DragWindow implements `drag_window` (spec.md §4.H mouse mini-loop):
// grab the pointer, then track MotionNotify deltas against the backend's
// root geometry until ButtonRelease, applying snap-to-edge at snap pixels
// and reassigning the client's monitor when the pointer crosses a
// boundary. Other event types seen during the drag are routed back
// through Dispatch so Expose/ConfigureRequest/MapRequest keep working.
func DragWindow(co *Core, c *Client, snap int) {
	if c == nil || c.Fullscreen {
		return
	}
	if !co.Env.Backend.GrabPointerForDrag() {
		return
	}
	defer co.Env.Backend.UngrabPointer()

	ox, oy := c.X, c.Y
	startX, startY, _ := co.Env.Backend.QueryPointer()
	wasFloating := c.Floating

	for {
		ev, err := co.Env.Backend.NextEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case MotionNotifyEvent:
			nx := ox + (e.RootX - startX)
			ny := oy + (e.RootY - startY)
			nx, ny = snapToEdge(c.Mon, nx, ny, c.W, c.H, c.Border, snap)

			if !c.Floating && c.Mon.ActiveLayout().Arrange != nil {
				c.Floating = true
			}
			if m := co.MonitorAt(e.RootX, e.RootY); m != c.Mon {
				SendClientToMonitor(c, m)
			}
			c.X, c.Y = nx, ny
			co.Env.Backend.MoveResize(c.Window, nx, ny, c.W, c.H)

		case buttonReleaseMarker:
			if !wasFloating {
				Arrange(c.Mon)
			}
			return

		default:
			co.Dispatch(ev)
		}
	}
}

// ResizeWithMouse implements `resize_with_mouse`: same mini-loop shape as
// DragWindow but tracking the bottom-right corner and running the
// geometry/size-hint solver on every motion.
func ResizeWithMouse(co *Core, c *Client) {
	if c == nil || c.Fullscreen {
		return
	}
	if !co.Env.Backend.GrabPointerForDrag() {
		return
	}
	defer co.Env.Backend.UngrabPointer()

	wasFloating := c.Floating
	for {
		ev, err := co.Env.Backend.NextEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case MotionNotifyEvent:
			w := maxInt(1, e.RootX-c.X-2*c.Border+1)
			h := maxInt(1, e.RootY-c.Y-2*c.Border+1)

			if !c.Floating && c.Mon.ActiveLayout().Arrange != nil {
				c.Floating = true
			}
			screen := co.Env.Backend.RootGeometry()
			nx, ny, nw, nh, changed := ApplyGeometry(c, c.X, c.Y, w, h, true, screen, ResizeHints{BarH: co.Env.BarH}, co.resizeHintsAlways(), c.Mon.ActiveLayout().Arrange == nil)
			if changed {
				c.X, c.Y, c.W, c.H = nx, ny, nw, nh
				co.Env.Backend.MoveResize(c.Window, nx, ny, nw, nh)
			}

		case buttonReleaseMarker:
			if !wasFloating {
				Arrange(c.Mon)
			}
			return

		default:
			co.Dispatch(ev)
		}
	}
}

func (co *Core) resizeHintsAlways() bool { return co.Env.ResizeHints }

// snapToEdge pulls (x, y) onto the work-area border when within snap
// pixels of it, the edge-snapping rule spec.md §4.H names.
func snapToEdge(m *Monitor, x, y, w, h, border, snap int) (int, int) {
	if m == nil {
		return x, y
	}
	if abs(x-m.WX) < snap {
		x = m.WX
	} else if abs(m.WX+m.WW-(x+w+2*border)) < snap {
		x = m.WX + m.WW - w - 2*border
	}
	if abs(y-m.WY) < snap {
		y = m.WY
	} else if abs(m.WY+m.WH-(y+h+2*border)) < snap {
		y = m.WY + m.WH - h - 2*border
	}
	return x, y
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// buttonReleaseMarker is a synthetic Event the backend emits to end a
// drag/resize mini-loop; internal/x11 maps the wire ButtonRelease onto it.
type buttonReleaseMarker struct{}

func (buttonReleaseMarker) isEvent() {}
