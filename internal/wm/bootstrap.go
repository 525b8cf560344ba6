package wm

import "sort"

// Setup implements spec.md §4.J bootstrap: discover monitors, build a Core
// around them, grab configured keys, advertise _NET_SUPPORTED, and scan
// pre-existing windows in two passes (non-transient first, then
// transients), managing those that are viewable or iconic. The backend is
// assumed already open by the caller (cmd/gowm); Setup does not open it.
func Setup(backend DisplayBackend, env Env, defaults MonitorDefaults, rules []Rule, keys []KeyBinding, mouse []MouseClickBinding) *Core {
	env.Backend = backend
	co := NewCore(env, rules, keys, mouse, nil)

	for _, m := range discoverMonitors(backend, defaults) {
		co.AddMonitor(m)
	}
	if co.Selmon == nil {
		co.Selmon = co.Monitors
	}

	for _, b := range keys {
		backend.GrabKey(b.Mod, b.Keysym)
	}
	backend.SetSupported(supportedAtoms)

	co.scanExisting()
	return co
}

var supportedAtoms = []string{
	"_NET_SUPPORTED",
	"_NET_ACTIVE_WINDOW",
	"_NET_CLIENT_LIST",
	"_NET_WM_STATE",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DIALOG",
}

func discoverMonitors(backend DisplayBackend, defaults MonitorDefaults) []*Monitor {
	screens := dedupeScreens(backend.QueryScreens())
	if len(screens) == 0 {
		r := backend.RootGeometry()
		screens = []ScreenRect{r}
	}
	out := make([]*Monitor, len(screens))
	for i, s := range screens {
		out[i] = NewMonitor(i, s.X, s.Y, s.W, s.H, defaults)
	}
	return out
}

func dedupeScreens(screens []ScreenRect) []ScreenRect {
	seen := make(map[ScreenRect]bool, len(screens))
	out := make([]ScreenRect, 0, len(screens))
	for _, s := range screens {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// ReconcileMonitors implements the multi-head half of spec.md §4.J: query
// screen rectangles again, dedupe, and reconcile against the current
// registry — grow by creating new monitors for rectangles that gained a
// slot, or migrate every client off removed tail monitors onto the head
// monitor and drop the emptied ones.
func (co *Core) ReconcileMonitors() {
	screens := dedupeScreens(co.Env.Backend.QueryScreens())
	if len(screens) == 0 {
		return
	}

	var current []*Monitor
	for m := co.Monitors; m != nil; m = m.Next {
		current = append(current, m)
	}

	if len(screens) >= len(current) {
		for i, s := range screens {
			if i < len(current) {
				current[i].MX, current[i].MY, current[i].MW, current[i].MH = s.X, s.Y, s.W, s.H
				current[i].WX, current[i].WY, current[i].WW, current[i].WH = s.X, s.Y, s.W, s.H
				continue
			}
			nm := NewMonitor(i, s.X, s.Y, s.W, s.H, MonitorDefaults{
				Layouts: current[0].layouts, ShowTagbar: current[0].ShowTagbar,
				ClientbarMode: current[0].ClientbarMode, MarkedWidth: current[0].MarkedWidth,
			})
			co.AddMonitor(nm)
		}
		return
	}

	for i := len(screens); i < len(current); i++ {
		co.RemoveMonitor(current[i])
	}
	for i, s := range screens {
		current[i].MX, current[i].MY, current[i].MW, current[i].MH = s.X, s.Y, s.W, s.H
		current[i].WX, current[i].WY, current[i].WW, current[i].WH = s.X, s.Y, s.W, s.H
	}
}

// scanExisting implements the two-pass scan of spec.md §4.J: manage every
// non-transient window first (so parents exist before their transients are
// looked up), then every transient window.
func (co *Core) scanExisting() {
	wins := co.Env.Backend.ScanWindows()

	var transients, normal []WindowID
	for _, w := range wins {
		if _, ok := co.Env.Backend.GetWMTransientFor(w); ok {
			transients = append(transients, w)
		} else {
			normal = append(normal, w)
		}
	}

	sort.Slice(normal, func(i, j int) bool { return normal[i] < normal[j] })
	for _, w := range normal {
		co.Manage(w, WindowIdentity{}, Rect{}, 0, true)
	}
	for _, w := range transients {
		co.Manage(w, WindowIdentity{}, Rect{}, 0, true)
	}
}

// Cleanup implements the guaranteed-release half of spec.md §5: unmanage
// every client (restoring border and ungrabbing keys), unmap bar windows,
// and release the backend.
func (co *Core) Cleanup() {
	for m := co.Monitors; m != nil; m = m.Next {
		for c := m.clients; c != nil; {
			next := c.next
			co.Unmanage(c, false)
			c = next
		}
		MonitorCleanup(m, co.Env.Backend)
	}
	co.Env.Backend.Close()
}
