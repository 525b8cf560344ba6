package wm

// fakeBackend is a no-op DisplayBackend so package tests can exercise
// commands/focus/layout logic without a real X11 connection, the same
// role spec.md §6 describes for DisplayBackend implementations used in
// tests.
type fakeBackend struct {
	spawned        [][]string
	lastBorderWin  WindowID
	lastBorder     ColorScheme
	lastFocusedWin WindowID
	focusCalls     int
}

func (f *fakeBackend) Open() error { return nil }
func (f *fakeBackend) Close()      {}
func (f *fakeBackend) NextEvent() (Event, error) { return nil, nil }

func (f *fakeBackend) SetWMName(WindowID, string)         {}
func (f *fakeBackend) GetWMName(WindowID) (string, bool)  { return "", false }
func (f *fakeBackend) SetSupported([]string)              {}
func (f *fakeBackend) SetClientList([]WindowID)           {}
func (f *fakeBackend) SetActiveWindow(WindowID)           {}
func (f *fakeBackend) GetNetWMState(WindowID) []string    { return nil }
func (f *fakeBackend) SetNetWMStateFullscreen(WindowID, bool) {}
func (f *fakeBackend) GetWMHints(WindowID) (bool, bool)   { return false, false }
func (f *fakeBackend) GetWMNormalHints(WindowID) SizeHints { return SizeHints{} }
func (f *fakeBackend) GetWMTransientFor(WindowID) (WindowID, bool) { return 0, false }
func (f *fakeBackend) GetWindowType(WindowID) (bool, bool) { return false, false }
func (f *fakeBackend) GetWMProtocols(WindowID) (bool, bool) { return false, false }
func (f *fakeBackend) SetWMState(WindowID, WMState)       {}

func (f *fakeBackend) MoveResize(WindowID, int, int, int, int) {}
func (f *fakeBackend) ConfigureBorder(WindowID, int)      {}
func (f *fakeBackend) SetBorderColor(w WindowID, s ColorScheme) { f.lastBorderWin, f.lastBorder = w, s }
func (f *fakeBackend) MapWindow(WindowID)                 {}
func (f *fakeBackend) UnmapWindow(WindowID)               {}
func (f *fakeBackend) DestroyWindow(WindowID)             {}
func (f *fakeBackend) RaiseWindow(WindowID)               {}
func (f *fakeBackend) RestackBelow(WindowID, WindowID)    {}
func (f *fakeBackend) SetInputFocus(w WindowID) { f.lastFocusedWin = w; f.focusCalls++ }
func (f *fakeBackend) SendTakeFocus(WindowID)             {}
func (f *fakeBackend) SendDeleteWindow(WindowID)          {}
func (f *fakeBackend) KillClient(WindowID)                {}

func (f *fakeBackend) QueryPointer() (int, int, WindowID) { return 0, 0, 0 }
func (f *fakeBackend) RootGeometry() ScreenRect           { return ScreenRect{} }
func (f *fakeBackend) QueryScreens() []ScreenRect          { return nil }
func (f *fakeBackend) ScanWindows() []WindowID            { return nil }

func (f *fakeBackend) GrabKey(uint16, uint32)             {}
func (f *fakeBackend) UngrabAllKeys()                     {}
func (f *fakeBackend) GrabButtons(WindowID, bool, []MouseBinding) {}
func (f *fakeBackend) GrabPointerForDrag() bool           { return false }
func (f *fakeBackend) UngrabPointer()                     {}
func (f *fakeBackend) GrabServer()                        {}
func (f *fakeBackend) UngrabServer()                      {}
func (f *fakeBackend) DrainEnterEvents()                  {}

func (f *fakeBackend) DrawTagbar(*Monitor, TagbarModel)       {}
func (f *fakeBackend) DrawClientbar(*Monitor, ClientbarModel) {}
func (f *fakeBackend) TextWidth(string) int                   { return 0 }
func (f *fakeBackend) BarHeight() int                          { return 0 }

func (f *fakeBackend) Spawn(argv []string) { f.spawned = append(f.spawned, argv) }

// newTestMonitor builds a standalone monitor wired to a fresh fakeBackend,
// with defs.Layouts defaulting to a single floating layout if unset.
func newTestMonitor(defs MonitorDefaults) (*Monitor, *fakeBackend) {
	fb := &fakeBackend{}
	SetEnv(Env{Backend: fb, TagLabels: [NumTags]string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}})
	if defs.Layouts == nil {
		defs.Layouts = []*Layout{{Symbol: "[]=", Kind: KindTile, Arrange: TileLayout}}
	}
	if defs.DefLayouts == ([NumTags + 1][2]int{}) {
		defs.DefLayouts = [NumTags + 1][2]int{}
	}
	m := NewMonitor(0, 0, 0, 1000, 800, defs)
	return m, fb
}
