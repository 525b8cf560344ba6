package wm

// DisplayBackend is the abstract display-server collaborator of spec.md
// §6. The core never imports an X11 binding directly; internal/x11
// implements this interface on top of xgb/xgbutil, and the whole wm
// package can be driven by a fake for tests.
type DisplayBackend interface {
	// Lifecycle.
	Open() error
	Close()
	NextEvent() (Event, error)

	// Properties.
	SetWMName(w WindowID, name string)
	GetWMName(w WindowID) (string, bool)
	SetSupported(atoms []string)
	SetClientList(wins []WindowID)
	SetActiveWindow(w WindowID)
	GetNetWMState(w WindowID) []string
	SetNetWMStateFullscreen(w WindowID, on bool)
	GetWMHints(w WindowID) (urgent, neverFocus bool)
	GetWMNormalHints(w WindowID) SizeHints
	GetWMTransientFor(w WindowID) (WindowID, bool)
	GetWindowType(w WindowID) (dialog, fullscreen bool)
	GetWMProtocols(w WindowID) (takeFocus, deleteWindow bool)
	SetWMState(w WindowID, state WMState)

	// Window operations.
	MoveResize(w WindowID, x, y, wd, ht int)
	ConfigureBorder(w WindowID, border int)
	SetBorderColor(w WindowID, scheme ColorScheme)
	MapWindow(w WindowID)
	UnmapWindow(w WindowID)
	DestroyWindow(w WindowID)
	RaiseWindow(w WindowID)
	RestackBelow(w, sibling WindowID)
	SetInputFocus(w WindowID)
	SendTakeFocus(w WindowID)
	SendDeleteWindow(w WindowID)
	KillClient(w WindowID)

	// Queries.
	QueryPointer() (x, y int, win WindowID)
	RootGeometry() ScreenRect
	QueryScreens() []ScreenRect
	ScanWindows() []WindowID

	// Grabs.
	GrabKey(mod uint16, keysym uint32)
	UngrabAllKeys()
	GrabButtons(c WindowID, focused bool, buttons []MouseBinding)
	GrabPointerForDrag() bool
	UngrabPointer()
	GrabServer()
	UngrabServer()

	// DrainEnterEvents discards any EnterNotify events already queued by
	// the display server. Restacking windows generates EnterNotify events
	// of its own as the pointer ends up over a different client; without
	// draining them, the next read off NextEvent would be mistaken for a
	// real pointer-driven focus change (spec.md §4.E restack).
	DrainEnterEvents()

	// Bar drawing — the core computes the BarModel; the backend paints it.
	DrawTagbar(m *Monitor, model TagbarModel)
	DrawClientbar(m *Monitor, model ClientbarModel)
	TextWidth(s string) int
	BarHeight() int

	// Process spawn (component I `spawn` command).
	Spawn(argv []string)
}

// WMState mirrors ICCCM WM_STATE values.
type WMState int

const (
	WithdrawnState WMState = 0
	NormalState    WMState = 1
	IconicState    WMState = 3
)

// Event is the sealed set of X events the core reacts to (spec.md §4.H).
// internal/x11 translates xgb wire events into these before handing them
// to Core.Dispatch.
type Event interface{ isEvent() }

type ButtonPressEvent struct {
	Window         WindowID
	RootX, RootY   int
	Button         uint8
	Mod            uint16
}

type ClientMessageEvent struct {
	Window   WindowID
	Atom     string
	Data     [5]uint32
}

type ConfigureRequestEvent struct {
	Window               WindowID
	X, Y, W, H, Border   int
	ValueMask            uint16
}

type ConfigureNotifyEvent struct {
	Window WindowID
	IsRoot bool
	W, H   int
}

type DestroyNotifyEvent struct{ Window WindowID }

type UnmapNotifyEvent struct {
	Window    WindowID
	Synthetic bool
}

type EnterNotifyEvent struct {
	Window       WindowID
	RootX, RootY int
	Mode         int // 0 = normal
}

type ExposeEvent struct{ Window WindowID }

type FocusInEvent struct{ Window WindowID }

type KeyPressEvent struct {
	Keysym uint32
	Mod    uint16
}

type MappingNotifyEvent struct{}

type MapRequestEvent struct{ Window WindowID }

type MotionNotifyEvent struct {
	Window       WindowID
	RootX, RootY int
}

type PropertyNotifyEvent struct {
	Window WindowID
	Atom   string
}

func (ButtonPressEvent) isEvent()     {}
func (ClientMessageEvent) isEvent()   {}
func (ConfigureRequestEvent) isEvent() {}
func (ConfigureNotifyEvent) isEvent() {}
func (DestroyNotifyEvent) isEvent()   {}
func (UnmapNotifyEvent) isEvent()     {}
func (EnterNotifyEvent) isEvent()     {}
func (ExposeEvent) isEvent()          {}
func (FocusInEvent) isEvent()         {}
func (KeyPressEvent) isEvent()        {}
func (MappingNotifyEvent) isEvent()   {}
func (MapRequestEvent) isEvent()      {}
func (MotionNotifyEvent) isEvent()    {}
func (PropertyNotifyEvent) isEvent()  {}

// ColorScheme is a (foreground, background, border) triple, one of the
// five fixed schemes configured at startup (spec.md §6).
type ColorScheme struct {
	Fg, Bg, Border uint32
}

// MouseBinding is one entry of the configured mouse-binding table.
type MouseBinding struct {
	Click  ClickArea
	Mod    uint16
	Button uint8
}

// ClickArea identifies where a ButtonPress landed (spec.md §4.H).
type ClickArea int

const (
	ClickRootWin ClickArea = iota
	ClickClientWin
	ClickTagbar
	ClickLayoutSymbol
	ClickStatusText
	ClickWinTitle
	ClickClientbarTab
)
