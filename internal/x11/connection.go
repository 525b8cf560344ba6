// Package x11 implements wm.DisplayBackend on top of xgb and xgbutil: the
// only package in this module that imports an X11 binding directly.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/1broseidon/gowm/internal/wm"
)

// Connection is the xgbutil-backed wm.DisplayBackend. A process holds
// exactly one: the core event loop in cmd/gowm drives it and the wm
// package never reaches past the DisplayBackend interface to touch it.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	atoms map[string]xproto.Atom

	ignoreMod uint16

	fontName string
	barH     int
	schemes  map[wm.SchemeName]schemeColors

	bars map[wm.WindowID]*barWindow

	events   chan wm.Event
	grabbing bool // true while a drag/resize owns the pointer grab
}

type schemeColors struct {
	Fg, Bg, Border uint32
}

// Options carries the bar font, bar height and color schemes a Connection
// draws with. The X display and authority file are not options: Open
// takes them from the DISPLAY/XAUTHORITY environment the process inherits.
type Options struct {
	Font    string
	BarH    int
	Schemes map[wm.SchemeName]wm.ColorScheme
}

// New constructs a Connection without opening the X11 connection; Open
// does that. Keeping construction and connection separate lets cmd/gowm
// build bindings (which need the resolved Core) before the event loop
// starts.
func New(opts Options) *Connection {
	schemes := make(map[wm.SchemeName]schemeColors, len(opts.Schemes))
	for name, s := range opts.Schemes {
		schemes[name] = schemeColors{Fg: s.Fg, Bg: s.Bg, Border: s.Border}
	}
	return &Connection{
		fontName: opts.Font,
		barH:     opts.BarH,
		schemes:  schemes,
		bars:     make(map[wm.WindowID]*barWindow),
		events:   make(chan wm.Event, 64),
	}
}

// Open implements wm.DisplayBackend. It connects to the X server named by
// the DISPLAY environment variable, substructure-redirects the root
// window (the exclusivity check every dwm-family manager performs at
// startup: BadAccess here means another WM is already running), and
// initializes the keybind/mousebind/randr extension modules.
func (c *Connection) Open() error {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("x11: connect: %w", err)
	}
	c.XUtil = xu
	c.Root = xu.RootWin()
	c.atoms = make(map[string]xproto.Atom)

	if err := xproto.ChangeWindowAttributesChecked(xu.Conn(), c.Root, xproto.CwEventMask,
		[]uint32{uint32(rootEventMask)}).Check(); err != nil {
		return fmt.Errorf("x11: another window manager is already running: %w", err)
	}

	keybind.Initialize(xu)
	mousebind.Initialize(xu)
	if err := randr.Init(xu.Conn()); err != nil {
		return fmt.Errorf("x11: randr init: %w", err)
	}
	randr.SelectInputChecked(xu.Conn(), c.Root, randr.NotifyMaskScreenChange).Check()

	c.ignoreMod = computeIgnoreMods(xu)

	go c.pump()
	return nil
}

const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskPropertyChange

// Close implements wm.DisplayBackend.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

// IgnoreModMask exposes the computed CapsLock/NumLock/ScrollLock union so
// cmd/gowm can install it into wm.Env before the first grab.
func (c *Connection) IgnoreModMask() uint16 { return c.ignoreMod }

// computeIgnoreMods mirrors configureIgnoreMods in the hotkey-handling
// reference this backend is grounded on: NumLock and ScrollLock move
// around the modifier table depending on the active keyboard mapping, so
// the ignore mask has to be discovered at connection time rather than
// hardcoded.
func computeIgnoreMods(xu *xgbutil.XUtil) uint16 {
	caps := uint16(xproto.ModMaskLock)
	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	mask := caps
	if numLock != 0 {
		mask |= numLock
	}
	if scrollLock != 0 {
		mask |= scrollLock
	}
	return mask
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

func (c *Connection) atom(name string) xproto.Atom {
	if a, ok := c.atoms[name]; ok {
		return a
	}
	reply, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone
	}
	c.atoms[name] = reply.Atom
	return reply.Atom
}
