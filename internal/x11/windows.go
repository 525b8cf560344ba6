package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/gowm/internal/wm"
)

// SetWMName implements wm.DisplayBackend by writing _NET_WM_NAME; used by
// the WM to rename its own check window, not application windows.
func (c *Connection) SetWMName(w wm.WindowID, name string) {
	ewmh.WmNameSet(c.XUtil, xproto.Window(w), name)
}

// GetWMName implements wm.DisplayBackend, preferring _NET_WM_NAME (UTF-8)
// and falling back to ICCCM WM_NAME. Names longer than 255 runes are cut
// to their first 255.
func (c *Connection) GetWMName(w wm.WindowID) (string, bool) {
	name, err := ewmh.WmNameGet(c.XUtil, xproto.Window(w))
	if err != nil || name == "" {
		if name, err = icccm.WmNameGet(c.XUtil, xproto.Window(w)); err != nil {
			return "", false
		}
	}
	if r := []rune(name); len(r) > 255 {
		name = string(r[:255])
	}
	return name, true
}

// SetSupported implements wm.DisplayBackend.
func (c *Connection) SetSupported(atoms []string) {
	ewmh.SupportedSet(c.XUtil, atoms)
}

// SetClientList implements wm.DisplayBackend.
func (c *Connection) SetClientList(wins []wm.WindowID) {
	list := make([]xproto.Window, len(wins))
	for i, w := range wins {
		list[i] = xproto.Window(w)
	}
	ewmh.ClientListSet(c.XUtil, list)
}

// SetActiveWindow implements wm.DisplayBackend.
func (c *Connection) SetActiveWindow(w wm.WindowID) {
	ewmh.ActiveWindowSet(c.XUtil, xproto.Window(w))
}

// GetNetWMState implements wm.DisplayBackend.
func (c *Connection) GetNetWMState(w wm.WindowID) []string {
	states, err := ewmh.WmStateGet(c.XUtil, xproto.Window(w))
	if err != nil {
		return nil
	}
	return states
}

// SetNetWMStateFullscreen implements wm.DisplayBackend.
func (c *Connection) SetNetWMStateFullscreen(w wm.WindowID, on bool) {
	action := 0 // _NET_WM_STATE_REMOVE
	if on {
		action = 1 // _NET_WM_STATE_ADD
	}
	ewmh.WmStateReq(c.XUtil, xproto.Window(w), action, "_NET_WM_STATE_FULLSCREEN")
}

// GetWMHints implements wm.DisplayBackend.
func (c *Connection) GetWMHints(w wm.WindowID) (urgent, neverFocus bool) {
	hints, err := icccm.WmHintsGet(c.XUtil, xproto.Window(w))
	if err != nil {
		return false, false
	}
	urgent = hints.Flags&icccm.HintUrgency != 0
	if hints.Flags&icccm.HintInput != 0 {
		neverFocus = hints.Input == 0
	}
	return urgent, neverFocus
}

// GetWMNormalHints implements wm.DisplayBackend, translating ICCCM
// WM_NORMAL_HINTS into wm.SizeHints (spec.md §4.F "ICCCM size-hint solving
// order").
func (c *Connection) GetWMNormalHints(w wm.WindowID) wm.SizeHints {
	hints, err := icccm.WmNormalHintsGet(c.XUtil, xproto.Window(w))
	if err != nil {
		return wm.SizeHints{}
	}
	out := wm.SizeHints{}
	if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		out.BaseW, out.BaseH = int(hints.BaseWidth), int(hints.BaseHeight)
	} else if hints.Flags&icccm.SizeHintPMinSize != 0 {
		out.BaseW, out.BaseH = int(hints.MinWidth), int(hints.MinHeight)
	}
	if hints.Flags&icccm.SizeHintPResizeInc != 0 {
		out.IncW, out.IncH = int(hints.WidthInc), int(hints.HeightInc)
	}
	if hints.Flags&icccm.SizeHintPMinSize != 0 {
		out.MinW, out.MinH = int(hints.MinWidth), int(hints.MinHeight)
	} else if hints.Flags&icccm.SizeHintPBaseSize != 0 {
		out.MinW, out.MinH = int(hints.BaseWidth), int(hints.BaseHeight)
	}
	if hints.Flags&icccm.SizeHintPMaxSize != 0 {
		out.MaxW, out.MaxH = int(hints.MaxWidth), int(hints.MaxHeight)
	}
	if hints.Flags&icccm.SizeHintPAspect != 0 && hints.MinAspectDen != 0 && hints.MaxAspectNum != 0 {
		out.MinA = float64(hints.MinAspectNum) / float64(hints.MinAspectDen)
		out.MaxA = float64(hints.MaxAspectNum) / float64(hints.MaxAspectDen)
	}
	return out
}

// GetWMTransientFor implements wm.DisplayBackend.
func (c *Connection) GetWMTransientFor(w wm.WindowID) (wm.WindowID, bool) {
	transFor, err := icccm.WmTransientForGet(c.XUtil, xproto.Window(w))
	if err != nil || transFor == 0 {
		return 0, false
	}
	return wm.WindowID(transFor), true
}

// GetWindowType implements wm.DisplayBackend.
func (c *Connection) GetWindowType(w wm.WindowID) (dialog, fullscreen bool) {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, xproto.Window(w))
	if err != nil {
		return false, false
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_DIALOG":
			dialog = true
		}
	}
	states, _ := ewmh.WmStateGet(c.XUtil, xproto.Window(w))
	for _, s := range states {
		if s == "_NET_WM_STATE_FULLSCREEN" {
			fullscreen = true
		}
	}
	return dialog, fullscreen
}

// GetWMProtocols implements wm.DisplayBackend.
func (c *Connection) GetWMProtocols(w wm.WindowID) (takeFocus, deleteWindow bool) {
	protocols, err := icccm.WmProtocolsGet(c.XUtil, xproto.Window(w))
	if err != nil {
		return false, false
	}
	for _, p := range protocols {
		switch p {
		case "WM_TAKE_FOCUS":
			takeFocus = true
		case "WM_DELETE_WINDOW":
			deleteWindow = true
		}
	}
	return takeFocus, deleteWindow
}

// SetWMState implements wm.DisplayBackend by writing ICCCM WM_STATE.
func (c *Connection) SetWMState(w wm.WindowID, state wm.WMState) {
	icccm.WmStateSet(c.XUtil, xproto.Window(w), &icccm.WmState{State: uint(state)})
}

// MoveResize implements wm.DisplayBackend.
func (c *Connection) MoveResize(w wm.WindowID, x, y, wd, ht int) {
	xproto.ConfigureWindow(c.XUtil.Conn(), xproto.Window(w),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), uint32(wd), uint32(ht)})
}

// ConfigureBorder implements wm.DisplayBackend.
func (c *Connection) ConfigureBorder(w wm.WindowID, border int) {
	xproto.ConfigureWindow(c.XUtil.Conn(), xproto.Window(w),
		xproto.ConfigWindowBorderWidth, []uint32{uint32(border)})
}

// SetBorderColor implements wm.DisplayBackend.
func (c *Connection) SetBorderColor(w wm.WindowID, scheme wm.ColorScheme) {
	xproto.ChangeWindowAttributes(c.XUtil.Conn(), xproto.Window(w),
		xproto.CwBorderPixel, []uint32{scheme.Border})
}

// MapWindow implements wm.DisplayBackend.
func (c *Connection) MapWindow(w wm.WindowID) {
	xproto.MapWindow(c.XUtil.Conn(), xproto.Window(w))
}

// UnmapWindow implements wm.DisplayBackend.
func (c *Connection) UnmapWindow(w wm.WindowID) {
	xproto.UnmapWindow(c.XUtil.Conn(), xproto.Window(w))
}

// DestroyWindow implements wm.DisplayBackend.
func (c *Connection) DestroyWindow(w wm.WindowID) {
	xproto.DestroyWindow(c.XUtil.Conn(), xproto.Window(w))
}

// RaiseWindow implements wm.DisplayBackend.
func (c *Connection) RaiseWindow(w wm.WindowID) {
	xproto.ConfigureWindow(c.XUtil.Conn(), xproto.Window(w),
		xproto.ConfigWindowStackMode, []uint32{xproto.StackModeAbove})
}

// RestackBelow implements wm.DisplayBackend.
func (c *Connection) RestackBelow(w, sibling wm.WindowID) {
	xproto.ConfigureWindow(c.XUtil.Conn(), xproto.Window(w),
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(sibling), xproto.StackModeBelow})
}

// SetInputFocus implements wm.DisplayBackend.
func (c *Connection) SetInputFocus(w wm.WindowID) {
	if w == 0 {
		xproto.SetInputFocus(c.XUtil.Conn(), xproto.InputFocusPointerRoot, c.Root, xproto.TimeCurrentTime)
		return
	}
	xproto.SetInputFocus(c.XUtil.Conn(), xproto.InputFocusPointerRoot, xproto.Window(w), xproto.TimeCurrentTime)
	ewmh.ActiveWindowSet(c.XUtil, xproto.Window(w))
}

// SendTakeFocus implements wm.DisplayBackend, sending WM_TAKE_FOCUS per
// ICCCM 4.1.7.
func (c *Connection) SendTakeFocus(w wm.WindowID) {
	c.sendProtocol(w, "WM_TAKE_FOCUS")
}

// SendDeleteWindow implements wm.DisplayBackend, sending WM_DELETE_WINDOW
// per ICCCM 4.2.8.1.
func (c *Connection) SendDeleteWindow(w wm.WindowID) {
	c.sendProtocol(w, "WM_DELETE_WINDOW")
}

func (c *Connection) sendProtocol(w wm.WindowID, protocol string) {
	wmProtocols := c.atom("WM_PROTOCOLS")
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: xproto.Window(w),
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(c.atom(protocol)), uint32(xproto.TimeCurrentTime), 0, 0, 0,
		}),
	}
	xproto.SendEvent(c.XUtil.Conn(), false, xproto.Window(w), xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// KillClient implements wm.DisplayBackend with a forced connection kill
// (spec.md §4.I `kill_client`'s fallback when WM_DELETE_WINDOW is absent).
func (c *Connection) KillClient(w wm.WindowID) {
	xproto.KillClient(c.XUtil.Conn(), uint32(w))
}
