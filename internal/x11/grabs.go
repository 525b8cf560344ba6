package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"

	"github.com/1broseidon/gowm/internal/wm"
)

// lockCombos are the modifier combinations that, OR'd onto a binding's own
// mask, must each get their own XGrabKey/XGrabButton call — X doesn't let
// a single grab ignore CapsLock/NumLock/ScrollLock, so every grab is
// issued once per combination of the (at most 3) ignored bits.
func (c *Connection) lockCombos() []uint16 {
	var bits []uint16
	for bit := uint16(1); bit != 0 && bit <= c.ignoreMod; bit <<= 1 {
		if c.ignoreMod&bit != 0 {
			bits = append(bits, bit)
		}
	}
	combos := []uint16{0}
	for _, bit := range bits {
		for _, base := range combos[:len(combos):len(combos)] {
			combos = append(combos, base|bit)
		}
	}
	return combos
}

// GrabKey implements wm.DisplayBackend.
func (c *Connection) GrabKey(mod uint16, keysym uint32) {
	keycodes := keybind.KeysymToKeycodes(c.XUtil, xproto.Keysym(keysym))
	for _, kc := range keycodes {
		for _, combo := range c.lockCombos() {
			xproto.GrabKey(c.XUtil.Conn(), true, c.Root, mod|combo, kc,
				xproto.GrabModeAsync, xproto.GrabModeAsync)
		}
	}
}

// UngrabAllKeys implements wm.DisplayBackend.
func (c *Connection) UngrabAllKeys() {
	xproto.UngrabKey(c.XUtil.Conn(), xproto.GrabAny, c.Root, xproto.ModMaskAny)
}

// GrabButtons implements wm.DisplayBackend. focused selects whether the
// unmodified-click passthrough grab (for raising an unfocused client on
// any click) is also installed, matching dwm's grabbuttons split.
func (c *Connection) GrabButtons(w wm.WindowID, focused bool, buttons []wm.MouseBinding) {
	xproto.UngrabButton(c.XUtil.Conn(), xproto.ButtonIndexAny, xproto.Window(w), xproto.ModMaskAny)

	if !focused {
		xproto.GrabButton(c.XUtil.Conn(), false, xproto.Window(w),
			xproto.EventMaskButtonPress, xproto.GrabModeSync, xproto.GrabModeSync,
			0, 0, xproto.ButtonIndexAny, xproto.ModMaskAny)
	}

	for _, b := range buttons {
		if b.Click != wm.ClickClientWin {
			continue
		}
		for _, combo := range c.lockCombos() {
			xproto.GrabButton(c.XUtil.Conn(), false, xproto.Window(w),
				xproto.EventMaskButtonPress, xproto.GrabModeAsync, xproto.GrabModeAsync,
				0, 0, xproto.Button(b.Button), b.Mod|combo)
		}
	}
}

// GrabPointerForDrag implements wm.DisplayBackend for drag_window/
// resize_with_mouse (spec.md §4.H "interactive drag/resize loop").
func (c *Connection) GrabPointerForDrag() bool {
	cursor, err := xcursor.CreateCursor(c.XUtil, xcursor.Fleur)
	if err != nil {
		cursor = 0
	}
	reply, err := xproto.GrabPointer(c.XUtil.Conn(), false, c.Root,
		xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync, 0, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil || reply.Status != xproto.GrabStatusSuccess {
		return false
	}
	c.grabbing = true
	return true
}

// UngrabPointer implements wm.DisplayBackend.
func (c *Connection) UngrabPointer() {
	xproto.UngrabPointer(c.XUtil.Conn(), xproto.TimeCurrentTime)
	c.grabbing = false
}

// GrabServer implements wm.DisplayBackend, used around the unmanage
// restack-and-destroy sequence (spec.md §4.I) to avoid racing the client.
func (c *Connection) GrabServer() {
	xproto.GrabServer(c.XUtil.Conn())
}

// UngrabServer implements wm.DisplayBackend.
func (c *Connection) UngrabServer() {
	xproto.UngrabServer(c.XUtil.Conn())
}
