package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"

	"github.com/1broseidon/gowm/internal/wm"
)

// pump reads the wire protocol in its own goroutine and translates each
// event into a wm.Event before handing it to NextEvent, so the core's
// blocking receive never has to know about xgb's WaitForEvent/WaitForError
// split.
func (c *Connection) pump() {
	for {
		ev, err := c.XUtil.Conn().WaitForEvent()
		if err != nil {
			continue
		}
		if ev == nil {
			return
		}
		if translated := c.translate(ev); translated != nil {
			c.events <- translated
		}
	}
}

// NextEvent implements wm.DisplayBackend.
func (c *Connection) NextEvent() (wm.Event, error) {
	ev, ok := <-c.events
	if !ok {
		return nil, fmt.Errorf("x11: connection closed")
	}
	return ev, nil
}

// DrainEnterEvents implements wm.DisplayBackend. It syncs the connection
// so every EnterNotify the preceding restack's window moves provoked has
// already been translated onto c.events, then discards exactly the events
// queued as of this call that are EnterNotify, requeuing everything else
// in its original relative order. Events pump appends afterward land
// behind the requeued ones rather than reordering the stale ones away.
func (c *Connection) DrainEnterEvents() {
	// A round trip forces the server to have processed (and queued
	// notification for) every request restack issued before this call;
	// xgb has no direct XSync wrapper, so GetInputFocus is the standard
	// throwaway request used to force one.
	_, _ = xproto.GetInputFocus(c.XUtil.Conn()).Reply()
	n := len(c.events)
	for i := 0; i < n; i++ {
		ev := <-c.events
		if _, ok := ev.(wm.EnterNotifyEvent); ok {
			continue
		}
		c.events <- ev
	}
}

func (c *Connection) translate(ev xgb.Event) wm.Event {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		return wm.ButtonPressEvent{
			Window: wm.WindowID(e.Event),
			RootX:  int(e.RootX), RootY: int(e.RootY),
			Button: uint8(e.Detail),
			Mod:    cleanButtonState(e.State, c.ignoreMod),
		}
	case xproto.ClientMessageEvent:
		return wm.ClientMessageEvent{
			Window: wm.WindowID(e.Window),
			Atom:   c.atomName(e.Type),
			Data:   clientMessageData32(e),
		}
	case xproto.ConfigureRequestEvent:
		return wm.ConfigureRequestEvent{
			Window:    wm.WindowID(e.Window),
			X:         int(e.X), Y: int(e.Y),
			W: int(e.Width), H: int(e.Height),
			Border:    int(e.BorderWidth),
			ValueMask: e.ValueMask,
		}
	case xproto.ConfigureNotifyEvent:
		return wm.ConfigureNotifyEvent{
			Window: wm.WindowID(e.Window),
			IsRoot: e.Window == c.Root,
			W:      int(e.Width), H: int(e.Height),
		}
	case xproto.DestroyNotifyEvent:
		return wm.DestroyNotifyEvent{Window: wm.WindowID(e.Window)}
	case xproto.UnmapNotifyEvent:
		// xgb's typed event struct doesn't expose the synthetic (SendEvent)
		// bit from the wire response-type byte; withdrawal instead tracks
		// the client's own WM_STATE transition, kept current by SetWMState.
		return wm.UnmapNotifyEvent{Window: wm.WindowID(e.Window)}
	case xproto.EnterNotifyEvent:
		return wm.EnterNotifyEvent{
			Window: wm.WindowID(e.Event),
			RootX:  int(e.RootX), RootY: int(e.RootY),
			Mode: int(e.Mode),
		}
	case xproto.ExposeEvent:
		if e.Count != 0 {
			return nil
		}
		return wm.ExposeEvent{Window: wm.WindowID(e.Window)}
	case xproto.FocusInEvent:
		return wm.FocusInEvent{Window: wm.WindowID(e.Event)}
	case xproto.KeyPressEvent:
		keysym := keybind.KeysymGet(c.XUtil, e.Detail, 0)
		return wm.KeyPressEvent{
			Keysym: uint32(keysym),
			Mod:    e.State &^ c.ignoreMod,
		}
	case xproto.MappingNotifyEvent:
		keybind.Initialize(c.XUtil)
		mousebind.Initialize(c.XUtil)
		return wm.MappingNotifyEvent{}
	case xproto.MapRequestEvent:
		return wm.MapRequestEvent{Window: wm.WindowID(e.Window)}
	case xproto.MotionNotifyEvent:
		return wm.MotionNotifyEvent{
			Window: wm.WindowID(e.Event),
			RootX:  int(e.RootX), RootY: int(e.RootY),
		}
	case xproto.PropertyNotifyEvent:
		return wm.PropertyNotifyEvent{
			Window: wm.WindowID(e.Window),
			Atom:   c.atomName(e.Atom),
		}
	case randr.ScreenChangeNotifyEvent:
		// Surfaced as a synthetic ConfigureNotify on the root window;
		// Core.Dispatch's root branch triggers ReconcileMonitors.
		return wm.ConfigureNotifyEvent{Window: wm.WindowID(c.Root), IsRoot: true}
	default:
		return nil
	}
}

func clientMessageData32(e xproto.ClientMessageEvent) [5]uint32 {
	var out [5]uint32
	data := e.Data.Data32
	for i := 0; i < 5 && i < len(data); i++ {
		out[i] = data[i]
	}
	return out
}

func (c *Connection) atomName(a xproto.Atom) string {
	reply, err := xproto.GetAtomName(c.XUtil.Conn(), a).Reply()
	if err != nil {
		return ""
	}
	return string(reply.Name)
}

// cleanButtonState strips the configured ignore mask from a button event's
// modifier state the same way wm/events.go's cleanMask does for key
// events, so mouse bindings compare against a canonical mask too.
func cleanButtonState(state uint16, ignore uint16) uint16 {
	return state &^ ignore
}
