package x11

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/gowm/internal/wm"
)

// QueryScreens implements wm.DisplayBackend using XRandR CRTC geometry,
// the same enumeration the reference monitor discovery in this package
// used for a single "active monitor" query, generalized here to return
// every enabled CRTC rather than picking one.
func (c *Connection) QueryScreens() []wm.ScreenRect {
	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil
	}

	var screens []wm.ScreenRect
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		screens = append(screens, wm.ScreenRect{
			X: int(info.X), Y: int(info.Y),
			W: int(info.Width), H: int(info.Height),
		})
	}
	return screens
}

// RootGeometry implements wm.DisplayBackend, the fallback bootstrap.go
// uses when RandR reports no CRTCs (e.g. a bare Xvfb root with no
// configured outputs).
func (c *Connection) RootGeometry() wm.ScreenRect {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return wm.ScreenRect{}
	}
	return wm.ScreenRect{X: 0, Y: 0, W: int(geom.Width), H: int(geom.Height)}
}

// QueryPointer implements wm.DisplayBackend.
func (c *Connection) QueryPointer() (x, y int, win wm.WindowID) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, 0
	}
	return int(reply.RootX), int(reply.RootY), wm.WindowID(reply.Child)
}

// ScanWindows implements wm.DisplayBackend's bootstrap window scan
// (spec.md §4.J): every top-level child of the root that is mapped or
// iconic and not override-redirect.
func (c *Connection) ScanWindows() []wm.WindowID {
	tree, err := xproto.QueryTree(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil
	}

	var out []wm.WindowID
	for _, win := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), win).Reply()
		if err != nil || attrs.OverrideRedirect {
			continue
		}
		if attrs.MapState == xproto.MapStateViewable {
			out = append(out, wm.WindowID(win))
			continue
		}
		if hints, err := icccm.WmStateGet(c.XUtil, win); err == nil && hints.State == icccm.StateIconic {
			out = append(out, wm.WindowID(win))
		}
	}
	return out
}
