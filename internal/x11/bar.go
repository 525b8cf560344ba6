package x11

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/1broseidon/gowm/internal/wm"
)

// barFace is the rendering face every bar uses. spec.md §6's `font` field
// names an XLFD-like descriptor ("monospace:size=10"); this backend does
// not depend on fontconfig or a core-font server to resolve it, and
// instead renders with the embedded basicfont face — legible and
// dependency-free, the same tradeoff status-bar-only X11 tools in the Go
// ecosystem make when they want to avoid a cgo freetype binding.
var barFace = basicfont.Face7x13

// barWindow is the xwindow-backed pixmap surface behind one bar
// (tagbar or clientbar) on one monitor.
type barWindow struct {
	win *xwindow.Window
	img *xgraphics.Image
	w   int
}

// BarHeight implements wm.DisplayBackend.
func (c *Connection) BarHeight() int {
	if c.barH > 0 {
		return c.barH
	}
	return barFace.Height + 4
}

// TextWidth implements wm.DisplayBackend.
func (c *Connection) TextWidth(s string) int {
	return font.MeasureString(barFace, s).Round() + 8
}

// DrawTagbar implements wm.DisplayBackend, lazily creating the bar window
// on first draw and repainting the full model every call — spec.md §4.G
// treats the bar as fully recomputed rather than incrementally patched.
func (c *Connection) DrawTagbar(m *wm.Monitor, model wm.TagbarModel) {
	bw := c.barFor(&m.TagbarWin, m.MX, m.TagbarY, m.MW)
	if bw == nil {
		return
	}

	draw.Draw(bw.img, bw.img.Bounds(), image.NewUniform(c.rgb(c.schemes[wm.SchemeNormal].Bg)), image.Point{}, draw.Src)

	x := 0
	for _, tag := range model.Tags {
		label := tag.Label
		w := c.TextWidth(label)
		sc := c.schemes[tag.Scheme]
		draw.Draw(bw.img, image.Rect(x, 0, x+w, bw.img.Bounds().Dy()), image.NewUniform(c.rgb(sc.Bg)), image.Point{}, draw.Src)
		drawText(bw.img, x+4, c.rgb(sc.Fg), label)
		x += w
	}

	symW := c.TextWidth(model.LayoutSymbol)
	drawText(bw.img, x+4, c.rgb(c.schemes[wm.SchemeNormal].Fg), model.LayoutSymbol)
	x += symW

	if model.StatusText != "" {
		statusW := c.TextWidth(model.StatusText)
		sx := bw.w - statusW
		if sx > x {
			drawText(bw.img, sx+4, c.rgb(c.schemes[wm.SchemeNormal].Fg), model.StatusText)
		}
	}

	if model.CenterText != "" {
		sc := c.schemes[model.CenterScheme]
		draw.Draw(bw.img, image.Rect(x, 0, bw.w, bw.img.Bounds().Dy()), image.NewUniform(c.rgb(sc.Bg)), image.Point{}, draw.Src)
		drawText(bw.img, x+4, c.rgb(sc.Fg), model.CenterText)
	}

	c.paint(bw)
}

// DrawClientbar implements wm.DisplayBackend.
func (c *Connection) DrawClientbar(m *wm.Monitor, model wm.ClientbarModel) {
	bw := c.barFor(&m.ClientbarWin, m.MX, m.ClientbarY, m.MW)
	if bw == nil {
		return
	}

	draw.Draw(bw.img, bw.img.Bounds(), image.NewUniform(c.rgb(c.schemes[wm.SchemeNormal].Bg)), image.Point{}, draw.Src)

	x := 0
	for _, tab := range model.Tabs {
		sc := c.schemes[tab.Scheme]
		draw.Draw(bw.img, image.Rect(x, 0, x+tab.Width, bw.img.Bounds().Dy()), image.NewUniform(c.rgb(sc.Bg)), image.Point{}, draw.Src)
		title := tab.Client.Name
		if tab.Marked {
			title = "*" + title
		}
		drawText(bw.img, x+4, c.rgb(sc.Fg), title)
		x += tab.Width
	}

	c.paint(bw)
}

// barFor returns the barWindow for *winField, creating and mapping the
// backing xwindow/pixmap on first use, or nil when the bar is hidden
// (Y < 0, spec.md §4.G).
func (c *Connection) barFor(winField *wm.WindowID, mx, barY, width int) *barWindow {
	if barY < 0 {
		if *winField != 0 {
			xproto.UnmapWindow(c.XUtil.Conn(), xproto.Window(*winField))
		}
		return nil
	}

	if bw, ok := c.bars[*winField]; ok && *winField != 0 {
		if bw.w != width {
			bw.img = xgraphics.New(c.XUtil, image.Rect(0, 0, width, c.BarHeight()))
			bw.w = width
		}
		bw.win.MoveResize(mx, barY, width, c.BarHeight())
		xproto.MapWindow(c.XUtil.Conn(), xproto.Window(*winField))
		return bw
	}

	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return nil
	}
	if err := win.CreateChecked(c.Root, mx, barY, width, c.BarHeight(), 0); err != nil {
		return nil
	}
	win.Map()

	bw := &barWindow{
		win: win,
		img: xgraphics.New(c.XUtil, image.Rect(0, 0, width, c.BarHeight())),
		w:   width,
	}
	*winField = wm.WindowID(win.Id)
	c.bars[*winField] = bw
	return bw
}

func (c *Connection) paint(bw *barWindow) {
	bw.img.XSurfaceSet(bw.win.Id)
	bw.img.XDraw()
	bw.img.XPaint(bw.win.Id)
}

func (c *Connection) rgb(packed uint32) color.Color {
	return color.RGBA{
		R: uint8(packed >> 16), G: uint8(packed >> 8), B: uint8(packed), A: 0xff,
	}
}

func drawText(img draw.Image, x int, clr color.Color, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: barFace,
		Dot:  fixed.P(x, barFace.Height),
	}
	d.DrawString(s)
}
