package wm

// ResizeHints is the subset of global config geometry.go needs: whether
// ICCCM size hints are honored unconditionally, and the bar height (a
// window is never smaller than a bar row).
type ResizeHints struct {
	Always bool // global `resizehints` flag
	BarH   int
}

// ScreenRect is the full-screen rectangle used for the "interact" (mouse
// drag) containment branch of ApplyGeometry.
type ScreenRect struct{ X, Y, W, H int }

// ApplyGeometry is the geometry & size-hint solver of spec.md §4.A. It
// returns the (possibly adjusted) rectangle and whether it differs from
// the client's current one.
func ApplyGeometry(c *Client, x, y, w, h int, interact bool, screen ScreenRect, hints ResizeHints, resizehintsGlobal, floatingLayout bool) (nx, ny, nw, nh int, changed bool) {
	w = maxInt(1, w)
	h = maxInt(1, h)

	bw := c.Border
	if interact {
		if x > screen.X+screen.W {
			x = screen.X + screen.W - w - 2*bw
		}
		if y > screen.Y+screen.H {
			y = screen.Y + screen.H - h - 2*bw
		}
		if x+w+2*bw < screen.X {
			x = screen.X
		}
		if y+h+2*bw < screen.Y {
			y = screen.Y
		}
	} else if c.Mon != nil {
		m := c.Mon
		if x > m.WX+m.WW {
			x = m.WX + m.WW - w - 2*bw
		}
		if y > m.WY+m.WH {
			y = m.WY + m.WH - h - 2*bw
		}
		if x+w+2*bw < m.WX {
			x = m.WX
		}
		if y+h+2*bw < m.WY {
			y = m.WY
		}
	}

	if h < hints.BarH {
		h = hints.BarH
	}
	if w < hints.BarH {
		w = hints.BarH
	}

	if resizehintsGlobal || c.Floating || floatingLayout {
		sh := c.Hints
		baseIsMin := sh.BaseW == sh.MinW && sh.BaseH == sh.MinH

		bw2, bh2 := sh.BaseW, sh.BaseH
		if baseIsMin {
			w -= bw2
			h -= bh2
		}

		if sh.MaxA > 0 && sh.MinA > 0 {
			fw, fh := float64(w), float64(h)
			if sh.MaxA < fw/fh {
				w = roundFloat(fh * sh.MaxA)
			} else if sh.MinA < fh/fw {
				h = roundFloat(fw * sh.MinA)
			}
		}

		if sh.IncW > 0 {
			w -= w % sh.IncW
		}
		if sh.IncH > 0 {
			h -= h % sh.IncH
		}

		w += bw2
		h += bh2

		w = maxInt(w, sh.MinW)
		h = maxInt(h, sh.MinH)
		if sh.MaxW > 0 {
			w = minInt(w, sh.MaxW)
		}
		if sh.MaxH > 0 {
			h = minInt(h, sh.MaxH)
		}
	}

	changed = x != c.X || y != c.Y || w != c.W || h != c.H
	return x, y, w, h, changed
}
