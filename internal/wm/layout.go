package wm

import "strconv"

// LayoutKind distinguishes the layout families that need special-casing
// elsewhere (onscreen derivation in focus.go, client-bar auto-show here).
type LayoutKind int

const (
	KindTile LayoutKind = iota
	KindDeck
	KindMonocle
	KindFloating
)

// Layout is one entry of the configured layout list (spec.md §6 "Layout
// list"). Arrange is nil for the floating pass-through layout — §4.A's
// size-hint rule ("the current layout is floating") tests exactly that.
type Layout struct {
	Symbol  string
	Kind    LayoutKind
	Arrange func(m *Monitor)
}

// TileLayout arranges tag-visible, non-minimized, non-floating clients into
// a master column (the first NumMarkedWin of them) and a stack column (the
// rest), per spec.md §4.D.
func TileLayout(m *Monitor) {
	clients := tiledClients(m)
	n := len(clients)
	if n == 0 {
		return
	}

	mCount := m.NumMarkedWin
	if mCount > n {
		mCount = n
	}

	var masterWidth int
	if n <= mCount {
		masterWidth = m.WW
	} else if mCount > 0 {
		masterWidth = roundFloat(float64(m.WW) * m.MarkedWidth)
	}

	usedY := 0
	for i := 0; i < mCount; i++ {
		c := clients[i]
		h := remainingDiv(m.WH-usedY, mCount-i)
		setTiledGeometry(c, m.WX, m.WY+usedY, masterWidth, h)
		usedY += h
	}

	usedY = 0
	stackX := m.WX + masterWidth
	stackW := m.WW - masterWidth
	stackCount := n - mCount
	for i := 0; i < stackCount; i++ {
		c := clients[mCount+i]
		h := remainingDiv(m.WH-usedY, stackCount-i)
		setTiledGeometry(c, stackX, m.WY+usedY, stackW, h)
		usedY += h
	}
}

// DeckLayout is TileLayout's master column with a single full-height stack
// rectangle; the layout symbol is overridden to "D n".
func DeckLayout(m *Monitor) {
	clients := tiledClients(m)
	n := len(clients)
	if n == 0 {
		return
	}
	mCount := minInt(m.NumMarkedWin, n)

	var masterWidth int
	if n <= mCount {
		masterWidth = m.WW
	} else if mCount > 0 {
		masterWidth = roundFloat(float64(m.WW) * m.MarkedWidth)
	}

	usedY := 0
	for i := 0; i < mCount; i++ {
		h := remainingDiv(m.WH-usedY, mCount-i)
		setTiledGeometry(clients[i], m.WX, m.WY+usedY, masterWidth, h)
		usedY += h
	}

	stackCount := n - mCount
	if stackCount > 0 {
		// Single full-height slot; every stacked client occupies the same
		// rectangle (only the onscreen one is actually drawn — see focus.go).
		for i := mCount; i < n; i++ {
			setTiledGeometry(clients[i], m.WX+masterWidth, m.WY, m.WW-masterWidth, m.WH)
		}
	}
	m.LayoutSymbol = deckSymbol(stackCount)
}

// MonocleLayout resizes every tag-visible client to the full work-area;
// the layout symbol is overridden to "[n]".
func MonocleLayout(m *Monitor) {
	n := 0
	for c := m.clients; c != nil; c = c.next {
		if c.TagVisible() && !c.Minimized {
			n++
			setTiledGeometry(c, m.WX, m.WY, m.WW, m.WH)
		}
	}
	m.LayoutSymbol = monocleSymbol(n)
}

// tiledClients returns, in order-list order, every non-floating,
// tag-visible, non-minimized client on m.
func tiledClients(m *Monitor) []*Client {
	var out []*Client
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		out = append(out, c)
	}
	return out
}

// setTiledGeometry applies a rectangle to a tiled client, subtracting the
// border from each dimension as spec.md §4.D requires.
func setTiledGeometry(c *Client, x, y, w, h int) {
	bw := c.Border
	c.X, c.Y = x, y
	c.W = maxInt(1, w-2*bw)
	c.H = maxInt(1, h-2*bw)
}

// remainingDiv distributes `total` over `count` slots with the tie-break
// "remaining height distributed by sequential floor; the last slot absorbs
// the remainder" — here expressed as floor(total/count) for every slot
// except naturally absorbing drift because usedY accumulates exact sums.
func remainingDiv(total, count int) int {
	if count <= 0 {
		return total
	}
	return total / count
}

func roundFloat(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

func deckSymbol(stacked int) string {
	return "D " + strconv.Itoa(stacked)
}

func monocleSymbol(n int) string {
	return "[" + strconv.Itoa(n) + "]"
}
