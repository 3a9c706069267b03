package sapling

import "github.com/hajimehoshi/ebiten/v2"

// MenuItem is the behavior Menu needs from a widget. Button and
// ToggleButton both implement it.
type MenuItem interface {
	// Activate runs the item's action and updates its visual state.
	Activate()
	// Draw renders the item using its internal state.
	Draw(dst *ebiten.Image)
	// DrawState renders the item with an explicit highlight state.
	DrawState(dst *ebiten.Image, highlighted bool)
	// Bounds is the item's hit rectangle in logical coordinates.
	Bounds() Rect
}

// Menu is a Handler that navigates an ordered list of items with the
// keyboard and mouse: arrow keys move the active index with wraparound,
// Enter or Space activates the active item, and a primary-button click on
// an item selects and activates it. Use it as a Screen's handler directly,
// or embed it and override HandleEvent/Draw for custom screens.
type Menu struct {
	items []MenuItem
	index int
}

// NewMenu returns a Menu over the given items. The first item is active.
func NewMenu(items ...MenuItem) *Menu {
	return &Menu{items: items}
}

// Add appends items to the menu.
func (m *Menu) Add(items ...MenuItem) {
	m.items = append(m.items, items...)
}

// Items returns the menu's item list. The returned slice must not be
// mutated.
func (m *Menu) Items() []MenuItem {
	return m.items
}

// ActiveIndex returns the index of the active item.
func (m *Menu) ActiveIndex() int {
	return m.index
}

// Next moves the active index forward, wrapping to the first item.
func (m *Menu) Next() {
	if len(m.items) == 0 {
		return
	}
	m.index++
	if m.index >= len(m.items) {
		m.index %= len(m.items)
	}
}

// Prev moves the active index backward, wrapping to the last item.
func (m *Menu) Prev() {
	if len(m.items) == 0 {
		return
	}
	m.index--
	if m.index < 0 {
		m.index = len(m.items) - 1
	}
}

// ActivateCurrent activates the active item. No-op on an empty menu.
func (m *Menu) ActivateCurrent() {
	if len(m.items) == 0 {
		return
	}
	m.items[m.index].Activate()
}

// Click selects and activates the first item, in list order, whose bounds
// contain p. It reports whether an item was hit.
func (m *Menu) Click(p Point) bool {
	for i, item := range m.items {
		if item.Bounds().Contains(p) {
			m.index = i
			item.Activate()
			return true
		}
	}
	return false
}

// HandleEvent implements Handler. Down/Right select the next item, Up/Left
// the previous, Enter/Space activate, and a left mouse press clicks at the
// event position.
func (m *Menu) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		switch ev.Key {
		case ebiten.KeyArrowDown, ebiten.KeyArrowRight:
			m.Next()
		case ebiten.KeyArrowUp, ebiten.KeyArrowLeft:
			m.Prev()
		case ebiten.KeyEnter, ebiten.KeySpace:
			m.ActivateCurrent()
		}
	case EventMouseDown:
		if ev.Button == ebiten.MouseButtonLeft {
			m.Click(ev.Pos)
		}
	case EventQuit, EventKeyUp, EventMouseUp:
		// Nothing to do.
	}
}

// Update implements Handler.
func (m *Menu) Update() {}

// Draw implements Handler. Every item draws with its internal state except
// the active one, which draws highlighted.
func (m *Menu) Draw(dst *ebiten.Image) {
	for i, item := range m.items {
		if i == m.index {
			item.DrawState(dst, true)
			continue
		}
		item.Draw(dst)
	}
}
