package model

const (
	MenuWidth      = 100
	MenuItemHeight = 26
)

// Menu is a drop-down: a button showing the current option which, when
// clicked, lists every option over it.
type Menu struct {
	Options []string
	Current string
	Open    bool
	hidden  bool
	button  Rect
	winH    int
}

func NewMenu(options []string) *Menu {
	m := &Menu{Options: options}
	if len(options) > 0 {
		m.Current = options[0]
	}
	return m
}

// Place centers the button in a winW x winH window.
func (m *Menu) Place(winW, winH int) {
	m.button = Rect{X: (winW - MenuWidth) / 2, Y: (winH - MenuItemHeight) / 2, W: MenuWidth, H: MenuItemHeight}
	m.winH = winH
}

func (m *Menu) Button() Rect {
	return m.button
}

// Item is the rect of option k while the list is open. The list starts on
// the button and is pushed up when it would leave the window.
func (m *Menu) Item(k int) Rect {
	top := m.button.Y
	if over := top + len(m.Options)*MenuItemHeight - m.winH; over > 0 {
		top -= over
	}
	if top < 0 {
		top = 0
	}
	return Rect{X: m.button.X, Y: top + k*MenuItemHeight, W: MenuWidth, H: MenuItemHeight}
}

// Click feeds a mouse click to the menu and returns the chosen option, if
// the click chose one.
func (m *Menu) Click(x, y int) (string, bool) {
	if m.hidden {
		return "", false
	}
	if m.Open {
		m.Open = false
		for k, o := range m.Options {
			if m.Item(k).Contains(x, y) {
				m.Current = o
				return o, true
			}
		}
		return "", false
	}
	if m.button.Contains(x, y) {
		m.Open = true
	}
	return "", false
}

// Covers reports whether a click at (x, y) belongs to the menu rather than
// to whatever is drawn under it.
func (m *Menu) Covers(x, y int) bool {
	if m.hidden {
		return false
	}
	return m.Open || m.button.Contains(x, y)
}

func (m *Menu) Hide() {
	m.hidden = true
	m.Open = false
}

func (m *Menu) Show() {
	m.hidden = false
}

func (m *Menu) Visible() bool {
	return !m.hidden
}
