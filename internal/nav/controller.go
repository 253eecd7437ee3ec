package nav

import "strings"

// Keys understood by HandleKey. Values match DOM KeyboardEvent.key.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowDown  = "ArrowDown"
	KeyArrowUp    = "ArrowUp"
	KeyEscape     = "Escape"
)

// NoFocus marks an empty focus coordinate.
const NoFocus = -1

// State is the navigation state of a single page view.
type State struct {
	MobileMenuOpen bool   `json:"mobileMenuOpen"`
	ActiveSubmenu  string `json:"activeSubmenu"` // empty when no submenu is open
}

// Focus locates the keyboard focus: Top indexes the menu, Sub indexes the
// children of Menu[Top] or is NoFocus when the top-level item itself has focus.
type Focus struct {
	Top int `json:"top"`
	Sub int `json:"sub"`
}

var noFocus = Focus{Top: NoFocus, Sub: NoFocus}

// Controller owns the menu open/closed state, the single open submenu and
// keyboard focus for one navigation root. It is not safe for concurrent use;
// callers drive it from one event loop.
type Controller struct {
	menu  Menu
	route string
	state State
	focus Focus

	unsubscribe func()
}

// NewController returns a controller in its initial state for route.
func NewController(menu Menu, route string) *Controller {
	return &Controller{menu: menu, route: route, focus: noFocus}
}

func (c *Controller) State() State  { return c.state }
func (c *Controller) Focus() Focus  { return c.focus }
func (c *Controller) Route() string { return c.route }
func (c *Controller) Menu() Menu    { return c.menu }

// IsActive reports whether path should be highlighted for the current route.
func (c *Controller) IsActive(path string) bool {
	return IsActive(c.route, path)
}

// IsActive matches route against an item path. The root only matches itself;
// other paths match exactly or as a whole-segment prefix, so "/service"
// matches "/service/web" but not "/servicex".
func IsActive(route, path string) bool {
	if path == "/" {
		return route == "/"
	}
	return route == path || strings.HasPrefix(route, path+"/")
}

// ToggleMobileMenu flips the mobile panel and closes any open submenu.
func (c *Controller) ToggleMobileMenu() {
	c.state.MobileMenuOpen = !c.state.MobileMenuOpen
	c.CloseSubmenu()
}

// SetActiveSubmenu opens the submenu of the top-level item at key, replacing
// any other. A key naming an item without children closes the open submenu;
// an empty key closes it too. Unknown keys are ignored.
func (c *Controller) SetActiveSubmenu(key string) {
	if key == "" {
		c.CloseSubmenu()
		return
	}
	i := c.menu.index(key)
	if i < 0 {
		return
	}
	if !c.menu[i].HasChildren() {
		c.CloseSubmenu()
		return
	}
	if c.state.ActiveSubmenu != key && c.focus.Sub != NoFocus {
		c.focus.Sub = NoFocus
	}
	c.state.ActiveSubmenu = key
}

// ToggleSubmenu opens the submenu at key, or closes it when it is already open.
func (c *Controller) ToggleSubmenu(key string) {
	if c.state.ActiveSubmenu == key {
		c.CloseSubmenu()
		return
	}
	c.SetActiveSubmenu(key)
}

// CloseSubmenu closes the open submenu. Focus inside it returns to its parent.
func (c *Controller) CloseSubmenu() {
	c.state.ActiveSubmenu = ""
	c.focus.Sub = NoFocus
}

// Navigate records a route change and resets the state.
func (c *Controller) Navigate(route string) {
	c.route = route
	c.reset()
}

func (c *Controller) reset() {
	c.state = State{}
	c.focus = noFocus
}

// Mount subscribes the controller to pointer events on bus so that presses
// outside the navigation root close everything. Mounting an already mounted
// controller first releases the old subscription.
func (c *Controller) Mount(bus *Bus) {
	c.Unmount()
	c.unsubscribe = bus.Subscribe(EventPointerDown, c.handlePointerDown)
}

// Unmount releases the pointer subscription. It is safe to call repeatedly.
func (c *Controller) Unmount() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Mounted reports whether the controller currently holds a subscription.
func (c *Controller) Mounted() bool {
	return c.unsubscribe != nil
}

func (c *Controller) handlePointerDown(ev Event) {
	if ev.Inside {
		return
	}
	c.reset()
}

// FocusItem moves focus to Menu[top], or to its child sub when sub is not
// NoFocus. Targets that are not rendered (out of range, or a child of a closed
// submenu) are ignored.
func (c *Controller) FocusItem(top, sub int) {
	if top < 0 || top >= len(c.menu) {
		return
	}
	if sub != NoFocus {
		item := c.menu[top]
		if c.state.ActiveSubmenu != item.Path || sub < 0 || sub >= len(item.Children) {
			return
		}
	}
	c.focus = Focus{Top: top, Sub: sub}
}

// HandleKey applies desktop keyboard traversal for key and reports whether
// the key was consumed.
func (c *Controller) HandleKey(key string) bool {
	if c.focus.Top < 0 || c.focus.Top >= len(c.menu) {
		return false
	}
	item := c.menu[c.focus.Top]

	if c.focus.Sub != NoFocus && c.state.ActiveSubmenu != item.Path {
		// The submenu closed underneath the focus.
		c.focus.Sub = NoFocus
	}
	if c.focus.Sub != NoFocus {
		return c.handleSubmenuKey(item, key)
	}

	n := len(c.menu)
	switch key {
	case KeyArrowRight:
		c.focus.Top = wrap(c.focus.Top+1, n)
		c.CloseSubmenu()
	case KeyArrowLeft:
		c.focus.Top = wrap(c.focus.Top-1, n)
		c.CloseSubmenu()
	case KeyArrowDown:
		if !item.HasChildren() {
			return false
		}
		c.SetActiveSubmenu(item.Path)
		c.focus.Sub = 0
	case KeyEscape:
		c.CloseSubmenu()
	default:
		return false
	}
	return true
}

func (c *Controller) handleSubmenuKey(item Item, key string) bool {
	n := len(item.Children)
	switch key {
	case KeyArrowDown:
		c.focus.Sub = wrap(c.focus.Sub+1, n)
	case KeyArrowUp:
		c.focus.Sub = wrap(c.focus.Sub-1, n)
	case KeyEscape:
		c.CloseSubmenu()
	default:
		return false
	}
	return true
}

// wrap maps i onto [0, n) circularly.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
