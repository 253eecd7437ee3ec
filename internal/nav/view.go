package nav

// ItemView is a render-ready navigation entry.
type ItemView struct {
	Path     string
	Label    string
	Active   bool
	Open     bool
	Focused  bool
	Children []ItemView
}

// HasChildren reports whether the entry renders a submenu toggle.
func (v ItemView) HasChildren() bool {
	return len(v.Children) > 0
}

// View is what the header template needs to draw the navigation.
type View struct {
	Route          string
	MobileMenuOpen bool
	Items          []ItemView
}

// View projects the controller state onto the menu.
func (c *Controller) View() View {
	v := View{
		Route:          c.route,
		MobileMenuOpen: c.state.MobileMenuOpen,
		Items:          make([]ItemView, 0, len(c.menu)),
	}
	for i, it := range c.menu {
		iv := ItemView{
			Path:    it.Path,
			Label:   it.Label,
			Active:  c.IsActive(it.Path),
			Open:    it.HasChildren() && c.state.ActiveSubmenu == it.Path,
			Focused: c.focus.Top == i && c.focus.Sub == NoFocus,
		}
		for j, child := range it.Children {
			iv.Children = append(iv.Children, ItemView{
				Path:    child.Path,
				Label:   child.Label,
				Active:  c.IsActive(child.Path),
				Focused: c.focus.Top == i && c.focus.Sub == j,
			})
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

// Render returns the initial view of menu for route.
func Render(menu Menu, route string) View {
	return NewController(menu, route).View()
}
