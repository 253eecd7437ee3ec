package nav

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is a navigation entry. Top-level items may carry one level of children.
type Item struct {
	Path     string `yaml:"path"`
	Label    string `yaml:"label"`
	Children []Item `yaml:"children,omitempty"`
}

// HasChildren reports whether the item opens a submenu.
func (it Item) HasChildren() bool {
	return len(it.Children) > 0
}

// Menu is the ordered, immutable list of top-level items.
type Menu []Item

var errEmptyMenu = errors.New("navigation menu has no items")

// LoadMenu reads and validates a YAML menu file from fsys.
func LoadMenu(fsys fs.FS, name string) (Menu, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("could not read navigation file %s: %w", name, err)
	}
	menu, err := ParseMenu(data)
	if err != nil {
		return nil, fmt.Errorf("invalid navigation file %s: %w", name, err)
	}
	return menu, nil
}

// ParseMenu decodes a YAML list of items and checks depth and path rules.
func ParseMenu(data []byte) (Menu, error) {
	var menu Menu
	if err := yaml.Unmarshal(data, &menu); err != nil {
		return nil, fmt.Errorf("could not parse navigation: %w", err)
	}
	if err := menu.validate(); err != nil {
		return nil, err
	}
	return menu, nil
}

func (m Menu) validate() error {
	if len(m) == 0 {
		return errEmptyMenu
	}
	seen := make(map[string]bool)
	check := func(it Item) error {
		if !strings.HasPrefix(it.Path, "/") {
			return fmt.Errorf("item %q: path %q must start with /", it.Label, it.Path)
		}
		if seen[it.Path] {
			return fmt.Errorf("duplicate path %q", it.Path)
		}
		seen[it.Path] = true
		return nil
	}
	for _, it := range m {
		if err := check(it); err != nil {
			return err
		}
		for _, child := range it.Children {
			if err := check(child); err != nil {
				return err
			}
			if child.HasChildren() {
				return fmt.Errorf("item %q: submenus cannot be nested", child.Label)
			}
		}
	}
	return nil
}

// index returns the position of the top-level item with the given path, or -1.
func (m Menu) index(path string) int {
	for i, it := range m {
		if it.Path == path {
			return i
		}
	}
	return -1
}
