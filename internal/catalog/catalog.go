package catalog

import "fmt"

// Catalog is the process-wide tweak registry. It is built once at startup
// and read-only afterwards; there is no mutation API.
type Catalog struct {
	categories []Category
	byName     map[string]*Tweak
}

// Build validates the built-in catalog and constructs the name index.
// A duplicate tweak name or an empty apply command is a defect in the
// catalog definition, reported here so startup can abort before any UI
// is shown.
func Build() (*Catalog, error) {
	return BuildFrom(builtin())
}

// BuildFrom constructs a catalog from explicit categories, applying the
// same invariant checks as Build. Mainly useful for tests.
func BuildFrom(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		byName:     make(map[string]*Tweak),
	}

	for ci := range c.categories {
		cat := &c.categories[ci]
		for ti := range cat.Tweaks {
			t := &cat.Tweaks[ti]
			if t.ApplyCommand == "" {
				return nil, fmt.Errorf("tweak %q has no apply command", t.Name)
			}
			if _, exists := c.byName[t.Name]; exists {
				return nil, fmt.Errorf("duplicate tweak name %q", t.Name)
			}
			c.byName[t.Name] = t
		}
	}

	return c, nil
}

// Categories returns the categories in display order. The slice is shared;
// callers must treat it as read-only.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Find looks up a tweak by its exact name.
func (c *Catalog) Find(name string) (Tweak, bool) {
	t, ok := c.byName[name]
	if !ok {
		return Tweak{}, false
	}
	return *t, true
}

// Names returns every tweak name in display order.
func (c *Catalog) Names() []string {
	var names []string
	for _, cat := range c.categories {
		for _, t := range cat.Tweaks {
			names = append(names, t.Name)
		}
	}
	return names
}

// Len returns the total number of tweaks.
func (c *Catalog) Len() int {
	return len(c.byName)
}
