package catalog

import (
	"sort"
)

// Catalog maps food identities to descriptors
// Read-only after construction, safe for concurrent lookups
type Catalog struct {
	items []Descriptor
	index map[string]int
	ids   []string
}

// New builds a catalog from id -> descriptor entries
func New(entries map[string]Descriptor) *Catalog {
	c := &Catalog{
		items: make([]Descriptor, 0, len(entries)),
		index: make(map[string]int, len(entries)),
		ids:   make([]string, 0, len(entries)),
	}
	for id := range entries {
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	for _, id := range c.ids {
		c.index[id] = len(c.items)
		c.items = append(c.items, entries[id])
	}
	return c
}

// Lookup returns the catalog-owned descriptor for id
// The pointer stays valid for the catalog's lifetime
func (c *Catalog) Lookup(id string) (*Descriptor, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

// IDs returns all food identities in sorted order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Len returns the number of foods in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}

// Default returns the built-in food set
func Default() *Catalog {
	return New(map[string]Descriptor{
		"apple":    MustDescriptor("Apple", 5, Fruit),
		"banana":   MustDescriptor("Banana", 5, Fruit),
		"carrot":   MustDescriptor("Carrot", 4, Vegetable),
		"broccoli": MustDescriptor("Broccoli", 6, Vegetable),
		"steak":    MustDescriptor("Steak", 10, Meat),
		"cheese":   MustDescriptor("Cheese", 7, Dairy),
		"bread":    MustDescriptor("Bread", 3, Grain),
		"cake":     MustDescriptor("Cake", 8, Sweet, Grain, Dairy),
		"burger":   MustDescriptor("Burger", 12, Junk, Meat, Grain),
		"fries":    MustDescriptor("Fries", 4, Junk, Vegetable),
		"smoothie": MustDescriptor("Smoothie", 6, Fruit, Dairy),
	})
}
