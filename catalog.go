package printsize

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Catalog is an immutable camera list indexed by name.
type Catalog struct {
	cameras []Camera
	index   map[string]int
}

// NewCatalog copies cameras into a new catalog. When a name appears more than
// once the last entry wins the lookup, but every entry is kept in Cameras.
func NewCatalog(cameras ...Camera) *Catalog {
	c := &Catalog{
		cameras: append([]Camera{}, cameras...),
		index:   make(map[string]int, len(cameras)),
	}
	for i, cam := range c.cameras {
		c.index[cam.Name] = i
	}
	return c
}

// Lookup returns the camera with the given name.
func (c *Catalog) Lookup(name string) (Camera, bool) {
	i, ok := c.index[name]
	if !ok {
		return Camera{}, false
	}
	return c.cameras[i], true
}

// Cameras returns a copy of the catalog in insertion order.
func (c *Catalog) Cameras() []Camera {
	return append([]Camera{}, c.cameras...)
}

// Len returns the number of entries, duplicates included.
func (c *Catalog) Len() int {
	return len(c.cameras)
}

// SortedNames returns the camera names ordered by the collation rules of tag.
func (c *Catalog) SortedNames(tag language.Tag) []string {
	names := make([]string, 0, len(c.index))
	for i, cam := range c.cameras {
		if c.index[cam.Name] == i {
			names = append(names, cam.Name)
		}
	}
	collate.New(tag, collate.IgnoreCase).SortStrings(names)
	return names
}

// Brands returns the distinct brands in first-seen order.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var brands []string
	for _, cam := range c.cameras {
		if seen[cam.Brand] {
			continue
		}
		seen[cam.Brand] = true
		brands = append(brands, cam.Brand)
	}
	return brands
}
