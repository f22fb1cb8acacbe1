package catalog

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// fileFormat is the TOML layout of a catalog file
//
//	[[food]]
//	id = "apple"
//	name = "Apple"
//	points = 5
//	categories = ["fruit"]
type fileFormat struct {
	Food []foodEntry `toml:"food"`
}

type foodEntry struct {
	ID         string   `toml:"id"`
	Name       string   `toml:"name"`
	Points     int      `toml:"points"`
	Categories []string `toml:"categories"`
}

// Load reads a TOML catalog from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse decodes a TOML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown catalog keys: %s", strings.Join(keys, ", "))
	}
	if len(f.Food) == 0 {
		return nil, errors.New("catalog has no food entries")
	}

	entries := make(map[string]Descriptor, len(f.Food))
	for i, e := range f.Food {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, errors.Errorf("food entry %d: missing id", i)
		}
		if _, dup := entries[id]; dup {
			return nil, errors.Errorf("food entry %d: duplicate id %q", i, id)
		}

		cats := make([]Category, 0, len(e.Categories))
		for _, name := range e.Categories {
			c, err := ParseCategory(name)
			if err != nil {
				return nil, errors.Wrapf(err, "food %q", id)
			}
			cats = append(cats, c)
		}

		name := e.Name
		if name == "" {
			name = id
		}
		d, err := NewDescriptor(name, e.Points, cats...)
		if err != nil {
			return nil, err
		}
		entries[id] = d
	}
	return New(entries), nil
}
