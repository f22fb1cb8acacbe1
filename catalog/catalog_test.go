package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCategorySet(t *testing.T) {
	s := NewCategorySet(Fruit, Dairy, Fruit)

	if s.Len() != 2 {
		t.Errorf("Expected 2 members, got %d", s.Len())
	}
	if !s.Has(Fruit) || !s.Has(Dairy) {
		t.Errorf("Expected Fruit and Dairy in %v", s)
	}
	if s.Has(Meat) {
		t.Errorf("Meat should not be in %v", s)
	}
	if got := s.String(); got != "{fruit,dairy}" {
		t.Errorf("Expected {fruit,dairy}, got %s", got)
	}

	// Invalid categories are ignored rather than corrupting the mask
	if NewCategorySet(CategoryCount, Category(-1)) != 0 {
		t.Error("Invalid categories should not enter the set")
	}

	var empty CategorySet
	if !empty.IsEmpty() || len(empty.Categories()) != 0 {
		t.Error("Zero value should be the empty set")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		want    Category
		wantErr bool
	}{
		{"fruit", Fruit, false},
		{" Junk ", Junk, false},
		{"DAIRY", Dairy, false},
		{"pizza", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q): expected ErrUnknownCategory, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	for _, c := range Categories() {
		back, err := ParseCategory(c.String())
		if err != nil || back != c {
			t.Errorf("Category %d does not round-trip through its name", c)
		}
	}
}

func TestNewDescriptor(t *testing.T) {
	d, err := NewDescriptor("Cake", 8, Sweet, Grain)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.PointValue() != 8 || d.Name() != "Cake" {
		t.Errorf("Unexpected descriptor %+v", d)
	}
	if d.Categories() != NewCategorySet(Sweet, Grain) {
		t.Errorf("Unexpected categories %v", d.Categories())
	}

	if _, err := NewDescriptor("Void", -1); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("Expected ErrInvalidDescriptor for negative points, got %v", err)
	}
	if _, err := NewDescriptor("Odd", 1, Category(42)); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}

	// Zero points is a legal value
	if _, err := NewDescriptor("Water", 0); err != nil {
		t.Errorf("Zero points should be valid, got %v", err)
	}
}

func TestCatalogLookup(t *testing.T) {
	c := Default()

	apple, ok := c.Lookup("apple")
	if !ok {
		t.Fatal("Expected apple in default catalog")
	}
	if apple.PointValue() != 5 || !apple.Categories().Has(Fruit) {
		t.Errorf("Unexpected apple descriptor %+v", apple)
	}

	again, _ := c.Lookup("apple")
	if apple != again {
		t.Error("Lookup should return the catalog-owned descriptor")
	}

	if _, ok := c.Lookup("durian"); ok {
		t.Error("Unknown id should not resolve")
	}

	ids := c.IDs()
	if len(ids) != c.Len() {
		t.Fatalf("IDs length %d does not match Len %d", len(ids), c.Len())
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
			break
		}
	}
}

func TestParse(t *testing.T) {
	doc := `
[[food]]
id = "kiwi"
name = "Kiwi"
points = 4
categories = ["fruit"]

[[food]]
id = "pie"
points = 9
categories = ["sweet", "fruit", "grain"]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Expected 2 foods, got %d", c.Len())
	}

	pie, ok := c.Lookup("pie")
	if !ok {
		t.Fatal("Expected pie")
	}
	if pie.Name() != "pie" {
		t.Errorf("Missing name should default to id, got %q", pie.Name())
	}
	if pie.Categories().Len() != 3 {
		t.Errorf("Expected 3 categories, got %v", pie.Categories())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", ``, "no food entries"},
		{"syntax", `[[food]`, "decode catalog"},
		{"missing id", "[[food]]\npoints = 1", "missing id"},
		{"duplicate", "[[food]]\nid = \"a\"\n[[food]]\nid = \"a\"", "duplicate id"},
		{"unknown category", "[[food]]\nid = \"a\"\ncategories = [\"rock\"]", "unknown food category"},
		{"negative", "[[food]]\nid = \"a\"\npoints = -3", "invalid food descriptor"},
		{"unknown key", "[[food]]\nid = \"a\"\ncolour = \"red\"", "unknown catalog keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foods.toml")
	if err := os.WriteFile(path, []byte("[[food]]\nid = \"egg\"\npoints = 2\ncategories = [\"dairy\"]\n"), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := c.Lookup("egg"); !ok {
		t.Error("Expected egg in loaded catalog")
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
