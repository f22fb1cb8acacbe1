package catalog

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// Category tags a food item for category-scoped multiplier bonuses
type Category int

const (
	Fruit Category = iota
	Vegetable
	Meat
	Dairy
	Grain
	Sweet
	Junk

	CategoryCount // must stay last
)

// ErrUnknownCategory is returned when a category name or value is outside the enumerated set
var ErrUnknownCategory = errors.New("unknown food category")

var categoryNames = [CategoryCount]string{
	Fruit:     "fruit",
	Vegetable: "vegetable",
	Meat:      "meat",
	Dairy:     "dairy",
	Grain:     "grain",
	Sweet:     "sweet",
	Junk:      "junk",
}

// Valid reports whether c is one of the enumerated categories
func (c Category) Valid() bool {
	return c >= 0 && c < CategoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory resolves a case-insensitive category name
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownCategory, "%q", name)
}

// Categories returns every enumerated category in declaration order
func Categories() []Category {
	all := make([]Category, CategoryCount)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// CategorySet is an immutable set of categories stored as a bitmask
// Zero value is the empty set
type CategorySet uint32

// NewCategorySet builds a set from the given categories, ignoring invalid values
func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s including c
func (s CategorySet) With(c Category) CategorySet {
	if !c.Valid() {
		return s
	}
	return s | 1<<uint(c)
}

// Has reports whether c is a member of s
func (s CategorySet) Has(c Category) bool {
	return c.Valid() && s&(1<<uint(c)) != 0
}

// Len returns the number of categories in s
func (s CategorySet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether s has no members
func (s CategorySet) IsEmpty() bool {
	return s == 0
}

// Categories lists the members of s in declaration order
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, s.Len())
	for c := Category(0); c < CategoryCount; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Categories() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
