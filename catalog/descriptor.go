package catalog

import (
	"github.com/pkg/errors"
)

// ErrInvalidDescriptor is returned for descriptors with a negative point value
var ErrInvalidDescriptor = errors.New("invalid food descriptor")

// Descriptor is the immutable scoring description of one food item
// Owned by a Catalog; scoring events hold pointers to it without owning it
type Descriptor struct {
	name       string
	pointValue int
	categories CategorySet
}

// NewDescriptor validates and builds a descriptor
func NewDescriptor(name string, pointValue int, cats ...Category) (Descriptor, error) {
	if pointValue < 0 {
		return Descriptor{}, errors.Wrapf(ErrInvalidDescriptor, "%s: point value %d", name, pointValue)
	}
	for _, c := range cats {
		if !c.Valid() {
			return Descriptor{}, errors.Wrapf(ErrUnknownCategory, "%s: category %d", name, int(c))
		}
	}
	return Descriptor{
		name:       name,
		pointValue: pointValue,
		categories: NewCategorySet(cats...),
	}, nil
}

// MustDescriptor is NewDescriptor for static tables; panics on invalid input
func MustDescriptor(name string, pointValue int, cats ...Category) Descriptor {
	d, err := NewDescriptor(name, pointValue, cats...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the display name
func (d Descriptor) Name() string { return d.name }

// PointValue returns the base score of the item, always >= 0
func (d Descriptor) PointValue() int { return d.pointValue }

// Categories returns the category tags of the item
func (d Descriptor) Categories() CategorySet { return d.categories }
