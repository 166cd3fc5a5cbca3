package scene

import (
	"iter"
	"slices"

	"github.com/comiccon2025/comicpage/pkg/errors"
)

// Catalog is an ordered, validated, read-only list of scenes.
type Catalog struct {
	scenes []Scene
	index  map[string]int
}

// NewCatalog validates scenes and returns a catalog holding a private copy.
// IDs must be unique and usable as URL fragments, titles are required, and
// image references must parse.
func NewCatalog(scenes ...Scene) (*Catalog, error) {
	c := &Catalog{
		scenes: slices.Clone(scenes),
		index:  make(map[string]int, len(scenes)),
	}
	for i, s := range c.scenes {
		if err := errors.ValidateFragmentID(s.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "scene %d", i+1)
		}
		if s.Title == "" {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "scene %q: title is required", s.ID)
		}
		if err := errors.ValidateImageRef(s.Image); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "scene %q", s.ID)
		}
		if j, dup := c.index[s.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidCatalog, "duplicate scene id %q (scenes %d and %d)", s.ID, j+1, i+1)
		}
		c.index[s.ID] = i
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error. For built-in catalogs.
func MustCatalog(scenes ...Scene) *Catalog {
	c, err := NewCatalog(scenes...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.scenes) }

// At returns the i-th scene. It panics if i is out of range.
func (c *Catalog) At(i int) Scene { return c.scenes[i] }

// Scenes returns a copy of the scenes in order.
func (c *Catalog) Scenes() []Scene { return slices.Clone(c.scenes) }

// All iterates the scenes in order.
func (c *Catalog) All() iter.Seq[Scene] {
	return func(yield func(Scene) bool) {
		for _, s := range c.scenes {
			if !yield(s) {
				return
			}
		}
	}
}

// Lookup finds a scene by ID.
func (c *Catalog) Lookup(id string) (Scene, bool) {
	i, ok := c.index[id]
	if !ok {
		return Scene{}, false
	}
	return c.scenes[i], true
}
