// Package catalog holds the difficulty profiles available to a round.
// Profiles are looked up by key, listed in a stable order, and validated
// once when the catalog is built, so the simulation can trust them.
package catalog

import (
	"errors"
	"fmt"
)

// Category tells whether an item belongs in the compost bin.
type Category string

const (
	Correct   Category = "correct"
	Incorrect Category = "incorrect"
)

// ItemTemplate is an immutable, catalog-defined falling item.
// Templates are shared across rounds and never mutated.
type ItemTemplate struct {
	Label    string   `yaml:"label" toml:"label"`
	Category Category `yaml:"category" toml:"category"`
	Reason   string   `yaml:"reason,omitempty" toml:"reason"` // Shown only for incorrect items
}

// Profile describes one difficulty level.
type Profile struct {
	Key  string
	Name string

	CorrectPool   []ItemTemplate
	IncorrectPool []ItemTemplate

	// VisuallyIndistinguishable renders correct and incorrect items identically.
	VisuallyIndistinguishable bool

	// RoundSize is the total number of items per round.
	RoundSize int
}

// Validation errors.
var (
	ErrRoundTooSmall = errors.New("catalog: round size must be at least 2")
	ErrEmptyPool     = errors.New("catalog: item pool is empty")
	ErrWrongCategory = errors.New("catalog: item in the wrong pool")
)

// Validate checks the profile invariants.
func (p Profile) Validate() error {
	if p.Key == "" {
		return errors.New("catalog: profile key is empty")
	}
	if p.RoundSize < 2 {
		return fmt.Errorf("%w: %q has %d", ErrRoundTooSmall, p.Key, p.RoundSize)
	}
	if len(p.CorrectPool) == 0 {
		return fmt.Errorf("%w: %q correct pool", ErrEmptyPool, p.Key)
	}
	if len(p.IncorrectPool) == 0 {
		return fmt.Errorf("%w: %q incorrect pool", ErrEmptyPool, p.Key)
	}
	for _, it := range p.CorrectPool {
		if it.Category != Correct {
			return fmt.Errorf("%w: %q in %q correct pool", ErrWrongCategory, it.Label, p.Key)
		}
	}
	for _, it := range p.IncorrectPool {
		if it.Category != Incorrect {
			return fmt.Errorf("%w: %q in %q incorrect pool", ErrWrongCategory, it.Label, p.Key)
		}
	}
	return nil
}

// Info contains display metadata about a profile.
type Info struct {
	Key  string
	Name string
}

// Catalog is an ordered, read-only set of difficulty profiles.
type Catalog struct {
	order    []string
	profiles map[string]Profile
}

// New builds a catalog from profiles, keeping their order.
// Returns an error if a profile is invalid or a key is repeated.
func New(profiles ...Profile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, errors.New("catalog: no profiles")
	}

	c := &Catalog{
		order:    make([]string, 0, len(profiles)),
		profiles: make(map[string]Profile, len(profiles)),
	}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.profiles[p.Key]; exists {
			return nil, fmt.Errorf("catalog: difficulty %q already registered", p.Key)
		}
		c.order = append(c.order, p.Key)
		c.profiles[p.Key] = p
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for built-in data.
func MustNew(profiles ...Profile) *Catalog {
	c, err := New(profiles...)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns information about all profiles in catalog order.
func (c *Catalog) List() []Info {
	result := make([]Info, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, Info{Key: key, Name: c.profiles[key].Name})
	}
	return result
}

// Keys returns profile keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Lookup returns the profile for a key.
func (c *Catalog) Lookup(key string) (Profile, error) {
	p, ok := c.profiles[key]
	if !ok {
		return Profile{}, fmt.Errorf("catalog: unknown difficulty %q", key)
	}
	return p, nil
}

// Exists checks if a profile with the given key is registered.
func (c *Catalog) Exists(key string) bool {
	_, ok := c.profiles[key]
	return ok
}

// Default returns the first profile in catalog order.
func (c *Catalog) Default() Profile {
	return c.profiles[c.order[0]]
}

// At returns the profile at the given position (0-based), wrapping around.
func (c *Catalog) At(i int) Profile {
	n := len(c.order)
	i %= n
	if i < 0 {
		i += n
	}
	return c.profiles[c.order[i]]
}

// Len returns the number of profiles.
func (c *Catalog) Len() int {
	return len(c.order)
}
