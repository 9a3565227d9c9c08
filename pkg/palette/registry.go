package palette

import (
	"slices"
	"sync"

	"github.com/dmitrymomot/boxkit/pkg/rgb"
)

// Registry keeps the colors currently in use, in insertion order.
type Registry struct {
	mu     sync.RWMutex
	hexes  []string
	colors []rgb.Color
}

// NewRegistry creates a registry seeded with the given hex colors.
func NewRegistry(hexes ...string) (*Registry, error) {
	r := &Registry{}
	for _, h := range hexes {
		if err := r.Add(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a hex color. Malformed strings are rejected with rgb.ErrInvalidHex.
func (r *Registry) Add(hex string) error {
	c, err := rgb.ParseHex(hex)
	if err != nil {
		return err
	}
	r.AddColor(c)
	return nil
}

func (r *Registry) AddColor(c rgb.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.append(c)
}

// Colors returns a copy of the registered hex strings in insertion order.
// Entries are normalised to uppercase.
func (r *Registry) Colors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.hexes)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.colors)
}

// Contains reports whether hex is registered. Comparison is case-insensitive.
func (r *Registry) Contains(hex string) bool {
	c, err := rgb.ParseHex(hex)
	if err != nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Contains(r.colors, c)
}

// Reset drops every registered color.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hexes = nil
	r.colors = nil
}

// Distinct reports whether c is at least threshold away from every entry.
func (r *Registry) Distinct(c rgb.Color, threshold int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.distinct(c, threshold)
}

// addIfDistinct checks and appends under a single lock so concurrent
// allocations cannot both accept colors that are too close to each other.
func (r *Registry) addIfDistinct(c rgb.Color, threshold int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.distinct(c, threshold) {
		return false
	}
	r.append(c)
	return true
}

func (r *Registry) distinct(c rgb.Color, threshold int) bool {
	for _, existing := range r.colors {
		if rgb.Distance(c, existing) < threshold {
			return false
		}
	}
	return true
}

func (r *Registry) append(c rgb.Color) {
	r.hexes = append(r.hexes, c.Hex())
	r.colors = append(r.colors, c)
}
