package catalog

import (
	"context"
	"errors"
	"sort"
)

// Catalog holds the purchasable tiers in memory after loading them from a
// Source at startup.
type Catalog struct {
	tiers map[string]Tier
}

// New loads and validates tiers from the source.
// Panics if src is nil to fail fast during initialization.
func New(ctx context.Context, src Source) (*Catalog, error) {
	if src == nil {
		panic("catalog: Source is required")
	}

	tiers, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, errors.Join(ErrFailedToLoadTiers, errors.New("source returned no tiers"))
	}
	for _, t := range tiers {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	return &Catalog{tiers: tiers}, nil
}

// Get returns the tier with the given name.
func (c *Catalog) Get(tipo string) (Tier, error) {
	t, ok := c.tiers[tipo]
	if !ok {
		return Tier{}, ErrTierNotFound
	}
	return t, nil
}

// List returns all tiers ordered by price ascending, for display.
func (c *Catalog) List() []Tier {
	out := make([]Tier, 0, len(c.tiers))
	for _, t := range c.tiers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}
