package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source defines how tiers are loaded into the catalog.
type Source interface {
	Load(ctx context.Context) (map[string]Tier, error)
}

type inMemSource struct {
	tiers map[string]Tier
}

// NewInMemSource returns a Source serving a copy of the given tiers.
// Panics if no tiers are provided so the catalog always has at least one
// purchasable tier.
func NewInMemSource(tiers ...Tier) Source {
	if len(tiers) < 1 {
		panic("catalog: at least one tier is required")
	}

	copied := make(map[string]Tier, len(tiers))
	for _, t := range tiers {
		copied[t.Tipo] = t
	}
	return &inMemSource{tiers: copied}
}

func (s *inMemSource) Load(ctx context.Context) (map[string]Tier, error) {
	out := make(map[string]Tier, len(s.tiers))
	for tipo, t := range s.tiers {
		out[tipo] = t
	}
	return out, nil
}

type fileSource struct {
	path string
}

// NewFileSource returns a Source reading a YAML tier list from path on every
// Load. The file holds a plain list:
//
//   - tipo: destacado
//     slots: 5
//     durationDays: 15
//     price: 2
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(ctx context.Context) (map[string]Tier, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTiers, err)
	}

	var tiers []Tier
	if err := yaml.Unmarshal(raw, &tiers); err != nil {
		return nil, errors.Join(ErrFailedToLoadTiers, err)
	}
	if len(tiers) == 0 {
		return nil, errors.Join(ErrFailedToLoadTiers, fmt.Errorf("no tiers defined in %s", s.path))
	}

	out := make(map[string]Tier, len(tiers))
	for _, t := range tiers {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := out[t.Tipo]; dup {
			return nil, errors.Join(ErrInvalidTier, fmt.Errorf("duplicate tier %s in %s", t.Tipo, s.path))
		}
		out[t.Tipo] = t
	}
	return out, nil
}
