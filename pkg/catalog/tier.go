package catalog

import (
	"errors"
	"fmt"

	"github.com/avisolibre/plankit/pkg/plan"
)

// Tier describes a purchasable visibility tier: the slot bundle, its
// validity window, and its price. Tiers are display-configured; the engine
// never branches on the tier name.
type Tier struct {
	Tipo         string  `yaml:"tipo" json:"tipo"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
	Slots        int     `yaml:"slots" json:"slots"`
	DurationDays int     `yaml:"durationDays" json:"durationDays"`
	Price        float64 `yaml:"price" json:"price"`
}

// Validate checks the tier against the same boundary rules the engine
// enforces on purchase, plus a non-empty name.
func (t Tier) Validate() error {
	if t.Tipo == "" {
		return errors.Join(ErrInvalidTier, errors.New("tipo must not be empty"))
	}
	if t.Slots <= 0 {
		return errors.Join(ErrInvalidTier, fmt.Errorf("tier %s: slots must be positive, got %d", t.Tipo, t.Slots))
	}
	if t.DurationDays <= 0 {
		return errors.Join(ErrInvalidTier, fmt.Errorf("tier %s: duration days must be positive, got %d", t.Tipo, t.DurationDays))
	}
	if t.Price < 0 {
		return errors.Join(ErrInvalidTier, fmt.Errorf("tier %s: price must not be negative, got %v", t.Tipo, t.Price))
	}
	return nil
}

// PurchaseSpec converts the tier into the engine's purchase input.
func (t Tier) PurchaseSpec() plan.PurchaseSpec {
	return plan.PurchaseSpec{
		Tipo:         t.Tipo,
		Slots:        t.Slots,
		DurationDays: t.DurationDays,
		Price:        t.Price,
	}
}

// DefaultTiers returns the marketplace's stock visibility tiers. Deployments
// override them with a YAML catalog file, see NewFileSource.
func DefaultTiers() []Tier {
	return []Tier{
		{Tipo: "destacado", Description: "Highlighted listings", Slots: 5, DurationDays: 15, Price: 2},
		{Tipo: "premium", Description: "Premium placement", Slots: 20, DurationDays: 30, Price: 5},
		{Tipo: "vip", Description: "Top placement and badge", Slots: 50, DurationDays: 60, Price: 12},
	}
}
