package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avisolibre/plankit/pkg/catalog"
)

func TestDefaultTiers_AreValid(t *testing.T) {
	t.Parallel()

	tiers := catalog.DefaultTiers()
	require.NotEmpty(t, tiers)
	for _, tier := range tiers {
		assert.NoError(t, tier.Validate())
		assert.NoError(t, tier.PurchaseSpec().Validate())
	}
}

func TestTier_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tier catalog.Tier
	}{
		{name: "empty tipo", tier: catalog.Tier{Slots: 5, DurationDays: 15, Price: 2}},
		{name: "zero slots", tier: catalog.Tier{Tipo: "x", Slots: 0, DurationDays: 15, Price: 2}},
		{name: "zero duration", tier: catalog.Tier{Tipo: "x", Slots: 5, DurationDays: 0, Price: 2}},
		{name: "negative price", tier: catalog.Tier{Tipo: "x", Slots: 5, DurationDays: 15, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.tier.Validate(), catalog.ErrInvalidTier)
		})
	}
}

func TestNewInMemSource_PanicsWithoutTiers(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		catalog.NewInMemSource()
	})
}

func TestCatalog_GetAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cat, err := catalog.New(ctx, catalog.NewInMemSource(catalog.DefaultTiers()...))
	require.NoError(t, err)

	premium, err := cat.Get("premium")
	require.NoError(t, err)
	assert.Equal(t, 20, premium.Slots)
	assert.Equal(t, 30, premium.DurationDays)

	_, err = cat.Get("platinum")
	assert.ErrorIs(t, err, catalog.ErrTierNotFound)

	list := cat.List()
	require.Len(t, list, 3)
	// Ordered by price ascending.
	assert.Equal(t, "destacado", list[0].Tipo)
	assert.Equal(t, "vip", list[2].Tipo)
}

func TestFileSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	writeTiers := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tiers.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("loads a valid catalog file", func(t *testing.T) {
		t.Parallel()

		path := writeTiers(t, `
- tipo: destacado
  slots: 5
  durationDays: 15
  price: 2
- tipo: premium
  description: Premium placement
  slots: 20
  durationDays: 30
  price: 5
`)
		tiers, err := catalog.NewFileSource(path).Load(ctx)
		require.NoError(t, err)
		require.Len(t, tiers, 2)
		assert.Equal(t, 30, tiers["premium"].DurationDays)
		assert.Equal(t, "Premium placement", tiers["premium"].Description)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.NewFileSource(filepath.Join(t.TempDir(), "absent.yaml")).Load(ctx)
		assert.ErrorIs(t, err, catalog.ErrFailedToLoadTiers)
	})

	t.Run("invalid tier rejected", func(t *testing.T) {
		t.Parallel()

		path := writeTiers(t, `
- tipo: destacado
  slots: 0
  durationDays: 15
  price: 2
`)
		_, err := catalog.NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, catalog.ErrInvalidTier)
	})

	t.Run("duplicate tier rejected", func(t *testing.T) {
		t.Parallel()

		path := writeTiers(t, `
- tipo: vip
  slots: 50
  durationDays: 60
  price: 12
- tipo: vip
  slots: 10
  durationDays: 30
  price: 6
`)
		_, err := catalog.NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, catalog.ErrInvalidTier)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		t.Parallel()

		path := writeTiers(t, "[]\n")
		_, err := catalog.NewFileSource(path).Load(ctx)
		assert.ErrorIs(t, err, catalog.ErrFailedToLoadTiers)
	})
}
