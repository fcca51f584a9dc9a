package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValid(t *testing.T) {
	for _, f := range []Field{FieldName, FieldDesc, FieldWeightValue, FieldWeightUnit,
		FieldPriceMain, FieldPriceCents, FieldTheme, FieldColor, FieldImage} {
		assert.True(t, f.Valid(), "field %s", f)
	}
	assert.False(t, Field("position").Valid(), "position is not editable")
	assert.False(t, Field("").Valid())
}

func TestApplyLeavesIdentityAlone(t *testing.T) {
	p := Product{ID: "p1", Position: 3, Name: "Eker"}

	assert.True(t, p.Apply(FieldName, "Koç"))
	assert.True(t, p.Apply(FieldTheme, "theme-blue"))
	assert.False(t, p.Apply(Field("id"), "hacked"))

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 3, p.Position)
	assert.Equal(t, "Koç", p.Name)
	assert.Equal(t, ThemeBlue, p.Theme)
}

func TestApplyGetRoundTrip(t *testing.T) {
	var p Product
	require.True(t, p.Apply(FieldPriceMain, "12"))
	assert.Equal(t, "12", p.Get(FieldPriceMain))
	assert.Equal(t, "", p.Get(Field("bogus")))
}

func TestEmptyDraftDefaults(t *testing.T) {
	d := EmptyDraft()
	assert.Equal(t, "gr", d.WeightUnit)
	assert.Equal(t, ThemeYellow, d.Theme)
	assert.Equal(t, ColorGold, d.Color)
	assert.Equal(t, DefaultImage, d.Image)
	assert.Empty(t, d.Name)
}

func TestSeedDraftsCycle(t *testing.T) {
	drafts := SeedDrafts(7)
	require.Len(t, drafts, 7)
	assert.Equal(t, drafts[0].Name, drafts[5].Name, "set repeats after the base five")
	assert.Equal(t, drafts[1].Name, drafts[6].Name)
}

func TestMemoryRepoListOrdersByPosition(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	require.NoError(t, r.Create(ctx, Product{ID: "b", Position: 1}))
	require.NoError(t, r.Create(ctx, Product{ID: "c", Position: 2}))
	require.NoError(t, r.Create(ctx, Product{ID: "a", Position: 0}))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "c", items[2].ID)
}

func TestMemoryRepoCreateDuplicateID(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	require.NoError(t, r.Create(ctx, Product{ID: "p1", Name: "Eker"}))
	assert.ErrorIs(t, r.Create(ctx, Product{ID: "p1", Name: "Koç"}), ErrDuplicateID)

	p, err := r.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Eker", p.Name, "existing row stays untouched")
}

func TestMemoryRepoUpdateFields(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()
	require.NoError(t, r.Create(ctx, Product{ID: "p1"}))

	err := r.UpdateFields(ctx, "p1", map[Field]string{FieldName: "Çaykur", FieldPriceCents: "99"})
	require.NoError(t, err)

	p, err := r.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Çaykur", p.Name)
	assert.Equal(t, "99", p.PriceCents)

	assert.ErrorIs(t, r.UpdateFields(ctx, "nope", map[Field]string{FieldName: "x"}), ErrNotFound)
}
