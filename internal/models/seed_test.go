package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedVenues(t *testing.T) {
	venues := SeedVenues()
	require.NotEmpty(t, venues)

	seen := map[string]bool{}
	for _, v := range venues {
		assert.NotEmpty(t, v.ID)
		assert.False(t, seen[v.ID], "duplicate venue id %s", v.ID)
		seen[v.ID] = true

		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Location.City)
		assert.Positive(t, v.PricePerPerson)
		assert.LessOrEqual(t, v.Capacity.Min, v.Capacity.Max)
	}
}

func TestSeedSuppliers(t *testing.T) {
	suppliers := SeedSuppliers()
	require.NotEmpty(t, suppliers)

	categories := map[string]bool{}
	for _, c := range SupplierCategories {
		categories[c] = true
	}

	seen := map[string]bool{}
	for _, s := range suppliers {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate supplier id %s", s.ID)
		seen[s.ID] = true

		assert.NotEmpty(t, s.BusinessName)
		assert.Truef(t, categories[s.Category], "supplier %s has unknown category %q", s.BusinessName, s.Category)
		assert.LessOrEqual(t, s.PriceRange.Min, s.PriceRange.Max)
	}
}
