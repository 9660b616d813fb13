package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategoryKeywords(t *testing.T) {
	cases := []struct {
		raw  string
		want ServiceCategory
	}{
		{"Printing Press", CategoryPrintingPress},
		{"SEO", CategorySEO},
		{"Packages Solutions", CategoryPackagesSolutions},
		{"our print shop", CategoryPrintingPress},
		{"PRESS services", CategoryPrintingPress},
		{"seo consulting", CategorySEO},
		{"Search optimization", CategorySEO},
		{"gift package", CategoryPackagesSolutions},
		{"turnkey solution", CategoryPackagesSolutions},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCategory(tc.raw), "raw=%q", tc.raw)
	}
}

func TestNormalizeCategoryFallback(t *testing.T) {
	// Unrecognized input maps to the default category, always the same
	// one.
	for i := 0; i < 5; i++ {
		assert.Equal(t, CategoryPrintingPress, NormalizeCategory("widgets"))
	}
	assert.Equal(t, CategoryPrintingPress, NormalizeCategory(""))
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	for _, c := range AllCategories() {
		assert.Equal(t, c, NormalizeCategory(string(c)))
		assert.Equal(t, c, NormalizeCategory(NormalizeCategory(string(c)).String()))
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusInProgress.Valid())
	assert.True(t, OrderStatusCompleted.Valid())
	assert.True(t, OrderStatusCancelled.Valid())
	assert.False(t, OrderStatus("done").Valid())
	assert.False(t, OrderStatus("").Valid())
}
