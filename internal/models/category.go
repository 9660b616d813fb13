package models

import "strings"

// ServiceCategory is one of the fixed set of portfolio categories the
// consumer app understands. Free-text input is mapped onto these via
// NormalizeCategory.
type ServiceCategory string

const (
	CategoryPrintingPress     ServiceCategory = "Printing Press"
	CategorySEO               ServiceCategory = "SEO"
	CategoryPackagesSolutions ServiceCategory = "Packages Solutions"
)

func (c ServiceCategory) String() string {
	return string(c)
}

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryPrintingPress, CategorySEO, CategoryPackagesSolutions:
		return true
	}
	return false
}

func AllCategories() []ServiceCategory {
	return []ServiceCategory{CategoryPrintingPress, CategorySEO, CategoryPackagesSolutions}
}

// NormalizeCategory maps a free-text category onto a canonical one using
// case-insensitive keyword matching. Canonical values pass through unchanged,
// so the mapping is idempotent. Unrecognized input falls back to
// Printing Press, which is what the consumer app expects for unlabeled work.
func NormalizeCategory(raw string) ServiceCategory {
	lower := strings.ToLower(strings.TrimSpace(raw))

	switch lower {
	case "printing press":
		return CategoryPrintingPress
	case "seo":
		return CategorySEO
	case "packages solutions":
		return CategoryPackagesSolutions
	}

	switch {
	case strings.Contains(lower, "print") || strings.Contains(lower, "press"):
		return CategoryPrintingPress
	case strings.Contains(lower, "seo") || strings.Contains(lower, "search"):
		return CategorySEO
	case strings.Contains(lower, "package") || strings.Contains(lower, "solution"):
		return CategoryPackagesSolutions
	}

	return CategoryPrintingPress
}
