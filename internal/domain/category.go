package domain

import "strings"

// Category is the fixed product category assigned to an analysis.
// Immutable once attached to an AnalysisResult.
type Category string

const (
	CategoryBeverage       Category = "beverage"
	CategoryDairy          Category = "dairy"
	CategorySnack          Category = "snack"
	CategoryCereal         Category = "cereal"
	CategoryInstantMeal    Category = "instant_meal"
	CategoryCondiment      Category = "condiment"
	CategoryStaple         Category = "staple"
	CategoryHealthProduct  Category = "health_product"
	CategoryFruitVegetable Category = "fruit_vegetable"
	CategoryOther          Category = "other"
)

// allCategories lists every valid category value.
var allCategories = []Category{
	CategoryBeverage, CategoryDairy, CategorySnack, CategoryCereal,
	CategoryInstantMeal, CategoryCondiment, CategoryStaple,
	CategoryHealthProduct, CategoryFruitVegetable, CategoryOther,
}

// ParseCategory maps a raw category string to a Category value.
// Unknown or empty input maps to CategoryOther. Never fails.
func ParseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	for _, c := range allCategories {
		if normalized == string(c) {
			return c
		}
	}
	return CategoryOther
}

// IsValid reports whether c is one of the defined category values.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the category as human-readable text
// (underscores replaced with spaces, e.g. "instant meal").
func (c Category) DisplayName() string {
	return strings.ReplaceAll(string(c), "_", " ")
}
