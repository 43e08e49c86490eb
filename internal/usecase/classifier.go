package usecase

import (
	"strings"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// categoryKeywords maps label vocabulary to categories, used when the
// extraction hint is not itself a category name. Checked in a fixed
// order so classification stays deterministic.
var categoryKeywordTable = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryBeverage, []string{
		"juice", "soft drink", "soda", "cola", "water", "tea", "coffee",
		"energy drink", "milk drink", "squash", "lemonade",
	}},
	{domain.CategoryDairy, []string{
		"milk", "yogurt", "yoghurt", "curd", "cheese", "paneer", "butter",
		"cream", "lassi", "ghee",
	}},
	{domain.CategorySnack, []string{
		"chips", "biscuit", "cookie", "namkeen", "cracker", "wafer",
		"chocolate", "candy", "chivda", "bhujia", "mixture",
	}},
	{domain.CategoryCereal, []string{
		"cereal", "oats", "muesli", "granola", "cornflakes", "porridge",
	}},
	{domain.CategoryInstantMeal, []string{
		"noodle", "instant pasta", "ready meal", "soup", "ready to eat",
	}},
	{domain.CategoryCondiment, []string{
		"sauce", "ketchup", "pickle", "jam", "spread", "dressing",
		"chutney", "mayonnaise",
	}},
	{domain.CategoryStaple, []string{
		"rice", "flour", "atta", "lentil", "dal", "whole grain", "bread",
	}},
	{domain.CategoryHealthProduct, []string{
		"protein powder", "nutrition bar", "protein bar", "health drink",
		"supplement",
	}},
	{domain.CategoryFruitVegetable, []string{
		"fruit", "vegetable", "puree", "pulp",
	}},
}

// ClassifyCategory maps an extraction hint, optionally backed by
// product/ingredient text, to a category. Pure, total and deterministic:
// an exact hint match wins, then keyword lookup over hint and text, else
// CategoryOther.
func ClassifyCategory(hint, text string) domain.Category {
	if c := domain.ParseCategory(hint); c != domain.CategoryOther {
		return c
	}

	haystack := strings.ToLower(hint + " " + text)
	for _, entry := range categoryKeywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(haystack, kw) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}
