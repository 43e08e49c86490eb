package domain

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"beverage", CategoryBeverage},
		{"DAIRY", CategoryDairy},
		{"  snack  ", CategorySnack},
		{"instant meal", CategoryInstantMeal},
		{"instant-meal", CategoryInstantMeal},
		{"fruit_vegetable", CategoryFruitVegetable},
		{"cookie", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryIsValid(t *testing.T) {
	if !CategoryBeverage.IsValid() {
		t.Error("beverage should be valid")
	}
	if Category("junk").IsValid() {
		t.Error("junk should not be valid")
	}
}

func TestCategoryDisplayName(t *testing.T) {
	if got := CategoryInstantMeal.DisplayName(); got != "instant meal" {
		t.Errorf("DisplayName = %q, want %q", got, "instant meal")
	}
}
