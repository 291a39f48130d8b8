package catalog_test

import (
	"testing"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
)

func TestFoodIDsUniqueAndVegetarian(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range catalog.Foods {
		if f.ID == "" || f.Name == "" {
			t.Fatalf("food with empty id or name: %+v", f)
		}
		if seen[f.ID] {
			t.Fatalf("duplicate food id %q", f.ID)
		}
		seen[f.ID] = true
		if !f.IsVegetarian {
			t.Fatalf("non-vegetarian food %q in catalog", f.ID)
		}
		if f.Nutrition.Calories < 0 {
			t.Fatalf("negative calories for %q", f.ID)
		}
	}
}

func TestFoodByID(t *testing.T) {
	t.Parallel()
	food, ok := catalog.FoodByID("bread_roti")
	if !ok {
		t.Fatalf("expected bread_roti in catalog")
	}
	if food.Nutrition.Calories != 75 {
		t.Fatalf("unexpected roti calories %v", food.Nutrition.Calories)
	}
	if _, ok := catalog.FoodByID("nope"); ok {
		t.Fatalf("unexpected hit for unknown id")
	}
}

func TestMicronutrientKeysExistInFoodTable(t *testing.T) {
	t.Parallel()
	for id := range catalog.FoodMicronutrients {
		if _, ok := catalog.FoodByID(id); !ok {
			t.Fatalf("micronutrient data for unknown food %q", id)
		}
	}
}

func TestBurnForDurationScales(t *testing.T) {
	t.Parallel()
	item, ok := catalog.ExerciseByID("walk_brisk")
	if !ok {
		t.Fatalf("expected brisk walk in exercise library")
	}
	if got := catalog.BurnForDuration(item, 30); got != item.CaloriesPer30Min {
		t.Fatalf("30 min should burn the base rate, got %d", got)
	}
	if got, want := catalog.BurnForDuration(item, 60), item.CaloriesPer30Min*2; got != want {
		t.Fatalf("60 min: expected %d, got %d", want, got)
	}
	if got := catalog.BurnForDuration(item, 0); got != 0 {
		t.Fatalf("0 min should burn nothing, got %d", got)
	}
}
