package ledger_test

import (
	"reflect"
	"testing"

	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

const day = caldate.Date("2024-01-15")

func rotiSnapshot(id string, servings float64) model.LoggedFood {
	per := model.NutritionInfo{Calories: 75, ProteinG: 2.5, CarbsG: 15, FatG: 0.5, FiberG: 1.2}
	return model.LoggedFood{
		ID:          id,
		FoodID:      "bread_roti",
		FoodName:    "Wheat Roti / Chapati (no oil)",
		Servings:    servings,
		ServingUnit: "medium (30g atta)",
		Nutrition:   per.Scale(servings),
	}
}

func assertTotalsConsistent(t *testing.T, log model.DailyLog) {
	t.Helper()
	var all []model.LoggedFood
	for _, meal := range log.Meals {
		if len(meal.Foods) == 0 {
			t.Fatalf("meal %s persisted with zero foods", meal.MealType)
		}
		if got := model.SumNutrition(meal.Foods); got != meal.TotalNutrition {
			t.Fatalf("meal %s total %+v != sum of foods %+v", meal.MealType, meal.TotalNutrition, got)
		}
		all = append(all, meal.Foods...)
	}
	if got := model.SumNutrition(all); got != log.TotalNutrition {
		t.Fatalf("day total %+v != sum of all foods %+v", log.TotalNutrition, got)
	}
}

func TestDayMaterializedLazily(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	log := s.Day(day)
	if log.Date != day.String() {
		t.Fatalf("expected date %s, got %s", day, log.Date)
	}
	if log.ID == "" {
		t.Fatalf("expected generated day id")
	}
	if len(log.Meals) != 0 || log.WaterMl != 0 {
		t.Fatalf("expected empty day, got %+v", log)
	}
	again := s.Day(day)
	if again.ID != log.ID {
		t.Fatalf("second read must return the same day, got new id")
	}
}

func TestAddFoodKeepsTotalsConsistent(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if err := s.AddFood(day, model.MealBreakfast, rotiSnapshot("f1", 2)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if err := s.AddFood(day, model.MealBreakfast, rotiSnapshot("f2", 1)); err != nil {
		t.Fatalf("add second food: %v", err)
	}
	if err := s.AddFood(day, model.MealLunch, rotiSnapshot("f3", 1.5)); err != nil {
		t.Fatalf("add lunch food: %v", err)
	}

	log := s.Day(day)
	if len(log.Meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(log.Meals))
	}
	assertTotalsConsistent(t, log)
	if log.TotalNutrition.Calories != 75*2+75+112.5 {
		t.Fatalf("unexpected day calories %v", log.TotalNutrition.Calories)
	}
}

func TestAddFoodRejectsBadInput(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if err := s.AddFood(day, "second_lunch", rotiSnapshot("f1", 1)); err == nil {
		t.Fatalf("expected error for invalid meal type")
	}
	if err := s.AddFood(day, model.MealLunch, rotiSnapshot("f1", 0)); err == nil {
		t.Fatalf("expected error for zero servings")
	}
}

func TestMealsOrderedBySlot(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	for _, mt := range []model.MealType{model.MealDinner, model.MealPreBreakfast, model.MealLunch} {
		if err := s.AddFood(day, mt, rotiSnapshot("", 1)); err != nil {
			t.Fatalf("add food to %s: %v", mt, err)
		}
	}
	log := s.Day(day)
	want := []model.MealType{model.MealPreBreakfast, model.MealLunch, model.MealDinner}
	for i, meal := range log.Meals {
		if meal.MealType != want[i] {
			t.Fatalf("meal %d: expected %s, got %s", i, want[i], meal.MealType)
		}
	}
}

func TestRemoveLastFoodPrunesMeal(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if err := s.AddFood(day, model.MealDinner, rotiSnapshot("f1", 1)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	s.RemoveFood(day, model.MealDinner, "f1")

	log := s.Day(day)
	if len(log.Meals) != 0 {
		t.Fatalf("expected meal slot to be pruned, got %+v", log.Meals)
	}
	if log.TotalNutrition != (model.NutritionInfo{}) {
		t.Fatalf("expected zero totals, got %+v", log.TotalNutrition)
	}
}

func TestRemoveUnknownFoodLeavesDayUnchanged(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if err := s.AddFood(day, model.MealLunch, rotiSnapshot("f1", 1)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	before := s.Day(day)

	s.RemoveFood(day, model.MealLunch, "never-added")
	s.RemoveFood(day, model.MealDinner, "f1") // right id, wrong meal
	s.RemoveFood("2024-02-02", model.MealLunch, "f1")

	after := s.Day(day)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("day changed by no-op removals:\nbefore %+v\nafter  %+v", before, after)
	}
	if _, ok := s.Days()["2024-02-02"]; ok {
		t.Fatalf("removal must not materialize a day")
	}
}

func TestUpdateServingsRescalesFromSource(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	per := model.NutritionInfo{Calories: 100, ProteinG: 5, CarbsG: 10, FatG: 2, FiberG: 1}
	food := model.LoggedFood{ID: "f1", FoodID: "x", FoodName: "Test Food", Servings: 1, ServingUnit: "piece", Nutrition: per}
	if err := s.AddFood(day, model.MealBreakfast, food); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if err := s.UpdateServings(day, model.MealBreakfast, "f1", 2, per); err != nil {
		t.Fatalf("update servings: %v", err)
	}

	log := s.Day(day)
	want := model.NutritionInfo{Calories: 200, ProteinG: 10, CarbsG: 20, FatG: 4, FiberG: 2}
	if log.Meals[0].TotalNutrition != want {
		t.Fatalf("expected rescaled total %+v, got %+v", want, log.Meals[0].TotalNutrition)
	}
	if log.Meals[0].Foods[0].Servings != 2 {
		t.Fatalf("expected servings 2, got %v", log.Meals[0].Foods[0].Servings)
	}
	assertTotalsConsistent(t, log)

	// Updating again must scale from the source values, not accumulate.
	if err := s.UpdateServings(day, model.MealBreakfast, "f1", 3, per); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if got := s.Day(day).TotalNutrition.Calories; got != 300 {
		t.Fatalf("expected 300 calories after rescale to 3, got %v", got)
	}
}

func TestFoodLooksUpLoggedEntry(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if err := s.AddFood(day, model.MealBreakfast, rotiSnapshot("f1", 2)); err != nil {
		t.Fatalf("add food: %v", err)
	}

	entry, ok := s.Food(day, model.MealBreakfast, "f1")
	if !ok {
		t.Fatalf("expected to find logged entry f1")
	}
	if entry.FoodID != "bread_roti" || entry.Servings != 2 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if _, ok := s.Food(day, model.MealLunch, "f1"); ok {
		t.Fatalf("entry must not be visible under another meal slot")
	}
	if _, ok := s.Food(day, model.MealBreakfast, "missing"); ok {
		t.Fatalf("unknown id must not resolve")
	}
	if _, ok := s.Food("2024-02-02", model.MealBreakfast, "f1"); ok {
		t.Fatalf("entry must not be visible on another date")
	}
}

func TestWaterTracking(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	s.AddWater(day, 250)
	s.AddWater(day, 250)
	if got := s.Day(day).WaterMl; got != 500 {
		t.Fatalf("expected 500 ml, got %d", got)
	}
	s.SetWater(day, 1200)
	if got := s.Day(day).WaterMl; got != 1200 {
		t.Fatalf("expected 1200 ml after set, got %d", got)
	}
	s.AddWater(day, -2000)
	if got := s.Day(day).WaterMl; got != 0 {
		t.Fatalf("water must not go negative, got %d", got)
	}
	s.SetWater("2024-03-01", 300)
	if got := s.Day("2024-03-01").WaterMl; got != 300 {
		t.Fatalf("setWater must create the day, got %d", got)
	}
}

func TestUpsertWeightKeepsHistorySorted(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	s.UpsertWeight("2024-01-10", 94)
	s.UpsertWeight("2024-01-01", 95)
	s.UpsertWeight("2024-01-05", 94.5)
	s.UpsertWeight("2024-01-10", 93.8) // replace

	history := s.WeightHistory()
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	wantDates := []string{"2024-01-01", "2024-01-05", "2024-01-10"}
	for i, e := range history {
		if e.Date != wantDates[i] {
			t.Fatalf("entry %d: expected date %s, got %s", i, wantDates[i], e.Date)
		}
	}
	if history[2].WeightKg != 93.8 {
		t.Fatalf("expected upsert to replace weight, got %v", history[2].WeightKg)
	}
}

func TestExerciseAddAndRemove(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	id, err := s.AddExercise(model.ExerciseEntry{
		Date:            day.String(),
		Category:        model.ExerciseCardio,
		Name:            "Walking (Brisk)",
		DurationMinutes: 45,
		CaloriesBurned:  375,
		Intensity:       "medium",
	})
	if err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated exercise id")
	}
	if _, err := s.AddExercise(model.ExerciseEntry{Date: "not-a-date"}); err == nil {
		t.Fatalf("expected error for invalid date")
	}

	if got := s.ExerciseCaloriesOn(day); got != 375 {
		t.Fatalf("expected 375 kcal burned, got %d", got)
	}

	s.RemoveExercise(day, "unknown")
	if len(s.ExercisesOn(day)) != 1 {
		t.Fatalf("unknown id removal must be a no-op")
	}
	s.RemoveExercise(day, id)
	if len(s.ExercisesOn(day)) != 0 {
		t.Fatalf("expected entry removed")
	}
}

func TestFavoritesToggle(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	s.ToggleFavorite("bread_roti")
	s.ToggleFavorite("dal_moong")
	if got := s.FavoriteFoodIDs(); len(got) != 2 {
		t.Fatalf("expected 2 favorites, got %v", got)
	}
	s.ToggleFavorite("bread_roti")
	got := s.FavoriteFoodIDs()
	if len(got) != 1 || got[0] != "dal_moong" {
		t.Fatalf("expected toggle to remove, got %v", got)
	}
}

func TestRecentsDedupedAndCapped(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	for i := 0; i < 25; i++ {
		s.MarkRecent(string(rune('a' + i)))
	}
	s.MarkRecent("a")
	got := s.RecentFoodIDs()
	if len(got) != 20 {
		t.Fatalf("expected recents capped at 20, got %d", len(got))
	}
	if got[0] != "a" {
		t.Fatalf("expected most recent first, got %v", got[0])
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate recent id %q", id)
		}
		seen[id] = true
	}
}

func TestSetProfileRecomputesTargets(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	if s.DailyTargets() != ledger.DefaultTargets {
		t.Fatalf("expected default targets before onboarding")
	}
	s.SetProfile(model.UserProfile{
		Age: 50, Gender: model.GenderMale, HeightCm: 170, WeightKg: 94,
		ActivityLevel: model.ActivityLight, GoalType: model.GoalWeightLoss,
	})
	if got := s.DailyTargets().Calories; got != 1800 {
		t.Fatalf("expected 1800 kcal target after profile set, got %d", got)
	}
	if _, ok := s.Profile(); !ok {
		t.Fatalf("expected profile to be set")
	}
}
