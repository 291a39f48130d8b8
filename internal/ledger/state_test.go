package ledger_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

func populatedStore(t *testing.T) *ledger.Store {
	t.Helper()
	s := ledger.NewStore()
	s.SetProfile(model.UserProfile{
		Name: "Asha", Age: 50, Gender: model.GenderFemale, HeightCm: 158, WeightKg: 72,
		ActivityLevel: model.ActivityModerate, GoalType: model.GoalMaintenance,
	})
	if err := s.AddFood("2024-01-15", model.MealBreakfast, rotiSnapshot("f1", 2)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if err := s.AddFood("2024-01-16", model.MealDinner, rotiSnapshot("f2", 1)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	s.AddWater("2024-01-15", 750)
	s.UpsertWeight("2024-01-15", 72)
	if _, err := s.AddExercise(model.ExerciseEntry{
		Date: "2024-01-15", Category: model.ExerciseFlexibility, Name: "Surya Namaskar",
		DurationMinutes: 20, CaloriesBurned: 93,
	}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	s.ToggleFavorite("bread_roti")
	s.MarkRecent("bread_roti")
	s.MarkRecent("dal_moong")
	return s
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()
	s := populatedStore(t)
	state := s.Snapshot()

	restored := ledger.NewStore()
	restored.Restore(state)
	if !reflect.DeepEqual(state, restored.Snapshot()) {
		t.Fatalf("restore lost data:\noriginal %+v\nrestored %+v", state, restored.Snapshot())
	}
}

func TestSnapshotSurvivesJSON(t *testing.T) {
	t.Parallel()
	s := populatedStore(t)
	state := s.Snapshot()

	raw, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("marshal state: %v", err)
	}
	var decoded ledger.State
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if !reflect.DeepEqual(state, decoded) {
		t.Fatalf("state changed across JSON round trip")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()
	s := populatedStore(t)
	state := s.Snapshot()
	before := state.DailyLogs["2024-01-15"].TotalNutrition

	if err := s.AddFood("2024-01-15", model.MealLunch, rotiSnapshot("f9", 3)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if got := state.DailyLogs["2024-01-15"].TotalNutrition; got != before {
		t.Fatalf("snapshot mutated by later store writes")
	}
}

func TestSnapshotDetachedFromExistingMeal(t *testing.T) {
	t.Parallel()
	s := populatedStore(t)
	state := s.Snapshot()
	meal := state.DailyLogs["2024-01-15"].Meals[0]
	foodsBefore := len(meal.Foods)
	totalBefore := meal.TotalNutrition

	// Append into the meal slot that already existed at snapshot time.
	if err := s.AddFood("2024-01-15", model.MealBreakfast, rotiSnapshot("f9", 3)); err != nil {
		t.Fatalf("add food: %v", err)
	}

	meal = state.DailyLogs["2024-01-15"].Meals[0]
	if len(meal.Foods) != foodsBefore {
		t.Fatalf("snapshot meal grew from %d to %d foods after store write", foodsBefore, len(meal.Foods))
	}
	if meal.TotalNutrition != totalBefore {
		t.Fatalf("snapshot meal total changed from %+v to %+v after store write", totalBefore, meal.TotalNutrition)
	}
}

func TestRestoredStoreDetachedFromState(t *testing.T) {
	t.Parallel()
	state := populatedStore(t).Snapshot()
	s := ledger.NewStore()
	s.Restore(state)

	if err := s.AddFood("2024-01-15", model.MealBreakfast, rotiSnapshot("f9", 3)); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if got := len(state.DailyLogs["2024-01-15"].Meals[0].Foods); got != 1 {
		t.Fatalf("restored-from state mutated by store write: %d foods", got)
	}
}

func TestRestoreDefaultsEmptyTargets(t *testing.T) {
	t.Parallel()
	s := ledger.NewStore()
	s.Restore(ledger.State{})
	if s.DailyTargets() != ledger.DefaultTargets {
		t.Fatalf("expected default targets after restoring empty state, got %+v", s.DailyTargets())
	}
}
