package catalog

import (
	"math"

	"github.com/aravindcleaerr/DietWise/internal/model"
)

func intp(v int) *int { return &v }

// Exercises is the built-in exercise library. Calorie burn is calibrated
// for a ~90 kg adult.
var Exercises = []model.ExerciseItem{
	{ID: "walk_light", Name: "Walking (Slow)", Category: model.ExerciseCardio, CaloriesPer30Min: 150, Intensity: "low", Description: "Light walk at ~2.0 mph pace", DefaultDuration: 30},
	{ID: "walk_moderate", Name: "Walking (Moderate)", Category: model.ExerciseCardio, CaloriesPer30Min: 200, Intensity: "medium", Description: "Moderate walk at ~3.0 mph pace", DefaultDuration: 30},
	{ID: "walk_brisk", Name: "Walking (Brisk)", Category: model.ExerciseCardio, CaloriesPer30Min: 250, Intensity: "medium", Description: "Brisk walk at ~4.0 mph pace", DefaultDuration: 30},
	{ID: "cycling_casual", Name: "Cycling (Casual)", Category: model.ExerciseCardio, CaloriesPer30Min: 280, Intensity: "medium", Description: "Casual cycling on flat ground", DefaultDuration: 30},
	{ID: "swimming", Name: "Swimming (Leisure)", Category: model.ExerciseCardio, CaloriesPer30Min: 300, Intensity: "medium", Description: "Leisurely lap swimming", DefaultDuration: 30},
	{ID: "stairs", Name: "Stair Climbing", Category: model.ExerciseCardio, CaloriesPer30Min: 320, Intensity: "high", Description: "Climbing stairs at a steady pace", DefaultDuration: 15},
	{ID: "bodyweight_squats", Name: "Bodyweight Squats", Category: model.ExerciseStrength, CaloriesPer30Min: 200, Intensity: "medium", Description: "Squats with body weight only", DefaultDuration: 15, DefaultSets: intp(3), DefaultReps: intp(15)},
	{ID: "pushups", Name: "Push-ups", Category: model.ExerciseStrength, CaloriesPer30Min: 220, Intensity: "medium", Description: "Standard or knee push-ups", DefaultDuration: 15, DefaultSets: intp(3), DefaultReps: intp(10)},
	{ID: "resistance_band", Name: "Resistance Band Workout", Category: model.ExerciseStrength, CaloriesPer30Min: 180, Intensity: "medium", Description: "Full-body resistance band session", DefaultDuration: 30, DefaultSets: intp(3), DefaultReps: intp(12)},
	{ID: "yoga_hatha", Name: "Yoga (Hatha)", Category: model.ExerciseFlexibility, CaloriesPer30Min: 120, Intensity: "low", Description: "Gentle hatha yoga flow", DefaultDuration: 30},
	{ID: "surya_namaskar", Name: "Surya Namaskar", Category: model.ExerciseFlexibility, CaloriesPer30Min: 180, Intensity: "medium", Description: "Sun salutation rounds", DefaultDuration: 20},
	{ID: "stretching", Name: "Stretching", Category: model.ExerciseFlexibility, CaloriesPer30Min: 90, Intensity: "low", Description: "Full-body stretching routine", DefaultDuration: 15},
	{ID: "tai_chi", Name: "Tai Chi", Category: model.ExerciseBalance, CaloriesPer30Min: 140, Intensity: "low", Description: "Slow controlled tai chi forms", DefaultDuration: 30},
	{ID: "balance_drills", Name: "Balance Drills", Category: model.ExerciseBalance, CaloriesPer30Min: 100, Intensity: "low", Description: "Single-leg stands and heel-to-toe walks", DefaultDuration: 15},
}

var exercisesByID = func() map[string]model.ExerciseItem {
	m := make(map[string]model.ExerciseItem, len(Exercises))
	for _, e := range Exercises {
		m[e.ID] = e
	}
	return m
}()

// ExerciseByID returns the library exercise with the given id by value.
func ExerciseByID(id string) (model.ExerciseItem, bool) {
	e, ok := exercisesByID[id]
	return e, ok
}

// BurnForDuration scales an exercise's 30-minute calorie burn to the
// given duration, rounded to the nearest kcal.
func BurnForDuration(item model.ExerciseItem, minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return int(math.Round(float64(item.CaloriesPer30Min) * float64(minutes) / 30))
}
