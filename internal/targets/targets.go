// Package targets derives daily energy, macro, fiber, and water targets
// from a user profile. Every function is pure; degenerate inputs produce
// sentinel outputs instead of errors.
package targets

import (
	"math"

	"github.com/aravindcleaerr/DietWise/internal/model"
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// ComputeBMR estimates basal metabolic rate with the Mifflin-St Jeor
// equation, rounded to the nearest kcal. The "other" gender offset is the
// midpoint of the male and female offsets.
func ComputeBMR(profile model.UserProfile) int {
	base := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	switch profile.Gender {
	case model.GenderFemale:
		base -= 161
	case model.GenderOther:
		base -= 83
	default:
		base -= 5
	}
	return int(math.Round(base))
}

// ComputeTDEE multiplies BMR by the activity multiplier. Unknown activity
// levels fall back to sedentary.
func ComputeTDEE(profile model.UserProfile) int {
	mult, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		mult = activityMultipliers[model.ActivitySedentary]
	}
	return int(math.Round(float64(ComputeBMR(profile)) * mult))
}

// ComputeDailyTargets derives the full set of daily targets from the
// profile and its goal type.
func ComputeDailyTargets(profile model.UserProfile) model.DailyTargets {
	tdee := ComputeTDEE(profile)

	var calories float64
	var proteinPct, carbsPct, fatPct float64

	switch profile.GoalType {
	case model.GoalWeightLoss:
		// Deficit capped at 750 kcal/day; 1200 kcal/day is a hard floor.
		deficit := math.Min(750, math.Round(float64(tdee)*0.25))
		calories = math.Max(1200, float64(tdee)-deficit)
		proteinPct, carbsPct, fatPct = 0.275, 0.425, 0.275
	case model.GoalWeightGain:
		surplus := math.Round(float64(tdee) * 0.15)
		calories = float64(tdee) + surplus
		proteinPct, carbsPct, fatPct = 0.225, 0.525, 0.225
	default: // maintenance
		calories = float64(tdee)
		proteinPct, carbsPct, fatPct = 0.225, 0.475, 0.275
	}

	// Round the calorie target to the nearest 50.
	calories = math.Round(calories/50) * 50

	// Protein and carbs at 4 kcal/g, fat at 9 kcal/g.
	protein := int(math.Round(calories * proteinPct / 4))
	carbs := int(math.Round(calories * carbsPct / 4))
	fat := int(math.Round(calories * fatPct / 9))

	// 14 g fiber per 1000 kcal, minimum 25 g.
	fiber := int(math.Max(25, math.Round(calories/1000*14)))

	// 33 ml water per kg plus an activity bonus, rounded to 100 ml.
	baseWater := profile.WeightKg * 33
	var bonus float64
	switch profile.ActivityLevel {
	case model.ActivityActive, model.ActivityVeryActive:
		bonus = 500
	case model.ActivityModerate:
		bonus = 250
	}
	water := int(math.Round((baseWater+bonus)/100) * 100)

	return model.DailyTargets{
		Calories: int(calories),
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		FiberG:   fiber,
		WaterMl:  water,
	}
}

// ComputeBMI returns weight/(height in m)^2 to one decimal place, or 0 for
// non-positive inputs.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

// BMICategory classifies a BMI value using Asian cutoffs, which are the
// appropriate thresholds for the Indian population.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Invalid"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 23:
		return "Normal"
	case bmi < 25:
		return "Overweight"
	case bmi < 30:
		return "Obese Class I"
	default:
		return "Obese Class II"
	}
}

// WeeksToGoal estimates the weeks needed to move from current to target
// weight at weeklyRateKg per week. Non-positive rates default to 0.5.
func WeeksToGoal(currentKg, targetKg, weeklyRateKg float64) int {
	if weeklyRateKg <= 0 {
		weeklyRateKg = 0.5
	}
	return int(math.Ceil(math.Abs(currentKg-targetKg) / weeklyRateKg))
}

// DeficitInfo summarizes the daily deficit (negative for a surplus) and
// the projected weekly weight change it implies.
type DeficitInfo struct {
	DailyDeficit       int
	WeeklyWeightChange float64
	TargetCalories     int
}

// ComputeDeficitInfo derives deficit/surplus information for the profile.
// 7700 kcal approximates one kg of body fat.
func ComputeDeficitInfo(profile model.UserProfile) DeficitInfo {
	tdee := ComputeTDEE(profile)
	t := ComputeDailyTargets(profile)
	daily := tdee - t.Calories
	weekly := math.Round(float64(daily)*7/7700*100) / 100
	return DeficitInfo{
		DailyDeficit:       daily,
		WeeklyWeightChange: weekly,
		TargetCalories:     t.Calories,
	}
}

// Progress returns the percentage of target consumed, clamped to 0-100
// when clamp is set. A non-positive target yields 0.
func Progress(consumed, target float64, clamp bool) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(consumed / target * 100))
	if pct < 0 {
		pct = 0
	}
	if clamp && pct > 100 {
		pct = 100
	}
	return pct
}
