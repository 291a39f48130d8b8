package model

import "math"

// Gender values accepted by the targets calculator.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels, least to most active.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

// Goal types.
const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMaintenance = "maintenance"
)

type UserProfile struct {
	Name              string  `json:"name"`
	Age               int     `json:"age"`
	Gender            string  `json:"gender"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	ActivityLevel     string  `json:"activity_level"`
	GoalType          string  `json:"goal_type"`
	TargetWeightKg    float64 `json:"target_weight_kg"`
	DietaryPreference string  `json:"dietary_preference"`
	IsOnboarded       bool    `json:"is_onboarded"`
}

// DailyTargets is always derived from the current profile, never edited
// directly.
type DailyTargets struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	FiberG   int `json:"fiber_g"`
	WaterMl  int `json:"water_ml"`
}

type NutritionInfo struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// Add returns the element-wise sum of n and other.
func (n NutritionInfo) Add(other NutritionInfo) NutritionInfo {
	return NutritionInfo{
		Calories: n.Calories + other.Calories,
		ProteinG: n.ProteinG + other.ProteinG,
		CarbsG:   n.CarbsG + other.CarbsG,
		FatG:     n.FatG + other.FatG,
		FiberG:   n.FiberG + other.FiberG,
	}
}

// Scale multiplies every field by factor, rounding each to one decimal.
func (n NutritionInfo) Scale(factor float64) NutritionInfo {
	return NutritionInfo{
		Calories: round1(n.Calories * factor),
		ProteinG: round1(n.ProteinG * factor),
		CarbsG:   round1(n.CarbsG * factor),
		FatG:     round1(n.FatG * factor),
		FiberG:   round1(n.FiberG * factor),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// SumNutrition sums nutrition over a list of logged foods. Summation is
// exact; rounding happens only when servings are scaled.
func SumNutrition(foods []LoggedFood) NutritionInfo {
	var total NutritionInfo
	for _, f := range foods {
		total = total.Add(f.Nutrition)
	}
	return total
}

// LoggedFood is a snapshot taken at log time. Nutrition is already scaled
// by servings; later edits to the source food never change history.
// Micronutrients, when set, carry per-serving values supplied by the
// food's producer and take precedence over the catalog table.
type LoggedFood struct {
	ID             string               `json:"id"`
	FoodID         string               `json:"food_id"`
	FoodName       string               `json:"food_name"`
	Servings       float64              `json:"servings"`
	ServingUnit    string               `json:"serving_unit"`
	Nutrition      NutritionInfo        `json:"nutrition"`
	Micronutrients *MicronutrientTotals `json:"micronutrients,omitempty"`
}

type MealType string

const (
	MealPreBreakfast MealType = "pre_breakfast"
	MealBreakfast    MealType = "breakfast"
	MealMidMorning   MealType = "mid_morning"
	MealLunch        MealType = "lunch"
	MealEveningSnack MealType = "evening_snack"
	MealDinner       MealType = "dinner"
	MealPostDinner   MealType = "post_dinner"
)

// MealTypes lists the seven meal slots in canonical day order.
var MealTypes = []MealType{
	MealPreBreakfast,
	MealBreakfast,
	MealMidMorning,
	MealLunch,
	MealEveningSnack,
	MealDinner,
	MealPostDinner,
}

var mealTypeInfo = map[MealType]struct {
	order       int
	label       string
	defaultTime string
}{
	MealPreBreakfast: {0, "Pre-Breakfast", "06:30"},
	MealBreakfast:    {1, "Breakfast", "07:30"},
	MealMidMorning:   {2, "Mid-Morning", "10:30"},
	MealLunch:        {3, "Lunch", "13:00"},
	MealEveningSnack: {4, "Evening Snack", "16:00"},
	MealDinner:       {5, "Dinner", "19:00"},
	MealPostDinner:   {6, "Post-Dinner", "21:00"},
}

// Valid reports whether m is one of the seven meal slots.
func (m MealType) Valid() bool {
	_, ok := mealTypeInfo[m]
	return ok
}

// Order returns the slot's position in the day, pre_breakfast first.
func (m MealType) Order() int {
	return mealTypeInfo[m].order
}

func (m MealType) Label() string {
	return mealTypeInfo[m].label
}

// DefaultTime returns the conventional HH:MM time for the slot.
func (m MealType) DefaultTime() string {
	return mealTypeInfo[m].defaultTime
}

// MealEntry groups the foods logged for one meal slot on one day. A meal
// with zero foods is never persisted.
type MealEntry struct {
	ID             string        `json:"id"`
	MealType       MealType      `json:"meal_type"`
	Time           string        `json:"time"`
	Foods          []LoggedFood  `json:"foods"`
	TotalNutrition NutritionInfo `json:"total_nutrition"`
}

// DailyLog holds everything consumed on one calendar date. TotalNutrition
// always equals the sum over all foods in all meals.
type DailyLog struct {
	ID             string        `json:"id"`
	Date           string        `json:"date"`
	Meals          []MealEntry   `json:"meals"`
	TotalNutrition NutritionInfo `json:"total_nutrition"`
	WaterMl        int           `json:"water_ml"`
}

// Meal returns the entry for the given slot, or nil.
func (d *DailyLog) Meal(mealType MealType) *MealEntry {
	for i := range d.Meals {
		if d.Meals[i].MealType == mealType {
			return &d.Meals[i]
		}
	}
	return nil
}

type WeightEntry struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

// Exercise categories.
const (
	ExerciseCardio      = "cardio"
	ExerciseStrength    = "strength"
	ExerciseFlexibility = "flexibility"
	ExerciseBalance     = "balance"
)

type ExerciseEntry struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Category        string `json:"category"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  int    `json:"calories_burned"`
	Intensity       string `json:"intensity"`
	Sets            *int   `json:"sets,omitempty"`
	Reps            *int   `json:"reps,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// StreakState tracks consecutive logging days. LastLoggedDate is empty
// until the first food is logged.
type StreakState struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	LastLoggedDate string `json:"last_logged_date"`
}

type MicronutrientTotals struct {
	VitaminB12Mcg float64 `json:"vitamin_b12_mcg"`
	IronMg        float64 `json:"iron_mg"`
	CalciumMg     float64 `json:"calcium_mg"`
	VitaminDIU    float64 `json:"vitamin_d_iu"`
	Omega3G       float64 `json:"omega3_g"`
}

// FoodItem is a row of the static food reference table. The ledger copies
// values from it at log time and never stores a live reference.
type FoodItem struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	NameHindi    string        `json:"name_hindi,omitempty"`
	Category     string        `json:"category"`
	ServingSize  float64       `json:"serving_size"`
	ServingUnit  string        `json:"serving_unit"`
	Nutrition    NutritionInfo `json:"nutrition"`
	IsVegetarian bool          `json:"is_vegetarian"`
}

// ExerciseItem is a row of the static exercise library.
type ExerciseItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	CaloriesPer30Min int    `json:"calories_per_30_min"`
	Intensity        string `json:"intensity"`
	Description      string `json:"description"`
	DefaultDuration  int    `json:"default_duration"`
	DefaultSets      *int   `json:"default_sets,omitempty"`
	DefaultReps      *int   `json:"default_reps,omitempty"`
}
