// Package ledger owns the mutable tracking state: the date-keyed daily
// logs, weight history, exercise logs, the logging streak, and the
// favorite/recent food lists. Every mutation runs to completion and
// replaces whole day entries, so a reader never observes a half-updated
// day. Totals are recomputed from scratch on every food mutation rather
// than adjusted incrementally; that costs a little CPU and eliminates
// drift bugs outright.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/model"
	"github.com/aravindcleaerr/DietWise/internal/targets"
)

// DefaultTargets is used until a profile is set.
var DefaultTargets = model.DailyTargets{
	Calories: 1700,
	ProteinG: 100,
	CarbsG:   180,
	FatG:     50,
	FiberG:   35,
	WaterMl:  3000,
}

type Store struct {
	profile       *model.UserProfile
	dailyTargets  model.DailyTargets
	days          map[caldate.Date]model.DailyLog
	weightHistory []model.WeightEntry
	exerciseDays  map[caldate.Date][]model.ExerciseEntry
	streak        model.StreakState
	favoriteIDs   []string
	recentIDs     []string
}

func NewStore() *Store {
	return &Store{
		dailyTargets: DefaultTargets,
		days:         map[caldate.Date]model.DailyLog{},
		exerciseDays: map[caldate.Date][]model.ExerciseEntry{},
	}
}

// SetProfile replaces the profile and recomputes the daily targets, which
// are always a pure function of it.
func (s *Store) SetProfile(profile model.UserProfile) {
	p := profile
	s.profile = &p
	s.dailyTargets = targets.ComputeDailyTargets(profile)
}

// Profile returns a copy of the current profile, if one is set.
func (s *Store) Profile() (model.UserProfile, bool) {
	if s.profile == nil {
		return model.UserProfile{}, false
	}
	return *s.profile, true
}

func (s *Store) DailyTargets() model.DailyTargets {
	return s.dailyTargets
}

// Day returns the log for date, materializing an empty one on first
// access.
func (s *Store) Day(date caldate.Date) model.DailyLog {
	if log, ok := s.days[date]; ok {
		return log
	}
	log := emptyDailyLog(date)
	s.days[date] = log
	return log
}

// Days returns every stored daily log keyed by date.
func (s *Store) Days() map[caldate.Date]model.DailyLog {
	out := make(map[caldate.Date]model.DailyLog, len(s.days))
	for k, v := range s.days {
		out[k] = v
	}
	return out
}

// AddFood appends a snapshot food to the given meal slot, creating the
// day and the meal as needed, then recomputes all totals. The first
// successful add for a date also advances the logging streak.
func (s *Store) AddFood(date caldate.Date, mealType model.MealType, food model.LoggedFood) error {
	if !mealType.Valid() {
		return fmt.Errorf("invalid meal type %q", mealType)
	}
	if food.Servings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	if food.ID == "" {
		food.ID = uuid.NewString()
	}

	log := s.Day(date)
	meal := log.Meal(mealType)
	if meal == nil {
		log.Meals = append(log.Meals, model.MealEntry{
			ID:       uuid.NewString(),
			MealType: mealType,
			Time:     time.Now().Format("15:04"),
			Foods:    []model.LoggedFood{food},
		})
	} else {
		meal.Foods = append(meal.Foods, food)
	}

	s.days[date] = recompute(log)
	s.streak = advanceStreak(s.streak, date)
	return nil
}

// RemoveFood removes a food by id from the meal slot. A meal left with no
// foods is dropped entirely. Unknown ids are a silent no-op.
func (s *Store) RemoveFood(date caldate.Date, mealType model.MealType, foodID string) {
	log, ok := s.days[date]
	if !ok {
		return
	}
	changed := false
	meals := make([]model.MealEntry, 0, len(log.Meals))
	for _, meal := range log.Meals {
		if meal.MealType != mealType {
			meals = append(meals, meal)
			continue
		}
		foods := make([]model.LoggedFood, 0, len(meal.Foods))
		for _, f := range meal.Foods {
			if f.ID == foodID {
				changed = true
				continue
			}
			foods = append(foods, f)
		}
		if len(foods) == 0 {
			continue
		}
		meal.Foods = foods
		meals = append(meals, meal)
	}
	if !changed {
		return
	}
	log.Meals = meals
	s.days[date] = recompute(log)
}

// Food returns the logged food with the given entry id in the meal slot.
func (s *Store) Food(date caldate.Date, mealType model.MealType, foodID string) (model.LoggedFood, bool) {
	log, ok := s.days[date]
	if !ok {
		return model.LoggedFood{}, false
	}
	for _, meal := range log.Meals {
		if meal.MealType != mealType {
			continue
		}
		for _, f := range meal.Foods {
			if f.ID == foodID {
				return f, true
			}
		}
	}
	return model.LoggedFood{}, false
}

// UpdateServings rescales a logged food to newServings using the source
// food's per-serving nutrition. Scaling from the source rather than the
// stored snapshot avoids compounding rounding error. Unknown ids are a
// silent no-op.
func (s *Store) UpdateServings(date caldate.Date, mealType model.MealType, foodID string, newServings float64, perServing model.NutritionInfo) error {
	if newServings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	log, ok := s.days[date]
	if !ok {
		return nil
	}
	changed := false
	for mi := range log.Meals {
		if log.Meals[mi].MealType != mealType {
			continue
		}
		for fi := range log.Meals[mi].Foods {
			if log.Meals[mi].Foods[fi].ID != foodID {
				continue
			}
			log.Meals[mi].Foods[fi].Servings = newServings
			log.Meals[mi].Foods[fi].Nutrition = perServing.Scale(newServings)
			changed = true
		}
	}
	if changed {
		s.days[date] = recompute(log)
	}
	return nil
}

// AddWater adds ml to the day's running water total.
func (s *Store) AddWater(date caldate.Date, ml int) {
	log := s.Day(date)
	log.WaterMl += ml
	if log.WaterMl < 0 {
		log.WaterMl = 0
	}
	s.days[date] = log
}

// SetWater replaces the day's water total.
func (s *Store) SetWater(date caldate.Date, ml int) {
	log := s.Day(date)
	if ml < 0 {
		ml = 0
	}
	log.WaterMl = ml
	s.days[date] = log
}

// UpsertWeight records a weight for the date, replacing any existing
// entry, and keeps the history sorted ascending by date.
func (s *Store) UpsertWeight(date caldate.Date, weightKg float64) {
	for i := range s.weightHistory {
		if s.weightHistory[i].Date == date.String() {
			s.weightHistory[i].WeightKg = weightKg
			return
		}
	}
	s.weightHistory = append(s.weightHistory, model.WeightEntry{Date: date.String(), WeightKg: weightKg})
	sort.Slice(s.weightHistory, func(i, j int) bool {
		return s.weightHistory[i].Date < s.weightHistory[j].Date
	})
}

func (s *Store) WeightHistory() []model.WeightEntry {
	out := make([]model.WeightEntry, len(s.weightHistory))
	copy(out, s.weightHistory)
	return out
}

// AddExercise appends an exercise entry under its date and returns the
// assigned id. Exercise is independent of meal totals, so nothing is
// recomputed.
func (s *Store) AddExercise(entry model.ExerciseEntry) (string, error) {
	date, err := caldate.Parse(entry.Date)
	if err != nil {
		return "", err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.Date = date.String()
	s.exerciseDays[date] = append(s.exerciseDays[date], entry)
	return entry.ID, nil
}

// RemoveExercise removes an exercise entry by id. Unknown ids are a
// silent no-op.
func (s *Store) RemoveExercise(date caldate.Date, id string) {
	entries, ok := s.exerciseDays[date]
	if !ok {
		return
	}
	filtered := make([]model.ExerciseEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == id {
			continue
		}
		filtered = append(filtered, e)
	}
	s.exerciseDays[date] = filtered
}

// ExercisesOn returns the exercise entries logged for the date.
func (s *Store) ExercisesOn(date caldate.Date) []model.ExerciseEntry {
	entries := s.exerciseDays[date]
	out := make([]model.ExerciseEntry, len(entries))
	copy(out, entries)
	return out
}

// ExerciseCaloriesOn sums calories burned across the date's entries.
func (s *Store) ExerciseCaloriesOn(date caldate.Date) int {
	total := 0
	for _, e := range s.exerciseDays[date] {
		total += e.CaloriesBurned
	}
	return total
}

func (s *Store) Streak() model.StreakState {
	return s.streak
}

// ToggleFavorite adds the food id to the favorites list, or removes it if
// already present.
func (s *Store) ToggleFavorite(foodID string) {
	for i, id := range s.favoriteIDs {
		if id == foodID {
			s.favoriteIDs = append(s.favoriteIDs[:i], s.favoriteIDs[i+1:]...)
			return
		}
	}
	s.favoriteIDs = append(s.favoriteIDs, foodID)
}

func (s *Store) FavoriteFoodIDs() []string {
	out := make([]string, len(s.favoriteIDs))
	copy(out, s.favoriteIDs)
	return out
}

// MarkRecent moves the food id to the front of the recents list, capped
// at 20 entries.
func (s *Store) MarkRecent(foodID string) {
	filtered := make([]string, 0, len(s.recentIDs)+1)
	filtered = append(filtered, foodID)
	for _, id := range s.recentIDs {
		if id != foodID {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) > 20 {
		filtered = filtered[:20]
	}
	s.recentIDs = filtered
}

func (s *Store) RecentFoodIDs() []string {
	out := make([]string, len(s.recentIDs))
	copy(out, s.recentIDs)
	return out
}

func emptyDailyLog(date caldate.Date) model.DailyLog {
	return model.DailyLog{
		ID:   uuid.NewString(),
		Date: date.String(),
	}
}

// recompute rebuilds every meal total and the day total from the food
// lists and orders meals by their canonical slot order.
func recompute(log model.DailyLog) model.DailyLog {
	var allFoods []model.LoggedFood
	for i := range log.Meals {
		log.Meals[i].TotalNutrition = model.SumNutrition(log.Meals[i].Foods)
		allFoods = append(allFoods, log.Meals[i].Foods...)
	}
	sort.SliceStable(log.Meals, func(i, j int) bool {
		return log.Meals[i].MealType.Order() < log.Meals[j].MealType.Order()
	})
	log.TotalNutrition = model.SumNutrition(allFoods)
	return log
}
