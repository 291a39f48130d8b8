package ledger

import (
	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

// State is the full serializable form of the store: a plain, acyclic,
// JSON-representable structure. It is what the persistence and backup
// collaborators consume.
type State struct {
	Profile         *model.UserProfile               `json:"profile"`
	DailyTargets    model.DailyTargets               `json:"daily_targets"`
	DailyLogs       map[string]model.DailyLog        `json:"daily_logs"`
	WeightHistory   []model.WeightEntry              `json:"weight_history"`
	ExerciseLogs    map[string][]model.ExerciseEntry `json:"exercise_logs"`
	CurrentStreak   int                              `json:"current_streak"`
	LongestStreak   int                              `json:"longest_streak"`
	LastLoggedDate  string                           `json:"last_logged_date"`
	FavoriteFoodIDs []string                         `json:"favorite_food_ids"`
	RecentFoodIDs   []string                         `json:"recent_food_ids"`
}

// Snapshot copies the store into its serializable form.
func (s *Store) Snapshot() State {
	state := State{
		DailyTargets:    s.dailyTargets,
		DailyLogs:       make(map[string]model.DailyLog, len(s.days)),
		WeightHistory:   s.WeightHistory(),
		ExerciseLogs:    make(map[string][]model.ExerciseEntry, len(s.exerciseDays)),
		CurrentStreak:   s.streak.CurrentStreak,
		LongestStreak:   s.streak.LongestStreak,
		LastLoggedDate:  s.streak.LastLoggedDate,
		FavoriteFoodIDs: s.FavoriteFoodIDs(),
		RecentFoodIDs:   s.RecentFoodIDs(),
	}
	if s.profile != nil {
		p := *s.profile
		state.Profile = &p
	}
	for date, log := range s.days {
		state.DailyLogs[date.String()] = copyDailyLog(log)
	}
	for date, entries := range s.exerciseDays {
		copied := make([]model.ExerciseEntry, len(entries))
		copy(copied, entries)
		state.ExerciseLogs[date.String()] = copied
	}
	return state
}

// Restore replaces the store's contents with a previously snapshotted
// state.
func (s *Store) Restore(state State) {
	s.profile = nil
	if state.Profile != nil {
		p := *state.Profile
		s.profile = &p
	}
	s.dailyTargets = state.DailyTargets
	if s.dailyTargets == (model.DailyTargets{}) {
		s.dailyTargets = DefaultTargets
	}
	s.days = make(map[caldate.Date]model.DailyLog, len(state.DailyLogs))
	for date, log := range state.DailyLogs {
		s.days[caldate.Date(date)] = copyDailyLog(log)
	}
	s.weightHistory = make([]model.WeightEntry, len(state.WeightHistory))
	copy(s.weightHistory, state.WeightHistory)
	s.exerciseDays = make(map[caldate.Date][]model.ExerciseEntry, len(state.ExerciseLogs))
	for date, entries := range state.ExerciseLogs {
		copied := make([]model.ExerciseEntry, len(entries))
		copy(copied, entries)
		s.exerciseDays[caldate.Date(date)] = copied
	}
	s.streak = model.StreakState{
		CurrentStreak:  state.CurrentStreak,
		LongestStreak:  state.LongestStreak,
		LastLoggedDate: state.LastLoggedDate,
	}
	s.favoriteIDs = append([]string(nil), state.FavoriteFoodIDs...)
	s.recentIDs = append([]string(nil), state.RecentFoodIDs...)
}

// copyDailyLog deep-copies the meal and food slices so snapshot and
// store never share backing arrays.
func copyDailyLog(log model.DailyLog) model.DailyLog {
	meals := make([]model.MealEntry, len(log.Meals))
	for i, meal := range log.Meals {
		foods := make([]model.LoggedFood, len(meal.Foods))
		copy(foods, meal.Foods)
		meal.Foods = foods
		meals[i] = meal
	}
	log.Meals = meals
	return log
}
