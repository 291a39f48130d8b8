// Package reminder decides which meal and water nudges are due at a
// given clock time. The decision logic is pure; delivery and scheduling
// belong to the caller.
package reminder

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config controls which reminders fire and when.
type Config struct {
	Enabled              bool     `json:"enabled"`
	MealReminders        bool     `json:"meal_reminders"`
	WaterReminders       bool     `json:"water_reminders"`
	MealTimes            []string `json:"meal_times"`
	WaterIntervalMinutes int      `json:"water_interval_minutes"`
}

var defaultMealTimes = []string{"07:30", "10:30", "13:00", "16:00", "19:00", "21:00"}

// DefaultConfig returns the out-of-the-box reminder settings. Reminders
// ship disabled and must be switched on explicitly.
func DefaultConfig() Config {
	return Config{
		Enabled:              false,
		MealReminders:        true,
		WaterReminders:       true,
		MealTimes:            append([]string(nil), defaultMealTimes...),
		WaterIntervalMinutes: 60,
	}
}

// ParseConfig decodes a stored config, filling defaults for anything the
// stored document does not set.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse reminder config: %w", err)
	}
	if len(cfg.MealTimes) == 0 {
		cfg.MealTimes = append([]string(nil), defaultMealTimes...)
	}
	if cfg.WaterIntervalMinutes <= 0 {
		cfg.WaterIntervalMinutes = 60
	}
	return cfg, nil
}

// Message is one reminder nudge.
type Message struct {
	Title string
	Body  string
	Tag   string
}

var mealMessages = map[string]Message{
	"07:30": {Title: "Breakfast Time!", Body: "Start your day right - log your breakfast"},
	"10:30": {Title: "Mid-Morning Snack", Body: "Time for a healthy snack - fruits or sprouts"},
	"13:00": {Title: "Lunch Time!", Body: "Your biggest meal of the day - eat mindfully"},
	"16:00": {Title: "Evening Snack", Body: "Have a light snack - makhana, green tea, or nuts"},
	"19:00": {Title: "Dinner Time!", Body: "Keep dinner lighter than lunch"},
	"21:00": {Title: "Post-Dinner", Body: "Just warm milk or herbal tea - kitchen is closed!"},
}

// MealReminderAt returns the meal nudge due at the clock time, if any.
// Times not in the configured meal list produce nothing.
func (c Config) MealReminderAt(now time.Time) (Message, bool) {
	if !c.Enabled || !c.MealReminders {
		return Message{}, false
	}
	current := now.Format("15:04")
	for _, mt := range c.MealTimes {
		if mt != current {
			continue
		}
		msg, ok := mealMessages[current]
		if !ok {
			msg = Message{Title: "Meal Reminder", Body: "Don't forget to log your meal!"}
		}
		msg.Tag = "meal-" + current
		return msg, true
	}
	return Message{}, false
}

// WaterReminderDue reports whether a hydration nudge is due. Water
// reminders only fire between 07:00 and 21:59 local time.
func (c Config) WaterReminderDue(now time.Time) (Message, bool) {
	if !c.Enabled || !c.WaterReminders {
		return Message{}, false
	}
	if hour := now.Hour(); hour < 7 || hour > 21 {
		return Message{}, false
	}
	return Message{
		Title: "Hydration Reminder",
		Body:  "Time for a glass of water! Stay hydrated.",
		Tag:   "water-reminder",
	}, true
}
