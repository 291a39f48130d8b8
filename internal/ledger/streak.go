package ledger

import (
	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

// advanceStreak applies one streak transition for a logged date.
// Re-logging the last counted date is a no-op; logging the exact next
// calendar day extends the streak; anything else, including backfilled
// earlier dates, resets it to 1. The longest streak never decreases.
func advanceStreak(s model.StreakState, date caldate.Date) model.StreakState {
	if s.LastLoggedDate == date.String() {
		return s
	}

	switch {
	case s.LastLoggedDate == "":
		s.CurrentStreak = 1
	case date.IsNextDayAfter(caldate.Date(s.LastLoggedDate)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastLoggedDate = date.String()
	return s
}
