// Package streak decides how one day of activity moves the day-streak
// counters. It is pure state-transition logic: no clock, no storage.
package streak

import (
	"time"

	"github.com/Divyasree00/lexicon/internal/models"
)

// Record applies today's activity to the streak. Dates are ISO
// YYYY-MM-DD calendar days, so crossing midnight is immediately a new
// day. The function is total: any state/date combination yields a valid
// next state, and LongestStreak >= CurrentStreak always holds on the
// way out.
//
// Exactly one of five things happens:
//   - same day again: nothing, a streak never double-counts
//   - continued from yesterday: +1, the freeze token re-arms
//   - one day missed with the freeze unused: the streak survives, the
//     token is spent, and the anchor date deliberately stays put
//   - first ever activity: streak starts at 1
//   - anything else: streak resets to 1
func Record(s models.StreakState, today string) models.StreakState {
	if s.LastActiveDate == today {
		return s
	}

	if s.LastActiveDate == "" {
		s.CurrentStreak = 1
		s.LongestStreak = max(s.LongestStreak, 1)
		s.LastActiveDate = today
		return s
	}

	switch s.LastActiveDate {
	case daysBefore(today, 1):
		s.CurrentStreak++
		s.FreezeUsed = false
		s.LongestStreak = max(s.LongestStreak, s.CurrentStreak)
		s.LastActiveDate = today
	case daysBefore(today, 2):
		if !s.FreezeUsed {
			// Freeze protection: keep the streak, spend the token.
			// LastActiveDate is not advanced in this branch.
			s.FreezeUsed = true
			return s
		}
		s = reset(s, today)
	default:
		s = reset(s, today)
	}

	return s
}

func reset(s models.StreakState, today string) models.StreakState {
	s.CurrentStreak = 1
	s.FreezeUsed = false
	s.LongestStreak = max(s.LongestStreak, 1)
	s.LastActiveDate = today
	return s
}

func daysBefore(date string, days int) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -days).Format(time.DateOnly)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
