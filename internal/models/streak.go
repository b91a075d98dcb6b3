package models

// StreakState tracks the day streak. LastActiveDate is an ISO
// YYYY-MM-DD calendar date in the user's locale, "" until the first
// activity. FreezeUsed marks the one-day grace token as spent.
type StreakState struct {
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastActiveDate string `json:"lastActiveDate,omitempty"`
	FreezeUsed     bool   `json:"streakFreezeUsed"`
}
