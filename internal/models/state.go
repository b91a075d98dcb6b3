package models

import "time"

// Tier picks which word pool feeds the daily challenge. It is a
// selection setting, distinct from the per-word Difficulty grade.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierExpert       Tier = "expert"
)

func Tiers() []Tier {
	return []Tier{TierBeginner, TierIntermediate, TierAdvanced, TierExpert}
}

func (t Tier) Valid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced, TierExpert:
		return true
	}
	return false
}

const (
	// SearchHistoryCap bounds the lookup history, newest first.
	SearchHistoryCap = 100
	// WeeklyStatsCap bounds the analytics window to the last 30 days.
	WeeklyStatsCap = 30

	// ReminderOff disables the daily challenge reminder.
	ReminderOff = -1
)

// AppState is the whole persisted state tree for one user. It is loaded
// and saved as a single JSON document; callers replace it wholesale,
// never field by field.
type AppState struct {
	SearchHistory     []Word          `json:"searchHistory"`
	LearnedWords      []Word          `json:"learnedWords"`
	TotalWordsLearned int             `json:"totalWordsLearned"`
	DailyChallenge    *DailyChallenge `json:"dailyChallenge,omitempty"`
	Streak            StreakState     `json:"streak"`
	Tier              Tier            `json:"difficulty"`
	WeeklyStats       []DailyStat     `json:"weeklyStats"`
	ReminderHour      int             `json:"reminderHour"`
}

// DefaultAppState is the state of a user who has never opened the app.
func DefaultAppState() AppState {
	return AppState{
		Tier:         TierBeginner,
		ReminderHour: ReminderOff,
	}
}

// AddToHistory puts a looked-up word at the front of the search history.
// An earlier entry for the same headword is replaced, never duplicated.
func (s *AppState) AddToHistory(word Word) {
	history := make([]Word, 0, len(s.SearchHistory)+1)
	history = append(history, word)
	for _, w := range s.SearchHistory {
		if w.Text != word.Text {
			history = append(history, w)
		}
	}
	if len(history) > SearchHistoryCap {
		history = history[:SearchHistoryCap]
	}
	s.SearchHistory = history
}

// MarkLearned records a word as learned at the given time. Re-marking a
// headword overwrites the old entry instead of duplicating it; the
// learned-words total still counts the repeat review.
func (s *AppState) MarkLearned(word Word, now time.Time) {
	word.Learned = true
	word.LearnedAt = &now
	word.TimesReviewed++

	learned := make([]Word, 0, len(s.LearnedWords)+1)
	learned = append(learned, word)
	for _, w := range s.LearnedWords {
		if w.Text != word.Text {
			learned = append(learned, w)
		}
	}
	s.LearnedWords = learned
	s.TotalWordsLearned++
}

// AddStat appends one day's activity, keeping only the most recent
// WeeklyStatsCap entries.
func (s *AppState) AddStat(stat DailyStat) {
	stats := append(s.WeeklyStats, stat)
	if len(stats) > WeeklyStatsCap {
		stats = stats[len(stats)-WeeklyStatsCap:]
	}
	s.WeeklyStats = stats
}
