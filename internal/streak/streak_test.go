package streak

import (
	"testing"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state models.StreakState
		today string
		want  models.StreakState
	}{
		{
			name:  "same day is a no-op",
			state: models.StreakState{CurrentStreak: 3, LongestStreak: 5, LastActiveDate: "2024-05-01"},
			today: "2024-05-01",
			want:  models.StreakState{CurrentStreak: 3, LongestStreak: 5, LastActiveDate: "2024-05-01"},
		},
		{
			name:  "consecutive day increments",
			state: models.StreakState{CurrentStreak: 3, LongestStreak: 5, LastActiveDate: "2024-05-01"},
			today: "2024-05-02",
			want:  models.StreakState{CurrentStreak: 4, LongestStreak: 5, LastActiveDate: "2024-05-02"},
		},
		{
			name:  "consecutive day beats longest",
			state: models.StreakState{CurrentStreak: 5, LongestStreak: 5, LastActiveDate: "2024-05-01"},
			today: "2024-05-02",
			want:  models.StreakState{CurrentStreak: 6, LongestStreak: 6, LastActiveDate: "2024-05-02"},
		},
		{
			name:  "consecutive day re-arms the freeze",
			state: models.StreakState{CurrentStreak: 2, LongestStreak: 4, LastActiveDate: "2024-05-01", FreezeUsed: true},
			today: "2024-05-02",
			want:  models.StreakState{CurrentStreak: 3, LongestStreak: 4, LastActiveDate: "2024-05-02", FreezeUsed: false},
		},
		{
			name:  "one missed day with freeze keeps the streak",
			state: models.StreakState{CurrentStreak: 7, LongestStreak: 7, LastActiveDate: "2024-05-01"},
			today: "2024-05-03",
			// The anchor date stays where it was; only the token moves.
			want: models.StreakState{CurrentStreak: 7, LongestStreak: 7, LastActiveDate: "2024-05-01", FreezeUsed: true},
		},
		{
			name:  "one missed day with freeze spent resets",
			state: models.StreakState{CurrentStreak: 7, LongestStreak: 7, LastActiveDate: "2024-05-01", FreezeUsed: true},
			today: "2024-05-03",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 7, LastActiveDate: "2024-05-03"},
		},
		{
			name:  "multi-day gap resets even with freeze",
			state: models.StreakState{CurrentStreak: 10, LongestStreak: 10, LastActiveDate: "2024-05-01"},
			today: "2024-05-05",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 10, LastActiveDate: "2024-05-05"},
		},
		{
			name:  "first ever activity",
			state: models.StreakState{},
			today: "2024-05-01",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: "2024-05-01"},
		},
		{
			name:  "reset from zero keeps longest at one",
			state: models.StreakState{CurrentStreak: 0, LongestStreak: 0, LastActiveDate: "2024-04-01", FreezeUsed: true},
			today: "2024-05-01",
			want:  models.StreakState{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: "2024-05-01"},
		},
		{
			name:  "month boundary still counts as consecutive",
			state: models.StreakState{CurrentStreak: 1, LongestStreak: 1, LastActiveDate: "2024-04-30"},
			today: "2024-05-01",
			want:  models.StreakState{CurrentStreak: 2, LongestStreak: 2, LastActiveDate: "2024-05-01"},
		},
		{
			name:  "year boundary still counts as consecutive",
			state: models.StreakState{CurrentStreak: 9, LongestStreak: 9, LastActiveDate: "2023-12-31"},
			today: "2024-01-01",
			want:  models.StreakState{CurrentStreak: 10, LongestStreak: 10, LastActiveDate: "2024-01-01"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Record(tt.state, tt.today)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.LongestStreak, got.CurrentStreak)
		})
	}
}

func TestRecord_LongestNeverDrops(t *testing.T) {
	t.Parallel()

	state := models.StreakState{}
	dates := []string{
		"2024-05-01", "2024-05-02", "2024-05-03", // build up to 3
		"2024-05-10", // long gap, reset
		"2024-05-11",
	}
	for _, d := range dates {
		state = Record(state, d)
		assert.GreaterOrEqual(t, state.LongestStreak, state.CurrentStreak)
	}

	assert.Equal(t, 2, state.CurrentStreak)
	assert.Equal(t, 3, state.LongestStreak)
}
