// Package scheduler nudges users whose daily challenge is still open.
package scheduler

import (
	"context"
	"time"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Notifier delivers the reminder; the bot implements it.
type Notifier interface {
	SendChallengeReminder(userID int64) error
}

type StateRI interface {
	Load(ctx context.Context, userID int64) (models.AppState, error)
	Users(ctx context.Context) ([]int64, error)
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	repo      StateRI
	notifier  Notifier
	log       *zap.Logger
}

func New(repo StateRI, notifier Notifier, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		repo:      repo,
		notifier:  notifier,
		log:       log,
	}
}

func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.remindDueUsers)
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) remindDueUsers() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	s.remind(ctx, now.Hour(), now.Format(time.DateOnly))
}

// remind pings every user whose reminder hour is now and whose
// challenge for today is absent or unfinished.
func (s *Scheduler) remind(ctx context.Context, hour int, today string) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		s.log.Error("failed to list users for reminders", zap.Error(err))
		return
	}

	for _, userID := range users {
		state, err := s.repo.Load(ctx, userID)
		if err != nil {
			s.log.Warn("failed to load state for reminder", zap.Int64("user_id", userID), zap.Error(err))
			continue
		}
		if state.ReminderHour != hour {
			continue
		}
		if ch := state.DailyChallenge; ch != nil && ch.Date == today && ch.Completed {
			continue
		}

		if err := s.notifier.SendChallengeReminder(userID); err != nil {
			s.log.Warn("failed to send reminder", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
}
