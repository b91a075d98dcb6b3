package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	"github.com/Divyasree00/lexicon/internal/streak"
	"go.uber.org/zap"
)

const challengeSize = 5

var ErrNoChallenge = errors.New("no active challenge for today")

type ChallengeS struct {
	dict     DictionaryAPII
	repo     StateRI
	cache    *cache.Cache
	selector WordSelectorI
	log      *zap.Logger
}

func NewChallengeService(api DictionaryAPII, repo StateRI, cache *cache.Cache, selector WordSelectorI, log *zap.Logger) *ChallengeS {
	return &ChallengeS{
		dict:     api,
		repo:     repo,
		cache:    cache,
		selector: selector,
		log:      log,
	}
}

// Today returns the user's challenge for the given date, building it on
// first call. A stored challenge for the same date is reused as-is: an
// unfinished one resumes, a completed one is read-only history. Words
// resolve strictly in selector order; a word that fails to resolve just
// drops out of the challenge instead of aborting it. A failed load
// still builds the challenge but skips the save, so the stored document
// is never overwritten from a default.
func (c *ChallengeS) Today(ctx context.Context, userID int64, today string) (models.DailyChallenge, error) {
	state, loadErr := c.repo.Load(ctx, userID)
	if loadErr != nil {
		c.log.Warn("failed to load state, serving challenge without persisting", zap.Int64("user_id", userID), zap.Error(loadErr))
	}

	if state.DailyChallenge != nil && state.DailyChallenge.Date == today {
		return *state.DailyChallenge, nil
	}

	texts := c.selector.Select(state.Tier, today, challengeSize)
	words := make([]models.Word, 0, challengeSize)
	for _, text := range texts {
		word, ok := c.resolve(ctx, text)
		if !ok {
			c.log.Warn("dropping unresolvable challenge word", zap.String("word", text))
			continue
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return models.DailyChallenge{}, fmt.Errorf("no challenge words could be resolved for tier %q", state.Tier)
	}

	challenge := models.DailyChallenge{Date: today, Words: words}
	state.DailyChallenge = &challenge
	if loadErr == nil {
		if err := c.repo.Save(ctx, userID, state); err != nil {
			c.log.Warn("failed to save daily challenge", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return challenge, nil
}

// Answer records the user's verdict on one challenge word and returns
// the updated challenge plus the current streak. The word is marked
// done either way; only "knew it" counts towards the score and the
// learned list. The answer that finishes the last word also runs the
// streak engine and files the day's stat.
func (c *ChallengeS) Answer(ctx context.Context, userID int64, wordID string, knew bool, today string) (models.DailyChallenge, int, error) {
	state, err := c.repo.Load(ctx, userID)
	if err != nil {
		return models.DailyChallenge{}, 0, err
	}

	challenge := state.DailyChallenge
	if challenge == nil || challenge.Date != today {
		return models.DailyChallenge{}, 0, ErrNoChallenge
	}
	if challenge.Completed {
		return *challenge, state.Streak.CurrentStreak, nil
	}

	var answered *models.Word
	for i := range challenge.Words {
		if challenge.Words[i].ID == wordID {
			challenge.Words[i].Learned = true
			answered = &challenge.Words[i]
			break
		}
	}
	if answered == nil {
		return models.DailyChallenge{}, 0, fmt.Errorf("word %q is not part of today's challenge", wordID)
	}

	if knew {
		challenge.CorrectAnswers++
		state.MarkLearned(*answered, time.Now())
	}

	if _, left := challenge.Remaining(); !left {
		challenge.Completed = true
		state.Streak = streak.Record(state.Streak, today)
		state.AddStat(models.DailyStat{
			Date:         today,
			WordsLearned: challenge.CorrectAnswers,
			Accuracy:     100 * challenge.CorrectAnswers / len(challenge.Words),
		})
	}

	if err := c.repo.Save(ctx, userID, state); err != nil {
		return models.DailyChallenge{}, 0, err
	}

	return *challenge, state.Streak.CurrentStreak, nil
}

// SetTier switches the user's challenge pool. An unfinished challenge
// for today is discarded so the next one draws from the new pool; a
// completed one stays as history. A failed load is an error: saving on
// top of a default state would wipe the stored document.
func (c *ChallengeS) SetTier(ctx context.Context, userID int64, tier models.Tier, today string) error {
	if !tier.Valid() {
		return fmt.Errorf("unknown difficulty tier %q", tier)
	}

	state, err := c.repo.Load(ctx, userID)
	if err != nil {
		return err
	}

	state.Tier = tier
	if state.DailyChallenge != nil && state.DailyChallenge.Date == today && !state.DailyChallenge.Completed {
		state.DailyChallenge = nil
	}

	return c.repo.Save(ctx, userID, state)
}

// SetReminder stores the hour (0-23 local) of the daily challenge
// nudge, or models.ReminderOff to silence it.
func (c *ChallengeS) SetReminder(ctx context.Context, userID int64, hour int) error {
	if hour != models.ReminderOff && (hour < 0 || hour > 23) {
		return fmt.Errorf("reminder hour %d out of range", hour)
	}

	state, err := c.repo.Load(ctx, userID)
	if err != nil {
		return err
	}

	state.ReminderHour = hour
	return c.repo.Save(ctx, userID, state)
}

// Streak formats the user's streak card.
func (c *ChallengeS) Streak(ctx context.Context, userID int64) (string, error) {
	state, err := c.repo.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	return formatStreak(state.Streak), nil
}

func (c *ChallengeS) resolve(ctx context.Context, text string) (models.Word, bool) {
	if word, ok := c.cache.GetLookup(text); ok {
		return word, true
	}
	word, err := c.dict.Lookup(ctx, text)
	if err != nil {
		return models.Word{}, false
	}
	c.cache.SetLookup(word)
	return word, true
}

func formatStreak(s models.StreakState) string {
	var sb strings.Builder

	sb.WriteString("🔥 *Current streak*: **")
	sb.WriteString(strconv.Itoa(s.CurrentStreak))
	sb.WriteString(" days**\n\n")

	sb.WriteString("🏆 *Longest streak*: **")
	sb.WriteString(strconv.Itoa(s.LongestStreak))
	sb.WriteString(" days**\n\n")

	if s.FreezeUsed {
		sb.WriteString("🧊 *Streak freeze*: used")
	} else {
		sb.WriteString("🧊 *Streak freeze*: available")
	}

	return sb.String()
}

// FormatChallengeSummary renders the completion card for a finished
// challenge.
func FormatChallengeSummary(challenge models.DailyChallenge, currentStreak int) string {
	var sb strings.Builder

	total := len(challenge.Words)
	percentage := 0
	if total > 0 {
		percentage = 100 * challenge.CorrectAnswers / total
	}

	sb.WriteString("🏆 *Challenge complete!*\n\n")
	sb.WriteString(fmt.Sprintf("You knew %d out of %d words (%d%%)\n\n", challenge.CorrectAnswers, total, percentage))
	sb.WriteString(fmt.Sprintf("🔥 **%d** day streak", currentStreak))

	return sb.String()
}
