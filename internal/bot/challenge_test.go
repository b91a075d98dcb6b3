package bot

import (
	"errors"
	"testing"

	mock_bot "github.com/Divyasree00/lexicon/internal/bot/mock"
	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/Divyasree00/lexicon/internal/service"
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func challengeOf(words ...models.Word) models.DailyChallenge {
	return models.DailyChallenge{Date: today(), Words: words}
}

func TestChallengeT_SendChallenge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		f        func(s *mock_bot.MockChallengeSI)
		wantText string
	}{
		{
			name: "fresh challenge shows the first word",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Today(gomock.Any(), int64(1), today()).
					Return(challengeOf(
						models.Word{ID: "w1", Text: "serendipity", Phonetic: "/ˌsɛr.ənˈdɪp.ɪ.ti/"},
						models.Word{ID: "w2", Text: "ephemeral"},
					), nil)
			},
			wantText: "✨ *Daily Challenge* — 1 / 2\n\n**serendipity**\n`/ˌsɛr.ənˈdɪp.ɪ.ti/`",
		},
		{
			name: "partially answered challenge resumes",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Today(gomock.Any(), int64(1), today()).
					Return(challengeOf(
						models.Word{ID: "w1", Text: "serendipity", Learned: true},
						models.Word{ID: "w2", Text: "ephemeral"},
					), nil)
			},
			wantText: "✨ *Daily Challenge* — 2 / 2\n\n**ephemeral**",
		},
		{
			name: "completed challenge shows the summary",
			f: func(s *mock_bot.MockChallengeSI) {
				ch := challengeOf(models.Word{ID: "w1", Text: "serendipity", Learned: true})
				ch.Completed = true
				ch.CorrectAnswers = 1
				s.EXPECT().Today(gomock.Any(), int64(1), today()).Return(ch, nil)
				s.EXPECT().Streak(gomock.Any(), int64(1)).Return("🔥 *Current streak*: **1 days**", nil)
			},
			wantText: "🏆 Today's challenge is already done — you knew 1 out of 1 words. Come back tomorrow!\n\n🔥 *Current streak*: **1 days**",
		},
		{
			name: "service failure",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Today(gomock.Any(), int64(1), today()).
					Return(models.DailyChallenge{}, errors.New("db down"))
			},
			wantText: "❌ Couldn't load today's challenge. Try again later.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_bot.NewMockChallengeSI(ctrl)
			tt.f(svc)

			bot := &mock_bot.MockBot{}
			handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
			handler.sendChallenge(testMessage("✨ Daily Challenge"))

			assert.Equal(t, tt.wantText, sentText(t, bot, 0))
		})
	}
}

func TestChallengeT_RevealWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		f        func(s *mock_bot.MockChallengeSI)
		wantText string
	}{
		{
			name: "reveals meaning and verdict buttons",
			data: "reveal_w1",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Today(gomock.Any(), int64(1), today()).
					Return(challengeOf(models.Word{
						ID:      "w1",
						Text:    "serendipity",
						Meaning: "a happy accident",
						Example: "Finding it was pure serendipity.",
					}), nil)
			},
			wantText: "📖 a happy accident\n💬 _Finding it was pure serendipity._\n\nDid you know it?",
		},
		{
			name: "word missing from today's challenge",
			data: "reveal_w9",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Today(gomock.Any(), int64(1), today()).
					Return(challengeOf(models.Word{ID: "w1", Text: "serendipity"}), nil)
			},
			wantText: "❌ That word is not part of today's challenge.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_bot.NewMockChallengeSI(ctrl)
			tt.f(svc)

			bot := &mock_bot.MockBot{}
			handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
			handler.handleChallengeCallbackQuery(testCallback(tt.data))

			assert.Equal(t, tt.wantText, sentText(t, bot, 0))
		})
	}
}

func TestChallengeT_ProcessAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		f        func(s *mock_bot.MockChallengeSI)
		wantText string
	}{
		{
			name: "knew it moves to the next word",
			data: "ch_y_w1",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Answer(gomock.Any(), int64(1), "w1", true, today()).
					Return(challengeOf(
						models.Word{ID: "w1", Text: "serendipity", Learned: true},
						models.Word{ID: "w2", Text: "ephemeral"},
					), 0, nil)
			},
			wantText: "✨ *Daily Challenge* — 2 / 2\n\n**ephemeral**",
		},
		{
			name: "last answer shows the summary",
			data: "ch_n_w2",
			f: func(s *mock_bot.MockChallengeSI) {
				ch := challengeOf(
					models.Word{ID: "w1", Text: "serendipity", Learned: true},
					models.Word{ID: "w2", Text: "ephemeral", Learned: true},
				)
				ch.Completed = true
				ch.CorrectAnswers = 1
				s.EXPECT().Answer(gomock.Any(), int64(1), "w2", false, today()).Return(ch, 4, nil)
			},
			wantText: service.FormatChallengeSummary(models.DailyChallenge{
				Words:          []models.Word{{ID: "w1"}, {ID: "w2"}},
				CorrectAnswers: 1,
			}, 4),
		},
		{
			name: "expired challenge",
			data: "ch_y_w1",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Answer(gomock.Any(), int64(1), "w1", true, today()).
					Return(models.DailyChallenge{}, 0, service.ErrNoChallenge)
			},
			wantText: "That challenge has expired. Start today's with ✨ Daily Challenge.",
		},
		{
			name: "service failure",
			data: "ch_y_w1",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().Answer(gomock.Any(), int64(1), "w1", true, today()).
					Return(models.DailyChallenge{}, 0, errors.New("db down"))
			},
			wantText: "❌ Couldn't record your answer. Try again.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_bot.NewMockChallengeSI(ctrl)
			tt.f(svc)

			bot := &mock_bot.MockBot{}
			handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
			handler.handleChallengeCallbackQuery(testCallback(tt.data))

			assert.Equal(t, tt.wantText, sentText(t, bot, 0))
		})
	}
}

func TestChallengeT_SendStreak(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_bot.NewMockChallengeSI(ctrl)
	svc.EXPECT().Streak(gomock.Any(), int64(1)).Return("🔥 *Current streak*: **3 days**", nil)

	bot := &mock_bot.MockBot{}
	handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
	handler.sendStreak(testMessage("🔥 Streak"))

	assert.Equal(t, "🔥 *Current streak*: **3 days**", sentText(t, bot, 0))
}

func TestChallengeT_HandleTierCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		f        func(s *mock_bot.MockChallengeSI)
		wantText string
	}{
		{
			name: "tier changed",
			data: "tier_advanced",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().SetTier(gomock.Any(), int64(1), models.TierAdvanced, today()).Return(nil)
			},
			wantText: "⚙️ Difficulty set to *advanced*. An unfinished challenge for today starts over from the new pool.",
		},
		{
			name: "unknown tier rejected",
			data: "tier_wizard",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().SetTier(gomock.Any(), int64(1), models.Tier("wizard"), today()).
					Return(errors.New(`unknown difficulty tier "wizard"`))
			},
			wantText: "❌ Couldn't change the difficulty. Try again.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_bot.NewMockChallengeSI(ctrl)
			tt.f(svc)

			bot := &mock_bot.MockBot{}
			handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
			handler.handleTierCallbackQuery(testCallback(tt.data))

			assert.Equal(t, tt.wantText, sentText(t, bot, 0))
		})
	}
}

func TestChallengeT_HandleReminderCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		f        func(s *mock_bot.MockChallengeSI)
		wantText string
	}{
		{
			name: "hour set",
			data: "remind_18",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().SetReminder(gomock.Any(), int64(1), 18).Return(nil)
			},
			wantText: "⏰ I'll remind you every day at 18:00.",
		},
		{
			name: "turned off",
			data: "remind_off",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().SetReminder(gomock.Any(), int64(1), models.ReminderOff).Return(nil)
			},
			wantText: "🔕 Reminder turned off.",
		},
		{
			name: "save failure",
			data: "remind_9",
			f: func(s *mock_bot.MockChallengeSI) {
				s.EXPECT().SetReminder(gomock.Any(), int64(1), 9).Return(errors.New("db down"))
			},
			wantText: "❌ Couldn't save the reminder. Try again.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_bot.NewMockChallengeSI(ctrl)
			tt.f(svc)

			bot := &mock_bot.MockBot{}
			handler := NewChallengeTAPI(bot, cache.NewCache(), svc)
			handler.handleReminderCallbackQuery(testCallback(tt.data))

			assert.Equal(t, tt.wantText, sentText(t, bot, 0))
		})
	}
}

func TestChallengeT_SendTierMenu(t *testing.T) {
	t.Parallel()

	bot := &mock_bot.MockBot{}
	handler := NewChallengeTAPI(bot, cache.NewCache(), nil)
	handler.sendTierMenu(testMessage("🎚 Difficulty"))

	require.Len(t, bot.SentMessages, 1)
	msg := bot.SentMessages[0].(tgbotapi.MessageConfig)
	kb, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, kb.InlineKeyboard, 4)
	assert.Equal(t, "tier_beginner", *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "tier_expert", *kb.InlineKeyboard[3][0].CallbackData)
}
