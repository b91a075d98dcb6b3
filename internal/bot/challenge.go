package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/Divyasree00/lexicon/internal/service"
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ChallengeSI interface {
	Today(ctx context.Context, userID int64, today string) (models.DailyChallenge, error)
	Answer(ctx context.Context, userID int64, wordID string, knew bool, today string) (models.DailyChallenge, int, error)
	SetTier(ctx context.Context, userID int64, tier models.Tier, today string) error
	SetReminder(ctx context.Context, userID int64, hour int) error
	Streak(ctx context.Context, userID int64) (string, error)
}

type ChallengeT struct {
	bot     BotSender
	cache   *cache.Cache
	service ChallengeSI
}

func NewChallengeTAPI(bot BotSender, cache *cache.Cache, service ChallengeSI) *ChallengeT {
	return &ChallengeT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func today() string {
	return time.Now().Format(time.DateOnly)
}

func (t *ChallengeT) sendChallenge(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	challenge, err := t.service.Today(ctx, userID, today())
	if err != nil {
		log.Printf("Failed to build challenge for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load today's challenge. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	if challenge.Completed {
		streak, err := t.service.Streak(ctx, userID)
		if err != nil {
			log.Printf("Failed to get streak for chat %d: %v", message.Chat.ID, err)
			streak = ""
		}
		text := fmt.Sprintf("🏆 Today's challenge is already done — you knew %d out of %d words. Come back tomorrow!",
			challenge.CorrectAnswers, len(challenge.Words))
		if streak != "" {
			text += "\n\n" + streak
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, text)
		msg.ParseMode = "markdown"
		sendMessage(t.bot, msg)
		return
	}

	t.sendChallengeWord(message.Chat.ID, challenge)
}

func (t *ChallengeT) sendChallengeWord(chatID int64, challenge models.DailyChallenge) {
	word, ok := challenge.Remaining()
	if !ok {
		log.Printf("Challenge for chat %d has no remaining words", chatID)
		return
	}

	answered := 0
	for _, w := range challenge.Words {
		if w.Learned {
			answered++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✨ *Daily Challenge* — %d / %d\n\n", answered+1, len(challenge.Words)))
	sb.WriteString("**")
	sb.WriteString(word.Text)
	sb.WriteString("**")
	if word.Phonetic != "" {
		sb.WriteString("\n`")
		sb.WriteString(word.Phonetic)
		sb.WriteString("`")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("💡 Reveal definition", "reveal_"+word.ID),
		},
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *ChallengeT) handleChallengeCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data

	switch {
	case strings.HasPrefix(data, "reveal_"):
		t.revealWord(query, strings.TrimPrefix(data, "reveal_"))
	case strings.HasPrefix(data, "ch_"):
		t.processAnswer(query)
	default:
		log.Printf("Unknown challenge callback: %s", data)
	}
}

func (t *ChallengeT) revealWord(query *tgbotapi.CallbackQuery, wordID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := query.Message.Chat.ID

	challenge, err := t.service.Today(ctx, query.From.ID, today())
	if err != nil {
		log.Printf("Failed to load challenge for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't load the challenge. Try again.")
		sendMessage(t.bot, msg)
		return
	}

	var word *models.Word
	for i := range challenge.Words {
		if challenge.Words[i].ID == wordID {
			word = &challenge.Words[i]
			break
		}
	}
	if word == nil {
		log.Printf("Challenge word %s not found for chat %d", wordID, chatID)
		msg := tgbotapi.NewMessage(chatID, "❌ That word is not part of today's challenge.")
		sendMessage(t.bot, msg)
		return
	}

	text := fmt.Sprintf("📖 %s\n💬 _%s_\n\nDid you know it?", word.Meaning, word.Example)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✅ Knew it!", "ch_y_"+word.ID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Didn't know", "ch_n_"+word.ID),
		},
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *ChallengeT) processAnswer(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := query.Message.Chat.ID

	parts := strings.SplitN(query.Data, "_", 3)
	if len(parts) != 3 {
		log.Printf("Bad answer callback: %s", query.Data)
		return
	}
	knew := parts[1] == "y"

	challenge, streak, err := t.service.Answer(ctx, query.From.ID, parts[2], knew, today())
	if err != nil {
		if errors.Is(err, service.ErrNoChallenge) {
			msg := tgbotapi.NewMessage(chatID, "That challenge has expired. Start today's with ✨ Daily Challenge.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("Failed to record answer for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't record your answer. Try again.")
		sendMessage(t.bot, msg)
		return
	}

	if challenge.Completed {
		msg := tgbotapi.NewMessage(chatID, service.FormatChallengeSummary(challenge, streak))
		msg.ParseMode = "markdown"
		sendMessage(t.bot, msg)
		return
	}

	t.sendChallengeWord(chatID, challenge)
}

func (t *ChallengeT) sendStreak(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	streak, err := t.service.Streak(ctx, message.From.ID)
	if err != nil {
		log.Printf("Failed to get streak for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load your streak")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, streak)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *ChallengeT) sendTierMenu(message *tgbotapi.Message) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, tier := range models.Tiers() {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(string(tier), "tier_"+string(tier)),
		})
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(message.Chat.ID, "⚙️ Pick your challenge difficulty:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *ChallengeT) handleTierCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chatID := query.Message.Chat.ID
	tier := models.Tier(strings.TrimPrefix(query.Data, "tier_"))

	if err := t.service.SetTier(ctx, query.From.ID, tier, today()); err != nil {
		log.Printf("Failed to set tier for user %d: %v", query.From.ID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't change the difficulty. Try again.")
		sendMessage(t.bot, msg)
		return
	}

	text := fmt.Sprintf("⚙️ Difficulty set to *%s*. An unfinished challenge for today starts over from the new pool.", tier)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *ChallengeT) sendReminderMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("09:00", "remind_9"),
			tgbotapi.NewInlineKeyboardButtonData("12:00", "remind_12"),
			tgbotapi.NewInlineKeyboardButtonData("18:00", "remind_18"),
			tgbotapi.NewInlineKeyboardButtonData("21:00", "remind_21"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔕 Off", "remind_off"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "⏰ When should I remind you about the daily challenge?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *ChallengeT) handleReminderCallbackQuery(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chatID := query.Message.Chat.ID
	suffix := strings.TrimPrefix(query.Data, "remind_")

	hour := models.ReminderOff
	if suffix != "off" {
		h, err := strconv.Atoi(suffix)
		if err != nil {
			log.Printf("Bad reminder callback: %s", query.Data)
			return
		}
		hour = h
	}

	if err := t.service.SetReminder(ctx, query.From.ID, hour); err != nil {
		log.Printf("Failed to set reminder for user %d: %v", query.From.ID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't save the reminder. Try again.")
		sendMessage(t.bot, msg)
		return
	}

	text := "🔕 Reminder turned off."
	if hour != models.ReminderOff {
		text = fmt.Sprintf("⏰ I'll remind you every day at %02d:00.", hour)
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))
}
