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
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type WordSI interface {
	Lookup(ctx context.Context, userID int64, text string) (string, models.Word, error)
	MarkLearned(ctx context.Context, userID int64, word models.Word) error
	Words(ctx context.Context, userID int64, page int, learned bool) (string, bool, error)
	Stats(ctx context.Context, userID int64) (string, error)
}

type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *WordT) handleLookup(message *tgbotapi.Message, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	text = strings.TrimSpace(text)
	if text == "" {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Type a word to look it up, e.g. `serendipity`.")
		msg.ParseMode = "markdown"
		sendMessage(t.bot, msg)
		return
	}

	card, word, err := t.service.Lookup(ctx, userID, text)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			msg := tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("🤷 Word not found: %q. Check the spelling?", text))
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("Failed to look up %q for chat %d: %v", text, message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Something went wrong. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetPending(userID, word)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🎓 Mark learned", "learn"),
			tgbotapi.NewInlineKeyboardButtonData("➡️ Skip", "skip"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, card)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *WordT) handleWordCallbackQuery(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	word, exists := t.cache.GetPending(userID)
	if !exists {
		log.Printf("No pending word for user %d", userID)
		msg := tgbotapi.NewMessage(chatID, "❌ That card has expired. Look the word up again.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.DeletePending(userID)

	if query.Data == "skip" {
		msg := tgbotapi.NewMessage(chatID, "👌 Skipped. Type another word!")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.MarkLearned(ctx, userID, word); err != nil {
		log.Printf("Failed to mark %q learned for user %d: %v", word.Text, userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Failed to save. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🎓 **%s** added to your learned words!", word.Text))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *WordT) showWords(message *tgbotapi.Message, userID int64, page int, learned bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	text, hasNext, err := t.service.Words(ctx, userID, page, learned)
	if err != nil {
		log.Printf("Failed to load words for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "📭 Nothing here yet. Look up some words first!")
		sendMessage(t.bot, msg)
		return
	}

	learnedPrefix := "f"
	if learned {
		learnedPrefix = "t"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	keyboard := t.wordPaginationKeyboard(learnedPrefix, page, hasNext)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, msg)
}

func (t *WordT) sendStats(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	stats, err := t.service.Stats(ctx, message.From.ID)
	if err != nil {
		log.Printf("Failed to get stats for chat %d: %v", message.Chat.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to load your progress")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, stats)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *WordT) wordHandlePagination(query *tgbotapi.CallbackQuery) {
	parts := strings.SplitN(query.Data, "_", 2)
	if len(parts) != 2 {
		log.Printf("Bad pagination callback: %s", query.Data)
		return
	}

	page, err := strconv.Atoi(parts[1])
	if err != nil {
		log.Printf("Bad pagination page: %s", query.Data)
		return
	}

	t.showWords(query.Message, query.From.ID, page, parts[0] == "t")
}

func (t *WordT) wordPaginationKeyboard(prefix string, page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton

	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", fmt.Sprintf("%s_%d", prefix, page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️", fmt.Sprintf("%s_%d", prefix, page+1)))
	}
	if len(row) == 0 {
		return nil
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}
