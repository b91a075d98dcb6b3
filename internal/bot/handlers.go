package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonDailyChallenge = "✨ Daily Challenge"
	ButtonStreak         = "🔥 Streak"
	ButtonMyWords        = "📚 My Words"
	ButtonProgress       = "📊 Progress"
	ButtonLearnedWords   = "✅ Learned"
	ButtonSearchHistory  = "🕘 History"
	ButtonDifficulty     = "⚙️ Difficulty"
	ButtonReminder       = "⏰ Reminder"
	ButtonMainMenu       = "🏠 Main menu"
	ButtonBack           = "⏪ Back"
	ButtonHelp           = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "word":
		t.word.handleLookup(message, message.CommandArguments())
	case "daily":
		t.challenge.sendChallenge(message)
	case "streak":
		t.challenge.sendStreak(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I'm Lexicon, your vocabulary coach!\n\n" +
		"✨ What I can do:\n" +
		"• 🔍 Look up any English word — just type it\n" +
		"• ✨ Run your daily five-word challenge\n" +
		"• 🔥 Keep your day streak alive\n" +
		"• 📊 Track the words you've learned\n\n" +
		"Type a word or pick a button below!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDailyChallenge),
			tgbotapi.NewKeyboardButton(ButtonStreak),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyWords),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDifficulty),
			tgbotapi.NewKeyboardButton(ButtonReminder),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/word <text> — look up a word
/daily — today's challenge
/streak — your streak
/help — this message

🎯 Or just type any English word to look it up.
Buttons:
• "Daily Challenge" — five new words every day
• "My Words" — learned words and search history
• "Progress" — your learning analytics
• "Difficulty" — pick your challenge tier
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	text := message.Text

	switch {
	case text == ButtonDailyChallenge:
		t.challenge.sendChallenge(message)
	case text == ButtonStreak:
		t.challenge.sendStreak(message)
	case text == ButtonMyWords:
		t.showMyWordsMenu(message)
	case text == ButtonProgress:
		t.word.sendStats(message)
	case text == ButtonLearnedWords:
		t.word.showWords(message, message.From.ID, 0, true)
	case text == ButtonSearchHistory:
		t.word.showWords(message, message.From.ID, 0, false)
	case text == ButtonDifficulty:
		t.challenge.sendTierMenu(message)
	case text == ButtonReminder:
		t.challenge.sendReminderMenu(message)
	case text == ButtonMainMenu || text == ButtonBack:
		t.showMainMenu(message)
	case text == ButtonHelp:
		t.handleHelpCommand(message)

	default:
		// Anything else is a lookup.
		t.word.handleLookup(message, text)
	}
}

func (t *TelegramAPI) showMyWordsMenu(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLearnedWords),
			tgbotapi.NewKeyboardButton(ButtonSearchHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonBack),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	msg := tgbotapi.NewMessage(message.Chat.ID, "Which words do you want to see?")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case data == "learn" || data == "skip":
		t.word.handleWordCallbackQuery(query)

	case strings.HasPrefix(data, "f_") || strings.HasPrefix(data, "t_"):
		t.word.wordHandlePagination(query)

	case strings.HasPrefix(data, "reveal_") || strings.HasPrefix(data, "ch_"):
		t.challenge.handleChallengeCallbackQuery(query)

	case strings.HasPrefix(data, "tier_"):
		t.challenge.handleTierCallbackQuery(query)

	case strings.HasPrefix(data, "remind_"):
		t.challenge.handleReminderCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
