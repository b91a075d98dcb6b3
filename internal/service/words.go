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
	"go.uber.org/zap"
)

const wordsPerPage = 10

type WordS struct {
	dict  DictionaryAPII
	repo  StateRI
	cache *cache.Cache
	log   *zap.Logger
}

func NewWordService(api DictionaryAPII, repo StateRI, cache *cache.Cache, log *zap.Logger) *WordS {
	return &WordS{
		dict:  api,
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Lookup resolves a headword, records it in the user's search history
// and returns the formatted word card. A cached entry skips the network
// round-trip. Persistence failures degrade to in-memory operation: a
// failed load serves the card without saving, so the stored document is
// never overwritten from a default. Only an unresolvable word is an
// error.
func (w *WordS) Lookup(ctx context.Context, userID int64, text string) (string, models.Word, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.Word{}, errors.New("empty lookup")
	}

	word, cached := w.cache.GetLookup(text)
	if !cached {
		var err error
		word, err = w.dict.Lookup(ctx, text)
		if err != nil {
			return "", models.Word{}, err
		}
		w.cache.SetLookup(word)
	}

	state, loadErr := w.repo.Load(ctx, userID)
	if loadErr != nil {
		w.log.Warn("failed to load state, serving lookup without persisting", zap.Int64("user_id", userID), zap.Error(loadErr))
	}
	state.AddToHistory(word)
	if loadErr == nil {
		if err := w.repo.Save(ctx, userID, state); err != nil {
			w.log.Warn("failed to save search history", zap.Int64("user_id", userID), zap.Error(err))
		}
	}

	return formatWordCard(word, w.dict.AudioURL(word.Text)), word, nil
}

// MarkLearned records the word as learned. Marking the same headword
// again replaces the old entry instead of duplicating it. A failed load
// is an error: saving on top of a default state would wipe the stored
// document.
func (w *WordS) MarkLearned(ctx context.Context, userID int64, word models.Word) error {
	state, err := w.repo.Load(ctx, userID)
	if err != nil {
		return err
	}
	state.MarkLearned(word, time.Now())
	return w.repo.Save(ctx, userID, state)
}

// Words lists a page of the user's learned words or search history and
// reports whether another page follows.
func (w *WordS) Words(ctx context.Context, userID int64, page int, learned bool) (string, bool, error) {
	state, err := w.repo.Load(ctx, userID)
	if err != nil {
		return "", false, err
	}

	words := state.SearchHistory
	title := "🕘 Search history"
	if learned {
		words = state.LearnedWords
		title = "✅ Learned words"
	}

	total := len(words)
	if total == 0 {
		return "", false, fmt.Errorf("empty list")
	}

	start := page * wordsPerPage
	if start >= total {
		return "", false, fmt.Errorf("empty list")
	}
	end := start + wordsPerPage
	if end > total {
		end = total
	}

	return formatWords(title, words[start:end], total, page), end < total, nil
}

// Stats summarizes the user's learning analytics: totals, the last
// seven days, average accuracy and the difficulty breakdown of learned
// words.
func (w *WordS) Stats(ctx context.Context, userID int64) (string, error) {
	state, err := w.repo.Load(ctx, userID)
	if err != nil {
		return "", err
	}
	return formatStats(state), nil
}

func formatWordCard(word models.Word, audioURL string) string {
	var sb strings.Builder

	sb.WriteString("📚 *Word*: **")
	sb.WriteString(escapeMarkdown(word.Text))
	sb.WriteString("**\n")

	if word.Phonetic != "" {
		sb.WriteString("🔤 *Pronunciation*: `")
		sb.WriteString(escapeMarkdown(word.Phonetic))
		sb.WriteString("`\n")
	}

	sb.WriteString("\n📖 ")
	sb.WriteString(escapeMarkdown(word.Meaning))
	sb.WriteString("\n💬 _")
	sb.WriteString(escapeMarkdown(word.Example))
	sb.WriteString("_\n")

	if len(word.Synonyms) > 0 {
		sb.WriteString("\n🔁 *Synonyms*: ")
		sb.WriteString(strings.Join(escapeSlice(word.Synonyms), ", "))
	}
	if len(word.Antonyms) > 0 {
		sb.WriteString("\n🔄 *Antonyms*: ")
		sb.WriteString(strings.Join(escapeSlice(word.Antonyms), ", "))
	}

	sb.WriteString("\n\n🎯 *Difficulty*: ")
	sb.WriteString(string(word.Difficulty))
	sb.WriteString("\n🔊 [Listen](")
	sb.WriteString(audioURL)
	sb.WriteString(")")

	return sb.String()
}

func formatWords(title string, words []models.Word, total, page int) string {
	var sb strings.Builder

	totalPages := total / wordsPerPage
	if total%wordsPerPage != 0 {
		totalPages++
	}

	sb.WriteString(fmt.Sprintf("%s — page (%d/%d) | %d words:\n\n", title, page+1, totalPages, total))

	for i, word := range words {
		num := page*wordsPerPage + i + 1
		sb.WriteString(fmt.Sprintf("%d. **%s** → *%s*\n",
			num,
			escapeMarkdown(word.Text),
			escapeMarkdown(word.Meaning),
		))

		if word.LearnedAt != nil {
			sb.WriteString("   🎓 learned: ")
			sb.WriteString(word.LearnedAt.Format(time.DateOnly))
		}

		if i < len(words)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func formatStats(state models.AppState) string {
	var sb strings.Builder

	lastWeek := state.WeeklyStats
	if len(lastWeek) > 7 {
		lastWeek = lastWeek[len(lastWeek)-7:]
	}

	weekWords := 0
	accuracySum := 0
	for _, stat := range lastWeek {
		weekWords += stat.WordsLearned
		accuracySum += stat.Accuracy
	}
	averageAccuracy := 0
	if len(lastWeek) > 0 {
		averageAccuracy = accuracySum / len(lastWeek)
	}

	breakdown := map[models.Difficulty]int{}
	for _, word := range state.LearnedWords {
		breakdown[word.Difficulty]++
	}

	sb.WriteString("📚 *Words learned*: **")
	sb.WriteString(strconv.Itoa(state.TotalWordsLearned))
	sb.WriteString("**\n\n")

	sb.WriteString("📈 *This week*: **")
	sb.WriteString(strconv.Itoa(weekWords))
	sb.WriteString("**\n\n")

	sb.WriteString("🎯 *Accuracy*: **")
	sb.WriteString(strconv.Itoa(averageAccuracy))
	sb.WriteString("%**\n\n")

	sb.WriteString("🔥 *Day streak*: **")
	sb.WriteString(strconv.Itoa(state.Streak.CurrentStreak))
	sb.WriteString("**\n\n")

	sb.WriteString("📊 *Difficulty breakdown*:\n")
	sb.WriteString(fmt.Sprintf("  🟢 easy: %d\n", breakdown[models.DifficultyEasy]))
	sb.WriteString(fmt.Sprintf("  🟡 medium: %d\n", breakdown[models.DifficultyMedium]))
	sb.WriteString(fmt.Sprintf("  🔴 hard: %d", breakdown[models.DifficultyHard]))

	return sb.String()
}

func escapeMarkdown(text string) string {
	for _, c := range []string{"_", "*", "`", "[", "]", "#", "!"} {
		text = strings.ReplaceAll(text, c, "\\"+c)
	}
	return text
}

func escapeSlice(strs []string) []string {
	result := make([]string, len(strs))
	for i, s := range strs {
		result[i] = escapeMarkdown(s)
	}
	return result
}
