package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/google/uuid"
)

const maxRelatedWords = 5

type DictionaryAPI struct {
	baseURL      string
	audioBaseURL string
	http         *http.Client
}

func NewDictionaryAPI(baseURL, audioBaseURL string) *DictionaryAPI {
	return &DictionaryAPI{
		baseURL:      strings.TrimRight(baseURL, "/"),
		audioBaseURL: strings.TrimRight(audioBaseURL, "/"),
		http:         http.DefaultClient,
	}
}

// Lookup resolves a headword against dictionaryapi.dev. Any failure on
// the way — network, non-2xx status, an unparseable or empty body —
// comes back as models.ErrNotFound; callers only ever see "found" or
// "not found".
func (d *DictionaryAPI) Lookup(ctx context.Context, text string) (models.Word, error) {
	endpoint := fmt.Sprintf("%s/api/v2/entries/en/%s", d.baseURL, url.PathEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Word{}, fmt.Errorf("%w: %s", models.ErrNotFound, text)
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return models.Word{}, fmt.Errorf("%w: %s", models.ErrNotFound, text)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Word{}, fmt.Errorf("%w: %s", models.ErrNotFound, text)
	}

	var entries []models.DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil || len(entries) == 0 {
		return models.Word{}, fmt.Errorf("%w: %s", models.ErrNotFound, text)
	}

	return wordFromEntry(entries[0]), nil
}

// AudioURL builds the pronunciation audio locator. Purely syntactic, no
// network round-trip.
func (d *DictionaryAPI) AudioURL(text string) string {
	return fmt.Sprintf("%s/%s-us.mp3", d.audioBaseURL, strings.ToLower(text))
}

func wordFromEntry(entry models.DictionaryEntry) models.Word {
	phonetic := entry.Phonetic
	for _, p := range entry.Phonetics {
		if p.Text != "" {
			phonetic = p.Text
			break
		}
	}

	meaning := "No definition available"
	example := fmt.Sprintf("The word %q is commonly used in everyday language.", entry.Word)
	var synonyms, antonyms []string

	if len(entry.Meanings) > 0 {
		m := entry.Meanings[0]
		synonyms = m.Synonyms
		antonyms = m.Antonyms
		if len(m.Definitions) > 0 {
			def := m.Definitions[0]
			if def.Definition != "" {
				meaning = def.Definition
			}
			if def.Example != "" {
				example = def.Example
			}
			if len(synonyms) == 0 {
				synonyms = def.Synonyms
			}
			if len(antonyms) == 0 {
				antonyms = def.Antonyms
			}
		}
	}

	return models.Word{
		ID:         uuid.NewString(),
		Text:       entry.Word,
		Phonetic:   phonetic,
		Meaning:    meaning,
		Example:    example,
		Synonyms:   capWords(synonyms),
		Antonyms:   capWords(antonyms),
		Difficulty: models.ClassifyDifficulty(entry.Word),
	}
}

func capWords(words []string) []string {
	if len(words) > maxRelatedWords {
		return words[:maxRelatedWords]
	}
	return words
}
