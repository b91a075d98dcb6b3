package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloResponse = `[
	{
		"word": "hello",
		"phonetic": "həˈləʊ",
		"phonetics": [
			{"audio": "https://example.com/hello.mp3"},
			{"text": "/həˈləʊ/"}
		],
		"meanings": [
			{
				"partOfSpeech": "noun",
				"definitions": [
					{
						"definition": "a greeting when meeting someone",
						"example": "Hello, how are you?",
						"synonyms": ["hi", "hey", "howdy", "greetings", "salutations", "yo", "hiya"],
						"antonyms": ["goodbye"]
					}
				]
			},
			{
				"partOfSpeech": "interjection",
				"definitions": [{"definition": "used to express surprise"}]
			}
		]
	}
]`

func newTestAPI(t *testing.T, handler http.HandlerFunc) *DictionaryAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewDictionaryAPI(srv.URL, srv.URL+"/media/pronunciations/en")
}

func TestDictionaryAPI_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		assertFunc func(t *testing.T, word models.Word, err error)
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/entries/en/hello", r.URL.Path)
				w.Write([]byte(helloResponse))
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, word.ID)
				assert.Equal(t, "hello", word.Text)
				assert.Equal(t, "/həˈləʊ/", word.Phonetic)
				assert.Equal(t, "a greeting when meeting someone", word.Meaning)
				assert.Equal(t, "Hello, how are you?", word.Example)
				// Capped at five, source order kept.
				assert.Equal(t, []string{"hi", "hey", "howdy", "greetings", "salutations"}, word.Synonyms)
				assert.Equal(t, []string{"goodbye"}, word.Antonyms)
				assert.Equal(t, models.DifficultyEasy, word.Difficulty)
				assert.False(t, word.Learned)
				assert.Zero(t, word.TimesReviewed)
			},
		},
		{
			name: "missing definitions fall back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"word": "qwertyuiop", "meanings": []}]`))
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				require.NoError(t, err)
				assert.Equal(t, "No definition available", word.Meaning)
				assert.Contains(t, word.Example, `"qwertyuiop"`)
				assert.Equal(t, models.DifficultyHard, word.Difficulty)
			},
		},
		{
			name: "top-level phonetic fallback",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"word": "cat", "phonetic": "/kæt/", "phonetics": [{"audio": "x.mp3"}]}]`))
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				require.NoError(t, err)
				assert.Equal(t, "/kæt/", word.Phonetic)
			},
		},
		{
			name: "not found status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				assert.True(t, errors.Is(err, models.ErrNotFound))
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				assert.True(t, errors.Is(err, models.ErrNotFound))
			},
		},
		{
			name: "empty entry list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("[]"))
			},
			assertFunc: func(t *testing.T, word models.Word, err error) {
				assert.True(t, errors.Is(err, models.ErrNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)
			word, err := api.Lookup(context.Background(), "hello")
			tt.assertFunc(t, word, err)
		})
	}
}

func TestDictionaryAPI_Lookup_NetworkError(t *testing.T) {
	t.Parallel()

	api := NewDictionaryAPI("http://127.0.0.1:1", "http://127.0.0.1:1")
	_, err := api.Lookup(context.Background(), "hello")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestDictionaryAPI_AudioURL(t *testing.T) {
	t.Parallel()

	api := NewDictionaryAPI("https://api.dictionaryapi.dev", "https://api.dictionaryapi.dev/media/pronunciations/en")

	assert.Equal(t,
		"https://api.dictionaryapi.dev/media/pronunciations/en/hello-us.mp3",
		api.AudioURL("Hello"),
	)
}
