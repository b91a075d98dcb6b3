package models

import (
	"errors"
	"time"
)

// ErrNotFound reports that a headword has no dictionary entry.
var ErrNotFound = errors.New("word not found")

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ClassifyDifficulty grades a headword by its length alone, so the same
// word always lands in the same bucket.
func ClassifyDifficulty(word string) Difficulty {
	switch l := len([]rune(word)); {
	case l <= 5:
		return DifficultyEasy
	case l <= 8:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// Word is a resolved dictionary entry. Everything except the learning
// bookkeeping (Learned, LearnedAt, TimesReviewed) is fixed at resolution
// time.
type Word struct {
	ID            string     `json:"id"`
	Text          string     `json:"word"`
	Phonetic      string     `json:"phonetic"`
	Meaning       string     `json:"meaning"`
	Example       string     `json:"example"`
	Synonyms      []string   `json:"synonyms"`
	Antonyms      []string   `json:"antonyms"`
	Difficulty    Difficulty `json:"difficulty"`
	Learned       bool       `json:"learned"`
	LearnedAt     *time.Time `json:"learnedAt,omitempty"`
	TimesReviewed int        `json:"timesReviewed"`
}
