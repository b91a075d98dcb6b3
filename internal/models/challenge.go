package models

// DailyChallenge is one day's five-word quiz. Words keeps the order the
// selector produced; it never changes after creation.
type DailyChallenge struct {
	Date           string `json:"date"`
	Words          []Word `json:"words"`
	Completed      bool   `json:"completed"`
	CorrectAnswers int    `json:"correctAnswers"`
}

// Remaining returns the first challenge word the user has not answered
// yet, or false when every word is done.
func (c *DailyChallenge) Remaining() (Word, bool) {
	for _, w := range c.Words {
		if !w.Learned {
			return w, true
		}
	}
	return Word{}, false
}

// DailyStat is one day's learning activity, kept for analytics.
type DailyStat struct {
	Date         string `json:"date"`
	WordsLearned int    `json:"wordsLearned"`
	Accuracy     int    `json:"accuracy"`
}
