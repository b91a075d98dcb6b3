package cache

import (
	"strings"
	"sync"

	"github.com/Divyasree00/lexicon/internal/models"
)

// Cache keeps resolved dictionary entries (keyed by lowercase headword,
// so repeat lookups skip the network) and the word card each user is
// currently deciding on.
type Cache struct {
	mu      sync.Mutex
	lookups map[string]models.Word
	pending map[int64]models.Word
}

func NewCache() *Cache {
	return &Cache{
		lookups: make(map[string]models.Word),
		pending: make(map[int64]models.Word),
	}
}

func (c *Cache) SetLookup(word models.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookups[strings.ToLower(word.Text)] = word
}

func (c *Cache) GetLookup(text string) (models.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	word, exists := c.lookups[strings.ToLower(text)]
	return word, exists
}

func (c *Cache) SetPending(userID int64, word models.Word) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[userID] = word
}

func (c *Cache) GetPending(userID int64) (models.Word, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	word, exists := c.pending[userID]
	return word, exists
}

func (c *Cache) DeletePending(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, userID)
}
