// Package daily derives the day's challenge words. Selection is a pure
// function of (tier, date): same inputs, same ordered list, so a
// reloaded app can rebuild an in-flight challenge.
package daily

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Divyasree00/lexicon/internal/models"
)

var defaultPools = map[models.Tier][]string{
	models.TierBeginner: {
		"happy", "brave", "quick", "calm", "bright", "gentle", "honest", "kind",
		"proud", "wise", "eager", "fair", "humble", "jolly", "keen", "loyal",
		"merry", "noble", "plain", "quiet", "rare", "safe", "true", "warm",
	},
	models.TierIntermediate: {
		"eloquent", "profound", "resilient", "vibrant", "serene", "diligent",
		"tenacious", "versatile", "meticulous", "empathetic", "pragmatic",
		"candid", "zealous", "prudent", "jovial", "amiable", "astute", "benign",
	},
	models.TierAdvanced: {
		"ephemeral", "ubiquitous", "serendipity", "mellifluous", "ineffable",
		"quintessential", "surreptitious", "perfidious", "loquacious", "perspicacious",
		"magnanimous", "ostentatious", "vicissitude", "pernicious", "inexorable",
	},
	models.TierExpert: {
		"pulchritudinous", "sesquipedalian", "defenestration", "pneumonoultramicroscopicsilicovolcanoconiosis",
		"floccinaucinihilipilification", "antidisestablishmentarianism", "supercalifragilisticexpialidocious",
		"hippopotomonstrosesquippedaliophobia", "pseudopseudohypoparathyroidism",
	},
}

// Selector owns one ordered word pool per tier.
type Selector struct {
	pools map[models.Tier][]string
}

// NewSelector builds a selector over the built-in pools.
func NewSelector() *Selector {
	return &Selector{pools: defaultPools}
}

// NewSelectorWithPools builds a selector over custom pools. Every tier
// must be present with a non-empty, duplicate-free word list.
func NewSelectorWithPools(pools map[models.Tier][]string) (*Selector, error) {
	if err := validatePools(pools); err != nil {
		return nil, err
	}
	return &Selector{pools: pools}, nil
}

// Select returns the day's words for a tier, at most min(count,
// poolSize) of them, without duplicates. The shuffle is deliberately
// weak: it only has to look different across days and stay identical
// within one.
func (s *Selector) Select(tier models.Tier, date string, count int) []string {
	pool, ok := s.pools[tier]
	if !ok || count <= 0 {
		return nil
	}

	seed := dateSeed(date)

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	// Ties keep pool order, so the result stays deterministic.
	sort.SliceStable(shuffled, func(i, j int) bool {
		return shuffleKey(shuffled[i], seed, len(pool)) < shuffleKey(shuffled[j], seed, len(pool))
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

func shuffleKey(word string, seed, poolSize int) int {
	var first rune
	for _, r := range word {
		first = r
		break
	}
	return (int(first) + seed) % poolSize
}

// dateSeed sums the numeric components of a YYYY-MM-DD date. Malformed
// pieces contribute zero.
func dateSeed(date string) int {
	seed := 0
	for _, part := range strings.Split(date, "-") {
		n, _ := strconv.Atoi(part)
		seed += n
	}
	return seed
}

func validatePools(pools map[models.Tier][]string) error {
	for _, tier := range models.Tiers() {
		pool, ok := pools[tier]
		if !ok || len(pool) == 0 {
			return fmt.Errorf("empty word pool for tier %q", tier)
		}
		seen := make(map[string]bool, len(pool))
		for _, word := range pool {
			if seen[word] {
				return fmt.Errorf("duplicate word %q in tier %q", word, tier)
			}
			seen[word] = true
		}
	}
	return nil
}
