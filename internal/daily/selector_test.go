package daily

import (
	"testing"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Select_Deterministic(t *testing.T) {
	t.Parallel()

	s := NewSelector()

	for _, tier := range models.Tiers() {
		first := s.Select(tier, "2024-05-01", 5)
		second := s.Select(tier, "2024-05-01", 5)
		assert.Equal(t, first, second, "tier %s must be stable within a day", tier)
	}
}

func TestSelector_Select_NoDuplicates(t *testing.T) {
	t.Parallel()

	s := NewSelector()

	for _, tier := range models.Tiers() {
		words := s.Select(tier, "2024-07-19", 5)
		seen := make(map[string]bool)
		for _, w := range words {
			assert.False(t, seen[w], "duplicate word %q for tier %s", w, tier)
			seen[w] = true
		}
	}
}

func TestSelector_Select_Count(t *testing.T) {
	t.Parallel()

	s := NewSelector()

	tests := []struct {
		name  string
		tier  models.Tier
		count int
		want  int
	}{
		{name: "normal request", tier: models.TierBeginner, count: 5, want: 5},
		{name: "count above pool size is clamped", tier: models.TierExpert, count: 50, want: 9},
		{name: "zero count", tier: models.TierBeginner, count: 0, want: 0},
		{name: "negative count", tier: models.TierBeginner, count: -1, want: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			words := s.Select(tt.tier, "2024-05-01", tt.count)
			assert.Len(t, words, tt.want)
		})
	}
}

func TestSelector_Select_UnknownTier(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	assert.Nil(t, s.Select(models.Tier("legendary"), "2024-05-01", 5))
}

func TestSelector_Select_SubsetOfPool(t *testing.T) {
	t.Parallel()

	s := NewSelector()
	pool := make(map[string]bool)
	for _, w := range defaultPools[models.TierAdvanced] {
		pool[w] = true
	}

	for _, w := range s.Select(models.TierAdvanced, "2024-11-30", 5) {
		assert.True(t, pool[w], "%q is not in the advanced pool", w)
	}
}

func TestSelector_Select_VariesAcrossDays(t *testing.T) {
	t.Parallel()

	s := NewSelector()

	// Not guaranteed for every pair of dates (the shuffle is weak by
	// design), but these two differ and must stay differing.
	a := s.Select(models.TierBeginner, "2024-05-01", 5)
	b := s.Select(models.TierBeginner, "2024-05-03", 5)
	assert.NotEqual(t, a, b)
}

func TestNewSelectorWithPools(t *testing.T) {
	t.Parallel()

	validPools := func() map[models.Tier][]string {
		return map[models.Tier][]string{
			models.TierBeginner:     {"cat", "dog", "sun", "sky", "map", "cup"},
			models.TierIntermediate: {"horizon", "journey", "whisper", "lantern", "emerald", "harvest"},
			models.TierAdvanced:     {"ephemeral", "ubiquitous", "serendipity", "mellifluous", "ineffable", "inexorable"},
			models.TierExpert:       {"sesquipedalian", "defenestration", "antidisestablishmentarianism", "floccinaucinihilipilification", "pulchritudinous", "pseudopseudohypoparathyroidism"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(map[models.Tier][]string)
		wantErr bool
	}{
		{
			name:   "valid pools",
			mutate: func(map[models.Tier][]string) {},
		},
		{
			name:    "missing tier",
			mutate:  func(p map[models.Tier][]string) { delete(p, models.TierExpert) },
			wantErr: true,
		},
		{
			name:    "empty pool",
			mutate:  func(p map[models.Tier][]string) { p[models.TierBeginner] = nil },
			wantErr: true,
		},
		{
			name: "duplicate word",
			mutate: func(p map[models.Tier][]string) {
				p[models.TierBeginner] = append(p[models.TierBeginner], "cat")
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pools := validPools()
			tt.mutate(pools)

			s, err := NewSelectorWithPools(pools)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.Select(models.TierBeginner, "2024-05-01", 5), 5)
		})
	}
}
