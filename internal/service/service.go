package service

import (
	"context"

	"github.com/Divyasree00/lexicon/internal/models"
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	"go.uber.org/zap"
)

type DictionaryAPII interface {
	Lookup(ctx context.Context, text string) (models.Word, error)
	AudioURL(text string) string
}

type StateRI interface {
	Load(ctx context.Context, userID int64) (models.AppState, error)
	Save(ctx context.Context, userID int64, state models.AppState) error
	Users(ctx context.Context) ([]int64, error)
}

type WordSelectorI interface {
	Select(tier models.Tier, date string, count int) []string
}

type Service struct {
	*WordS
	*ChallengeS
}

func InitServices(api DictionaryAPII, repo StateRI, cache *cache.Cache, selector WordSelectorI, log *zap.Logger) *Service {
	return &Service{
		WordS:      NewWordService(api, repo, cache, log),
		ChallengeS: NewChallengeService(api, repo, cache, selector, log),
	}
}
