package main

import (
	"log"

	"github.com/Divyasree00/lexicon/internal/bot"
	"github.com/Divyasree00/lexicon/internal/client"
	"github.com/Divyasree00/lexicon/internal/config"
	"github.com/Divyasree00/lexicon/internal/daily"
	"github.com/Divyasree00/lexicon/internal/repository"
	"github.com/Divyasree00/lexicon/internal/scheduler"
	"github.com/Divyasree00/lexicon/internal/service"
	"github.com/Divyasree00/lexicon/internal/storage/cache"
	"github.com/Divyasree00/lexicon/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupSelector(cfg config.PoolsConfig) (*daily.Selector, error) {
	if cfg.File == "" {
		return daily.NewSelector(), nil
	}
	pools, err := daily.LoadPools(cfg.File)
	if err != nil {
		return nil, err
	}
	return daily.NewSelectorWithPools(pools)
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	selector, err := setupSelector(cfg.Pools)
	if err != nil {
		logger.Fatal("failed to load word pools", zap.Error(err))
	}

	clients := client.InitClients(cfg.Dictionary)
	cache := cache.NewCache()
	services := service.InitServices(clients, repos, cache, selector, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	sched := scheduler.New(repos, handler, logger)
	sched.Start()
	defer sched.Stop()

	handler.Start()
}
