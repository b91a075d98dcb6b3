package client

import "github.com/Divyasree00/lexicon/internal/config"

type Clients struct {
	*DictionaryAPI
}

func InitClients(cfg config.DictionaryConfig) Clients {
	return Clients{
		DictionaryAPI: NewDictionaryAPI(cfg.BaseURL, cfg.AudioBaseURL),
	}
}
