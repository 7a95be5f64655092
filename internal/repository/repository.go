package repository

import (
	"nifty50-scanner/config"
	"nifty50-scanner/pkg/logger"
)

type Repository struct {
	MarketDataRepo MarketDataRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	return &Repository{
		MarketDataRepo: NewAlphaVantageRepository(cfg, log),
	}
}
