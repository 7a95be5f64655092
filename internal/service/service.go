package service

import (
	"nifty50-scanner/config"
	"nifty50-scanner/internal/repository"
	"nifty50-scanner/pkg/cache"
	"nifty50-scanner/pkg/logger"
)

type Service struct {
	StockScannerService StockScannerService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	cache cache.Cache,
) *Service {
	return &Service{
		StockScannerService: NewStockScannerService(cfg, log, repo.MarketDataRepo, cache),
	}
}
