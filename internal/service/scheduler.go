package service

import (
	"context"

	"nifty50-scanner/config"
	"nifty50-scanner/pkg/logger"

	"github.com/robfig/cron/v3"
)

// ScanScheduler refreshes the scan cache in the background so that client
// requests mostly hit the cached path. Disabled when no cron spec is set.
type ScanScheduler struct {
	cfg     *config.Config
	logger  *logger.Logger
	scanner StockScannerService
	cron    *cron.Cron
}

func NewScanScheduler(cfg *config.Config, log *logger.Logger, scanner StockScannerService) *ScanScheduler {
	return &ScanScheduler{
		cfg:     cfg,
		logger:  log,
		scanner: scanner,
		cron:    cron.New(),
	}
}

func (s *ScanScheduler) Start(ctx context.Context) error {
	spec := s.cfg.Scanner.RefreshCron
	if spec == "" {
		s.logger.Info("Scan scheduler disabled, no cron spec configured")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.scanner.Refresh(ctx); err != nil {
			s.logger.Error("Scheduled scan refresh failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("Starting scan scheduler", logger.StringField("cron", spec))
	s.cron.Start()
	return nil
}

func (s *ScanScheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}
