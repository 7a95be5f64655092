package cmd

import (
	"context"

	"nifty50-scanner/config"
	"nifty50-scanner/pkg/cache"
	"nifty50-scanner/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type AppDependency struct {
	cfg   *config.Config
	log   *logger.Logger
	echo  *echo.Echo
	cache cache.Cache
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	return &AppDependency{
		cfg:   cfg,
		log:   log,
		echo:  e,
		cache: cache.NewCache(cfg.Cache.ScanTTL, cfg.Cache.CleanupInterval),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	return d.log.Sync()
}
