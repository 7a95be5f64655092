package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nifty50-scanner/config"
	"nifty50-scanner/internal/dto"
	"nifty50-scanner/internal/repository"
	"nifty50-scanner/internal/service"
	"nifty50-scanner/pkg/cache"
	"nifty50-scanner/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMarketDataRepo struct {
	bars []dto.PriceBar
	err  error
}

func (s *stubMarketDataRepo) GetIntraday(ctx context.Context, symbol string) ([]dto.PriceBar, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bars, nil
}

type stubScanner struct {
	err error
}

func (s *stubScanner) Scan(ctx context.Context) ([]dto.StockResult, error) {
	return nil, s.err
}

func (s *stubScanner) Refresh(ctx context.Context) ([]dto.StockResult, error) {
	return nil, s.err
}

func newTestHandler(t *testing.T, marketDataRepo repository.MarketDataRepository) (*echo.Echo, *HttpAPIHandler) {
	t.Helper()

	cfg := &config.Config{
		Cache: config.Cache{ScanTTL: 5 * time.Minute, CleanupInterval: time.Minute},
	}
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	c := cache.NewCache(cfg.Cache.ScanTTL, cfg.Cache.CleanupInterval)
	c.Flush()

	services := service.NewService(cfg, log, &repository.Repository{MarketDataRepo: marketDataRepo}, c)

	e := echo.New()
	handler := NewHttpAPIHandler(context.Background(), e, services)
	handler.SetupRoutes()
	return e, handler
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestHandler(t, &stubMarketDataRepo{err: errors.New("unused")})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "running")
}

func TestGetStocks(t *testing.T) {
	repo := &stubMarketDataRepo{err: errors.New("provider unreachable")}
	e, _ := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var results []dto.StockResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, len(dto.Nifty50Symbols))

	for i, r := range results {
		assert.Contains(t, []string{dto.DirectionBuy, dto.DirectionSell}, r.Direction)
		assert.GreaterOrEqual(t, r.Probability, 20)
		assert.LessOrEqual(t, r.Probability, 90)
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Probability, r.Probability)
		}
	}
}

func TestGetStocksOrchestrationError(t *testing.T) {
	e := echo.New()
	handler := &HttpAPIHandler{
		echo:    e,
		service: &service.Service{StockScannerService: &stubScanner{err: errors.New("boom")}},
	}
	handler.SetupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
