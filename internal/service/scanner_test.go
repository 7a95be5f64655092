package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nifty50-scanner/config"
	"nifty50-scanner/internal/dto"
	"nifty50-scanner/internal/repository"
	"nifty50-scanner/pkg/cache"
	"nifty50-scanner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketDataRepo struct {
	mu    sync.Mutex
	bars  []dto.PriceBar
	err   error
	calls int
}

func (f *fakeMarketDataRepo) GetIntraday(ctx context.Context, symbol string) ([]dto.PriceBar, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bars, nil
}

func (f *fakeMarketDataRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestScanner(t *testing.T, repo repository.MarketDataRepository) *stockScannerService {
	t.Helper()

	cfg := &config.Config{
		Cache: config.Cache{ScanTTL: 5 * time.Minute, CleanupInterval: time.Minute},
	}
	log, err := logger.New("error", "json")
	require.NoError(t, err)

	c := cache.NewCache(cfg.Cache.ScanTTL, cfg.Cache.CleanupInterval)
	c.Flush()

	return NewStockScannerService(cfg, log, repo, c).(*stockScannerService)
}

// mostRecentFirst converts a chronological close sequence into provider order.
func mostRecentFirst(closes []float64) []dto.PriceBar {
	bars := make([]dto.PriceBar, 0, len(closes))
	for i := len(closes) - 1; i >= 0; i-- {
		bars = append(bars, dto.PriceBar{Timestamp: time.Unix(int64(i), 0).Format("2006-01-02 15:04:05"), Close: closes[i]})
	}
	return bars
}

func TestProcessStock(t *testing.T) {
	repo := &fakeMarketDataRepo{bars: mostRecentFirst([]float64{100, 101, 102, 101, 103})}
	svc := newTestScanner(t, repo)

	result := svc.processStock(context.Background(), "RELIANCE.BSE")

	assert.Equal(t, "RELIANCE", result.Symbol)
	assert.Equal(t, 103.0, result.Price)
	// (103-101)/101*100 rounded to two decimals
	assert.Equal(t, 1.98, result.Change)
	assert.Equal(t, 1.24, result.Volatility)
	// ROC over the 5-close window is exactly 3%, so the score caps at 90
	assert.Equal(t, 90, result.Probability)
	assert.Equal(t, dto.DirectionBuy, result.Direction)
	assert.Equal(t, 3.0, result.Indicators.ROC)
	assert.Equal(t, 0.0, result.Indicators.MACD)
}

func TestProcessStockSingleClose(t *testing.T) {
	repo := &fakeMarketDataRepo{bars: mostRecentFirst([]float64{250.5})}
	svc := newTestScanner(t, repo)

	result := svc.processStock(context.Background(), "TCS.BSE")

	assert.Equal(t, "TCS", result.Symbol)
	assert.Equal(t, 250.5, result.Price)
	assert.Equal(t, 0.0, result.Change)
	assert.Equal(t, 0.0, result.Volatility)
	assert.Equal(t, 20, result.Probability)
	assert.Equal(t, dto.DirectionSell, result.Direction)
}

func TestProcessStockFallsBackOnError(t *testing.T) {
	repo := &fakeMarketDataRepo{err: errors.New("provider unreachable")}
	svc := newTestScanner(t, repo)

	for i := 0; i < 50; i++ {
		result := svc.processStock(context.Background(), "INFY.BSE")

		assert.Equal(t, "INFY", result.Symbol)
		assert.GreaterOrEqual(t, result.Probability, 50)
		assert.LessOrEqual(t, result.Probability, 90)
		assert.GreaterOrEqual(t, result.Price, 100.0)
		assert.LessOrEqual(t, result.Price, 5100.0)
		assert.GreaterOrEqual(t, result.Change, -2.0)
		assert.LessOrEqual(t, result.Change, 2.0)
		assert.GreaterOrEqual(t, result.Volatility, 0.0)
		assert.LessOrEqual(t, result.Volatility, 3.0)
		assert.Contains(t, []string{dto.DirectionBuy, dto.DirectionSell}, result.Direction)

		// Indicator readings are signed consistently with the direction
		if result.Direction == dto.DirectionBuy {
			assert.GreaterOrEqual(t, result.Indicators.ROC, 0.0)
			assert.GreaterOrEqual(t, result.Indicators.MACD, 0.0)
		} else {
			assert.LessOrEqual(t, result.Indicators.ROC, 0.0)
			assert.LessOrEqual(t, result.Indicators.MACD, 0.0)
		}
	}
}

func TestProcessStockEmptyBarsFallsBack(t *testing.T) {
	// A repository yielding no bars at all must still degrade to fallback
	// data instead of failing the caller.
	repo := &fakeMarketDataRepo{bars: nil}
	svc := newTestScanner(t, repo)

	result := svc.processStock(context.Background(), "SBIN.BSE")

	assert.Equal(t, "SBIN", result.Symbol)
	assert.GreaterOrEqual(t, result.Probability, 50)
	assert.LessOrEqual(t, result.Probability, 90)
	assert.Contains(t, []string{dto.DirectionBuy, dto.DirectionSell}, result.Direction)
}

func TestScanSortsByProbabilityDescending(t *testing.T) {
	repo := &fakeMarketDataRepo{err: errors.New("provider unreachable")}
	svc := newTestScanner(t, repo)

	results, err := svc.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, results, len(dto.Nifty50Symbols))

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Probability, results[i].Probability)
	}
}

func TestScanServesFromCache(t *testing.T) {
	repo := &fakeMarketDataRepo{bars: mostRecentFirst([]float64{100, 101, 102, 101, 103})}
	svc := newTestScanner(t, repo)

	first, err := svc.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(dto.Nifty50Symbols), repo.callCount())

	second, err := svc.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, len(dto.Nifty50Symbols), repo.callCount(), "cached scan must not hit the provider")
}

func TestRefreshBypassesCache(t *testing.T) {
	repo := &fakeMarketDataRepo{bars: mostRecentFirst([]float64{100, 101, 102, 101, 103})}
	svc := newTestScanner(t, repo)

	_, err := svc.Scan(context.Background())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2*len(dto.Nifty50Symbols), repo.callCount())
}

func TestScanCancelledContext(t *testing.T) {
	repo := &fakeMarketDataRepo{bars: mostRecentFirst([]float64{100, 101})}
	svc := newTestScanner(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Scan(ctx)
	assert.Error(t, err)
}

func TestMeanAbsoluteChange(t *testing.T) {
	assert.Equal(t, 0.0, meanAbsoluteChange(nil))
	assert.Equal(t, 0.0, meanAbsoluteChange([]float64{100}))
	assert.InDelta(t, 1.0, meanAbsoluteChange([]float64{100, 101}), 1e-9)
	assert.InDelta(t, 1.2376724, meanAbsoluteChange([]float64{100, 101, 102, 101, 103}), 1e-6)
}
