package service

import (
	"context"
	"sort"

	"nifty50-scanner/config"
	"nifty50-scanner/internal/dto"
	"nifty50-scanner/internal/repository"
	"nifty50-scanner/pkg/cache"
	"nifty50-scanner/pkg/indicator"
	"nifty50-scanner/pkg/logger"
	"nifty50-scanner/pkg/utils"

	"golang.org/x/sync/singleflight"
)

const (
	scanCacheKey = "stock_scan_results"

	// maxBars caps how many of the most recent bars feed the indicators.
	maxBars = 30
)

type StockScannerService interface {
	// Scan returns the cached result set when fresh, otherwise runs a full
	// sequential pass over the tracked symbols.
	Scan(ctx context.Context) ([]dto.StockResult, error)
	// Refresh runs a full pass and replaces the cache regardless of freshness.
	Refresh(ctx context.Context) ([]dto.StockResult, error)
}

type stockScannerService struct {
	cfg            *config.Config
	logger         *logger.Logger
	marketDataRepo repository.MarketDataRepository
	cache          cache.Cache
	scanGroup      singleflight.Group
}

func NewStockScannerService(
	cfg *config.Config,
	log *logger.Logger,
	marketDataRepo repository.MarketDataRepository,
	cache cache.Cache,
) StockScannerService {
	return &stockScannerService{
		cfg:            cfg,
		logger:         log,
		marketDataRepo: marketDataRepo,
		cache:          cache,
	}
}

func (s *stockScannerService) Scan(ctx context.Context) ([]dto.StockResult, error) {
	if results, ok := cache.GetTyped[[]dto.StockResult](s.cache, scanCacheKey); ok {
		s.logger.DebugContext(ctx, "Serving stock scan from cache",
			logger.IntField("results", len(results)))
		return results, nil
	}

	// Concurrent requests share one in-flight scan instead of each issuing
	// its own sequential pass against the provider.
	v, err, _ := s.scanGroup.Do(scanCacheKey, func() (interface{}, error) {
		return s.scanAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.StockResult), nil
}

func (s *stockScannerService) Refresh(ctx context.Context) ([]dto.StockResult, error) {
	v, err, _ := s.scanGroup.Do(scanCacheKey, func() (interface{}, error) {
		return s.scanAll(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dto.StockResult), nil
}

func (s *stockScannerService) scanAll(ctx context.Context) ([]dto.StockResult, error) {
	s.logger.InfoContext(ctx, "Starting stock scan",
		logger.IntField("symbols", len(dto.Nifty50Symbols)))

	results := make([]dto.StockResult, 0, len(dto.Nifty50Symbols))
	for _, symbol := range dto.Nifty50Symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, s.processStock(ctx, symbol))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})

	s.cache.Set(scanCacheKey, results, s.cfg.Cache.ScanTTL)

	s.logger.InfoContext(ctx, "Stock scan completed",
		logger.IntField("results", len(results)))
	return results, nil
}

// processStock produces a result for one symbol. It never fails the caller:
// provider errors and malformed payloads degrade to synthetic fallback data.
func (s *stockScannerService) processStock(ctx context.Context, symbol string) dto.StockResult {
	ctx = logger.NewContext(ctx, s.logger.With(logger.StringField("symbol", symbol)))

	bars, err := s.marketDataRepo.GetIntraday(ctx, symbol)
	if err != nil || len(bars) == 0 {
		s.logger.WarnContext(ctx, "Falling back to synthetic data", logger.ErrorField(err))
		return s.fallbackResult(symbol)
	}

	if len(bars) > maxBars {
		bars = bars[:maxBars]
	}

	// Provider bars are most-recent-first, indicators need chronological order.
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[len(bars)-1-i] = bar.Close
	}

	rocSeries := indicator.ROC(closes, rocPeriod)
	macdSeries := indicator.MACD(closes, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)

	lastClose := closes[len(closes)-1]
	prevClose := lastClose
	if len(closes) >= 2 {
		prevClose = closes[len(closes)-2]
	}

	change := 0.0
	if len(closes) >= 2 && prevClose != 0 {
		change = (lastClose - prevClose) / prevClose * 100
	}

	probability, direction := computeSignal(rocSeries, macdSeries, lastClose, prevClose)

	latestROC := 0.0
	if len(rocSeries) > 0 {
		latestROC = rocSeries[len(rocSeries)-1]
	}
	latestMACD := 0.0
	if len(macdSeries) > 0 {
		latestMACD = macdSeries[len(macdSeries)-1].Histogram
	}

	return dto.StockResult{
		Symbol:      utils.StripExchangeSuffix(symbol),
		Price:       utils.RoundFloat(lastClose, 2),
		Change:      utils.RoundFloat(change, 2),
		Volatility:  utils.RoundFloat(meanAbsoluteChange(closes), 2),
		Probability: probability,
		Direction:   direction,
		Indicators: dto.StockIndicators{
			ROC:  utils.RoundFloat(latestROC, 2),
			MACD: utils.RoundFloat(latestMACD, 2),
		},
	}
}

// meanAbsoluteChange is the mean of absolute period-over-period percent
// changes across the whole close sequence.
func meanAbsoluteChange(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}

	sum := 0.0
	count := 0
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		delta := (closes[i] - closes[i-1]) / closes[i-1] * 100
		if delta < 0 {
			delta = -delta
		}
		sum += delta
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
