package repository

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"nifty50-scanner/config"
	"nifty50-scanner/internal/dto"
	"nifty50-scanner/pkg/httpclient"
	"nifty50-scanner/pkg/logger"

	"golang.org/x/time/rate"
)

type MarketDataRepository interface {
	// GetIntraday returns intraday bars for a symbol, most-recent-first.
	GetIntraday(ctx context.Context, symbol string) ([]dto.PriceBar, error)
}

// alphaVantageRepository fetches intraday time series from the Alpha Vantage
// API. Requests are paced with a token bucket sized to the provider's
// request-per-minute ceiling, so sequential callers never exceed the quota.
type alphaVantageRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewAlphaVantageRepository creates a new instance of alphaVantageRepository.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.AlphaVantage.MaxRequestPerMin)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &alphaVantageRepository{
		httpClient:     httpclient.New(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *alphaVantageRepository) GetIntraday(ctx context.Context, symbol string) ([]dto.PriceBar, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	queryParams := map[string]string{
		"function":   "TIME_SERIES_INTRADAY",
		"symbol":     symbol,
		"interval":   dto.IntradayInterval,
		"outputsize": "compact",
		"apikey":     r.cfg.AlphaVantage.APIKey,
	}

	var avResp dto.AlphaVantageIntradayResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &avResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data from alpha vantage: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.WarnContext(ctx, "Alpha Vantage API returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("symbol", symbol))
		return nil, fmt.Errorf("alpha vantage api returned status: %d", resp.StatusCode)
	}

	if avResp.ErrorMessage != "" {
		return nil, fmt.Errorf("alpha vantage api error: %s", avResp.ErrorMessage)
	}

	// A Note or Information body in place of data means the call was throttled.
	if avResp.Note != "" || avResp.Information != "" {
		return nil, fmt.Errorf("alpha vantage api throttled request for symbol: %s", symbol)
	}

	if len(avResp.TimeSeries) == 0 {
		return nil, fmt.Errorf("no time series returned for symbol: %s", symbol)
	}

	// Timestamps sort lexicographically, newest first after reversing.
	timestamps := make([]string, 0, len(avResp.TimeSeries))
	for ts := range avResp.TimeSeries {
		timestamps = append(timestamps, ts)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(timestamps)))

	bars := make([]dto.PriceBar, 0, len(timestamps))
	for _, ts := range timestamps {
		closePrice, err := strconv.ParseFloat(avResp.TimeSeries[ts].Close, 64)
		if err != nil || closePrice == 0 {
			// Skip bars with missing or unparsable closes
			continue
		}
		bars = append(bars, dto.PriceBar{Timestamp: ts, Close: closePrice})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("no valid bars found for symbol: %s", symbol)
	}

	return bars, nil
}
