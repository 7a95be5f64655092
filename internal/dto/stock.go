package dto

// PriceBar is a single intraday bar as returned by the provider,
// most-recent-first.
type PriceBar struct {
	Timestamp string  `json:"timestamp"`
	Close     float64 `json:"close"`
}

type StockIndicators struct {
	ROC  float64 `json:"roc"`
	MACD float64 `json:"macd"`
}

// StockResult is the scan output for one symbol. All numeric fields are plain
// JSON numbers rounded to two decimals, probability is an integer in [20,90].
type StockResult struct {
	Symbol      string          `json:"symbol"`
	Price       float64         `json:"price"`
	Change      float64         `json:"change"`
	Volatility  float64         `json:"volatility"`
	Probability int             `json:"probability"`
	Direction   string          `json:"direction"`
	Indicators  StockIndicators `json:"indicators"`
}
