package dto

// Alpha Vantage TIME_SERIES_INTRADAY response. Bars are keyed by timestamp
// ("2006-01-02 15:04:05") and all numeric fields arrive as strings.
type AlphaVantageIntradayResponse struct {
	MetaData     map[string]string          `json:"Meta Data"`
	TimeSeries   map[string]AlphaVantageBar `json:"Time Series (5min)"`
	Note         string                     `json:"Note"`
	Information  string                     `json:"Information"`
	ErrorMessage string                     `json:"Error Message"`
}

type AlphaVantageBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
