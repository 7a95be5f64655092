package dto

const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"

	// IntradayInterval is the bar granularity requested from the provider.
	IntradayInterval = "5min"
)

// Nifty50Symbols is the fixed set of tracked instruments, set at process start.
var Nifty50Symbols = []string{
	"RELIANCE.BSE",
	"TCS.BSE",
	"HDFCBANK.BSE",
	"INFY.BSE",
	"ICICIBANK.BSE",
	"HINDUNILVR.BSE",
	"ITC.BSE",
	"SBIN.BSE",
	"BHARTIARTL.BSE",
	"KOTAKBANK.BSE",
}
