package utils

import (
	"math"
	"strings"
)

// RoundFloat rounds a value to the given number of decimal places.
func RoundFloat(value float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(value*ratio) / ratio
}

// StripExchangeSuffix removes the exchange qualifier from a symbol,
// e.g. "RELIANCE.BSE" -> "RELIANCE".
func StripExchangeSuffix(symbol string) string {
	if idx := strings.Index(symbol, "."); idx > 0 {
		return symbol[:idx]
	}
	return symbol
}
