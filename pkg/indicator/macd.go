package indicator

// MACDValue is one point of the MACD series.
type MACDValue struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes the moving average convergence divergence series of prices.
// The MACD line is EMA(fast) minus EMA(slow), the signal line is an EMA of the
// MACD line over signalPeriod, and the histogram is MACD minus signal. Only
// points where the signal line is defined are returned, so the series needs at
// least slow+signalPeriod-1 prices before it produces any value.
func MACD(prices []float64, fast, slow, signalPeriod int) []MACDValue {
	if fast <= 0 || slow <= fast || signalPeriod <= 0 {
		return nil
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)
	if len(slowEMA) == 0 {
		return nil
	}

	// Align the fast EMA to the slow EMA, which starts slow-fast values later.
	offset := slow - fast
	macdLine := make([]float64, len(slowEMA))
	for i := range slowEMA {
		macdLine[i] = fastEMA[i+offset] - slowEMA[i]
	}

	signalLine := EMA(macdLine, signalPeriod)
	if len(signalLine) == 0 {
		return nil
	}

	out := make([]MACDValue, 0, len(signalLine))
	macdOffset := len(macdLine) - len(signalLine)
	for i, sig := range signalLine {
		macd := macdLine[i+macdOffset]
		out = append(out, MACDValue{
			MACD:      macd,
			Signal:    sig,
			Histogram: macd - sig,
		})
	}
	return out
}
