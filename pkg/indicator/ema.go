package indicator

// EMA computes the exponential moving average of prices over the given period.
// The first output value is the SMA of the first `period` prices, subsequent
// values use the standard smoothing factor 2/(period+1). The result is aligned
// so that output[i] corresponds to prices[i+period-1]. Returns nil when there
// is not enough data.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	out := make([]float64, 0, len(prices)-period+1)

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	prev := sum / float64(period)
	out = append(out, prev)

	multiplier := 2.0 / (float64(period) + 1.0)
	for i := period; i < len(prices); i++ {
		prev = (prices[i]-prev)*multiplier + prev
		out = append(out, prev)
	}
	return out
}
