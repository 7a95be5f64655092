package indicator

// ROC computes the rate of change series of prices over the given period,
// expressed in percent. Each output value compares a price with the price
// period-1 positions earlier, so a sequence of exactly `period` prices yields
// a single value. Returns nil when there is not enough data.
func ROC(prices []float64, period int) []float64 {
	if period <= 1 || len(prices) < period {
		return nil
	}

	lag := period - 1
	out := make([]float64, 0, len(prices)-lag)
	for i := lag; i < len(prices); i++ {
		base := prices[i-lag]
		if base == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (prices[i]-base)/base*100)
	}
	return out
}
