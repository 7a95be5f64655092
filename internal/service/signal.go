package service

import (
	"math"

	"nifty50-scanner/internal/dto"
	"nifty50-scanner/pkg/indicator"
)

const (
	rocPeriod        = 5
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9

	probabilityBase = 20.0
	probabilityCap  = 90.0
	gapWeight       = 500.0
	rocWeight       = 30.0
	macdWeight      = 50.0
)

// computeSignal derives the confidence score and trade direction from the
// indicator series and the two most recent closes. The score formula is a
// fixed contract: round(min(90, 20 + gap*500 + |roc|*30 + |hist|*50)) where
// gap is the relative move between the last two closes.
func computeSignal(rocSeries []float64, macdSeries []indicator.MACDValue, lastClose, prevClose float64) (int, string) {
	gap := 0.0
	if prevClose != 0 {
		gap = math.Abs(lastClose-prevClose) / prevClose
	}

	rocValue := 0.0
	direction := dto.DirectionSell
	if len(rocSeries) > 0 {
		latest := rocSeries[len(rocSeries)-1]
		rocValue = math.Abs(latest)
		if latest > 0 {
			direction = dto.DirectionBuy
		}
	}

	macdValue := 0.0
	if len(macdSeries) > 0 {
		macdValue = math.Abs(macdSeries[len(macdSeries)-1].Histogram)
	}

	score := probabilityBase + gap*gapWeight + rocValue*rocWeight + macdValue*macdWeight
	probability := int(math.Round(math.Min(probabilityCap, score)))

	return probability, direction
}
