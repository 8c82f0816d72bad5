package price

import (
	"log"
	"strconv"
	"time"

	"SMCSignalEngine/internal/models"

	"github.com/adshao/go-binance/v2/futures"
)

// BarsFromKlines converts futures klines, as returned by the exchange
// client, into price bars. Callers own the fetch and the ordering; fields
// that fail to parse are logged and read as zero.
func BarsFromKlines(symbol, timeframe string, klines []*futures.Kline) []models.PriceBar {
	bars := make([]models.PriceBar, 0, len(klines))
	for _, k := range klines {
		if k == nil {
			continue
		}
		bars = append(bars, models.PriceBar{
			Symbol:     symbol,
			TimeFrame:  timeframe,
			OpenTime:   time.Unix(k.OpenTime/1000, 0),
			CloseTime:  time.Unix(k.CloseTime/1000, 0),
			Open:       parseFloat(k.Open),
			High:       parseFloat(k.High),
			Low:        parseFloat(k.Low),
			Close:      parseFloat(k.Close),
			Volume:     parseFloat(k.Volume),
			TradeCount: k.TradeNum,
		})
	}
	return bars
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Error parsing float: %v", err)
		return 0
	}
	return f
}
