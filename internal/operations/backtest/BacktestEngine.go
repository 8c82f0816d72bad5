// backtest/engine.go

package backtest

import (
	"fmt"
	"log"
	"math"
	"time"

	"SMCSignalEngine/internal/models"
	"SMCSignalEngine/internal/services/analysis"
	"SMCSignalEngine/internal/services/indicators"
	"SMCSignalEngine/internal/services/strategy"
)

type Engine struct {
	// Core components
	discount *strategy.DiscountStrategy
	analyzer *analysis.SmartMoneyAnalyzer
	sma      *indicators.SMAService

	// Backtest state
	currentBalance float64
	maxBalance     float64
	trades         []Trade
	equityCurve    []EquityPoint
	openTrade      *Trade
	entryByTF      *models.TimeframeSeriesSet

	// Config
	config Config
}

func NewEngine(discount *strategy.DiscountStrategy, analyzer *analysis.SmartMoneyAnalyzer, config Config) *Engine {
	return &Engine{
		discount:       discount,
		analyzer:       analyzer,
		sma:            indicators.NewSMAService(),
		config:         config,
		currentBalance: config.InitialBalance,
		maxBalance:     config.InitialBalance,
		trades:         make([]Trade, 0),
		equityCurve:    make([]EquityPoint, 0),
		entryByTF:      models.NewTimeframeSeriesSet(),
	}
}

// Run replays the bar series through the strategy, one position at a time.
// Entries fill at the signal bar close; a position exits at the close of the
// bar whose range first touches take profit or stop loss, and anything still
// open at the end fills at the final close.
func (e *Engine) Run(bars []models.PriceBar) (*BacktestResults, error) {
	if err := models.ValidateSeries(bars); err != nil {
		return nil, fmt.Errorf("backtest input: %w", err)
	}
	if len(bars) <= e.config.WarmupBars {
		return nil, fmt.Errorf("need more than %d bars, got %d", e.config.WarmupBars, len(bars))
	}

	log.Printf("Backtesting %d bars from %s to %s",
		len(bars),
		bars[0].OpenTime.Format("2006-01-02 15:04:05"),
		bars[len(bars)-1].OpenTime.Format("2006-01-02 15:04:05"))

	for i := e.config.WarmupBars; i < len(bars); i++ {
		bar := bars[i]

		if e.openTrade != nil {
			if e.shouldExitPosition(e.openTrade, bar) {
				e.closePosition(e.openTrade, bar, e.getExitReason(e.openTrade, bar))
				e.openTrade = nil
			}
			continue
		}

		window := e.window(bars, i)
		result, err := e.discount.Evaluate(
			models.Highs(window),
			models.Lows(window),
			models.Opens(window),
			models.Closes(window),
			bar.Volume,
			bar.OpenTime,
		)
		if err != nil {
			return nil, fmt.Errorf("bar %d: %w", i, err)
		}
		if !result.Signal {
			continue
		}
		if e.config.RequireStructure && e.analyzer != nil {
			confirmed, err := e.analyzer.Analyze(window)
			if err != nil {
				return nil, fmt.Errorf("bar %d: %w", i, err)
			}
			if !confirmed {
				continue
			}
		}

		e.openTrade = e.openPosition(result, bar)
		e.entryByTF.Add(bar.TimeFrame, result.Price)
		e.updateEquityCurve(bar.OpenTime)
	}

	if e.openTrade != nil {
		e.closePosition(e.openTrade, bars[len(bars)-1], "end_of_data")
		e.openTrade = nil
	}

	return e.calculateResults(models.Volumes(bars)), nil
}

func (e *Engine) window(bars []models.PriceBar, i int) []models.PriceBar {
	start := 0
	if e.config.WindowBars > 0 && i+1 > e.config.WindowBars {
		start = i + 1 - e.config.WindowBars
	}
	return bars[start : i+1]
}

func (e *Engine) shouldExitPosition(trade *Trade, bar models.PriceBar) bool {
	return bar.High >= trade.TakeProfit || bar.Low <= trade.StopLoss
}

func (e *Engine) getExitReason(trade *Trade, bar models.PriceBar) string {
	if bar.High >= trade.TakeProfit {
		return "take_profit"
	}
	if bar.Low <= trade.StopLoss {
		return "stop_loss"
	}
	return "unknown"
}

func (e *Engine) openPosition(result *strategy.StrategyResult, bar models.PriceBar) *Trade {
	log.Printf("Entry for %s at %.4f (tp %.4f, sl %.4f)",
		bar.Symbol, result.Price, result.TakeProfit, result.StopLoss)

	return &Trade{
		Symbol:     bar.Symbol,
		EntryTime:  bar.OpenTime,
		EntryPrice: result.Price,
		Size:       e.config.PositionSize,
		StopLoss:   result.StopLoss,
		TakeProfit: result.TakeProfit,
	}
}

func (e *Engine) closePosition(trade *Trade, bar models.PriceBar, reason string) {
	trade.ExitTime = bar.OpenTime
	trade.ExitPrice = bar.Close
	trade.Reason = reason

	pnlPercent := 0.0
	if trade.EntryPrice != 0 {
		pnlPercent = (bar.Close - trade.EntryPrice) / trade.EntryPrice
	}
	trade.PnL = trade.Size * pnlPercent

	e.currentBalance += trade.PnL
	if e.currentBalance > e.maxBalance {
		e.maxBalance = e.currentBalance
	}
	e.trades = append(e.trades, *trade)
	e.updateEquityCurve(bar.OpenTime)
}

func (e *Engine) updateEquityCurve(timestamp time.Time) {
	e.equityCurve = append(e.equityCurve, EquityPoint{
		Timestamp: timestamp,
		Balance:   e.currentBalance,
	})
}

func (e *Engine) calculateResults(volumes []float64) *BacktestResults {
	results := &BacktestResults{
		FinalBalance:            e.currentBalance,
		AverageEntryByTimeframe: e.averageEntries(),
		AverageVolume:           e.recentVolumeAverage(volumes),
	}
	if len(e.trades) == 0 {
		return results
	}

	// Calculate trade metrics
	totalTrades := len(e.trades)
	winningTrades := 0
	losingTrades := 0
	totalPnL := 0.0

	for _, trade := range e.trades {
		if trade.PnL > 0 {
			winningTrades++
		} else {
			losingTrades++
		}
		totalPnL += trade.PnL
	}

	results.TotalTrades = totalTrades
	results.WinningTrades = winningTrades
	results.LosingTrades = losingTrades
	results.WinRate = float64(winningTrades) / float64(totalTrades)
	results.AveragePnL = totalPnL / float64(totalTrades)

	// Calculate drawdown
	maxDrawdown := 0.0
	peakBalance := e.config.InitialBalance
	for _, point := range e.equityCurve {
		if point.Balance > peakBalance {
			peakBalance = point.Balance
		}
		drawdown := (peakBalance - point.Balance) / peakBalance
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}
	results.MaxDrawdown = maxDrawdown

	results.SharpeRatio = e.calculateSharpeRatio()
	results.Trades = e.trades
	results.EquityCurve = e.equityCurve
	return results
}

func (e *Engine) averageEntries() map[string]float64 {
	averages := make(map[string]float64)
	for _, tf := range e.entryByTF.Timeframes() {
		if series, ok := e.entryByTF.Get(tf); ok {
			averages[tf] = series.Avg()
		}
	}
	return averages
}

func (e *Engine) recentVolumeAverage(volumes []float64) float64 {
	sma := e.sma.Calculate(volumes, VolumeSMABars)
	if sma == nil {
		return 0
	}
	return sma[len(sma)-1]
}

func (e *Engine) calculateSharpeRatio() float64 {
	if len(e.equityCurve) < 2 {
		return 0
	}

	// Calculate returns
	returns := make([]float64, len(e.equityCurve)-1)
	for i := 1; i < len(e.equityCurve); i++ {
		returns[i-1] = (e.equityCurve[i].Balance - e.equityCurve[i-1].Balance) /
			e.equityCurve[i-1].Balance
	}

	// Calculate average return
	avgReturn := 0.0
	for _, r := range returns {
		avgReturn += r
	}
	avgReturn /= float64(len(returns))

	// Calculate standard deviation
	variance := 0.0
	for _, r := range returns {
		variance += math.Pow(r-avgReturn, 2)
	}
	if len(returns) > 1 {
		variance /= float64(len(returns) - 1) // Use n-1 for sample variance
	}
	stdDev := math.Sqrt(variance)

	if stdDev == 0 {
		return 0
	}

	// Annualize (assuming daily returns)
	annualizedReturn := avgReturn * 252 // Trading days in a year
	annualizedStdDev := stdDev * math.Sqrt(252)

	return annualizedReturn / annualizedStdDev
}
