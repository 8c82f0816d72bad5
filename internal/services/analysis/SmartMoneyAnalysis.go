package analysis

import (
	"fmt"

	"SMCSignalEngine/internal/models"
	"SMCSignalEngine/internal/services/indicators"
)

// SmartMoneyAnalyzer runs the full structure read over a bar series and
// decides whether the newest bar is a bullish entry.
//
// Pivot windows are centered, so levels near the tail only confirm after
// later bars print; the decision for the newest bar leans on structure
// confirmed with hindsight. That bias is inherent to the windowing and is a
// known limitation. Only buy-side entries are produced.
type SmartMoneyAnalyzer struct {
	cfg Config

	atr        *indicators.ATRService
	pivots     *PivotAnalyzer
	confluence *ConfluenceAnalyzer
	orderBlock *OrderBlockAnalyzer
	liquidity  *LiquidityAnalyzer
	trend      *TrendAnalyzer
}

func NewSmartMoneyAnalyzer(cfg Config) *SmartMoneyAnalyzer {
	return &SmartMoneyAnalyzer{
		cfg:        cfg,
		atr:        indicators.NewATRService(),
		pivots:     NewPivotAnalyzer(),
		confluence: NewConfluenceAnalyzer(),
		orderBlock: NewOrderBlockAnalyzer(),
		liquidity:  NewLiquidityAnalyzer(cfg.EqualLevelMultiplier),
		trend:      NewTrendAnalyzer(cfg.FastEMAPeriod, cfg.SlowEMAPeriod),
	}
}

// Analyze reports whether the newest bar is a bullish entry. A series
// shorter than the configured minimum yields false without error; a
// malformed series (unordered timestamps, non-finite values) yields a typed
// error. The input is never modified and repeated calls give the same
// answer.
func (a *SmartMoneyAnalyzer) Analyze(bars []models.PriceBar) (bool, error) {
	if err := models.ValidateSeries(bars); err != nil {
		return false, fmt.Errorf("smart money analysis: %w", err)
	}
	if len(bars) < a.cfg.MinBars || len(bars) == 0 {
		return false, nil
	}

	opens := models.Opens(bars)
	highs := models.Highs(bars)
	lows := models.Lows(bars)
	closes := models.Closes(bars)

	swingHighs := a.pivots.FindHighs(highs, a.cfg.SwingLength)
	swingLows := a.pivots.FindLows(lows, a.cfg.SwingLength)
	internalHighs := a.pivots.FindHighs(highs, a.cfg.InternalLength)
	internalLows := a.pivots.FindLows(lows, a.cfg.InternalLength)

	swingStructure := NewStructureAnalyzer().Detect(closes, swingHighs, swingLows)
	internalStructure := NewStructureAnalyzer().Detect(closes, internalHighs, internalLows)
	internalStructure = a.confluence.Filter(internalStructure, opens, highs, lows, closes)

	swingBlocks := a.orderBlock.Detect(closes, lows, swingLows)
	internalBlocks := a.orderBlock.Detect(closes, lows, internalLows)

	atr := a.atr.Calculate(highs, lows, closes, a.cfg.ATRPeriod)
	equalLows, _ := a.liquidity.Detect(swingHighs, swingLows, a.atr.SeriesMean(atr, a.cfg.ATRPeriod), len(bars))

	permissive := a.trend.Permissive(closes)

	last := len(bars) - 1
	entry := signalAt(swingStructure, last) ||
		signalAt(internalStructure, last) ||
		swingBlocks[last] ||
		internalBlocks[last] ||
		equalLows[last]
	return entry && permissive[last], nil
}

func signalAt(signals []StructureSignal, position int) bool {
	for _, s := range signals {
		if s.Position == position {
			return true
		}
	}
	return false
}
