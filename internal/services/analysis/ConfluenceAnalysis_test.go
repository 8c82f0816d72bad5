package analysis_test

import (
	"testing"

	"SMCSignalEngine/internal/services/analysis"
)

func TestFilter_KeepsOnlyLongerUpperWicks(t *testing.T) {
	opens := []float64{10, 10, 10, 10}
	closes := []float64{11, 11, 11, 11}
	highs := []float64{14, 13, 12, 11.5}
	lows := []float64{9.5, 9, 9, 8}

	signals := []analysis.StructureSignal{
		{Position: 0, Kind: analysis.BreakOfStructure},  // favorable wick but bar 0
		{Position: 1, Kind: analysis.BreakOfStructure},  // upper 2 vs lower 1
		{Position: 2, Kind: analysis.ChangeOfCharacter}, // upper 1 vs lower 1, tie loses
		{Position: 3, Kind: analysis.BreakOfStructure},  // upper 0.5 vs lower 2
		{Position: 99, Kind: analysis.BreakOfStructure}, // out of range
	}

	kept := analysis.NewConfluenceAnalyzer().Filter(signals, opens, highs, lows, closes)
	if len(kept) != 1 {
		t.Fatalf("kept %d signals, want 1: %v", len(kept), kept)
	}
	if kept[0].Position != 1 || kept[0].Kind != analysis.BreakOfStructure {
		t.Fatalf("kept %+v, want the bar 1 signal", kept[0])
	}
}

func TestFilter_ReadsBodyOfBearishCandles(t *testing.T) {
	opens := []float64{10, 12}
	closes := []float64{10, 10}
	highs := []float64{10, 15}
	lows := []float64{10, 9}

	signals := []analysis.StructureSignal{{Position: 1, Kind: analysis.BreakOfStructure}}
	kept := analysis.NewConfluenceAnalyzer().Filter(signals, opens, highs, lows, closes)
	if len(kept) != 1 {
		t.Fatalf("upper wick 3 vs lower 1 should survive on a down candle, got %v", kept)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	kept := analysis.NewConfluenceAnalyzer().Filter(nil, nil, nil, nil, nil)
	if len(kept) != 0 {
		t.Fatalf("expected no signals, got %v", kept)
	}
}
