package analysis

// PivotKind distinguishes the two local extreme types.
type PivotKind int

const (
	PivotHigh PivotKind = iota
	PivotLow
)

// Pivot marks a confirmed local extreme in a price series.
type Pivot struct {
	Position int
	Value    float64
	Kind     PivotKind
}

// TrendState tracks the structure direction while scanning a series.
type TrendState int

const (
	TrendNeutral TrendState = iota
	TrendBullish
	TrendBearish
)

func (t TrendState) String() string {
	switch t {
	case TrendBullish:
		return "bullish"
	case TrendBearish:
		return "bearish"
	default:
		return "neutral"
	}
}

// StructureKind labels a bullish structure break.
type StructureKind int

const (
	// BreakOfStructure is a close above the significant high with no trend established.
	BreakOfStructure StructureKind = iota
	// ChangeOfCharacter is a close above the significant high while the trend is bearish.
	ChangeOfCharacter
)

func (k StructureKind) String() string {
	if k == ChangeOfCharacter {
		return "CHoCH"
	}
	return "BOS"
}

// StructureSignal records a structure break at a bar position.
type StructureSignal struct {
	Position int
	Kind     StructureKind
}

// Config holds the tunable windows of the smart money analyzer.
type Config struct {
	SwingLength          int
	InternalLength       int
	ATRPeriod            int
	EqualLevelMultiplier float64
	FastEMAPeriod        int
	SlowEMAPeriod        int
	MinBars              int
}

// DefaultConfig returns the windows the analyzer was tuned with.
func DefaultConfig() Config {
	return Config{
		SwingLength:          50,
		InternalLength:       5,
		ATRPeriod:            14,
		EqualLevelMultiplier: 0.1,
		FastEMAPeriod:        20,
		SlowEMAPeriod:        50,
		MinBars:              100,
	}
}
