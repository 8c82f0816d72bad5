package models

// TimeframeSeries accumulates values tagged with the timeframe they came from,
// such as entry prices per candle interval. One type serves every interval.
type TimeframeSeries struct {
	Timeframe string
	values    []float64
}

func NewTimeframeSeries(timeframe string) *TimeframeSeries {
	return &TimeframeSeries{Timeframe: timeframe}
}

// Push appends a value at the end of the series.
func (s *TimeframeSeries) Push(v float64) {
	s.values = append(s.values, v)
}

// Unshift inserts a value at the front of the series.
func (s *TimeframeSeries) Unshift(v float64) {
	s.values = append([]float64{v}, s.values...)
}

// Pop removes and returns the most recent value.
func (s *TimeframeSeries) Pop() (float64, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, true
}

func (s *TimeframeSeries) Size() int {
	return len(s.values)
}

// Avg returns the mean of the stored values, 0 when empty.
func (s *TimeframeSeries) Avg() float64 {
	if len(s.values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// Value returns the element at index, counting from the oldest entry.
func (s *TimeframeSeries) Value(index int) (float64, bool) {
	if index < 0 || index >= len(s.values) {
		return 0, false
	}
	return s.values[index], true
}

// TimeframeSeriesSet keys series by timeframe, keeping first-seen order
// so reports print in a stable sequence.
type TimeframeSeriesSet struct {
	order  []string
	series map[string]*TimeframeSeries
}

func NewTimeframeSeriesSet() *TimeframeSeriesSet {
	return &TimeframeSeriesSet{series: make(map[string]*TimeframeSeries)}
}

// Add pushes a value onto the series for the timeframe, creating it on first use.
func (set *TimeframeSeriesSet) Add(timeframe string, v float64) {
	s, ok := set.series[timeframe]
	if !ok {
		s = NewTimeframeSeries(timeframe)
		set.series[timeframe] = s
		set.order = append(set.order, timeframe)
	}
	s.Push(v)
}

func (set *TimeframeSeriesSet) Get(timeframe string) (*TimeframeSeries, bool) {
	s, ok := set.series[timeframe]
	return s, ok
}

// Timeframes lists the stored timeframes in first-seen order.
func (set *TimeframeSeriesSet) Timeframes() []string {
	out := make([]string, len(set.order))
	copy(out, set.order)
	return out
}
