package strategy

import "time"

// SignalRecord is one logged buy signal.
type SignalRecord struct {
	Date   time.Time
	Price  float64
	Volume float64
}

// SignalHistory keeps the most recent signals in arrival order, evicting the
// oldest once the limit is exceeded. It belongs to a single strategy
// instance and is not safe for concurrent use.
type SignalHistory struct {
	limit   int
	records []SignalRecord
}

func NewSignalHistory(limit int) *SignalHistory {
	if limit < 1 {
		limit = 1
	}
	return &SignalHistory{limit: limit, records: make([]SignalRecord, 0, limit)}
}

// Append records a signal, dropping the oldest entry when over the limit.
func (h *SignalHistory) Append(r SignalRecord) {
	h.records = append(h.records, r)
	if len(h.records) > h.limit {
		h.records = append(h.records[:0], h.records[1:]...)
	}
}

// Len returns the number of stored records.
func (h *SignalHistory) Len() int {
	return len(h.records)
}

// Recent returns a copy of the stored records, oldest first.
func (h *SignalHistory) Recent() []SignalRecord {
	out := make([]SignalRecord, len(h.records))
	copy(out, h.records)
	return out
}
