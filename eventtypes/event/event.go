package event

import (
	"time"
)

// GetOffset returns the position of the event in the run
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the position of the event in the run. It is assigned by
// the event queue when the event is appended
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetTicker returns the instrument the event relates to
func (b *Base) GetTicker() string {
	return b.Ticker
}

// GetReason returns why the event was raised
func (b *Base) GetReason() string {
	return b.Reason
}
