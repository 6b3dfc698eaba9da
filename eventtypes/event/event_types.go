package event

import "time"

// Base is the fundamental data that every event type embeds
type Base struct {
	Offset int64     `json:"offset"`
	Time   time.Time `json:"timestamp"`
	Ticker string    `json:"ticker"`
	Reason string    `json:"reason,omitempty"`
}
