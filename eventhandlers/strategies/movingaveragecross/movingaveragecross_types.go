package movingaveragecross

import (
	"errors"

	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/base"
)

const (
	// Name is the strategy name
	Name           = "movingaveragecross"
	shortWindowKey = "short_window"
	longWindowKey  = "long_window"
	// DefaultShortWindow is the number of bars in the fast average
	DefaultShortWindow = 100
	// DefaultLongWindow is the number of bars in the slow average
	DefaultLongWindow = 400
	description       = `The moving average cross is a long only trend follower. It buys when the short simple moving average of closes rises above the long one and exits once it falls back below`
)

var errShortWindowNotShorter = errors.New("short window must be less than long window")

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	shortWindow int
	longWindow  int
	closes      map[string][]float64
}
