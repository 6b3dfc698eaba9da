package kline

import (
	"errors"

	"github.com/thrasher-corp/eventbacktester/data"
)

var errInvalidBar = errors.New("invalid bar")

// DataFromKline is a replayable feed of OHLCV bars
type DataFromKline struct {
	data.Base
}
