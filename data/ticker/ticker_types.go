package ticker

import (
	"errors"

	"github.com/thrasher-corp/eventbacktester/data"
)

var errInvalidQuote = errors.New("invalid quote")

// DataFromTicks is a replayable feed of bid/ask quotes
type DataFromTicks struct {
	data.Base
}
