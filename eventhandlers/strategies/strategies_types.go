package strategies

import (
	"github.com/thrasher-corp/eventbacktester/common"
)

// Handler defines all functions required to run strategies against data events
type Handler interface {
	Name() string
	Description() string
	CalculateSignals(common.DataEventHandler, common.EventAppender) error
	SetCustomSettings(map[string]any) error
	SetDefaults()
}
