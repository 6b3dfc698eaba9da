package signal

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

// Kind returns SignalKind
func (s *Signal) Kind() common.Kind {
	return common.SignalKind
}

// GetAction returns the direction
func (s *Signal) GetAction() common.Action {
	return s.Action
}

// GetStrength returns how strongly the strategy holds the view.
// A zero strength is treated as full strength
func (s *Signal) GetStrength() decimal.Decimal {
	if s.Strength.IsZero() {
		return decimal.NewFromInt(1)
	}
	return s.Strength
}
