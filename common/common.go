package common

import (
	"fmt"
	"strings"
)

// String implements fmt.Stringer
func (k Kind) String() string {
	switch k {
	case MarketKind:
		return "MARKET"
	case SignalKind:
		return "SIGNAL"
	case OrderKind:
		return "ORDER"
	case FillKind:
		return "FILL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(k))
	}
}

// IsValid returns whether the action is one of the recognised actions
func (a Action) IsValid() bool {
	return a == Buy || a == Sell || a == Exit
}

// IsTradeable returns whether the action can be executed as-is
func (a Action) IsTradeable() bool {
	return a == Buy || a == Sell
}

// Opposite returns the closing side for a tradeable action
func (a Action) Opposite() Action {
	switch a {
	case Buy:
		return Sell
	case Sell:
		return Buy
	default:
		return a
	}
}

// ActionFromString converts a case insensitive string into an Action.
// BUY and SELL are accepted as aliases
func ActionFromString(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Buy), "BUY":
		return Buy, nil
	case string(Sell), "SELL":
		return Sell, nil
	case string(Exit):
		return Exit, nil
	}
	return "", fmt.Errorf("%w '%s'", ErrInvalidOrderKind, s)
}

// CheckTradeable returns an error if the action cannot be traded directly
func CheckTradeable(a Action) error {
	if !a.IsTradeable() {
		return fmt.Errorf("%w '%s'", ErrInvalidOrderKind, a)
	}
	return nil
}
