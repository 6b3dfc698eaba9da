package strategies

import (
	"fmt"
	"strings"

	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/base"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/buyandhold"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/movingaveragecross"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LoadStrategyByName returns the strategy by its name with default settings
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		strats[i].SetDefaults()
		return strats[i], nil
	}
	return nil, fmt.Errorf("strategy '%v' %w", name, base.ErrStrategyNotFound)
}

// GetStrategies returns a fresh instance of every strategy
func GetStrategies() []Handler {
	return []Handler{
		new(buyandhold.Strategy),
		new(movingaveragecross.Strategy),
	}
}

// DisplayName converts a strategy name into a title for logs and reports
func DisplayName(h Handler) string {
	if h == nil {
		return ""
	}
	return cases.Title(language.English).String(h.Name())
}
