package report

import (
	"errors"

	"github.com/thrasher-corp/eventbacktester/engine"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/compliance"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/position"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/statistics"
)

const (
	runTable    = "backtest_run"
	equityTable = "backtest_equity"
)

var (
	errNoResults       = errors.New("no results to report")
	errNoOutputPath    = errors.New("no output path provided")
	errNilDatabase     = errors.New("database instance is nil")
	errInvalidMetaData = errors.New("metadata requires an ID")
)

// Data holds everything written out after a run
type Data struct {
	MetaData        engine.RunMetaData    `json:"metadata"`
	Statistics      *statistics.Results   `json:"statistics"`
	OpenPositions   []*position.Position  `json:"open-positions"`
	ClosedPositions []*position.Position  `json:"closed-positions"`
	Trades          []compliance.Snapshot `json:"trades"`
	UseDarkTheme    bool                  `json:"-"`
}
