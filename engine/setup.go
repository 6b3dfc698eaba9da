package engine

import (
	"fmt"

	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/config"
	"github.com/thrasher-corp/eventbacktester/data"
	"github.com/thrasher-corp/eventbacktester/data/csv"
	datakline "github.com/thrasher-corp/eventbacktester/data/kline"
	dataticker "github.com/thrasher-corp/eventbacktester/data/ticker"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/eventholder"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/exchange"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/risk"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/size"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/statistics"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies"
	"github.com/thrasher-corp/eventbacktester/log"
	"golang.org/x/sync/errgroup"
)

// NewFromConfig validates the config, loads its data and assembles a
// backtest ready to run
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if cfg == nil {
		return nil, common.ErrNilArguments
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Infof(log.Setup, "loading backtest %v", cfg.Nickname)

	feed, err := loadData(&cfg.DataSettings)
	if err != nil {
		return nil, err
	}
	log.Infof(log.Setup, "loaded %v data for %v", cfg.DataSettings.DataType, feed.Tickers())

	strat, err := strategies.LoadStrategyByName(cfg.StrategySettings.Name)
	if err != nil {
		return nil, err
	}
	if len(cfg.StrategySettings.CustomSettings) > 0 {
		if err = strat.SetCustomSettings(cfg.StrategySettings.CustomSettings); err != nil {
			return nil, err
		}
	}

	h, err := holdings.New(cfg.PortfolioSettings.InitialCash, feed)
	if err != nil {
		return nil, err
	}
	sizer, err := setupSizer(&cfg.PortfolioSettings.Sizer, feed)
	if err != nil {
		return nil, err
	}
	refiner, err := setupRisk(&cfg.PortfolioSettings.Risk, feed)
	if err != nil {
		return nil, err
	}
	q := &eventholder.Holder{}
	p, err := portfolio.Setup(sizer, refiner, h, q)
	if err != nil {
		return nil, err
	}

	commission, err := cfg.ExchangeSettings.Commission.CommissionModel()
	if err != nil {
		return nil, err
	}
	ex := &exchange.Exchange{
		Name:       cfg.ExchangeSettings.Name,
		Commission: commission,
		Prices:     feed,
	}

	stats := statistics.New()
	stats.RiskFreeRate = cfg.StatisticSettings.RiskFreeRate
	if cfg.StatisticSettings.PeriodsPerYear > 0 {
		stats.PeriodsPerYear = cfg.StatisticSettings.PeriodsPerYear
	}

	bt, err := New(feed, strat, p, ex, stats, q)
	if err != nil {
		return nil, err
	}
	bt.MetaData.Nickname = cfg.Nickname
	bt.MetaData.Goal = cfg.Goal
	log.Infof(log.Setup, "backtest %v loaded with strategy %v", bt.MetaData.ID, strategies.DisplayName(strat))
	return bt, nil
}

func loadData(ds *config.DataSettings) (data.Handler, error) {
	switch ds.DataType {
	case common.BarDataType:
		bars, err := loadSources(ds.Sources, csv.LoadBars)
		if err != nil {
			return nil, err
		}
		return datakline.New(bars...)
	case common.TickDataType:
		ticks, err := loadSources(ds.Sources, csv.LoadTicks)
		if err != nil {
			return nil, err
		}
		return dataticker.New(ticks...)
	}
	return nil, fmt.Errorf("%w '%v'", common.ErrInvalidDataType, ds.DataType)
}

// loadSources reads every file concurrently. Results keep the source order
// so equal timestamps replay in the order the sources are listed
func loadSources[T any](sources []config.DataSource, load func(path, ticker string) ([]T, error)) ([]T, error) {
	loaded := make([][]T, len(sources))
	var g errgroup.Group
	for i := range sources {
		i := i
		g.Go(func() error {
			resp, err := load(sources[i].Path, sources[i].Ticker)
			if err != nil {
				return err
			}
			loaded[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var resp []T
	for i := range loaded {
		resp = append(resp, loaded[i]...)
	}
	return resp, nil
}

func setupSizer(s *config.SizerSettings, prices common.PriceSource) (portfolio.SizeHandler, error) {
	switch s.Type {
	case config.FixedSizer:
		return &size.Fixed{Quantity: s.Quantity}, nil
	case config.DollarWeightSizer:
		return &size.DollarWeight{Weights: s.Weights, Prices: prices}, nil
	}
	return nil, fmt.Errorf("unhandled sizer '%v'", s.Type)
}

func setupRisk(r *config.RiskSettings, prices common.PriceSource) (portfolio.RiskHandler, error) {
	switch r.Type {
	case config.NaiveRisk:
		return &risk.Naive{}, nil
	case config.LimitsRisk:
		l := &risk.Limits{
			MinimumOrderQuantity: r.MinimumOrderQuantity,
			MaximumOrderQuantity: r.MaximumOrderQuantity,
			MaximumHoldingRatio:  r.MaximumHoldingRatio,
			CanUseLeverage:       r.CanUseLeverage,
			Prices:               prices,
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		return l, nil
	}
	return nil, fmt.Errorf("unhandled risk refiner '%v'", r.Type)
}
