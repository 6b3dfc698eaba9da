package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/exchange"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/size"
	"github.com/thrasher-corp/eventbacktester/log"
)

// ReadConfigFromFile will take a config from a path. JSON and YAML are
// supported and values can be overridden with BACKTESTER_ prefixed
// environment variables
func ReadConfigFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config %v %w", path, err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	// relative data paths are relative to the config
	dir := filepath.Dir(path)
	for i := range cfg.DataSettings.Sources {
		p := cfg.DataSettings.Sources[i].Path
		if p != "" && !filepath.IsAbs(p) {
			cfg.DataSettings.Sources[i].Path = filepath.Join(dir, p)
		}
	}
	log.Debugf(log.Config, "loaded config %v from %v", cfg.Nickname, path)
	return cfg, nil
}

// LoadConfig unmarshalls byte data into a config struct. configType is any
// type viper supports, such as json or yaml
func LoadConfig(data []byte, configType string) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("nickname", "backtest")

	v.SetDefault("portfolio-settings.sizer.type", FixedSizer)
	v.SetDefault("portfolio-settings.sizer.quantity", size.DefaultQuantity)
	v.SetDefault("portfolio-settings.risk.type", NaiveRisk)

	v.SetDefault("exchange-settings.name", exchange.DefaultExchangeName)
	v.SetDefault("exchange-settings.commission.type", IBTieredCommission)

	v.SetDefault("data-settings.data-type", common.BarDataType)

	v.SetDefault("statistic-settings.risk-free-rate", 0.0)
	v.SetDefault("statistic-settings.periods-per-year", 252)

	v.SetDefault("report-settings.generate-report", true)
	v.SetDefault("report-settings.output-path", "results")
	v.SetDefault("report-settings.dark-mode", false)

	v.SetDefault("database-settings.enabled", false)

	v.SetDefault("log-settings.enabled", true)
	v.SetDefault("log-settings.level", "info")
	v.SetDefault("log-settings.output", "console")
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalDecodeHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return nil, err
	}
	cfg.restoreWeightTickers()
	return &cfg, nil
}

// restoreWeightTickers undoes viper's lower casing of map keys by matching
// sizer weights to the tickers of the data sources
func (c *Config) restoreWeightTickers() {
	weights := c.PortfolioSettings.Sizer.Weights
	if len(weights) == 0 {
		return
	}
	resp := make(map[string]decimal.Decimal, len(weights))
	for k, w := range weights {
		resp[k] = w
		for i := range c.DataSettings.Sources {
			if strings.EqualFold(k, c.DataSettings.Sources[i].Ticker) {
				delete(resp, k)
				resp[c.DataSettings.Sources[i].Ticker] = w
				break
			}
		}
	}
	c.PortfolioSettings.Sizer.Weights = resp
}

// decimalDecodeHook converts strings and numbers into decimal.Decimal
func decimalDecodeHook(_, t reflect.Type, data any) (any, error) {
	if t != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch d := data.(type) {
	case string:
		if d == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(d)
	case float64:
		return decimal.NewFromFloat(d), nil
	case float32:
		return decimal.NewFromFloat32(d), nil
	case int:
		return decimal.NewFromInt(int64(d)), nil
	case int64:
		return decimal.NewFromInt(d), nil
	case int32:
		return decimal.NewFromInt32(d), nil
	case uint64:
		return decimal.NewFromInt(int64(d)), nil
	case decimal.Decimal:
		return d, nil
	case nil:
		return decimal.Zero, nil
	}
	return data, nil
}

// Validate checks all config settings
func (c *Config) Validate() error {
	if c == nil {
		return errNilConfig
	}
	if err := c.validateStrategySettings(); err != nil {
		return err
	}
	if err := c.validatePortfolioSettings(); err != nil {
		return err
	}
	if err := c.validateCommission(); err != nil {
		return err
	}
	if err := c.validateDataSettings(); err != nil {
		return err
	}
	if c.DatabaseSettings.Enabled {
		if err := c.DatabaseSettings.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateStrategySettings() error {
	if strings.TrimSpace(c.StrategySettings.Name) == "" {
		return errNoStrategy
	}
	return nil
}

func (c *Config) validatePortfolioSettings() error {
	p := &c.PortfolioSettings
	if !p.InitialCash.IsPositive() {
		return fmt.Errorf("%w received %v", errInitialCashNotPositive, p.InitialCash)
	}
	switch p.Sizer.Type {
	case FixedSizer:
		if p.Sizer.Quantity < 0 {
			return fmt.Errorf("%w fixed quantity %v", errInvalidSizer, p.Sizer.Quantity)
		}
	case DollarWeightSizer:
		for k, w := range p.Sizer.Weights {
			if w.IsNegative() {
				return fmt.Errorf("%w %v %v", errNegativeWeight, k, w)
			}
		}
	default:
		return fmt.Errorf("%w '%v'", errInvalidSizer, p.Sizer.Type)
	}
	switch p.Risk.Type {
	case NaiveRisk:
	case LimitsRisk:
		if p.Risk.MinimumOrderQuantity < 0 ||
			p.Risk.MaximumOrderQuantity < 0 ||
			p.Risk.MaximumHoldingRatio.IsNegative() {
			return errNegativeLimit
		}
		if p.Risk.MaximumOrderQuantity > 0 &&
			p.Risk.MinimumOrderQuantity > p.Risk.MaximumOrderQuantity {
			return fmt.Errorf("%w %v > %v",
				errMinGreaterThanMax,
				p.Risk.MinimumOrderQuantity,
				p.Risk.MaximumOrderQuantity)
		}
	default:
		return fmt.Errorf("%w '%v'", errInvalidRisk, p.Risk.Type)
	}
	return nil
}

func (c *Config) validateCommission() error {
	cs := &c.ExchangeSettings.Commission
	switch cs.Type {
	case IBTieredCommission, IBFixedCommission, ZeroCommission:
	case TieredCommission:
		if cs.MinimumFee.IsNegative() ||
			cs.RateBelowBreakpoint.IsNegative() ||
			cs.RateAboveBreakpoint.IsNegative() ||
			cs.MaximumNotionalRate.IsNegative() ||
			cs.Breakpoint < 0 {
			return errNegativeCommission
		}
	case FixedCommission:
		if cs.Fee.IsNegative() {
			return errNegativeCommission
		}
	default:
		return fmt.Errorf("%w '%v'", errInvalidCommission, cs.Type)
	}
	return nil
}

func (c *Config) validateDataSettings() error {
	d := &c.DataSettings
	switch d.DataType {
	case common.BarDataType, common.TickDataType:
	default:
		return fmt.Errorf("%w '%v'", common.ErrInvalidDataType, d.DataType)
	}
	if len(d.Sources) == 0 {
		return errNoDataSources
	}
	for i := range d.Sources {
		if d.Sources[i].Path == "" {
			return fmt.Errorf("%w source %d", errDataSourceIncomplete, i)
		}
		if d.DataType == common.BarDataType && d.Sources[i].Ticker == "" {
			return fmt.Errorf("%w source %d", errDataSourceIncomplete, i)
		}
	}
	return nil
}

// CommissionModel builds the commission model the settings describe
func (cs *CommissionSettings) CommissionModel() (exchange.CommissionModel, error) {
	switch cs.Type {
	case IBTieredCommission:
		return exchange.InteractiveBrokersTiered(), nil
	case IBFixedCommission:
		return exchange.InteractiveBrokersFixed(), nil
	case TieredCommission:
		t := &exchange.TieredCommission{
			MinimumFee:          cs.MinimumFee,
			RateBelowBreakpoint: cs.RateBelowBreakpoint,
			RateAboveBreakpoint: cs.RateAboveBreakpoint,
			Breakpoint:          cs.Breakpoint,
			PerUnit:             cs.PerUnit,
			MaximumNotionalRate: cs.MaximumNotionalRate,
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return t, nil
	case FixedCommission:
		if cs.Fee.IsNegative() {
			return nil, errNegativeCommission
		}
		return &exchange.FixedCommission{Fee: cs.Fee}, nil
	case ZeroCommission:
		return exchange.ZeroCommission{}, nil
	}
	return nil, fmt.Errorf("%w '%v'", errInvalidCommission, cs.Type)
}
