package movingaveragecross

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/eventholder"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/base"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
	"github.com/thrasher-corp/eventbacktester/eventtypes/signal"
)

func bar(ticker string, day int, closePrice int64) *kline.Kline {
	return &kline.Kline{
		Base:  event.Base{Time: time.Date(2020, 1, day, 0, 0, 0, 0, time.UTC), Ticker: ticker},
		Close: decimal.NewFromInt(closePrice),
	}
}

func TestName(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	assert.Equal(t, Name, s.Name())
	assert.NotEmpty(t, s.Description())
}

func TestSetDefaults(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	assert.Equal(t, DefaultShortWindow, s.shortWindow)
	assert.Equal(t, DefaultLongWindow, s.longWindow)
	assert.NotNil(t, s.closes)
}

func TestSetCustomSettings(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	err := s.SetCustomSettings(map[string]any{shortWindowKey: 5.0, longWindowKey: 20})
	require.NoError(t, err)
	assert.Equal(t, 5, s.shortWindow)
	assert.Equal(t, 20, s.longWindow)

	err = s.SetCustomSettings(map[string]any{shortWindowKey: "5"})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
	err = s.SetCustomSettings(map[string]any{longWindowKey: 2.5})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
	err = s.SetCustomSettings(map[string]any{longWindowKey: -1})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)
	err = s.SetCustomSettings(map[string]any{"lol": 1})
	assert.ErrorIs(t, err, base.ErrInvalidCustomSettings)

	err = s.SetCustomSettings(map[string]any{shortWindowKey: 20})
	assert.ErrorIs(t, err, errShortWindowNotShorter)
	assert.Equal(t, 5, s.shortWindow, "failed settings must not be partially applied")
}

func TestCalculateSignals(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	require.NoError(t, s.SetCustomSettings(map[string]any{shortWindowKey: 2, longWindowKey: 4}))
	q := &eventholder.Holder{}

	assert.ErrorIs(t, s.CalculateSignals(nil, q), common.ErrNilEvent)
	assert.ErrorIs(t, s.CalculateSignals(bar("SPY", 1, 10), nil), common.ErrNilArguments)

	for day := 1; day <= 4; day++ {
		require.NoError(t, s.CalculateSignals(bar("SPY", day, 10), q))
	}
	assert.Zero(t, q.Len(), "flat averages do not cross")

	require.NoError(t, s.CalculateSignals(bar("SPY", 5, 12), q))
	require.Equal(t, 1, q.Len())
	ev, ok := q.NextEvent()
	require.True(t, ok)
	sig, ok := ev.(*signal.Signal)
	require.True(t, ok)
	assert.Equal(t, common.Buy, sig.GetAction())
	assert.Equal(t, "SPY", sig.GetTicker())
	assert.True(t, s.IsInvested("SPY"))

	require.NoError(t, s.CalculateSignals(bar("SPY", 6, 13), q))
	assert.Zero(t, q.Len(), "already invested")

	require.NoError(t, s.CalculateSignals(bar("SPY", 7, 5), q))
	require.Equal(t, 1, q.Len())
	ev, ok = q.NextEvent()
	require.True(t, ok)
	sig, ok = ev.(*signal.Signal)
	require.True(t, ok)
	assert.Equal(t, common.Exit, sig.GetAction())
	assert.False(t, s.IsInvested("SPY"))

	require.NoError(t, s.CalculateSignals(bar("SPY", 8, 4), q))
	assert.Zero(t, q.Len(), "not invested so no exit")
	assert.Len(t, s.closes["SPY"], 4)
}

func TestCalculateSignalsPerTicker(t *testing.T) {
	t.Parallel()
	s := Strategy{}
	s.SetDefaults()
	require.NoError(t, s.SetCustomSettings(map[string]any{shortWindowKey: 1, longWindowKey: 2}))
	q := &eventholder.Holder{}
	require.NoError(t, s.CalculateSignals(bar("SPY", 1, 10), q))
	require.NoError(t, s.CalculateSignals(bar("QQQ", 1, 50), q))
	require.NoError(t, s.CalculateSignals(bar("SPY", 2, 11), q))
	require.Equal(t, 1, q.Len())
	ev, ok := q.NextEvent()
	require.True(t, ok)
	assert.Equal(t, "SPY", ev.GetTicker())
	assert.False(t, s.IsInvested("QQQ"))
}

func TestLatestSMA(t *testing.T) {
	t.Parallel()
	_, ok := latestSMA([]float64{1}, 2)
	assert.False(t, ok)
	_, ok = latestSMA([]float64{1}, 0)
	assert.False(t, ok)
	v, ok := latestSMA([]float64{1, 2, 3, 5}, 2)
	require.True(t, ok)
	assert.InDelta(t, 4, v, 1e-9)
}
