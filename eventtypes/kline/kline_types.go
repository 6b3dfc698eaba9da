package kline

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
)

// Kline is a bar of OHLCV data and is processed as a MARKET event
type Kline struct {
	event.Base
	Open     decimal.Decimal `json:"open"`
	High     decimal.Decimal `json:"high"`
	Low      decimal.Decimal `json:"low"`
	Close    decimal.Decimal `json:"close"`
	AdjClose decimal.Decimal `json:"adj-close"`
	Volume   decimal.Decimal `json:"volume"`
}

// Event is a kline data event
type Event interface {
	common.DataEventHandler
	GetOpenPrice() decimal.Decimal
	GetHighPrice() decimal.Decimal
	GetLowPrice() decimal.Decimal
	GetVolume() decimal.Decimal
}
