package kline

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
)

// Kind returns MarketKind
func (k *Kline) Kind() common.Kind {
	return common.MarketKind
}

// ClosePrice returns the adjusted close of a kline, or the raw close when
// no adjusted close is set. Fills, marks and indicators all use this price
func (k *Kline) ClosePrice() decimal.Decimal {
	if k.AdjClose.IsPositive() {
		return k.AdjClose
	}
	return k.Close
}

// BidAsk returns the close price as both bid and ask. Bars carry no spread
func (k *Kline) BidAsk() (bid, ask decimal.Decimal) {
	c := k.ClosePrice()
	return c, c
}

// Clone returns a copy of the kline
func (k *Kline) Clone() common.DataEventHandler {
	c := *k
	return &c
}

// GetOpenPrice returns the open price of a kline
func (k *Kline) GetOpenPrice() decimal.Decimal {
	return k.Open
}

// GetHighPrice returns the high price of a kline
func (k *Kline) GetHighPrice() decimal.Decimal {
	return k.High
}

// GetLowPrice returns the low price of a kline
func (k *Kline) GetLowPrice() decimal.Decimal {
	return k.Low
}

// GetVolume returns the volume of a kline
func (k *Kline) GetVolume() decimal.Decimal {
	return k.Volume
}
