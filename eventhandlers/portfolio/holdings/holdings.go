package holdings

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/common"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/position"
)

// Error implements the error interface
func (e *PortfolioError) Error() string {
	return fmt.Sprintf("cannot %s position %s: %v", e.Operation, e.Ticker, e.Err)
}

// Unwrap returns the underlying sentinel error
func (e *PortfolioError) Unwrap() error {
	return e.Err
}

// New sets up a portfolio with cash and equity equal to the initial cash
func New(initialCash decimal.Decimal, quotes QuoteSource) (*Holdings, error) {
	if quotes == nil {
		return nil, fmt.Errorf("%w quote source", common.ErrNilPointer)
	}
	if !initialCash.IsPositive() {
		return nil, ErrInitialCashNotPositive
	}
	return &Holdings{
		InitialCash: initialCash,
		Cash:        initialCash,
		Equity:      initialCash,
		Positions:   make(map[string]*position.Position),
		quotes:      quotes,
	}, nil
}

// TradePosition applies a fill. Cash is adjusted first, then the position is
// opened or traded, and the portfolio is recomputed from scratch.
// A fill that takes a position through zero is split into a closing trade
// and a new position in the opposite direction
func (h *Holdings) TradePosition(action common.Action, ticker string, quantity int64, price, commission decimal.Decimal, tt time.Time) error {
	if err := common.CheckTradeable(action); err != nil {
		return fmt.Errorf("%s %w", ticker, err)
	}
	if ticker == "" {
		return errEmptyTicker
	}
	if quantity <= 0 {
		return fmt.Errorf("%s %w: %d", ticker, common.ErrZeroQuantity, quantity)
	}
	if commission.IsNegative() {
		return fmt.Errorf("%s %w: %v", ticker, errNegativeCommission, commission)
	}
	if price.IsNegative() {
		return fmt.Errorf("%s %w: %v", ticker, errNegativePrice, price)
	}
	bid, ask, err := h.quotes.BestBidAsk(ticker)
	if err != nil {
		return fmt.Errorf("%s %w", ticker, err)
	}
	if bid.IsNegative() || ask.IsNegative() {
		return fmt.Errorf("%s %w: bid %v ask %v", ticker, errNegativePrice, bid, ask)
	}

	closingQty, openingQty := quantity, int64(0)
	closingComm, openingComm := commission, decimal.Zero
	if pos, ok := h.Positions[ticker]; ok && pos.ClosingAction() == action && quantity > pos.OpenQuantity() {
		closingQty = pos.OpenQuantity()
		openingQty = quantity - closingQty
		closingComm = commission.Mul(decimal.NewFromInt(closingQty)).Div(decimal.NewFromInt(quantity))
		openingComm = commission.Sub(closingComm)
	}

	saved := h.save(ticker)
	h.adjustCash(action, quantity, price, commission)

	if _, ok := h.Positions[ticker]; ok {
		err = h.ModifyPosition(action, ticker, closingQty, price, closingComm, bid, ask, tt)
	} else {
		err = h.AddPosition(action, ticker, closingQty, price, closingComm, bid, ask, tt)
	}
	if err == nil && openingQty > 0 {
		err = h.AddPosition(action, ticker, openingQty, price, openingComm, bid, ask, tt)
	}
	if err == nil {
		err = h.updatePortfolio()
	}
	if err != nil {
		h.restore(saved)
		return err
	}
	return nil
}

// tradeState is the part of the portfolio a single fill can change
type tradeState struct {
	ticker      string
	cash        decimal.Decimal
	realisedPNL decimal.Decimal
	closed      int
	pos         *position.Position
	posValue    position.Position
}

func (h *Holdings) save(ticker string) tradeState {
	s := tradeState{
		ticker:      ticker,
		cash:        h.Cash,
		realisedPNL: h.RealisedPNL,
		closed:      len(h.ClosedPositions),
	}
	if pos, ok := h.Positions[ticker]; ok {
		s.pos = pos
		s.posValue = *pos
	}
	return s
}

// restore undoes a partially applied fill
func (h *Holdings) restore(s tradeState) {
	h.Cash = s.cash
	h.RealisedPNL = s.realisedPNL
	h.ClosedPositions = h.ClosedPositions[:s.closed]
	if s.pos == nil {
		delete(h.Positions, s.ticker)
		return
	}
	*s.pos = s.posValue
	h.Positions[s.ticker] = s.pos
}

// AddPosition opens a new position. It does not touch cash
func (h *Holdings) AddPosition(action common.Action, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal, tt time.Time) error {
	if _, ok := h.Positions[ticker]; ok {
		return &PortfolioError{Operation: "add", Ticker: ticker, Err: ErrPositionExists}
	}
	pos, err := position.Create(action, ticker, quantity, price, commission, bid, ask, tt)
	if err != nil {
		return err
	}
	h.Positions[ticker] = pos
	return nil
}

// ModifyPosition trades an open position and re-marks it. When the position
// returns to zero it is moved to the closed list and its realised profit is
// folded into the portfolio. It does not touch cash
func (h *Holdings) ModifyPosition(action common.Action, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal, tt time.Time) error {
	pos, ok := h.Positions[ticker]
	if !ok {
		return &PortfolioError{Operation: "modify", Ticker: ticker, Err: ErrPositionNotFound}
	}
	if bid.IsNegative() || ask.IsNegative() {
		return fmt.Errorf("%s %w: bid %v ask %v", ticker, errNegativePrice, bid, ask)
	}
	if err := pos.Trade(action, quantity, price, commission, tt); err != nil {
		return err
	}
	if err := pos.UpdateValue(bid, ask); err != nil {
		return err
	}
	if pos.IsClosed() {
		delete(h.Positions, ticker)
		h.ClosedPositions = append(h.ClosedPositions, pos)
		h.RealisedPNL = h.RealisedPNL.Add(pos.RealisedPNL)
	}
	return nil
}

// UpdateValue re-marks every open position at the latest quotes and
// recomputes equity
func (h *Holdings) UpdateValue() error {
	return h.updatePortfolio()
}

// GetPosition returns the open position for a ticker
func (h *Holdings) GetPosition(ticker string) (*position.Position, bool) {
	pos, ok := h.Positions[ticker]
	return pos, ok
}

// PositionQuantity returns the signed number of units held, zero when flat
func (h *Holdings) PositionQuantity(ticker string) int64 {
	if pos, ok := h.Positions[ticker]; ok {
		return pos.Quantity
	}
	return 0
}

// GetCash returns the cash balance
func (h *Holdings) GetCash() decimal.Decimal {
	return h.Cash
}

// GetEquity returns the last computed equity
func (h *Holdings) GetEquity() decimal.Decimal {
	return h.Equity
}

// Snapshot returns the portfolio totals at a point in time
func (h *Holdings) Snapshot(tt time.Time) Snapshot {
	return Snapshot{
		Time:            tt,
		InitialCash:     h.InitialCash,
		Cash:            h.Cash,
		Equity:          h.Equity,
		RealisedPNL:     h.RealisedPNL,
		UnrealisedPNL:   h.UnrealisedPNL,
		MarketValue:     h.MarketValue,
		OpenPositions:   len(h.Positions),
		ClosedPositions: len(h.ClosedPositions),
	}
}

func (h *Holdings) adjustCash(action common.Action, quantity int64, price, commission decimal.Decimal) {
	notional := price.Mul(decimal.NewFromInt(quantity))
	switch action {
	case common.Buy:
		h.Cash = h.Cash.Sub(notional.Add(commission))
	case common.Sell:
		h.Cash = h.Cash.Add(notional.Sub(commission))
	}
}

// updatePortfolio recomputes equity over every open position. It is never
// adjusted incrementally
func (h *Holdings) updatePortfolio() error {
	unrealised := decimal.Zero
	marketValue := decimal.Zero
	openContribution := decimal.Zero
	for ticker, pos := range h.Positions {
		bid, ask, err := h.quotes.BestBidAsk(ticker)
		if err != nil {
			return fmt.Errorf("%s %w", ticker, err)
		}
		if err = pos.UpdateValue(bid, ask); err != nil {
			return err
		}
		unrealised = unrealised.Add(pos.UnrealisedPNL)
		marketValue = marketValue.Add(pos.MarketValue)
		openContribution = openContribution.Add(
			pos.MarketValue.Sub(pos.Cost).Add(pos.RealisedPNL.Sub(pos.UnrealisedPNL)))
	}
	h.UnrealisedPNL = unrealised
	h.MarketValue = marketValue
	h.Equity = h.RealisedPNL.Add(h.InitialCash).Add(openContribution)
	return nil
}
