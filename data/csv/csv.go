package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/eventbacktester/eventtypes/event"
	"github.com/thrasher-corp/eventbacktester/eventtypes/kline"
	"github.com/thrasher-corp/eventbacktester/eventtypes/ticker"
)

// LoadBars reads a daily bar file in the Yahoo layout:
// Date,Open,High,Low,Close,Adj Close,Volume
func LoadBars(path, tickerName string) ([]*kline.Kline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	resp, err := ReadBars(f, tickerName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

// ReadBars parses bar data from a reader. Columns are matched by header name
// and Adj Close and Volume are optional
func ReadBars(r io.Reader, tickerName string) ([]*kline.Kline, error) {
	if tickerName == "" {
		return nil, errEmptyTicker
	}
	rows, cols, err := readAll(r, []string{"date", "open", "high", "low", "close"})
	if err != nil {
		return nil, err
	}
	resp := make([]*kline.Kline, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		tt, err := parseTime(row[cols["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		k := &kline.Kline{Base: event.Base{Time: tt, Ticker: tickerName}}
		for _, field := range []struct {
			name string
			dst  *decimal.Decimal
		}{
			{"open", &k.Open},
			{"high", &k.High},
			{"low", &k.Low},
			{"close", &k.Close},
			{"adj close", &k.AdjClose},
			{"volume", &k.Volume},
		} {
			idx, ok := cols[field.name]
			if !ok {
				continue
			}
			if *field.dst, err = decimal.NewFromString(strings.TrimSpace(row[idx])); err != nil {
				return nil, fmt.Errorf("line %d %s: %w", line, field.name, err)
			}
		}
		if k.AdjClose.IsZero() {
			k.AdjClose = k.Close
		}
		resp = append(resp, k)
	}
	return resp, nil
}

// LoadTicks reads a quote file with Time, Bid and Ask columns. A Ticker
// column is optional when defaultTicker is set
func LoadTicks(path, defaultTicker string) ([]*ticker.Tick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	resp, err := ReadTicks(f, defaultTicker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return resp, nil
}

// ReadTicks parses quote data from a reader
func ReadTicks(r io.Reader, defaultTicker string) ([]*ticker.Tick, error) {
	required := []string{"time", "bid", "ask"}
	if defaultTicker == "" {
		required = append(required, "ticker")
	}
	rows, cols, err := readAll(r, required)
	if err != nil {
		return nil, err
	}
	resp := make([]*ticker.Tick, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		tt, err := parseTime(row[cols["time"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		name := defaultTicker
		if idx, ok := cols["ticker"]; ok && strings.TrimSpace(row[idx]) != "" {
			name = strings.TrimSpace(row[idx])
		}
		bid, err := decimal.NewFromString(strings.TrimSpace(row[cols["bid"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d bid: %w", line, err)
		}
		ask, err := decimal.NewFromString(strings.TrimSpace(row[cols["ask"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d ask: %w", line, err)
		}
		resp = append(resp, &ticker.Tick{
			Base: event.Base{Time: tt, Ticker: name},
			Bid:  bid,
			Ask:  ask,
		})
	}
	return resp, nil
}

func readAll(r io.Reader, required []string) (rows [][]string, cols map[string]int, err error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errNoRows
		}
		return nil, nil, err
	}
	cols = make(map[string]int, len(header))
	for i := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))] = i
	}
	for i := range required {
		if _, ok := cols[required[i]]; !ok {
			return nil, nil, fmt.Errorf("%w '%s'", errMissingColumn, required[i])
		}
	}
	rows, err = reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, errNoRows
	}
	return rows, cols, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for i := range timeFormats {
		if tt, err := time.Parse(timeFormats[i], s); err == nil {
			return tt.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w '%s'", errUnparsableTime, s)
}
