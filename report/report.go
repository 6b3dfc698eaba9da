package report

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/eventbacktester/database"
	"github.com/thrasher-corp/eventbacktester/engine"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/compliance"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/statistics"
	"github.com/thrasher-corp/eventbacktester/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed tpl.gohtml
var reportTemplate string

// New gathers the output of a run into a report
func New(meta engine.RunMetaData, results *statistics.Results, h *holdings.Holdings, c *compliance.Manager) (*Data, error) {
	if results == nil {
		return nil, errNoResults
	}
	if meta.ID.IsNil() {
		return nil, errInvalidMetaData
	}
	d := &Data{
		MetaData:   meta,
		Statistics: results,
	}
	if h != nil {
		for _, p := range h.Positions {
			d.OpenPositions = append(d.OpenPositions, p)
		}
		sort.Slice(d.OpenPositions, func(i, j int) bool {
			return d.OpenPositions[i].Ticker < d.OpenPositions[j].Ticker
		})
		d.ClosedPositions = h.ClosedPositions
	}
	if c != nil {
		d.Trades = c.Snapshots
	}
	return d, nil
}

// Name returns the file name stem for the run
func (d *Data) Name() string {
	nick := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, d.MetaData.Nickname)
	if nick == "" {
		nick = "backtest"
	}
	return nick + "-" + d.MetaData.ID.String()
}

// GenerateReport writes the run as JSON, its equity curve as CSV and a
// summary page as HTML into dir
func (d *Data) GenerateReport(dir string) error {
	if dir == "" {
		return errNoOutputPath
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(dir, d.Name())
	if err := d.writeJSON(base + ".json"); err != nil {
		return err
	}
	if err := d.writeEquityCSV(base + "-equity.csv"); err != nil {
		return err
	}
	if err := d.writeHTML(base + ".html"); err != nil {
		return err
	}
	log.Infof(log.Report, "report written to %v", base)
	return nil
}

func (d *Data) writeJSON(path string) error {
	b, err := json.MarshalIndent(d, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func (d *Data) writeEquityCSV(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	w := csv.NewWriter(f)
	if err = w.Write([]string{"time", "equity", "drawdown", "return"}); err != nil {
		return err
	}
	s := d.Statistics
	for i := range s.Equity {
		row := []string{
			s.Equity[i].Time.UTC().Format(time.RFC3339),
			s.Equity[i].Value.String(),
			"0",
			"0",
		}
		if i < len(s.Drawdowns) {
			row[2] = s.Drawdowns[i].Value.String()
		}
		if i < len(s.Returns) {
			row[3] = strconv.FormatFloat(s.Returns[i], 'f', -1, 64)
		}
		if err = w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (d *Data) writeHTML(path string) (err error) {
	p := message.NewPrinter(language.English)
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"money": func(v fmt.Stringer) string {
			f, _ := strconv.ParseFloat(v.String(), 64)
			return p.Sprintf("%.2f", f)
		},
		"pct": func(f float64) string {
			return p.Sprintf("%.4f%%", f)
		},
		"ratio": func(f float64) string {
			return p.Sprintf("%.4f", f)
		},
		"date": func(t time.Time) string {
			return t.UTC().Format(time.DateTime)
		},
	}).Parse(reportTemplate)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return tmpl.Execute(f, d)
}

// SaveToDatabase stores the run and its equity curve, creating the tables
// when they do not exist
func (d *Data) SaveToDatabase(ctx context.Context, db *database.Instance) error {
	if db == nil || db.SQL == nil {
		return errNilDatabase
	}
	tx, err := db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err = d.save(ctx, db, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Errorf(log.Database, "rollback failed: %v", rollbackErr)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	log.Infof(log.Database, "saved backtest %v with %d equity points", d.MetaData.ID, len(d.Statistics.Equity))
	return nil
}

func (d *Data) save(ctx context.Context, db *database.Instance, tx *sql.Tx) error {
	for _, q := range []string{createRunTable, createEquityTable} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	s := d.Statistics
	_, err := tx.ExecContext(ctx, db.Rebind(insertRun),
		d.MetaData.ID.String(),
		d.MetaData.Nickname,
		d.MetaData.Strategy,
		d.MetaData.DateStarted.UTC(),
		d.MetaData.DateEnded.UTC(),
		s.InitialEquity.String(),
		s.FinalEquity.String(),
		s.MaxDrawdown.String(),
		s.MaxDrawdownPercent,
		s.Sharpe,
		s.Sortino,
		s.CAGR,
		s.TotalReturnPercent)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, db.Rebind(insertEquity))
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i := range s.Equity {
		var drawdown string
		if i < len(s.Drawdowns) {
			drawdown = s.Drawdowns[i].Value.String()
		}
		if _, err = stmt.ExecContext(ctx,
			d.MetaData.ID.String(),
			i,
			s.Equity[i].Time.UTC(),
			s.Equity[i].Value.String(),
			drawdown); err != nil {
			return err
		}
	}
	return nil
}

// PrintSummary logs the headline results of the run
func (d *Data) PrintSummary() {
	p := message.NewPrinter(language.English)
	log.Infof(log.Report, "------------------Backtest %v------------------", d.MetaData.Nickname)
	log.Infof(log.Report, "ID: %v", d.MetaData.ID)
	log.Infof(log.Report, "Strategy: %v", d.MetaData.Strategy)
	log.Infof(log.Report, "Data: %v to %v", d.MetaData.FirstEventTime.Format(time.DateOnly), d.MetaData.LastEventTime.Format(time.DateOnly))
	log.Infof(log.Report, "Run time: %v", d.MetaData.DateEnded.Sub(d.MetaData.DateStarted))
	log.Infof(log.Report, "Open positions: %d, closed positions: %d", len(d.OpenPositions), len(d.ClosedPositions))
	var fills int
	for i := range d.Trades {
		fills += len(d.Trades[i].Orders)
	}
	log.Infof(log.Report, "Fills: %s", p.Sprintf("%d", fills))
	d.Statistics.PrintResults()
}
