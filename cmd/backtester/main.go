package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/thrasher-corp/eventbacktester/config"
	"github.com/thrasher-corp/eventbacktester/database"
	"github.com/thrasher-corp/eventbacktester/engine"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies"
	"github.com/thrasher-corp/eventbacktester/log"
	"github.com/thrasher-corp/eventbacktester/report"
	"github.com/thrasher-corp/eventbacktester/signaler"
	"github.com/urfave/cli/v2"
)

var (
	configPath string
	reportPath string
	verbose    bool
	darkReport bool
)

var runCommand = &cli.Command{
	Name:   "run",
	Usage:  "runs a backtest from a config file",
	Action: runBacktest,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "configpath",
			Aliases:     []string{"c"},
			Value:       filepath.Join("config", "examples", "buyandhold.json"),
			Usage:       "the config containing the strategy, portfolio and data settings",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "reportpath",
			Usage:       "overrides the report output path in the config",
			Destination: &reportPath,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "logs every event at debug level",
			Destination: &verbose,
		},
		&cli.BoolFlag{
			Name:        "darkreport",
			Usage:       "renders the html report with a dark theme",
			Destination: &darkReport,
		},
	},
}

var strategiesCommand = &cli.Command{
	Name:   "strategies",
	Usage:  "lists the strategies available to a config",
	Action: listStrategies,
}

func main() {
	app := cli.NewApp()
	app.Name = "backtester"
	app.Usage = "replays historical market data through a trading strategy"
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		runCommand,
		strategiesCommand,
	}

	ctx, cancel := signaler.WithInterrupt(context.Background())
	defer cancel()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Errorf(log.Global, "%v", err)
		cancel()
		os.Exit(1)
	}
}

func runBacktest(c *cli.Context) error {
	cfg, err := config.ReadConfigFromFile(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogSettings.Enabled = true
		cfg.LogSettings.Level = "debug"
	}
	if err = log.SetupGlobalLogger(&cfg.LogSettings); err != nil {
		return err
	}
	if reportPath != "" {
		cfg.ReportSettings.OutputPath = reportPath
	}
	if darkReport {
		cfg.ReportSettings.DarkMode = true
	}

	bt, err := engine.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	if err = bt.Run(c.Context); err != nil {
		if !errors.Is(err, engine.ErrRunCancelled) {
			return err
		}
		// an interrupted run still reports what it processed
		log.Warnf(log.Backtester, "%v", err)
	}
	res, err := bt.Results()
	if err != nil {
		return err
	}
	p := bt.GetPortfolio()
	rep, err := report.New(res.MetaData, res.Statistics, p.GetHoldings(), p.GetComplianceManager())
	if err != nil {
		return err
	}
	rep.UseDarkTheme = cfg.ReportSettings.DarkMode
	rep.PrintSummary()

	if cfg.ReportSettings.GenerateReport {
		if err = rep.GenerateReport(cfg.ReportSettings.OutputPath); err != nil {
			return err
		}
	}
	if cfg.DatabaseSettings.Enabled {
		// the run context may already be cancelled
		return saveToDatabase(context.Background(), &cfg.DatabaseSettings, rep)
	}
	return nil
}

func saveToDatabase(ctx context.Context, cfg *database.Config, rep *report.Data) error {
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf(log.Database, "could not close database: %v", err)
		}
	}()
	return rep.SaveToDatabase(ctx, db)
}

func listStrategies(c *cli.Context) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISPLAY\tDESCRIPTION")
	for _, s := range strategies.GetStrategies() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name(), strategies.DisplayName(s), s.Description())
	}
	return w.Flush()
}
