package report

const (
	createRunTable = `CREATE TABLE IF NOT EXISTS ` + runTable + ` (
	id                   VARCHAR(36) PRIMARY KEY NOT NULL,
	nickname             TEXT NOT NULL,
	strategy             TEXT NOT NULL,
	date_started         TIMESTAMP NOT NULL,
	date_ended           TIMESTAMP NOT NULL,
	initial_equity       TEXT NOT NULL,
	final_equity         TEXT NOT NULL,
	max_drawdown         TEXT NOT NULL,
	max_drawdown_pct     DOUBLE PRECISION NOT NULL,
	sharpe               DOUBLE PRECISION NOT NULL,
	sortino              DOUBLE PRECISION NOT NULL,
	cagr                 DOUBLE PRECISION NOT NULL,
	total_return_pct     DOUBLE PRECISION NOT NULL
);`

	createEquityTable = `CREATE TABLE IF NOT EXISTS ` + equityTable + ` (
	run_id    VARCHAR(36) NOT NULL REFERENCES ` + runTable + `(id),
	seq       INTEGER NOT NULL,
	time      TIMESTAMP NOT NULL,
	equity    TEXT NOT NULL,
	drawdown  TEXT NOT NULL,
	PRIMARY KEY (run_id, seq)
);`

	insertRun = `INSERT INTO ` + runTable + ` (id, nickname, strategy, date_started, date_ended,
	initial_equity, final_equity, max_drawdown, max_drawdown_pct, sharpe, sortino, cagr, total_return_pct)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertEquity = `INSERT INTO ` + equityTable + ` (run_id, seq, time, equity, drawdown) VALUES (?, ?, ?, ?, ?)`
)
