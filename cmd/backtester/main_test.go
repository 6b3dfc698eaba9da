package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/buyandhold"
	"github.com/thrasher-corp/eventbacktester/eventhandlers/strategies/movingaveragecross"
	"github.com/urfave/cli/v2"
)

func newTestApp(w *bytes.Buffer) *cli.App {
	app := cli.NewApp()
	app.Writer = w
	app.Commands = []*cli.Command{runCommand, strategiesCommand}
	return app
}

func TestListStrategies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestApp(&buf).Run([]string{"backtester", "strategies"}))
	assert.Contains(t, buf.String(), buyandhold.Name)
	assert.Contains(t, buf.String(), movingaveragecross.Name)
}

func TestRunBacktest(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	err := newTestApp(&buf).Run([]string{
		"backtester", "run",
		"--configpath", filepath.Join("..", "..", "config", "examples", "movingaveragecross.yaml"),
		"--reportpath", dir,
	})
	require.NoError(t, err)
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3, "json, csv and html should be written")

	err = newTestApp(&buf).Run([]string{"backtester", "run", "--configpath", filepath.Join(dir, "missing.json")})
	assert.Error(t, err)
}
