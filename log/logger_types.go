package log

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	timestampFormat = "02/01/2006 15:04:05"
	subLoggerField  = "sublogger"
)

// Global vars related to the logger package
var (
	subLoggers = map[string]*SubLogger{}

	Global     *SubLogger
	Backtester *SubLogger
	Setup      *SubLogger
	Strategy   *SubLogger
	Portfolio  *SubLogger
	Exchange   *SubLogger
	Statistics *SubLogger
	Report     *SubLogger
	Config     *SubLogger
	Database   *SubLogger

	base = logrus.New()
	mu   sync.RWMutex
)

// Settings holds the configuration for the global logger and its sub loggers
type Settings struct {
	Enabled    bool              `json:"enabled" mapstructure:"enabled"`
	Level      string            `json:"level" mapstructure:"level"`
	Output     string            `json:"output" mapstructure:"output"`
	JSON       bool              `json:"json" mapstructure:"json"`
	Colours    bool              `json:"colours" mapstructure:"colours"`
	SubLoggers []SubLoggerConfig `json:"subloggers,omitempty" mapstructure:"subloggers"`
}

// SubLoggerConfig allows individual sub loggers to be toggled or have a
// different level to the global logger
type SubLoggerConfig struct {
	Name    string `json:"name" mapstructure:"name"`
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Level   string `json:"level,omitempty" mapstructure:"level"`
}

// SubLogger is a named logging channel
type SubLogger struct {
	name    string
	enabled bool
	level   logrus.Level
	entry   *logrus.Entry
}
