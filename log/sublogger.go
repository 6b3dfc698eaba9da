package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	errEmptyLoggerName    = errors.New("cannot have empty logger name")
	errSubLoggerNotFound  = errors.New("sub logger not found")
	errSubLoggerDuplicate = errors.New("sub logger already registered")
)

func init() {
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	Global = registerNewSubLogger("LOG")
	Backtester = registerNewSubLogger("BACKTESTER")
	Setup = registerNewSubLogger("SETUP")
	Strategy = registerNewSubLogger("STRATEGY")
	Portfolio = registerNewSubLogger("PORTFOLIO")
	Exchange = registerNewSubLogger("EXCHANGE")
	Statistics = registerNewSubLogger("STATISTICS")
	Report = registerNewSubLogger("REPORT")
	Config = registerNewSubLogger("CONFIG")
	Database = registerNewSubLogger("DATABASE")
}

func registerNewSubLogger(name string) *SubLogger {
	sl, err := NewSubLogger(name)
	if err != nil {
		panic(err)
	}
	return sl
}

// NewSubLogger allows for a new sub logger to be registered
func NewSubLogger(name string) (*SubLogger, error) {
	if name == "" {
		return nil, errEmptyLoggerName
	}
	name = strings.ToUpper(name)
	mu.Lock()
	defer mu.Unlock()
	if _, ok := subLoggers[name]; ok {
		return nil, fmt.Errorf("%w: %s", errSubLoggerDuplicate, name)
	}
	sl := &SubLogger{
		name:    name,
		enabled: true,
		level:   logrus.InfoLevel,
		entry:   base.WithField(subLoggerField, name),
	}
	subLoggers[name] = sl
	return sl, nil
}

// Name returns the name of the sub logger
func (sl *SubLogger) Name() string {
	if sl == nil {
		return ""
	}
	return sl.name
}

// SetEnabled turns a sub logger on or off
func (sl *SubLogger) SetEnabled(enabled bool) {
	mu.Lock()
	sl.enabled = enabled
	mu.Unlock()
}

// SetLevel sets the minimum level a sub logger will output
func (sl *SubLogger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	sl.level = lvl
	mu.Unlock()
	return nil
}

// enabledFor returns the entry to write to when the sub logger allows the level
func (sl *SubLogger) enabledFor(level logrus.Level) *logrus.Entry {
	if sl == nil {
		return nil
	}
	if !sl.enabled || level > sl.level {
		return nil
	}
	return sl.entry
}

func getSubLogger(name string) (*SubLogger, error) {
	sl, ok := subLoggers[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errSubLoggerNotFound, name)
	}
	return sl, nil
}
