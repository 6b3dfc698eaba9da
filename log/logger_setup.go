package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var errUnhandledOutputWriter = errors.New("unhandled output writer")

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Settings {
	return Settings{
		Enabled: true,
		Level:   "info",
		Output:  "console",
	}
}

func getWriter(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stdout", "console":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	return nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, output)
}

// SetupGlobalLogger applies settings to the shared logrus instance and every
// registered sub logger
func SetupGlobalLogger(s *Settings) error {
	if s == nil {
		d := GenDefaultSettings()
		s = &d
	}
	w, err := getWriter(s.Output)
	if err != nil {
		return err
	}
	lvl := logrus.InfoLevel
	if s.Level != "" {
		lvl, err = logrus.ParseLevel(s.Level)
		if err != nil {
			return err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	base.SetOutput(w)
	base.SetLevel(logrus.TraceLevel)
	if s.JSON {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			ForceColors:     s.Colours,
			DisableColors:   !s.Colours,
		})
	}
	for _, sl := range subLoggers {
		sl.enabled = s.Enabled
		sl.level = lvl
	}
	for i := range s.SubLoggers {
		sl, err := getSubLogger(s.SubLoggers[i].Name)
		if err != nil {
			return err
		}
		sl.enabled = s.Enabled && s.SubLoggers[i].Enabled
		if s.SubLoggers[i].Level == "" {
			continue
		}
		sl.level, err = logrus.ParseLevel(s.SubLoggers[i].Level)
		if err != nil {
			return fmt.Errorf("%s: %w", sl.name, err)
		}
	}
	return nil
}

// SetOutput redirects all log output, used by tests and the report writer
func SetOutput(w io.Writer) {
	mu.Lock()
	base.SetOutput(w)
	mu.Unlock()
}
