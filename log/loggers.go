package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Info takes a pointer subLogger struct and string and writes at info level
func Info(sl *SubLogger, data string) {
	stage(sl, logrus.InfoLevel, data)
}

// Infoln takes a pointer subLogger struct and interface and writes at info level
func Infoln(sl *SubLogger, v ...interface{}) {
	stage(sl, logrus.InfoLevel, fmt.Sprint(v...))
}

// Infof takes a pointer subLogger struct, string and interface formats and writes at info level
func Infof(sl *SubLogger, data string, v ...interface{}) {
	stage(sl, logrus.InfoLevel, fmt.Sprintf(data, v...))
}

// Debug takes a pointer subLogger struct and string and writes at debug level
func Debug(sl *SubLogger, data string) {
	stage(sl, logrus.DebugLevel, data)
}

// Debugln takes a pointer subLogger struct and interface and writes at debug level
func Debugln(sl *SubLogger, v ...interface{}) {
	stage(sl, logrus.DebugLevel, fmt.Sprint(v...))
}

// Debugf takes a pointer subLogger struct, string and interface formats and writes at debug level
func Debugf(sl *SubLogger, data string, v ...interface{}) {
	stage(sl, logrus.DebugLevel, fmt.Sprintf(data, v...))
}

// Warn takes a pointer subLogger struct & string and writes at warn level
func Warn(sl *SubLogger, data string) {
	stage(sl, logrus.WarnLevel, data)
}

// Warnln takes a pointer subLogger struct & interface and writes at warn level
func Warnln(sl *SubLogger, v ...interface{}) {
	stage(sl, logrus.WarnLevel, fmt.Sprint(v...))
}

// Warnf takes a pointer subLogger struct, string and interface formats and writes at warn level
func Warnf(sl *SubLogger, data string, v ...interface{}) {
	stage(sl, logrus.WarnLevel, fmt.Sprintf(data, v...))
}

// Error takes a pointer subLogger struct & string and writes at error level
func Error(sl *SubLogger, data string) {
	stage(sl, logrus.ErrorLevel, data)
}

// Errorln takes a pointer subLogger struct & interface and writes at error level
func Errorln(sl *SubLogger, v ...interface{}) {
	stage(sl, logrus.ErrorLevel, fmt.Sprint(v...))
}

// Errorf takes a pointer subLogger struct, string and interface formats and writes at error level
func Errorf(sl *SubLogger, data string, v ...interface{}) {
	stage(sl, logrus.ErrorLevel, fmt.Sprintf(data, v...))
}

// WithFields allows the user to add fields to a structured log output
func WithFields(sl *SubLogger, fields map[string]interface{}) *logrus.Entry {
	mu.RLock()
	defer mu.RUnlock()
	if sl == nil {
		return logrus.NewEntry(base)
	}
	return sl.entry.WithFields(fields)
}

func stage(sl *SubLogger, level logrus.Level, data string) {
	mu.RLock()
	defer mu.RUnlock()
	if entry := sl.enabledFor(level); entry != nil {
		entry.Log(level, data)
	}
}
