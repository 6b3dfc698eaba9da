package csv

import "errors"

var (
	errMissingColumn  = errors.New("missing required column")
	errUnparsableTime = errors.New("cannot parse time")
	errNoRows         = errors.New("file contains no rows")
	errEmptyTicker    = errors.New("ticker cannot be empty")
)

// timeFormats are tried in order when parsing the time column
var timeFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.000",
	"02.01.2006 15:04:05.000",
	"02.01.2006 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
}
