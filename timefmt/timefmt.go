// Package timefmt renders instants as the fixed-width date and time
// strings used in log lines and log file names.
package timefmt

import (
	"strconv"
	"time"
)

// Delimiters used by the logger
const (
	// DateDelimiter separates year, month and day in log lines
	DateDelimiter = "-"
	// TimeDelimiter separates hours, minutes and seconds in log lines
	TimeDelimiter = ":"
	// FileDateDelimiter is used for daily log file names (YYYYMMDD)
	FileDateDelimiter = ""
)

// Date formats t as YYYY<delim>MM<delim>DD.
func Date(t time.Time, delim string) string {
	buf := make([]byte, 0, 10+2*len(delim))
	buf = appendPadded(buf, t.Year(), 4)
	buf = append(buf, delim...)
	buf = appendPadded(buf, int(t.Month()), 2)
	buf = append(buf, delim...)
	buf = appendPadded(buf, t.Day(), 2)
	return string(buf)
}

// Time formats t as HH<delim>MM<delim>SS on a 24 hour clock.
func Time(t time.Time, delim string) string {
	buf := make([]byte, 0, 6+2*len(delim))
	buf = appendPadded(buf, t.Hour(), 2)
	buf = append(buf, delim...)
	buf = appendPadded(buf, t.Minute(), 2)
	buf = append(buf, delim...)
	buf = appendPadded(buf, t.Second(), 2)
	return string(buf)
}

// Stamp returns the "<date> <time>" pair shown at the start of a log line.
func Stamp(t time.Time) string {
	return Date(t, DateDelimiter) + " " + Time(t, TimeDelimiter)
}

// FileDate returns the date component of a daily log file name.
func FileDate(t time.Time) string {
	return Date(t, FileDateDelimiter)
}

func appendPadded(buf []byte, v, width int) []byte {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}
