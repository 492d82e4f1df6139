// Package datetime implements the small set of fixed-format date/time
// parsers the reference csvc17 library ships alongside its CSV core
// (csv_parse_ymd, csv_parse_mdy, csv_parse_time, csv_parse_timestamp,
// csv_parse_timestamptz), for callers that want to interpret cells as
// dates without pulling in a general-purpose time-parsing layer. These
// are plain field extractors over already-unquoted cell bytes; they do
// no locale handling and accept only the exact layouts named below.
package datetime

import (
	"errors"
	"strconv"
)

// ErrMalformed is returned when the input does not match the expected
// fixed layout for the function called.
var ErrMalformed = errors.New("datetime: malformed input")

// Date is a calendar date with no associated time zone.
type Date struct {
	Year, Month, Day int
}

// Time is a time of day with microsecond resolution.
type Time struct {
	Hour, Minute, Second, Micro int
}

// Timestamp combines a Date and a Time.
type Timestamp struct {
	Date
	Time
}

// TimestampTZ is a Timestamp plus an explicit UTC offset, as written in
// the source text (sign, hours, minutes) rather than resolved against
// any time.Location.
type TimestampTZ struct {
	Timestamp
	TZSign          byte
	TZHour, TZMinute int
}

// ParseYMD parses "YYYY-MM-DD".
func ParseYMD(s string) (Date, error) {
	year, rest, ok := takeInt(s, 4)
	if !ok || !consume(&rest, '-') {
		return Date{}, ErrMalformed
	}
	month, rest, ok := takeInt(rest, 2)
	if !ok || !consume(&rest, '-') {
		return Date{}, ErrMalformed
	}
	day, rest, ok := takeInt(rest, 2)
	if !ok || rest != "" {
		return Date{}, ErrMalformed
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseMDY parses "M/D/YYYY" (month and day are one or two digits).
func ParseMDY(s string) (Date, error) {
	month, rest, ok := takeIntUpTo(s, 2)
	if !ok || !consume(&rest, '/') {
		return Date{}, ErrMalformed
	}
	day, rest, ok := takeIntUpTo(rest, 2)
	if !ok || !consume(&rest, '/') {
		return Date{}, ErrMalformed
	}
	year, rest, ok := takeInt(rest, 4)
	if !ok || rest != "" {
		return Date{}, ErrMalformed
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseTime parses "HH:MM:SS[.fraction]". The fractional part may be
// any number of digits; it is truncated or zero-padded to microseconds.
func ParseTime(s string) (Time, error) {
	t, rest, ok := parseTime(s)
	if !ok || rest != "" {
		return Time{}, ErrMalformed
	}
	return t, nil
}

func parseTime(s string) (Time, string, bool) {
	hour, rest, ok := takeInt(s, 2)
	if !ok || !consume(&rest, ':') {
		return Time{}, "", false
	}
	minute, rest, ok := takeInt(rest, 2)
	if !ok || !consume(&rest, ':') {
		return Time{}, "", false
	}
	sec, rest, ok := takeInt(rest, 2)
	if !ok {
		return Time{}, "", false
	}
	micro := 0
	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		digits := 0
		for digits < len(rest) && isDigit(rest[digits]) {
			digits++
		}
		frac := rest[:digits]
		rest = rest[digits:]
		var err error
		micro, err = fracToMicros(frac)
		if err != nil {
			return Time{}, "", false
		}
	}
	return Time{Hour: hour, Minute: minute, Second: sec, Micro: micro}, rest, true
}

// ParseTimestamp parses "YYYY-MM-DD HH:MM:SS[.fraction]".
func ParseTimestamp(s string) (Timestamp, error) {
	date, rest, ok := parseYMDPrefix(s)
	if !ok || !consume(&rest, ' ') {
		return Timestamp{}, ErrMalformed
	}
	t, rest, ok := parseTime(rest)
	if !ok || rest != "" {
		return Timestamp{}, ErrMalformed
	}
	return Timestamp{Date: date, Time: t}, nil
}

// ParseTimestampTZ parses "YYYY-MM-DD HH:MM:SS[.fraction](+|-)HH:MM".
func ParseTimestampTZ(s string) (TimestampTZ, error) {
	date, rest, ok := parseYMDPrefix(s)
	if !ok || !consume(&rest, ' ') {
		return TimestampTZ{}, ErrMalformed
	}
	t, rest, ok := parseTime(rest)
	if !ok || len(rest) == 0 {
		return TimestampTZ{}, ErrMalformed
	}
	sign := rest[0]
	if sign != '+' && sign != '-' {
		return TimestampTZ{}, ErrMalformed
	}
	rest = rest[1:]
	tzHour, rest, ok := takeInt(rest, 2)
	if !ok || !consume(&rest, ':') {
		return TimestampTZ{}, ErrMalformed
	}
	tzMinute, rest, ok := takeInt(rest, 2)
	if !ok || rest != "" {
		return TimestampTZ{}, ErrMalformed
	}
	return TimestampTZ{
		Timestamp: Timestamp{Date: date, Time: t},
		TZSign:    sign,
		TZHour:    tzHour,
		TZMinute:  tzMinute,
	}, nil
}

func parseYMDPrefix(s string) (Date, string, bool) {
	year, rest, ok := takeInt(s, 4)
	if !ok || !consume(&rest, '-') {
		return Date{}, "", false
	}
	month, rest, ok := takeInt(rest, 2)
	if !ok || !consume(&rest, '-') {
		return Date{}, "", false
	}
	day, rest, ok := takeInt(rest, 2)
	if !ok {
		return Date{}, "", false
	}
	return Date{Year: year, Month: month, Day: day}, rest, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// takeInt consumes exactly n digit bytes.
func takeInt(s string, n int) (int, string, bool) {
	if len(s) < n {
		return 0, s, false
	}
	for i := 0; i < n; i++ {
		if !isDigit(s[i]) {
			return 0, s, false
		}
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

// takeIntUpTo consumes 1..max digit bytes, stopping at the first
// non-digit (used for the variable-width month/day fields of M/D/YYYY).
func takeIntUpTo(s string, max int) (int, string, bool) {
	n := 0
	for n < max && n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 {
		return 0, s, false
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false
	}
	return v, s[n:], true
}

func consume(s *string, b byte) bool {
	if len(*s) == 0 || (*s)[0] != b {
		return false
	}
	*s = (*s)[1:]
	return true
}

// fracToMicros normalizes a fractional-seconds digit string (anywhere
// from 1 to many digits) to a 6-digit microsecond count by truncating
// or zero-padding.
func fracToMicros(frac string) (int, error) {
	if frac == "" {
		return 0, nil
	}
	const width = 6
	if len(frac) > width {
		frac = frac[:width]
	}
	v, err := strconv.Atoi(frac)
	if err != nil {
		return 0, err
	}
	for i := len(frac); i < width; i++ {
		v *= 10
	}
	return v, nil
}
