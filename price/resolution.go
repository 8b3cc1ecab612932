package price

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ResolutionUnit is the calendar unit of a candle period.
type ResolutionUnit int

const (
	UnitSecond ResolutionUnit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
)

// Resolution is the period of one candle.
type Resolution struct {
	Unit ResolutionUnit
	N    int
}

func Seconds() Resolution       { return Resolution{Unit: UnitSecond, N: 1} }
func Minutes(n int) Resolution  { return Resolution{Unit: UnitMinute, N: n} }
func Hours(n int) Resolution    { return Resolution{Unit: UnitHour, N: n} }
func Daily() Resolution         { return Resolution{Unit: UnitDay, N: 1} }
func Weekly() Resolution        { return Resolution{Unit: UnitWeek, N: 1} }
func Monthly() Resolution       { return Resolution{Unit: UnitMonth, N: 1} }

// ParseResolution turns "1s", "10m", "4h", "1d", "1w" or "1M" into a
// candle period.
func ParseResolution(s string) (Resolution, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 1 {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}

	switch s[len(s)-1] {
	case 's':
		return Resolution{Unit: UnitSecond, N: n}, nil
	case 'm':
		return Minutes(n), nil
	case 'h':
		return Hours(n), nil
	case 'd':
		return Resolution{Unit: UnitDay, N: n}, nil
	case 'w':
		return Resolution{Unit: UnitWeek, N: n}, nil
	case 'M':
		return Resolution{Unit: UnitMonth, N: n}, nil
	}

	return Resolution{}, fmt.Errorf("invalid resolution %q", s)
}

// Duration returns the fixed length of one period. Months have no fixed
// length and report ok false.
func (r Resolution) Duration() (time.Duration, bool) {
	switch r.Unit {
	case UnitSecond:
		return time.Duration(r.N) * time.Second, true
	case UnitMinute:
		return time.Duration(r.N) * time.Minute, true
	case UnitHour:
		return time.Duration(r.N) * time.Hour, true
	case UnitDay:
		return time.Duration(r.N) * 24 * time.Hour, true
	case UnitWeek:
		return time.Duration(r.N) * 7 * 24 * time.Hour, true
	}

	return 0, false
}

// AddTo advances a timestamp by one resolution period. Month arithmetic is
// calendar aware: the year rolls when the month overflows and the day is
// clamped to the length of the target month.
func (r Resolution) AddTo(t time.Time) time.Time {
	switch r.Unit {
	case UnitSecond:
		return t.Add(time.Duration(r.N) * time.Second)
	case UnitMinute:
		return t.Add(time.Duration(r.N) * time.Minute)
	case UnitHour:
		return t.Add(time.Duration(r.N) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, r.N)
	case UnitWeek:
		return t.AddDate(0, 0, 7*r.N)
	case UnitMonth:
		return addMonths(t, r.N)
	}

	return t
}

func addMonths(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) + n

	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
