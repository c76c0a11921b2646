package datetime

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// SetDateFromString replaces the date of dt with the one written in s and
// keeps its time of day. The calendar locale forms are tried first, then
// YYYY-MM-DD, YYYY−MM−DD and YYYY MM DD. Two-digit years go to the century
// nearest the current year. The wall-clock defaults to Unchanged. On
// failure dt is left untouched.
func (dt *DateTime) SetDateFromString(s string, opts ...BuildOption) error {
	c := dt.Calendar()
	year, month, day, err := c.parseDate(s)
	if err != nil {
		return err
	}
	return c.set(dt, year, month, day, dt.hour, dt.minute, dt.second, collect(wallclock.Unchanged, opts))
}

// SetTimeFromString replaces the time of day of dt with the one written in
// s and keeps its date. The calendar locale forms are tried first, then
// HH:MM:SS, HH MM SS, HH:MM and HH MM; missing seconds read as zero.
func (dt *DateTime) SetTimeFromString(s string, opts ...BuildOption) error {
	c := dt.Calendar()
	t, _, err := parseFirst(s, c.locale.timeLayouts())
	if err != nil {
		return apperror.InvalidArgument("time", "unrecognized time "+strconv.Quote(s))
	}
	return c.set(dt, dt.year, dt.month, dt.day, t.Hour(), t.Minute(), t.Second(), collect(wallclock.Unchanged, opts))
}

// ParseDate reads a date written as SetDateFromString accepts and returns
// it as midnight UTC.
func (c *Calendar) ParseDate(s string) (DateTime, error) {
	year, month, day, err := c.parseDate(s)
	if err != nil {
		return DateTime{}, err
	}
	return c.NewDate(year, month, day)
}

func (c *Calendar) parseDate(s string) (int, time.Month, int, error) {
	t, layout, err := parseFirst(s, c.locale.dateLayouts())
	if err != nil {
		return 0, 0, 0, apperror.InvalidArgument("date", "unrecognized date "+strconv.Quote(s))
	}
	year := t.Year()
	if twoDigitYear(layout) {
		year = windowYear(year%100, c.currentYear())
	}
	return year, t.Month(), t.Day(), nil
}

// parseFirst returns the result of the first layout matching all of s.
func parseFirst(s string, layouts []string) (time.Time, string, error) {
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", err
}

func twoDigitYear(layout string) bool {
	return strings.Contains(strings.ReplaceAll(layout, "2006", ""), "06")
}

// windowYear moves a year in 0..99 to the century nearest current.
func windowYear(yy, current int) int {
	return yy + 100*int(math.Round(float64(current-yy)/100))
}

func (c *Calendar) currentYear() int {
	if now, err := c.Now(); err == nil {
		return now.year
	}
	return c.now().Year()
}
