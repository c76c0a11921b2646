package datetime

import (
	"fmt"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// Dates are DateTime values at midnight UTC.

// NewDate returns midnight UTC of the given day.
func (c *Calendar) NewDate(year int, month time.Month, day int) (DateTime, error) {
	return c.New(year, month, day, 0, 0, 0, In(wallclock.UTC))
}

// TodayDate returns the current day as seen in wc, as a date.
func (c *Calendar) TodayDate(wc wallclock.WallClock) (DateTime, error) {
	now, err := c.Now(In(wc))
	if err != nil {
		return DateTime{}, err
	}
	return c.NewDate(now.year, now.month, now.day)
}

// DateBinary encodes the date of dt as 366*year + yearDay - 1. The encoding
// preserves order but leaves holes after non-leap years.
func (dt DateTime) DateBinary() int64 {
	return 366*int64(dt.year) + int64(dt.yearDay) - 1
}

// DateFromBinary decodes a value produced by DateBinary.
func (c *Calendar) DateFromBinary(n int64) (DateTime, error) {
	year, rem := n/366, n%366
	if rem < 0 {
		year, rem = year-1, rem+366
	}
	if year < MinYear || year > MaxYear {
		return DateTime{}, apperror.InvalidArgument("binary", fmt.Sprintf("date %d out of range", n))
	}
	dt, err := c.NewDate(int(year), time.January, 1)
	if err != nil {
		return DateTime{}, err
	}
	return dt.AddDays(int(rem))
}
