package datetime

import (
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// ISOWeek returns the ISO 8601 week number of dt, 1 through 53. Week 1 is
// the week holding the first Thursday of the year.
func (dt DateTime) ISOWeek() int {
	if dt.IsZero() {
		return 0
	}
	week, _ := isoWeek(dt.year, dt.yearDay-1, int(dt.weekday)-1)
	return week
}

// ISOYear returns the ISO 8601 week-numbering year of dt. It differs from
// Year for the first and last few days of some years.
func (dt DateTime) ISOYear() int {
	if dt.IsZero() {
		return 0
	}
	_, year := isoWeek(dt.year, dt.yearDay-1, int(dt.weekday)-1)
	return year
}

// isoWeek applies the Thursday rule. yday is 0-based and wd counts days
// since Monday.
func isoWeek(year, yday, wd int) (week, isoYear int) {
	week = (yday - wd + 10) / 7
	if week == 0 {
		return (yday + yearLength(year-1) - wd + 10) / 7, year - 1
	}
	if week > 52 {
		if next := (yday - yearLength(year) - wd + 10) / 7; next > 0 {
			return next, year + 1
		}
	}
	return week, year
}

// yearLength is the day of year of December 31, as the host's UTC
// conversion reports it.
func yearLength(year int) int {
	return tzhost.UTCTime(tzhost.TimeGM(tzhost.Fields{Year: year, Month: int(time.December), Day: 31, Hour: 12})).YearDay
}

// DaysInYear returns the number of days from January 1 of year to January 1
// of the next year in the Local wall-clock.
func (c *Calendar) DaysInYear(year int) (int, error) {
	if year >= MaxYear {
		return 0, apperror.InvalidArgument("year", "out of range")
	}
	start, err := c.midnight(year, time.January, 1, wallclock.Local)
	if err != nil {
		return 0, err
	}
	stop, err := c.midnight(year+1, time.January, 1, wallclock.Local)
	if err != nil {
		return 0, err
	}
	return DiffCalendarDays(start, stop)
}

// IsLeapYear reports whether year has 366 days.
func (c *Calendar) IsLeapYear(year int) (bool, error) {
	n, err := c.DaysInYear(year)
	return n == 366, err
}

// DaysInMonth returns the length of month in year.
func (c *Calendar) DaysInMonth(year int, month time.Month) (int, error) {
	first, err := c.midnight(year, month, 1, wallclock.Local)
	if err != nil {
		return 0, err
	}
	last, err := first.AddMonths(1)
	if err == nil {
		last, err = last.AddDays(-1)
	}
	if err != nil {
		return 0, apperror.AsInvalidArgument(err)
	}
	return 1 - first.yearDay + last.yearDay, nil
}

// SecondsInDay returns the real length of a day in wc: 86400 except on
// transition days. wc must not be Unchanged.
func (c *Calendar) SecondsInDay(year int, month time.Month, day int, wc wallclock.WallClock) (int, error) {
	if wc.IsUnchanged() {
		return 0, apperror.InvalidArgument("wallclock", "a wall-clock is required")
	}
	start, err := c.midnight(year, month, day, wc)
	if err != nil {
		return 0, err
	}
	stop, err := start.AddDays(1)
	if err != nil {
		return 0, apperror.AsInvalidArgument(err)
	}
	return int(stop.unix - start.unix), nil
}

// FirstWeekdayInMonth returns the day of month of the first dow in month.
func (c *Calendar) FirstWeekdayInMonth(year int, month time.Month, dow Weekday) (int, error) {
	if !dow.Valid() {
		return 0, apperror.InvalidArgument("weekday", "must be between 1 and 7")
	}
	first, err := c.midnight(year, month, 1, wallclock.Local)
	if err != nil {
		return 0, err
	}
	return (int(dow)-int(first.weekday)+7)%7 + 1, nil
}

// LastWeekdayInMonth returns the day of month of the last dow in month.
func (c *Calendar) LastWeekdayInMonth(year int, month time.Month, dow Weekday) (int, error) {
	if !dow.Valid() {
		return 0, apperror.InvalidArgument("weekday", "must be between 1 and 7")
	}
	last, err := c.DaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	date, err := c.midnight(year, month, last, wallclock.Local)
	if err != nil {
		return 0, err
	}
	diff := int(dow) - int(date.weekday)
	if diff > 0 {
		diff -= 7
	}
	return last + diff, nil
}

// FirstWeekdayInISOYear returns the first dow of ISO year isoYear as a day
// of January. The result is below 1 when that day falls in December of the
// previous year: 0 is December 31, -1 December 30.
func (c *Calendar) FirstWeekdayInISOYear(isoYear int, dow Weekday) (int, error) {
	first, err := c.FirstWeekdayInMonth(isoYear, time.January, dow)
	if err != nil {
		return 0, err
	}
	day := first + 7
	date, err := c.midnight(isoYear, time.January, day, wallclock.Local)
	if err != nil {
		return 0, err
	}
	return day + 7 - 7*date.ISOWeek(), nil
}

// WeeksInISOYear returns 52 or 53.
func (c *Calendar) WeeksInISOYear(isoYear int) (int, error) {
	if isoYear >= MaxYear {
		return 0, apperror.InvalidArgument("year", "out of range")
	}
	date, err := c.midnight(isoYear+1, time.January, 4, wallclock.Local)
	if err != nil {
		return 0, err
	}
	if date, err = date.AddDays(-7); err != nil {
		return 0, apperror.AsInvalidArgument(err)
	}
	return date.ISOWeek(), nil
}

func (c *Calendar) midnight(year int, month time.Month, day int, wc wallclock.WallClock) (DateTime, error) {
	dt, err := c.New(year, month, day, 0, 0, 0, In(wc), Prefer(STOverDST))
	if err != nil {
		return DateTime{}, apperror.AsInvalidArgument(err)
	}
	return dt, nil
}
