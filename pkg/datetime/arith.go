package datetime

import (
	"math"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
)

// Largest day and month counts that can keep a value inside the year range.
const (
	maxDays   = 366 * (int64(MaxYear) - int64(MinYear) + 1)
	maxMonths = 12 * (int64(MaxYear) - int64(MinYear) + 1)
)

// AddSeconds moves dt by n real seconds. Adding 3600 always advances one
// hour of elapsed time, whatever the wall-clock shows.
func (dt DateTime) AddSeconds(n int64) (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	if (n > 0 && dt.unix > math.MaxInt64-n) || (n < 0 && dt.unix < math.MinInt64-n) {
		return DateTime{}, apperror.Overflow("instant out of range")
	}
	return dt.Calendar().fromUnix(dt.unix+n, dt.wc)
}

// AddMinutes moves dt by n real minutes.
func (dt DateTime) AddMinutes(n int64) (DateTime, error) {
	if n > math.MaxInt64/60 || n < math.MinInt64/60 {
		return DateTime{}, apperror.Overflow("instant out of range")
	}
	return dt.AddSeconds(60 * n)
}

// AddHours moves dt by n real hours.
func (dt DateTime) AddHours(n int64) (DateTime, error) {
	if n > math.MaxInt64/3600 || n < math.MinInt64/3600 {
		return DateTime{}, apperror.Overflow("instant out of range")
	}
	return dt.AddSeconds(3600 * n)
}

// AddDays returns the same wall-clock time n calendar days later. Across a
// transition the elapsed time is 23 or 25 hours; a result inside a gap is
// moved forward.
func (dt DateTime) AddDays(n int) (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	if int64(n) > maxDays || int64(n) < -maxDays {
		return DateTime{}, apperror.Overflow("day count out of range")
	}

	f := dt.fields()
	f.Day += n
	return dt.renormalize(f)
}

// AddMonths returns the same day and time n months later. A day missing
// from the target month is clamped to its last day, so January 31 plus one
// month is the end of February.
func (dt DateTime) AddMonths(n int) (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	if int64(n) > maxMonths || int64(n) < -maxMonths {
		return DateTime{}, apperror.Overflow("month count out of range")
	}

	f := dt.fields()
	f.Month += n
	r, err := dt.renormalize(f)
	if err != nil {
		return DateTime{}, err
	}
	if r.day != dt.day {
		f = r.fields()
		f.Day = 0
		return dt.renormalize(f)
	}
	return r, nil
}

// AddYears is AddMonths(12 * n).
func (dt DateTime) AddYears(n int) (DateTime, error) {
	if int64(n) > maxMonths/12 || int64(n) < -maxMonths/12 {
		return DateTime{}, apperror.Overflow("year count out of range")
	}
	return dt.AddMonths(12 * n)
}

// TrimTime returns midnight of the same day.
func (dt DateTime) TrimTime() (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	f := dt.fields()
	f.Hour, f.Minute, f.Second = 0, 0, 0
	return dt.renormalize(f)
}

// StartOfMonth returns midnight of the first day of the month.
func (dt DateTime) StartOfMonth() (DateTime, error) {
	return dt.withDate(dt.year, int(dt.month), 1, 0, 0, 0)
}

// EndOfMonth returns 23:59:59 on the last day of the month.
func (dt DateTime) EndOfMonth() (DateTime, error) {
	return dt.withDate(dt.year, int(dt.month)+1, 0, 23, 59, 59)
}

// StartOfYear returns midnight of January 1.
func (dt DateTime) StartOfYear() (DateTime, error) {
	return dt.withDate(dt.year, 1, 1, 0, 0, 0)
}

// EndOfYear returns 23:59:59 on December 31.
func (dt DateTime) EndOfYear() (DateTime, error) {
	return dt.withDate(dt.year, 12, 31, 23, 59, 59)
}

func (dt DateTime) withDate(year, month, day, hour, minute, second int) (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	return dt.renormalize(tzhost.Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second})
}

// renormalize reinterprets f in the wall-clock of dt with the daylight flag
// left to the zone rules.
func (dt DateTime) renormalize(f tzhost.Fields) (DateTime, error) {
	r, err := dt.Calendar().normalize(f, dt.wc, DSTUnresolved)
	if err != nil {
		return DateTime{}, err
	}
	return r, nil
}
