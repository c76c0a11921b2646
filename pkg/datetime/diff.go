package datetime

import (
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
)

// DiffSeconds returns the real seconds elapsed from start to stop. The two
// values may use different wall-clocks.
func DiffSeconds(start, stop DateTime) (int64, error) {
	if err := checkBoth(start, stop); err != nil {
		return 0, err
	}
	return stop.unix - start.unix, nil
}

// DiffMinutes returns the whole real minutes from start to stop.
func DiffMinutes(start, stop DateTime) (int64, error) {
	s, err := DiffSeconds(start, stop)
	return s / 60, err
}

// DiffHours returns the whole real hours from start to stop.
func DiffHours(start, stop DateTime) (int64, error) {
	s, err := DiffSeconds(start, stop)
	return s / 3600, err
}

// DiffCalendarDays counts the day boundaries between start and stop,
// ignoring the time of day. Each full year in between contributes the day
// of year of its December 31 in the common wall-clock.
func DiffCalendarDays(start, stop DateTime) (int, error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, err
	}

	sign := 1
	if stop.year < start.year {
		start, stop = stop, start
		sign = -1
	}
	days := stop.yearDay - start.yearDay
	for y := start.year; y < stop.year; y++ {
		dec31, err := start.cal.normalize(tzhost.Fields{Year: y, Month: int(time.December), Day: 31, Hour: 12}, start.wc, DSTUnresolved)
		if err != nil {
			return 0, err
		}
		days += dec31.yearDay
	}
	return sign * days, nil
}

// DiffDays returns the whole days elapsed from start to stop and the
// remaining seconds. A day is a calendar day in the common wall-clock, so
// it may last 23 or 25 hours.
func DiffDays(start, stop DateTime) (days int, seconds int64, err error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, 0, err
	}

	sign := 1
	if stop.unix < start.unix {
		start, stop = stop, start
		sign = -1
	}

	days, err = DiffCalendarDays(start, stop)
	if err != nil {
		return 0, 0, err
	}
	if timeOfDayBefore(stop, start) && days > 0 {
		days--
	}

	moved := start
	if days != 0 {
		if moved, err = start.AddDays(days); err != nil {
			return 0, 0, err
		}
		if moved, err = sameOccurrence(moved, start); err != nil {
			return 0, 0, err
		}
	}
	return sign * days, int64(sign) * (stop.unix - moved.unix), nil
}

// DiffWeeks returns the whole weeks from start to stop with the remaining
// days and seconds.
func DiffWeeks(start, stop DateTime) (weeks, days int, seconds int64, err error) {
	d, seconds, err := DiffDays(start, stop)
	if err != nil {
		return 0, 0, 0, err
	}
	return d / 7, d % 7, seconds, nil
}

// DiffCalendarMonths counts month boundaries between start and stop.
func DiffCalendarMonths(start, stop DateTime) (int, error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, err
	}
	return 12*(stop.year-start.year) + int(stop.month) - int(start.month), nil
}

// DiffMonths returns the whole months elapsed from start to stop with the
// remaining days and seconds.
func DiffMonths(start, stop DateTime) (months, days int, seconds int64, err error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, 0, 0, err
	}

	sign := 1
	if stop.unix < start.unix {
		start, stop = stop, start
		sign = -1
	}

	months, err = DiffCalendarMonths(start, stop)
	if err != nil {
		return 0, 0, 0, err
	}
	if (stop.day < start.day || (stop.day == start.day && timeOfDayBefore(stop, start))) && months > 0 {
		months--
	}

	moved := start
	if months != 0 {
		if moved, err = start.AddMonths(months); err != nil {
			return 0, 0, 0, err
		}
		if moved, err = sameOccurrence(moved, start); err != nil {
			return 0, 0, 0, err
		}
	}
	days, seconds, err = DiffDays(moved, stop)
	if err != nil {
		return 0, 0, 0, err
	}
	return sign * months, sign * days, int64(sign) * seconds, nil
}

// DiffCalendarYears counts year boundaries between start and stop.
func DiffCalendarYears(start, stop DateTime) (int, error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, err
	}
	return stop.year - start.year, nil
}

// DiffYears returns the whole years elapsed from start to stop with the
// remaining months, days and seconds.
func DiffYears(start, stop DateTime) (years, months, days int, seconds int64, err error) {
	m, days, seconds, err := DiffMonths(start, stop)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return m / 12, m % 12, days, seconds, nil
}

// DiffISOYears returns the difference between the ISO week-numbering years
// of start and stop.
func DiffISOYears(start, stop DateTime) (int, error) {
	if err := sameWallClock(start, stop); err != nil {
		return 0, err
	}
	return stop.ISOYear() - start.ISOYear(), nil
}

// Compare returns -1, 0 or +1 as a is before, at or after b.
func Compare(a, b DateTime) int {
	switch {
	case a.unix < b.unix:
		return -1
	case a.unix > b.unix:
		return 1
	default:
		return 0
	}
}

// Before reports whether dt is strictly before other.
func (dt DateTime) Before(other DateTime) bool { return Compare(dt, other) < 0 }

// After reports whether dt is strictly after other.
func (dt DateTime) After(other DateTime) bool { return Compare(dt, other) > 0 }

// Equal reports whether a and b have the same fields, offset and
// wall-clock. The same instant in two wall-clocks is not Equal.
func Equal(a, b DateTime) bool {
	return a.fields() == b.fields() && a.offset == b.offset && a.wc == b.wc
}

// timeOfDayBefore reports whether the clock reading of a is earlier than
// that of b.
func timeOfDayBefore(a, b DateTime) bool {
	if a.hour != b.hour {
		return a.hour < b.hour
	}
	if a.minute != b.minute {
		return a.minute < b.minute
	}
	return a.second < b.second
}

// sameOccurrence moves dt, when its fields repeat in a fall-back overlap, to
// the occurrence in the regime of like.
func sameOccurrence(dt, like DateTime) (DateTime, error) {
	if dt.dst == like.dst || !dt.InDSTOverlap() {
		return dt, nil
	}
	return dt.cal.normalize(dt.fields(), dt.wc, like.dst)
}

func checkBoth(a, b DateTime) error {
	if err := a.check(); err != nil {
		return err
	}
	return b.check()
}

func sameWallClock(a, b DateTime) error {
	if err := checkBoth(a, b); err != nil {
		return err
	}
	if a.wc != b.wc {
		return apperror.InvalidArgument("wallclock",
			"calendar differences need both values in the same wall-clock, got "+a.wc.String()+" and "+b.wc.String())
	}
	return nil
}
