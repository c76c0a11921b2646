// Package datetime provides calendar date-time values bound to a wall-clock.
//
// A DateTime holds broken-down civil fields (year through second) together
// with the wall-clock they are expressed in. Values are created and
// manipulated through a Calendar, which owns the wall-clock registry, the
// Local wall-clock selection and the critical section guarding the process
// TZ variable. Conversions in UTC never enter that section.
package datetime

import (
	"math"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// Errors reported by this package. Use errors.Is to classify failures.
var (
	ErrInvalidArgument     = apperror.ErrInvalidArgument
	ErrOverflow            = apperror.ErrOverflow
	ErrResourceExhausted   = apperror.ErrResourceExhausted
	ErrEnvironmentRejected = apperror.ErrEnvironmentRejected
)

// Supported year range.
const (
	MinYear = math.MinInt32 + 1900
	MaxYear = math.MaxInt32 - 1
)

// Weekday numbers days ISO style, Monday = 1 through Sunday = 7.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(invalid)"
	}
	return d.Time().String()
}

// Valid reports whether d is in 1..7.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Time converts d to a time.Weekday.
func (d Weekday) Time() time.Weekday {
	return time.Weekday(d % 7)
}

// WeekdayOf converts a time.Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d)+6)%7 + 1)
}

// DST is the daylight saving flag of a value.
type DST int8

const (
	DSTUnresolved DST = -1
	DSTOff        DST = 0
	DSTOn         DST = 1
)

func (d DST) hint() tzhost.DSTHint {
	return tzhost.DSTHint(d)
}

// Precedence chooses between the two occurrences of an ambiguous local time.
type Precedence int

const (
	// STOverDST prefers standard time inside a fall-back overlap.
	STOverDST Precedence = iota
	// DSTOverST prefers daylight saving time inside a fall-back overlap.
	DSTOverST
)

func (p Precedence) valid() bool {
	return p == STOverDST || p == DSTOverST
}

func (p Precedence) String() string {
	switch p {
	case STOverDST:
		return "st-over-dst"
	case DSTOverST:
		return "dst-over-st"
	default:
		return "invalid"
	}
}

// ParsePrecedence maps "st-over-dst" and "dst-over-st" to a Precedence. The
// empty string selects STOverDST.
func ParsePrecedence(s string) (Precedence, error) {
	switch s {
	case "", "st-over-dst":
		return STOverDST, nil
	case "dst-over-st":
		return DSTOverST, nil
	default:
		return 0, apperror.InvalidArgument("precedence", "must be st-over-dst or dst-over-st")
	}
}

// DateTime is a normalized calendar date-time in a wall-clock. The zero
// value is invalid; every operation on it fails with ErrInvalidArgument.
type DateTime struct {
	year    int
	month   time.Month
	day     int
	hour    int
	minute  int
	second  int
	weekday Weekday
	yearDay int
	offset  int
	dst     DST
	abbrev  string
	unix    int64

	wc  wallclock.WallClock
	cal *Calendar
}

// IsZero reports whether dt is the zero value.
func (dt DateTime) IsZero() bool {
	return dt.wc.IsUndefined()
}

func (dt DateTime) Year() int            { return dt.year }
func (dt DateTime) Month() time.Month    { return dt.month }
func (dt DateTime) Day() int             { return dt.day }
func (dt DateTime) Hour() int            { return dt.hour }
func (dt DateTime) Minute() int          { return dt.minute }
func (dt DateTime) Second() int          { return dt.second }
func (dt DateTime) Weekday() Weekday     { return dt.weekday }
func (dt DateTime) YearDay() int         { return dt.yearDay }
func (dt DateTime) UTCOffset() int       { return dt.offset }
func (dt DateTime) IsDST() bool          { return dt.dst == DSTOn }
func (dt DateTime) Abbreviation() string { return dt.abbrev }

// WallClock returns the wall-clock dt is expressed in.
func (dt DateTime) WallClock() wallclock.WallClock {
	return dt.wc
}

// Calendar returns the calendar that produced dt.
func (dt DateTime) Calendar() *Calendar {
	if dt.cal == nil {
		return Default()
	}
	return dt.cal
}

// SecondsOfDay returns the seconds elapsed since midnight of the same day
// in the same wall-clock. On a day starting with a transition this differs
// from 3600*hour + 60*minute + second.
func (dt DateTime) SecondsOfDay() (int, error) {
	if err := dt.check(); err != nil {
		return 0, err
	}
	midnight, err := dt.Calendar().New(dt.year, dt.month, dt.day, 0, 0, 0, In(dt.wc))
	if err != nil {
		return 0, err
	}
	return int(dt.unix - midnight.unix), nil
}

// Time returns dt as a time.Time in the location of its wall-clock.
func (dt DateTime) Time() time.Time {
	t := time.Unix(dt.unix, 0)
	if dt.wc.IsUTC() {
		return t.UTC()
	}
	if loc, err := dt.Calendar().Location(dt.wc); err == nil {
		return t.In(loc)
	}
	return t.In(time.FixedZone(dt.abbrev, dt.offset))
}

func (dt DateTime) fields() tzhost.Fields {
	return tzhost.Fields{
		Year:   dt.year,
		Month:  int(dt.month),
		Day:    dt.day,
		Hour:   dt.hour,
		Minute: dt.minute,
		Second: dt.second,
	}
}

func (dt DateTime) check() error {
	if dt.IsZero() {
		return apperror.InvalidArgument("datetime", "value is not initialized")
	}
	return nil
}

func sameFields(a, b tzhost.Fields) bool {
	return a == b
}
