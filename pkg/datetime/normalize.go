package datetime

import (
	"fmt"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// Instants outside this window cannot be broken down into a year in
// [MinYear, MaxYear] under any offset.
var (
	minUnix = tzhost.TimeGM(tzhost.Fields{Year: MinYear, Month: 1, Day: 1}) - secondsPerDay
	maxUnix = tzhost.TimeGM(tzhost.Fields{Year: MaxYear + 1, Month: 1, Day: 1}) + secondsPerDay
)

const secondsPerDay = 86400

// normalize interprets f in wc, which must already be canonical.
func (c *Calendar) normalize(f tzhost.Fields, wc wallclock.WallClock, hint DST) (DateTime, error) {
	if f.Year < MinYear-1 || f.Year > MaxYear+1 {
		return DateTime{}, apperror.Overflow(fmt.Sprintf("year %d out of range", f.Year))
	}

	var (
		unix int64
		b    tzhost.Broken
	)
	if wc.IsUTC() {
		c.metrics.IncrementNormalization("utc")
		unix = tzhost.TimeGM(f)
		b = tzhost.UTCTime(unix)
	} else {
		c.metrics.IncrementNormalization("zone")
		err := c.section.run(wc, func(h *tzhost.Host) error {
			unix, b = h.MakeTime(f, hint.hint())
			return nil
		})
		if err != nil {
			return DateTime{}, err
		}
	}
	return c.build(b, unix, wc)
}

// fromUnix breaks unix down in wc, which must already be canonical.
func (c *Calendar) fromUnix(unix int64, wc wallclock.WallClock) (DateTime, error) {
	if unix < minUnix || unix > maxUnix {
		return DateTime{}, apperror.Overflow("instant out of range")
	}

	var b tzhost.Broken
	if wc.IsUTC() {
		b = tzhost.UTCTime(unix)
	} else {
		err := c.section.run(wc, func(h *tzhost.Host) error {
			b = h.LocalTime(unix)
			return nil
		})
		if err != nil {
			return DateTime{}, err
		}
	}
	return c.build(b, unix, wc)
}

func (c *Calendar) build(b tzhost.Broken, unix int64, wc wallclock.WallClock) (DateTime, error) {
	if b.Year < MinYear || b.Year > MaxYear {
		return DateTime{}, apperror.Overflow(fmt.Sprintf("year %d out of range", b.Year))
	}

	dst := DSTOff
	if b.DST {
		dst = DSTOn
	}
	abbrev := b.Abbrev
	if wc.IsUTC() {
		abbrev = "UTC"
	}
	return DateTime{
		year:    b.Year,
		month:   time.Month(b.Month),
		day:     b.Day,
		hour:    b.Hour,
		minute:  b.Minute,
		second:  b.Second,
		weekday: WeekdayOf(b.Weekday),
		yearDay: b.YearDay,
		offset:  b.Offset,
		dst:     dst,
		abbrev:  abbrev,
		unix:    unix,
		wc:      wc,
		cal:     c,
	}, nil
}

// construct normalizes f in wc, applies p inside an overlap and rejects
// fields that do not survive the round trip.
func (c *Calendar) construct(f tzhost.Fields, wc wallclock.WallClock, p Precedence) (DateTime, error) {
	if !p.valid() {
		return DateTime{}, apperror.InvalidArgument("precedence", "unknown precedence policy")
	}

	dt, err := c.normalize(f, wc, DSTUnresolved)
	if err != nil {
		return DateTime{}, err
	}
	if dt, err = c.prefer(dt, p); err != nil {
		return DateTime{}, err
	}
	if !sameFields(dt.fields(), f) {
		return DateTime{}, apperror.InvalidArgument("datetime",
			fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d does not exist in %s",
				f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, wc))
	}
	return dt, nil
}

// prefer moves dt to the other occurrence of its fields when dt lies in a
// fall-back overlap and p asks for the other regime.
func (c *Calendar) prefer(dt DateTime, p Precedence) (DateTime, error) {
	if dt.wc.IsUTC() {
		return dt, nil
	}
	switch p {
	case DSTOverST:
		if c.extraWinterTime(dt) {
			return c.normalize(dt.fields(), dt.wc, DSTOn)
		}
	case STOverDST:
		if c.extraSummerTime(dt) {
			return c.normalize(dt.fields(), dt.wc, DSTOff)
		}
	default:
		return DateTime{}, apperror.InvalidArgument("precedence", "unknown precedence policy")
	}
	return dt, nil
}

// extraSummerTime reports whether dt is the daylight occurrence of a
// repeated local time.
func (c *Calendar) extraSummerTime(dt DateTime) bool {
	if dt.wc.IsUTC() || dt.dst != DSTOn {
		return false
	}
	other, err := c.normalize(dt.fields(), dt.wc, DSTOff)
	return err == nil && other.dst == DSTOff && sameFields(other.fields(), dt.fields())
}

// extraWinterTime reports whether dt is the standard occurrence of a
// repeated local time.
func (c *Calendar) extraWinterTime(dt DateTime) bool {
	if dt.wc.IsUTC() || dt.dst != DSTOff {
		return false
	}
	other, err := c.normalize(dt.fields(), dt.wc, DSTOn)
	return err == nil && other.dst == DSTOn && sameFields(other.fields(), dt.fields())
}

// InDSTOverlap reports whether the wall-clock fields of dt occur twice
// because of a fall-back transition.
func (dt DateTime) InDSTOverlap() bool {
	if dt.IsZero() {
		return false
	}
	c := dt.Calendar()
	return c.extraSummerTime(dt) || c.extraWinterTime(dt)
}
