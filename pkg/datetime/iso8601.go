package datetime

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// <date>[T<time>][<offset>] where date is YYYY[-]MM[-]DD, time is
// hh[[:]mm[[:]ss[(.|,)fraction]]] and offset is Z or ±hh[[:]mm]. Both '-'
// and U+2212 are accepted as minus.
var iso8601Pattern = regexp.MustCompile(`^` +
	`(?P<year>\d{4})[-−]?(?P<month>\d{2})[-−]?(?P<day>\d{2})` +
	`(?:T(?P<hour>\d{2})(?::?(?P<minute>\d{2})(?::?(?P<second>\d{2})(?:[.,](?P<fraction>\d+))?)?)?)?` +
	`(?P<offset>(?P<sign>[-−+])(?P<offhour>\d{2})(?::?(?P<offminute>\d{2}))?|Z)?` +
	`$`)

type isoParts struct {
	year, month, day     int
	hour, minute, second int
	fraction             decimal.Decimal
	hasOffset            bool
	offset               int
}

func parseISOParts(s string) (isoParts, error) {
	m := iso8601Pattern.FindStringSubmatch(s)
	if m == nil {
		return isoParts{}, apperror.InvalidArgument("iso8601", "malformed timestamp "+strconv.Quote(s))
	}
	group := func(name string) string {
		return m[iso8601Pattern.SubexpIndex(name)]
	}
	num := func(name string) int {
		n, _ := strconv.Atoi(group(name))
		return n
	}

	p := isoParts{
		year:     num("year"),
		month:    num("month"),
		day:      num("day"),
		hour:     num("hour"),
		minute:   num("minute"),
		second:   num("second"),
		fraction: decimal.Zero,
	}
	if f := group("fraction"); f != "" {
		d, err := decimal.NewFromString("0." + f)
		if err != nil {
			return isoParts{}, apperror.InvalidArgument("iso8601", "malformed fraction "+strconv.Quote(f))
		}
		p.fraction = d
	}
	if group("offset") != "" {
		p.hasOffset = true
		p.offset = 3600*num("offhour") + 60*num("offminute")
		if sign := group("sign"); sign != "" && sign != "+" {
			p.offset = -p.offset
		}
	}
	return p, nil
}

// ParseISO8601 reads an ISO 8601 timestamp such as 2019-08-27T01:02:03+02:00
// or 20190827T010203Z. Without an offset the fields are read in Local.
// With an offset the instant is computed in UTC, then shown in Local when
// Local has that same offset at that instant. Hour 24 is midnight of the
// next day, second 60 is read as 59 and fractions of a second are dropped.
func (c *Calendar) ParseISO8601(s string) (DateTime, error) {
	dt, _, err := c.ParseISO8601Detail(s)
	return dt, err
}

// ParseISO8601Detail is ParseISO8601 that also returns the dropped fraction
// of a second.
func (c *Calendar) ParseISO8601Detail(s string) (DateTime, decimal.Decimal, error) {
	p, err := parseISOParts(s)
	if err != nil {
		return DateTime{}, decimal.Zero, err
	}

	wc := wallclock.Local
	if p.hasOffset {
		wc = wallclock.UTC
	}
	nextDay := false
	if p.hour == 24 {
		p.hour = 0
		nextDay = true
	}
	if p.second == 60 {
		p.second = 59
	}

	dt, err := c.New(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, In(wc))
	if err != nil {
		return DateTime{}, decimal.Zero, err
	}
	if nextDay {
		if dt, err = dt.AddDays(1); err != nil {
			return DateTime{}, decimal.Zero, apperror.AsInvalidArgument(err)
		}
	}
	if !p.hasOffset {
		return dt, p.fraction, nil
	}

	if dt, err = dt.AddSeconds(-int64(p.offset)); err != nil {
		return DateTime{}, decimal.Zero, apperror.AsInvalidArgument(err)
	}
	local, err := dt.ChangeTo(wallclock.Local)
	if err == nil && local.offset == p.offset {
		return local, p.fraction, nil
	}
	return dt, p.fraction, nil
}

// ParseISO8601Date reads the date of an ISO 8601 timestamp and returns it
// as midnight UTC. The date must exist in Local.
func (c *Calendar) ParseISO8601Date(s string) (DateTime, error) {
	dt, err := c.ParseISO8601(s)
	if err != nil {
		return DateTime{}, err
	}
	return c.NewDate(dt.year, dt.month, dt.day)
}
