package datetime

import (
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

type buildOptions struct {
	wc         wallclock.WallClock
	name       string
	byName     bool
	precedence Precedence
}

// BuildOption configures how fields are interpreted.
type BuildOption func(*buildOptions)

// In interprets fields in wc.
func In(wc wallclock.WallClock) BuildOption {
	return func(o *buildOptions) {
		o.wc = wc
		o.name, o.byName = "", false
	}
}

// InZone interprets fields in the zone called name, registering it if
// needed. "UTC" selects the UTC wall-clock.
func InZone(name string) BuildOption {
	return func(o *buildOptions) { o.name, o.byName = name, true }
}

// Prefer selects the occurrence kept for an ambiguous local time.
func Prefer(p Precedence) BuildOption {
	return func(o *buildOptions) { o.precedence = p }
}

func collect(def wallclock.WallClock, opts []BuildOption) buildOptions {
	o := buildOptions{wc: def, precedence: STOverDST}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// target resolves the wall-clock selected by o. current is what Unchanged
// refers to.
func (c *Calendar) target(o buildOptions, current wallclock.WallClock) (wallclock.WallClock, error) {
	wc := o.wc
	if o.byName {
		var err error
		wc, err = c.registry.Resolve(o.name, true)
		if err != nil && !isExhausted(err) {
			return wallclock.Undefined, err
		}
	}
	return c.canonical(wc, current)
}

// New builds a DateTime from fields. The wall-clock defaults to Local and
// the precedence to STOverDST. Fields that do not exist in the wall-clock,
// such as a time skipped by a spring-forward transition or February 30,
// fail with ErrInvalidArgument.
func (c *Calendar) New(year int, month time.Month, day, hour, minute, second int, opts ...BuildOption) (DateTime, error) {
	var dt DateTime
	if err := c.set(&dt, year, month, day, hour, minute, second, collect(wallclock.Local, opts)); err != nil {
		return DateTime{}, err
	}
	return dt, nil
}

// Set replaces the fields of dt. The wall-clock defaults to Unchanged. On
// failure dt is left untouched.
func (dt *DateTime) Set(year int, month time.Month, day, hour, minute, second int, opts ...BuildOption) error {
	return dt.Calendar().set(dt, year, month, day, hour, minute, second, collect(wallclock.Unchanged, opts))
}

func (c *Calendar) set(dt *DateTime, year int, month time.Month, day, hour, minute, second int, o buildOptions) error {
	if year < MinYear || year > MaxYear {
		return apperror.InvalidArgument("year", "out of range")
	}
	wc, err := c.target(o, dt.wc)
	if err != nil {
		return err
	}

	f := tzhost.Fields{Year: year, Month: int(month), Day: day, Hour: hour, Minute: minute, Second: second}
	n, err := c.construct(f, wc, o.precedence)
	if err != nil {
		return err
	}
	*dt = n
	return nil
}

// Now returns the current instant, in Local unless an option says
// otherwise.
func (c *Calendar) Now(opts ...BuildOption) (DateTime, error) {
	wc, err := c.target(collect(wallclock.Local, opts), wallclock.Undefined)
	if err != nil {
		return DateTime{}, err
	}
	return c.fromUnix(c.now().Unix(), wc)
}

// Today returns midnight of the current day. A midnight skipped by a
// transition resolves to the first valid time of the day.
func (c *Calendar) Today(opts ...BuildOption) (DateTime, error) {
	now, err := c.Now(opts...)
	if err != nil {
		return DateTime{}, err
	}
	return now.TrimTime()
}

// FromBinary returns the instant unix (seconds since 1970-01-01T00:00:00Z)
// expressed in wc.
func (c *Calendar) FromBinary(unix int64, wc wallclock.WallClock) (DateTime, error) {
	wc, err := c.canonical(wc, wallclock.Undefined)
	if err != nil {
		return DateTime{}, err
	}
	return c.fromUnix(unix, wc)
}

// FromTime returns the instant of t expressed in wc. Sub-second precision
// is dropped.
func (c *Calendar) FromTime(t time.Time, wc wallclock.WallClock) (DateTime, error) {
	return c.FromBinary(t.Unix(), wc)
}

// ToBinary returns the instant of dt in seconds since the epoch.
func (dt DateTime) ToBinary() int64 {
	return dt.unix
}

// ChangeTo returns the same instant expressed in wc.
func (dt DateTime) ChangeTo(wc wallclock.WallClock) (DateTime, error) {
	if err := dt.check(); err != nil {
		return DateTime{}, err
	}
	c := dt.Calendar()
	wc, err := c.canonical(wc, dt.wc)
	if err != nil {
		return DateTime{}, err
	}
	if wc == dt.wc {
		return dt, nil
	}
	return c.fromUnix(dt.unix, wc)
}

// IsDefinedIn reports whether dt is expressed in wc.
func (dt DateTime) IsDefinedIn(wc wallclock.WallClock) bool {
	if dt.IsZero() {
		return false
	}
	wc, err := dt.Calendar().canonical(wc, dt.wc)
	return err == nil && wc == dt.wc
}

// IsLocal reports whether dt is expressed in the current Local wall-clock.
func (dt DateTime) IsLocal() bool {
	return !dt.IsZero() && dt.Calendar().IsLocal(dt.wc)
}

// IsUTC reports whether dt is expressed in UTC.
func (dt DateTime) IsUTC() bool {
	return dt.wc.IsUTC()
}
