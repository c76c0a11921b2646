// Package tzhost is the boundary to the host calendar service: it resolves
// the zone selected by the TZ environment variable and converts between
// civil fields and absolute instants in that zone.
package tzhost

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrUnknownZone is returned when a timezone value cannot be interpreted.
var ErrUnknownZone = errors.New("unknown timezone")

// Fields are civil date-time fields. Out-of-range values are normalized,
// so that October 40 becomes November 9.
type Fields struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Broken is a normalized civil date-time together with the zone facts in
// force at that instant.
type Broken struct {
	Fields
	Weekday time.Weekday
	YearDay int // 1..366
	Offset  int // seconds east of UTC
	DST     bool
	Abbrev  string
}

// DSTHint tells MakeTime which regime the fields are expressed in.
type DSTHint int8

const (
	HintAuto     DSTHint = -1
	HintStandard DSTHint = 0
	HintDaylight DSTHint = 1
)

// Loader resolves a zone name to a location.
type Loader func(name string) (*time.Location, error)

// Option configures a Host.
type Option func(*Host)

// WithSystemLocation overrides the zone used while the variable is unset.
func WithSystemLocation(loc *time.Location) Option {
	return func(h *Host) {
		if loc != nil {
			h.system = loc
		}
	}
}

// WithLoader overrides how zone names are loaded.
func WithLoader(fn Loader) Option {
	return func(h *Host) {
		if fn != nil {
			h.loader = fn
		}
	}
}

// Host emulates the C library time conversion primitives on top of the Go
// runtime zone database. Activate, Active, MakeTime and LocalTime share the
// active zone and must be serialized by the caller; Load, Flush and System
// are safe for concurrent use.
type Host struct {
	env    Environment
	system *time.Location
	loader Loader

	mu    sync.RWMutex
	cache map[string]*time.Location

	active *time.Location
}

// New creates a Host reading the timezone from env.
func New(env Environment, opts ...Option) *Host {
	h := &Host{
		env:    env,
		system: time.Local,
		loader: time.LoadLocation,
		cache:  make(map[string]*time.Location),
	}
	for _, opt := range opts {
		opt(h)
	}

	// time.Local is initialized lazily from TZ. Force it now, before any
	// critical section rewrites the variable.
	_, _ = time.Now().In(h.system).Zone()
	h.active = h.system
	return h
}

// Env returns the environment the host reads.
func (h *Host) Env() Environment {
	return h.env
}

// System returns the zone used while the variable is unset.
func (h *Host) System() *time.Location {
	return h.system
}

// Activate re-reads the environment and makes the selected zone active,
// like tzset. On failure the active zone is left unchanged.
func (h *Host) Activate() error {
	value, ok := h.env.Lookup()
	if !ok {
		h.active = h.system
		return nil
	}

	loc, err := h.Load(value)
	if err != nil {
		return err
	}
	h.active = loc
	return nil
}

// Active returns the zone selected by the last successful Activate.
func (h *Host) Active() *time.Location {
	return h.active
}

// Load resolves a TZ value: "" and "UTC" are UTC, a leading ':' is ignored,
// IANA names are loaded from the zone database and anything else is tried
// as a POSIX TZ string. Results are cached until Flush.
func (h *Host) Load(value string) (*time.Location, error) {
	name := strings.TrimPrefix(value, ":")
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}

	h.mu.RLock()
	loc, ok := h.cache[name]
	h.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := h.loader(name)
	if err != nil {
		zone, perr := ParsePOSIX(name)
		if perr != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
		}
		if loc, err = zone.Location(); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
		}
	}

	h.mu.Lock()
	h.cache[name] = loc
	h.mu.Unlock()
	return loc, nil
}

// Flush drops every cached zone and returns how many were dropped.
func (h *Host) Flush() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.cache)
	h.cache = make(map[string]*time.Location)
	return n
}

// Cached returns the number of cached zones.
func (h *Host) Cached() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.cache)
}

// MakeTime interprets f in the active zone, like mktime.
func (h *Host) MakeTime(f Fields, hint DSTHint) (int64, Broken) {
	return MakeTime(h.active, f, hint)
}

// LocalTime breaks unix down in the active zone, like localtime_r.
func (h *Host) LocalTime(unix int64) Broken {
	return BreakDown(unix, h.active)
}

// UTCTime breaks unix down in UTC, like gmtime_r.
func UTCTime(unix int64) Broken {
	return BreakDown(unix, time.UTC)
}

// TimeGM interprets f as UTC, like timegm.
func TimeGM(f Fields) int64 {
	return f.naive()
}

// BreakDown returns the civil fields of unix in loc.
func BreakDown(unix int64, loc *time.Location) Broken {
	t := time.Unix(unix, 0).In(loc)
	abbrev, offset := t.Zone()
	return Broken{
		Fields: Fields{
			Year:   t.Year(),
			Month:  int(t.Month()),
			Day:    t.Day(),
			Hour:   t.Hour(),
			Minute: t.Minute(),
			Second: t.Second(),
		},
		Weekday: t.Weekday(),
		YearDay: t.YearDay(),
		Offset:  offset,
		DST:     t.IsDST(),
		Abbrev:  abbrev,
	}
}

func (f Fields) naive() int64 {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Minute, f.Second, 0, time.UTC).Unix()
}
