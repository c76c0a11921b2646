package datetime

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/metrics"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// Calendar is the service handle behind every DateTime operation. It owns
// the wall-clock registry, the Local selection and the TZ critical section.
// A Calendar is safe for concurrent use.
type Calendar struct {
	registry *wallclock.Registry
	host     *tzhost.Host
	section  *section

	// Guarded by localMu. Acquired after section.mu when both are held.
	localMu sync.RWMutex
	local   wallclock.WallClock

	locale  *Locale
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type options struct {
	env      tzhost.Environment
	hostOpts []tzhost.Option
	owner    bool
	capacity int
	locale   *Locale
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

// Option configures a Calendar.
type Option func(*options)

// WithEnvironment sets the TZ side channel. Defaults to the process TZ
// variable.
func WithEnvironment(env tzhost.Environment) Option {
	return func(o *options) { o.env = env }
}

// WithSystemLocation sets the zone used for the System wall-clock.
func WithSystemLocation(loc *time.Location) Option {
	return func(o *options) { o.hostOpts = append(o.hostOpts, tzhost.WithSystemLocation(loc)) }
}

// WithZoneLoader overrides how zone names are loaded.
func WithZoneLoader(fn tzhost.Loader) Option {
	return func(o *options) { o.hostOpts = append(o.hostOpts, tzhost.WithLoader(fn)) }
}

// WithExclusiveTZOwner declares that nothing else in the process reads or
// writes TZ. The critical section then leaves TZ set to the last zone used
// instead of restoring it. Unsafe unless the declaration holds.
func WithExclusiveTZOwner() Option {
	return func(o *options) { o.owner = true }
}

// WithRegistryCapacity bounds the number of named wall-clocks.
func WithRegistryCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLocale selects the locale used for date and time strings.
func WithLocale(l *Locale) Option {
	return func(o *options) { o.locale = l }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics enables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithClock overrides the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewCalendar creates a Calendar.
func NewCalendar(opts ...Option) *Calendar {
	o := options{
		capacity: wallclock.DefaultCapacity,
		locale:   LocaleC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.env == nil {
		o.env = tzhost.NewProcessEnv()
	}
	if o.logger == nil {
		o.logger = logger.Logger()
	}

	registry := wallclock.NewRegistry(o.capacity)
	registry.OnChange = o.metrics.SetRegistryEntries
	registry.OnExhausted = func(name string) {
		o.metrics.IncrementRegistryExhausted()
		o.logger.Warn("wall-clock registry exhausted, using System", "name", name, "capacity", registry.Cap())
	}

	host := tzhost.New(o.env, o.hostOpts...)

	return &Calendar{
		registry: registry,
		host:     host,
		section: &section{
			host:     host,
			registry: registry,
			owner:    o.owner,
			logger:   o.logger,
			metrics:  o.metrics,
		},
		locale:  o.locale,
		logger:  o.logger,
		metrics: o.metrics,
		now:     o.now,
	}
}

var defaultCalendar = sync.OnceValue(func() *Calendar {
	return NewCalendar()
})

// Default returns the process-wide Calendar bound to the TZ variable of the
// current process.
func Default() *Calendar {
	return defaultCalendar()
}

// Registry returns the wall-clock registry.
func (c *Calendar) Registry() *wallclock.Registry {
	return c.registry
}

// Locale returns the locale used for strings.
func (c *Calendar) Locale() *Locale {
	return c.locale
}

// FlushZones drops cached zone rules so they are reloaded on next use.
func (c *Calendar) FlushZones() int {
	n := c.host.Flush()
	c.metrics.ObserveZoneCacheFlush(n)
	return n
}

// WallClock interns name. A full registry yields System together with
// ErrResourceExhausted; callers may keep the degraded value.
func (c *Calendar) WallClock(name string) (wallclock.WallClock, error) {
	return c.registry.Resolve(name, true)
}

// Location returns the *time.Location of wc. Local and Unchanged are
// resolved first; Unchanged has nothing to resolve against and fails.
func (c *Calendar) Location(wc wallclock.WallClock) (*time.Location, error) {
	wc, err := c.canonical(wc, wallclock.Undefined)
	if err != nil {
		return nil, err
	}
	switch {
	case wc.IsUTC():
		return time.UTC, nil
	case wc.IsSystem():
		return c.host.System(), nil
	default:
		loc, err := c.host.Load(wc.Name())
		if err != nil {
			return nil, apperror.AsInvalidArgument(apperror.EnvironmentRejected(wc.Name()))
		}
		return loc, nil
	}
}

// SetLocal selects the zone named name as the Local wall-clock. When the
// registry is full the selection degrades to System and
// ErrResourceExhausted is still reported.
func (c *Calendar) SetLocal(name string) error {
	wc, err := c.registry.Resolve(name, true)
	if err != nil && !isExhausted(err) {
		return err
	}
	if serr := c.SetLocalWallClock(wc); serr != nil {
		return serr
	}
	return err
}

// SetLocalWallClock selects wc as the Local wall-clock. Local and Unchanged
// are no-ops. The zone is activated once inside the critical section to
// check that the host accepts it; a rejected name is removed from the
// registry and reported as both ErrInvalidArgument and
// ErrEnvironmentRejected, like every other use of a rejected zone.
func (c *Calendar) SetLocalWallClock(wc wallclock.WallClock) error {
	switch {
	case wc.IsLocal(), wc.IsUnchanged():
		return nil
	case wc.IsUndefined():
		return apperror.InvalidArgument("wallclock", "undefined wall-clock")
	}

	wc, err := c.adopt(wc)
	if err != nil {
		return err
	}

	store := func(*tzhost.Host) error {
		c.localMu.Lock()
		c.local = wc
		c.localMu.Unlock()
		return nil
	}

	if wc.IsUTC() {
		return store(nil)
	}
	if err := c.section.run(wc, store); err != nil {
		return err
	}
	c.logger.Debug("local wall-clock changed", "wallclock", wc.String())
	return nil
}

// Local returns the current Local wall-clock: UTC, a named wall-clock, or
// System when none was selected.
func (c *Calendar) Local() wallclock.WallClock {
	c.localMu.RLock()
	defer c.localMu.RUnlock()
	if c.local.IsUndefined() {
		return wallclock.System
	}
	return c.local
}

// IsLocal reports whether wc is the current Local wall-clock.
func (c *Calendar) IsLocal(wc wallclock.WallClock) bool {
	if wc.IsLocal() {
		return true
	}
	wc, err := c.adopt(wc)
	if err != nil {
		return false
	}
	return wc == c.Local()
}

// IsLocalName reports whether name designates the current Local
// wall-clock. Unregistered names are never local.
func (c *Calendar) IsLocalName(name string) bool {
	wc, err := c.registry.Resolve(name, false)
	if err != nil || wc.IsUndefined() {
		return false
	}
	return wc == c.Local()
}

// canonical maps Local and Unchanged to concrete wall-clocks. current is
// what Unchanged stands for.
func (c *Calendar) canonical(wc, current wallclock.WallClock) (wallclock.WallClock, error) {
	if wc.IsUnchanged() {
		wc = current
	}
	if wc.IsLocal() {
		return c.Local(), nil
	}
	if wc.IsUndefined() || wc.IsUnchanged() {
		return wallclock.Undefined, apperror.InvalidArgument("wallclock", "no wall-clock to resolve against")
	}
	return c.adopt(wc)
}

// adopt re-interns named wall-clocks issued by another registry.
func (c *Calendar) adopt(wc wallclock.WallClock) (wallclock.WallClock, error) {
	if !wc.IsNamed() {
		return wc, nil
	}
	name := wc.Name()
	if name == "" {
		return wallclock.Undefined, apperror.InvalidArgument("wallclock", "wall-clock was invalidated")
	}
	if wc.BelongsTo(c.registry) {
		return wc, nil
	}
	wc, err := c.registry.Resolve(name, true)
	if err != nil && !isExhausted(err) {
		return wallclock.Undefined, err
	}
	return wc, nil
}

func isExhausted(err error) bool {
	return errors.Is(err, ErrResourceExhausted)
}
