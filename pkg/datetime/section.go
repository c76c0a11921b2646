package datetime

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/metrics"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// section serializes every host conversion that depends on the TZ
// variable. UTC conversions never enter it.
type section struct {
	mu       sync.Mutex
	host     *tzhost.Host
	registry *wallclock.Registry
	owner    bool
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// run activates wc, calls fn and restores the previous TZ value on every
// exit path. fn must not re-enter the section.
func (s *section) run(wc wallclock.WallClock, fn func(h *tzhost.Host) error) error {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.IncrementSection(sectionTarget(wc), time.Since(start))

	restore, err := s.enter(wc)
	if err != nil {
		return err
	}
	defer restore()

	return fn(s.host)
}

// enter writes wc to the environment and activates it. System unsets the
// variable; UTC sets it to the empty string.
func (s *section) enter(wc wallclock.WallClock) (func(), error) {
	env := s.host.Env()
	old, had := env.Lookup()

	value, set := wc.Name(), !wc.IsSystem()
	if wc.IsUTC() {
		value = ""
	}
	if !s.owner || had != set || old != value {
		if err := write(env, value, set); err != nil {
			return nil, apperror.Internal(fmt.Errorf("set TZ: %w", err))
		}
	}

	if err := s.host.Activate(); err != nil {
		name := wc.Name()
		s.registry.Invalidate(name)
		s.metrics.IncrementRejection()
		s.logger.Warn("timezone rejected by host", "wallclock", name, "error", err)
		s.restore(old, had)
		return nil, apperror.AsInvalidArgument(apperror.EnvironmentRejected(name))
	}

	if s.owner {
		return func() {}, nil
	}
	return func() { s.restore(old, had) }, nil
}

func (s *section) restore(old string, had bool) {
	if err := write(s.host.Env(), old, had); err != nil {
		s.logger.Error("failed to restore TZ", "error", err)
	}
	// A previous value the host cannot read leaves the active zone as is.
	_ = s.host.Activate()
}

func write(env tzhost.Environment, value string, set bool) error {
	if !set {
		return env.Unset()
	}
	return env.Set(value)
}

func sectionTarget(wc wallclock.WallClock) string {
	if wc.IsSystem() {
		return "system"
	}
	return "named"
}
