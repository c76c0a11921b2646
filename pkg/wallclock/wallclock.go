// Package wallclock provides identities for wall-clocks: the sentinels
// Local, System, UTC, Unchanged and Undefined, and named timezones interned
// in a bounded Registry.
package wallclock

import (
	"github.com/wealthpath/calendar/internal/apperror"
)

// Errors returned by the registry.
var (
	ErrInvalidArgument   = apperror.ErrInvalidArgument
	ErrResourceExhausted = apperror.ErrResourceExhausted
)

type kind uint8

const (
	kindUndefined kind = iota
	kindLocal
	kindSystem
	kindUTC
	kindUnchanged
	kindNamed
)

// WallClock identifies a convention mapping absolute instants to civil
// fields. Values are comparable: two named wall-clocks are equal when they
// refer to the same registry slot. The zero value is Undefined.
type WallClock struct {
	kind kind
	slot int
	reg  *Registry
}

// Sentinels.
var (
	Undefined = WallClock{}
	Local     = WallClock{kind: kindLocal}
	System    = WallClock{kind: kindSystem}
	UTC       = WallClock{kind: kindUTC}
	Unchanged = WallClock{kind: kindUnchanged}
)

func (w WallClock) IsUndefined() bool { return w.kind == kindUndefined }
func (w WallClock) IsLocal() bool     { return w.kind == kindLocal }
func (w WallClock) IsSystem() bool    { return w.kind == kindSystem }
func (w WallClock) IsUTC() bool       { return w.kind == kindUTC }
func (w WallClock) IsUnchanged() bool { return w.kind == kindUnchanged }
func (w WallClock) IsNamed() bool     { return w.kind == kindNamed }

// Name returns the timezone name of a named wall-clock, "UTC" for UTC and
// the empty string for the other sentinels. A slot cleared by Invalidate
// yields the empty string as well.
func (w WallClock) Name() string {
	switch w.kind {
	case kindUTC:
		return "UTC"
	case kindNamed:
		return w.reg.nameAt(w.slot)
	default:
		return ""
	}
}

// BelongsTo reports whether w can be used with r. Sentinels belong to every
// registry.
func (w WallClock) BelongsTo(r *Registry) bool {
	return w.kind != kindNamed || w.reg == r
}

func (w WallClock) String() string {
	switch w.kind {
	case kindLocal:
		return "Local"
	case kindSystem:
		return "System"
	case kindUTC:
		return "UTC"
	case kindUnchanged:
		return "Unchanged"
	case kindNamed:
		return w.Name()
	default:
		return "Undefined"
	}
}
