package wallclock

import (
	"fmt"
	"sync"

	"github.com/wealthpath/calendar/internal/apperror"
)

const (
	// DefaultCapacity is the number of named wall-clocks a registry holds.
	DefaultCapacity = 2000
	// MaxNameLength bounds the length of a registered name.
	MaxNameLength = 200
)

// Registry interns timezone names into stable WallClock identities. Slots are
// never moved; Invalidate clears a slot so that a later registration can
// reuse it. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	names    []string
	capacity int

	// OnChange, when set, receives the occupied slot count after every
	// insertion or invalidation.
	OnChange func(occupied int)
	// OnExhausted, when set, is called for each refused registration.
	OnExhausted func(name string)
}

// NewRegistry creates a registry holding at most capacity names. A
// non-positive capacity selects DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{capacity: capacity}
}

// Cap returns the maximum number of names.
func (r *Registry) Cap() int {
	return r.capacity
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupiedLocked()
}

// Resolve maps name to its WallClock. "UTC" always yields the UTC sentinel
// and never touches the table. When name is absent it is registered if
// insert is true; otherwise Undefined is returned with a nil error. When
// the table is full, or name is too long to store, Resolve degrades to
// System and reports ErrResourceExhausted.
func (r *Registry) Resolve(name string, insert bool) (WallClock, error) {
	if name == "UTC" {
		return UTC, nil
	}
	if name == "" {
		return Undefined, apperror.InvalidArgument("wallclock", "name must not be empty")
	}

	r.mu.Lock()
	wc, occupied, err := r.resolveLocked(name, insert)
	r.mu.Unlock()

	if err != nil {
		if r.OnExhausted != nil {
			r.OnExhausted(name)
		}
		return wc, err
	}
	if occupied >= 0 && r.OnChange != nil {
		r.OnChange(occupied)
	}
	return wc, nil
}

// Lookup returns the WallClock registered for name, or Undefined.
func (r *Registry) Lookup(name string) WallClock {
	wc, _ := r.Resolve(name, false)
	return wc
}

// resolveLocked returns the occupied count when a slot was written, -1
// otherwise.
func (r *Registry) resolveLocked(name string, insert bool) (WallClock, int, error) {
	free := -1
	for i, n := range r.names {
		if n == name {
			return WallClock{kind: kindNamed, slot: i, reg: r}, -1, nil
		}
		if n == "" && free < 0 {
			free = i
		}
	}
	if !insert {
		return Undefined, -1, nil
	}

	if len(name) >= MaxNameLength {
		return System, -1, apperror.ResourceExhausted(
			fmt.Sprintf("wall-clock name longer than %d bytes", MaxNameLength-1))
	}

	switch {
	case free >= 0:
		r.names[free] = name
	case len(r.names) < r.capacity:
		free = len(r.names)
		r.names = append(r.names, name)
	default:
		return System, -1, apperror.ResourceExhausted(
			fmt.Sprintf("wall-clock registry full (%d entries)", r.capacity))
	}
	return WallClock{kind: kindNamed, slot: free, reg: r}, r.occupiedLocked(), nil
}

// Invalidate clears the slot holding name. Unknown names are ignored.
func (r *Registry) Invalidate(name string) {
	if name == "" {
		return
	}

	r.mu.Lock()
	occupied := -1
	for i, n := range r.names {
		if n == name {
			r.names[i] = ""
			occupied = r.occupiedLocked()
			break
		}
	}
	r.mu.Unlock()

	if occupied >= 0 && r.OnChange != nil {
		r.OnChange(occupied)
	}
}

// Names returns the registered names in slot order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.names))
	for _, n := range r.names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func (r *Registry) nameAt(slot int) string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot >= len(r.names) {
		return ""
	}
	return r.names[slot]
}

func (r *Registry) occupiedLocked() int {
	n := 0
	for _, name := range r.names {
		if name != "" {
			n++
		}
	}
	return n
}
