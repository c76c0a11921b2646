package tzhost

import (
	"os"
	"sync"
)

// Environment is the process-wide side channel selecting the active
// timezone. Unset selects the system zone; an empty value selects UTC.
type Environment interface {
	Lookup() (string, bool)
	Set(value string) error
	Unset() error
}

// ProcessEnv reads and writes a real environment variable.
type ProcessEnv struct {
	Key string
}

// NewProcessEnv returns the TZ variable of the current process.
func NewProcessEnv() ProcessEnv {
	return ProcessEnv{Key: "TZ"}
}

func (e ProcessEnv) Lookup() (string, bool) {
	return os.LookupEnv(e.Key)
}

func (e ProcessEnv) Set(value string) error {
	return os.Setenv(e.Key, value)
}

func (e ProcessEnv) Unset() error {
	return os.Unsetenv(e.Key)
}

// MemoryEnv keeps the variable in memory. It isolates a calendar from the
// process environment, which tests and embedded uses rely on.
type MemoryEnv struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryEnv returns an unset in-memory variable.
func NewMemoryEnv() *MemoryEnv {
	return &MemoryEnv{}
}

func (e *MemoryEnv) Lookup() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value, e.set
}

func (e *MemoryEnv) Set(value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value, e.set = value, true
	return nil
}

func (e *MemoryEnv) Unset() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value, e.set = "", false
	return nil
}
