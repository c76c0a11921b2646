package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/calendar/internal/logger"
)

type fakeRefresher struct {
	calls atomic.Int32
	n     int
	block chan struct{}
}

func (f *fakeRefresher) FlushZones() int {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.n
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "0 3 * * *", cfg.Schedule)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.Enabled)
}

func TestScheduler_RunNow(t *testing.T) {
	r := &fakeRefresher{n: 3}
	s := New(DefaultConfig(), r, logger.Discard())

	assert.True(t, s.GetLastRunTime().IsZero())
	assert.Equal(t, 3, s.RunNow())
	assert.Equal(t, int32(1), r.calls.Load())
	assert.False(t, s.GetLastRunTime().IsZero())
}

func TestScheduler_RunNowTimeout(t *testing.T) {
	r := &fakeRefresher{n: 3, block: make(chan struct{})}
	defer close(r.block)

	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	s := New(cfg, r, logger.Discard())

	assert.Zero(t, s.RunNow())
	assert.True(t, s.GetLastRunTime().IsZero())
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(DefaultConfig(), &fakeRefresher{}, logger.Discard())

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.False(t, s.GetNextRunTime().IsZero())

	ctx := s.Stop()
	<-ctx.Done()
}

func TestScheduler_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	s := New(cfg, &fakeRefresher{}, logger.Discard())

	require.NoError(t, s.Start())
	assert.False(t, s.IsRunning())
	assert.True(t, s.GetNextRunTime().IsZero())
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schedule = "not a schedule"
	s := New(cfg, &fakeRefresher{}, logger.Discard())

	assert.Error(t, s.Start())
}
