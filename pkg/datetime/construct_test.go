package datetime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

func TestNew_Local(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)
	dt := mustNew(t, c, 2012, time.December, 31, 23, 59, 59)

	assert.True(t, dt.IsLocal())
	assert.True(t, dt.IsDefinedIn(wallclock.Local))
	assert.False(t, dt.IsUTC())
	assert.Equal(t, 2012, dt.Year())
	assert.Equal(t, time.December, dt.Month())
	assert.Equal(t, 31, dt.Day())
	assert.Equal(t, 23, dt.Hour())
	assert.Equal(t, 59, dt.Minute())
	assert.Equal(t, 59, dt.Second())
	assert.Equal(t, Monday, dt.Weekday())
	assert.Equal(t, 366, dt.YearDay())
	assert.Equal(t, 3600, dt.UTCOffset())
	assert.False(t, dt.IsDST())
	assert.Equal(t, "CET", dt.Abbreviation())
	assert.Equal(t, "2012-12-31T22:59:59Z", dt.Time().UTC().Format(time.RFC3339))
}

func TestNew_InvalidFields(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		hour   int
		minute int
		second int
		opts   []BuildOption
	}{
		{"spring forward gap", 2016, time.March, 27, 2, 12, 21, nil},
		{"february 30", 2016, time.February, 30, 0, 0, 0, nil},
		{"february 29 of common year", 2001, time.February, 29, 4, 18, 20, nil},
		{"month 13", 2016, 13, 1, 0, 0, 0, nil},
		{"hour 24", 2016, time.May, 1, 24, 0, 0, nil},
		{"second 60", 2016, time.May, 1, 0, 0, 60, nil},
		{"year above range", MaxYear + 1, time.July, 5, 23, 45, 2, nil},
		{"year below range", MinYear - 1, time.July, 5, 23, 45, 2, nil},
		{"unknown precedence", 2001, time.July, 5, 23, 45, 2, []BuildOption{Prefer(Precedence(-1))}},
		{"undefined wall-clock", 2001, time.July, 5, 23, 45, 2, []BuildOption{In(wallclock.Undefined)}},
		{"unchanged wall-clock", 2001, time.July, 5, 23, 45, 2, []BuildOption{In(wallclock.Unchanged)}},
		{"empty zone name", 2001, time.July, 5, 23, 45, 2, []BuildOption{InZone("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := c.New(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.second, tt.opts...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNew_UTCHasNoGap(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	dt := mustNew(t, c, 2016, time.March, 27, 2, 12, 21, In(wallclock.UTC))
	assert.True(t, dt.IsUTC())
	assert.Equal(t, 0, dt.UTCOffset())
	assert.Equal(t, "UTC", dt.Abbreviation())

	dt = mustNew(t, c, 2016, time.October, 30, 2, 22, 21, InZone("UTC"))
	assert.True(t, dt.IsUTC())
	assert.False(t, dt.InDSTOverlap())
}

func TestNew_FoldPrecedence(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	st := mustNew(t, c, 2016, time.October, 30, 2, 22, 21)
	assert.False(t, st.IsDST())
	assert.Equal(t, 3600, st.UTCOffset())
	assert.True(t, st.InDSTOverlap())

	dst := mustNew(t, c, 2016, time.October, 30, 2, 22, 21, Prefer(DSTOverST))
	assert.True(t, dst.IsDST())
	assert.Equal(t, 7200, dst.UTCOffset())
	assert.True(t, dst.InDSTOverlap())

	d, err := DiffSeconds(dst, st)
	require.NoError(t, err)
	assert.Equal(t, int64(3600), d)
	assert.False(t, Equal(st, dst))

	berlin, err := c.WallClock("Europe/Berlin")
	require.NoError(t, err)
	require.NoError(t, c.SetLocalWallClock(berlin))
	assert.False(t, dst.IsLocal())
}

func TestFoldWalkthrough(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	dt := mustNew(t, c, 2002, time.October, 27, 1, 30, 0)
	assert.True(t, dt.IsDST())
	assert.False(t, dt.InDSTOverlap())
	offset := dt.UTCOffset()
	secondsOfDay(t, dt, 3600+1800)

	dt, err := dt.AddSeconds(3600)
	require.NoError(t, err)
	assert.True(t, dt.IsDST())
	assert.True(t, dt.InDSTOverlap())
	assert.Equal(t, 2, dt.Hour())
	assert.Equal(t, offset, dt.UTCOffset())
	secondsOfDay(t, dt, 2*3600+1800)

	dt, err = dt.AddMinutes(60)
	require.NoError(t, err)
	assert.False(t, dt.IsDST())
	assert.True(t, dt.InDSTOverlap())
	assert.Equal(t, 2, dt.Hour())
	assert.Equal(t, offset-3600, dt.UTCOffset())
	secondsOfDay(t, dt, 3*3600+1800)

	dt, err = dt.AddHours(1)
	require.NoError(t, err)
	assert.False(t, dt.IsDST())
	assert.False(t, dt.InDSTOverlap())
	assert.Equal(t, 3, dt.Hour())
	secondsOfDay(t, dt, 4*3600+1800)

	dt, err = dt.AddSeconds(-3600)
	require.NoError(t, err)
	assert.False(t, dt.IsDST())
	assert.True(t, dt.InDSTOverlap())
	assert.Equal(t, 2, dt.Hour())
}

func TestSpringForwardWalkthrough(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	dt := mustNew(t, c, 2016, time.March, 27, 1, 30, 0)
	assert.False(t, dt.IsDST())
	assert.False(t, dt.InDSTOverlap())
	assert.Equal(t, 1, dt.Hour())
	offset := dt.UTCOffset()
	secondsOfDay(t, dt, 3600+1800)

	dt, err := dt.AddMinutes(60)
	require.NoError(t, err)
	assert.True(t, dt.IsDST())
	assert.False(t, dt.InDSTOverlap())
	assert.Equal(t, 3, dt.Hour())
	assert.Equal(t, offset+3600, dt.UTCOffset())
	secondsOfDay(t, dt, 2*3600+1800)
}

func secondsOfDay(t *testing.T, dt DateTime, want int) {
	t.Helper()
	got, err := dt.SecondsOfDay()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSet(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	t.Run("keeps wall-clock", func(t *testing.T) {
		t.Parallel()
		dt := mustNew(t, c, 2016, time.March, 27, 2, 12, 21, In(wallclock.UTC))
		require.NoError(t, dt.Set(2020, time.February, 29, 12, 0, 0))
		assert.True(t, dt.IsUTC())
		assert.Equal(t, 29, dt.Day())
	})

	t.Run("failure leaves value untouched", func(t *testing.T) {
		t.Parallel()
		dt := mustNew(t, c, 2016, time.March, 26, 2, 12, 21)
		before := dt

		assert.ErrorIs(t, dt.Set(2016, time.March, 27, 2, 12, 21), ErrInvalidArgument)
		assert.ErrorIs(t, dt.Set(math.MaxInt32, time.March, 27, 2, 12, 21), ErrInvalidArgument)
		assert.ErrorIs(t, dt.Set(2016, time.March, 20, 2, 12, 21, Prefer(Precedence(7))), ErrInvalidArgument)
		assert.True(t, Equal(before, dt))
	})

	t.Run("moves to another zone", func(t *testing.T) {
		t.Parallel()
		dt := mustNew(t, c, 2016, time.March, 26, 2, 12, 21)
		require.NoError(t, dt.Set(2016, time.March, 27, 2, 12, 21, InZone("Asia/Tokyo")))
		assert.Equal(t, "Asia/Tokyo", dt.WallClock().Name())
		assert.Equal(t, 9*3600, dt.UTCOffset())
	})

	t.Run("zero value needs a wall-clock", func(t *testing.T) {
		t.Parallel()
		dt := DateTime{cal: c}
		assert.ErrorIs(t, dt.Set(2016, time.March, 26, 0, 0, 0), ErrInvalidArgument)
		require.NoError(t, dt.Set(2016, time.March, 26, 0, 0, 0, In(wallclock.Local)))
		assert.True(t, dt.IsLocal())
	})
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var dt DateTime
	assert.True(t, dt.IsZero())
	assert.False(t, dt.IsLocal())
	assert.False(t, dt.InDSTOverlap())
	assert.Equal(t, 0, dt.ISOWeek())
	assert.Equal(t, "", dt.String())

	_, err := dt.AddDays(1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = dt.ChangeTo(wallclock.UTC)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = DiffSeconds(dt, dt)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNowAndToday(t *testing.T) {
	t.Parallel()

	instant := time.Date(2016, time.October, 30, 0, 30, 0, 0, time.UTC)
	c := newCalendar(t, WithClock(func() time.Time { return instant }))

	now, err := c.Now()
	require.NoError(t, err)
	assert.True(t, now.IsLocal())
	assert.Equal(t, 2, now.Hour())
	assert.Equal(t, 30, now.Minute())
	assert.Equal(t, instant.Unix(), now.ToBinary())

	utc, err := c.Now(In(wallclock.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, utc.Hour())

	today, err := c.Today()
	require.NoError(t, err)
	assert.Equal(t, 30, today.Day())
	assert.Equal(t, 0, today.Hour())
	assert.True(t, today.IsDST())

	tokyo, err := c.Today(InZone("Asia/Tokyo"))
	require.NoError(t, err)
	assert.Equal(t, 30, tokyo.Day())
	assert.Equal(t, 9*3600, tokyo.UTCOffset())
}

func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)

	for _, unix := range []int64{0, 1, -1, 1477787541, 1459038741, -62135596800, 253402300799} {
		for _, wc := range []wallclock.WallClock{wallclock.Local, wallclock.UTC} {
			dt, err := c.FromBinary(unix, wc)
			require.NoError(t, err)
			assert.Equal(t, unix, dt.ToBinary())

			again, err := c.FromBinary(dt.ToBinary(), dt.WallClock())
			require.NoError(t, err)
			assert.True(t, Equal(dt, again))
		}
	}

	_, err := c.FromBinary(0, wallclock.Unchanged)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = c.FromBinary(math.MaxInt64, wallclock.UTC)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestFromTime(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)
	tm := time.Date(2021, time.July, 5, 21, 45, 2, 999, time.UTC)

	dt, err := c.FromTime(tm, wallclock.Local)
	require.NoError(t, err)
	assert.Equal(t, 23, dt.Hour())
	assert.Equal(t, tm.Truncate(time.Second).Unix(), dt.Time().Unix())
	assert.Equal(t, "Europe/Rome", dt.Time().Location().String())
}

func TestChangeTo(t *testing.T) {
	t.Parallel()

	c := newCalendar(t)
	dt := mustNew(t, c, 2016, time.October, 30, 2, 22, 21)

	utc, err := dt.ChangeTo(wallclock.UTC)
	require.NoError(t, err)
	assert.True(t, utc.IsUTC())
	assert.Equal(t, 1, utc.Hour())
	assert.Equal(t, dt.ToBinary(), utc.ToBinary())
	assert.False(t, Equal(dt, utc))
	assert.Equal(t, 0, Compare(dt, utc))

	back, err := utc.ChangeTo(wallclock.Local)
	require.NoError(t, err)
	assert.True(t, Equal(dt, back))

	same, err := dt.ChangeTo(wallclock.Unchanged)
	require.NoError(t, err)
	assert.True(t, Equal(dt, same))

	other := NewCalendar(WithEnvironment(tzhost.NewMemoryEnv()), WithLogger(logger.Discard()))
	foreign, err := other.WallClock("Asia/Tokyo")
	require.NoError(t, err)
	tokyo, err := dt.ChangeTo(foreign)
	require.NoError(t, err)
	assert.Equal(t, 10, tokyo.Hour())
	assert.True(t, tokyo.WallClock().BelongsTo(c.Registry()))
}

func TestWeekday(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Monday, WeekdayOf(time.Monday))
	assert.Equal(t, Sunday, WeekdayOf(time.Sunday))
	assert.Equal(t, time.Sunday, Sunday.Time())
	assert.Equal(t, "Wednesday", Wednesday.String())
	assert.False(t, Weekday(8).Valid())
	assert.Equal(t, "Weekday(invalid)", Weekday(0).String())
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	p, err := ParsePrecedence("")
	require.NoError(t, err)
	assert.Equal(t, STOverDST, p)

	p, err = ParsePrecedence("dst-over-st")
	require.NoError(t, err)
	assert.Equal(t, DSTOverST, p)
	assert.Equal(t, "dst-over-st", p.String())

	_, err = ParsePrecedence("summer")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
