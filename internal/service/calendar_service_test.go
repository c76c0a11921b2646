package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/datetime"
)

func newTestService(t *testing.T, opts ...datetime.Option) *CalendarService {
	t.Helper()
	base := []datetime.Option{
		datetime.WithEnvironment(tzhost.NewMemoryEnv()),
		datetime.WithLogger(logger.Discard()),
		datetime.WithSystemLocation(time.FixedZone("SYS", -3*3600)),
		datetime.WithClock(func() time.Time { return time.Date(2016, time.October, 30, 0, 30, 0, 0, time.UTC) }),
	}
	cal := datetime.NewCalendar(append(base, opts...)...)
	require.NoError(t, cal.SetLocal("Europe/Rome"))
	return NewCalendarService(cal, 50)
}

func TestCalendarService_Now(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	local, err := s.Now(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2016-10-30T02:30:00+0200", local.ISO8601)
	assert.Equal(t, "Europe/Rome", local.WallClock)
	assert.True(t, local.IsDST)
	assert.True(t, local.InDSTOverlap)
	assert.True(t, local.IsLocal)

	tokyo, err := s.Now(ctx, "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "2016-10-30T09:30:00+0900", tokyo.ISO8601)
	assert.Equal(t, local.Unix, tokyo.Unix)
	assert.False(t, tokyo.IsLocal)

	sys, err := s.Now(ctx, SystemWallClock)
	require.NoError(t, err)
	assert.Equal(t, SystemWallClock, sys.WallClock)
	assert.Equal(t, -3*3600, sys.UTCOffset)

	_, err = s.Now(ctx, "Not/AZone")
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestCalendarService_Parse(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   ParseInput
		want    string
		frac    string
		wantErr bool
	}{
		{
			name:  "iso with fraction",
			input: ParseInput{Text: "20190827T010203.25+0200"},
			want:  "2019-08-27T01:02:03+0200",
			frac:  "0.25",
		},
		{
			name:  "iso re-expressed",
			input: ParseInput{Kind: ParseISO8601, Text: "2019-08-27T01:02:03Z", WallClock: "UTC"},
			want:  "2019-08-27T01:02:03+0000",
		},
		{
			name:  "date",
			input: ParseInput{Kind: ParseDate, Text: "2016-03-01"},
			want:  "2016-03-01T00:00:00+0100",
		},
		{
			name:  "time",
			input: ParseInput{Kind: ParseTime, Text: "14:15", WallClock: "UTC"},
			want:  "2016-10-30T14:15:00+0000",
		},
		{
			name:    "unknown kind",
			input:   ParseInput{Kind: "binary", Text: "1"},
			wantErr: true,
		},
		{
			name:    "bad precedence",
			input:   ParseInput{Text: "2019-08-27", Precedence: "latest"},
			wantErr: true,
		},
		{
			name:    "malformed",
			input:   ParseInput{Text: "27/08/2019"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Parse(ctx, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ISO8601)
			assert.Equal(t, tt.frac, got.Fraction)
		})
	}
}

func TestCalendarService_Make(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	st, err := s.Make(ctx, MakeInput{Year: 2016, Month: 10, Day: 30, Hour: 2, Minute: 22, Second: 21})
	require.NoError(t, err)
	assert.Equal(t, 3600, st.UTCOffset)
	assert.Equal(t, "10/30/16 02:22:21 (UTC+0100)", st.Display)

	dst, err := s.Make(ctx, MakeInput{Year: 2016, Month: 10, Day: 30, Hour: 2, Minute: 22, Second: 21, Precedence: "dst-over-st"})
	require.NoError(t, err)
	assert.Equal(t, 7200, dst.UTCOffset)
	assert.Equal(t, int64(3600), st.Unix-dst.Unix)

	_, err = s.Make(ctx, MakeInput{Year: 2016, Month: 3, Day: 27, Hour: 2, Minute: 30})
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestCalendarService_Add(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		unit   string
		amount int64
		want   string
	}{
		{"hours", 24, "2016-03-28T02:12:21+0200"},
		{"day", 1, "2016-03-28T01:12:21+0200"},
		{"weeks", 1, "2016-04-03T01:12:21+0200"},
		{"months", 1, "2016-04-27T01:12:21+0200"},
		{"years", -1, "2015-03-27T01:12:21+0100"},
		{"seconds", -3600, "2016-03-27T00:12:21+0100"},
		{"minutes", 60, "2016-03-27T03:12:21+0200"},
	}
	for _, tt := range tests {
		got, err := s.Add(ctx, AddInput{Start: "2016-03-27T01:12:21+0100", Unit: tt.unit, Amount: tt.amount})
		require.NoError(t, err, tt.unit)
		assert.Equal(t, tt.want, got.ISO8601, tt.unit)
	}

	_, err := s.Add(ctx, AddInput{Start: "2016-03-27T01:12:21+0100", Unit: "fortnights", Amount: 1})
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
	_, err = s.Add(ctx, AddInput{Start: "2016-03-27T01:12:21+0100", Unit: "years", Amount: 1 << 40})
	assert.ErrorIs(t, err, datetime.ErrOverflow)
}

func TestCalendarService_Diff(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	res, err := s.Diff(ctx, DiffInput{Start: "2016-03-14T09:00:00+0100", Stop: "2016-03-28T09:00:00+0200"})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Rome", res.WallClock)
	assert.Equal(t, int64(335*3600), res.Seconds)
	assert.Equal(t, int64(335), res.Hours)
	assert.Equal(t, "335.0000", res.ExactHours)
	assert.Equal(t, "13.9583", res.ExactDays)
	assert.Equal(t, 14, res.CalendarDays)
	assert.Equal(t, 14, res.Days.Count)
	assert.Zero(t, res.Days.Seconds)
	assert.Equal(t, 2, res.Weeks.Count)
	assert.Equal(t, 0, res.Months.Count)
	assert.Equal(t, 14, res.Months.Days)

	utc, err := s.Diff(ctx, DiffInput{Start: "2016-03-14T09:00:00+0100", Stop: "2016-03-28T09:00:00+0200", WallClock: "UTC"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", utc.WallClock)
	assert.Equal(t, 13, utc.Days.Count)
	assert.Equal(t, int64(23*3600), utc.Days.Seconds)

	back, err := s.Diff(ctx, DiffInput{Start: "2016-03-28T09:00:00+0200", Stop: "2016-03-14T09:00:00+0100"})
	require.NoError(t, err)
	assert.Equal(t, -res.Seconds, back.Seconds)
	assert.Equal(t, "-13.9583", back.ExactDays)
}

func TestCalendarService_Convert(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	zones := []string{"Asia/Tokyo", "UTC", "America/New_York", "", "Europe/Paris", "Australia/Sydney"}
	out, err := s.Convert(ctx, ConvertInput{Instant: "2016-10-30T00:30:00Z", WallClocks: zones})
	require.NoError(t, err)
	require.Len(t, out, len(zones))

	want := []string{
		"2016-10-30T09:30:00+0900",
		"2016-10-30T00:30:00+0000",
		"2016-10-29T20:30:00-0400",
		"2016-10-30T02:30:00+0200",
		"2016-10-30T02:30:00+0200",
		"2016-10-30T11:30:00+1100",
	}
	for i, c := range out {
		assert.Equal(t, zones[i], c.WallClock)
		assert.Equal(t, want[i], c.Moment.ISO8601, zones[i])
	}

	_, err = s.Convert(ctx, ConvertInput{Instant: "2016-10-30T00:30:00Z", WallClocks: []string{"UTC", "Bogus/Zone"}})
	assert.ErrorIs(t, err, datetime.ErrEnvironmentRejected)

	_, err = s.Convert(ctx, ConvertInput{Instant: "2016-10-30T00:30:00Z"})
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestCalendarService_Recurrences(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	got, err := s.Recurrences(ctx, RecurrenceInput{Schedule: "30 9 * * 1", Start: "2016-10-20T00:00:00+0200", Count: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2016-10-24T09:30:00+0200", got[0].ISO8601)
	assert.Equal(t, "2016-10-31T09:30:00+0100", got[1].ISO8601)
	assert.Equal(t, "2016-11-07T09:30:00+0100", got[2].ISO8601)

	tokyo, err := s.Recurrences(ctx, RecurrenceInput{Schedule: "@daily", Start: "2016-10-20T00:00:00Z", WallClock: "Asia/Tokyo", Count: 2})
	require.NoError(t, err)
	require.Len(t, tokyo, 2)
	assert.Equal(t, "2016-10-21T00:00:00+0900", tokyo[0].ISO8601)
	assert.Equal(t, "Asia/Tokyo", tokyo[0].WallClock)

	fromNow, err := s.Recurrences(ctx, RecurrenceInput{Schedule: "0 12 * * *"})
	require.NoError(t, err)
	assert.Len(t, fromNow, DefaultRecurrences)
	assert.Equal(t, "2016-10-30T12:00:00+0100", fromNow[0].ISO8601)

	_, err = s.Recurrences(ctx, RecurrenceInput{Schedule: "every day"})
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
	_, err = s.Recurrences(ctx, RecurrenceInput{Schedule: "@daily", Count: 51})
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestCalendarService_MonthInfo(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	info, err := s.MonthInfo(ctx, 2016, 10)
	require.NoError(t, err)
	assert.Equal(t, "October", info.Name)
	assert.Equal(t, 31, info.Days)
	require.Len(t, info.Weekdays, 7)
	assert.Equal(t, WeekdayDays{Weekday: "Monday", First: 3, Last: 31}, info.Weekdays[0])
	assert.Equal(t, WeekdayDays{Weekday: "Sunday", First: 2, Last: 30}, info.Weekdays[6])
	assert.Equal(t, []DayLength{{Day: 30, Seconds: 25 * 3600}}, info.Transitions)

	_, err = s.MonthInfo(ctx, 2016, 13)
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}

func TestCalendarService_YearInfo(t *testing.T) {
	t.Parallel()

	s := newTestService(t)

	info, err := s.YearInfo(context.Background(), 2004)
	require.NoError(t, err)
	assert.Equal(t, 366, info.Days)
	assert.True(t, info.Leap)
	assert.Equal(t, 53, info.ISOWeeks)
	assert.Equal(t, -2, info.ISOYearStart)
	require.Len(t, info.Months, 12)
	assert.Equal(t, 29, info.Months[1].Days)
	assert.Equal(t, []DayLength{{Day: 28, Seconds: 23 * 3600}}, info.Months[2].Transitions)
}

func TestCalendarService_SecondsInDay(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	n, err := s.SecondsInDay(ctx, 2016, 3, 27, "")
	require.NoError(t, err)
	assert.Equal(t, 23*3600, n)

	n, err = s.SecondsInDay(ctx, 2016, 3, 27, "UTC")
	require.NoError(t, err)
	assert.Equal(t, 24*3600, n)

	n, err = s.SecondsInDay(ctx, 2016, 3, 13, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, 23*3600, n)
}

func TestCalendarService_Local(t *testing.T) {
	t.Parallel()

	s := newTestService(t)
	ctx := context.Background()

	assert.Equal(t, LocalWallClock{Name: "Europe/Rome"}, s.GetLocal(ctx))

	got, err := s.SetLocal(ctx, "UTC")
	require.NoError(t, err)
	assert.Equal(t, LocalWallClock{Name: "UTC", UTC: true}, got)

	got, err = s.SetLocal(ctx, SystemWallClock)
	require.NoError(t, err)
	assert.Equal(t, LocalWallClock{Name: SystemWallClock, System: true}, got)

	_, err = s.SetLocal(ctx, "Nowhere/Land")
	assert.ErrorIs(t, err, datetime.ErrEnvironmentRejected)
	assert.Equal(t, LocalWallClock{Name: SystemWallClock, System: true}, s.GetLocal(ctx))

	_, err = s.SetLocal(ctx, "")
	assert.ErrorIs(t, err, datetime.ErrInvalidArgument)
}
