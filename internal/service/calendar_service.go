package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/pkg/datetime"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// SystemWallClock is the wall-clock name that selects the host zone.
const SystemWallClock = "system"

// DefaultRecurrences is the number of occurrences returned when a
// recurrence request does not ask for a count.
const DefaultRecurrences = 10

// CalendarService exposes the datetime toolkit to the HTTP layer. Values
// travel as extended ISO 8601 strings and wall-clocks as zone names.
type CalendarService struct {
	cal            *datetime.Calendar
	maxRecurrences int
}

// NewCalendarService creates a new CalendarService over cal.
func NewCalendarService(cal *datetime.Calendar, maxRecurrences int) *CalendarService {
	if maxRecurrences <= 0 {
		maxRecurrences = 100
	}
	return &CalendarService{
		cal:            cal,
		maxRecurrences: maxRecurrences,
	}
}

// Moment is the JSON view of a DateTime.
type Moment struct {
	ISO8601      string `json:"iso8601"`
	Display      string `json:"display"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	WallClock    string `json:"wallclock"`
	Unix         int64  `json:"unix"`
	Weekday      string `json:"weekday"`
	YearDay      int    `json:"yearDay"`
	ISOWeek      int    `json:"isoWeek"`
	ISOYear      int    `json:"isoYear"`
	UTCOffset    int    `json:"utcOffset"`
	Abbreviation string `json:"abbreviation"`
	IsDST        bool   `json:"isDst"`
	InDSTOverlap bool   `json:"inDstOverlap"`
	IsLocal      bool   `json:"isLocal"`
}

// NewMoment renders dt.
func NewMoment(dt datetime.DateTime) Moment {
	return Moment{
		ISO8601:      dt.ISO8601(true),
		Display:      dt.String(),
		Date:         dt.DateString(),
		Time:         dt.TimeString(),
		WallClock:    wallClockName(dt.WallClock()),
		Unix:         dt.ToBinary(),
		Weekday:      dt.Weekday().String(),
		YearDay:      dt.YearDay(),
		ISOWeek:      dt.ISOWeek(),
		ISOYear:      dt.ISOYear(),
		UTCOffset:    dt.UTCOffset(),
		Abbreviation: dt.Abbreviation(),
		IsDST:        dt.IsDST(),
		InDSTOverlap: dt.InDSTOverlap(),
		IsLocal:      dt.IsLocal(),
	}
}

func wallClockName(wc wallclock.WallClock) string {
	if wc.IsSystem() {
		return SystemWallClock
	}
	return wc.Name()
}

// wallClock maps a request name to a wall-clock. The empty name is Local.
// A full registry degrades to System; the caller still gets a usable value.
func (s *CalendarService) wallClock(ctx context.Context, name string) (wallclock.WallClock, error) {
	switch name {
	case "":
		return wallclock.Local, nil
	case SystemWallClock:
		return wallclock.System, nil
	}
	wc, err := s.cal.WallClock(name)
	if errors.Is(err, datetime.ErrResourceExhausted) {
		logger.FromContext(ctx).Warn("wall-clock registry full, using system zone", "name", name)
		return wc, nil
	}
	return wc, err
}

// instant parses an ISO 8601 value and, when wallClock is set, expresses it
// there.
func (s *CalendarService) instant(ctx context.Context, text, wallClock string) (datetime.DateTime, error) {
	dt, err := s.cal.ParseISO8601(text)
	if err != nil {
		return datetime.DateTime{}, err
	}
	if wallClock == "" {
		return dt, nil
	}
	wc, err := s.wallClock(ctx, wallClock)
	if err != nil {
		return datetime.DateTime{}, err
	}
	return dt.ChangeTo(wc)
}

// Now returns the current instant in wallClock (Local when empty).
func (s *CalendarService) Now(ctx context.Context, wallClock string) (Moment, error) {
	wc, err := s.wallClock(ctx, wallClock)
	if err != nil {
		return Moment{}, err
	}
	dt, err := s.cal.Now(datetime.In(wc))
	if err != nil {
		return Moment{}, err
	}
	return NewMoment(dt), nil
}

// Parse kinds.
const (
	ParseISO8601 = "iso8601"
	ParseDate    = "date"
	ParseTime    = "time"
)

type ParseInput struct {
	Kind       string `json:"kind"`
	Text       string `json:"text"`
	WallClock  string `json:"wallclock"`
	Precedence string `json:"precedence"`
}

type ParseResult struct {
	Moment
	Fraction string `json:"fraction,omitempty"`
}

// Parse reads text. ISO 8601 values keep the zone they carry unless a
// wall-clock is given. Dates are read at midnight and times on the current
// day, both in the requested wall-clock.
func (s *CalendarService) Parse(ctx context.Context, input ParseInput) (*ParseResult, error) {
	precedence, err := datetime.ParsePrecedence(input.Precedence)
	if err != nil {
		return nil, err
	}

	switch input.Kind {
	case ParseISO8601, "":
		dt, frac, err := s.cal.ParseISO8601Detail(input.Text)
		if err != nil {
			return nil, err
		}
		if input.WallClock != "" {
			wc, err := s.wallClock(ctx, input.WallClock)
			if err != nil {
				return nil, err
			}
			if dt, err = dt.ChangeTo(wc); err != nil {
				return nil, err
			}
		}
		result := &ParseResult{Moment: NewMoment(dt)}
		if !frac.IsZero() {
			result.Fraction = frac.String()
		}
		return result, nil

	case ParseDate, ParseTime:
		wc, err := s.wallClock(ctx, input.WallClock)
		if err != nil {
			return nil, err
		}
		dt, err := s.cal.Today(datetime.In(wc))
		if err != nil {
			return nil, err
		}
		if input.Kind == ParseDate {
			err = dt.SetDateFromString(input.Text, datetime.Prefer(precedence))
		} else {
			err = dt.SetTimeFromString(input.Text, datetime.Prefer(precedence))
		}
		if err != nil {
			return nil, err
		}
		return &ParseResult{Moment: NewMoment(dt)}, nil

	default:
		return nil, apperror.InvalidArgument("kind", "must be iso8601, date or time")
	}
}

type MakeInput struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Day        int    `json:"day"`
	Hour       int    `json:"hour"`
	Minute     int    `json:"minute"`
	Second     int    `json:"second"`
	WallClock  string `json:"wallclock"`
	Precedence string `json:"precedence"`
}

// Make builds a value from civil fields. Fields that do not exist in the
// wall-clock are rejected.
func (s *CalendarService) Make(ctx context.Context, input MakeInput) (Moment, error) {
	precedence, err := datetime.ParsePrecedence(input.Precedence)
	if err != nil {
		return Moment{}, err
	}
	wc, err := s.wallClock(ctx, input.WallClock)
	if err != nil {
		return Moment{}, err
	}
	dt, err := s.cal.New(input.Year, time.Month(input.Month), input.Day,
		input.Hour, input.Minute, input.Second,
		datetime.In(wc), datetime.Prefer(precedence))
	if err != nil {
		return Moment{}, err
	}
	return NewMoment(dt), nil
}

type AddInput struct {
	Start     string `json:"start"`
	WallClock string `json:"wallclock"`
	Unit      string `json:"unit"`
	Amount    int64  `json:"amount"`
}

// Add moves a value by amount units: seconds, minutes and hours are
// elapsed time; days, months and years keep the wall-clock time of day.
func (s *CalendarService) Add(ctx context.Context, input AddInput) (Moment, error) {
	dt, err := s.instant(ctx, input.Start, input.WallClock)
	if err != nil {
		return Moment{}, err
	}

	switch strings.TrimSuffix(input.Unit, "s") {
	case "second":
		dt, err = dt.AddSeconds(input.Amount)
	case "minute":
		dt, err = dt.AddMinutes(input.Amount)
	case "hour":
		dt, err = dt.AddHours(input.Amount)
	case "day":
		dt, err = dt.AddDays(int(input.Amount))
	case "week":
		if input.Amount > (1<<62)/7 || input.Amount < -(1<<62)/7 {
			return Moment{}, apperror.Overflow("week count out of range")
		}
		dt, err = dt.AddDays(int(7 * input.Amount))
	case "month":
		dt, err = dt.AddMonths(int(input.Amount))
	case "year":
		dt, err = dt.AddYears(int(input.Amount))
	default:
		return Moment{}, apperror.InvalidArgument("unit", "must be one of seconds, minutes, hours, days, weeks, months, years")
	}
	if err != nil {
		return Moment{}, err
	}
	return NewMoment(dt), nil
}

type DiffInput struct {
	Start string `json:"start"`
	Stop  string `json:"stop"`
	// WallClock both ends are expressed in before the calendar figures are
	// computed; the start's own wall-clock when empty.
	WallClock string `json:"wallclock"`
}

// Span is a duration split into whole units and a remainder.
type Span struct {
	Count   int   `json:"count"`
	Days    int   `json:"days,omitempty"`
	Months  int   `json:"months,omitempty"`
	Seconds int64 `json:"seconds"`
}

type DiffResult struct {
	WallClock      string `json:"wallclock"`
	Seconds        int64  `json:"seconds"`
	Minutes        int64  `json:"minutes"`
	Hours          int64  `json:"hours"`
	ExactHours     string `json:"exactHours"`
	ExactDays      string `json:"exactDays"`
	CalendarDays   int    `json:"calendarDays"`
	Days           Span   `json:"days"`
	Weeks          Span   `json:"weeks"`
	CalendarMonths int    `json:"calendarMonths"`
	Months         Span   `json:"months"`
	CalendarYears  int    `json:"calendarYears"`
	Years          Span   `json:"years"`
	ISOYears       int    `json:"isoYears"`
}

var (
	secondsPerHour = decimal.NewFromInt(3600)
	secondsPerDay  = decimal.NewFromInt(86400)
)

// Diff measures the distance from start to stop. Negative figures mean
// stop is earlier.
func (s *CalendarService) Diff(ctx context.Context, input DiffInput) (*DiffResult, error) {
	start, err := s.instant(ctx, input.Start, input.WallClock)
	if err != nil {
		return nil, err
	}
	stop, err := s.cal.ParseISO8601(input.Stop)
	if err != nil {
		return nil, err
	}
	if stop, err = stop.ChangeTo(start.WallClock()); err != nil {
		return nil, err
	}

	res := &DiffResult{WallClock: wallClockName(start.WallClock())}
	if res.Seconds, err = datetime.DiffSeconds(start, stop); err != nil {
		return nil, err
	}
	res.Minutes = res.Seconds / 60
	res.Hours = res.Seconds / 3600
	exact := decimal.NewFromInt(res.Seconds)
	res.ExactHours = exact.Div(secondsPerHour).StringFixed(4)
	res.ExactDays = exact.Div(secondsPerDay).StringFixed(4)

	if res.CalendarDays, err = datetime.DiffCalendarDays(start, stop); err != nil {
		return nil, err
	}
	if res.Days.Count, res.Days.Seconds, err = datetime.DiffDays(start, stop); err != nil {
		return nil, err
	}
	if res.Weeks.Count, res.Weeks.Days, res.Weeks.Seconds, err = datetime.DiffWeeks(start, stop); err != nil {
		return nil, err
	}
	if res.CalendarMonths, err = datetime.DiffCalendarMonths(start, stop); err != nil {
		return nil, err
	}
	if res.Months.Count, res.Months.Days, res.Months.Seconds, err = datetime.DiffMonths(start, stop); err != nil {
		return nil, err
	}
	if res.CalendarYears, err = datetime.DiffCalendarYears(start, stop); err != nil {
		return nil, err
	}
	if res.Years.Count, res.Years.Months, res.Years.Days, res.Years.Seconds, err = datetime.DiffYears(start, stop); err != nil {
		return nil, err
	}
	if res.ISOYears, err = datetime.DiffISOYears(start, stop); err != nil {
		return nil, err
	}
	return res, nil
}

type ConvertInput struct {
	Instant    string   `json:"instant"`
	WallClocks []string `json:"wallclocks"`
}

type Conversion struct {
	WallClock string `json:"wallclock"`
	Moment    Moment `json:"moment"`
}

// Convert expresses one instant in several wall-clocks. Results keep the
// order of the request.
func (s *CalendarService) Convert(ctx context.Context, input ConvertInput) ([]Conversion, error) {
	if len(input.WallClocks) == 0 {
		return nil, apperror.InvalidArgument("wallclocks", "at least one wall-clock is required")
	}
	dt, err := s.cal.ParseISO8601(input.Instant)
	if err != nil {
		return nil, err
	}

	out := make([]Conversion, len(input.WallClocks))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range input.WallClocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			wc, err := s.wallClock(gctx, name)
			if err != nil {
				return err
			}
			converted, err := dt.ChangeTo(wc)
			if err != nil {
				return err
			}
			out[i] = Conversion{WallClock: name, Moment: NewMoment(converted)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type RecurrenceInput struct {
	// Schedule is a five-field cron expression or a descriptor such as
	// "@daily", evaluated in the wall-clock.
	Schedule  string `json:"schedule"`
	Start     string `json:"start"`
	WallClock string `json:"wallclock"`
	Count     int    `json:"count"`
}

// Recurrences lists the next occurrences of a cron schedule after start
// (now when empty). The schedule is read in the civil time of the
// wall-clock.
func (s *CalendarService) Recurrences(ctx context.Context, input RecurrenceInput) ([]Moment, error) {
	count := input.Count
	if count == 0 {
		count = DefaultRecurrences
	}
	if count < 0 || count > s.maxRecurrences {
		return nil, apperror.InvalidArgument("count", fmt.Sprintf("must be between 1 and %d", s.maxRecurrences))
	}
	schedule, err := cron.ParseStandard(input.Schedule)
	if err != nil {
		return nil, apperror.InvalidArgument("schedule", err.Error())
	}

	wc, err := s.wallClock(ctx, input.WallClock)
	if err != nil {
		return nil, err
	}
	loc, err := s.cal.Location(wc)
	if err != nil {
		return nil, err
	}

	var from time.Time
	if input.Start == "" {
		now, err := s.cal.Now(datetime.In(wc))
		if err != nil {
			return nil, err
		}
		from = now.Time()
	} else {
		start, err := s.cal.ParseISO8601(input.Start)
		if err != nil {
			return nil, err
		}
		from = start.Time()
	}

	moments := make([]Moment, 0, count)
	next := from.In(loc)
	for len(moments) < count {
		next = schedule.Next(next)
		if next.IsZero() {
			break
		}
		dt, err := s.cal.FromTime(next, wc)
		if err != nil {
			return nil, err
		}
		moments = append(moments, NewMoment(dt))
	}
	return moments, nil
}

type LocalWallClock struct {
	Name   string `json:"name"`
	System bool   `json:"system"`
	UTC    bool   `json:"utc"`
}

func newLocalWallClock(wc wallclock.WallClock) LocalWallClock {
	return LocalWallClock{
		Name:   wallClockName(wc),
		System: wc.IsSystem(),
		UTC:    wc.IsUTC(),
	}
}

// GetLocal reports the current Local wall-clock.
func (s *CalendarService) GetLocal(ctx context.Context) LocalWallClock {
	return newLocalWallClock(s.cal.Local())
}

// SetLocal selects the Local wall-clock. "system" selects the host zone.
func (s *CalendarService) SetLocal(ctx context.Context, name string) (LocalWallClock, error) {
	var err error
	switch name {
	case "":
		return LocalWallClock{}, apperror.InvalidArgument("name", "a wall-clock name is required")
	case SystemWallClock:
		err = s.cal.SetLocalWallClock(wallclock.System)
	default:
		err = s.cal.SetLocal(name)
	}
	if err != nil && !errors.Is(err, datetime.ErrResourceExhausted) {
		return LocalWallClock{}, err
	}
	local := newLocalWallClock(s.cal.Local())
	logger.FromContext(ctx).Info("local wall-clock updated", "requested", name, "local", local.Name)
	return local, nil
}
