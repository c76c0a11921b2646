package service

import (
	"context"
	"time"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/pkg/datetime"
	"github.com/wealthpath/calendar/pkg/wallclock"
)

// WeekdayDays gives the first and last day of month falling on a weekday.
type WeekdayDays struct {
	Weekday string `json:"weekday"`
	First   int    `json:"first"`
	Last    int    `json:"last"`
}

// DayLength reports a day whose length is not 24 hours.
type DayLength struct {
	Day     int `json:"day"`
	Seconds int `json:"seconds"`
}

type MonthInfo struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Name     string        `json:"name"`
	Days     int           `json:"days"`
	Weekdays []WeekdayDays `json:"weekdays"`
	// Transitions lists the days of the month that are shorter or longer
	// than 86400 seconds in the Local wall-clock.
	Transitions []DayLength `json:"transitions"`
}

type YearInfo struct {
	Year     int  `json:"year"`
	Days     int  `json:"days"`
	Leap     bool `json:"leap"`
	ISOWeeks int  `json:"isoWeeks"`
	// ISOYearStart is the day of January of the first ISO week's Monday;
	// 0 and below count back into December.
	ISOYearStart int         `json:"isoYearStart"`
	Months       []MonthInfo `json:"months"`
}

// MonthInfo describes month in the Local wall-clock.
func (s *CalendarService) MonthInfo(ctx context.Context, year, month int) (*MonthInfo, error) {
	if month < 1 || month > 12 {
		return nil, apperror.InvalidArgument("month", "must be between 1 and 12")
	}
	m := time.Month(month)

	days, err := s.cal.DaysInMonth(year, m)
	if err != nil {
		return nil, err
	}
	info := &MonthInfo{
		Year:        year,
		Month:       month,
		Name:        m.String(),
		Days:        days,
		Weekdays:    make([]WeekdayDays, 0, 7),
		Transitions: []DayLength{},
	}

	for dow := datetime.Monday; dow <= datetime.Sunday; dow++ {
		first, err := s.cal.FirstWeekdayInMonth(year, m, dow)
		if err != nil {
			return nil, err
		}
		last, err := s.cal.LastWeekdayInMonth(year, m, dow)
		if err != nil {
			return nil, err
		}
		info.Weekdays = append(info.Weekdays, WeekdayDays{Weekday: dow.String(), First: first, Last: last})
	}

	for day := 1; day <= days; day++ {
		n, err := s.cal.SecondsInDay(year, m, day, wallclock.Local)
		if err != nil {
			return nil, err
		}
		if n != 86400 {
			info.Transitions = append(info.Transitions, DayLength{Day: day, Seconds: n})
		}
	}
	return info, nil
}

// YearInfo describes year in the Local wall-clock, month by month.
func (s *CalendarService) YearInfo(ctx context.Context, year int) (*YearInfo, error) {
	days, err := s.cal.DaysInYear(year)
	if err != nil {
		return nil, err
	}
	weeks, err := s.cal.WeeksInISOYear(year)
	if err != nil {
		return nil, err
	}
	monday, err := s.cal.FirstWeekdayInISOYear(year, datetime.Monday)
	if err != nil {
		return nil, err
	}

	info := &YearInfo{
		Year:         year,
		Days:         days,
		Leap:         days == 366,
		ISOWeeks:     weeks,
		ISOYearStart: monday,
		Months:       make([]MonthInfo, 0, 12),
	}
	for month := 1; month <= 12; month++ {
		m, err := s.MonthInfo(ctx, year, month)
		if err != nil {
			return nil, err
		}
		info.Months = append(info.Months, *m)
	}
	return info, nil
}

// SecondsInDay returns the length of a day in wallClock (Local when empty).
func (s *CalendarService) SecondsInDay(ctx context.Context, year, month, day int, wallClock string) (int, error) {
	wc, err := s.wallClock(ctx, wallClock)
	if err != nil {
		return 0, err
	}
	return s.cal.SecondsInDay(year, time.Month(month), day, wc)
}
