package handler

import (
	"context"

	"github.com/wealthpath/calendar/internal/service"
)

// CalendarServiceInterface for handler testing
type CalendarServiceInterface interface {
	Now(ctx context.Context, wallClock string) (service.Moment, error)
	Parse(ctx context.Context, input service.ParseInput) (*service.ParseResult, error)
	Make(ctx context.Context, input service.MakeInput) (service.Moment, error)
	Add(ctx context.Context, input service.AddInput) (service.Moment, error)
	Diff(ctx context.Context, input service.DiffInput) (*service.DiffResult, error)
	Convert(ctx context.Context, input service.ConvertInput) ([]service.Conversion, error)
	Recurrences(ctx context.Context, input service.RecurrenceInput) ([]service.Moment, error)
	YearInfo(ctx context.Context, year int) (*service.YearInfo, error)
	MonthInfo(ctx context.Context, year, month int) (*service.MonthInfo, error)
	SecondsInDay(ctx context.Context, year, month, day int, wallClock string) (int, error)
	GetLocal(ctx context.Context) service.LocalWallClock
	SetLocal(ctx context.Context, name string) (service.LocalWallClock, error)
}
