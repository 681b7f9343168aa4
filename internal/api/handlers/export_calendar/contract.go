package export_calendar

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/export_calendar"
)

type UseCase interface {
	Execute(ctx context.Context, propertyID int64, daysAhead int) (*export_calendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
