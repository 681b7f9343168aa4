package export_calendar

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

// PropertyAvailability интерфейс расчёта доступности объекта по ID
type PropertyAvailability interface {
	Execute(ctx context.Context, propertyID int64, daysAhead int) (*compute_availability.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
