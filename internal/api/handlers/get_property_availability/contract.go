package get_property_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

type UseCase interface {
	Execute(ctx context.Context, propertyID int64, daysAhead int) (*compute_availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
