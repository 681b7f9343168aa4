package compute_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

type UseCase interface {
	Execute(ctx context.Context, req *compute_availability.Request) (*compute_availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
