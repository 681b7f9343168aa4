package get_property_availability

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/property"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

// UseCase use case для расчёта доступности сохранённого объекта по его ID
type UseCase struct {
	propertyRepo PropertyRepository
	calculator   AvailabilityCalculator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(propertyRepo PropertyRepository, calculator AvailabilityCalculator, logger Logger) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		calculator:   calculator,
		logger:       logger,
	}
}

// Execute загружает ссылки объекта и считает доступность так же, как для произвольных ссылок
func (uc *UseCase) Execute(ctx context.Context, propertyID int64, daysAhead int) (*compute_availability.Response, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: property id must be positive", ErrInvalidInput)
	}

	// 1. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("GetPropertyAvailability: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetPropertyAvailability: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 2. Считаем доступность по сохранённым ссылкам
	resp, err := uc.calculator.Execute(ctx, &compute_availability.Request{
		Sources:   property.FeedSources(),
		DaysAhead: daysAhead,
	})
	if err != nil {
		if errors.Is(err, compute_availability.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetPropertyAvailability: failed to compute availability for property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	return resp, nil
}
