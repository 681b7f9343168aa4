package compute_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UseCase use case для расчёта доступности объекта по внешним календарям
type UseCase struct {
	collector    FeedCollector
	location     *time.Location
	maxDaysAhead int
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	collector FeedCollector,
	location *time.Location,
	maxDaysAhead int,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	if maxDaysAhead <= 0 {
		maxDaysAhead = domain.DefaultMaxDaysAhead
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		collector:    collector,
		location:     location,
		maxDaysAhead: maxDaysAhead,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет расчёт доступности.
// Ошибку возвращает только валидация запроса: сбои источников отражаются в SourcesStatus.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ComputeAvailability: validation failed: %v", err)
		return nil, err
	}

	daysAhead, err := normalizeDaysAhead(req.DaysAhead, uc.maxDaysAhead)
	if err != nil {
		uc.logger.Warn("ComputeAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" один раз на весь расчёт
	referenceDate := truncateToDay(uc.timeProvider.Now(), uc.location)

	// 3. Загружаем и объединяем события всех источников
	collected := uc.collector.Collect(ctx, req.Sources)

	// 4. Строим окно доступности и статистику
	days := buildWindow(collected.Events, daysAhead, referenceDate, uc.location)
	summary := summarize(days)

	uc.metrics.RecordComputation(collected.Status.FailedCount())
	uc.logger.Info("ComputeAvailability: days=%d events=%d booked=%d airbnb=%s booking=%s",
		daysAhead, len(collected.Events), summary.BookedDays, collected.Status.Airbnb, collected.Status.Booking)

	return &Response{
		ReferenceDate: referenceDate,
		Availability:  days,
		Summary:       summary,
		Events:        collected.Events,
		SourcesStatus: collected.Status,
	}, nil
}

// Location часовой пояс, в котором считаются календарные дни
func (uc *UseCase) Location() *time.Location {
	return uc.location
}
