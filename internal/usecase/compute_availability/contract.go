package compute_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/feeds"
)

// FeedCollector интерфейс сборщика событий из внешних календарей
type FeedCollector interface {
	Collect(ctx context.Context, sources []domain.FeedSource) feeds.CollectResult
}

// MetricsRecorder интерфейс для записи метрик расчёта
type MetricsRecorder interface {
	RecordComputation(failedSources int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) RecordComputation(int) {}
