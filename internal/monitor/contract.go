package monitor

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/feeds"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	ListWithFeeds(ctx context.Context, afterID int64, limit uint64) ([]*domain.Property, error)
	UpdateFeedHealth(ctx context.Context, health domain.PropertyFeedHealth) error
}

// FeedCollector интерфейс сборщика событий из внешних календарей
type FeedCollector interface {
	Collect(ctx context.Context, sources []domain.FeedSource) feeds.CollectResult
}

// MetricsRecorder интерфейс для записи метрик монитора
type MetricsRecorder interface {
	RecordMonitorRun(failedSources int, err error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) RecordMonitorRun(int, error) {}
