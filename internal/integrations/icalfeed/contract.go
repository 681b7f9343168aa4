package icalfeed

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик загрузки календарей
type MetricsRecorder interface {
	RecordFeedFetch(source, outcome string, duration time.Duration)
}

// noopMetrics используется, когда метрики выключены
type noopMetrics struct{}

func (noopMetrics) RecordFeedFetch(string, string, time.Duration) {}
