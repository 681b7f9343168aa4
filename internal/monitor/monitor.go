// Package monitor periodically re-reads every configured calendar link and
// stores the last observed status of each source. It never caches availability.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	DefaultSchedule   = "*/30 * * * *"
	DefaultBatchSize  = 100
	DefaultRunTimeout = 10 * time.Minute
)

// Config настройки монитора
type Config struct {
	Schedule   string        // cron выражение (5 полей)
	BatchSize  int           // сколько объектов читать из БД за раз
	RunTimeout time.Duration // ограничение на один проход
	Location   *time.Location
}

// Report итог одного прохода
type Report struct {
	Checked       int
	FailedSources int
	UpdateErrors  int
}

// Monitor периодически проверяет ссылки всех объектов
type Monitor struct {
	cfg          Config
	repo         PropertyRepository
	collector    FeedCollector
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
	cron         *cron.Cron

	// ctx живёт до Stop: отмена прерывает текущий проход
	ctx    context.Context
	cancel context.CancelFunc
}

// New создает монитор и регистрирует задачу по расписанию (запуск через Start)
func New(cfg Config, repo PropertyRepository, collector FeedCollector, metrics MetricsRecorder, logger Logger) (*Monitor, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = DefaultRunTimeout
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Monitor{
		ctx:          ctx,
		cancel:       cancel,
		cfg:          cfg,
		repo:         repo,
		collector:    collector,
		metrics:      metrics,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}

	cronLog := &cronLogger{logger: logger}
	m.cron = cron.New(
		cron.WithLocation(cfg.Location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	if _, err := m.cron.AddFunc(cfg.Schedule, m.runScheduled); err != nil {
		cancel()
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSchedule, cfg.Schedule, err)
	}

	return m, nil
}

// Start запускает планировщик в фоне
func (m *Monitor) Start() {
	m.logger.Info("Monitor: started with schedule %q", m.cfg.Schedule)
	m.cron.Start()
}

// Stop останавливает планировщик, отменяет текущий проход
// и ждёт его завершения (или отмены ctx)
func (m *Monitor) Stop(ctx context.Context) {
	done := m.cron.Stop()
	m.cancel()
	select {
	case <-done.Done():
		m.logger.Info("Monitor: stopped")
	case <-ctx.Done():
		m.logger.Warn("Monitor: stop timed out, running check abandoned")
	}
}

func (m *Monitor) runScheduled() {
	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.RunTimeout)
	defer cancel()

	if _, err := m.RunOnce(ctx); err != nil {
		m.logger.Error("Monitor: run failed: %v", err)
	}
}

// RunOnce проверяет все объекты с настроенными ссылками.
// Ошибка сохранения одного объекта не прерывает проход.
func (m *Monitor) RunOnce(ctx context.Context) (Report, error) {
	var (
		report  Report
		afterID int64
	)

	for {
		batch, err := m.repo.ListWithFeeds(ctx, afterID, uint64(m.cfg.BatchSize))
		if err != nil {
			err = fmt.Errorf("%w: after_id=%d: %v", ErrListProperties, afterID, err)
			m.metrics.RecordMonitorRun(report.FailedSources, err)
			return report, err
		}

		for _, property := range batch {
			if ctx.Err() != nil {
				m.metrics.RecordMonitorRun(report.FailedSources, ctx.Err())
				return report, ctx.Err()
			}
			m.checkProperty(ctx, property, &report)
			afterID = property.ID
		}

		if len(batch) < m.cfg.BatchSize {
			break
		}
	}

	m.metrics.RecordMonitorRun(report.FailedSources, nil)
	m.logger.Info("Monitor: checked=%d failed_sources=%d update_errors=%d",
		report.Checked, report.FailedSources, report.UpdateErrors)

	return report, nil
}

func (m *Monitor) checkProperty(ctx context.Context, property *domain.Property, report *Report) {
	// Ссылки могли удалить между выборкой и проверкой
	if !property.HasFeeds() {
		return
	}

	result := m.collector.Collect(ctx, property.FeedSources())

	failed := result.Status.FailedCount()
	report.Checked++
	report.FailedSources += failed
	if failed > 0 {
		m.logger.Warn("Monitor: property=%d airbnb=%s booking=%s",
			property.ID, result.Status.Airbnb, result.Status.Booking)
	}

	err := m.repo.UpdateFeedHealth(ctx, domain.PropertyFeedHealth{
		PropertyID:  property.ID,
		Status:      result.Status,
		EventsCount: len(result.Events),
		CheckedAt:   m.timeProvider.Now(),
	})
	if err != nil {
		report.UpdateErrors++
		m.logger.Error("Monitor: failed to save feed health for property=%d: %v", property.ID, err)
	}
}

// cronLogger адаптер printf-логгера к cron.Logger
type cronLogger struct {
	logger Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	// cron пишет в Info каждый запуск и пропуск, нам интересны только пропуски
	if msg == "skip" {
		l.logger.Warn("Monitor: previous run still in progress, skipping %v", keysAndValues)
	}
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("Monitor: cron %s: %v %v", msg, err, keysAndValues)
}
