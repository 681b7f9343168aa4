package feeds

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/ical"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/icalfeed"
)

// CollectResult объединённые события всех источников и статус каждого источника
type CollectResult struct {
	Events []domain.CalendarEvent
	Status domain.SourcesStatus
}

// Collector загружает и объединяет события нескольких календарей.
// Ошибка одного источника никогда не прерывает расчёт: источник просто не даёт событий.
type Collector struct {
	feedClient FeedClient
	location   *time.Location
	logger     Logger
}

// NewCollector создает новый экземпляр сборщика календарей
func NewCollector(feedClient FeedClient, location *time.Location, logger Logger) *Collector {
	if location == nil {
		location = time.Local
	}
	return &Collector{
		feedClient: feedClient,
		location:   location,
		logger:     logger,
	}
}

// sourceResult результат чтения одного источника
type sourceResult struct {
	events []domain.CalendarEvent
	status domain.SourceStatus
}

// Collect загружает источники параллельно и объединяет их события.
// Источники с пустой ссылкой помечаются как skipped, упавшие как failed.
// События объединяются в порядке источников, а не в порядке завершения загрузки.
func (c *Collector) Collect(ctx context.Context, sources []domain.FeedSource) CollectResult {
	results := make([]sourceResult, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		if src.URL == "" {
			results[i] = sourceResult{status: domain.SourceStatusSkipped}
			continue
		}

		g.Go(func() error {
			events, err := c.readSource(ctx, src)
			if err != nil {
				c.logger.Warn("Collect: source=%s url=%s skipped after error: %v",
					src.Name, icalfeed.RedactURL(src.URL), err)
				results[i] = sourceResult{status: domain.SourceStatusFailed}
				return nil
			}
			results[i] = sourceResult{events: events, status: domain.SourceStatusOK}
			return nil
		})
	}
	// Горутины не возвращают ошибок, Wait только дожидается завершения
	_ = g.Wait()

	out := CollectResult{
		Events: make([]domain.CalendarEvent, 0),
		Status: domain.SourcesStatus{
			Airbnb:  domain.SourceStatusSkipped,
			Booking: domain.SourceStatusSkipped,
		},
	}
	for i, src := range sources {
		out.Status.Set(src.Name, results[i].status)
		out.Events = append(out.Events, results[i].events...)
	}

	return out
}

func (c *Collector) readSource(ctx context.Context, src domain.FeedSource) ([]domain.CalendarEvent, error) {
	body, err := c.feedClient.Fetch(ctx, src.Name, src.URL)
	if err != nil {
		return nil, err
	}

	if !ical.LooksLikeCalendar(body) {
		return nil, fmt.Errorf("%w: source=%s bytes=%d", ErrSourceParse, src.Name, len(body))
	}

	events := ical.Parse(body, c.location)
	for i := range events {
		events[i].Source = src.Name
	}

	c.logger.Info("Collect: source=%s parsed %d events", src.Name, len(events))
	return events, nil
}
