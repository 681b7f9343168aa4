package export_calendar

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	productID      = "-//SMC//AvailabilityService//EN"
	blockedSummary = "Not available"
)

// UseCase use case для экспорта объединённой занятости объекта в iCalendar
type UseCase struct {
	availability PropertyAvailability
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability PropertyAvailability, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		logger:       logger,
	}
}

// Execute строит календарь из занятых дней обоих источников.
// Ошибки пробрасываются как есть: это ошибки get_property_availability.
func (uc *UseCase) Execute(ctx context.Context, propertyID int64, daysAhead int) (*Response, error) {
	resp, err := uc.availability.Execute(ctx, propertyID, daysAhead)
	if err != nil {
		return nil, err
	}

	ranges := bookedRanges(resp.Availability)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("Property %d", propertyID))

	for _, r := range ranges {
		event := cal.AddEvent(fmt.Sprintf("%d-%s@smc-availability", propertyID, r.Start.Format("20060102")))
		event.SetDtStampTime(resp.ReferenceDate)
		event.SetAllDayStartAt(r.Start)
		event.SetAllDayEndAt(r.End)
		event.SetSummary(blockedSummary)
	}

	uc.logger.Info("ExportCalendar: property=%d ranges=%d airbnb=%s booking=%s",
		propertyID, len(ranges), resp.SourcesStatus.Get(domain.SourceAirbnb), resp.SourcesStatus.Get(domain.SourceBooking))

	return &Response{
		Calendar: cal.Serialize(),
		Ranges:   ranges,
	}, nil
}
