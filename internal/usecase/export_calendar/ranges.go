package export_calendar

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// bookedRanges склеивает подряд идущие занятые дни в диапазоны.
// Конец диапазона - первый свободный день (или день после окна), как DTEND у all-day событий.
func bookedRanges(days []domain.AvailabilityDay) []BookedRange {
	ranges := make([]BookedRange, 0)

	var current *BookedRange
	for _, day := range days {
		if day.Available {
			current = nil
			continue
		}

		next := day.Date.AddDate(0, 0, 1)
		if current != nil {
			current.End = next
			continue
		}

		ranges = append(ranges, BookedRange{Start: day.Date, End: next})
		current = &ranges[len(ranges)-1]
	}

	return ranges
}
