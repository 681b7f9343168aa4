package compute_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// summarize вычисляет статистику занятости только по последовательности дней
func summarize(days []domain.AvailabilityDay) domain.AvailabilitySummary {
	summary := domain.AvailabilitySummary{
		TotalDays: len(days),
	}

	for i := range days {
		if !days[i].Available {
			continue
		}
		summary.AvailableDays++
		if summary.NextAvailable == nil {
			date := days[i].Date
			summary.NextAvailable = &date
		}
	}

	summary.BookedDays = summary.TotalDays - summary.AvailableDays
	summary.OccupancyRate = occupancyPercent(summary.BookedDays, summary.TotalDays)

	return summary
}

// occupancyPercent округляет booked/total*100 до целого, половины округляются вверх.
// Считается в целых числах: floor((200*booked + total) / (2*total)).
func occupancyPercent(booked, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*booked + total) / (2 * total)
}
