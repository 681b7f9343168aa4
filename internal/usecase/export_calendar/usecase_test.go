package export_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/ical"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_property_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockAvailability struct {
	mock.Mock
}

func (m *mockAvailability) Execute(ctx context.Context, propertyID int64, daysAhead int) (*compute_availability.Response, error) {
	args := m.Called(ctx, propertyID, daysAhead)
	resp, _ := args.Get(0).(*compute_availability.Response)
	return resp, args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
}

// pattern: 'B' = booked, '.' = available, starting at 2025-06-01
func window(pattern string) []domain.AvailabilityDay {
	days := make([]domain.AvailabilityDay, 0, len(pattern))
	for i, c := range pattern {
		days = append(days, domain.AvailabilityDay{Date: day(1 + i), Available: c != 'B'})
	}
	return days
}

func TestBookedRanges(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []BookedRange
	}{
		{name: "all free", pattern: ".....", expected: []BookedRange{}},
		{name: "single day", pattern: "..B..", expected: []BookedRange{{Start: day(3), End: day(4)}}},
		{name: "two ranges", pattern: "BB..BBB", expected: []BookedRange{
			{Start: day(1), End: day(3)},
			{Start: day(5), End: day(8)},
		}},
		{name: "booked to the end of window", pattern: "...BB", expected: []BookedRange{{Start: day(4), End: day(6)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bookedRanges(window(tt.pattern)))
		})
	}
}

func TestUseCase_SerializedCalendarRoundTrips(t *testing.T) {
	availability := &mockAvailability{}
	availability.On("Execute", mock.Anything, int64(5), 7).Return(&compute_availability.Response{
		ReferenceDate: day(1),
		Availability:  window(".BB..B."),
		SourcesStatus: domain.SourcesStatus{Airbnb: domain.SourceStatusOK, Booking: domain.SourceStatusFailed},
	}, nil)

	resp, err := NewUseCase(availability, logger.Discard()).Execute(context.Background(), 5, 7)
	require.NoError(t, err)

	assert.Contains(t, resp.Calendar, "BEGIN:VCALENDAR")
	assert.Contains(t, resp.Calendar, "PRODID:"+productID)

	events := ical.Parse([]byte(resp.Calendar), time.UTC)
	require.Len(t, events, 2)
	assert.Equal(t, day(2), events[0].Start)
	assert.Equal(t, day(4), events[0].End)
	assert.Equal(t, day(6), events[1].Start)
	assert.Equal(t, day(7), events[1].End)
	assert.Equal(t, blockedSummary, events[0].Summary)
	assert.Equal(t, "5-20250602@smc-availability", events[0].UID)
}

func TestUseCase_PropagatesNotFound(t *testing.T) {
	availability := &mockAvailability{}
	availability.On("Execute", mock.Anything, int64(5), 0).Return(nil, get_property_availability.ErrPropertyNotFound)

	_, err := NewUseCase(availability, logger.Discard()).Execute(context.Background(), 5, 0)

	assert.ErrorIs(t, err, get_property_availability.ErrPropertyNotFound)
}
