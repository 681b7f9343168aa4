package domain

import "time"

// SourceName identifies an external calendar provider
type SourceName string

const (
	SourceAirbnb  SourceName = "airbnb"
	SourceBooking SourceName = "booking"
)

// SourceStatus is the outcome of reading one calendar source during a request
type SourceStatus string

const (
	SourceStatusOK      SourceStatus = "ok"
	SourceStatusFailed  SourceStatus = "failed"
	SourceStatusSkipped SourceStatus = "skipped"
)

// FeedSource is one configured calendar export link
type FeedSource struct {
	Name SourceName
	URL  string
}

// CalendarEvent represents one reservation's occupied span on a property calendar.
// End is exclusive, matching DTEND semantics.
type CalendarEvent struct {
	UID     string
	Source  SourceName
	Start   time.Time
	End     time.Time
	Summary string
}

// AvailabilityDay is a single day of the availability window
type AvailabilityDay struct {
	Date      time.Time // midnight in the calendar timezone
	Available bool
}

// AvailabilitySummary holds occupancy statistics derived from the availability window
type AvailabilitySummary struct {
	TotalDays     int
	AvailableDays int
	BookedDays    int
	NextAvailable *time.Time
	OccupancyRate int // 0-100
}

// SourcesStatus reports how each configured source contributed to a result
type SourcesStatus struct {
	Airbnb  SourceStatus
	Booking SourceStatus
}

// Get returns the status recorded for the named source
func (s SourcesStatus) Get(name SourceName) SourceStatus {
	switch name {
	case SourceAirbnb:
		return s.Airbnb
	case SourceBooking:
		return s.Booking
	default:
		return SourceStatusSkipped
	}
}

// Set records the status for the named source
func (s *SourcesStatus) Set(name SourceName, status SourceStatus) {
	switch name {
	case SourceAirbnb:
		s.Airbnb = status
	case SourceBooking:
		s.Booking = status
	}
}

// FailedCount returns the number of sources that could not be read
func (s SourcesStatus) FailedCount() int {
	n := 0
	if s.Airbnb == SourceStatusFailed {
		n++
	}
	if s.Booking == SourceStatusFailed {
		n++
	}
	return n
}

// IsBlocking reports whether the event occupies at least one day
func (e *CalendarEvent) IsBlocking() bool {
	return e.End.After(e.Start)
}
