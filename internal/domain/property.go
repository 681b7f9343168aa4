package domain

import "time"

// Property represents a rental property attached to a digital card.
// It stores the owner's calendar export links and the last observed feed health.
type Property struct {
	ID             int64
	OwnerID        int64
	Name           string
	AirbnbICalURL  *string
	BookingICalURL *string

	AirbnbStatus  *SourceStatus
	BookingStatus *SourceStatus
	EventsCount   int
	LastCheckedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the user owns the property
func (p *Property) IsOwnedBy(userID int64) bool {
	return p.OwnerID == userID
}

// HasFeeds returns true if at least one calendar link is configured
func (p *Property) HasFeeds() bool {
	return nonEmpty(p.AirbnbICalURL) || nonEmpty(p.BookingICalURL)
}

// FeedSources returns the configured links in fixed source order.
// Missing links are returned with an empty URL so they are reported as skipped.
func (p *Property) FeedSources() []FeedSource {
	return []FeedSource{
		{Name: SourceAirbnb, URL: deref(p.AirbnbICalURL)},
		{Name: SourceBooking, URL: deref(p.BookingICalURL)},
	}
}

// PropertyFeedHealth is the result of one monitor check for a property
type PropertyFeedHealth struct {
	PropertyID  int64
	Status      SourcesStatus
	EventsCount int
	CheckedAt   time.Time
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
