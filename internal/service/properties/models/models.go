package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// CreatePropertyRequest запрос на создание объекта
type CreatePropertyRequest struct {
	UserID         int64  `json:"-"`
	Name           string `json:"name"`
	AirbnbICalURL  string `json:"airbnb_ical_url,omitempty"`
	BookingICalURL string `json:"booking_ical_url,omitempty"`
}

// UpdatePropertyRequest запрос на обновление объекта
// nil = поле не меняется, пустая строка = ссылка удаляется
type UpdatePropertyRequest struct {
	UserID         int64   `json:"-"`
	Name           *string `json:"name,omitempty"`
	AirbnbICalURL  *string `json:"airbnb_ical_url,omitempty"`
	BookingICalURL *string `json:"booking_ical_url,omitempty"`
}

// Response модели

// FeedHealthResponse последний результат проверки источников монитором
type FeedHealthResponse struct {
	Airbnb        *domain.SourceStatus `json:"airbnb,omitempty"`
	Booking       *domain.SourceStatus `json:"booking,omitempty"`
	EventsCount   int                  `json:"events_count"`
	LastCheckedAt *time.Time           `json:"last_checked_at,omitempty"`
}

// PropertyResponse ответ с данными объекта
type PropertyResponse struct {
	ID             int64              `json:"id"`
	OwnerID        int64              `json:"owner_id"`
	Name           string             `json:"name"`
	AirbnbICalURL  *string            `json:"airbnb_ical_url,omitempty"`
	BookingICalURL *string            `json:"booking_ical_url,omitempty"`
	FeedHealth     FeedHealthResponse `json:"feed_health"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// Методы конвертации

// ToDomainProperty конвертирует запрос создания в domain модель
func (r *CreatePropertyRequest) ToDomainProperty() *domain.Property {
	return &domain.Property{
		OwnerID:        r.UserID,
		Name:           r.Name,
		AirbnbICalURL:  optionalURL(r.AirbnbICalURL),
		BookingICalURL: optionalURL(r.BookingICalURL),
	}
}

// ApplyTo применяет изменения к существующему объекту
func (r *UpdatePropertyRequest) ApplyTo(p *domain.Property) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.AirbnbICalURL != nil {
		p.AirbnbICalURL = optionalURL(*r.AirbnbICalURL)
	}
	if r.BookingICalURL != nil {
		p.BookingICalURL = optionalURL(*r.BookingICalURL)
	}
}

// FromDomainProperty конвертирует domain модель в DTO
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	if p == nil {
		return nil
	}

	return &PropertyResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Name:           p.Name,
		AirbnbICalURL:  p.AirbnbICalURL,
		BookingICalURL: p.BookingICalURL,
		FeedHealth: FeedHealthResponse{
			Airbnb:        p.AirbnbStatus,
			Booking:       p.BookingStatus,
			EventsCount:   p.EventsCount,
			LastCheckedAt: p.LastCheckedAt,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func optionalURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
