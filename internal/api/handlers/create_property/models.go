package create_property

import "github.com/m04kA/SMC-AvailabilityService/internal/service/properties/models"

// CreatePropertyRequest HTTP request model
type CreatePropertyRequest struct {
	Name           string `json:"name"`
	AirbnbICalURL  string `json:"airbnb_ical_url"`
	BookingICalURL string `json:"booking_ical_url"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreatePropertyRequest) ToServiceRequest(userID int64) *models.CreatePropertyRequest {
	return &models.CreatePropertyRequest{
		UserID:         userID,
		Name:           r.Name,
		AirbnbICalURL:  r.AirbnbICalURL,
		BookingICalURL: r.BookingICalURL,
	}
}
