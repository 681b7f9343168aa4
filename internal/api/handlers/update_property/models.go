package update_property

import "github.com/m04kA/SMC-AvailabilityService/internal/service/properties/models"

// UpdatePropertyRequest HTTP request model
// Отсутствующее поле не меняется, пустая строка удаляет ссылку
type UpdatePropertyRequest struct {
	Name           *string `json:"name,omitempty"`
	AirbnbICalURL  *string `json:"airbnb_ical_url,omitempty"`
	BookingICalURL *string `json:"booking_ical_url,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePropertyRequest) ToServiceRequest(userID int64) *models.UpdatePropertyRequest {
	return &models.UpdatePropertyRequest{
		UserID:         userID,
		Name:           r.Name,
		AirbnbICalURL:  r.AirbnbICalURL,
		BookingICalURL: r.BookingICalURL,
	}
}
