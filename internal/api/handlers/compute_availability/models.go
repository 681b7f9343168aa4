package compute_availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

// ComputeAvailabilityRequest HTTP request model
type ComputeAvailabilityRequest struct {
	AirbnbICalURL  string `json:"airbnb_ical_url"`
	BookingICalURL string `json:"booking_ical_url"`
	DaysAhead      int    `json:"days_ahead"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *ComputeAvailabilityRequest) ToUseCaseRequest() *compute_availability.Request {
	return compute_availability.NewRequest(r.AirbnbICalURL, r.BookingICalURL, r.DaysAhead)
}
