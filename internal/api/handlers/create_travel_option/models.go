package create_travel_option

import (
	"time"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

// CreateTravelOptionRequest тело запроса на создание варианта поездки
type CreateTravelOptionRequest struct {
	Type          string    `json:"type"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	DepartureTime time.Time `json:"departureTime"`
	PricePerSeat  float64   `json:"pricePerSeat"`
	TotalSeats    int       `json:"totalSeats"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервисного слоя
func (r *CreateTravelOptionRequest) ToServiceRequest(userID int64) *models.CreateTravelOptionRequest {
	return &models.CreateTravelOptionRequest{
		UserID:        userID,
		Type:          r.Type,
		Source:        r.Source,
		Destination:   r.Destination,
		DepartureTime: r.DepartureTime,
		PricePerSeat:  r.PricePerSeat,
		TotalSeats:    r.TotalSeats,
	}
}
