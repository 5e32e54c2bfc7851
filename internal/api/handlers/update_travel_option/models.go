package update_travel_option

import (
	"time"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

// UpdateTravelOptionRequest тело запроса на обновление варианта поездки
// Все поля опциональны: обновляются только переданные
type UpdateTravelOptionRequest struct {
	Type          *string    `json:"type,omitempty"`
	Source        *string    `json:"source,omitempty"`
	Destination   *string    `json:"destination,omitempty"`
	DepartureTime *time.Time `json:"departureTime,omitempty"`
	PricePerSeat  *float64   `json:"pricePerSeat,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервисного слоя
func (r *UpdateTravelOptionRequest) ToServiceRequest(userID int64) *models.UpdateTravelOptionRequest {
	return &models.UpdateTravelOptionRequest{
		UserID:        userID,
		Type:          r.Type,
		Source:        r.Source,
		Destination:   r.Destination,
		DepartureTime: r.DepartureTime,
		PricePerSeat:  r.PricePerSeat,
	}
}
