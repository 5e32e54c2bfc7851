package update_travel_option

import (
	"context"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

type TravelOptionService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTravelOptionRequest) (*models.TravelOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
