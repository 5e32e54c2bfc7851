package create_travel_option

import (
	"context"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

type TravelOptionService interface {
	Create(ctx context.Context, req *models.CreateTravelOptionRequest) (*models.TravelOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
