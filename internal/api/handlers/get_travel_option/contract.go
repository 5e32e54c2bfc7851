package get_travel_option

import (
	"context"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

type TravelOptionService interface {
	GetByID(ctx context.Context, id int64) (*models.TravelOptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
