package list_travel_options

import (
	"context"

	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

type TravelOptionService interface {
	List(ctx context.Context, req *models.ListTravelOptionsRequest) (*models.TravelOptionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
