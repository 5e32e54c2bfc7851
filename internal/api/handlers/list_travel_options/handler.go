package list_travel_options

import (
	"errors"
	"net/http"
	"time"

	"github.com/avlasov-n/TRV-BookingService/internal/api/handlers"
	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service TravelOptionService
	logger  Logger
}

func NewHandler(service TravelOptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/travel-options
// Query параметры: type, source, destination, date (все опциональные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListTravelOptionsRequest{}

	if v := query.Get("type"); v != "" {
		req.Type = &v
	}
	if v := query.Get("source"); v != "" {
		req.Source = &v
	}
	if v := query.Get("destination"); v != "" {
		req.Destination = &v
	}
	if v := query.Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /travel-options - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	// Получаем варианты поездок
	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, traveloptions.ErrInvalidInput) {
			h.logger.Warn("GET /travel-options - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /travel-options - Failed to list travel options: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /travel-options - Travel options retrieved successfully: count=%d",
		len(result.TravelOptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
