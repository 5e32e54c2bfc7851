package get_travel_option

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlasov-n/TRV-BookingService/internal/api/handlers"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions"
)

const (
	msgInvalidTravelOptionID = "некорректный ID варианта поездки"
	msgNotFound              = "вариант поездки не найден"
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

// Handle GET /api/v1/travel-options/{travelOptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем travelOptionId из URL
	vars := mux.Vars(r)
	optionIDStr := vars["travelOptionId"]

	optionID, err := strconv.ParseInt(optionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /travel-options/{id} - Invalid travel option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTravelOptionID)
		return
	}

	// Получаем вариант поездки
	option, err := h.service.GetByID(r.Context(), optionID)
	if err != nil {
		switch {
		case errors.Is(err, traveloptions.ErrTravelOptionNotFound):
			h.logger.Warn("GET /travel-options/{id} - Travel option not found: travel_option_id=%d", optionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /travel-options/{id} - Failed to get travel option: travel_option_id=%d, error=%v",
				optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /travel-options/{id} - Travel option retrieved: travel_option_id=%d", optionID)
	handlers.RespondJSON(w, http.StatusOK, option)
}
