package delete_travel_option

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avlasov-n/TRV-BookingService/internal/api/handlers"
	"github.com/avlasov-n/TRV-BookingService/internal/api/middleware"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions"
)

const (
	msgUnauthorized          = "требуется аутентификация"
	msgInvalidTravelOptionID = "некорректный ID варианта поездки"
	msgForbidden             = "доступ запрещен"
	msgNotFound              = "вариант поездки не найден"
	msgHasActiveBookings     = "у варианта поездки есть действующие бронирования"
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

// Handle DELETE /api/v1/travel-options/{travelOptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идентифицируем инициатора запроса
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /travel-options/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем travelOptionId из URL
	vars := mux.Vars(r)
	optionIDStr := vars["travelOptionId"]

	optionID, err := strconv.ParseInt(optionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /travel-options/{id} - Invalid travel option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTravelOptionID)
		return
	}

	// Удаляем вариант поездки
	err = h.service.Delete(r.Context(), optionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, traveloptions.ErrAccessDenied):
			h.logger.Warn("DELETE /travel-options/{id} - Access denied: travel_option_id=%d, user_id=%d",
				optionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, traveloptions.ErrTravelOptionNotFound):
			h.logger.Warn("DELETE /travel-options/{id} - Travel option not found: travel_option_id=%d", optionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, traveloptions.ErrHasActiveBookings):
			h.logger.Warn("DELETE /travel-options/{id} - Has active bookings: travel_option_id=%d", optionID)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /travel-options/{id} - Failed to delete travel option: travel_option_id=%d, error=%v",
				optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /travel-options/{id} - Travel option deleted: travel_option_id=%d, user_id=%d",
		optionID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
