package update_travel_option

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
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgForbidden             = "доступ запрещен"
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

// Handle PUT /api/v1/travel-options/{travelOptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идентифицируем инициатора запроса
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /travel-options/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Извлекаем travelOptionId из URL
	vars := mux.Vars(r)
	optionIDStr := vars["travelOptionId"]

	optionID, err := strconv.ParseInt(optionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /travel-options/{id} - Invalid travel option ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTravelOptionID)
		return
	}

	// Декодируем body
	var req UpdateTravelOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /travel-options/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем вариант поездки
	option, err := h.service.Update(r.Context(), optionID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, traveloptions.ErrAccessDenied):
			h.logger.Warn("PUT /travel-options/{id} - Access denied: travel_option_id=%d, user_id=%d",
				optionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, traveloptions.ErrTravelOptionNotFound):
			h.logger.Warn("PUT /travel-options/{id} - Travel option not found: travel_option_id=%d", optionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, traveloptions.ErrInvalidInput):
			h.logger.Warn("PUT /travel-options/{id} - Invalid input: travel_option_id=%d, error=%v",
				optionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /travel-options/{id} - Failed to update travel option: travel_option_id=%d, error=%v",
				optionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /travel-options/{id} - Travel option updated: travel_option_id=%d, user_id=%d",
		optionID, userID)
	handlers.RespondJSON(w, http.StatusOK, option)
}
