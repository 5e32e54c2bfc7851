package create_travel_option

import (
	"errors"
	"net/http"

	"github.com/avlasov-n/TRV-BookingService/internal/api/handlers"
	"github.com/avlasov-n/TRV-BookingService/internal/api/middleware"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/travel-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идентифицируем инициатора запроса
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /travel-options - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body
	var req CreateTravelOptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /travel-options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем вариант поездки
	option, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, traveloptions.ErrAccessDenied):
			h.logger.Warn("POST /travel-options - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, traveloptions.ErrInvalidInput):
			h.logger.Warn("POST /travel-options - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /travel-options - Failed to create travel option: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /travel-options - Travel option created: travel_option_id=%d, user_id=%d",
		option.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, option)
}
