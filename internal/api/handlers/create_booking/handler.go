package create_booking

import (
	"errors"
	"net/http"

	"github.com/avlasov-n/TRV-BookingService/internal/api/handlers"
	createBooking "github.com/avlasov-n/TRV-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgNotEnoughSeats       = "недостаточно свободных мест"
	msgTravelOptionNotFound = "вариант поездки не найден"
	msgUserNotFound         = "пользователь не найден"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, travel_option_id=%d, seats=%d",
				req.UserID, req.TravelOptionID, req.NumSeats)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrNotEnoughSeats):
			h.logger.Warn("POST /bookings - Not enough seats: user_id=%d, travel_option_id=%d, seats=%d",
				req.UserID, req.TravelOptionID, req.NumSeats)
			handlers.RespondConflict(w, msgNotEnoughSeats)

		case errors.Is(err, createBooking.ErrTravelOptionNotFound):
			h.logger.Warn("POST /bookings - Travel option not found: travel_option_id=%d", req.TravelOptionID)
			handlers.RespondNotFound(w, msgTravelOptionNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, travel_option_id=%d, error=%v",
				req.UserID, req.TravelOptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, travel_option_id=%d",
		result.ID, req.UserID, req.TravelOptionID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
