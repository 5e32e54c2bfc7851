package create_booking

import (
	"fmt"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TravelOptionID <= 0 {
		return fmt.Errorf("%w: travelOptionID must be positive", ErrInvalidInput)
	}

	if req.NumSeats < domain.MinSeatsPerBooking {
		return fmt.Errorf("%w: numSeats must be at least %d", ErrInvalidInput, domain.MinSeatsPerBooking)
	}

	return nil
}
