package create_booking

import (
	"time"

	createBooking "github.com/avlasov-n/TRV-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID         int64 `json:"userId"`
	TravelOptionID int64 `json:"travelOptionId"`
	NumSeats       int   `json:"numSeats"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	TravelOptionID int64   `json:"travelOptionId"`
	NumSeats       int     `json:"numSeats"`
	TotalPrice     float64 `json:"totalPrice"`
	Status         string  `json:"status"`
	BookingDate    string  `json:"bookingDate"`
	TravelType     string  `json:"travelType"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departureTime"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		UserID:         r.UserID,
		TravelOptionID: r.TravelOptionID,
		NumSeats:       r.NumSeats,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		TravelOptionID: resp.TravelOptionID,
		NumSeats:       resp.NumSeats,
		TotalPrice:     resp.TotalPrice,
		Status:         resp.Status,
		BookingDate:    resp.BookingDate.Format(time.RFC3339),
		TravelType:     string(resp.TravelType),
		Source:         resp.Source,
		Destination:    resp.Destination,
		DepartureTime:  resp.DepartureTime.Format(time.RFC3339),
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
