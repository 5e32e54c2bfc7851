package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of seats on a travel option
type Booking struct {
	ID             int64
	UserID         int64
	TravelOptionID int64
	NumSeats       int
	TotalPrice     float64
	Status         BookingStatus
	BookingDate    time.Time

	// Denormalized trip data for history: the booking keeps what was sold
	// even if the travel option is edited afterwards
	TravelType    TravelType
	Source        string
	Destination   string
	DepartureTime time.Time

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking holds seats
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}
