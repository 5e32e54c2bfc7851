package domain

import "time"

// TravelType represents the category of a travel option
type TravelType string

const (
	TypeBus    TravelType = "bus"
	TypeTrain  TravelType = "train"
	TypeFlight TravelType = "flight"
)

// TravelOption represents a bookable trip with finite seat capacity
type TravelOption struct {
	ID             int64
	Type           TravelType
	Source         string
	Destination    string
	DepartureTime  time.Time
	PricePerSeat   float64
	TotalSeats     int
	AvailableSeats int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSeats returns true if at least n seats are available
func (t *TravelOption) HasSeats(n int) bool {
	return t.AvailableSeats >= n
}

// IsSoldOut returns true if no seats are left
func (t *TravelOption) IsSoldOut() bool {
	return t.AvailableSeats <= 0
}

// IsDeparted returns true if the trip has already departed at the given moment
func (t *TravelOption) IsDeparted(now time.Time) bool {
	return !t.DepartureTime.After(now)
}

// TravelOptionFilter фильтр для поиска вариантов поездок
type TravelOptionFilter struct {
	Type        *TravelType // Фильтр по типу транспорта (опционально)
	Source      *string     // Подстрока пункта отправления (опционально)
	Destination *string     // Подстрока пункта назначения (опционально)
	Date        *time.Time  // День отправления (опционально, если nil - без ограничения)
}
