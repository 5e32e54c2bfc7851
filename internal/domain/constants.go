package domain

// Business validation constants
const (
	MinSeatsPerBooking = 1
	MaxLocationLength  = 150
	MinTotalSeats      = 1
	MaxTotalSeats      = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TravelTypes список допустимых типов транспорта
// Используется при валидации создания и обновления вариантов поездок
var TravelTypes = []TravelType{
	TypeBus,
	TypeTrain,
	TypeFlight,
}

// IsValidTravelType проверяет, что тип транспорта допустим
func IsValidTravelType(t TravelType) bool {
	for _, valid := range TravelTypes {
		if t == valid {
			return true
		}
	}
	return false
}
