package create_booking

import (
	"time"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64 // ID пользователя
	TravelOptionID int64 // ID варианта поездки
	NumSeats       int   // Количество бронируемых мест
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64     // ID созданного бронирования
	UserID         int64     // ID пользователя
	TravelOptionID int64     // ID варианта поездки
	NumSeats       int       // Количество мест
	TotalPrice     float64   // Итоговая цена (снимок на момент бронирования)
	Status         string    // Статус бронирования
	BookingDate    time.Time // Дата бронирования

	// Денормализованные данные рейса
	TravelType    domain.TravelType // Тип транспорта
	Source        string            // Пункт отправления
	Destination   string            // Пункт назначения
	DepartureTime time.Time         // Время отправления

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
