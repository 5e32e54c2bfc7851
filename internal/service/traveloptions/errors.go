package traveloptions

import "errors"

var (
	// ErrTravelOptionNotFound возвращается, когда вариант поездки не найден
	ErrTravelOptionNotFound = errors.New("travel option not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrHasActiveBookings возвращается при попытке удалить рейс с действующими бронированиями
	ErrHasActiveBookings = errors.New("travel option has active bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
