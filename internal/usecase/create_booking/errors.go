package create_booking

import "errors"

var (
	// ErrTravelOptionNotFound возвращается, когда вариант поездки не найден
	ErrTravelOptionNotFound = errors.New("create_booking: travel option not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrNotEnoughSeats возвращается, когда свободных мест меньше запрошенного
	ErrNotEnoughSeats = errors.New("create_booking: not enough available seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
