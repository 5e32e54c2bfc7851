package traveloption

import "errors"

var (
	// ErrTravelOptionNotFound возвращается, когда вариант поездки не найден
	ErrTravelOptionNotFound = errors.New("traveloption.repository: travel option not found")

	// ErrNotEnoughSeats возвращается, когда свободных мест меньше запрошенного
	ErrNotEnoughSeats = errors.New("traveloption.repository: not enough available seats")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("traveloption.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("traveloption.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("traveloption.repository: failed to scan row")

	// ErrSeatsOverflow возвращается при попытке вернуть мест больше, чем было продано
	ErrSeatsOverflow = errors.New("traveloption.repository: seat restore exceeds total seats")
)
