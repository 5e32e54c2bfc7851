package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	travelRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	userClient "github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	travelRepo   TravelOptionRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	travelRepo TravelOptionRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		travelRepo:   travelRepo,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Списание мест и вставка бронирования выполняются в одной сериализуемой
// транзакции: либо происходят обе записи, либо ни одной.
// Условие available_seats >= numSeats входит в сам UPDATE списания, поэтому
// два конкурентных бронирования последних мест не могут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, travelOption=%d, seats=%d",
		req.UserID, req.TravelOptionID, req.NumSeats)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование пользователя во внешнем identity-сервисе
	// (до транзакции: HTTP вызовы внутри транзакции держали бы блокировки)
	if _, err := uc.userClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем вариант поездки (FOR UPDATE внутри транзакции)
		option, err := uc.travelRepo.GetByID(txCtx, req.TravelOptionID)
		if err != nil {
			if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
				uc.logger.Warn("CreateBooking: travel option id=%d not found", req.TravelOptionID)
				return ErrTravelOptionNotFound
			}
			uc.logger.Error("CreateBooking: failed to get travel option id=%d: %v", req.TravelOptionID, err)
			return fmt.Errorf("%w: failed to get travel option: %v", ErrInternal, err)
		}

		// 4.2. Атомарно списываем места с проверкой доступности
		if err := uc.travelRepo.DecrementSeats(txCtx, req.TravelOptionID, req.NumSeats); err != nil {
			switch {
			case errors.Is(err, travelRepo.ErrNotEnoughSeats):
				uc.logger.Warn("CreateBooking: not enough seats for travel option id=%d: requested=%d, available=%d",
					req.TravelOptionID, req.NumSeats, option.AvailableSeats)
				return ErrNotEnoughSeats
			case errors.Is(err, travelRepo.ErrTravelOptionNotFound):
				return ErrTravelOptionNotFound
			default:
				uc.logger.Error("CreateBooking: failed to decrement seats: %v", err)
				return fmt.Errorf("%w: failed to decrement seats: %v", ErrInternal, err)
			}
		}

		// 4.3. Создаем бронирование со снимком цены и данных рейса
		booking := &domain.Booking{
			UserID:         req.UserID,
			TravelOptionID: req.TravelOptionID,
			NumSeats:       req.NumSeats,
			TotalPrice:     float64(req.NumSeats) * option.PricePerSeat,
			Status:         domain.StatusConfirmed,
			BookingDate:    now,
			// Денормализация данных рейса
			TravelType:    option.Type,
			Source:        option.Source,
			Destination:   option.Destination,
			DepartureTime: option.DepartureTime,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, totalPrice=%.2f",
		result.ID, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		TravelOptionID: result.TravelOptionID,
		NumSeats:       result.NumSeats,
		TotalPrice:     result.TotalPrice,
		Status:         string(result.Status),
		BookingDate:    result.BookingDate,
		TravelType:     result.TravelType,
		Source:         result.Source,
		Destination:    result.Destination,
		DepartureTime:  result.DepartureTime,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
