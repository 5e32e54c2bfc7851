package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/booking"
	travelRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	userClient "github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	travelRepo  TravelOptionRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
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
		bookingRepo: bookingRepo,
		travelRepo:  travelRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
// Смена статуса и возврат мест выполняются в одной сериализуемой транзакции.
// Условие status = confirmed входит в сам UPDATE смены статуса: повторная
// отмена завершается ErrAlreadyCancelled и не возвращает места второй раз
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 || req.UserID <= 0 {
		uc.logger.Warn("CancelBooking: invalid input: booking=%d, user=%d", req.BookingID, req.UserID)
		return fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	// 2. Получаем бронирование для проверки прав доступа
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа: владелец или администратор
	// (внешний HTTP вызов до транзакции, чтобы не держать блокировки)
	if booking.UserID != req.UserID {
		if err := uc.checkAdminAccess(ctx, req.UserID); err != nil {
			uc.logger.Warn("CancelBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return err
		}
	}

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Условный перевод confirmed -> cancelled
		if err := uc.bookingRepo.CancelConfirmed(txCtx, req.BookingID); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
				uc.logger.Warn("CancelBooking: booking id=%d already cancelled", req.BookingID)
				return ErrAlreadyCancelled
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			default:
				uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
			}
		}

		// 4.2. Возвращаем места рейсу
		if err := uc.travelRepo.RestoreSeats(txCtx, booking.TravelOptionID, booking.NumSeats); err != nil {
			if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
				// Бронирование ссылается на несуществующий рейс: нарушен FK,
				// оставляем транзакции откатиться
				uc.logger.Error("CancelBooking: travel option id=%d missing for booking id=%d",
					booking.TravelOptionID, req.BookingID)
			}
			uc.logger.Error("CancelBooking: failed to restore seats: %v", err)
			return fmt.Errorf("%w: failed to restore seats: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, restored %d seats",
		req.BookingID, booking.NumSeats)
	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (uc *UseCase) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := uc.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("CancelBooking: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		return ErrAccessDenied
	}

	return nil
}
