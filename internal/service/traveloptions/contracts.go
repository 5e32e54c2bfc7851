package traveloptions

import (
	"context"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	"github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
)

// TravelOptionRepository интерфейс репозитория вариантов поездок
type TravelOptionRepository interface {
	Create(ctx context.Context, option *domain.TravelOption) (*domain.TravelOption, error)
	GetByID(ctx context.Context, id int64) (*domain.TravelOption, error)
	List(ctx context.Context, filter domain.TravelOptionFilter) ([]*domain.TravelOption, error)
	Update(ctx context.Context, option *domain.TravelOption) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Используется для защиты от удаления рейса с проданными местами
type BookingRepository interface {
	CountConfirmedByTravelOption(ctx context.Context, travelOptionID int64) (int64, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
