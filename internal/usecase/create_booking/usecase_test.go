package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	travelRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	"github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
)

// Моки зависимостей

type mockBookingRepo struct {
	createFunc func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFunc(ctx, booking)
}

type mockTravelRepo struct {
	getByIDFunc        func(ctx context.Context, id int64) (*domain.TravelOption, error)
	decrementSeatsFunc func(ctx context.Context, id int64, numSeats int) error
}

func (m *mockTravelRepo) GetByID(ctx context.Context, id int64) (*domain.TravelOption, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTravelRepo) DecrementSeats(ctx context.Context, id int64, numSeats int) error {
	return m.decrementSeatsFunc(ctx, id, numSeats)
}

type mockUserClient struct {
	getUserFunc func(ctx context.Context, userID int64) (*userservice.User, error)
}

func (m *mockUserClient) GetUser(ctx context.Context, userID int64) (*userservice.User, error) {
	return m.getUserFunc(ctx, userID)
}

// mockTxManager прозрачно выполняет функцию без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Вспомогательные конструкторы

func validUser() *userservice.User {
	return &userservice.User{ID: 10, Username: "ivan", Email: "ivan@example.com"}
}

func validOption(available int) *domain.TravelOption {
	return &domain.TravelOption{
		ID:             1,
		Type:           domain.TypeTrain,
		Source:         "Москва",
		Destination:    "Санкт-Петербург",
		DepartureTime:  time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC),
		PricePerSeat:   500,
		TotalSeats:     100,
		AvailableSeats: available,
	}
}

func newTestUseCase(
	bookingRepo BookingRepository,
	trvRepo TravelOptionRepository,
	userClient UserServiceClient,
) *UseCase {
	return NewUseCase(bookingRepo, trvRepo, userClient, &mockTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	option := validOption(20)

	var createdBooking *domain.Booking
	bookingRepo := &mockBookingRepo{
		createFunc: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			createdBooking = b
			saved := *b
			saved.ID = 42
			return &saved, nil
		},
	}
	trvRepo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, id int64) (*domain.TravelOption, error) {
			assert.Equal(t, int64(1), id)
			return option, nil
		},
		decrementSeatsFunc: func(_ context.Context, id int64, numSeats int) error {
			assert.Equal(t, int64(1), id)
			assert.Equal(t, 4, numSeats)
			return nil
		},
	}
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, userID int64) (*userservice.User, error) {
			assert.Equal(t, int64(10), userID)
			return validUser(), nil
		},
	}

	uc := newTestUseCase(bookingRepo, trvRepo, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       4,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, int64(10), resp.UserID)
	assert.Equal(t, 4, resp.NumSeats)
	// Снимок цены: 4 места по 500
	assert.Equal(t, 2000.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// Денормализованные данные рейса
	assert.Equal(t, domain.TypeTrain, resp.TravelType)
	assert.Equal(t, "Москва", resp.Source)
	assert.Equal(t, "Санкт-Петербург", resp.Destination)
	assert.Equal(t, option.DepartureTime, resp.DepartureTime)

	require.NotNil(t, createdBooking)
	assert.Equal(t, domain.StatusConfirmed, createdBooking.Status)
}

func TestExecute_ExactCapacity(t *testing.T) {
	// Бронирование ровно последних мест проходит успешно
	option := validOption(3)

	bookingRepo := &mockBookingRepo{
		createFunc: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			saved := *b
			saved.ID = 7
			return &saved, nil
		},
	}
	trvRepo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return option, nil
		},
		decrementSeatsFunc: func(_ context.Context, _ int64, numSeats int) error {
			assert.Equal(t, 3, numSeats)
			return nil
		},
	}
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return validUser(), nil
		},
	}

	uc := newTestUseCase(bookingRepo, trvRepo, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       3,
	})

	require.NoError(t, err)
	assert.Equal(t, 1500.0, resp.TotalPrice)
}

func TestExecute_NotEnoughSeats(t *testing.T) {
	option := validOption(2)

	bookingCreated := false
	bookingRepo := &mockBookingRepo{
		createFunc: func(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
			bookingCreated = true
			return b, nil
		},
	}
	trvRepo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return option, nil
		},
		decrementSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			return travelRepo.ErrNotEnoughSeats
		},
	}
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return validUser(), nil
		},
	}

	uc := newTestUseCase(bookingRepo, trvRepo, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotEnoughSeats)
	assert.Nil(t, resp)
	// При отказе в списании мест бронирование не создается
	assert.False(t, bookingCreated)
}

func TestExecute_TravelOptionNotFound(t *testing.T) {
	trvRepo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return nil, travelRepo.ErrTravelOptionNotFound
		},
		decrementSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			t.Fatal("DecrementSeats should not be called")
			return nil
		},
	}
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return validUser(), nil
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, trvRepo, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		TravelOptionID: 999,
		NumSeats:       1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTravelOptionNotFound)
	assert.Nil(t, resp)
}

func TestExecute_UserNotFound(t *testing.T) {
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return nil, userservice.ErrUserNotFound
		},
	}

	uc := newTestUseCase(&mockBookingRepo{}, &mockTravelRepo{}, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         99,
		TravelOptionID: 1,
		NumSeats:       1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestExecute_BookingCreateFails(t *testing.T) {
	option := validOption(20)

	bookingRepo := &mockBookingRepo{
		createFunc: func(_ context.Context, _ *domain.Booking) (*domain.Booking, error) {
			return nil, errors.New("insert failed")
		},
	}
	trvRepo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return option, nil
		},
		decrementSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			return nil
		},
	}
	userClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return validUser(), nil
		},
	}

	uc := newTestUseCase(bookingRepo, trvRepo, userClient)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, resp)
}
