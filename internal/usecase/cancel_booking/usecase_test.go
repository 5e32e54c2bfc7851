package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	bookingRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/booking"
	"github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
)

// Моки зависимостей

type mockBookingRepo struct {
	getByIDFunc         func(ctx context.Context, id int64) (*domain.Booking, error)
	cancelConfirmedFunc func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingRepo) CancelConfirmed(ctx context.Context, id int64) error {
	return m.cancelConfirmedFunc(ctx, id)
}

type mockTravelRepo struct {
	restoreSeatsFunc func(ctx context.Context, id int64, numSeats int) error
}

func (m *mockTravelRepo) RestoreSeats(ctx context.Context, id int64, numSeats int) error {
	return m.restoreSeatsFunc(ctx, id, numSeats)
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

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:             42,
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       3,
		TotalPrice:     1500,
		Status:         domain.StatusConfirmed,
		BookingDate:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(
	bRepo BookingRepository,
	tRepo TravelOptionRepository,
	uClient UserServiceClient,
) *UseCase {
	return NewUseCase(bRepo, tRepo, uClient, &mockTxManager{}, nopLogger{})
}

func TestExecute_OwnerCancelsSuccessfully(t *testing.T) {
	restoredSeats := 0
	bRepo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, id int64) (*domain.Booking, error) {
			assert.Equal(t, int64(42), id)
			return confirmedBooking(), nil
		},
		cancelConfirmedFunc: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(42), id)
			return nil
		},
	}
	tRepo := &mockTravelRepo{
		restoreSeatsFunc: func(_ context.Context, id int64, numSeats int) error {
			assert.Equal(t, int64(1), id)
			restoredSeats += numSeats
			return nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			t.Fatal("GetUser should not be called for the booking owner")
			return nil, nil
		},
	}

	uc := newTestUseCase(bRepo, tRepo, uClient)

	err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})

	require.NoError(t, err)
	// Рейсу возвращены ровно забронированные места
	assert.Equal(t, 3, restoredSeats)
}

func TestExecute_AdminCancelsForeignBooking(t *testing.T) {
	bRepo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelConfirmedFunc: func(_ context.Context, _ int64) error {
			return nil
		},
	}
	tRepo := &mockTravelRepo{
		restoreSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			return nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, userID int64) (*userservice.User, error) {
			assert.Equal(t, int64(77), userID)
			return &userservice.User{ID: 77, IsAdmin: true}, nil
		},
	}

	uc := newTestUseCase(bRepo, tRepo, uClient)

	err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 77})

	require.NoError(t, err)
}

func TestExecute_ForeignUserDenied(t *testing.T) {
	cancelCalled := false
	bRepo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return confirmedBooking(), nil
		},
		cancelConfirmedFunc: func(_ context.Context, _ int64) error {
			cancelCalled = true
			return nil
		},
	}
	tRepo := &mockTravelRepo{
		restoreSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			return nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return &userservice.User{ID: 77, IsAdmin: false}, nil
		},
	}

	uc := newTestUseCase(bRepo, tRepo, uClient)

	err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 77})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, cancelCalled)
}

func TestExecute_AlreadyCancelledDoesNotRestoreSeats(t *testing.T) {
	restoreCalled := false
	bRepo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			b := confirmedBooking()
			b.Status = domain.StatusCancelled
			return b, nil
		},
		cancelConfirmedFunc: func(_ context.Context, _ int64) error {
			return bookingRepo.ErrAlreadyCancelled
		},
	}
	tRepo := &mockTravelRepo{
		restoreSeatsFunc: func(_ context.Context, _ int64, _ int) error {
			restoreCalled = true
			return nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return nil, nil
		},
	}

	uc := newTestUseCase(bRepo, tRepo, uClient)

	err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	// Повторная отмена не возвращает места второй раз
	assert.False(t, restoreCalled)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bRepo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	uc := newTestUseCase(bRepo, &mockTravelRepo{}, &mockUserClient{})

	err := uc.Execute(context.Background(), &Request{BookingID: 999, UserID: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockTravelRepo{}, &mockUserClient{})

	err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), &Request{BookingID: 42, UserID: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
