package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	bookingRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/booking"
	"github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
	"github.com/avlasov-n/TRV-BookingService/internal/service/bookings/models"
)

// Моки зависимостей

type mockBookingRepo struct {
	getByIDFunc     func(ctx context.Context, id int64) (*domain.Booking, error)
	getByUserIDFunc func(ctx context.Context, userID int64, status *domain.BookingStatus, includeCancelled bool) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus, includeCancelled bool) ([]*domain.Booking, error) {
	return m.getByUserIDFunc(ctx, userID, status, includeCancelled)
}

type mockUserClient struct {
	getUserFunc func(ctx context.Context, userID int64) (*userservice.User, error)
}

func (m *mockUserClient) GetUser(ctx context.Context, userID int64) (*userservice.User, error) {
	return m.getUserFunc(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:             42,
		UserID:         10,
		TravelOptionID: 1,
		NumSeats:       2,
		TotalPrice:     1000,
		Status:         domain.StatusConfirmed,
		BookingDate:    time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		TravelType:     domain.TypeBus,
		Source:         "Казань",
		Destination:    "Нижний Новгород",
		DepartureTime:  time.Date(2026, 9, 15, 7, 0, 0, 0, time.UTC),
	}
}

func TestGetByID_OwnerAccess(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, id int64) (*domain.Booking, error) {
			assert.Equal(t, int64(42), id)
			return testBooking(), nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			t.Fatal("GetUser should not be called for the booking owner")
			return nil, nil
		},
	}

	svc := NewService(repo, uClient, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, 10)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "bus", resp.TravelType)
	assert.Nil(t, resp.CancelledAt)
}

func TestGetByID_AdminAccess(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return testBooking(), nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, userID int64) (*userservice.User, error) {
			assert.Equal(t, int64(77), userID)
			return &userservice.User{ID: 77, IsAdmin: true}, nil
		},
	}

	svc := NewService(repo, uClient, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, 77)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.UserID)
}

func TestGetByID_ForeignUserDenied(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return testBooking(), nil
		},
	}
	uClient := &mockUserClient{
		getUserFunc: func(_ context.Context, _ int64) (*userservice.User, error) {
			return &userservice.User{ID: 77, IsAdmin: false}, nil
		},
	}

	svc := NewService(repo, uClient, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, 77)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.Booking, error) {
			return nil, bookingRepo.ErrBookingNotFound
		},
	}

	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 999, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, resp)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	var gotStatus *domain.BookingStatus
	var gotIncludeCancelled bool

	repo := &mockBookingRepo{
		getByUserIDFunc: func(_ context.Context, userID int64, status *domain.BookingStatus, includeCancelled bool) ([]*domain.Booking, error) {
			assert.Equal(t, int64(10), userID)
			gotStatus = status
			gotIncludeCancelled = includeCancelled
			return []*domain.Booking{testBooking()}, nil
		},
	}

	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	status := "cancelled"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:           10,
		Status:           &status,
		IncludeCancelled: true,
	})

	require.NoError(t, err)
	require.NotNil(t, gotStatus)
	assert.Equal(t, domain.StatusCancelled, *gotStatus)
	assert.True(t, gotIncludeCancelled)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	repo := &mockBookingRepo{
		getByUserIDFunc: func(_ context.Context, _ int64, _ *domain.BookingStatus, _ bool) ([]*domain.Booking, error) {
			t.Fatal("repository should not be called for invalid status")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	status := "pending"
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: &status,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestGetUserBookings_EmptyResult(t *testing.T) {
	repo := &mockBookingRepo{
		getByUserIDFunc: func(_ context.Context, _ int64, _ *domain.BookingStatus, _ bool) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Empty(t, resp.Bookings)
}
