package traveloptions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	travelRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	"github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
	"github.com/avlasov-n/TRV-BookingService/pkg/ptr"
)

// Моки зависимостей

type mockTravelRepo struct {
	createFunc  func(ctx context.Context, option *domain.TravelOption) (*domain.TravelOption, error)
	getByIDFunc func(ctx context.Context, id int64) (*domain.TravelOption, error)
	listFunc    func(ctx context.Context, filter domain.TravelOptionFilter) ([]*domain.TravelOption, error)
	updateFunc  func(ctx context.Context, option *domain.TravelOption) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockTravelRepo) Create(ctx context.Context, option *domain.TravelOption) (*domain.TravelOption, error) {
	return m.createFunc(ctx, option)
}

func (m *mockTravelRepo) GetByID(ctx context.Context, id int64) (*domain.TravelOption, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockTravelRepo) List(ctx context.Context, filter domain.TravelOptionFilter) ([]*domain.TravelOption, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockTravelRepo) Update(ctx context.Context, option *domain.TravelOption) error {
	return m.updateFunc(ctx, option)
}

func (m *mockTravelRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type mockBookingRepo struct {
	countFunc func(ctx context.Context, travelOptionID int64) (int64, error)
}

func (m *mockBookingRepo) CountConfirmedByTravelOption(ctx context.Context, travelOptionID int64) (int64, error) {
	return m.countFunc(ctx, travelOptionID)
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

func adminClient() *mockUserClient {
	return &mockUserClient{
		getUserFunc: func(_ context.Context, userID int64) (*userservice.User, error) {
			return &userservice.User{ID: userID, IsAdmin: true}, nil
		},
	}
}

func regularClient() *mockUserClient {
	return &mockUserClient{
		getUserFunc: func(_ context.Context, userID int64) (*userservice.User, error) {
			return &userservice.User{ID: userID, IsAdmin: false}, nil
		},
	}
}

func testOption() *domain.TravelOption {
	return &domain.TravelOption{
		ID:             1,
		Type:           domain.TypeFlight,
		Source:         "Москва",
		Destination:    "Сочи",
		DepartureTime:  time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		PricePerSeat:   4500,
		TotalSeats:     150,
		AvailableSeats: 120,
	}
}

func TestCreate_Success(t *testing.T) {
	var createdOption *domain.TravelOption
	repo := &mockTravelRepo{
		createFunc: func(_ context.Context, option *domain.TravelOption) (*domain.TravelOption, error) {
			createdOption = option
			saved := *option
			saved.ID = 5
			return &saved, nil
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, adminClient(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateTravelOptionRequest{
		UserID:        1,
		Type:          "flight",
		Source:        "Москва",
		Destination:   "Сочи",
		DepartureTime: time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC),
		PricePerSeat:  4500,
		TotalSeats:    150,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	// Новый рейс продается целиком
	require.NotNil(t, createdOption)
	assert.Equal(t, 150, createdOption.AvailableSeats)
	assert.Equal(t, 150, createdOption.TotalSeats)
}

func TestCreate_AccessDeniedForRegularUser(t *testing.T) {
	repo := &mockTravelRepo{
		createFunc: func(_ context.Context, _ *domain.TravelOption) (*domain.TravelOption, error) {
			t.Fatal("Create should not be called without admin rights")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, regularClient(), nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateTravelOptionRequest{
		UserID:        2,
		Type:          "bus",
		Source:        "A",
		Destination:   "B",
		DepartureTime: time.Now().Add(24 * time.Hour),
		PricePerSeat:  100,
		TotalSeats:    40,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, resp)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockTravelRepo{}, &mockBookingRepo{}, adminClient(), nopLogger{})

	tests := []struct {
		name string
		req  *models.CreateTravelOptionRequest
	}{
		{
			name: "недопустимый тип транспорта",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "boat", Source: "A", Destination: "B",
				DepartureTime: time.Now(), PricePerSeat: 100, TotalSeats: 10,
			},
		},
		{
			name: "пустой пункт отправления",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "bus", Source: "  ", Destination: "B",
				DepartureTime: time.Now(), PricePerSeat: 100, TotalSeats: 10,
			},
		},
		{
			name: "отрицательная цена",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "bus", Source: "A", Destination: "B",
				DepartureTime: time.Now(), PricePerSeat: -1, TotalSeats: 10,
			},
		},
		{
			name: "нулевое количество мест",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "bus", Source: "A", Destination: "B",
				DepartureTime: time.Now(), PricePerSeat: 100, TotalSeats: 0,
			},
		},
		{
			name: "слишком много мест",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "bus", Source: "A", Destination: "B",
				DepartureTime: time.Now(), PricePerSeat: 100, TotalSeats: 1001,
			},
		},
		{
			name: "нулевое время отправления",
			req: &models.CreateTravelOptionRequest{
				UserID: 1, Type: "bus", Source: "A", Destination: "B",
				PricePerSeat: 100, TotalSeats: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	var updatedOption *domain.TravelOption
	repo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return testOption(), nil
		},
		updateFunc: func(_ context.Context, option *domain.TravelOption) error {
			updatedOption = option
			return nil
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, adminClient(), nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateTravelOptionRequest{
		UserID:       1,
		PricePerSeat: ptr.Ptr(5000.0),
	})

	require.NoError(t, err)
	require.NotNil(t, updatedOption)
	// Обновилась только цена, остальные поля сохранены
	assert.Equal(t, 5000.0, updatedOption.PricePerSeat)
	assert.Equal(t, "Москва", updatedOption.Source)
	assert.Equal(t, 120, updatedOption.AvailableSeats)
	assert.Equal(t, 5000.0, resp.PricePerSeat)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockTravelRepo{
		getByIDFunc: func(_ context.Context, _ int64) (*domain.TravelOption, error) {
			return nil, travelRepo.ErrTravelOptionNotFound
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, adminClient(), nopLogger{})

	resp, err := svc.Update(context.Background(), 999, &models.UpdateTravelOptionRequest{UserID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTravelOptionNotFound)
	assert.Nil(t, resp)
}

func TestDelete_Success(t *testing.T) {
	deleted := false
	repo := &mockTravelRepo{
		deleteFunc: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(1), id)
			deleted = true
			return nil
		},
	}
	bRepo := &mockBookingRepo{
		countFunc: func(_ context.Context, _ int64) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, bRepo, adminClient(), nopLogger{})

	err := svc.Delete(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDelete_HasActiveBookings(t *testing.T) {
	repo := &mockTravelRepo{
		deleteFunc: func(_ context.Context, _ int64) error {
			t.Fatal("Delete should not be called when active bookings exist")
			return nil
		},
	}
	bRepo := &mockBookingRepo{
		countFunc: func(_ context.Context, _ int64) (int64, error) {
			return 3, nil
		},
	}

	svc := NewService(repo, bRepo, adminClient(), nopLogger{})

	err := svc.Delete(context.Background(), 1, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHasActiveBookings)
}

func TestDelete_AccessDenied(t *testing.T) {
	svc := NewService(&mockTravelRepo{}, &mockBookingRepo{}, regularClient(), nopLogger{})

	err := svc.Delete(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_InvalidType(t *testing.T) {
	repo := &mockTravelRepo{
		listFunc: func(_ context.Context, _ domain.TravelOptionFilter) ([]*domain.TravelOption, error) {
			t.Fatal("List should not be called for invalid type filter")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, &mockUserClient{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListTravelOptionsRequest{
		Type: ptr.Ptr("submarine"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestList_PassesFilter(t *testing.T) {
	var gotFilter domain.TravelOptionFilter
	repo := &mockTravelRepo{
		listFunc: func(_ context.Context, filter domain.TravelOptionFilter) ([]*domain.TravelOption, error) {
			gotFilter = filter
			return []*domain.TravelOption{testOption()}, nil
		},
	}

	svc := NewService(repo, &mockBookingRepo{}, &mockUserClient{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListTravelOptionsRequest{
		Type:   ptr.Ptr("flight"),
		Source: ptr.Ptr("Москва"),
	})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Type)
	assert.Equal(t, domain.TypeFlight, *gotFilter.Type)
	require.NotNil(t, gotFilter.Source)
	assert.Equal(t, "Москва", *gotFilter.Source)
	assert.Len(t, resp.TravelOptions, 1)
}
