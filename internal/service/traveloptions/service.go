package traveloptions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	travelRepo "github.com/avlasov-n/TRV-BookingService/internal/infra/storage/traveloption"
	userClient "github.com/avlasov-n/TRV-BookingService/internal/integrations/userservice"
	"github.com/avlasov-n/TRV-BookingService/internal/service/traveloptions/models"
)

// Service сервис для работы с вариантами поездок
type Service struct {
	travelRepo  TravelOptionRepository
	bookingRepo BookingRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса вариантов поездок
func NewService(
	travelRepo TravelOptionRepository,
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		travelRepo:  travelRepo,
		bookingRepo: bookingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// GetByID получает вариант поездки по ID (публичный метод)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TravelOptionResponse, error) {
	s.logger.Info("GetByID: fetching travel option id=%d", id)

	option, err := s.travelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
			s.logger.Warn("GetByID: travel option id=%d not found", id)
			return nil, ErrTravelOptionNotFound
		}
		s.logger.Error("GetByID: repository error for travel option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTravelOption(option), nil
}

// List получает варианты поездок с фильтрацией (публичный метод)
// Поддерживает фильтры по типу транспорта, подстроке пунктов отправления
// и назначения и дню отправления
func (s *Service) List(ctx context.Context, req *models.ListTravelOptionsRequest) (*models.TravelOptionListResponse, error) {
	s.logger.Info("List: fetching travel options, type=%v, source=%v, destination=%v",
		req.Type, req.Source, req.Destination)

	// Валидируем тип транспорта, если указан
	if req.Type != nil && !domain.IsValidTravelType(domain.TravelType(*req.Type)) {
		s.logger.Warn("List: invalid travel type=%s", *req.Type)
		return nil, fmt.Errorf("%w: invalid travel type", ErrInvalidInput)
	}

	options, err := s.travelRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d travel options", len(options))
	return models.FromDomainTravelOptionList(options), nil
}

// Create создает новый вариант поездки
// Доступно только администраторам
func (s *Service) Create(ctx context.Context, req *models.CreateTravelOptionRequest) (*models.TravelOptionResponse, error) {
	s.logger.Info("Create: creating travel option %s %s -> %s by user=%d",
		req.Type, req.Source, req.Destination, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Create: access denied for user=%d", req.UserID)
		return nil, err
	}

	// 2. Валидируем входные данные
	if err := validateTravelOptionData(req.Type, req.Source, req.Destination, req.PricePerSeat); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if req.TotalSeats < domain.MinTotalSeats || req.TotalSeats > domain.MaxTotalSeats {
		s.logger.Warn("Create: invalid totalSeats=%d", req.TotalSeats)
		return nil, fmt.Errorf("%w: totalSeats must be between %d and %d",
			ErrInvalidInput, domain.MinTotalSeats, domain.MaxTotalSeats)
	}
	if req.DepartureTime.IsZero() {
		s.logger.Warn("Create: departureTime is required")
		return nil, fmt.Errorf("%w: departureTime is required", ErrInvalidInput)
	}

	// 3. Создаем вариант поездки: новый рейс продается целиком
	option := &domain.TravelOption{
		Type:           domain.TravelType(req.Type),
		Source:         strings.TrimSpace(req.Source),
		Destination:    strings.TrimSpace(req.Destination),
		DepartureTime:  req.DepartureTime,
		PricePerSeat:   req.PricePerSeat,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
	}

	created, err := s.travelRepo.Create(ctx, option)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created travel option id=%d", created.ID)
	return models.FromDomainTravelOption(created), nil
}

// Update обновляет вариант поездки
// Доступно только администраторам. Счётчики мест не редактируются
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTravelOptionRequest) (*models.TravelOptionResponse, error) {
	s.logger.Info("Update: updating travel option id=%d by user=%d", id, req.UserID)

	// 1. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%d", req.UserID)
		return nil, err
	}

	// 2. Получаем текущее состояние
	option, err := s.travelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
			s.logger.Warn("Update: travel option id=%d not found", id)
			return nil, ErrTravelOptionNotFound
		}
		s.logger.Error("Update: repository error for travel option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 3. Применяем частичное обновление
	if req.Type != nil {
		option.Type = domain.TravelType(*req.Type)
	}
	if req.Source != nil {
		option.Source = strings.TrimSpace(*req.Source)
	}
	if req.Destination != nil {
		option.Destination = strings.TrimSpace(*req.Destination)
	}
	if req.DepartureTime != nil {
		option.DepartureTime = *req.DepartureTime
	}
	if req.PricePerSeat != nil {
		option.PricePerSeat = *req.PricePerSeat
	}

	// 4. Валидируем итоговое состояние
	if err := validateTravelOptionData(string(option.Type), option.Source, option.Destination, option.PricePerSeat); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 5. Сохраняем
	if err := s.travelRepo.Update(ctx, option); err != nil {
		if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
			return nil, ErrTravelOptionNotFound
		}
		s.logger.Error("Update: repository error for travel option id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated travel option id=%d", id)
	return models.FromDomainTravelOption(option), nil
}

// Delete удаляет вариант поездки
// Доступно только администраторам. Рейс с действующими бронированиями
// удалить нельзя: история бронирований сохраняется
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting travel option id=%d by user=%d", id, userID)

	// 1. Проверяем права доступа
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d", userID)
		return err
	}

	// 2. Защита от удаления рейса с проданными местами
	count, err := s.bookingRepo.CountConfirmedByTravelOption(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count bookings for travel option id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - failed to count bookings: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: travel option id=%d has %d active bookings", id, count)
		return ErrHasActiveBookings
	}

	// 3. Удаляем
	if err := s.travelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, travelRepo.ErrTravelOptionNotFound) {
			s.logger.Warn("Delete: travel option id=%d not found", id)
			return ErrTravelOptionNotFound
		}
		s.logger.Error("Delete: repository error for travel option id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted travel option id=%d", id)
	return nil
}

// Вспомогательные методы

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin {
		return ErrAccessDenied
	}

	return nil
}

// validateTravelOptionData валидирует общие поля варианта поездки
func validateTravelOptionData(travelType, source, destination string, pricePerSeat float64) error {
	if !domain.IsValidTravelType(domain.TravelType(travelType)) {
		return fmt.Errorf("%w: invalid travel type %q", ErrInvalidInput, travelType)
	}

	source = strings.TrimSpace(source)
	if source == "" || len(source) > domain.MaxLocationLength {
		return fmt.Errorf("%w: source must be non-empty and at most %d characters",
			ErrInvalidInput, domain.MaxLocationLength)
	}

	destination = strings.TrimSpace(destination)
	if destination == "" || len(destination) > domain.MaxLocationLength {
		return fmt.Errorf("%w: destination must be non-empty and at most %d characters",
			ErrInvalidInput, domain.MaxLocationLength)
	}

	if pricePerSeat < 0 {
		return fmt.Errorf("%w: pricePerSeat must be non-negative", ErrInvalidInput)
	}

	return nil
}
