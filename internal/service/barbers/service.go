package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

// Service сервис для работы с профилями барберов
type Service struct {
	barberRepo    BarberRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(
	barberRepository BarberRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *Service {
	return &Service{
		barberRepo:    barberRepository,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Create создает профиль барбера
// Имя и телефон берутся из сервиса профилей; при его недоступности
// применяется graceful degradation: используются данные из запроса
func (s *Service) Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	s.logger.Info("Create: creating barber profile for user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ManualLocation == "" {
		return nil, fmt.Errorf("%w: manualLocation is required", ErrInvalidInput)
	}

	fullName, phone := req.FullName, req.Phone
	profile, err := s.profileClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		fullName, phone = profile.FullName, profile.Phone
	case errors.Is(err, profileservice.ErrServiceDegraded):
		s.logger.Warn("Create: profile service degraded, using request data for user=%d", req.UserID)
	case errors.Is(err, profileservice.ErrUserNotFound):
		s.logger.Warn("Create: user id=%d not found in profile service", req.UserID)
		return nil, fmt.Errorf("%w: user not found", ErrInvalidInput)
	default:
		s.logger.Error("Create: profile service error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - profile service error: %v", ErrInternal, err)
	}

	duration := req.HaircutDurationMinutes
	if duration == 0 {
		duration = domain.DefaultHaircutDurationMinutes
	}

	barber := &domain.Barber{
		UserID:                 req.UserID,
		FullName:               fullName,
		Phone:                  phone,
		ManualLocation:         req.ManualLocation,
		HaircutDurationMinutes: duration,
		OpenTime:               req.OpenTime,
		CloseTime:              req.CloseTime,
	}

	if err := validateSchedule(barber); err != nil {
		s.logger.Warn("Create: schedule validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	created, err := s.barberRepo.Create(ctx, barber)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberAlreadyExists) {
			s.logger.Warn("Create: barber profile already exists for user=%d", req.UserID)
			return nil, ErrBarberAlreadyExists
		}
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created barber id=%d for user=%d", created.ID, req.UserID)
	return models.FromDomainBarber(created), nil
}

// GetByID получает барбера по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BarberResponse, error) {
	s.logger.Info("GetByID: fetching barber id=%d", id)

	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("GetByID: barber id=%d not found", id)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetByID: repository error for barber id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBarber(barber), nil
}

// List получает список барберов с фильтрацией по имени и локации
func (s *Service) List(ctx context.Context, req *models.ListBarbersRequest) (*models.BarberListResponse, error) {
	s.logger.Info("List: fetching barbers, search=%v, location=%v", req.Search, req.Location)

	barbers, err := s.barberRepo.List(ctx, domain.BarberFilter{
		Search:   req.Search,
		Location: req.Location,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d barbers", len(barbers))
	return models.FromDomainBarberList(barbers), nil
}

// UpdateSchedule обновляет расписание барбера
// Доступно только самому барберу
func (s *Service) UpdateSchedule(ctx context.Context, barberID int64, req *models.UpdateScheduleRequest) (*models.BarberResponse, error) {
	s.logger.Info("UpdateSchedule: barber=%d, requester=%d", barberID, req.RequesterUserID)

	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("UpdateSchedule: barber id=%d not found", barberID)
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	if barber.UserID != req.RequesterUserID {
		s.logger.Warn("UpdateSchedule: access denied for user=%d to barber=%d", req.RequesterUserID, barberID)
		return nil, ErrAccessDenied
	}

	updated := *barber
	updated.HaircutDurationMinutes = req.HaircutDurationMinutes
	updated.OpenTime = req.OpenTime
	updated.CloseTime = req.CloseTime

	if err := validateSchedule(&updated); err != nil {
		s.logger.Warn("UpdateSchedule: schedule validation failed for barber=%d: %v", barberID, err)
		return nil, err
	}

	err = s.barberRepo.UpdateSchedule(ctx, barberID, req.HaircutDurationMinutes, req.OpenTime.String(), req.CloseTime.String())
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for barber id=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for barber=%d", barberID)
	return models.FromDomainBarber(&updated), nil
}

// validateSchedule проверяет инварианты расписания, транслируя
// доменные ошибки в ошибки сервиса
func validateSchedule(b *domain.Barber) error {
	if err := b.ValidateSchedule(); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWorkingHours):
			return ErrInvalidWorkingHours
		case errors.Is(err, domain.ErrInvalidHaircutDuration):
			return ErrInvalidDuration
		default:
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
