package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

// Service сервис управления доступностью барбера:
// выходные дни и блокировка отдельных слотов
type Service struct {
	availabilityRepo AvailabilityRepository
	barberRepo       BarberRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepository AvailabilityRepository,
	barberRepository BarberRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepository,
		barberRepo:       barberRepository,
		logger:           logger,
	}
}

// SetDayAvailability включает или выключает весь день барбера
// Запись не удаляется: повторный вызов перезаписывает is_available
// Доступно только самому барберу
func (s *Service) SetDayAvailability(ctx context.Context, barberID int64, req *models.SetDayAvailabilityRequest) (*models.DayAvailabilityResponse, error) {
	s.logger.Info("SetDayAvailability: barber=%d, date=%s, available=%t",
		barberID, req.Date.Format(domain.DateFormat), req.IsAvailable)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.checkBarberAccess(ctx, barberID, req.RequesterUserID); err != nil {
		return nil, err
	}

	override, err := s.availabilityRepo.UpsertDayOverride(ctx, &domain.DayAvailability{
		BarberID:    barberID,
		Date:        req.Date,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		s.logger.Error("SetDayAvailability: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: SetDayAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDayAvailability: successfully updated day for barber=%d, date=%s",
		barberID, req.Date.Format(domain.DateFormat))
	return models.FromDomainDayAvailability(override), nil
}

// SetSlotBlackout блокирует или разблокирует отдельный слот барбера
// Ключ (barber, date, time); is_unavailable = false снова открывает слот
// Доступно только самому барберу
func (s *Service) SetSlotBlackout(ctx context.Context, barberID int64, req *models.SetSlotBlackoutRequest) (*models.SlotBlackoutResponse, error) {
	s.logger.Info("SetSlotBlackout: barber=%d, date=%s, time=%s, unavailable=%t",
		barberID, req.Date.Format(domain.DateFormat), req.StartTime, req.IsUnavailable)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if err := s.checkBarberAccess(ctx, barberID, req.RequesterUserID); err != nil {
		return nil, err
	}

	blackout, err := s.availabilityRepo.UpsertSlotBlackout(ctx, &domain.SlotBlackout{
		BarberID:      barberID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		IsUnavailable: req.IsUnavailable,
	})
	if err != nil {
		s.logger.Error("SetSlotBlackout: repository error for barber=%d: %v", barberID, err)
		return nil, fmt.Errorf("%w: SetSlotBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetSlotBlackout: successfully updated slot for barber=%d, date=%s, time=%s",
		barberID, req.Date.Format(domain.DateFormat), req.StartTime)
	return models.FromDomainSlotBlackout(blackout), nil
}

// checkBarberAccess проверяет, что запрос делает сам барбер
func (s *Service) checkBarberAccess(ctx context.Context, barberID, requesterUserID int64) error {
	barber, err := s.barberRepo.GetByID(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			s.logger.Warn("checkBarberAccess: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("checkBarberAccess: repository error for barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: checkBarberAccess - repository error: %v", ErrInternal, err)
	}

	if barber.UserID != requesterUserID {
		s.logger.Warn("checkBarberAccess: access denied for user=%d to barber=%d", requesterUserID, barberID)
		return ErrAccessDenied
	}

	return nil
}
