package get_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
)

// UseCase use case для получения полной дневной сетки слотов барбера
// Используется в кабинете барбера: показывает и занятые, и заблокированные слоты
type UseCase struct {
	barberRepo       BarberRepository
	reservationRepo  ReservationRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	barberRepository BarberRepository,
	reservationRepository ReservationRepository,
	availabilityRepository AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		barberRepo:       barberRepository,
		reservationRepo:  reservationRepository,
		availabilityRepo: availabilityRepository,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: barber=%d, date=%s", req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Расписание на прошедшие даты не показываем
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetSchedule: past date requested: barber=%d, date=%s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 3. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetSchedule: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetSchedule: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Дневное переопределение: отсутствие записи означает, что день доступен
	isAvailable := true
	override, err := uc.availabilityRepo.GetDayOverride(ctx, req.BarberID, req.Date)
	if err != nil && !errors.Is(err, availabilityRepo.ErrDayOverrideNotFound) {
		uc.logger.Error("GetSchedule: failed to get day override: %v", err)
		return nil, fmt.Errorf("%w: failed to get day override: %v", ErrInternal, err)
	}
	if override != nil {
		isAvailable = override.IsAvailable
	}

	// 5. Активные резервации и блокировки слотов на дату
	reservations, err := uc.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
		BarberID:   ptr.Ptr(req.BarberID),
		Date:       ptr.Ptr(req.Date),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	blackouts, err := uc.availabilityRepo.ListSlotBlackouts(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get slot blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot blackouts: %v", ErrInternal, err)
	}

	// 6. Строим полную дневную сетку
	timeSlots, err := domain.GenerateTimeSlots(
		barber.OpenTime,
		barber.CloseTime,
		barber.HaircutDurationMinutes,
		reservations,
		blackouts,
	)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 7. Закрытый день перекрывает состояние каждого слота
	if !isAvailable {
		timeSlots = domain.ApplyDayOverride(timeSlots)
	}

	uc.logger.Info("GetSchedule: generated %d slots for barber=%d, date=%s, available=%t",
		len(timeSlots), req.BarberID, req.Date.Format(domain.DateFormat), isAvailable)

	return &Response{
		Barber: BarberInfo{
			ID:                     barber.ID,
			FullName:               barber.FullName,
			ManualLocation:         barber.ManualLocation,
			HaircutDurationMinutes: barber.HaircutDurationMinutes,
			OpenTime:               barber.OpenTime,
			CloseTime:              barber.CloseTime,
		},
		Date:        req.Date,
		IsAvailable: isAvailable,
		Slots:       toSlots(timeSlots),
	}, nil
}

func toSlots(timeSlots []domain.TimeSlot) []Slot {
	slots := make([]Slot, 0, len(timeSlots))
	for _, ts := range timeSlots {
		slots = append(slots, Slot{
			Time:        ts.Time,
			Formatted:   ts.Formatted,
			Reserved:    ts.Reserved,
			Unavailable: ts.Unavailable,
		})
	}
	return slots
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
