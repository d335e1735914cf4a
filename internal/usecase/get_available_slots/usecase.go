package get_available_slots

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

// UseCase use case для получения свободных слотов барбера
// Используется клиентами при записи: возвращает только слоты,
// на которые можно создать резервацию
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

// Execute выполняет use case получения свободных слотов
// Сетка строится тем же генератором, что и полное расписание,
// после чего фильтруется до свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s", req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Слоты на прошедшие даты не показываем
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: past date requested: barber=%d, date=%s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// 3. Получаем барбера
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 4. Закрытый день: свободных слотов нет
	override, err := uc.availabilityRepo.GetDayOverride(ctx, req.BarberID, req.Date)
	if err != nil && !errors.Is(err, availabilityRepo.ErrDayOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get day override: %v", err)
		return nil, fmt.Errorf("%w: failed to get day override: %v", ErrInternal, err)
	}
	if override != nil && !override.IsAvailable {
		uc.logger.Info("GetAvailableSlots: day closed for barber=%d, date=%s",
			req.BarberID, req.Date.Format(domain.DateFormat))
		return &Response{Barber: toBarberInfo(barber), Date: req.Date, Slots: []Slot{}}, nil
	}

	// 5. Активные резервации и блокировки слотов на дату
	reservations, err := uc.reservationRepo.GetByFilter(ctx, domain.ReservationFilter{
		BarberID:   ptr.Ptr(req.BarberID),
		Date:       ptr.Ptr(req.Date),
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	blackouts, err := uc.availabilityRepo.ListSlotBlackouts(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get slot blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot blackouts: %v", ErrInternal, err)
	}

	// 6. Строим сетку и оставляем только свободные слоты
	timeSlots, err := domain.GenerateTimeSlots(
		barber.OpenTime,
		barber.CloseTime,
		barber.HaircutDurationMinutes,
		reservations,
		blackouts,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	bookable := domain.BookableOnly(timeSlots)

	uc.logger.Info("GetAvailableSlots: %d of %d slots bookable for barber=%d, date=%s",
		len(bookable), len(timeSlots), req.BarberID, req.Date.Format(domain.DateFormat))

	slots := make([]Slot, 0, len(bookable))
	for _, ts := range bookable {
		slots = append(slots, Slot{Time: ts.Time, Formatted: ts.Formatted})
	}

	return &Response{
		Barber: toBarberInfo(barber),
		Date:   req.Date,
		Slots:  slots,
	}, nil
}

// toBarberInfo конвертирует доменного барбера в модель ответа
func toBarberInfo(b *domain.Barber) BarberInfo {
	return BarberInfo{
		ID:                     b.ID,
		FullName:               b.FullName,
		ManualLocation:         b.ManualLocation,
		HaircutDurationMinutes: b.HaircutDurationMinutes,
		OpenTime:               b.OpenTime,
		CloseTime:              b.CloseTime,
	}
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
