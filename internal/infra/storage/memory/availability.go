package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
)

// AvailabilityRepository реализация репозитория доступности в памяти
type AvailabilityRepository struct {
	store *Store
}

// UpsertDayOverride создает или обновляет дневное переопределение доступности
func (r *AvailabilityRepository) UpsertDayOverride(ctx context.Context, override *domain.DayAvailability) (*domain.DayAvailability, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := dayKey{barberID: override.BarberID, date: dateKey(override.Date)}
	now := time.Now()

	if existing, ok := r.store.dayOverrides[key]; ok {
		existing.IsAvailable = override.IsAvailable
		existing.UpdatedAt = now

		copied := *existing
		*override = copied
		return override, nil
	}

	r.store.nextOverrideID++
	override.ID = r.store.nextOverrideID
	override.CreatedAt = now
	override.UpdatedAt = now

	stored := *override
	r.store.dayOverrides[key] = &stored

	return override, nil
}

// GetDayOverride получает дневное переопределение для барбера на дату
func (r *AvailabilityRepository) GetDayOverride(ctx context.Context, barberID int64, date time.Time) (*domain.DayAvailability, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.dayOverrides[dayKey{barberID: barberID, date: dateKey(date)}]
	if !ok {
		return nil, availability.ErrDayOverrideNotFound
	}

	copied := *stored
	return &copied, nil
}

// UpsertSlotBlackout создает или обновляет блокировку слота
func (r *AvailabilityRepository) UpsertSlotBlackout(ctx context.Context, blackout *domain.SlotBlackout) (*domain.SlotBlackout, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := slotKey{barberID: blackout.BarberID, date: dateKey(blackout.Date), start: blackout.StartTime}
	now := time.Now()

	if existing, ok := r.store.blackouts[key]; ok {
		existing.IsUnavailable = blackout.IsUnavailable
		existing.UpdatedAt = now

		copied := *existing
		*blackout = copied
		return blackout, nil
	}

	r.store.nextBlackoutID++
	blackout.ID = r.store.nextBlackoutID
	blackout.CreatedAt = now
	blackout.UpdatedAt = now

	stored := *blackout
	r.store.blackouts[key] = &stored

	return blackout, nil
}

// ListSlotBlackouts получает все блокировки слотов барбера на дату
func (r *AvailabilityRepository) ListSlotBlackouts(ctx context.Context, barberID int64, date time.Time) ([]*domain.SlotBlackout, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	day := dateKey(date)
	blackouts := make([]*domain.SlotBlackout, 0)
	for key, stored := range r.store.blackouts {
		if key.barberID != barberID || key.date != day {
			continue
		}
		copied := *stored
		blackouts = append(blackouts, &copied)
	}

	sort.Slice(blackouts, func(i, j int) bool {
		return blackouts[i].StartTime.IsBefore(blackouts[j].StartTime)
	})

	return blackouts, nil
}
