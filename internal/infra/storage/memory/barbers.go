package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// BarberRepository реализация репозитория барберов в памяти
// Возвращает те же ошибки, что и SQL-реализация
type BarberRepository struct {
	store *Store
}

// Create создает новый профиль барбера
func (r *BarberRepository) Create(ctx context.Context, b *domain.Barber) (*domain.Barber, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.barbers {
		if existing.UserID == b.UserID {
			return nil, barber.ErrBarberAlreadyExists
		}
	}

	r.store.nextBarberID++
	b.ID = r.store.nextBarberID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt

	stored := *b
	r.store.barbers[b.ID] = &stored

	return b, nil
}

// GetByID получает барбера по ID
func (r *BarberRepository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.barbers[id]
	if !ok {
		return nil, barber.ErrBarberNotFound
	}

	copied := *stored
	return &copied, nil
}

// GetByUserID получает барбера по ID пользователя
func (r *BarberRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Barber, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, stored := range r.store.barbers {
		if stored.UserID == userID {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, barber.ErrBarberNotFound
}

// List получает список барберов с фильтрацией по имени и локации
func (r *BarberRepository) List(ctx context.Context, filter domain.BarberFilter) ([]*domain.Barber, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	barbers := make([]*domain.Barber, 0, len(r.store.barbers))
	for _, stored := range r.store.barbers {
		if filter.Search != nil && *filter.Search != "" &&
			!strings.Contains(strings.ToLower(stored.FullName), strings.ToLower(*filter.Search)) {
			continue
		}
		if filter.Location != nil && *filter.Location != "" &&
			!strings.Contains(strings.ToLower(stored.ManualLocation), strings.ToLower(*filter.Location)) {
			continue
		}
		copied := *stored
		barbers = append(barbers, &copied)
	}

	sort.Slice(barbers, func(i, j int) bool {
		if barbers[i].FullName != barbers[j].FullName {
			return barbers[i].FullName < barbers[j].FullName
		}
		return barbers[i].ID < barbers[j].ID
	})

	return barbers, nil
}

// UpdateSchedule обновляет расписание барбера
func (r *BarberRepository) UpdateSchedule(ctx context.Context, id int64, haircutDurationMinutes int, openTime, closeTime string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.barbers[id]
	if !ok {
		return barber.ErrBarberNotFound
	}

	stored.HaircutDurationMinutes = haircutDurationMinutes
	stored.OpenTime = types.TimeString(openTime)
	stored.CloseTime = types.TimeString(closeTime)
	stored.UpdatedAt = time.Now()

	return nil
}
