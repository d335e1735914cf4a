package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/infra/storage/reservation"
)

// ReservationRepository реализация репозитория резерваций в памяти
// Уникальность активных слотов проверяется на вставке, так же
// как это делают частичные уникальные индексы в PostgreSQL
type ReservationRepository struct {
	store *Store
}

// Create создает новую резервацию
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.reservations {
		if !existing.IsActive() {
			continue
		}
		if !existing.Date.Equal(res.Date) || existing.StartTime != res.StartTime {
			continue
		}
		if existing.BarberID == res.BarberID {
			return nil, reservation.ErrSlotTaken
		}
		if existing.ClientID == res.ClientID {
			return nil, reservation.ErrClientSlotTaken
		}
	}

	r.store.nextReservationID++
	res.ID = r.store.nextReservationID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt

	stored := *res
	r.store.reservations[res.ID] = &stored

	return res, nil
}

// GetByID получает резервацию по ID
func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}

	copied := *stored
	return &copied, nil
}

// GetByFilter получает резервации с фильтрацией по барберу, клиенту и дате
func (r *ReservationRepository) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	reservations := make([]*domain.Reservation, 0)
	for _, stored := range r.store.reservations {
		if filter.BarberID != nil && stored.BarberID != *filter.BarberID {
			continue
		}
		if filter.ClientID != nil && stored.ClientID != *filter.ClientID {
			continue
		}
		if filter.Date != nil && !stored.Date.Equal(*filter.Date) {
			continue
		}
		if filter.ActiveOnly && !stored.IsActive() {
			continue
		}
		copied := *stored
		reservations = append(reservations, &copied)
	}

	if filter.Date != nil {
		sort.Slice(reservations, func(i, j int) bool {
			return reservations[i].StartTime.IsBefore(reservations[j].StartTime)
		})
	} else {
		sort.Slice(reservations, func(i, j int) bool {
			if !reservations[i].Date.Equal(reservations[j].Date) {
				return reservations[i].Date.After(reservations[j].Date)
			}
			return reservations[i].StartTime.IsAfter(reservations[j].StartTime)
		})
	}

	return reservations, nil
}

// Cancel переводит резервацию в отменённый статус
func (r *ReservationRepository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.reservations[id]
	if !ok {
		return reservation.ErrReservationNotFound
	}

	now := time.Now()
	stored.Status = status
	stored.CancelledAt = &now
	stored.UpdatedAt = now

	return nil
}
