// Package memory реализует хранилище в памяти для демо-режима,
// когда сервис запущен без настроенной базы данных.
// Репозитории повторяют контракты и ошибки SQL-реализаций,
// поэтому usecase-слой не знает, с каким хранилищем работает.
package memory

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

type dayKey struct {
	barberID int64
	date     string // YYYY-MM-DD
}

type slotKey struct {
	barberID int64
	date     string
	start    types.TimeString
}

// Store хранилище всех сущностей сервиса в памяти
type Store struct {
	mu sync.RWMutex

	barbers      map[int64]*domain.Barber
	reservations map[int64]*domain.Reservation
	dayOverrides map[dayKey]*domain.DayAvailability
	blackouts    map[slotKey]*domain.SlotBlackout

	nextBarberID      int64
	nextReservationID int64
	nextOverrideID    int64
	nextBlackoutID    int64
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		barbers:      make(map[int64]*domain.Barber),
		reservations: make(map[int64]*domain.Reservation),
		dayOverrides: make(map[dayKey]*domain.DayAvailability),
		blackouts:    make(map[slotKey]*domain.SlotBlackout),
	}
}

func dateKey(d time.Time) string {
	return d.Format(domain.DateFormat)
}

// Barbers возвращает репозиторий барберов поверх хранилища
func (s *Store) Barbers() *BarberRepository {
	return &BarberRepository{store: s}
}

// Reservations возвращает репозиторий резерваций поверх хранилища
func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{store: s}
}

// Availability возвращает репозиторий доступности поверх хранилища
func (s *Store) Availability() *AvailabilityRepository {
	return &AvailabilityRepository{store: s}
}
