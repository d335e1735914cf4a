package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
)

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetByFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
}

type fakeAvailabilityRepo struct {
	override  *domain.DayAvailability
	blackouts []*domain.SlotBlackout
}

func (f *fakeAvailabilityRepo) GetDayOverride(_ context.Context, _ int64, _ time.Time) (*domain.DayAvailability, error) {
	if f.override == nil {
		return nil, availabilityRepo.ErrDayOverrideNotFound
	}
	return f.override, nil
}

func (f *fakeAvailabilityRepo) ListSlotBlackouts(_ context.Context, _ int64, _ time.Time) ([]*domain.SlotBlackout, error) {
	return f.blackouts, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBarber() *domain.Barber {
	return &domain.Barber{
		ID:                     1,
		HaircutDurationMinutes: 30,
		OpenTime:               "09:00",
		CloseTime:              "12:00",
	}
}

func newTestUseCase(barbers *fakeBarberRepo, reservations *fakeReservationRepo, avail *fakeAvailabilityRepo, now time.Time) *UseCase {
	uc := NewUseCase(barbers, reservations, avail, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_BookableOnly(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	reservations := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{BarberID: 1, Date: date, StartTime: "10:00", Status: domain.StatusActive},
		},
	}
	avail := &fakeAvailabilityRepo{
		blackouts: []*domain.SlotBlackout{
			{BarberID: 1, Date: date, StartTime: "11:30", IsUnavailable: true},
		},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, reservations, avail, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: date})
	require.NoError(t, err)

	// Сетка 09:00-12:00 по 30 минут: 6 слотов, два выбывают
	require.Len(t, resp.Slots, 4)
	for _, s := range resp.Slots {
		assert.NotEqual(t, "10:00", s.Time.String())
		assert.NotEqual(t, "11:30", s.Time.String())
	}
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.Equal(t, "9:00 AM", resp.Slots[0].Formatted)
}

func TestExecute_DayClosedReturnsNoSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	avail := &fakeAvailabilityRepo{
		override: &domain.DayAvailability{BarberID: 1, Date: date, IsAvailable: false},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, avail, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DayExplicitlyOpen(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// Запись с is_available = true ведёт себя как отсутствие записи
	avail := &fakeAvailabilityRepo{
		override: &domain.DayAvailability{BarberID: 1, Date: date, IsAvailable: true},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, avail, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: date})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_BarberNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{}, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		BarberID: 1,
		Date:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
