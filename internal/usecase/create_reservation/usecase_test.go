package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
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
	existing []*domain.Reservation
	created  *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	r.ID = 42
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.created = r
	return r, nil
}

func (f *fakeReservationRepo) GetByFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.existing {
		if filter.BarberID != nil && r.BarberID != *filter.BarberID {
			continue
		}
		if filter.ClientID != nil && r.ClientID != *filter.ClientID {
			continue
		}
		if filter.Date != nil && !r.Date.Equal(*filter.Date) {
			continue
		}
		if filter.ActiveOnly && !r.IsActive() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
		UserID:                 10,
		FullName:               "Иван Петров",
		Phone:                  "+79990001122",
		HaircutDurationMinutes: 30,
		OpenTime:               "09:00",
		CloseTime:              "18:00",
	}
}

func newTestUseCase(barbers *fakeBarberRepo, reservations *fakeReservationRepo, now time.Time) *UseCase {
	uc := NewUseCase(barbers, reservations, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	reservations := &fakeReservationRepo{}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, reservations, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      date,
		StartTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusActive), resp.Status)
	assert.Equal(t, "Иван Петров", resp.BarberName)
	assert.Equal(t, "+79990001122", resp.BarberPhone)
	require.NotNil(t, reservations.created)
	assert.Equal(t, domain.StatusActive, reservations.created.Status)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero client", req: &Request{BarberID: 1, Date: date, StartTime: "10:00"}},
		{name: "zero barber", req: &Request{ClientID: 5, Date: date, StartTime: "10:00"}},
		{name: "zero date", req: &Request{ClientID: 5, BarberID: 1, StartTime: "10:00"}},
		{name: "empty time", req: &Request{ClientID: 5, BarberID: 1, Date: date}},
		{name: "malformed time", req: &Request{ClientID: 5, BarberID: 1, Date: date, StartTime: "25:99"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_PastTimeToday(t *testing.T) {
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      today,
		StartTime: "11:30",
	})
	assert.ErrorIs(t, err, ErrPastTime)

	// Слот, начинающийся ровно сейчас, ещё можно забронировать
	_, err = uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      today,
		StartTime: "12:00",
	})
	assert.NoError(t, err)
}

func TestExecute_BarberNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{}, &fakeReservationRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, &fakeReservationRepo{}, now)

	for _, startTime := range []string{"08:30", "18:00", "20:00"} {
		_, err := uc.Execute(context.Background(), &Request{
			ClientID:  5,
			BarberID:  1,
			Date:      date,
			StartTime: types.TimeString(startTime),
		})
		assert.ErrorIs(t, err, ErrOutsideWorkingHours, "time %s", startTime)
	}
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ClientID: 7, BarberID: 1, Date: date, StartTime: "10:00", Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, reservations, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      date,
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledReservationFreesSlot(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ClientID: 7, BarberID: 1, Date: date, StartTime: "10:00", Status: domain.StatusCancelledByClient},
		},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, reservations, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      date,
		StartTime: "10:00",
	})
	assert.NoError(t, err)
}

func TestExecute_ClientDoubleBooking(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	// У клиента уже есть активная резервация на это время у другого барбера
	reservations := &fakeReservationRepo{
		existing: []*domain.Reservation{
			{ClientID: 5, BarberID: 2, Date: date, StartTime: "10:00", Status: domain.StatusActive},
		},
	}
	uc := newTestUseCase(&fakeBarberRepo{barber: testBarber()}, reservations, now)

	_, err := uc.Execute(context.Background(), &Request{
		ClientID:  5,
		BarberID:  1,
		Date:      date,
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrClientSlotTaken)
}
