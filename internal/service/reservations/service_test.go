package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	reservationRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-BarbershopService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	byID      map[int64]*domain.Reservation
	cancelled map[int64]domain.ReservationStatus
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	byID := make(map[int64]*domain.Reservation)
	for _, r := range reservations {
		byID[r.ID] = r
	}
	return &fakeReservationRepo{byID: byID, cancelled: make(map[int64]domain.ReservationStatus)}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0)
	for _, r := range f.byID {
		if filter.ClientID != nil && r.ClientID != *filter.ClientID {
			continue
		}
		if filter.BarberID != nil && r.BarberID != *filter.BarberID {
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

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	f.cancelled[id] = status
	return nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	if f.barber == nil || f.barber.ID != id {
		return nil, barberRepo.ErrBarberNotFound
	}
	return f.barber, nil
}

type fakeProfileClient struct {
	users map[int64]*profileservice.User
	err   error
}

func (f *fakeProfileClient) GetUserWithGracefulDegradation(_ context.Context, userID int64) (*profileservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[userID], nil
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

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func activeReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        1,
		ClientID:  5,
		BarberID:  1,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Status:    domain.StatusActive,
	}
}

func newTestService(reservations *fakeReservationRepo, barbers *fakeBarberRepo) *Service {
	svc := NewService(reservations, barbers, &fakeProfileClient{}, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc
}

func TestCancel_ByClient(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelled[1])
}

func TestCancel_ByBarber(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 100})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByBarber, repo.cancelled[1])
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_PastReservation(t *testing.T) {
	past := activeReservation()
	past.Date = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	repo := newFakeReservationRepo(past)
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 5})
	assert.ErrorIs(t, err, ErrPastReservation)
}

func TestCancel_TodayIsAllowed(t *testing.T) {
	today := activeReservation()
	today.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := newFakeReservationRepo(today)
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 5})
	assert.NoError(t, err)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	cancelled := activeReservation()
	cancelled.Status = domain.StatusCancelledByClient

	repo := newFakeReservationRepo(cancelled)
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 5})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), &fakeBarberRepo{})

	err := svc.Cancel(context.Background(), 404, &models.CancelReservationRequest{UserID: 5})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetClientReservations_OwnOnly(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{})

	resp, err := svc.GetClientReservations(context.Background(), &models.GetClientReservationsRequest{
		ClientID:        5,
		RequesterUserID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "2026-09-10", resp.Reservations[0].Date)

	_, err = svc.GetClientReservations(context.Background(), &models.GetClientReservationsRequest{
		ClientID:        5,
		RequesterUserID: 6,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBarberReservations_OwnerOnly(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})

	resp, err := svc.GetBarberReservations(context.Background(), &models.GetBarberReservationsRequest{
		BarberID:        1,
		RequesterUserID: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetBarberReservations(context.Background(), &models.GetBarberReservationsRequest{
		BarberID:        1,
		RequesterUserID: 5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBarberReservations_EnrichesClientContacts(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})
	svc.profileClient = &fakeProfileClient{users: map[int64]*profileservice.User{
		5: {ID: 5, FullName: "Пётр Сидоров", Phone: "+79990001122"},
	}}

	resp, err := svc.GetBarberReservations(context.Background(), &models.GetBarberReservationsRequest{
		BarberID:        1,
		RequesterUserID: 100,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Пётр Сидоров", resp.Reservations[0].ClientName)
	assert.Equal(t, "+79990001122", resp.Reservations[0].ClientPhone)
}

func TestGetBarberReservations_ProfileServiceDegraded(t *testing.T) {
	repo := newFakeReservationRepo(activeReservation())
	svc := newTestService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}})
	svc.profileClient = &fakeProfileClient{err: profileservice.ErrServiceDegraded}

	resp, err := svc.GetBarberReservations(context.Background(), &models.GetBarberReservationsRequest{
		BarberID:        1,
		RequesterUserID: 100,
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Empty(t, resp.Reservations[0].ClientName)
}

func TestGetClientReservations_DateFilter(t *testing.T) {
	other := activeReservation()
	other.ID = 2
	other.Date = time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)

	repo := newFakeReservationRepo(activeReservation(), other)
	svc := newTestService(repo, &fakeBarberRepo{})

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetClientReservations(context.Background(), &models.GetClientReservationsRequest{
		ClientID:        5,
		RequesterUserID: 5,
		Date:            &date,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "2026-09-10", resp.Reservations[0].Date)
}
