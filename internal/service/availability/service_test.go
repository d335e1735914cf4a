package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	dayOverride *domain.DayAvailability
	blackout    *domain.SlotBlackout
}

func (f *fakeAvailabilityRepo) UpsertDayOverride(_ context.Context, override *domain.DayAvailability) (*domain.DayAvailability, error) {
	stored := *override
	stored.ID = 1
	stored.UpdatedAt = time.Now()
	f.dayOverride = &stored
	return &stored, nil
}

func (f *fakeAvailabilityRepo) UpsertSlotBlackout(_ context.Context, blackout *domain.SlotBlackout) (*domain.SlotBlackout, error) {
	stored := *blackout
	stored.ID = 1
	stored.UpdatedAt = time.Now()
	f.blackout = &stored
	return &stored, nil
}

func (f *fakeAvailabilityRepo) ListSlotBlackouts(_ context.Context, _ int64, _ time.Time) ([]*domain.SlotBlackout, error) {
	return nil, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

func TestSetDayAvailability(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	resp, err := svc.SetDayAvailability(context.Background(), 1, &models.SetDayAvailabilityRequest{
		RequesterUserID: 100,
		Date:            testDate,
		IsAvailable:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", resp.Date)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, repo.dayOverride)
	assert.Equal(t, int64(1), repo.dayOverride.BarberID)
}

func TestSetDayAvailability_AccessDenied(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	_, err := svc.SetDayAvailability(context.Background(), 1, &models.SetDayAvailabilityRequest{
		RequesterUserID: 5,
		Date:            testDate,
		IsAvailable:     false,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetDayAvailability_BarberNotFound(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeBarberRepo{}, nopLogger{})

	_, err := svc.SetDayAvailability(context.Background(), 404, &models.SetDayAvailabilityRequest{
		RequesterUserID: 100,
		Date:            testDate,
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestSetDayAvailability_MissingDate(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	_, err := svc.SetDayAvailability(context.Background(), 1, &models.SetDayAvailabilityRequest{
		RequesterUserID: 100,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetSlotBlackout(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	resp, err := svc.SetSlotBlackout(context.Background(), 1, &models.SetSlotBlackoutRequest{
		RequesterUserID: 100,
		Date:            testDate,
		StartTime:       "14:00",
		IsUnavailable:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.True(t, resp.IsUnavailable)
	require.NotNil(t, repo.blackout)
}

func TestSetSlotBlackout_InvalidTime(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	_, err := svc.SetSlotBlackout(context.Background(), 1, &models.SetSlotBlackoutRequest{
		RequesterUserID: 100,
		Date:            testDate,
		StartTime:       "25:00",
		IsUnavailable:   true,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetSlotBlackout_AccessDenied(t *testing.T) {
	svc := NewService(&fakeAvailabilityRepo{}, &fakeBarberRepo{barber: &domain.Barber{ID: 1, UserID: 100}}, nopLogger{})

	_, err := svc.SetSlotBlackout(context.Background(), 1, &models.SetSlotBlackoutRequest{
		RequesterUserID: 77,
		Date:            testDate,
		StartTime:       "14:00",
		IsUnavailable:   true,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
