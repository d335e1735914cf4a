package barbers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarbershopService/internal/integrations/profileservice"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
)

type fakeBarberRepo struct {
	byID          map[int64]*domain.Barber
	byUserID      map[int64]*domain.Barber
	nextID        int64
	updatedSched  bool
	lastOpenTime  string
	lastCloseTime string
}

func newFakeBarberRepo(barbers ...*domain.Barber) *fakeBarberRepo {
	f := &fakeBarberRepo{
		byID:     make(map[int64]*domain.Barber),
		byUserID: make(map[int64]*domain.Barber),
		nextID:   1,
	}
	for _, b := range barbers {
		f.byID[b.ID] = b
		f.byUserID[b.UserID] = b
		if b.ID >= f.nextID {
			f.nextID = b.ID + 1
		}
	}
	return f
}

func (f *fakeBarberRepo) Create(_ context.Context, b *domain.Barber) (*domain.Barber, error) {
	if _, ok := f.byUserID[b.UserID]; ok {
		return nil, barberRepo.ErrBarberAlreadyExists
	}
	created := *b
	created.ID = f.nextID
	f.nextID++
	f.byID[created.ID] = &created
	f.byUserID[created.UserID] = &created
	return &created, nil
}

func (f *fakeBarberRepo) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}

func (f *fakeBarberRepo) GetByUserID(_ context.Context, userID int64) (*domain.Barber, error) {
	b, ok := f.byUserID[userID]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}

func (f *fakeBarberRepo) List(_ context.Context, _ domain.BarberFilter) ([]*domain.Barber, error) {
	out := make([]*domain.Barber, 0, len(f.byID))
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBarberRepo) UpdateSchedule(_ context.Context, id int64, _ int, openTime, closeTime string) error {
	if _, ok := f.byID[id]; !ok {
		return barberRepo.ErrBarberNotFound
	}
	f.updatedSched = true
	f.lastOpenTime = openTime
	f.lastCloseTime = closeTime
	return nil
}

type fakeProfileClient struct {
	user *profileservice.User
	err  error
}

func (f *fakeProfileClient) GetUserWithGracefulDegradation(_ context.Context, _ int64) (*profileservice.User, error) {
	return f.user, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateBarberRequest {
	return &models.CreateBarberRequest{
		UserID:                 10,
		FullName:               "Из запроса",
		Phone:                  "+70000000000",
		ManualLocation:         "ул. Пушкина, 1",
		HaircutDurationMinutes: 45,
		OpenTime:               "09:00",
		CloseTime:              "18:00",
	}
}

func TestCreate_UsesProfileData(t *testing.T) {
	repo := newFakeBarberRepo()
	client := &fakeProfileClient{user: &profileservice.User{
		ID:       10,
		FullName: "Иван Петров",
		Phone:    "+79991234567",
	}}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", resp.FullName)
	assert.Equal(t, "+79991234567", resp.Phone)
	assert.Equal(t, 45, resp.HaircutDurationMinutes)
}

func TestCreate_GracefulDegradationUsesRequestData(t *testing.T) {
	repo := newFakeBarberRepo()
	client := &fakeProfileClient{err: profileservice.ErrServiceDegraded}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "Из запроса", resp.FullName)
	assert.Equal(t, "+70000000000", resp.Phone)
}

func TestCreate_UserNotFoundInProfileService(t *testing.T) {
	svc := NewService(newFakeBarberRepo(), &fakeProfileClient{err: profileservice.ErrUserNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DefaultDuration(t *testing.T) {
	client := &fakeProfileClient{err: profileservice.ErrServiceDegraded}
	svc := NewService(newFakeBarberRepo(), client, nopLogger{})

	req := validCreateRequest()
	req.HaircutDurationMinutes = 0

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHaircutDurationMinutes, resp.HaircutDurationMinutes)
}

func TestCreate_InvalidSchedule(t *testing.T) {
	client := &fakeProfileClient{err: profileservice.ErrServiceDegraded}
	svc := NewService(newFakeBarberRepo(), client, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*models.CreateBarberRequest)
		wantErr error
	}{
		{
			name:    "open after close",
			mutate:  func(r *models.CreateBarberRequest) { r.OpenTime, r.CloseTime = "18:00", "09:00" },
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "open equals close",
			mutate:  func(r *models.CreateBarberRequest) { r.OpenTime, r.CloseTime = "10:00", "10:00" },
			wantErr: ErrInvalidWorkingHours,
		},
		{
			name:    "duration too short",
			mutate:  func(r *models.CreateBarberRequest) { r.HaircutDurationMinutes = 10 },
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "duration too long",
			mutate:  func(r *models.CreateBarberRequest) { r.HaircutDurationMinutes = 180 },
			wantErr: ErrInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_AlreadyExists(t *testing.T) {
	existing := &domain.Barber{ID: 1, UserID: 10, OpenTime: "09:00", CloseTime: "18:00", HaircutDurationMinutes: 30}
	client := &fakeProfileClient{err: profileservice.ErrServiceDegraded}
	svc := NewService(newFakeBarberRepo(existing), client, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrBarberAlreadyExists)
}

func TestUpdateSchedule_OwnerOnly(t *testing.T) {
	existing := &domain.Barber{ID: 1, UserID: 10, OpenTime: "09:00", CloseTime: "18:00", HaircutDurationMinutes: 30}
	repo := newFakeBarberRepo(existing)
	svc := NewService(repo, &fakeProfileClient{}, nopLogger{})

	req := &models.UpdateScheduleRequest{
		RequesterUserID:        10,
		HaircutDurationMinutes: 60,
		OpenTime:               "10:00",
		CloseTime:              "20:00",
	}

	resp, err := svc.UpdateSchedule(context.Background(), 1, req)
	require.NoError(t, err)
	assert.True(t, repo.updatedSched)
	assert.Equal(t, "10:00", repo.lastOpenTime)
	assert.Equal(t, "20:00", repo.lastCloseTime)
	assert.Equal(t, 60, resp.HaircutDurationMinutes)

	req.RequesterUserID = 99
	_, err = svc.UpdateSchedule(context.Background(), 1, req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateSchedule_BarberNotFound(t *testing.T) {
	svc := NewService(newFakeBarberRepo(), &fakeProfileClient{}, nopLogger{})

	_, err := svc.UpdateSchedule(context.Background(), 404, &models.UpdateScheduleRequest{
		RequesterUserID:        10,
		HaircutDurationMinutes: 30,
		OpenTime:               "09:00",
		CloseTime:              "18:00",
	})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestGetByID(t *testing.T) {
	existing := &domain.Barber{ID: 1, UserID: 10, FullName: "Иван Петров", OpenTime: "09:00", CloseTime: "18:00", HaircutDurationMinutes: 30}
	svc := NewService(newFakeBarberRepo(existing), &fakeProfileClient{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Иван Петров", resp.FullName)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBarberNotFound)
}
