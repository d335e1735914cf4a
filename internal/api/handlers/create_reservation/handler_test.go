package create_reservation

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp   *createReservation.Response
	err    error
	called bool
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	f.called = true
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations", h.Handle).Methods(http.MethodPost)
	return r
}

func postReservation(t *testing.T, router *mux.Router, role string) *httptest.ResponseRecorder {
	t.Helper()

	body := bytes.NewBufferString(`{"barberId": 1, "date": "2026-09-10", "startTime": "10:00"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", body)
	req.Header.Set(middleware.HeaderUserID, "5")
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ClientRoleCreates(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:        1,
		ClientID:  5,
		BarberID:  1,
		Date:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Status:    "active",
	}}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	rec := postReservation(t, router, "client")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, uc.called)
	assert.Contains(t, rec.Body.String(), `"reservation"`)
}

func TestHandle_BarberRoleForbidden(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	rec := postReservation(t, router, "barber")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, uc.called)
}

func TestHandle_MissingRoleForbidden(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(NewHandler(uc, nopLogger{}))

	rec := postReservation(t, router, "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, uc.called)
}
