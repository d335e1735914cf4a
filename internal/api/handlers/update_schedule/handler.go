package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
)

const (
	msgInvalidBarberID     = "некорректный ID барбера"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgBarberNotFound      = "барбер не найден"
	msgForbidden           = "доступ запрещен"
	msgInvalidWorkingHours = "время открытия должно быть раньше времени закрытия"
	msgInvalidDuration     = "длительность стрижки должна быть от 15 до 120 минут"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем barberId из URL
	vars := mux.Vars(r)
	barberIDStr := vars["barberId"]

	barberID, err := strconv.ParseInt(barberIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbers/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом времени)
	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/schedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Обновляем расписание (сервис сам проверит права доступа)
	result, err := h.service.UpdateSchedule(r.Context(), barberID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("PUT /barbers/{id}/schedule - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, barbers.ErrAccessDenied):
			h.logger.Warn("PUT /barbers/{id}/schedule - Access denied: barber_id=%d, user_id=%d", barberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, barbers.ErrInvalidWorkingHours):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid working hours: barber_id=%d", barberID)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, barbers.ErrInvalidDuration):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid duration: barber_id=%d", barberID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id}/schedule - Invalid input: barber_id=%d, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /barbers/{id}/schedule - Failed to update schedule: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id}/schedule - Schedule updated successfully: barber_id=%d, user_id=%d",
		barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
