package create_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/api/middleware"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgBarberRoleRequired  = "создавать профиль барбера может только барбер"
	msgInvalidTime         = "некорректный формат времени, ожидается HH:MM"
	msgAlreadyExists       = "профиль барбера уже существует"
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

// Handle POST /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Создавать профиль барбера может только роль barber
	if role, _ := middleware.GetUserRole(r.Context()); role != domain.RoleBarber {
		h.logger.Warn("POST /barbers - Role %q is not allowed to create a barber profile: user_id=%d", role, userID)
		handlers.RespondForbidden(w, msgBarberRoleRequired)
		return
	}

	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом времени)
	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /barbers - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Создаем профиль барбера
	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberAlreadyExists):
			h.logger.Warn("POST /barbers - Barber already exists: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyExists)

		case errors.Is(err, barbers.ErrInvalidWorkingHours):
			h.logger.Warn("POST /barbers - Invalid working hours: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, barbers.ErrInvalidDuration):
			h.logger.Warn("POST /barbers - Invalid duration: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("POST /barbers - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbers - Failed to create barber: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers - Barber created successfully: barber_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
