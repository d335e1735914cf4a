package search_barbers

import (
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
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

// Handle GET /api/v1/barbers
// Query params: search (по имени), location (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем опциональные query параметры
	req := &models.ListBarbersRequest{}
	if search := r.URL.Query().Get("search"); search != "" {
		req.Search = &search
	}
	if location := r.URL.Query().Get("location"); location != "" {
		req.Location = &location
	}

	// Получаем список барберов
	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Barbers retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
