package get_schedule_config

import (
	"net/http"

	"github.com/m04kA/MC-AppointmentService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/config
// Расписание задается конфигурацией, поэтому ошибок здесь не бывает
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config := h.service.GetScheduleConfig()

	h.logger.Info("GET /schedule/config - Schedule config served: services=%d", len(config.Services))
	handlers.RespondJSON(w, http.StatusOK, config)
}
