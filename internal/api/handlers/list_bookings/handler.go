package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MC-AppointmentService/internal/service/bookings"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDone   = "некорректное значение параметра done, ожидается true или false"
	msgInvalidPeriod = "конец периода раньше его начала"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

// NewHandler создает обработчик списка записей.
// location - часовой пояс кабинета, в нем трактуются даты периода
func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: from, to (даты периода, включительно), done (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(query.Get("from"), query.Get("to"), query.Get("done"), h.location)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		if errors.Is(err, errInvalidDone) {
			handlers.RespondBadRequest(w, msgInvalidDone)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /bookings - Invalid period: from=%s, to=%s",
				query.Get("from"), query.Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - %d bookings returned", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
