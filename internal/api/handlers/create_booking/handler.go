package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/api/handlers"
	autoSchedule "github.com/m04kA/MC-AppointmentService/internal/usecase/auto_schedule"
	createBooking "github.com/m04kA/MC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные запроса"
	msgMissingDate         = "для записи на конкретное время укажите дату"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime         = "некорректный формат времени начала, ожидается HH:MM"
	msgOutsideWorkingHours = "время вне рабочих интервалов кабинета"
	msgSlotConflict        = "выбранное время недоступно"
	msgNoSlotsAvailable    = "нет свободных окон в пределах горизонта поиска"
)

type Handler struct {
	createUseCase CreateBookingUseCase
	autoUseCase   AutoScheduleUseCase
	location      *time.Location
	logger        Logger
}

// NewHandler создает обработчик создания записи.
// location - часовой пояс кабинета, в нем трактуются дата и время заявки
func NewHandler(
	createUseCase CreateBookingUseCase,
	autoUseCase AutoScheduleUseCase,
	location *time.Location,
	logger Logger,
) *Handler {
	return &Handler{
		createUseCase: createUseCase,
		autoUseCase:   autoUseCase,
		location:      location,
		logger:        logger,
	}
}

// Handle POST /api/v1/bookings
// Заявка с startTime записывает на указанное время, без него - на первое
// свободное окно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Explicit() {
		h.handleExplicit(w, r, &req)
		return
	}

	h.handleAuto(w, r, &req)
}

// handleExplicit запись на конкретное время
func (h *Handler) handleExplicit(w http.ResponseWriter, r *http.Request, req *CreateBookingRequest) {
	useCaseReq, err := req.ToCreateRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errMissingDate):
			handlers.RespondBadRequest(w, msgMissingDate)
		case errors.Is(err, errInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: service=%q, date=%s, time=%s",
				req.ServiceType, req.Date, req.StartTime)
			handlers.RespondUnprocessableEntity(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: service=%q, date=%s, time=%s",
				req.ServiceType, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, conflictMessage(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service=%q, error=%v",
				req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, service=%q, starts_at=%s",
		result.ID, req.ServiceType, result.StartsAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusCreated, FromCreateResponse(result))
}

// handleAuto автоподбор первого свободного окна
func (h *Handler) handleAuto(w http.ResponseWriter, r *http.Request, req *CreateBookingRequest) {
	useCaseReq, err := req.ToAutoRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.autoUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, autoSchedule.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, autoSchedule.ErrNoSlotsAvailable):
			h.logger.Warn("POST /bookings - No slots available: service=%q", req.ServiceType)
			handlers.RespondError(w, http.StatusConflict, msgNoSlotsAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to auto-schedule booking: service=%q, error=%v",
				req.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking auto-scheduled: booking_id=%d, service=%q, starts_at=%s",
		result.ID, req.ServiceType, result.StartsAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusCreated, FromAutoResponse(result))
}

// conflictMessage возвращает причину отказа для ответа клиенту
func conflictMessage(err error) string {
	var conflictErr *createBooking.ConflictError
	if errors.As(err, &conflictErr) && conflictErr.Reason != "" {
		return conflictErr.Reason
	}
	return msgSlotConflict
}
