package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/MC-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/MC-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "укажите дату в параметре date, формат YYYY-MM-DD"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingServiceType = "укажите услугу в параметре serviceType"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase AvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase AvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (обязательный), serviceType (обязательный),
// drips/капельницы и injections/уколы (опционально, для длительности инфузий)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		switch {
		case errors.Is(err, errMissingDate):
			handlers.RespondBadRequest(w, msgMissingDate)
		case errors.Is(err, errMissingServiceType):
			handlers.RespondBadRequest(w, msgMissingServiceType)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: service=%q, error=%v",
				useCaseReq.ServiceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - %d slots for service=%q on %s",
		len(result.Slots), useCaseReq.ServiceType, result.Date.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
