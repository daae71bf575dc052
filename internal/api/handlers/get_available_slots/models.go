package get_available_slots

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/MC-AppointmentService/internal/usecase/get_available_slots"
)

var (
	// errMissingDate возвращается, когда не указан параметр date
	errMissingDate = errors.New("date parameter is required")

	// errInvalidDate возвращается при некорректном формате даты
	errInvalidDate = errors.New("invalid date format")

	// errMissingServiceType возвращается, когда не указан параметр serviceType
	errMissingServiceType = errors.New("serviceType parameter is required")
)

// detailKeys параметры количества процедур, обе раскладки
var detailKeys = []string{"drips", "капельницы", "injections", "уколы"}

// SlotResponse HTTP модель свободного окна
type SlotResponse struct {
	StartsAt        string `json:"startsAt"` // RFC3339
	Time            string `json:"time"`     // "08:35"
	DurationMinutes int    `json:"durationMinutes"`
}

// AvailableSlotsResponse HTTP модель ответа со свободными окнами
type AvailableSlotsResponse struct {
	Date            string         `json:"date"` // "2025-10-15"
	ServiceCode     string         `json:"serviceCode"`
	ServiceName     string         `json:"serviceName"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает модель use case из query параметров.
// Числа процедур передаются строками - нормализация деталей приводит их
// к числам и молча отбрасывает мусор
func ToUseCaseRequest(query url.Values) (*getAvailableSlots.Request, error) {
	dateStr := strings.TrimSpace(query.Get("date"))
	if dateStr == "" {
		return nil, errMissingDate
	}

	day, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	serviceType := strings.TrimSpace(query.Get("serviceType"))
	if serviceType == "" {
		return nil, errMissingServiceType
	}

	details := make(map[string]any)
	for _, key := range detailKeys {
		if value := query.Get(key); value != "" {
			details[key] = value
		}
	}

	return &getAvailableSlots.Request{
		Date:        day,
		ServiceType: serviceType,
		Details:     details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartsAt:        slot.StartsAt.Format(time.RFC3339),
			Time:            slot.Time.String(),
			DurationMinutes: resp.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceCode:     resp.ServiceCode,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
