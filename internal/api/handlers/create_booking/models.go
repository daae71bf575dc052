package create_booking

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/MC-AppointmentService/internal/domain"
	autoSchedule "github.com/m04kA/MC-AppointmentService/internal/usecase/auto_schedule"
	createBooking "github.com/m04kA/MC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/MC-AppointmentService/pkg/types"
)

var (
	// errMissingDate возвращается, когда указано время, но не указана дата
	errMissingDate = errors.New("date is required when startTime is set")

	// errInvalidDate возвращается при некорректном формате даты
	errInvalidDate = errors.New("invalid date format")

	// errInvalidTime возвращается при некорректном формате времени
	errInvalidTime = errors.New("invalid time format")
)

// CreateBookingRequest HTTP request model.
// Заявка с startTime - запись на конкретное время, без него - автоподбор
// первого свободного окна
type CreateBookingRequest struct {
	ServiceType string         `json:"serviceType"`
	Details     map[string]any `json:"details,omitempty"`     // капельницы/уколы, обе раскладки
	Date        string         `json:"date,omitempty"`        // "2025-10-15"
	StartTime   string         `json:"startTime,omitempty"`   // "09:00"
	ContactInfo *string        `json:"contactInfo,omitempty"` // контакт пациента
	SameDayOnly bool           `json:"sameDayOnly,omitempty"` // автоподбор только на день обращения
	HorizonDays *int           `json:"horizonDays,omitempty"` // глубина автоподбора в днях
}

// Explicit сообщает, что заявка на конкретное время
func (r *CreateBookingRequest) Explicit() bool {
	return strings.TrimSpace(r.StartTime) != ""
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ServiceCode     string  `json:"serviceCode"`
	ServiceName     string  `json:"serviceName"`
	Drips           int     `json:"drips"`
	Injections      int     `json:"injections"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "09:00"
	EndTime         string  `json:"endTime"`   // "09:30"
	DurationMinutes int     `json:"durationMinutes"`
	StartsAt        string  `json:"startsAt"` // RFC3339
	EndsAt          string  `json:"endsAt"`   // RFC3339
	ContactInfo     *string `json:"contactInfo,omitempty"`
	Done            bool    `json:"done"`
	CreatedAt       string  `json:"createdAt"` // RFC3339
}

// ToCreateRequest конвертирует HTTP запрос в модель use case записи
// на конкретное время. Дата и время трактуются в часовом поясе кабинета
func (r *CreateBookingRequest) ToCreateRequest(loc *time.Location) (*createBooking.Request, error) {
	if strings.TrimSpace(r.Date) == "" {
		return nil, errMissingDate
	}

	day, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	minutes, err := startTime.MinutesOfDay()
	if err != nil {
		return nil, errInvalidTime
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)

	return &createBooking.Request{
		ServiceType: r.ServiceType,
		Details:     r.Details,
		StartsAt:    startsAt,
		ContactInfo: r.ContactInfo,
	}, nil
}

// ToAutoRequest конвертирует HTTP запрос в модель use case автоподбора.
// Дата без времени задает день начала поиска
func (r *CreateBookingRequest) ToAutoRequest(loc *time.Location) (*autoSchedule.Request, error) {
	req := &autoSchedule.Request{
		ServiceType: r.ServiceType,
		Details:     r.Details,
		SameDayOnly: r.SameDayOnly,
		HorizonDays: r.HorizonDays,
		ContactInfo: r.ContactInfo,
	}

	if strings.TrimSpace(r.Date) != "" {
		day, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, errInvalidDate
		}
		searchFrom := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		req.SearchFrom = &searchFrom
	}

	return req, nil
}

// FromCreateResponse конвертирует ответ use case записи в HTTP response
func FromCreateResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceCode:     resp.ServiceCode,
		ServiceName:     resp.ServiceName,
		Drips:           resp.Drips,
		Injections:      resp.Injections,
		Date:            resp.StartsAt.Format(domain.DateFormat),
		StartTime:       resp.StartsAt.Format(domain.TimeFormat),
		EndTime:         resp.EndsAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		StartsAt:        resp.StartsAt.Format(time.RFC3339),
		EndsAt:          resp.EndsAt.Format(time.RFC3339),
		ContactInfo:     resp.ContactInfo,
		Done:            resp.Done,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromAutoResponse конвертирует ответ use case автоподбора в HTTP response
func FromAutoResponse(resp *autoSchedule.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceCode:     resp.ServiceCode,
		ServiceName:     resp.ServiceName,
		Drips:           resp.Drips,
		Injections:      resp.Injections,
		Date:            resp.StartsAt.Format(domain.DateFormat),
		StartTime:       resp.StartsAt.Format(domain.TimeFormat),
		EndTime:         resp.EndsAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		StartsAt:        resp.StartsAt.Format(time.RFC3339),
		EndsAt:          resp.EndsAt.Format(time.RFC3339),
		ContactInfo:     resp.ContactInfo,
		Done:            resp.Done,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
